package onboardingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"raisedesk/database"
	"raisedesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSubmissionRepo struct {
	coll *mongo.Collection
}

func NewMongoSubmissionRepo(ctx context.Context, db *mongo.Database) (SubmissionRepository, error) {
	repo := &MongoSubmissionRepo{coll: db.Collection("onboarding_submissions")}

	ictx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "status", Value: 1}}},
	}
	if _, err := repo.coll.Indexes().CreateMany(ictx, indexModels); err != nil {
		return nil, fmt.Errorf("failed to create onboarding indexes: %w", err)
	}
	return repo, nil
}

func (r *MongoSubmissionRepo) GetByID(ctx context.Context, id string) (*models.OnboardingSubmission, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var sub models.OnboardingSubmission
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sub); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("submission %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch submission with id %s: %w", id, err)
	}
	return &sub, nil
}

func (r *MongoSubmissionRepo) GetAll(ctx context.Context, kind string) ([]models.OnboardingSubmission, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve submissions: %w", err)
	}
	defer cursor.Close(ctx)

	subs := []models.OnboardingSubmission{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %w", err)
	}
	return subs, nil
}

func (r *MongoSubmissionRepo) Create(ctx context.Context, submission *models.OnboardingSubmission) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	submission.CreatedAt = now
	submission.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, submission); err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

// Update replaces the document only while its updatedAt matches the loaded one.
func (r *MongoSubmissionRepo) Update(ctx context.Context, submission *models.OnboardingSubmission) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	prev := submission.UpdatedAt
	next := *submission
	next.UpdatedAt = database.NextVersion(prev, time.Now())
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": submission.ID, "updatedAt": prev}, next)
	if err != nil {
		return fmt.Errorf("failed to update submission with id %s: %w", submission.ID, err)
	}
	if result.MatchedCount == 0 {
		n, err := r.coll.CountDocuments(ctx, bson.M{"id": submission.ID})
		if err != nil {
			return fmt.Errorf("failed to update submission with id %s: %w", submission.ID, err)
		}
		if n == 0 {
			return fmt.Errorf("submission %s: %w", submission.ID, database.ErrNotFound)
		}
		return fmt.Errorf("submission %s: %w", submission.ID, database.ErrConflict)
	}
	submission.UpdatedAt = next.UpdatedAt
	return nil
}
