package meetingRepo

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

type MongoMeetingRepo struct {
	coll *mongo.Collection
}

func NewMongoMeetingRepo(ctx context.Context, db *mongo.Database) (MeetingRepository, error) {
	repo := &MongoMeetingRepo{coll: db.Collection("meetings")}
	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoMeetingRepo) ensureIndexes(ctx context.Context) error {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "startsAt", Value: 1}}},
		{Keys: bson.D{{Key: "investorId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create meeting indexes: %w", err)
	}
	return nil
}

func (r *MongoMeetingRepo) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var meeting models.Meeting
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&meeting); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("meeting %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch meeting with id %s: %w", id, err)
	}
	return &meeting, nil
}

func (r *MongoMeetingRepo) find(ctx context.Context, filter bson.M) ([]models.Meeting, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startsAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve meetings: %w", err)
	}
	defer cursor.Close(ctx)

	meetings := []models.Meeting{}
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode meetings: %w", err)
	}
	return meetings, nil
}

func (r *MongoMeetingRepo) GetAll(ctx context.Context) ([]models.Meeting, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoMeetingRepo) GetUpcoming(ctx context.Context, from time.Time) ([]models.Meeting, error) {
	return r.find(ctx, bson.M{
		"status":   models.MeetingStatusScheduled,
		"startsAt": bson.M{"$gte": from},
	})
}

func (r *MongoMeetingRepo) Create(ctx context.Context, meeting *models.Meeting) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, meeting); err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

func (r *MongoMeetingRepo) Update(ctx context.Context, meeting *models.Meeting) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	meeting.UpdatedAt = time.Now().UTC()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": meeting.ID}, bson.M{"$set": meeting})
	if err != nil {
		return fmt.Errorf("failed to update meeting with id %s: %w", meeting.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("meeting %s: %w", meeting.ID, database.ErrNotFound)
	}
	return nil
}

func (r *MongoMeetingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete meeting with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("meeting %s: %w", id, database.ErrNotFound)
	}
	return nil
}
