package investorRepo

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

// MongoInvestorRepo implements InvestorRepository using MongoDB.
type MongoInvestorRepo struct {
	coll *mongo.Collection
}

// NewMongoInvestorRepo creates a new instance of InvestorRepository using MongoDB.
func NewMongoInvestorRepo(ctx context.Context, db *mongo.Database) (InvestorRepository, error) {
	repo := &MongoInvestorRepo{coll: db.Collection("investors")}
	if err := repo.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *MongoInvestorRepo) GetByID(ctx context.Context, id string) (*models.Investor, error) {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	var investor models.Investor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&investor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("investor %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch investor with id %s: %w", id, err)
	}
	return &investor, nil
}

func (r *MongoInvestorRepo) GetAll(ctx context.Context) ([]models.Investor, error) {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve investors: %w", err)
	}
	defer cursor.Close(ctx)

	investors := []models.Investor{}
	if err := cursor.All(ctx, &investors); err != nil {
		return nil, fmt.Errorf("failed to decode investors: %w", err)
	}
	return investors, nil
}

func (r *MongoInvestorRepo) Create(ctx context.Context, investor *models.Investor) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	if investor.ID == "" {
		investor.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	investor.CreatedAt = now
	investor.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, investor); err != nil {
		return fmt.Errorf("failed to create investor: %w", err)
	}
	return nil
}

func (r *MongoInvestorRepo) Update(ctx context.Context, investor *models.Investor) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	investor.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": investor}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": investor.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update investor with id %s: %w", investor.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("investor %s: %w", investor.ID, database.ErrNotFound)
	}
	return nil
}

func (r *MongoInvestorRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.NewContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete investor with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("investor %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoInvestorRepo) ReplaceAll(ctx context.Context, investors []models.Investor) error {
	ctx, cancel := database.NewContext(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear investors: %w", err)
	}
	if len(investors) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(investors))
	for _, inv := range investors {
		docs = append(docs, inv)
	}
	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("failed to load investors: %w", err)
	}
	return nil
}
