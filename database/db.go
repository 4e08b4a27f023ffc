package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"raisedesk/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by every repository when a record id is unknown.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a record changed between being read and written back.
var ErrConflict = errors.New("record was modified concurrently")

// NextVersion returns the updatedAt stamp that replaces prev. It has millisecond
// precision so it survives a BSON round trip, and is strictly after prev.
func NextVersion(prev, now time.Time) time.Time {
	next := now.UTC().Truncate(time.Millisecond)
	if !next.After(prev) {
		next = prev.UTC().Truncate(time.Millisecond).Add(time.Millisecond)
	}
	return next
}

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection.
func InitDB(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	MongoClient = client
	return nil
}

// DB returns the application database handle.
func DB() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}

// Ping checks the MongoDB connection.
func Ping(ctx context.Context) error {
	if MongoClient == nil {
		return errors.New("mongo client not initialized")
	}
	return MongoClient.Ping(ctx, nil)
}

// NewContext derives a bounded context for a single query.
func NewContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
