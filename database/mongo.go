package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"stickynotes/notes/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore holds the client and the notes collection of the document store.
type MongoStore struct {
	Client     *mongo.Client
	Collection *mongo.Collection
	timeout    time.Duration
}

// SetupMongo connects to MongoDB, verifies the connection and ensures the
// indexes used for listing exist.
func SetupMongo(cfg config.Config) (*MongoStore, error) {
	timeout := time.Duration(cfg.MongoTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	collection := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
	_, err = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "updatedAt", Value: -1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create mongo indexes: %w", err)
	}
	log.Printf("Connected to mongo collection %s.%s", cfg.MongoDatabase, cfg.MongoCollection)

	return &MongoStore{Client: client, Collection: collection, timeout: timeout}, nil
}

func (m *MongoStore) Close() {
	if m.Client == nil {
		log.Println("Mongo client is nil, nothing to close.")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	if err := m.Client.Disconnect(ctx); err != nil {
		log.Printf("Failed to disconnect from mongo: %v", err)
	}
}
