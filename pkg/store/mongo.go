package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is a MongoDB-backed store for server deployments where
// multiple instances need shared, durable user data.
// Each key maps to one document in a "lists" collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig holds connection settings for a MongoDB store.
type MongoConfig struct {
	URI      string // e.g. "mongodb://localhost:27017"
	Database string // database name, e.g. "ghexplorer"
}

// listDocument is the persisted shape of one key's list.
type listDocument struct {
	Key    string   `bson:"_id"`
	Values []string `bson:"values"`
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection("lists"),
	}, nil
}

func (s *MongoStore) GetStringList(ctx context.Context, key string) ([]string, error) {
	var doc listDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find list: %w", err)
	}
	return doc.Values, nil
}

func (s *MongoStore) SetStringList(ctx context.Context, key string, value []string) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		listDocument{Key: key, Values: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("replace list: %w", err)
	}
	return nil
}

func (s *MongoStore) Remove(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
