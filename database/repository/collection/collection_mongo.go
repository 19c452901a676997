package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"akanuke/database"
	"akanuke/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// document is one stored collection: the JSON payload for (owner, key).
type document struct {
	Owner     string    `bson:"owner"`
	Key       string    `bson:"key"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore implements Store on a single MongoDB collection of keyed
// JSON documents.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore creates a Store backed by MongoDB.
func NewMongoStore() Store {
	coll := database.MongoClient.Database("akanuke").Collection("collections")
	store := &MongoStore{coll: coll}

	if err := store.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("collection store: failed to create indexes", zap.Error(err))
	}
	return store
}

func (s *MongoStore) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := s.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Load fills dest with the stored value for (owner, key). Absent keys and
// corrupt payloads leave dest untouched; corruption is logged and the key
// treated as absent so the caller's default stands in.
func (s *MongoStore) Load(ctx context.Context, owner, key string, dest any) error {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"owner": owner, "key": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return fmt.Errorf("collection store: load %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(doc.Data), dest); err != nil {
		utils.GetLogger().Warn("collection store: corrupt payload, falling back to default",
			zap.String("owner", owner), zap.String("key", key), zap.Error(err))
		return nil
	}
	return nil
}

// Save serializes value and upserts it under (owner, key).
func (s *MongoStore) Save(ctx context.Context, owner, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("collection store: marshal %q: %w", key, err)
	}

	update := bson.M{"$set": bson.M{
		"owner":      owner,
		"key":        key,
		"data":       string(data),
		"updated_at": time.Now(),
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := s.coll.UpdateOne(ctx, bson.M{"owner": owner, "key": key}, update, opts); err != nil {
		return fmt.Errorf("collection store: save %q: %w", key, err)
	}
	return nil
}

// Remove deletes the stored value for (owner, key). Removing an absent key
// is not an error.
func (s *MongoStore) Remove(ctx context.Context, owner, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"owner": owner, "key": key}); err != nil {
		return fmt.Errorf("collection store: remove %q: %w", key, err)
	}
	return nil
}

// RemoveOwner drops every collection belonging to the owner.
func (s *MongoStore) RemoveOwner(ctx context.Context, owner string) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{"owner": owner}); err != nil {
		return fmt.Errorf("collection store: remove owner: %w", err)
	}
	return nil
}
