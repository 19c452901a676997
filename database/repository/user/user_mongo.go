package userRepo

import (
	"context"
	"fmt"
	"time"

	"akanuke/database"
	"akanuke/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.MongoClient.Database("akanuke").Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new user record.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return &user, nil
}

// GetByID returns the user with the given ID, or nil if none exists.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by id: %w", err)
	}
	return &user, nil
}

// Delete removes a user record by ID.
func (r *MongoUserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
