package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/flight-reservation-api/internal/model"
)

// UserRepo provides lookups against the `users` collection. Users are
// written only by the fixture seeder; the API itself never mutates them.
type UserRepo struct {
	collection *mongo.Collection
}

// NewUserRepo wraps the users collection and ensures the unique username
// index exists. Index creation is idempotent; a failure is surfaced so the
// caller can decide whether to continue without the uniqueness guarantee.
func NewUserRepo(ctx context.Context, db *mongo.Database) (*UserRepo, error) {
	collection := db.Collection("users")

	indexModel := mongo.IndexModel{
		Keys:    bson.M{"username": 1},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return nil, fmt.Errorf("create username index: %w", err)
	}

	return &UserRepo{collection: collection}, nil
}

// FindByUsername returns the user with the exact, case-sensitive username.
// No normalization is applied: "Admin" and "admin" are different users.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

// Count reports the number of user documents. The seeder uses it for the
// seed-if-empty check.
func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// InsertMany writes the given users in one bulk operation.
func (r *UserRepo) InsertMany(ctx context.Context, users []model.User) error {
	docs := make([]interface{}, len(users))
	for i := range users {
		docs[i] = users[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert users: %w", err)
	}
	return nil
}

// DeleteAll removes every user document. Only the forced reseed path calls
// this.
func (r *UserRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete users: %w", err)
	}
	return nil
}
