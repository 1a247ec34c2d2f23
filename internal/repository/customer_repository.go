package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/flight-reservation-api/internal/model"
)

// CustomerRepo provides lookups against the `customers` collection.
type CustomerRepo struct {
	collection *mongo.Collection
}

// NewCustomerRepo wraps the customers collection and indexes the back
// reference to the owning reservation.
func NewCustomerRepo(ctx context.Context, db *mongo.Database) (*CustomerRepo, error) {
	collection := db.Collection("customers")

	reservationIndex := mongo.IndexModel{
		Keys: bson.M{"reservationId": 1},
	}
	if _, err := collection.Indexes().CreateOne(ctx, reservationIndex); err != nil {
		return nil, fmt.Errorf("create reservationId index: %w", err)
	}

	return &CustomerRepo{collection: collection}, nil
}

// GetByID returns a single customer by document id, or ErrNotFound for a
// dangling reference.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", id, err)
	}
	return &c, nil
}

// InsertMany writes the given customers in one bulk operation.
func (r *CustomerRepo) InsertMany(ctx context.Context, customers []model.Customer) error {
	docs := make([]interface{}, len(customers))
	for i := range customers {
		docs[i] = customers[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert customers: %w", err)
	}
	return nil
}

// DeleteAll removes every customer document.
func (r *CustomerRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete customers: %w", err)
	}
	return nil
}
