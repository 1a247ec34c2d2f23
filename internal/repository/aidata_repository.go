package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/flight-reservation-api/internal/model"
)

// AiDataRepo provides lookups against the `aiData` collection. Annotation
// documents are keyed by their owning reservation's id, which turns the
// join into a direct _id lookup.
type AiDataRepo struct {
	collection *mongo.Collection
}

func NewAiDataRepo(db *mongo.Database) *AiDataRepo {
	return &AiDataRepo{collection: db.Collection("aiData")}
}

// GetByReservationID returns the annotation for a reservation, or
// ErrNotFound when the reservation has none yet.
func (r *AiDataRepo) GetByReservationID(ctx context.Context, reservationID string) (*model.AiData, error) {
	var a model.AiData
	err := r.collection.FindOne(ctx, bson.M{"_id": reservationID}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get aiData for reservation %s: %w", reservationID, err)
	}
	return &a, nil
}

// InsertMany writes the given annotations in one bulk operation.
func (r *AiDataRepo) InsertMany(ctx context.Context, annotations []model.AiData) error {
	docs := make([]interface{}, len(annotations))
	for i := range annotations {
		docs[i] = annotations[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert aiData: %w", err)
	}
	return nil
}

// DeleteAll removes every annotation document.
func (r *AiDataRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete aiData: %w", err)
	}
	return nil
}
