package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/flight-reservation-api/internal/model"
)

// ReservationRepo provides paged reads against the `reservations`
// collection.
type ReservationRepo struct {
	collection *mongo.Collection
}

// NewReservationRepo wraps the reservations collection and ensures the
// index backing the listing sort order.
func NewReservationRepo(ctx context.Context, db *mongo.Database) (*ReservationRepo, error) {
	collection := db.Collection("reservations")

	dateIndex := mongo.IndexModel{
		Keys: bson.M{"date": 1},
	}
	if _, err := collection.Indexes().CreateOne(ctx, dateIndex); err != nil {
		return nil, fmt.Errorf("create date index: %w", err)
	}

	return &ReservationRepo{collection: collection}, nil
}

// Page returns reservations ordered by date ascending, skipping offset
// documents. Offset pagination is O(offset) on the server side: the store
// walks and discards the skipped documents on every call. Acceptable at
// the collection sizes this service targets; revisit with a cursor on the
// date index if collections grow past that.
func (r *ReservationRepo) Page(ctx context.Context, offset, limit int64) ([]model.Reservation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("page reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []model.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}
	return reservations, nil
}

// Count reports the unfiltered total used in the listing envelope.
func (r *ReservationRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return n, nil
}

// InsertMany writes the given reservations in one bulk operation.
func (r *ReservationRepo) InsertMany(ctx context.Context, reservations []model.Reservation) error {
	docs := make([]interface{}, len(reservations))
	for i := range reservations {
		docs[i] = reservations[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert reservations: %w", err)
	}
	return nil
}

// DeleteAll removes every reservation document.
func (r *ReservationRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete reservations: %w", err)
	}
	return nil
}
