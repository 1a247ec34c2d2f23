package model

import "time"

// Reservation status values mirror the stored enum.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Reservation is a flight reservation document from the `reservations`
// collection. It owns the list of customer references: Customers holds the
// ids of the Customer documents belonging to this reservation, in booking
// order. Every id is expected to resolve to a Customer whose ReservationID
// points back here, but the store does not enforce this transactionally —
// the composer tolerates a dangling reference.
type Reservation struct {
	ID           string    `bson:"_id,omitempty"`
	FlightNumber string    `bson:"flightNumber"`
	Date         time.Time `bson:"date"` // listing sort key
	Customers    []string  `bson:"customers"`
	Status       string    `bson:"status"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
