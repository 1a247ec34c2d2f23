package model

import "time"

// Customer is a passenger record from the `customers` collection. Many
// customers reference one reservation; the owning side of the relation is
// the reservation's Customers id list.
type Customer struct {
	ID            string    `bson:"_id,omitempty"`
	Name          string    `bson:"name"`
	Email         string    `bson:"email"`
	Phone         string    `bson:"phone"`
	ReservationID string    `bson:"reservationId"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}
