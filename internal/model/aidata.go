package model

import "time"

// AiData holds the generated annotation for a single reservation. The
// document id in the `aiData` collection equals the owning reservation's
// id, so the composer can fetch it with a direct lookup instead of a scan.
// At most one AiData document exists per reservation; absence is a valid
// state (the reservation simply has no annotation yet).
type AiData struct {
	ID            string    `bson:"_id,omitempty"`
	ReservationID string    `bson:"reservationId"`
	AiComments    []string  `bson:"aiComments"`
	AiSuggestions []string  `bson:"aiSuggestions"`
	Summary       string    `bson:"summary"`
	GeneratedAt   time.Time `bson:"generatedAt"`
}
