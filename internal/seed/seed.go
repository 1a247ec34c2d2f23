// Package seed generates the mock fixture set: two login accounts plus a
// corpus of reservations, their customers and one AI annotation per
// reservation. Seeding is idempotent — it runs only when the users
// collection is empty, unless a forced regeneration is requested.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/flight-reservation-api/internal/model"
	"github.com/iliyamo/flight-reservation-api/internal/utils"
	"github.com/iliyamo/flight-reservation-api/pkg/logger"
	"github.com/iliyamo/flight-reservation-api/pkg/metrics"
)

// Store slices consumed by the seeder; satisfied by the mongo repositories.
type UserStore interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, users []model.User) error
	DeleteAll(ctx context.Context) error
}

type ReservationStore interface {
	InsertMany(ctx context.Context, reservations []model.Reservation) error
	DeleteAll(ctx context.Context) error
}

type CustomerStore interface {
	InsertMany(ctx context.Context, customers []model.Customer) error
	DeleteAll(ctx context.Context) error
}

type AnnotationStore interface {
	InsertMany(ctx context.Context, annotations []model.AiData) error
	DeleteAll(ctx context.Context) error
}

// Seeder writes mock fixtures into the four collections.
type Seeder struct {
	users        UserStore
	reservations ReservationStore
	customers    CustomerStore
	annotations  AnnotationStore
	log          logger.Logger
	m            *metrics.Metrics // optional

	bcryptCost       int
	reservationCount int
	rng              *rand.Rand
}

// NewSeeder builds a seeder producing the default corpus of 1000
// reservations. Metrics may be nil.
func NewSeeder(u UserStore, r ReservationStore, c CustomerStore, a AnnotationStore, log logger.Logger, m *metrics.Metrics, bcryptCost int) *Seeder {
	return &Seeder{
		users:            u,
		reservations:     r,
		customers:        c,
		annotations:      a,
		log:              log,
		m:                m,
		bcryptCost:       bcryptCost,
		reservationCount: 1000,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetReservationCount overrides the corpus size. Used by tests to keep the
// fixture set small.
func (s *Seeder) SetReservationCount(n int) { s.reservationCount = n }

// EnsureSeeded seeds the store when the users collection is empty. With
// force set, all four collections are wiped and regenerated regardless of
// existing data. Without force, a populated users collection means the
// fixtures are present and the call is a no-op, so invoking it twice
// leaves the store unchanged.
func (s *Seeder) EnsureSeeded(ctx context.Context, force bool) error {
	if force {
		s.log.Warn("force regenerating mock fixtures")
		if err := s.reset(ctx); err != nil {
			return err
		}
		return s.generate(ctx)
	}

	n, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("check users collection: %w", err)
	}
	if n > 0 {
		s.log.Info("mock fixtures already present", "users", n)
		return nil
	}
	return s.generate(ctx)
}

func (s *Seeder) reset(ctx context.Context) error {
	if err := s.annotations.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.customers.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.reservations.DeleteAll(ctx); err != nil {
		return err
	}
	return s.users.DeleteAll(ctx)
}

// generate builds the whole fixture set in memory, then bulk-writes one
// collection at a time. Customer ids are allocated before the owning
// reservation is assembled so the reservation's id list and each
// customer's back reference agree by construction. Users are written last:
// the seed-if-empty check keys on the users collection, so a crash midway
// leaves the next startup to reseed rather than half-seeded fixtures
// passing as complete.
func (s *Seeder) generate(ctx context.Context) error {
	s.log.Info("generating mock fixtures", "reservations", s.reservationCount)

	users, err := s.buildUsers()
	if err != nil {
		return err
	}

	statuses := []string{model.StatusConfirmed, model.StatusPending, model.StatusCancelled}
	now := time.Now().UTC()

	reservations := make([]model.Reservation, 0, s.reservationCount)
	customers := make([]model.Customer, 0, s.reservationCount*2)
	annotations := make([]model.AiData, 0, s.reservationCount)

	for i := 0; i < s.reservationCount; i++ {
		reservationID := primitive.NewObjectID().Hex()
		customerCount := s.rng.Intn(3) + 1 // 1-3 customers per reservation

		customerIDs := make([]string, 0, customerCount)
		for j := 0; j < customerCount; j++ {
			customerID := primitive.NewObjectID().Hex()
			customerIDs = append(customerIDs, customerID)
			customers = append(customers, model.Customer{
				ID:            customerID,
				Name:          "Customer " + s.randTag(),
				Email:         fmt.Sprintf("customer%s@example.com", s.randTag()),
				Phone:         fmt.Sprintf("+1%d", s.rng.Int63n(9000000000)+1000000000),
				ReservationID: reservationID,
				CreatedAt:     now,
				UpdatedAt:     now,
			})
		}

		status := statuses[s.rng.Intn(len(statuses))]
		flight := fmt.Sprintf("FL%d", s.rng.Intn(10000))
		reservations = append(reservations, model.Reservation{
			ID:           reservationID,
			FlightNumber: flight,
			Date:         now.Add(time.Duration(s.rng.Int63n(int64(30 * 24 * time.Hour)))),
			Customers:    customerIDs,
			Status:       status,
			CreatedAt:    now,
			UpdatedAt:    now,
		})

		annotations = append(annotations, model.AiData{
			ID:            reservationID,
			ReservationID: reservationID,
			AiComments: []string{
				"Flight is scheduled on time.",
				"Weather conditions are favorable.",
				"Standard baggage allowance applies.",
			},
			AiSuggestions: []string{
				"Consider offering seat upgrade options.",
				"Recommend travel insurance.",
				"Suggest early check-in.",
			},
			Summary:     fmt.Sprintf("Reservation %s is %s for flight %s.", reservationID, status, flight),
			GeneratedAt: now,
		})
	}

	if err := s.customers.InsertMany(ctx, customers); err != nil {
		return err
	}
	s.count("customers", len(customers))
	if err := s.reservations.InsertMany(ctx, reservations); err != nil {
		return err
	}
	s.count("reservations", len(reservations))
	if err := s.annotations.InsertMany(ctx, annotations); err != nil {
		return err
	}
	s.count("aiData", len(annotations))
	if err := s.users.InsertMany(ctx, users); err != nil {
		return err
	}
	s.count("users", len(users))

	s.log.Info("mock fixtures written",
		"users", len(users),
		"reservations", len(reservations),
		"customers", len(customers),
		"aiData", len(annotations))
	return nil
}

func (s *Seeder) buildUsers() ([]model.User, error) {
	now := time.Now().UTC()
	users := make([]model.User, 0, 2)
	for _, spec := range []struct{ username, role string }{
		{"admin", model.RoleAdmin},
		{"staff", model.RoleStaff},
	} {
		hash, err := utils.HashPassword("123456", s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash fixture password: %w", err)
		}
		users = append(users, model.User{
			ID:           primitive.NewObjectID().Hex(),
			Username:     spec.username,
			PasswordHash: hash,
			Role:         spec.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return users, nil
}

const tagAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func (s *Seeder) randTag() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = tagAlphabet[s.rng.Intn(len(tagAlphabet))]
	}
	return string(b)
}

func (s *Seeder) count(collection string, n int) {
	if s.m != nil {
		s.m.SeededDocuments.WithLabelValues(collection).Add(float64(n))
	}
}
