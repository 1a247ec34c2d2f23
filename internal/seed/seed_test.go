package seed

import (
	"context"
	"testing"

	"github.com/iliyamo/flight-reservation-api/internal/model"
	"github.com/iliyamo/flight-reservation-api/internal/utils"
	"github.com/iliyamo/flight-reservation-api/pkg/logger"
)

type memStore struct {
	users        []model.User
	reservations []model.Reservation
	customers    []model.Customer
	annotations  []model.AiData
	resets       int
}

// Per-collection views over memStore so one fixture can satisfy all four
// seeder interfaces.
type userView struct{ *memStore }

func (v userView) Count(_ context.Context) (int64, error) { return int64(len(v.users)), nil }
func (v userView) InsertMany(_ context.Context, users []model.User) error {
	v.memStore.users = append(v.memStore.users, users...)
	return nil
}
func (v userView) DeleteAll(_ context.Context) error {
	v.memStore.users = nil
	v.memStore.resets++
	return nil
}

type reservationView struct{ *memStore }

func (v reservationView) InsertMany(_ context.Context, r []model.Reservation) error {
	v.memStore.reservations = append(v.memStore.reservations, r...)
	return nil
}
func (v reservationView) DeleteAll(_ context.Context) error {
	v.memStore.reservations = nil
	return nil
}

type customerView struct{ *memStore }

func (v customerView) InsertMany(_ context.Context, c []model.Customer) error {
	v.memStore.customers = append(v.memStore.customers, c...)
	return nil
}
func (v customerView) DeleteAll(_ context.Context) error {
	v.memStore.customers = nil
	return nil
}

type annotationView struct{ *memStore }

func (v annotationView) InsertMany(_ context.Context, a []model.AiData) error {
	v.memStore.annotations = append(v.memStore.annotations, a...)
	return nil
}
func (v annotationView) DeleteAll(_ context.Context) error {
	v.memStore.annotations = nil
	return nil
}

func newTestSeeder(store *memStore, n int) *Seeder {
	s := NewSeeder(userView{store}, reservationView{store}, customerView{store}, annotationView{store}, logger.NewNop(), nil, 4)
	s.SetReservationCount(n)
	return s
}

func TestSeedGeneratesConsistentFixtures(t *testing.T) {
	store := &memStore{}
	seeder := newTestSeeder(store, 20)

	if err := seeder.EnsureSeeded(context.Background(), false); err != nil {
		t.Fatalf("EnsureSeeded() error: %v", err)
	}

	if len(store.users) != 2 {
		t.Fatalf("users = %d, want 2", len(store.users))
	}
	roles := map[string]string{}
	for _, u := range store.users {
		roles[u.Username] = u.Role
		if !utils.VerifyPassword(u.PasswordHash, "123456") {
			t.Errorf("user %s: stored hash does not verify against the fixture password", u.Username)
		}
		if u.PasswordHash == "123456" {
			t.Errorf("user %s: password stored in plaintext", u.Username)
		}
	}
	if roles["admin"] != model.RoleAdmin || roles["staff"] != model.RoleStaff {
		t.Errorf("unexpected fixture roles: %v", roles)
	}

	if len(store.reservations) != 20 {
		t.Fatalf("reservations = %d, want 20", len(store.reservations))
	}
	if len(store.annotations) != 20 {
		t.Fatalf("annotations = %d, want one per reservation", len(store.annotations))
	}

	// Referential integrity: every reservation's customer ids resolve to a
	// customer pointing back at the reservation, and the annotation is
	// keyed by the reservation id.
	customersByID := map[string]model.Customer{}
	for _, c := range store.customers {
		customersByID[c.ID] = c
	}
	annotationsByID := map[string]model.AiData{}
	for _, a := range store.annotations {
		annotationsByID[a.ID] = a
	}

	referenced := 0
	for _, r := range store.reservations {
		if len(r.Customers) < 1 || len(r.Customers) > 3 {
			t.Errorf("reservation %s has %d customers, want 1-3", r.ID, len(r.Customers))
		}
		for _, cid := range r.Customers {
			c, ok := customersByID[cid]
			if !ok {
				t.Errorf("reservation %s references missing customer %s", r.ID, cid)
				continue
			}
			if c.ReservationID != r.ID {
				t.Errorf("customer %s points at %s, owned by %s", cid, c.ReservationID, r.ID)
			}
			referenced++
		}
		a, ok := annotationsByID[r.ID]
		if !ok {
			t.Errorf("reservation %s has no annotation", r.ID)
		} else if a.ReservationID != r.ID {
			t.Errorf("annotation for %s carries reservationId %s", r.ID, a.ReservationID)
		}
	}
	if referenced != len(store.customers) {
		t.Errorf("%d customers stored, %d referenced; no orphans expected", len(store.customers), referenced)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	store := &memStore{}
	seeder := newTestSeeder(store, 5)
	ctx := context.Background()

	if err := seeder.EnsureSeeded(ctx, false); err != nil {
		t.Fatalf("first EnsureSeeded() error: %v", err)
	}
	usersAfterFirst := len(store.users)
	reservationsAfterFirst := len(store.reservations)

	if err := seeder.EnsureSeeded(ctx, false); err != nil {
		t.Fatalf("second EnsureSeeded() error: %v", err)
	}
	if len(store.users) != usersAfterFirst {
		t.Errorf("users count changed on reseed: %d -> %d", usersAfterFirst, len(store.users))
	}
	if len(store.reservations) != reservationsAfterFirst {
		t.Errorf("reservations count changed on reseed: %d -> %d", reservationsAfterFirst, len(store.reservations))
	}
}

func TestSeedForceRegenerates(t *testing.T) {
	store := &memStore{}
	seeder := newTestSeeder(store, 5)
	ctx := context.Background()

	if err := seeder.EnsureSeeded(ctx, false); err != nil {
		t.Fatalf("EnsureSeeded() error: %v", err)
	}
	firstIDs := map[string]bool{}
	for _, r := range store.reservations {
		firstIDs[r.ID] = true
	}

	if err := seeder.EnsureSeeded(ctx, true); err != nil {
		t.Fatalf("forced EnsureSeeded() error: %v", err)
	}
	if store.resets != 1 {
		t.Errorf("resets = %d, want 1", store.resets)
	}
	if len(store.reservations) != 5 {
		t.Errorf("reservations = %d after force, want 5", len(store.reservations))
	}
	for _, r := range store.reservations {
		if firstIDs[r.ID] {
			t.Errorf("reservation %s survived the forced regeneration", r.ID)
		}
	}
}
