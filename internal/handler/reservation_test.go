package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-reservation-api/internal/model"
	"github.com/iliyamo/flight-reservation-api/internal/repository"
	"github.com/iliyamo/flight-reservation-api/internal/service"
	"github.com/iliyamo/flight-reservation-api/pkg/logger"
)

type memReservations struct{ items []model.Reservation }

func (m *memReservations) Page(_ context.Context, offset, limit int64) ([]model.Reservation, error) {
	if offset >= int64(len(m.items)) {
		return nil, nil
	}
	end := offset + limit
	if end > int64(len(m.items)) {
		end = int64(len(m.items))
	}
	return m.items[offset:end], nil
}

func (m *memReservations) Count(_ context.Context) (int64, error) { return int64(len(m.items)), nil }

type memCustomers struct{}

func (memCustomers) GetByID(_ context.Context, id string) (*model.Customer, error) {
	return nil, repository.ErrNotFound
}

type memAnnotations struct{}

func (memAnnotations) GetByReservationID(_ context.Context, id string) (*model.AiData, error) {
	return nil, repository.ErrNotFound
}

func newTestReservationHandler() *ReservationHandler {
	// Already date-ordered; the handler tests only exercise parameter
	// handling and envelope shape, ordering is covered in the service tests.
	store := &memReservations{}
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		store.items = append(store.items, model.Reservation{
			ID:     string(rune('a' + i)),
			Date:   base.Add(time.Duration(i) * time.Hour),
			Status: model.StatusPending,
		})
	}
	svc := service.NewReservationService(store, memCustomers{}, memAnnotations{}, logger.NewNop())
	return NewReservationHandler(svc, logger.NewNop())
}

func getReservations(t *testing.T, target string, annotated bool) *httptest.ResponseRecorder {
	t.Helper()
	h := newTestReservationHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var err error
	if annotated {
		err = h.ListWithAnnotations(c)
	} else {
		err = h.List(c)
	}
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestListDefaults(t *testing.T) {
	rec := getReservations(t, "/v1/reservations", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var page service.ReservationPage
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if page.Page != 1 || page.Limit != 5 {
		t.Errorf("defaults = page %d limit %d, want 1/5", page.Page, page.Limit)
	}
	if len(page.Data) != 5 || page.Total != 7 {
		t.Errorf("got %d items, total %d; want 5 items, total 7", len(page.Data), page.Total)
	}
}

func TestListParamValidation(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"page zero", "/v1/reservations?page=0&limit=5"},
		{"negative page", "/v1/reservations?page=-2"},
		{"zero limit", "/v1/reservations?limit=0"},
		{"non-numeric page", "/v1/reservations?page=abc"},
		{"non-numeric limit", "/v1/reservations?limit=5x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := getReservations(t, tt.target, false); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestListWithAnnotationsNullAiData(t *testing.T) {
	rec := getReservations(t, "/v1/reservations/with-customers?page=1&limit=3", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	// The aiData key must be present and explicitly null when the
	// reservation has no annotation.
	var raw struct {
		Data []map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(raw.Data) != 3 {
		t.Fatalf("got %d items, want 3", len(raw.Data))
	}
	for i, item := range raw.Data {
		v, ok := item["aiData"]
		if !ok {
			t.Fatalf("item %d: aiData key missing", i)
		}
		if string(v) != "null" {
			t.Errorf("item %d: aiData = %s, want null", i, v)
		}
	}
}
