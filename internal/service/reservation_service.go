package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/flight-reservation-api/internal/model"
	"github.com/iliyamo/flight-reservation-api/internal/repository"
	"github.com/iliyamo/flight-reservation-api/pkg/logger"
)

// maxLimit bounds the per-page fan-out: each reservation in a page spawns
// one goroutine per customer reference plus one for its annotation.
const maxLimit = 100

// Store slices consumed by the composer. The concrete mongo repositories
// satisfy these; tests substitute in-memory fakes.
type ReservationStore interface {
	Page(ctx context.Context, offset, limit int64) ([]model.Reservation, error)
	Count(ctx context.Context) (int64, error)
}

type CustomerStore interface {
	GetByID(ctx context.Context, id string) (*model.Customer, error)
}

type AnnotationStore interface {
	GetByReservationID(ctx context.Context, reservationID string) (*model.AiData, error)
}

// ReservationService composes paginated reservation views from the three
// collections. It is stateless between calls; every sub-fetch runs under
// the request context, so a disconnected caller cancels in-flight lookups
// instead of awaiting them.
type ReservationService struct {
	reservations ReservationStore
	customers    CustomerStore
	annotations  AnnotationStore
	log          logger.Logger
}

func NewReservationService(r ReservationStore, c CustomerStore, a AnnotationStore, log logger.Logger) *ReservationService {
	return &ReservationService{reservations: r, customers: c, annotations: a, log: log}
}

// CustomerView is a resolved customer entry in a reservation view.
type CustomerView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ReservationView is a reservation with its customer references resolved
// and timestamps rendered as ISO-8601 strings.
type ReservationView struct {
	ID           string         `json:"id"`
	FlightNumber string         `json:"flightNumber"`
	Date         string         `json:"date"`
	Customers    []CustomerView `json:"customers"`
	Status       string         `json:"status"`
	CreatedAt    string         `json:"createdAt"`
	UpdatedAt    string         `json:"updatedAt"`
}

// AiDataView is the annotation attached to an annotated reservation view.
type AiDataView struct {
	ReservationID string   `json:"reservationId"`
	AiComments    []string `json:"aiComments"`
	AiSuggestions []string `json:"aiSuggestions"`
	Summary       string   `json:"summary"`
	GeneratedAt   string   `json:"generatedAt"`
}

// AnnotatedReservationView carries an explicit aiData field. No omitempty:
// a reservation without an annotation serializes as "aiData": null so
// clients can distinguish "none" from "not requested".
type AnnotatedReservationView struct {
	ReservationView
	AiData *AiDataView `json:"aiData"`
}

// ReservationPage is the listing envelope. Total is the unfiltered count
// of all reservations regardless of page and limit.
type ReservationPage struct {
	Data  []ReservationView `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// AnnotatedReservationPage is the envelope for the annotated listing.
type AnnotatedReservationPage struct {
	Data  []AnnotatedReservationView `json:"data"`
	Total int64                      `json:"total"`
	Page  int                        `json:"page"`
	Limit int                        `json:"limit"`
}

func validatePagination(page, limit int) error {
	if page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidArgument)
	}
	if limit < 1 || limit > maxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidArgument, maxLimit)
	}
	return nil
}

// List returns one page of reservations ordered by ascending date with
// their customer references resolved. The page fetch and the total count
// have no ordering dependency, so they run concurrently and join before
// composing; the per-reservation customer resolution then fans out with
// the same first-error-wins barrier.
func (s *ReservationService) List(ctx context.Context, page, limit int) (*ReservationPage, error) {
	if err := validatePagination(page, limit); err != nil {
		return nil, err
	}
	offset := int64(page-1) * int64(limit)

	var (
		reservations []model.Reservation
		total        int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reservations, err = s.reservations.Page(gctx, offset, int64(limit))
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.reservations.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := make([]ReservationView, len(reservations))
	g, gctx = errgroup.WithContext(ctx)
	for i := range reservations {
		i := i
		g.Go(func() error {
			v, err := s.composeView(gctx, &reservations[i])
			if err != nil {
				return err
			}
			views[i] = *v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ReservationPage{Data: views, Total: total, Page: page, Limit: limit}, nil
}

// ListWithAnnotations returns the same page as List with each view
// augmented by its AiData document. The annotation lives under the
// reservation's own id, so attaching it costs one direct lookup per
// reservation. A missing annotation yields a null aiData; any lookup
// failure aborts the whole response — there is no partial-success mode.
func (s *ReservationService) ListWithAnnotations(ctx context.Context, page, limit int) (*AnnotatedReservationPage, error) {
	result, err := s.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	annotated := make([]AnnotatedReservationView, len(result.Data))
	g, gctx := errgroup.WithContext(ctx)
	for i := range result.Data {
		i := i
		g.Go(func() error {
			view := AnnotatedReservationView{ReservationView: result.Data[i]}
			a, err := s.annotations.GetByReservationID(gctx, result.Data[i].ID)
			switch {
			case errors.Is(err, repository.ErrNotFound):
				// No annotation yet; aiData stays null.
			case err != nil:
				return err
			default:
				view.AiData = &AiDataView{
					ReservationID: a.ReservationID,
					AiComments:    a.AiComments,
					AiSuggestions: a.AiSuggestions,
					Summary:       a.Summary,
					GeneratedAt:   a.GeneratedAt.UTC().Format(time.RFC3339),
				}
			}
			annotated[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &AnnotatedReservationPage{
		Data:  annotated,
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	}, nil
}

// composeView resolves a reservation's customer id list into full records,
// preserving the stored order. Lookups are independent and fan out; the
// results land in an index-addressed slice so concurrency cannot reorder
// them. A dangling reference is dropped from the view with a warning —
// one orphaned id should not take down the whole page, and a null entry
// would push nil-checks onto every client.
func (s *ReservationService) composeView(ctx context.Context, r *model.Reservation) (*ReservationView, error) {
	resolved := make([]*model.Customer, len(r.Customers))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range r.Customers {
		i, id := i, id
		g.Go(func() error {
			c, err := s.customers.GetByID(gctx, id)
			if errors.Is(err, repository.ErrNotFound) {
				s.log.Warn("dangling customer reference", "reservationId", r.ID, "customerId", id)
				return nil
			}
			if err != nil {
				return err
			}
			resolved[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	customers := make([]CustomerView, 0, len(resolved))
	for _, c := range resolved {
		if c == nil {
			continue
		}
		customers = append(customers, CustomerView{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	return &ReservationView{
		ID:           r.ID,
		FlightNumber: r.FlightNumber,
		Date:         r.Date.UTC().Format(time.RFC3339),
		Customers:    customers,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}
