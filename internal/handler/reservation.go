package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-reservation-api/internal/service"
	"github.com/iliyamo/flight-reservation-api/pkg/logger"
)

// requestTimeout bounds the whole composition, including the count and
// every fan-out lookup. Offset pagination has no upper latency bound of
// its own on deep pages; this is the backstop.
const requestTimeout = 10 * time.Second

// ReservationHandler exposes the paginated listing endpoints.
type ReservationHandler struct {
	Reservations *service.ReservationService
	Log          logger.Logger
}

func NewReservationHandler(r *service.ReservationService, log logger.Logger) *ReservationHandler {
	return &ReservationHandler{Reservations: r, Log: log}
}

// List handles GET /v1/reservations?page=&limit= for admin and staff.
func (h *ReservationHandler) List(c echo.Context) error {
	page, limit, err := paginationParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	result, err := h.Reservations.List(ctx, page, limit)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ListWithAnnotations handles GET /v1/reservations/with-customers for
// admin only, attaching each reservation's AI annotation.
func (h *ReservationHandler) ListWithAnnotations(c echo.Context) error {
	page, limit, err := paginationParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	result, err := h.Reservations.ListWithAnnotations(ctx, page, limit)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// paginationParams parses page and limit with the original defaults
// (page=1, limit=5). Values that do not parse as integers are rejected
// rather than silently defaulted; range validation happens in the service.
func paginationParams(c echo.Context) (page, limit int, err error) {
	page, err = intParam(c, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	limit, err = intParam(c, "limit", 5)
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func intParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return n, nil
}

func (h *ReservationHandler) mapError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrInvalidArgument) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	h.Log.Error("reservation listing failed", "error", err)
	return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store unavailable"})
}
