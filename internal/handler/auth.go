package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-reservation-api/internal/queue"
	"github.com/iliyamo/flight-reservation-api/internal/service"
	"github.com/iliyamo/flight-reservation-api/pkg/logger"
	"github.com/iliyamo/flight-reservation-api/pkg/metrics"
)

// AuthHandler bundles dependencies for the login endpoint.
type AuthHandler struct {
	Auth    *service.AuthService
	Log     logger.Logger
	Metrics *metrics.Metrics

	// PublishAudit allows tests to stub out the broker. Defaults to
	// queue.PublishLoginEvent.
	PublishAudit func(ctx context.Context, ev queue.LoginEvent) error
}

func NewAuthHandler(auth *service.AuthService, log logger.Logger, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		Auth:         auth,
		Log:          log,
		Metrics:      m,
		PublishAudit: queue.PublishLoginEvent,
	}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login validates credentials and returns a signed access token with the
// user summary. Bad credentials yield 401 with no hint whether the
// username or the password was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result, err := h.Auth.Login(ctx, req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.countLogin("failure")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	if err != nil {
		h.Log.Error("login store failure", "error", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store unavailable"})
	}

	h.countLogin("success")
	h.publishAudit(result, c.RealIP())

	return c.JSON(http.StatusOK, result)
}

// publishAudit emits the login event in the background. Audit publishing
// is fire-and-forget: a broker outage is logged, never surfaced to the
// client, and never delays the response.
func (h *AuthHandler) publishAudit(result *service.LoginResult, remoteIP string) {
	ev := queue.LoginEvent{
		Username: result.User.Username,
		Role:     result.User.Role,
		RemoteIP: remoteIP,
		At:       time.Now().UTC(),
	}
	publish := h.PublishAudit
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := publish(ctx, ev); err != nil {
			h.Log.Warn("publish login event failed", "error", err)
		}
	}()
}

func (h *AuthHandler) countLogin(result string) {
	if h.Metrics != nil {
		h.Metrics.LoginsTotal.WithLabelValues(result).Inc()
	}
}
