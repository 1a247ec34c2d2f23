package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/flight-reservation-api/internal/config"
	"github.com/iliyamo/flight-reservation-api/internal/handler"
	"github.com/iliyamo/flight-reservation-api/internal/middleware"
	"github.com/iliyamo/flight-reservation-api/internal/model"
)

// Deps carries everything route registration needs. Required roles are
// attached here as explicit per-route middleware arguments; there is no
// annotation or metadata mechanism.
type Deps struct {
	Cfg          config.Config
	Auth         *handler.AuthHandler
	Reservations *handler.ReservationHandler
	Redis        *redis.Client // nil disables cache and rate limiting
}

// Register wires all routes onto the Echo instance.
//
// Authorization policy, per route:
//
//	GET  /                                  admin, staff
//	GET  /v1/reservations                   admin, staff
//	GET  /v1/reservations/with-customers    admin only
//
// The pipeline for protected routes is explicit composition:
// authenticate (JWTAuth) → authorize (RequireRole) → handle. Auth
// failures abort before any store access.
func Register(e *echo.Echo, d Deps) {
	// Unauthenticated operational endpoints.
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Login is public but rate limited: it is the only endpoint where an
	// attacker can try credentials.
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), d.Redis)
	e.POST("/v1/auth/login", d.Auth.Login, limiter)

	jwtAuth := middleware.JWTAuth(d.Cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleStaff)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	e.GET("/", handler.Protected, jwtAuth, anyRole)

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), d.Redis)
	v1 := e.Group("/v1", jwtAuth)
	v1.GET("/reservations", d.Reservations.List, anyRole, cache)
	v1.GET("/reservations/with-customers", d.Reservations.ListWithAnnotations, adminOnly, cache)
}
