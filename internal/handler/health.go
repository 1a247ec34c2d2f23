package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a liveness endpoint for load balancers and monitoring. It does
// not touch the store.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Protected is the static confirmation payload behind the authenticated
// root route. Reaching it proves the caller holds a valid token with an
// accepted role.
func Protected(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "This is a protected route"})
}
