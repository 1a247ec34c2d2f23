package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole returns a middleware that enforces that the authenticated
// identity's role is in the given set. The required roles are static,
// per-route configuration: listing reservations admits admin and staff,
// the annotated listing admits admin only. A valid token with an
// insufficient role yields 403, distinct from the 401 an invalid token
// produces. It assumes JWTAuth ran earlier and stored the role in the
// context; a missing or mistyped role is treated as not allowed.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(RoleKey).(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
