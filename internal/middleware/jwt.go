package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-reservation-api/internal/utils"
)

// Context keys under which JWTAuth stores the decoded identity. Handlers
// and the role guard read these instead of re-parsing the token.
const (
	ClaimsKey = "claims"
	RoleKey   = "role"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the decoded claims into the request context. A missing
// header, a malformed value, a bad signature and an expired token all
// produce the same 401 response: the caller is unauthenticated either way,
// and distinguishing the cases would leak information about the token.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.DecodeAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set(ClaimsKey, claims)
			c.Set(RoleKey, claims.Role)
			return next(c)
		}
	}
}
