package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-reservation-api/internal/model"
)

func invokeWithRole(t *testing.T, role interface{}, required ...string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(RoleKey, role)
	}

	h := RequireRole(required...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec.Code
}

func TestRequireRoleMatrix(t *testing.T) {
	admin := []string{model.RoleAdmin}
	both := []string{model.RoleAdmin, model.RoleStaff}

	tests := []struct {
		name     string
		role     interface{}
		required []string
		want     int
	}{
		{"admin in admin set", model.RoleAdmin, admin, http.StatusOK},
		{"staff in admin set", model.RoleStaff, admin, http.StatusForbidden},
		{"admin in shared set", model.RoleAdmin, both, http.StatusOK},
		{"staff in shared set", model.RoleStaff, both, http.StatusOK},
		{"unknown role", "owner", both, http.StatusForbidden},
		{"no identity", nil, both, http.StatusForbidden},
		{"mistyped role value", 42, both, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := invokeWithRole(t, tt.role, tt.required...); got != tt.want {
				t.Errorf("status = %d, want %d", got, tt.want)
			}
		})
	}
}
