package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
)

// RequireRole enforces role-based access control. It must run after Auth:
// a request without a verified identity is forbidden outright. The allowed
// set is fixed at route-registration time.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			if _, ok := allowed[identity.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
