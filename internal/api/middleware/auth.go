package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Levezze/e-commerce-rest-api/internal/api/metrics"
	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
	"github.com/Levezze/e-commerce-rest-api/internal/core/ports"
)

// identityKey is the echo context key holding the verified *ports.Identity.
const identityKey = "auth_identity"

// Auth extracts and verifies the bearer token and injects the resulting
// identity into the request context. The Authorization header must match the
// exact scheme "Bearer <token>" with a single separating space; anything
// else is rejected before any cryptographic work.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "access token is missing or malformed")
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" || strings.ContainsAny(tokenString, " \t") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "access token is missing or malformed")
			}

			identity, err := verifier.Verify(tokenString)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(identityKey, identity)

			return next(c)
		}
	}
}

// IdentityFrom returns the identity attached by Auth, if any.
func IdentityFrom(c echo.Context) (*ports.Identity, bool) {
	identity, ok := c.Get(identityKey).(*ports.Identity)
	return identity, ok && identity != nil
}
