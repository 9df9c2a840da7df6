package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Levezze/e-commerce-rest-api/internal/core/domain"
)

// errorResponse is the envelope for all 4xx errors raised by the auth core.
type errorResponse struct {
	Message string `json:"message"`
}

// serverError wraps uncaught failures surfaced by the outer boundary.
type serverError struct {
	Error serverErrorBody `json:"error"`
}

type serverErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Status  int    `json:"status"`
}

// statusOf is the single taxonomy-to-status mapping. Every domain sentinel
// resolves here; handlers never pick status codes for domain errors.
func statusOf(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, true
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrProtectedUser):
		return http.StatusForbidden, true
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, true
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, true
	}
	return 0, false
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status with a {"message"} body.
//   - Logs unexpected errors server-side and returns the sanitized
//     {"error": {...}} envelope; details are included only outside
//     production.
func NewHTTPErrorHandler(log zerolog.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Echo's own errors (middleware rejections, 404 from the router,
		// bind failures).
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)})
			return
		}

		if code, ok := statusOf(err); ok {
			_ = c.JSON(code, errorResponse{Message: err.Error()})
			return
		}

		// Unexpected error: log the real cause, return a generic envelope.
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		body := serverErrorBody{
			Message: "internal server error",
			Status:  http.StatusInternalServerError,
		}
		if !production {
			body.Details = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, serverError{Error: body})
	}
}
