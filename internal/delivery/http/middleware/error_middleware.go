// Package middleware contains HTTP-specific echo middleware.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"lmi/internal/delivery/http/response"
	domainerrors "lmi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware centralizes error-to-response mapping.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Validation and
// conflict errors render as 422 field records, AppErrors carry their own
// status, and everything else collapses to an opaque 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Field-level validation failures, including query parameter checks.
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		response.ValidationFailed(c, validationErr.Fields)

		return
	}

	// Uniqueness conflicts render as a single field record.
	var conflictErr *domainerrors.ConflictError
	if errors.As(err, &conflictErr) {
		response.ValidationFailed(c, []domainerrors.FieldError{conflictErr.FieldError()})

		return
	}

	// Known application errors carry their own status and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, err)
		}
		response.Detail(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Echo's own errors (unknown routes, method not allowed).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		response.Detail(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message))

		return
	}

	// Anything else is unexpected; log the cause, hide it from the caller.
	m.logError(c, err)
	response.InternalServerError(c, "")
}

func (m *ErrorMiddleware) logError(c echo.Context, err error) {
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
