// Package errors defines the application-level error kinds the CRUD pipeline
// produces: validation failures, uniqueness conflicts, not-found signals and
// opaque internal errors. Handlers match these as values, never by inspecting
// raw store errors.
package errors

import (
	"net/http"

	"lmi/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error kinds. Not-found messages are part of the wire contract.
var (
	ErrSaaSAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"SAAS_ADMIN_NOT_FOUND",
		"SAAS Admin not found.",
	)

	ErrHolidayNotFound = NewBaseError(
		http.StatusNotFound,
		"HOLIDAY_NOT_FOUND",
		"Holiday not found.",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed.",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
	)
)

// NewDatabaseExecuteError wraps an unexpected store error into the internal
// kind, keeping the cause in the chain for logging but never for responses.
func NewDatabaseExecuteError(cause error, message string) error {
	return errors.Wrap(errors.Join(ErrInternal, cause), message)
}
