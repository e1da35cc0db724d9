// Package response renders the wire envelopes every endpoint shares: a
// single "detail" message for outcomes and a "detail" array of field records
// for validation failures.
package response

import (
	"net/http"

	domainerrors "lmi/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// DetailResponse is the envelope for success messages and non-validation errors.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ValidationResponse is the envelope for field-level validation failures.
type ValidationResponse struct {
	Detail []domainerrors.FieldError `json:"detail"`
}

// Detail writes a {"detail": "..."} envelope with the given status code.
func Detail(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, DetailResponse{Detail: message})
}

// OK 200 with a detail message.
func OK(c echo.Context, message string) error {
	return Detail(c, http.StatusOK, message)
}

// Created 201 with a detail message.
func Created(c echo.Context, message string) error {
	return Detail(c, http.StatusCreated, message)
}

// NotFound 404 with a detail message.
func NotFound(c echo.Context, message string) error {
	return Detail(c, http.StatusNotFound, message)
}

// InternalServerError 500 with a detail message.
func InternalServerError(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error."
	}

	return Detail(c, http.StatusInternalServerError, message)
}

// ValidationFailed 422 with the field error array.
func ValidationFailed(c echo.Context, fields []domainerrors.FieldError) error {
	return c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Detail: fields})
}
