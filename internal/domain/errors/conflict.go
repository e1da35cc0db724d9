package errors

import "fmt"

// ConflictError signals that a mutation would violate a uniqueness rule,
// tagged to the offending input field. Both the optimistic pre-check and the
// store's constraint-violation fallback produce this same value, so callers
// have a single match point (errors.As) regardless of which path fired.
type ConflictError struct {
	Resource string // display label, e.g. "SAAS Admin"
	Field    string // input field that owns the conflict, e.g. "email"
	Value    string // the conflicting input value
}

// NewConflictError builds a conflict for the given resource/field/value.
func NewConflictError(resource, field, value string) *ConflictError {
	return &ConflictError{Resource: resource, Field: field, Value: value}
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s already exists.", e.Value, e.Resource)
}

// FieldError renders the conflict as a field-level validation record, the
// same shape plain input validation produces.
func (e *ConflictError) FieldError() FieldError {
	msg := fmt.Sprintf("%s %s already exists", e.Value, e.Resource)

	return FieldError{
		Type:  "value_error",
		Loc:   []string{"body", e.Field},
		Msg:   "Value error, " + msg,
		Input: e.Value,
		Ctx:   map[string]any{"error": msg + "."},
	}
}
