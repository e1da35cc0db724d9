package errors

import "strings"

// FieldError is a single field-level validation failure, serialized under the
// 422 response's "detail" array as a type/loc/msg/input/ctx record.
type FieldError struct {
	Type  string         `json:"type"`
	Loc   []string       `json:"loc"`
	Msg   string         `json:"msg"`
	Input any            `json:"input"`
	Ctx   map[string]any `json:"ctx,omitempty"`
}

// ValidationError aggregates field-level failures for one request. It renders
// as HTTP 422 with the detail array.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError wraps field errors into a single error value.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, strings.Join(f.Loc, ".")+": "+f.Msg)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}
