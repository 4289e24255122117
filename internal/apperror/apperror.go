// Package apperror defines the error classes shared by the store, the
// services and the HTTP layer.
package apperror

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a referenced id is absent from the store.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned for out-of-range or malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStoreUnavailable is returned when the database cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ValidationError carries every field that failed validation.
// It matches ErrInvalidArgument through errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}

	return "invalid argument: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// Invalid builds a ValidationError for a single field.
func Invalid(field, code, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message, Code: code}}}
}
