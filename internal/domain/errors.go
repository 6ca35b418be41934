package domain

import (
	"errors"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or request fails validation.
	// It is usually wrapped by a *ValidationError carrying the details.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or out of range.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidationError describes why an entity or request was rejected.
// Fields lists the offending JSON field names; Message is safe to return to
// clients as-is.
type ValidationError struct {
	Fields  []string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped sentinel so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// NewValidationError creates a ValidationError for a single field,
// e.g. NewValidationError("price", "must not be negative", ErrValidation).
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Fields:  []string{field},
		Message: field + " " + message,
		Err:     err,
	}
}

// NewMissingFieldsError reports required fields that were absent from a request.
func NewMissingFieldsError(fields ...string) *ValidationError {
	return &ValidationError{
		Fields:  fields,
		Message: "Missing required fields: " + strings.Join(fields, ", "),
		Err:     ErrValidation,
	}
}
