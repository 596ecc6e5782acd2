// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a supplied value is outside its legal domain.
	// This is usually wrapped in a *ValidationError naming the offending fields.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidStatus is returned when a booking status is not one of the known values.
	ErrInvalidStatus = fmt.Errorf("%w: booking status", ErrValidation)

	// ErrInvalidID is returned when an ID is malformed or not positive.
	ErrInvalidID = fmt.Errorf("%w: ID", ErrValidation)
)

// ValidationError reports which fields of an input failed validation.
// Message is safe to show to API clients.
type ValidationError struct {
	Fields  []string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string, err error) *ValidationError {
	var fields []string
	if field != "" {
		fields = []string{field}
	}
	return &ValidationError{Fields: fields, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		return "invalid fields: " + strings.Join(e.Fields, ", ")
	}
	return ErrValidation.Error()
}

// Unwrap returns the wrapped sentinel so errors.Is works against ErrValidation,
// ErrInvalidInput and ErrInvalidStatus.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// IsValidationError reports whether err is a client-correctable validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidInput)
}
