package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a uniqueness rule.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the database rejects a row as invalid
	// (check, not-null or foreign key constraint).
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrAdminNotFound indicates no administrator matched the lookup.
	ErrAdminNotFound = fmt.Errorf("%w: admin", ErrNotFound)

	// ErrBookingNotFound indicates no booking has the requested ID.
	ErrBookingNotFound = fmt.Errorf("%w: booking", ErrNotFound)

	// ErrServiceNotFound indicates no catalog service has the requested ID.
	ErrServiceNotFound = fmt.Errorf("%w: service", ErrNotFound)

	// ErrUsernameExists indicates an administrator with that username already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError wraps a backend failure that has no more specific classification.
// Its message is for logs only; API responses use a generic message.
type StoreError struct {
	Entity    string // e.g. "booking"
	Operation string // e.g. "update status"
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Message: message, Err: err}
}
