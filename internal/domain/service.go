package domain

import (
	"strings"
	"time"
)

// Service is a catalog entry a booking refers to.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceInput carries the fields of a create or update. Nil pointers are
// left unchanged on update.
type ServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// ValidateForCreate requires every field and a non-negative price.
func (in ServiceInput) ValidateForCreate() error {
	var missing []string
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		missing = append(missing, "name")
	}
	if in.Description == nil || strings.TrimSpace(*in.Description) == "" {
		missing = append(missing, "description")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return &ValidationError{
			Fields:  missing,
			Message: "missing required fields: " + strings.Join(missing, ", "),
			Err:     ErrInvalidInput,
		}
	}
	return in.validatePrice()
}

// ValidateForUpdate checks only the supplied fields.
func (in ServiceInput) ValidateForUpdate() error {
	if in.Name == nil && in.Description == nil && in.Price == nil {
		return NewValidationError("", "no fields to update", ErrInvalidInput)
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return NewValidationError("name", "name cannot be empty", ErrInvalidInput)
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		return NewValidationError("description", "description cannot be empty", ErrInvalidInput)
	}
	return in.validatePrice()
}

func (in ServiceInput) validatePrice() error {
	if in.Price != nil && *in.Price < 0 {
		return NewValidationError("price", "price cannot be negative", ErrValidation)
	}
	return nil
}
