package store

import (
	"context"

	"github.com/aquariuspest/booking-api/internal/domain"
)

// ServiceStore defines persistence for the service catalog.
type ServiceStore interface {
	// List returns all services ordered by name.
	List(ctx context.Context) ([]domain.Service, error)

	// GetByID returns ErrServiceNotFound if the service does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Service, error)

	// Create inserts a service. The input must already be validated for create.
	Create(ctx context.Context, in domain.ServiceInput) (*domain.Service, error)

	// Update applies the non-nil fields of in.
	// Returns ErrServiceNotFound if the service does not exist.
	Update(ctx context.Context, id int64, in domain.ServiceInput) (*domain.Service, error)

	// Delete removes a service. Bookings referencing it keep their row and
	// report no service name afterwards.
	// Returns ErrServiceNotFound if the service does not exist.
	Delete(ctx context.Context, id int64) error
}
