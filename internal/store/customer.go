package store

import (
	"context"

	"github.com/aquariuspest/booking-api/internal/domain"
)

// CustomerStore derives customers from booking rows.
type CustomerStore interface {
	// List returns one entry per distinct contact, ordered by name.
	List(ctx context.Context) ([]domain.Customer, error)
}
