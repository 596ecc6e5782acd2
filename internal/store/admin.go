package store

import (
	"context"

	"github.com/aquariuspest/booking-api/internal/domain"
)

// AdminStore reads administrator credentials.
type AdminStore interface {
	// GetByUsername looks up an admin by exact, case-sensitive username.
	// Returns ErrAdminNotFound if there is no such admin.
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)

	// GetByID returns ErrAdminNotFound if there is no such admin.
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)

	// Upsert creates the admin or replaces its password hash.
	// Used by seed and reset tooling only.
	Upsert(ctx context.Context, username, passwordHash string) (*domain.Admin, error)
}
