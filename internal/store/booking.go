package store

import (
	"context"
	"database/sql"

	"github.com/aquariuspest/booking-api/internal/domain"
)

// BookingStore defines persistence for bookings.
type BookingStore interface {
	// Create inserts the booking and fills in its generated ID.
	// The status column is written from b.Status, which callers construct via
	// domain.NewBooking and is therefore always pending.
	Create(ctx context.Context, b *domain.Booking) error

	// GetByID returns the booking with its service name resolved.
	// Returns ErrBookingNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)

	// List returns all bookings, newest first with ties broken by descending ID.
	// ServiceName is nil for bookings whose service has been deleted.
	List(ctx context.Context) ([]domain.Booking, error)

	// UpdateStatus sets the status of one booking in a single statement and
	// returns the updated row. Returns ErrBookingNotFound if it does not exist.
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)

	// WithTx returns a BookingStore bound to tx.
	WithTx(tx *sql.Tx) BookingStore
}
