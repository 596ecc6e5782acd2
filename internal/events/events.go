package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aquariuspest/booking-api/internal/domain"
)

// EventType names what happened to a booking.
type EventType string

const (
	// BookingCreated is emitted after a customer booking is stored.
	BookingCreated EventType = "booking.created"
	// BookingStatusChanged is emitted after an admin sets a booking's status.
	BookingStatusChanged EventType = "booking.status_changed"
)

// BookingEvent carries a snapshot of the booking as it was written.
type BookingEvent struct {
	ID         uuid.UUID      `json:"id"`
	Type       EventType      `json:"type"`
	Booking    domain.Booking `json:"booking"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewBookingEvent creates an event with a fresh ID. The booking is copied so
// later changes by the caller do not leak into queued events.
func NewBookingEvent(eventType EventType, b domain.Booking, now time.Time) *BookingEvent {
	if b.ServiceName != nil {
		name := *b.ServiceName
		b.ServiceName = &name
	}
	return &BookingEvent{
		ID:         uuid.New(),
		Type:       eventType,
		Booking:    b,
		OccurredAt: now.UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *BookingEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *BookingEvent) error
}

// NoopEmitter discards every event.
type NoopEmitter struct{}

// EmitEvent implements EventEmitter.
func (NoopEmitter) EmitEvent(context.Context, *BookingEvent) error { return nil }
