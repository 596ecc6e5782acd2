package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/events"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
	"github.com/aquariuspest/booking-api/internal/store"
)

// BookingService manages the booking lifecycle.
type BookingService interface {
	// Submit validates a public booking request and stores it as pending.
	// Any status in the request is ignored.
	Submit(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)

	// List returns every booking, newest first.
	List(ctx context.Context) ([]domain.Booking, error)

	// Get returns one booking or store.ErrBookingNotFound.
	Get(ctx context.Context, id int64) (*domain.Booking, error)

	// UpdateStatus sets a booking's status. The status is validated before
	// the store is touched. Any status may follow any other.
	UpdateStatus(ctx context.Context, id int64, rawStatus string) (*domain.Booking, error)

	// BulkUpdateStatus applies one status to many bookings as independent
	// single-row updates. It is not atomic: some IDs may succeed while others
	// fail, and the result reports both.
	BulkUpdateStatus(ctx context.Context, ids []int64, rawStatus string) (*BulkResult, error)
}

// BulkFailure explains why one ID of a bulk update was not applied.
type BulkFailure struct {
	ID    int64  `json:"id"`
	Error string `json:"error"`
}

// BulkResult is the outcome of BulkUpdateStatus.
type BulkResult struct {
	Updated []domain.Booking `json:"updated"`
	Failed  []BulkFailure    `json:"failed"`
}

type bookingServiceImpl struct {
	bookings  store.BookingStore
	emitter   events.EventEmitter
	sanitizer *bluemonday.Policy
	now       func() time.Time
	logger    *slog.Logger
}

// NewBookingService creates a BookingService. emitter may be nil, in which
// case no events are published.
func NewBookingService(
	bookings store.BookingStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (BookingService, error) {
	if bookings == nil {
		return nil, errors.New("booking store cannot be nil")
	}
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingServiceImpl{
		bookings:  bookings,
		emitter:   emitter,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
		logger:    logger.With(slog.String("component", "booking_service")),
	}, nil
}

func (s *bookingServiceImpl) Submit(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b, err := domain.NewBooking(req, s.now())
	if err != nil {
		log.Debug("booking request rejected", slog.String("error", err.Error()))
		return nil, err
	}
	b.Message = s.sanitizer.Sanitize(b.Message)

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	bookingsSubmitted.Inc()

	// Re-read to pick up the service name; the booking is already stored,
	// so a failed read does not fail the submission.
	if full, err := s.bookings.GetByID(ctx, b.ID); err == nil {
		b = full
	} else {
		log.Warn("failed to reload created booking",
			slog.Int64("booking_id", b.ID),
			slog.String("error", err.Error()))
	}

	s.emit(ctx, events.BookingCreated, b)
	return b, nil
}

func (s *bookingServiceImpl) List(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingServiceImpl) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, store.ErrBookingNotFound
	}
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking %d: %w", id, err)
	}
	return b, nil
}

func (s *bookingServiceImpl) UpdateStatus(
	ctx context.Context,
	id int64,
	rawStatus string,
) (*domain.Booking, error) {
	status, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.updateStatus(ctx, id, status)
}

func (s *bookingServiceImpl) updateStatus(
	ctx context.Context,
	id int64,
	status domain.BookingStatus,
) (*domain.Booking, error) {
	if id <= 0 {
		return nil, store.ErrBookingNotFound
	}

	b, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", id, err)
	}
	bookingStatusUpdates.WithLabelValues(string(status)).Inc()

	s.emit(ctx, events.BookingStatusChanged, b)
	return b, nil
}

func (s *bookingServiceImpl) BulkUpdateStatus(
	ctx context.Context,
	ids []int64,
	rawStatus string,
) (*BulkResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	status, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, domain.NewValidationError("ids", "ids must not be empty", fmt.Errorf("%w: %w", domain.ErrInvalidInput, ErrNoIDs))
	}

	result := &BulkResult{Updated: []domain.Booking{}, Failed: []BulkFailure{}}
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if err := ctx.Err(); err != nil {
			result.Failed = append(result.Failed, BulkFailure{ID: id, Error: "request cancelled"})
			continue
		}

		b, err := s.updateStatus(ctx, id, status)
		if err != nil {
			msg := "Booking not found"
			if !errors.Is(err, store.ErrNotFound) {
				msg = "update failed"
				log.Error("bulk status update failed for booking",
					slog.Int64("booking_id", id),
					slog.String("error", err.Error()))
			}
			result.Failed = append(result.Failed, BulkFailure{ID: id, Error: msg})
			continue
		}
		result.Updated = append(result.Updated, *b)
	}

	log.Info("bulk status update finished",
		slog.String("status", string(status)),
		slog.Int("updated", len(result.Updated)),
		slog.Int("failed", len(result.Failed)))
	return result, nil
}

// emit publishes an event after a successful write. Observer failures are
// logged and never reach the caller.
func (s *bookingServiceImpl) emit(ctx context.Context, t events.EventType, b *domain.Booking) {
	if err := s.emitter.EmitEvent(ctx, events.NewBookingEvent(t, *b, s.now())); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("booking event not delivered",
			slog.String("event_type", string(t)),
			slog.Int64("booking_id", b.ID),
			slog.String("error", err.Error()))
	}
}
