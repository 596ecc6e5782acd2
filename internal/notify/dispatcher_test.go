package notify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquariuspest/booking-api/internal/config"
	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/events"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []Notification
	err  error
}

func (s *recordingSender) Send(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, n)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func bookingEvent(t events.EventType, status domain.BookingStatus) *events.BookingEvent {
	name := "Ant Control"
	return events.NewBookingEvent(t, domain.Booking{
		ID: 12, Name: "Jane", Email: "jane@example.com", ServiceName: &name,
		PreferredDate: "2025-03-01", PreferredTime: "09:30", Status: status,
	}, time.Now())
}

func TestCompose(t *testing.T) {
	created := Compose(bookingEvent(events.BookingCreated, domain.BookingStatusPending), "office@example.com")
	require.Len(t, created, 2)
	assert.Equal(t, "office@example.com", created[0].To)
	assert.Equal(t, "New booking #12", created[0].Subject)
	assert.Contains(t, created[0].Body, "Ant Control")
	assert.Equal(t, "jane@example.com", created[1].To)

	changed := Compose(bookingEvent(events.BookingStatusChanged, domain.BookingStatusConfirmed), "")
	require.Len(t, changed, 1)
	assert.Equal(t, "jane@example.com", changed[0].To)
	assert.Equal(t, "Your booking is confirmed", changed[0].Subject)

	deleted := bookingEvent(events.BookingStatusChanged, domain.BookingStatusCancelled)
	deleted.Booking.ServiceName = nil
	assert.Contains(t, Compose(deleted, "")[0].Body, "a deleted service")

	assert.Empty(t, Compose(&events.BookingEvent{Type: "unknown"}, ""))
}

func TestDispatcherDrainsOnStop(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(config.NotifyConfig{QueueSize: 10, WorkerCount: 2}, sender, nil)
	d.Start()

	for i := 0; i < 3; i++ {
		require.NoError(t, d.HandleEvent(context.Background(), bookingEvent(events.BookingCreated, domain.BookingStatusPending)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))
	assert.Equal(t, 6, sender.count())

	err := d.HandleEvent(context.Background(), bookingEvent(events.BookingCreated, domain.BookingStatusPending))
	assert.ErrorIs(t, err, ErrQueueClosed)
	assert.NoError(t, d.Stop(ctx), "stop is idempotent")
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(config.NotifyConfig{QueueSize: 1, WorkerCount: 1}, sender, nil)

	// not started, so nothing drains the queue
	require.NoError(t, d.HandleEvent(context.Background(), bookingEvent(events.BookingCreated, domain.BookingStatusPending)))
	err := d.HandleEvent(context.Background(), bookingEvent(events.BookingCreated, domain.BookingStatusPending))
	assert.ErrorIs(t, err, ErrQueueFull)

	d.Start()
	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, 2, sender.count())
}

func TestDispatcherSurvivesSenderFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(config.NotifyConfig{QueueSize: 4, WorkerCount: 0}, sender, nil)
	d.Start()

	require.NoError(t, d.HandleEvent(context.Background(), bookingEvent(events.BookingStatusChanged, domain.BookingStatusConfirmed)))
	require.NoError(t, d.HandleEvent(context.Background(), bookingEvent(events.BookingStatusChanged, domain.BookingStatusCompleted)))
	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, 2, sender.count())
}

func TestLogSenderRedactsRecipient(t *testing.T) {
	l, buf := logger.NewTestLogger(t)
	sender := NewLogSender(l)

	require.NoError(t, sender.Send(context.Background(), Notification{
		Kind:    events.BookingCreated,
		To:      "jane@example.com",
		Subject: "We received your booking",
	}))

	out := buf.String()
	assert.True(t, strings.Contains(out, "[REDACTED_EMAIL]"))
	assert.False(t, strings.Contains(out, "jane@example.com"))
}

func TestComposeContact(t *testing.T) {
	n := ComposeContact(domain.ContactMessage{Name: "Jane", Email: "jane@x.com", Phone: "090", Message: "Ants again"}, "")
	assert.Equal(t, KindContact, n.Kind)
	assert.Equal(t, "office", n.To)
	assert.Equal(t, "New contact form message from Jane", n.Subject)
	assert.True(t, strings.HasSuffix(n.Body, "Ants again"))
}
