package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aquariuspest/booking-api/internal/events"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
	"github.com/aquariuspest/booking-api/internal/redact"
)

// Notification is one message to one recipient.
type Notification struct {
	Kind    events.EventType
	To      string
	Subject string
	Body    string
}

// Sender delivers notifications. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// LogSender records notifications as structured log lines instead of
// delivering them.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender. If logger is nil, the default is used.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger.With(slog.String("component", "log_sender"))}
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, n Notification) error {
	logger.FromContextOrDefault(ctx, s.logger).Info("notification",
		slog.String("kind", string(n.Kind)),
		slog.String("to", redact.String(n.To)),
		slog.String("subject", n.Subject))
	return nil
}

// Compose builds the notifications for an event. adminRecipient addresses
// the office copy; when empty the office copy goes to "office".
func Compose(ev *events.BookingEvent, adminRecipient string) []Notification {
	if adminRecipient == "" {
		adminRecipient = "office"
	}
	b := ev.Booking
	service := "a deleted service"
	if b.ServiceName != nil {
		service = *b.ServiceName
	}

	switch ev.Type {
	case events.BookingCreated:
		return []Notification{
			{
				Kind:    ev.Type,
				To:      adminRecipient,
				Subject: fmt.Sprintf("New booking #%d", b.ID),
				Body: fmt.Sprintf("%s requested %s on %s at %s.",
					b.Name, service, b.PreferredDate, b.PreferredTime),
			},
			{
				Kind:    ev.Type,
				To:      b.Email,
				Subject: "We received your booking",
				Body: fmt.Sprintf("Thank you %s. Your request for %s on %s at %s is pending confirmation.",
					b.Name, service, b.PreferredDate, b.PreferredTime),
			},
		}
	case events.BookingStatusChanged:
		return []Notification{
			{
				Kind:    ev.Type,
				To:      b.Email,
				Subject: fmt.Sprintf("Your booking is %s", b.Status),
				Body: fmt.Sprintf("Booking #%d for %s on %s is now %s.",
					b.ID, service, b.PreferredDate, b.Status),
			},
		}
	default:
		return nil
	}
}
