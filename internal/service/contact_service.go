package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/notify"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
)

// ContactService forwards contact-form messages to the office.
type ContactService interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}

type contactServiceImpl struct {
	sender         notify.Sender
	adminRecipient string
	sanitizer      *bluemonday.Policy
	logger         *slog.Logger
}

// NewContactService creates a ContactService delivering through sender.
func NewContactService(sender notify.Sender, adminRecipient string, logger *slog.Logger) (ContactService, error) {
	if sender == nil {
		return nil, errors.New("notification sender cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &contactServiceImpl{
		sender:         sender,
		adminRecipient: adminRecipient,
		sanitizer:      bluemonday.StrictPolicy(),
		logger:         logger.With(slog.String("component", "contact_service")),
	}, nil
}

// Send is synchronous: unlike booking notifications, the message itself is
// the unit of work, so a delivery failure is reported to the caller.
func (s *contactServiceImpl) Send(ctx context.Context, msg domain.ContactMessage) error {
	msg, err := msg.Normalize()
	if err != nil {
		return err
	}
	msg.Message = s.sanitizer.Sanitize(msg.Message)

	if err := s.sender.Send(ctx, notify.ComposeContact(msg, s.adminRecipient)); err != nil {
		return fmt.Errorf("failed to deliver contact message: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("contact message forwarded")
	return nil
}
