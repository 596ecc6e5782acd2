package notify

import (
	"fmt"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/events"
)

// KindContact marks notifications produced by the contact form.
const KindContact events.EventType = "contact.message"

// ComposeContact addresses a contact-form message to the office.
func ComposeContact(m domain.ContactMessage, adminRecipient string) Notification {
	if adminRecipient == "" {
		adminRecipient = "office"
	}
	return Notification{
		Kind:    KindContact,
		To:      adminRecipient,
		Subject: fmt.Sprintf("New contact form message from %s", m.Name),
		Body: fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s",
			m.Name, m.Email, m.Phone, m.Message),
	}
}
