package api

import (
	"net/http"

	"github.com/aquariuspest/booking-api/internal/api/shared"
	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/service"
)

// ContactHandler serves the public contact form.
type ContactHandler struct {
	contact service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contact service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Send handles POST /api/contact.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if !decodeAndValidate(w, r, &msg) {
		return
	}
	if err := h.contact.Send(r.Context(), msg); err != nil {
		HandleAPIError(w, r, err, "Failed to send message. Please try again or contact us directly.")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ContactResponse{
		Success: true,
		Message: "Message sent successfully! We will contact you soon.",
	})
}
