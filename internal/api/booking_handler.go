package api

import (
	"log/slog"
	"net/http"

	"github.com/aquariuspest/booking-api/internal/api/shared"
	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
	"github.com/aquariuspest/booking-api/internal/service"
)

// BookingHandler serves the public booking form and the admin booking routes.
type BookingHandler struct {
	bookings service.BookingService
	logger   *slog.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings service.BookingService, logger *slog.Logger) *BookingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingHandler{
		bookings: bookings,
		logger:   logger.With(slog.String("component", "booking_handler")),
	}
}

// Submit handles POST /api/bookings.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.bookings.Submit(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Error creating booking")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("booking submitted",
		slog.Int64("booking_id", booking.ID),
		slog.Int64("service_id", booking.ServiceID))

	shared.RespondWithJSON(w, r, http.StatusCreated, BookingResponse{
		Message: "Booking created successfully",
		Booking: booking,
	})
}

// List handles GET /api/admin/bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Error fetching bookings")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, bookings)
}

// Get handles GET /api/admin/bookings/{id}.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	booking, err := h.bookings.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Error fetching booking")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, booking)
}

// UpdateStatus handles PUT /api/admin/bookings/{id}.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	booking, err := h.bookings.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		HandleAPIError(w, r, err, "Error updating booking")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("booking status updated",
		slog.Int64("booking_id", booking.ID),
		slog.String("status", booking.Status.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, BookingResponse{
		Message: "Booking updated successfully",
		Booking: booking,
	})
}

// BulkUpdateStatus handles POST /api/admin/bookings/status. The response
// lists updated bookings and per-ID failures; it is 200 even when some IDs
// failed.
func (h *BookingHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req BulkStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.bookings.BulkUpdateStatus(r.Context(), req.IDs, req.Status)
	if err != nil {
		HandleAPIError(w, r, err, "Error updating bookings")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
