package api

import (
	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/service"
)

// LoginRequest defines the payload for the admin login endpoint. Blank
// fields are reported by the credential service.
type LoginRequest struct {
	Username string `json:"username" validate:"max=100"`
	Password string `json:"password" validate:"max=72"`
}

// LoginResponse defines the successful response for admin login.
type LoginResponse struct {
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string              `json:"expires_at"`
	Admin     domain.AdminSummary `json:"admin"`
}

// BookingResponse wraps a booking returned by a write.
type BookingResponse struct {
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking"`
}

// UpdateStatusRequest is the body of PUT /api/admin/bookings/{id}.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BulkStatusRequest is the body of POST /api/admin/bookings/status.
type BulkStatusRequest struct {
	IDs    []int64 `json:"ids"    validate:"max=500,dive,gt=0"`
	Status string  `json:"status"`
}

// BulkStatusResponse reports which bookings were updated.
type BulkStatusResponse = service.BulkResult

// ServiceResponse wraps a catalog service returned by a write.
type ServiceResponse struct {
	Message string          `json:"message"`
	Service *domain.Service `json:"service"`
}

// ContactResponse acknowledges a contact-form message.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
