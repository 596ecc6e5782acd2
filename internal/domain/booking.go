package domain

import (
	"strings"
	"time"
)

// BookingStatus represents where a booking is in its lifecycle.
// Any status may be set from any other; there is no transition graph.
type BookingStatus string

// Possible booking status values
const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Layouts accepted for the preferred visit date and time.
const (
	PreferredDateLayout = "2006-01-02"
	PreferredTimeLayout = "15:04"
)

// AllBookingStatuses returns every legal status in display order.
func AllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCompleted,
		BookingStatusCancelled,
	}
}

// Valid reports whether s is one of the four known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus converts raw input into a BookingStatus.
// The match is exact: no trimming or case folding is applied.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	status := BookingStatus(raw)
	if !status.Valid() {
		return "", NewValidationError("status", "Invalid status", ErrInvalidStatus)
	}
	return status, nil
}

// Booking is a customer's request for a scheduled service visit.
type Booking struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	ServiceID     int64         `json:"service_id"`
	ServiceName   *string       `json:"service_name"` // nil when the service no longer exists
	PreferredDate string        `json:"preferred_date"`
	PreferredTime string        `json:"preferred_time"`
	Message       string        `json:"message"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// BookingRequest carries a public booking submission. Any status sent by the
// caller is decoded into Status and then ignored by NewBooking.
type BookingRequest struct {
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	ServiceID     NumericID `json:"service_id"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Message       string    `json:"message,omitempty"`
	Status        string    `json:"status,omitempty"`
}

// NewBooking builds a pending Booking from a submission.
// All required fields are checked at once so the error names every missing
// field. The returned booking has no ID yet; the store assigns it.
func NewBooking(req BookingRequest, now time.Time) (*Booking, error) {
	b := &Booking{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		ServiceID:     int64(req.ServiceID),
		PreferredDate: strings.TrimSpace(req.PreferredDate),
		PreferredTime: strings.TrimSpace(req.PreferredTime),
		Message:       strings.TrimSpace(req.Message),
		Status:        BookingStatusPending,
		CreatedAt:     now.UTC(),
	}

	var missing []string
	for _, f := range []struct {
		name  string
		empty bool
	}{
		{"name", b.Name == ""},
		{"email", b.Email == ""},
		{"phone", b.Phone == ""},
		{"address", b.Address == ""},
		{"service_id", b.ServiceID <= 0},
		{"preferred_date", b.PreferredDate == ""},
		{"preferred_time", b.PreferredTime == ""},
	} {
		if f.empty {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{
			Fields:  missing,
			Message: "missing required fields: " + strings.Join(missing, ", "),
			Err:     ErrInvalidInput,
		}
	}

	if _, err := time.Parse(PreferredDateLayout, b.PreferredDate); err != nil {
		return nil, NewValidationError("preferred_date", "preferred_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	normalized, ok := normalizePreferredTime(b.PreferredTime)
	if !ok {
		return nil, NewValidationError("preferred_time", "preferred_time must be HH:MM", ErrInvalidInput)
	}
	b.PreferredTime = normalized

	return b, nil
}

// normalizePreferredTime accepts HH:MM or HH:MM:SS and returns HH:MM.
func normalizePreferredTime(raw string) (string, bool) {
	for _, layout := range []string{PreferredTimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(PreferredTimeLayout), true
		}
	}
	return "", false
}
