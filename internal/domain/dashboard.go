package domain

import (
	"sort"
	"time"
)

// recentBookingsLimit is how many of the newest bookings a dashboard shows.
const recentBookingsLimit = 5

// DashboardFilter narrows the chart data of a dashboard. Zero values mean
// "no restriction". From and To bound the booking creation date, inclusive.
type DashboardFilter struct {
	Status *BookingStatus
	From   time.Time
	To     time.Time
}

// MonthBucket counts bookings created in one calendar month (YYYY-MM).
type MonthBucket struct {
	Month    string `json:"month"`
	Bookings int    `json:"bookings"`
}

// DashboardStats is the admin dashboard rollup.
// Totals ignore the filter; the breakdowns and recent list honour it.
type DashboardStats struct {
	TotalBookings   int                   `json:"total_bookings"`
	PendingBookings int                   `json:"pending_bookings"`
	TotalCustomers  int                   `json:"total_customers"`
	TotalServices   int                   `json:"total_services"`
	ByStatus        map[BookingStatus]int `json:"by_status"`
	ByMonth         []MonthBucket         `json:"by_month"`
	RecentBookings  []Booking             `json:"recent_bookings"`
}

// Matches reports whether b passes the filter.
func (f DashboardFilter) Matches(b Booking) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	created := b.CreatedAt.UTC()
	if !f.From.IsZero() && created.Before(startOfDay(f.From)) {
		return false
	}
	if !f.To.IsZero() && !created.Before(startOfDay(f.To).AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// BuildDashboard projects bookings (newest first) into dashboard stats.
func BuildDashboard(bookings []Booking, customerCount, serviceCount int, filter DashboardFilter) DashboardStats {
	stats := DashboardStats{
		TotalBookings:  len(bookings),
		TotalCustomers: customerCount,
		TotalServices:  serviceCount,
		ByStatus:       make(map[BookingStatus]int, 4),
		ByMonth:        []MonthBucket{},
		RecentBookings: []Booking{},
	}
	for _, s := range AllBookingStatuses() {
		stats.ByStatus[s] = 0
	}

	months := make(map[string]int)
	for _, b := range bookings {
		if b.Status == BookingStatusPending {
			stats.PendingBookings++
		}
		if !filter.Matches(b) {
			continue
		}
		stats.ByStatus[b.Status]++
		months[b.CreatedAt.UTC().Format("2006-01")]++
		if len(stats.RecentBookings) < recentBookingsLimit {
			stats.RecentBookings = append(stats.RecentBookings, b)
		}
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		stats.ByMonth = append(stats.ByMonth, MonthBucket{Month: k, Bookings: months[k]})
	}

	return stats
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDashboardFilter reads the optional status, from and to query values.
// Dates use PreferredDateLayout; from must not be after to.
func ParseDashboardFilter(status, from, to string) (DashboardFilter, error) {
	var f DashboardFilter
	if status != "" {
		s, err := ParseBookingStatus(status)
		if err != nil {
			return DashboardFilter{}, err
		}
		f.Status = &s
	}
	if from != "" {
		t, err := time.Parse(PreferredDateLayout, from)
		if err != nil {
			return DashboardFilter{}, NewValidationError("from", "from must be a date in YYYY-MM-DD format", ErrInvalidInput)
		}
		f.From = t
	}
	if to != "" {
		t, err := time.Parse(PreferredDateLayout, to)
		if err != nil {
			return DashboardFilter{}, NewValidationError("to", "to must be a date in YYYY-MM-DD format", ErrInvalidInput)
		}
		f.To = t
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return DashboardFilter{}, NewValidationError("from", "from must not be after to", ErrInvalidInput)
	}
	return f, nil
}
