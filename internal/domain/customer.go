package domain

// Customer is derived from bookings: one row per distinct
// (name, email, phone, address) combination.
type Customer struct {
	ID            int    `json:"id"` // position in the listing, 1-based
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	TotalBookings int    `json:"total_bookings"`
}
