package domain

import "time"

// Admin is a back-office administrator. Admins are created out-of-band
// (seed or reset tooling) and are read-only to the request flows.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// AdminSummary is the public view of an administrator.
type AdminSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Summary returns the public view of the admin, without the password hash.
func (a *Admin) Summary() AdminSummary {
	return AdminSummary{ID: a.ID, Username: a.Username}
}
