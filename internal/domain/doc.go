// Package domain holds the booking API's entities: admins, customers, the
// service catalog and bookings, plus the validation each one enforces
// before it reaches a store.
package domain
