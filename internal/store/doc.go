// Package store defines the persistence interfaces for administrators,
// bookings, catalog services and derived customers. Each entity gets its own
// small interface; implementations live in platform/postgres.
package store
