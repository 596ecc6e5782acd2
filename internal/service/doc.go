// Package service contains the application use cases: the booking lifecycle,
// the service catalog and the read-side views (customers, dashboard).
//
// Services receive their stores through constructor injection and never
// depend on a concrete database. Expected failures are returned as the
// sentinel errors of internal/domain and internal/store, wrapped with %w, so
// the API layer can map them with errors.Is.
package service
