package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups every handler the API mounts.
type Handlers struct {
	Auth     *AuthHandler
	Bookings *BookingHandler
	Catalog  *CatalogHandler
	Admin    *AdminHandler
	Contact  *ContactHandler
	Health   *HealthHandler
}

// Mount registers the API routes on r. authenticate guards every route under
// /api/admin.
func (h Handlers) Mount(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Get("/health", h.Health.Live)
	r.Get("/health/db", h.Health.Database)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Get("/health", h.Health.Live)
		r.Post("/auth/admin/login", h.Auth.Login)
		r.Post("/bookings", h.Bookings.Submit)
		r.Get("/services", h.Catalog.List)
		r.Get("/services/{id}", h.Catalog.Get)
		r.Post("/contact/send", h.Contact.Send)
		r.Post("/contact", h.Contact.Send)

		// Admin endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/bookings", h.Bookings.List)
			r.Post("/bookings/status", h.Bookings.BulkUpdateStatus)
			r.Get("/bookings/{id}", h.Bookings.Get)
			r.Put("/bookings/{id}", h.Bookings.UpdateStatus)

			r.Post("/services", h.Catalog.Create)
			r.Put("/services/{id}", h.Catalog.Update)
			r.Delete("/services/{id}", h.Catalog.Delete)

			r.Get("/customers", h.Admin.Customers)
			r.Get("/dashboard", h.Admin.Dashboard)
		})
	})
}
