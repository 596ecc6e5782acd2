package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aquariuspest/booking-api/internal/api"
	apiMiddleware "github.com/aquariuspest/booking-api/internal/api/middleware"
)

// setupRouter creates the router with the stock middleware, CORS for the
// public site, metrics and every API route.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{apiMiddleware.TraceHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	handlers := api.Handlers{
		Auth:     api.NewAuthHandler(app.credentials, app.logger),
		Bookings: api.NewBookingHandler(app.bookingService, app.logger),
		Catalog:  api.NewCatalogHandler(app.catalogService, app.logger),
		Admin:    api.NewAdminHandler(app.customerService, app.dashboardService),
		Contact:  api.NewContactHandler(app.contactService),
		Health:   api.NewHealthHandler(app.db),
	}
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.credentials)
	handlers.Mount(r, authMiddleware.Authenticate)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
