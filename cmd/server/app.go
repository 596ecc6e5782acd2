package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/aquariuspest/booking-api/internal/config"
	"github.com/aquariuspest/booking-api/internal/events"
	"github.com/aquariuspest/booking-api/internal/notify"
	"github.com/aquariuspest/booking-api/internal/platform/postgres"
	"github.com/aquariuspest/booking-api/internal/service"
	"github.com/aquariuspest/booking-api/internal/service/auth"
	"github.com/aquariuspest/booking-api/internal/store"
)

// application holds the shared dependencies so they can be wired once and
// released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	adminStore    store.AdminStore
	bookingStore  store.BookingStore
	serviceStore  store.ServiceStore
	customerStore store.CustomerStore

	// Services
	credentials      *auth.CredentialService
	bookingService   service.BookingService
	catalogService   service.CatalogService
	customerService  service.CustomerService
	dashboardService service.DashboardService
	contactService   service.ContactService

	// Notifications
	eventEmitter *events.InMemoryEventEmitter
	dispatcher   *notify.Dispatcher
}

// newApplication wires stores, services and the notification pipeline over
// an already connected database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.adminStore = postgres.NewPostgresAdminStore(db, logger)
	app.bookingStore = postgres.NewPostgresBookingStore(db, logger)
	app.serviceStore = postgres.NewPostgresServiceStore(db, logger)
	app.customerStore = postgres.NewPostgresCustomerStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.credentials, err = auth.NewCredentialService(
		app.adminStore, jwtService, auth.NewBcryptVerifier(), cfg.Auth.BCryptCost, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential service: %w", err)
	}

	sender := notify.NewLogSender(logger)
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	if cfg.Notify.Enabled {
		app.dispatcher = notify.NewDispatcher(cfg.Notify, sender, logger)
		app.eventEmitter.RegisterHandler(app.dispatcher)
		app.dispatcher.Start()
	}

	if app.bookingService, err = service.NewBookingService(app.bookingStore, app.eventEmitter, logger); err != nil {
		return nil, fmt.Errorf("failed to create booking service: %w", err)
	}
	if app.catalogService, err = service.NewCatalogService(app.serviceStore, logger); err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}
	if app.customerService, err = service.NewCustomerService(app.customerStore); err != nil {
		return nil, fmt.Errorf("failed to create customer service: %w", err)
	}
	if app.dashboardService, err = service.NewDashboardService(
		app.bookingStore, app.customerStore, app.serviceStore); err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}
	if app.contactService, err = service.NewContactService(sender, cfg.Notify.AdminEmail, logger); err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup drains queued notifications and closes the database.
func (app *application) cleanup(ctx context.Context) {
	if app.dispatcher != nil {
		if err := app.dispatcher.Stop(ctx); err != nil {
			app.logger.Error("notification dispatcher did not drain", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}

func (app *application) shutdownTimeout() time.Duration {
	if app.config.Server.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
}
