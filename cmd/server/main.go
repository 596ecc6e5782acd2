// Package main implements the entry point for the booking API server, which
// accepts pest-control bookings from the public site and serves the admin
// back office.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aquariuspest/booking-api/internal/config"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
	"github.com/aquariuspest/booking-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a database migration command and exit (up, down, status, version, reset)")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("booking-api: %v", err)
	}
}

// run loads configuration, connects to the database and either runs a
// migration command or serves HTTP until SIGINT/SIGTERM.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("notifications", cfg.Notify.Enabled))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		if err := postgres.Migrate(ctx, db, migrateCmd, l); err != nil {
			return fmt.Errorf("migration %q failed: %w", migrateCmd, err)
		}
		l.Info("migration finished", slog.String("command", migrateCmd))
		return nil
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
