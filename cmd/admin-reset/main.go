// Command admin-reset creates an administrator or resets an existing
// administrator's password.
//
// Usage:
//
//	admin-reset [-username admin] [-password admin123]
//
// The database URL and bcrypt cost come from the same configuration as the
// server (PEST_DATABASE_URL, PEST_AUTH_BCRYPT_COST, .env or config.yaml).
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver

	"github.com/aquariuspest/booking-api/internal/config"
	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
	"github.com/aquariuspest/booking-api/internal/platform/postgres"
	"github.com/aquariuspest/booking-api/internal/redact"
	"github.com/aquariuspest/booking-api/internal/service/auth"
	"github.com/aquariuspest/booking-api/internal/store"
)

func main() {
	username := flag.String("username", "admin", "administrator username")
	password := flag.String("password", "admin123", "new password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		log.Fatalf("failed to open database: %s", redact.Error(err))
	}
	defer func() { _ = db.Close() }()

	admin, err := resetAdmin(logger.WithLogger(ctx, l), db, *username, *password, cfg.Auth.BCryptCost)
	if err != nil {
		l.Error("admin reset failed", slog.String("error", redact.Error(err)))
		os.Exit(1)
	}
	fmt.Printf("Admin %q (id %d) is ready.\n", admin.Username, admin.ID)
}

// resetAdmin hashes password and stores it for username, creating the admin
// if needed. The write runs in a transaction.
func resetAdmin(ctx context.Context, db *sql.DB, username, password string, cost int) (*domain.Admin, error) {
	if username == "" || password == "" {
		return nil, domain.NewValidationError("", "username and password are required", domain.ErrInvalidInput)
	}

	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return nil, err
	}

	var admin *domain.Admin
	err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		admin, err = postgres.NewPostgresAdminStore(tx, logger.FromContext(ctx)).Upsert(ctx, username, hash)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store admin %q: %w", username, err)
	}
	return admin, nil
}
