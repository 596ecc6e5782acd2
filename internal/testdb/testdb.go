//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aquariuspest/booking-api/internal/platform/postgres"
)

// TestTimeout bounds container start-up and migration.
const TestTimeout = 2 * time.Minute

var (
	shared     *sql.DB
	sharedErr  error
	sharedOnce sync.Once
)

// GetTestDatabaseURL returns DATABASE_URL, falling back to PEST_TEST_DB_URL.
func GetTestDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("PEST_TEST_DB_URL")
}

// GetTestDBWithT returns a migrated database shared by the tests of one
// package. The test is skipped when no database can be provided.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	sharedOnce.Do(func() {
		shared, sharedErr = open()
	})
	if sharedErr != nil {
		t.Skipf("integration database unavailable: %v", sharedErr)
	}
	return shared
}

func open() (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	dsn := GetTestDatabaseURL()
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := postgres.Migrate(ctx, db, "up", nil); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func startContainer(ctx context.Context) (dsn string, err error) {
	// testcontainers panics when no Docker provider can be found.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("docker unavailable: %v", p)
		}
	}()

	container, err := tcpostgres.Run(ctx,
		"postgres:15.3-alpine",
		tcpostgres.WithDatabase("pest_test"),
		tcpostgres.WithUsername("pest"),
		tcpostgres.WithPassword("pest"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("failed to read container connection string: %w", err)
	}
	return dsn, nil
}

// WithTx runs fn inside a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}
