package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
	"github.com/aquariuspest/booking-api/internal/store"
)

// PostgresAdminStore implements store.AdminStore.
type PostgresAdminStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAdminStore creates an admin store. If logger is nil, the default
// is used.
func NewPostgresAdminStore(db store.DBTX, logger *slog.Logger) *PostgresAdminStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAdminStore{
		db:     db,
		logger: logger.With(slog.String("component", "admin_store")),
	}
}

var _ store.AdminStore = (*PostgresAdminStore)(nil)

// GetByUsername implements store.AdminStore.GetByUsername.
func (s *PostgresAdminStore) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	return s.getOne(ctx, `
		SELECT id, username, password_hash, created_at
		FROM admins
		WHERE username = $1
	`, username)
}

// GetByID implements store.AdminStore.GetByID.
func (s *PostgresAdminStore) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	return s.getOne(ctx, `
		SELECT id, username, password_hash, created_at
		FROM admins
		WHERE id = $1
	`, id)
}

func (s *PostgresAdminStore) getOne(ctx context.Context, query string, arg any) (*domain.Admin, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var a domain.Admin
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("admin not found")
			return nil, store.ErrAdminNotFound
		}
		log.Error("failed to get admin", slog.String("error", err.Error()))
		return nil, storeFailure("admin", "get", err)
	}
	return &a, nil
}

// Upsert implements store.AdminStore.Upsert.
func (s *PostgresAdminStore) Upsert(ctx context.Context, username, passwordHash string) (*domain.Admin, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id, username, password_hash, created_at
	`
	var a domain.Admin
	err := s.db.QueryRowContext(ctx, query, username, passwordHash).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		log.Error("failed to upsert admin", slog.String("error", err.Error()))
		return nil, storeFailure("admin", "upsert", err)
	}

	log.Info("admin credentials stored", slog.Int64("admin_id", a.ID))
	return &a, nil
}
