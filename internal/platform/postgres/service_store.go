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

const serviceColumns = `id, name, description, price::float8, created_at`

// PostgresServiceStore implements store.ServiceStore.
type PostgresServiceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresServiceStore creates a catalog store. If logger is nil, the
// default is used.
func NewPostgresServiceStore(db store.DBTX, logger *slog.Logger) *PostgresServiceStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresServiceStore{
		db:     db,
		logger: logger.With(slog.String("component", "service_store")),
	}
}

var _ store.ServiceStore = (*PostgresServiceStore)(nil)

// List implements store.ServiceStore.List.
func (s *PostgresServiceStore) List(ctx context.Context) ([]domain.Service, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY name, id`)
	if err != nil {
		log.Error("failed to list services", slog.String("error", err.Error()))
		return nil, storeFailure("service", "list", err)
	}
	defer func() { _ = rows.Close() }()

	services := []domain.Service{}
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			log.Error("failed to scan service row", slog.String("error", err.Error()))
			return nil, storeFailure("service", "list", err)
		}
		services = append(services, *svc)
	}
	if err := rows.Err(); err != nil {
		return nil, storeFailure("service", "list", err)
	}
	return services, nil
}

// GetByID implements store.ServiceStore.GetByID.
func (s *PostgresServiceStore) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	svc, err := scanService(s.db.QueryRowContext(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrServiceNotFound
		}
		log.Error("failed to get service",
			slog.String("error", err.Error()),
			slog.Int64("service_id", id))
		return nil, storeFailure("service", "get", err)
	}
	return svc, nil
}

// Create implements store.ServiceStore.Create.
func (s *PostgresServiceStore) Create(ctx context.Context, in domain.ServiceInput) (*domain.Service, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO services (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING ` + serviceColumns
	svc, err := scanService(s.db.QueryRowContext(ctx, query, in.Name, in.Description, in.Price))
	if err != nil {
		log.Error("failed to create service", slog.String("error", err.Error()))
		return nil, storeFailure("service", "create", err)
	}

	log.Info("service created", slog.Int64("service_id", svc.ID))
	return svc, nil
}

// Update implements store.ServiceStore.Update.
func (s *PostgresServiceStore) Update(
	ctx context.Context,
	id int64,
	in domain.ServiceInput,
) (*domain.Service, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE services SET
			name = COALESCE($1, name),
			description = COALESCE($2, description),
			price = COALESCE($3, price)
		WHERE id = $4
		RETURNING ` + serviceColumns
	svc, err := scanService(s.db.QueryRowContext(ctx, query, in.Name, in.Description, in.Price, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrServiceNotFound
		}
		log.Error("failed to update service",
			slog.String("error", err.Error()),
			slog.Int64("service_id", id))
		return nil, storeFailure("service", "update", err)
	}

	log.Info("service updated", slog.Int64("service_id", id))
	return svc, nil
}

// Delete implements store.ServiceStore.Delete.
func (s *PostgresServiceStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete service",
			slog.String("error", err.Error()),
			slog.Int64("service_id", id))
		return storeFailure("service", "delete", err)
	}
	if err := CheckRowsAffected(result, store.ErrServiceNotFound); err != nil {
		return err
	}

	log.Info("service deleted", slog.Int64("service_id", id))
	return nil
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	if err := row.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Price, &svc.CreatedAt); err != nil {
		return nil, err
	}
	return &svc, nil
}
