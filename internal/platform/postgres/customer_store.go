package postgres

import (
	"context"
	"log/slog"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
	"github.com/aquariuspest/booking-api/internal/store"
)

// PostgresCustomerStore implements store.CustomerStore by grouping booking rows.
type PostgresCustomerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCustomerStore creates a customer store. If logger is nil, the
// default is used.
func NewPostgresCustomerStore(db store.DBTX, logger *slog.Logger) *PostgresCustomerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCustomerStore{
		db:     db,
		logger: logger.With(slog.String("component", "customer_store")),
	}
}

var _ store.CustomerStore = (*PostgresCustomerStore)(nil)

// List implements store.CustomerStore.List.
func (s *PostgresCustomerStore) List(ctx context.Context) ([]domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT name, email, phone, address, COUNT(*)
		FROM bookings
		GROUP BY name, email, phone, address
		ORDER BY name, email, phone, address
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list customers", slog.String("error", err.Error()))
		return nil, storeFailure("customer", "list", err)
	}
	defer func() { _ = rows.Close() }()

	customers := []domain.Customer{}
	for rows.Next() {
		c := domain.Customer{ID: len(customers) + 1}
		if err := rows.Scan(&c.Name, &c.Email, &c.Phone, &c.Address, &c.TotalBookings); err != nil {
			log.Error("failed to scan customer row", slog.String("error", err.Error()))
			return nil, storeFailure("customer", "list", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeFailure("customer", "list", err)
	}
	return customers, nil
}
