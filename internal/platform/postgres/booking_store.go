package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
	"github.com/aquariuspest/booking-api/internal/store"
)

// bookingSelect reads a booking with its service name. Dates and times are
// rendered in the layouts the API exposes.
const bookingSelect = `
	SELECT b.id, b.name, b.email, b.phone, b.address,
		COALESCE(b.service_id, 0), s.name,
		to_char(b.preferred_date, 'YYYY-MM-DD'), to_char(b.preferred_time, 'HH24:MI'),
		b.message, b.status, b.created_at
`

// PostgresBookingStore implements store.BookingStore.
type PostgresBookingStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookingStore creates a booking store over a connection or
// transaction managed by the caller. If logger is nil, the default is used.
func NewPostgresBookingStore(db store.DBTX, logger *slog.Logger) *PostgresBookingStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresBookingStore{
		db:     db,
		logger: logger.With(slog.String("component", "booking_store")),
	}
}

var _ store.BookingStore = (*PostgresBookingStore)(nil)

// Create implements store.BookingStore.Create.
// Returns store.ErrInvalidEntity if the referenced service does not exist.
func (s *PostgresBookingStore) Create(ctx context.Context, b *domain.Booking) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO bookings (name, email, phone, address, service_id,
			preferred_date, preferred_time, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7::time, $8, $9, $10)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		b.Name, b.Email, b.Phone, b.Address, b.ServiceID,
		b.PreferredDate, b.PreferredTime, b.Message, string(b.Status), b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("booking references unknown service",
				slog.Int64("service_id", b.ServiceID))
			return fmt.Errorf("%w: service %d does not exist", store.ErrInvalidEntity, b.ServiceID)
		}
		log.Error("failed to create booking", slog.String("error", err.Error()))
		return storeFailure("booking", "create", err)
	}

	log.Info("booking created",
		slog.Int64("booking_id", b.ID),
		slog.Int64("service_id", b.ServiceID))
	return nil
}

// GetByID implements store.BookingStore.GetByID.
func (s *PostgresBookingStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := bookingSelect + `
		FROM bookings b
		LEFT JOIN services s ON s.id = b.service_id
		WHERE b.id = $1
	`
	b, err := scanBooking(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("booking not found", slog.Int64("booking_id", id))
			return nil, store.ErrBookingNotFound
		}
		log.Error("failed to get booking",
			slog.String("error", err.Error()),
			slog.Int64("booking_id", id))
		return nil, storeFailure("booking", "get", err)
	}
	return b, nil
}

// List implements store.BookingStore.List.
func (s *PostgresBookingStore) List(ctx context.Context) ([]domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := bookingSelect + `
		FROM bookings b
		LEFT JOIN services s ON s.id = b.service_id
		ORDER BY b.created_at DESC, b.id DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list bookings", slog.String("error", err.Error()))
		return nil, storeFailure("booking", "list", err)
	}
	defer func() { _ = rows.Close() }()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			log.Error("failed to scan booking row", slog.String("error", err.Error()))
			return nil, storeFailure("booking", "list", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating booking rows", slog.String("error", err.Error()))
		return nil, storeFailure("booking", "list", err)
	}

	log.Debug("listed bookings", slog.Int("count", len(bookings)))
	return bookings, nil
}

// UpdateStatus implements store.BookingStore.UpdateStatus.
// The update and the re-read run as one statement, so the returned row is
// exactly what this call wrote.
func (s *PostgresBookingStore) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.BookingStatus,
) (*domain.Booking, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		WITH b AS (
			UPDATE bookings SET status = $1 WHERE id = $2 RETURNING *
		)
	` + bookingSelect + `
		FROM b
		LEFT JOIN services s ON s.id = b.service_id
	`
	b, err := scanBooking(s.db.QueryRowContext(ctx, query, string(status), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("booking not found for status update", slog.Int64("booking_id", id))
			return nil, store.ErrBookingNotFound
		}
		log.Error("failed to update booking status",
			slog.String("error", err.Error()),
			slog.Int64("booking_id", id),
			slog.String("status", string(status)))
		return nil, storeFailure("booking", "update status", err)
	}

	log.Info("booking status updated",
		slog.Int64("booking_id", id),
		slog.String("status", string(status)))
	return b, nil
}

// WithTx implements store.BookingStore.WithTx.
func (s *PostgresBookingStore) WithTx(tx *sql.Tx) store.BookingStore {
	return &PostgresBookingStore{db: tx, logger: s.logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		serviceName sql.NullString
		status      string
	)
	err := row.Scan(
		&b.ID, &b.Name, &b.Email, &b.Phone, &b.Address,
		&b.ServiceID, &serviceName,
		&b.PreferredDate, &b.PreferredTime,
		&b.Message, &status, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if serviceName.Valid {
		name := serviceName.String
		b.ServiceName = &name
	}
	b.Status = domain.BookingStatus(status)
	return &b, nil
}
