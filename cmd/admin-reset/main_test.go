package main

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aquariuspest/booking-api/internal/domain"
)

// hashFor matches a bcrypt hash of password.
type hashFor string

func (h hashFor) Match(v driver.Value) bool {
	hash, ok := v.(string)
	return ok && bcrypt.CompareHashAndPassword([]byte(hash), []byte(h)) == nil
}

func TestResetAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts inside a transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO admins`).
			WithArgs("admin", hashFor("admin123")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
				AddRow(1, "admin", "hash", time.Now()))
		mock.ExpectCommit()

		admin, err := resetAdmin(ctx, db, "admin", "admin123", bcrypt.MinCost)
		require.NoError(t, err)
		assert.Equal(t, int64(1), admin.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO admins`).WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err = resetAdmin(ctx, db, "admin", "admin123", bcrypt.MinCost)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("blank input", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		_, err = resetAdmin(ctx, db, "", "x", bcrypt.MinCost)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
