package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInTransaction(t *testing.T) {
	errFn := errors.New("status update rejected")
	errBegin := errors.New("too many connections")
	errCommit := errors.New("commit failed")
	errRollback := errors.New("connection lost")

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		fnErr     error
		wantIs    []error
		wantMatch string
	}{
		{
			name: "commits when fn succeeds",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE bookings`).WithArgs("confirmed", int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "rolls back when fn fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE bookings`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			},
			fnErr:  errFn,
			wantIs: []error{errFn},
		},
		{
			name:      "begin failure",
			setup:     func(mock sqlmock.Sqlmock) { mock.ExpectBegin().WillReturnError(errBegin) },
			wantIs:    []error{errBegin},
			wantMatch: "failed to begin transaction",
		},
		{
			name: "commit failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE bookings`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit().WillReturnError(errCommit)
			},
			wantIs:    []error{errCommit},
			wantMatch: "failed to commit transaction",
		},
		{
			name: "rollback failure keeps the original error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE bookings`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback().WillReturnError(errRollback)
			},
			fnErr:     errFn,
			wantIs:    []error{errFn},
			wantMatch: "connection lost",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()
			tc.setup(mock)

			err = RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
				if _, err := tx.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, "confirmed", int64(1)); err != nil {
					return err
				}
				return tc.fnErr
			})

			if len(tc.wantIs) == 0 && tc.wantMatch == "" {
				assert.NoError(t, err)
			}
			for _, target := range tc.wantIs {
				assert.ErrorIs(t, err, target)
			}
			if tc.wantMatch != "" {
				assert.ErrorContains(t, err, tc.wantMatch)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunInTransactionRollsBackOnPanic(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = RunInTransaction(context.Background(), db, func(context.Context, *sql.Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
