// Package testdb provides database helpers for integration tests.
//
// Tests obtain a migrated database with GetTestDBWithT and run each case in
// its own transaction with WithTx, which always rolls back:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    bookings := postgres.NewPostgresBookingStore(tx, nil)
//	    ...
//	})
//
// DATABASE_URL (or PEST_TEST_DB_URL) selects an existing database. When
// neither is set a disposable PostgreSQL container is started with
// testcontainers-go; the test is skipped if Docker is unavailable.
package testdb
