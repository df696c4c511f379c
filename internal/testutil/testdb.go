package testutil

import (
	"database/sql"
	"testing"

	"github.com/szabadkai/quarterback/internal/db"
)

// NewTestDB returns a migrated in-memory store, closed via t.Cleanup.
// Seeded defaults (regions, roles, settings row) are present, so tests
// asserting on counts must account for them.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps the test database in a real UnitOfWork.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
