package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite database with the
// application's key-value table for testing
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}

	// Create aicadKV table
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS aicadKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create aicadKV table: %v", err)
	}

	return db
}

// InsertKV inserts a raw key-value pair into the test database
func InsertKV(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	if _, err := db.Exec("INSERT OR REPLACE INTO aicadKV (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to insert %s: %v", key, err)
	}
}

// CreateSessionDB creates a test database seeded with a persisted
// identity record (but no token; tests add one when they need a valid
// session)
func CreateSessionDB(t *testing.T) *sql.DB {
	t.Helper()
	db := CreateInMemoryDB(t)

	InsertKV(t, db, "aicad_user",
		`{"id":"user-1","name":"Ada","email":"ada@example.com","company":"Analytical Engines","bio":"First programmer"}`)

	return db
}
