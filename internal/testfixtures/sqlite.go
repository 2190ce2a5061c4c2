package testfixtures

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"venuebooking/internal/database"
)

// OpenDB returns a migrated SQLite database backed by a temporary file and a
// single connection. The connection is closed when the test finishes.
func OpenDB(tb testing.TB) *gorm.DB {
	tb.Helper()
	return OpenPooledDB(tb, 1)
}

// OpenPooledDB is OpenDB with up to maxOpen concurrent connections, for tests
// that exercise writers racing each other.
func OpenPooledDB(tb testing.TB, maxOpen int) *gorm.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "venues.db")
	db, err := database.Connect(path, database.Options{LogLevel: "silent", MaxOpenConns: maxOpen})
	if err != nil {
		tb.Fatalf("failed to open sqlite db: %v", err)
	}
	tb.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(db, database.MigrateOptions{}); err != nil {
		tb.Fatalf("failed to migrate db: %v", err)
	}
	return db
}
