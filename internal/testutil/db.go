package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"address-distance-service/internal/adapters/repositories"
	"address-distance-service/internal/platform/db"
)

// NewSQLiteDB opens a throwaway database under t.TempDir with both service
// schemas applied. The connection is closed when the test finishes.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	dbh, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })

	if err := repositories.InitAddressSchema(dbh); err != nil {
		t.Fatalf("init address schema: %v", err)
	}
	if err := repositories.InitCalculationSchema(dbh); err != nil {
		t.Fatalf("init calculation schema: %v", err)
	}

	return dbh
}
