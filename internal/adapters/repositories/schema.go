package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// The DDL below sticks to type names both SQLite and PostgreSQL accept, so
// one set of statements provisions either backend. Timestamps are stored as
// fixed-width UTC text (see timefmt.go), which keeps ORDER BY portable.

// Initialize the address-side schema: the resolved-address cache, the query
// history trail and user profiles.
func InitAddressSchema(db *sql.DB) error {
	return initSchema(db, []string{
		`
	CREATE TABLE IF NOT EXISTS addresses (
		postal_code TEXT PRIMARY KEY,
		street TEXT NOT NULL,
		complement TEXT NOT NULL,
		district TEXT NOT NULL,
		city TEXT NOT NULL,
		region_code TEXT NOT NULL,
		ibge TEXT NOT NULL,
		gia TEXT NOT NULL,
		ddd TEXT NOT NULL,
		siafi TEXT NOT NULL,
		last_refreshed TEXT NOT NULL
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		query_type TEXT NOT NULL,
		query_payload TEXT NOT NULL,
		result_payload TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_history_created_at
	ON history(created_at);
	`,
		`
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		preferences TEXT NOT NULL
	);
	`,
	})
}

// Initialize the calculation-side schema: persisted calculations and the
// service configuration store.
func InitCalculationSchema(db *sql.DB) error {
	return initSchema(db, []string{
		`
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		origin_city TEXT NOT NULL,
		origin_region TEXT NOT NULL,
		origin_street TEXT NOT NULL,
		destination_city TEXT NOT NULL,
		destination_region TEXT NOT NULL,
		destination_street TEXT NOT NULL,
		mode TEXT NOT NULL,
		distance DOUBLE PRECISION NOT NULL,
		unit TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
	ON calculations(created_at);
	`,
		`
	CREATE TABLE IF NOT EXISTS configurations (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		description TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`,
	})
}

func initSchema(db *sql.DB, statements []string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
