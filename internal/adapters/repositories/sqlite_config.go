package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"address-distance-service/internal/domain"
)

// SQLite backed key/value store of service parameters.
type SqliteConfig struct {
	DB *sql.DB
}

func NewSqliteConfig(db *sql.DB) *SqliteConfig {
	return &SqliteConfig{DB: db}
}

// Fetch the value for key and whether the key exists.
func (s *SqliteConfig) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRowContext(ctx,
		`SELECT value FROM configurations WHERE key = ?;`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %s: %w", key, err)
	}
	return value, true, nil
}

// Upsert every supplied key and return the keys written, sorted. Existing
// descriptions survive; new keys start with an empty one.
func (s *SqliteConfig) UpdateAll(ctx context.Context, values map[string]string) ([]string, error) {
	if len(values) == 0 {
		return nil, domain.ErrNoConfigKeys
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("update config: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO configurations (
		key,
		value,
		description,
		updated_at
	)
	VALUES (?, ?, '', ?)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at;
	`)
	if err != nil {
		return nil, fmt.Errorf("update config: prepare upsert: %w", err)
	}
	defer stmt.Close()

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	now := formatTime(time.Now())
	for _, key := range keys {
		if _, err := stmt.ExecContext(ctx, key, values[key], now); err != nil {
			return nil, fmt.Errorf("update config key=%q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update config: commit tx: %w", err)
	}
	return keys, nil
}

// Insert the default entries without overwriting existing keys.
func (s *SqliteConfig) Seed(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed config: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR IGNORE INTO configurations (
		key,
		value,
		description,
		updated_at
	)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed config: prepare insert: %w", err)
	}
	defer stmt.Close()

	now := formatTime(time.Now())
	for _, entry := range domain.DefaultConfig() {
		if _, err := stmt.ExecContext(ctx, entry.Key, entry.Value, entry.Description, now); err != nil {
			return fmt.Errorf("seed config key=%q: %w", entry.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed config: commit tx: %w", err)
	}
	return nil
}
