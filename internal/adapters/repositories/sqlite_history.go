package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"address-distance-service/internal/domain"
)

// SQLite backed append-only audit trail.
type SqliteHistory struct {
	DB *sql.DB
}

func NewSqliteHistory(db *sql.DB) *SqliteHistory {
	return &SqliteHistory{DB: db}
}

// Append one audit entry.
func (s *SqliteHistory) Append(ctx context.Context, entry domain.HistoryEntry) error {
	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO history (
		id,
		query_type,
		query_payload,
		result_payload,
		created_at
	)
	VALUES (?, ?, ?, ?, ?);
	`,
		entry.ID, string(entry.QueryType), entry.QueryPayload,
		entry.ResultPayload, formatTime(entry.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("append history %s: %w", entry.ID, err)
	}
	return nil
}

// Fetch entries newest first.
func (s *SqliteHistory) List(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		id,
		query_type,
		query_payload,
		result_payload,
		created_at
	FROM history
	ORDER BY created_at DESC
	LIMIT ? OFFSET ?;
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list history: query history table: %w", err)
	}
	defer rows.Close()

	return collectHistory(rows)
}

// Delete one entry by id.
func (s *SqliteHistory) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM history WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete history %s: %w", id, err)
	}
	return checkDeleted(res, "history", id)
}

func collectHistory(rows *sql.Rows) ([]domain.HistoryEntry, error) {
	out := []domain.HistoryEntry{}
	for rows.Next() {
		var e domain.HistoryEntry
		var queryType, createdAt string

		if err := rows.Scan(&e.ID, &queryType, &e.QueryPayload, &e.ResultPayload, &createdAt); err != nil {
			return nil, fmt.Errorf("list history: scan row: %w", err)
		}

		e.QueryType = domain.QueryType(queryType)
		created, err := parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("list history: %w", err)
		}
		e.CreatedAt = created

		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list history: row iteration: %w", err)
	}
	return out, nil
}

// checkDeleted converts a delete that touched no rows into
// domain.ErrNotFound.
func checkDeleted(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %s: rows affected: %w", entity, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
