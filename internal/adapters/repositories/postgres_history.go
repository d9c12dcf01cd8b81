package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"address-distance-service/internal/domain"
)

// PostgreSQL backed append-only audit trail.
type PostgresHistory struct {
	DB *sql.DB
}

func NewPostgresHistory(db *sql.DB) *PostgresHistory {
	return &PostgresHistory{DB: db}
}

// Append one audit entry.
func (p *PostgresHistory) Append(ctx context.Context, entry domain.HistoryEntry) error {
	_, err := p.DB.ExecContext(ctx, `
	INSERT INTO history (
		id,
		query_type,
		query_payload,
		result_payload,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5);
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
func (p *PostgresHistory) List(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error) {
	rows, err := p.DB.QueryContext(ctx, `
	SELECT
		id,
		query_type,
		query_payload,
		result_payload,
		created_at
	FROM history
	ORDER BY created_at DESC
	LIMIT $1 OFFSET $2;
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list history: query history table: %w", err)
	}
	defer rows.Close()

	return collectHistory(rows)
}

// Delete one entry by id.
func (p *PostgresHistory) Delete(ctx context.Context, id string) error {
	res, err := p.DB.ExecContext(ctx, `DELETE FROM history WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete history %s: %w", id, err)
	}
	return checkDeleted(res, "history", id)
}
