package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"address-distance-service/internal/domain"
)

// SQLite backed store of completed distance calculations.
type SqliteCalculations struct {
	DB *sql.DB
}

func NewSqliteCalculations(db *sql.DB) *SqliteCalculations {
	return &SqliteCalculations{DB: db}
}

// Insert one calculation record.
func (s *SqliteCalculations) Insert(ctx context.Context, c domain.Calculation) error {
	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO calculations (
		id,
		origin_city,
		origin_region,
		origin_street,
		destination_city,
		destination_region,
		destination_street,
		mode,
		distance,
		unit,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		c.ID,
		c.Origin.City, c.Origin.Region, c.Origin.Street,
		c.Destination.City, c.Destination.Region, c.Destination.Street,
		c.Mode, c.Distance, c.Unit, formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert calculation %s: %w", c.ID, err)
	}
	return nil
}

// Fetch calculations newest first.
func (s *SqliteCalculations) List(ctx context.Context, limit, offset int) ([]domain.Calculation, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		id,
		origin_city,
		origin_region,
		origin_street,
		destination_city,
		destination_region,
		destination_street,
		mode,
		distance,
		unit,
		created_at
	FROM calculations
	ORDER BY created_at DESC
	LIMIT ? OFFSET ?;
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list calculations: query calculations table: %w", err)
	}
	defer rows.Close()

	return collectCalculations(rows)
}

// Delete one calculation by id.
func (s *SqliteCalculations) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM calculations WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete calculation %s: %w", id, err)
	}
	return checkDeleted(res, "calculation", id)
}

func collectCalculations(rows *sql.Rows) ([]domain.Calculation, error) {
	out := []domain.Calculation{}
	for rows.Next() {
		var c domain.Calculation
		var createdAt string

		err := rows.Scan(
			&c.ID,
			&c.Origin.City, &c.Origin.Region, &c.Origin.Street,
			&c.Destination.City, &c.Destination.Region, &c.Destination.Street,
			&c.Mode, &c.Distance, &c.Unit, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list calculations: scan row: %w", err)
		}

		created, err := parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("list calculations: %w", err)
		}
		c.CreatedAt = created

		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calculations: row iteration: %w", err)
	}
	return out, nil
}
