package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"address-distance-service/internal/domain"
)

// PostgreSQL backed store of completed distance calculations.
type PostgresCalculations struct {
	DB *sql.DB
}

func NewPostgresCalculations(db *sql.DB) *PostgresCalculations {
	return &PostgresCalculations{DB: db}
}

// Insert one calculation record.
func (p *PostgresCalculations) Insert(ctx context.Context, c domain.Calculation) error {
	_, err := p.DB.ExecContext(ctx, `
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
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
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
func (p *PostgresCalculations) List(ctx context.Context, limit, offset int) ([]domain.Calculation, error) {
	rows, err := p.DB.QueryContext(ctx, `
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
	LIMIT $1 OFFSET $2;
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list calculations: query calculations table: %w", err)
	}
	defer rows.Close()

	return collectCalculations(rows)
}

// Delete one calculation by id.
func (p *PostgresCalculations) Delete(ctx context.Context, id string) error {
	res, err := p.DB.ExecContext(ctx, `DELETE FROM calculations WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete calculation %s: %w", id, err)
	}
	return checkDeleted(res, "calculation", id)
}
