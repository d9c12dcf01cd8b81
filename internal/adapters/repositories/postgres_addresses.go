package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"address-distance-service/internal/domain"
)

// PostgreSQL backed cache of resolved addresses keyed by normalized postal
// code, for deployments sharing one managed database.
type PostgresAddresses struct {
	DB *sql.DB
}

func NewPostgresAddresses(db *sql.DB) *PostgresAddresses {
	return &PostgresAddresses{DB: db}
}

// Fetch the cached record for a normalized postal code.
func (p *PostgresAddresses) Get(ctx context.Context, postalCode string) (domain.Address, error) {
	row := p.DB.QueryRowContext(ctx, `
	SELECT
		postal_code,
		street,
		complement,
		district,
		city,
		region_code,
		ibge,
		gia,
		ddd,
		siafi,
		last_refreshed
	FROM addresses
	WHERE postal_code = $1;
	`, postalCode)

	return scanAddress(row, postalCode)
}

// Insert the record, or replace the existing row for the same postal code.
func (p *PostgresAddresses) Upsert(ctx context.Context, a domain.Address) error {
	_, err := p.DB.ExecContext(ctx, `
	INSERT INTO addresses (
		postal_code,
		street,
		complement,
		district,
		city,
		region_code,
		ibge,
		gia,
		ddd,
		siafi,
		last_refreshed
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (postal_code) DO UPDATE SET
		street = EXCLUDED.street,
		complement = EXCLUDED.complement,
		district = EXCLUDED.district,
		city = EXCLUDED.city,
		region_code = EXCLUDED.region_code,
		ibge = EXCLUDED.ibge,
		gia = EXCLUDED.gia,
		ddd = EXCLUDED.ddd,
		siafi = EXCLUDED.siafi,
		last_refreshed = EXCLUDED.last_refreshed;
	`,
		a.PostalCode, a.Street, a.Complement, a.District, a.City,
		a.RegionCode, a.IBGE, a.GIA, a.DDD, a.SIAFI, formatTime(a.LastRefreshed),
	)
	if err != nil {
		return fmt.Errorf("upsert address %s: %w", a.PostalCode, err)
	}
	return nil
}
