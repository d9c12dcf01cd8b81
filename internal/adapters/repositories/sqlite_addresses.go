package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"address-distance-service/internal/domain"
)

// SQLite backed cache of resolved addresses keyed by normalized postal code.
// Refreshing a code replaces the whole row.
type SqliteAddresses struct {
	DB *sql.DB
}

func NewSqliteAddresses(db *sql.DB) *SqliteAddresses {
	return &SqliteAddresses{DB: db}
}

// Fetch the cached record for a normalized postal code.
func (s *SqliteAddresses) Get(ctx context.Context, postalCode string) (domain.Address, error) {
	row := s.DB.QueryRowContext(ctx, `
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
	WHERE postal_code = ?;
	`, postalCode)

	return scanAddress(row, postalCode)
}

// Insert the record, or replace the existing row for the same postal code.
func (s *SqliteAddresses) Upsert(ctx context.Context, a domain.Address) error {
	_, err := s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO addresses (
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
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		a.PostalCode, a.Street, a.Complement, a.District, a.City,
		a.RegionCode, a.IBGE, a.GIA, a.DDD, a.SIAFI, formatTime(a.LastRefreshed),
	)
	if err != nil {
		return fmt.Errorf("upsert address %s: %w", a.PostalCode, err)
	}
	return nil
}

func scanAddress(row *sql.Row, postalCode string) (domain.Address, error) {
	var a domain.Address
	var lastRefreshed string

	err := row.Scan(
		&a.PostalCode, &a.Street, &a.Complement, &a.District, &a.City,
		&a.RegionCode, &a.IBGE, &a.GIA, &a.DDD, &a.SIAFI, &lastRefreshed,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Address{}, fmt.Errorf("address %s: %w", postalCode, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Address{}, fmt.Errorf("get address %s: scan row: %w", postalCode, err)
	}

	a.LastRefreshed, err = parseTime(lastRefreshed)
	if err != nil {
		return domain.Address{}, fmt.Errorf("get address %s: %w", postalCode, err)
	}
	return a, nil
}
