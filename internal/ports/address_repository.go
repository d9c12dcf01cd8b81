package ports

import (
	"context"

	"address-distance-service/internal/domain"
)

// Port: the durable cache of resolved addresses, keyed by normalized
// postal code.
type AddressRepository interface {
	// Retrieve the cached record for a normalized code. Absent codes fail
	// with domain.ErrNotFound.
	Get(ctx context.Context, postalCode string) (domain.Address, error)

	// Insert the record, or replace the existing row for the same postal
	// code wholesale.
	Upsert(ctx context.Context, address domain.Address) error
}
