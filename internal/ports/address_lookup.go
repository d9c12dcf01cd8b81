package ports

import (
	"context"

	"address-distance-service/internal/domain"
)

// LookupResult pairs a provider address with the provider's raw response
// body, which the audit trail stores verbatim.
type LookupResult struct {
	Address domain.Address
	Raw     []byte
}

// Contract for resolving a postal code against the remote address provider.
type AddressLookup interface {
	// Resolve a normalized 8-digit postal code. Codes the provider does not
	// know fail with domain.ErrNotFound; transport and status failures fail
	// with *domain.UpstreamError.
	Lookup(ctx context.Context, postalCode string) (LookupResult, error)
}
