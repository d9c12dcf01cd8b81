package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
)

// Resolver fronts the remote address provider with the durable cache.
// A fresh cached record answers without any network traffic; a miss or a
// stale record triggers one provider lookup, replaces the cached row and
// appends an audit entry.
type Resolver struct {
	addresses ports.AddressRepository
	history   ports.HistoryRepository
	lookup    ports.AddressLookup
	now       func() time.Time
}

func NewResolver(
	addresses ports.AddressRepository,
	history ports.HistoryRepository,
	lookup ports.AddressLookup,
) *Resolver {
	return &Resolver{
		addresses: addresses,
		history:   history,
		lookup:    lookup,
		now:       time.Now,
	}
}

// Resolve turns a raw postal code into an address. The returned record's
// postal code always equals the normalized input, whatever formatting the
// provider echoes back.
func (r *Resolver) Resolve(ctx context.Context, rawCode string) (_ domain.Address, err error) {
	defer obs.Time(ctx, "resolver.Resolve")(&err)

	code, err := domain.NormalizePostalCode(rawCode)
	if err != nil {
		return domain.Address{}, err
	}

	cached, err := r.addresses.Get(ctx, code)
	switch {
	case err == nil && cached.FreshAt(r.now()):
		return cached, nil
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return domain.Address{}, fmt.Errorf("resolve %s: read cache: %w", code, err)
	}

	result, err := r.lookup.Lookup(ctx, code)
	if err != nil {
		return domain.Address{}, fmt.Errorf("resolve %s: %w", code, err)
	}

	// The stored identity is the code we resolved, not the provider's echo.
	address := result.Address
	address.PostalCode = code
	address.LastRefreshed = r.now()

	if err := r.addresses.Upsert(ctx, address); err != nil {
		return domain.Address{}, fmt.Errorf("resolve %s: store: %w", code, err)
	}

	entry := domain.HistoryEntry{
		ID:            uuid.NewString(),
		QueryType:     domain.QueryTypeAddress,
		QueryPayload:  code,
		ResultPayload: string(result.Raw),
		CreatedAt:     r.now(),
	}
	if err := r.history.Append(ctx, entry); err != nil {
		return domain.Address{}, fmt.Errorf("resolve %s: record history: %w", code, err)
	}

	return address, nil
}
