package viacep

import (
	"context"
	"fmt"
	"sync"

	"address-distance-service/internal/domain"
	"address-distance-service/internal/ports"
)

// MockLookup is an in-memory AddressLookup for tests. It counts calls so
// cache behavior (a hit must not reach the provider) can be asserted.
type MockLookup struct {
	mu      sync.Mutex
	results map[string]ports.LookupResult
	errs    map[string]error
	calls   int
}

func NewMockLookup() *MockLookup {
	return &MockLookup{
		results: map[string]ports.LookupResult{},
		errs:    map[string]error{},
	}
}

// Add registers a successful lookup for code.
func (m *MockLookup) Add(code string, address domain.Address, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[code] = ports.LookupResult{Address: address, Raw: []byte(raw)}
}

// Fail registers a lookup failure for code.
func (m *MockLookup) Fail(code string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[code] = err
}

// Calls reports how many lookups were attempted.
func (m *MockLookup) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockLookup) Lookup(ctx context.Context, postalCode string) (ports.LookupResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++

	if err, ok := m.errs[postalCode]; ok {
		return ports.LookupResult{}, err
	}

	r, ok := m.results[postalCode]
	if !ok {
		return ports.LookupResult{}, fmt.Errorf("postal code %s: %w", postalCode, domain.ErrNotFound)
	}
	return r, nil
}
