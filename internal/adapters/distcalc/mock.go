package distcalc

import (
	"context"
	"sync"

	"address-distance-service/internal/ports"
)

// MockCalculator returns a canned result and captures queries, for
// orchestrator tests.
type MockCalculator struct {
	Result ports.TripResult
	Err    error

	mu      sync.Mutex
	queries []ports.TripQuery
}

func (m *MockCalculator) Calculate(ctx context.Context, query ports.TripQuery) (ports.TripResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queries = append(m.queries, query)
	if m.Err != nil {
		return ports.TripResult{}, m.Err
	}
	return m.Result, nil
}

// Queries returns the captured queries in call order.
func (m *MockCalculator) Queries() []ports.TripQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ports.TripQuery(nil), m.queries...)
}
