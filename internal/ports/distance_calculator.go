package ports

import (
	"context"

	"address-distance-service/internal/domain"
)

// TripQuery is a mode-tagged pair of place descriptors. It is also the wire
// request of the distance service's calculate endpoint, so the in-process
// calculator and the HTTP one accept identical input.
type TripQuery struct {
	Origin      domain.Place `json:"origin"`
	Destination domain.Place `json:"destination"`
	Mode        string       `json:"mode"`
}

// TripResult is the computed distance plus the identifier of the calculation
// record persisted for it.
type TripResult struct {
	CalculationID string
	Distance      float64
	Unit          string
}

// Contract for computing the distance between two places. Every successful
// call persists exactly one calculation record on whichever side runs the
// engine.
type DistanceCalculator interface {
	Calculate(ctx context.Context, query TripQuery) (TripResult, error)
}
