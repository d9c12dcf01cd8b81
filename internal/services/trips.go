package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
)

// Trips is the orchestrator behind the distances endpoint: it resolves both
// postal codes through the cache, hands the resolved places to whichever
// calculator is wired in (in-process or remote) and audits the whole trip.
type Trips struct {
	resolver *Resolver
	calc     ports.DistanceCalculator
	history  ports.HistoryRepository
	now      func() time.Time
}

func NewTrips(resolver *Resolver, calc ports.DistanceCalculator, history ports.HistoryRepository) *Trips {
	return &Trips{
		resolver: resolver,
		calc:     calc,
		history:  history,
		now:      time.Now,
	}
}

// Trip is a completed origin/destination computation.
type Trip struct {
	Origin        domain.Address
	Destination   domain.Address
	Distance      float64
	Unit          string
	Mode          string
	CalculationID string
}

type tripHistoryRequest struct {
	OriginPostalCode      string `json:"origin_postal_code"`
	DestinationPostalCode string `json:"destination_postal_code"`
	Mode                  string `json:"mode"`
}

type tripHistoryResult struct {
	CalculationID string  `json:"calculation_id"`
	Distance      float64 `json:"distance"`
	Unit          string  `json:"unit"`
}

// ComputeTrip resolves both codes in order, computes the distance between
// them and appends one distance_calculation audit entry. Resolution failures
// name the side that failed, so "origin:" and "destination:" prefixes reach
// the caller.
func (t *Trips) ComputeTrip(ctx context.Context, originCode, destinationCode, mode string) (_ Trip, err error) {
	defer obs.Time(ctx, "trips.ComputeTrip")(&err)

	if mode == "" {
		mode = domain.DefaultMode
	}

	origin, err := t.resolver.Resolve(ctx, originCode)
	if err != nil {
		return Trip{}, fmt.Errorf("origin: %w", err)
	}

	destination, err := t.resolver.Resolve(ctx, destinationCode)
	if err != nil {
		return Trip{}, fmt.Errorf("destination: %w", err)
	}

	result, err := t.calc.Calculate(ctx, ports.TripQuery{
		Origin:      placeFor(origin),
		Destination: placeFor(destination),
		Mode:        mode,
	})
	if err != nil {
		return Trip{}, fmt.Errorf("calculate distance: %w", err)
	}

	trip := Trip{
		Origin:        origin,
		Destination:   destination,
		Distance:      result.Distance,
		Unit:          result.Unit,
		Mode:          mode,
		CalculationID: result.CalculationID,
	}

	if err := t.recordTrip(ctx, trip); err != nil {
		return Trip{}, fmt.Errorf("record trip history: %w", err)
	}

	return trip, nil
}

func (t *Trips) recordTrip(ctx context.Context, trip Trip) error {
	query, err := json.Marshal(tripHistoryRequest{
		OriginPostalCode:      trip.Origin.PostalCode,
		DestinationPostalCode: trip.Destination.PostalCode,
		Mode:                  trip.Mode,
	})
	if err != nil {
		return fmt.Errorf("encode query payload: %w", err)
	}

	result, err := json.Marshal(tripHistoryResult{
		CalculationID: trip.CalculationID,
		Distance:      trip.Distance,
		Unit:          trip.Unit,
	})
	if err != nil {
		return fmt.Errorf("encode result payload: %w", err)
	}

	return t.history.Append(ctx, domain.HistoryEntry{
		ID:            uuid.NewString(),
		QueryType:     domain.QueryTypeDistance,
		QueryPayload:  string(query),
		ResultPayload: string(result),
		CreatedAt:     t.now(),
	})
}

// placeFor flattens a resolved address into the descriptor the engine
// hashes. Street and district travel together so two streets sharing a name
// in different districts stay distinct.
func placeFor(a domain.Address) domain.Place {
	street := a.Street
	if a.District != "" {
		street = a.Street + ", " + a.District
	}
	return domain.Place{
		City:   a.City,
		Region: a.RegionCode,
		Street: street,
	}
}
