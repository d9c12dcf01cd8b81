package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
)

// Calculations runs the distance engine and owns the durable record of every
// computation. Both the distance API handlers and the embedded calculator
// adapter go through this service, so a success always leaves exactly one
// stored calculation behind.
type Calculations struct {
	engine *Engine
	store  ports.CalculationRepository
	now    func() time.Time
}

func NewCalculations(engine *Engine, store ports.CalculationRepository) *Calculations {
	return &Calculations{
		engine: engine,
		store:  store,
		now:    time.Now,
	}
}

// Outcome is a persisted calculation plus the synthesized endpoints the
// distance API echoes back.
type Outcome struct {
	Calculation domain.Calculation
	Origin      domain.Coordinates
	Destination domain.Coordinates
}

// Calculate computes the distance for query and persists the result. An
// empty mode falls back to the default travel mode.
func (c *Calculations) Calculate(ctx context.Context, query ports.TripQuery) (_ Outcome, err error) {
	defer obs.Time(ctx, "calculations.Calculate")(&err)

	if query.Mode == "" {
		query.Mode = domain.DefaultMode
	}

	result, err := c.engine.Compute(ctx, query)
	if err != nil {
		return Outcome{}, err
	}

	calc := domain.Calculation{
		ID:          uuid.NewString(),
		Origin:      query.Origin,
		Destination: query.Destination,
		Mode:        query.Mode,
		Distance:    result.Distance,
		Unit:        result.Unit,
		CreatedAt:   c.now(),
	}
	if err := c.store.Insert(ctx, calc); err != nil {
		return Outcome{}, fmt.Errorf("store calculation: %w", err)
	}

	return Outcome{
		Calculation: calc,
		Origin:      result.Origin,
		Destination: result.Destination,
	}, nil
}

// List returns stored calculations newest first.
func (c *Calculations) List(ctx context.Context, limit, offset int) ([]domain.Calculation, error) {
	return c.store.List(ctx, limit, offset)
}

// Delete removes one stored calculation by id.
func (c *Calculations) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, id)
}
