// Package distcalc provides the two interchangeable distance calculator
// adapters: an in-process one for single-binary deployments and an HTTP
// client for a split deployment talking to the distance service.
package distcalc

import (
	"context"

	"address-distance-service/internal/ports"
	"address-distance-service/internal/services"
)

// Local runs the distance engine in this process. Calculation persistence
// happens inside the calculations service, exactly as it would on the remote
// side of a split deployment.
type Local struct {
	calculations *services.Calculations
}

func NewLocal(calculations *services.Calculations) *Local {
	return &Local{calculations: calculations}
}

func (l *Local) Calculate(ctx context.Context, query ports.TripQuery) (ports.TripResult, error) {
	outcome, err := l.calculations.Calculate(ctx, query)
	if err != nil {
		return ports.TripResult{}, err
	}

	return ports.TripResult{
		CalculationID: outcome.Calculation.ID,
		Distance:      outcome.Calculation.Distance,
		Unit:          outcome.Calculation.Unit,
	}, nil
}
