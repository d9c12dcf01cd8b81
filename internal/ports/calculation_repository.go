package ports

import (
	"context"

	"address-distance-service/internal/domain"
)

// Port: durable storage for completed distance calculations.
type CalculationRepository interface {
	Insert(ctx context.Context, calc domain.Calculation) error

	// List calculations newest first.
	List(ctx context.Context, limit, offset int) ([]domain.Calculation, error)

	// Delete one calculation by id, failing with domain.ErrNotFound
	// when absent.
	Delete(ctx context.Context, id string) error
}
