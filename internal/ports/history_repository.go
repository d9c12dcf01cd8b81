package ports

import (
	"context"

	"address-distance-service/internal/domain"
)

// Port: the append-only audit trail of remote queries and calculations.
type HistoryRepository interface {
	// Append one entry. The append is part of the operation being audited:
	// when it fails, the enclosing operation must report failure.
	Append(ctx context.Context, entry domain.HistoryEntry) error

	// List entries newest first.
	List(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, error)

	// Delete one entry by id, failing with domain.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}
