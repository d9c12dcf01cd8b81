package ports

import (
	"context"

	"address-distance-service/internal/domain"
)

// Port: durable storage for API consumer profiles.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error

	// Retrieve one user by id, failing with domain.ErrNotFound when absent.
	Get(ctx context.Context, id string) (domain.User, error)

	// Replace the stored profile, failing with domain.ErrNotFound
	// when absent.
	Update(ctx context.Context, user domain.User) error

	// Delete one user by id, failing with domain.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error

	// Report whether email belongs to any user other than excludeUserID.
	// Pass an empty excludeUserID to match every user.
	EmailInUse(ctx context.Context, email, excludeUserID string) (bool, error)
}
