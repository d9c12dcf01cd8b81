package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"address-distance-service/internal/domain"
	"address-distance-service/internal/ports"
)

// Users manages API consumer profiles on top of the user store.
type Users struct {
	users ports.UserRepository
}

func NewUsers(users ports.UserRepository) *Users {
	return &Users{users: users}
}

// UserUpdate carries optional profile changes; nil fields stay unchanged.
type UserUpdate struct {
	Name        *string
	Email       *string
	Preferences map[string]any
}

// Create registers a new profile, rejecting emails already in use.
func (s *Users) Create(ctx context.Context, name, email string, preferences map[string]any) (domain.User, error) {
	taken, err := s.users.EmailInUse(ctx, email, "")
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	if taken {
		return domain.User{}, fmt.Errorf("email %s: %w", email, domain.ErrEmailTaken)
	}

	user := domain.User{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Preferences: preferences,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update applies a partial change to an existing profile. Changing the email
// to one another user holds is rejected; keeping the current email is not a
// conflict.
func (s *Users) Update(ctx context.Context, id string, change UserUpdate) (domain.User, error) {
	current, err := s.users.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if change.Email != nil && *change.Email != current.Email {
		taken, err := s.users.EmailInUse(ctx, *change.Email, id)
		if err != nil {
			return domain.User{}, fmt.Errorf("update user %s: %w", id, err)
		}
		if taken {
			return domain.User{}, fmt.Errorf("email %s: %w", *change.Email, domain.ErrEmailTaken)
		}
		current.Email = *change.Email
	}
	if change.Name != nil {
		current.Name = *change.Name
	}
	if change.Preferences != nil {
		current.Preferences = change.Preferences
	}

	if err := s.users.Update(ctx, current); err != nil {
		return domain.User{}, err
	}
	return current, nil
}

// Delete removes one profile by id.
func (s *Users) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
