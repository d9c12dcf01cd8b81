package services

import (
	"context"
	"errors"
	"testing"

	"address-distance-service/internal/adapters/repositories"
	"address-distance-service/internal/domain"
	"address-distance-service/internal/testutil"
)

func newUsersFixture(t *testing.T) *Users {
	t.Helper()
	return NewUsers(repositories.NewSqliteUsers(testutil.NewSQLiteDB(t)))
}

func strPtr(s string) *string { return &s }

func TestUsersCreateRejectsDuplicateEmail(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Ana", "ana@example.com", nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.Create(ctx, "Outra Ana", "ana@example.com", nil)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("duplicate create = %v, want ErrEmailTaken", err)
	}
}

func TestUsersPartialUpdate(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Ana", "ana@example.com", map[string]any{"unit": "km"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, UserUpdate{Name: strPtr("Ana Maria")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Name != "Ana Maria" {
		t.Errorf("Name = %q, want Ana Maria", updated.Name)
	}
	if updated.Email != "ana@example.com" {
		t.Errorf("Email = %q, want unchanged", updated.Email)
	}
	if updated.Preferences["unit"] != "km" {
		t.Errorf("Preferences = %+v, want unchanged", updated.Preferences)
	}
}

func TestUsersUpdateKeepingOwnEmail(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Ana", "ana@example.com", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Re-sending the current email is not a conflict.
	if _, err := svc.Update(ctx, created.ID, UserUpdate{Email: strPtr("ana@example.com")}); err != nil {
		t.Errorf("update keeping own email = %v, want success", err)
	}
}

func TestUsersUpdateToTakenEmail(t *testing.T) {
	svc := newUsersFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Ana", "ana@example.com", nil); err != nil {
		t.Fatalf("create ana: %v", err)
	}
	other, err := svc.Create(ctx, "Bia", "bia@example.com", nil)
	if err != nil {
		t.Fatalf("create bia: %v", err)
	}

	_, err = svc.Update(ctx, other.ID, UserUpdate{Email: strPtr("ana@example.com")})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("update to taken email = %v, want ErrEmailTaken", err)
	}
}

func TestUsersUpdateMissing(t *testing.T) {
	svc := newUsersFixture(t)

	_, err := svc.Update(context.Background(), "ghost", UserUpdate{Name: strPtr("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("update missing = %v, want ErrNotFound", err)
	}
}
