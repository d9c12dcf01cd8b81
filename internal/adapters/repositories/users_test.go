package repositories_test

import (
	"context"
	"errors"
	"testing"

	"address-distance-service/internal/adapters/repositories"
	"address-distance-service/internal/domain"
	"address-distance-service/internal/testutil"
)

func TestUsersCreateAndGet(t *testing.T) {
	store := repositories.NewSqliteUsers(testutil.NewSQLiteDB(t))
	ctx := context.Background()

	want := domain.User{
		ID:    "user-1",
		Name:  "Ana Souza",
		Email: "ana@example.com",
		Preferences: map[string]any{
			"unit":  "km",
			"limit": float64(25),
		},
	}
	if err := store.Create(ctx, want); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != want.Name || got.Email != want.Email {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.Preferences["unit"] != "km" || got.Preferences["limit"] != float64(25) {
		t.Errorf("preferences = %+v, want %+v", got.Preferences, want.Preferences)
	}
}

func TestUsersNilPreferencesRoundTrip(t *testing.T) {
	store := repositories.NewSqliteUsers(testutil.NewSQLiteDB(t))
	ctx := context.Background()

	if err := store.Create(ctx, domain.User{ID: "user-1", Name: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Preferences) != 0 {
		t.Errorf("preferences = %+v, want empty", got.Preferences)
	}
}

func TestUsersUpdate(t *testing.T) {
	store := repositories.NewSqliteUsers(testutil.NewSQLiteDB(t))
	ctx := context.Background()

	if err := store.Create(ctx, domain.User{ID: "user-1", Name: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated := domain.User{
		ID:          "user-1",
		Name:        "Ana Maria",
		Email:       "ana.maria@example.com",
		Preferences: map[string]any{"unit": "mi"},
	}
	if err := store.Update(ctx, updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := store.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Ana Maria" || got.Email != "ana.maria@example.com" {
		t.Errorf("after update got %+v", got)
	}

	if err := store.Update(ctx, domain.User{ID: "ghost", Name: "x", Email: "x@example.com"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("update missing = %v, want ErrNotFound", err)
	}
}

func TestUsersDelete(t *testing.T) {
	store := repositories.NewSqliteUsers(testutil.NewSQLiteDB(t))
	ctx := context.Background()

	if err := store.Create(ctx, domain.User{ID: "user-1", Name: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "user-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "user-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestUsersEmailInUse(t *testing.T) {
	store := repositories.NewSqliteUsers(testutil.NewSQLiteDB(t))
	ctx := context.Background()

	if err := store.Create(ctx, domain.User{ID: "user-1", Name: "Ana", Email: "ana@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	inUse, err := store.EmailInUse(ctx, "ana@example.com", "")
	if err != nil {
		t.Fatalf("email in use: %v", err)
	}
	if !inUse {
		t.Error("existing email reported as free")
	}

	// The owner keeping their own email is not a conflict.
	inUse, err = store.EmailInUse(ctx, "ana@example.com", "user-1")
	if err != nil {
		t.Fatalf("email in use excluding owner: %v", err)
	}
	if inUse {
		t.Error("owner's own email reported as taken")
	}

	inUse, err = store.EmailInUse(ctx, "free@example.com", "")
	if err != nil {
		t.Fatalf("email in use free: %v", err)
	}
	if inUse {
		t.Error("unused email reported as taken")
	}
}
