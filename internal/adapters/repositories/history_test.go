package repositories_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"address-distance-service/internal/adapters/repositories"
	"address-distance-service/internal/domain"
	"address-distance-service/internal/testutil"
)

func appendEntries(t *testing.T, store *repositories.SqliteHistory, n int) []domain.HistoryEntry {
	t.Helper()

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	entries := make([]domain.HistoryEntry, 0, n)
	for i := 0; i < n; i++ {
		e := domain.HistoryEntry{
			ID:            fmt.Sprintf("entry-%02d", i),
			QueryType:     domain.QueryTypeAddress,
			QueryPayload:  fmt.Sprintf("0100100%d", i),
			ResultPayload: `{"ok":true}`,
			CreatedAt:     base.Add(time.Duration(i) * time.Second),
		}
		if err := store.Append(context.Background(), e); err != nil {
			t.Fatalf("append %s: %v", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestHistoryListNewestFirst(t *testing.T) {
	store := repositories.NewSqliteHistory(testutil.NewSQLiteDB(t))
	appendEntries(t, store, 5)

	got, err := store.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}

	for i := range got {
		want := fmt.Sprintf("entry-%02d", 4-i)
		if got[i].ID != want {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestHistoryListLimitOffset(t *testing.T) {
	store := repositories.NewSqliteHistory(testutil.NewSQLiteDB(t))
	appendEntries(t, store, 5)

	got, err := store.List(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "entry-03" || got[1].ID != "entry-02" {
		t.Errorf("window = [%s %s], want [entry-03 entry-02]", got[0].ID, got[1].ID)
	}
}

func TestHistoryListEmpty(t *testing.T) {
	store := repositories.NewSqliteHistory(testutil.NewSQLiteDB(t))

	got, err := store.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestHistoryDelete(t *testing.T) {
	store := repositories.NewSqliteHistory(testutil.NewSQLiteDB(t))
	appendEntries(t, store, 2)
	ctx := context.Background()

	if err := store.Delete(ctx, "entry-00"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := store.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "entry-01" {
		t.Errorf("after delete list = %+v, want only entry-01", got)
	}

	if err := store.Delete(ctx, "entry-00"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestHistoryRoundTripPreservesPayloads(t *testing.T) {
	store := repositories.NewSqliteHistory(testutil.NewSQLiteDB(t))
	ctx := context.Background()

	entry := domain.HistoryEntry{
		ID:            "entry-raw",
		QueryType:     domain.QueryTypeDistance,
		QueryPayload:  `{"origin_postal_code":"01001000","destination_postal_code":"20040020","mode":"driving"}`,
		ResultPayload: `{"calculation_id":"abc","distance":398.74,"unit":"km"}`,
		CreatedAt:     time.Date(2026, 4, 2, 15, 30, 0, 987654321, time.UTC),
	}
	if err := store.Append(ctx, entry); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := store.List(ctx, 1, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}

	if got[0].QueryType != domain.QueryTypeDistance {
		t.Errorf("QueryType = %s, want %s", got[0].QueryType, domain.QueryTypeDistance)
	}
	if got[0].QueryPayload != entry.QueryPayload {
		t.Errorf("QueryPayload = %s, want %s", got[0].QueryPayload, entry.QueryPayload)
	}
	if got[0].ResultPayload != entry.ResultPayload {
		t.Errorf("ResultPayload = %s, want %s", got[0].ResultPayload, entry.ResultPayload)
	}
	if !got[0].CreatedAt.Equal(entry.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got[0].CreatedAt, entry.CreatedAt)
	}
}
