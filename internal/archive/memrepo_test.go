package archive

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testRecord(id string, at time.Time) *Record {
	return &Record{
		ID:         id,
		Event:      "Test Event",
		White:      "A",
		Black:      "B",
		Result:     "*",
		PGN:        "[Event \"Test Event\"]\n\n1. e4 e5 *\n",
		ImportedAt: at,
	}
}

func TestMemrepoSaveAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	rec := testRecord("g1", time.Now())
	if err := repo.SaveGame(ctx, rec); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	got, err := repo.GetGame(ctx, "g1")
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if got == nil || got.Event != "Test Event" {
		t.Fatalf("unexpected record: %+v", got)
	}

	// Returned record is a copy.
	got.Event = "mutated"
	again, _ := repo.GetGame(ctx, "g1")
	if again.Event != "Test Event" {
		t.Fatal("repository state leaked through a returned record")
	}

	missing, err := repo.GetGame(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for a missing id, got %+v, %v", missing, err)
	}
}

func TestMemrepoRejectsDuplicates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	rec := testRecord("g1", time.Now())
	if err := repo.SaveGame(ctx, rec); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	if err := repo.SaveGame(ctx, rec); !errors.Is(err, ErrDuplicateGame) {
		t.Fatalf("expected ErrDuplicateGame, got %v", err)
	}
}

func TestMemrepoRecentGamesOrdering(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Now()

	for i, id := range []string{"old", "mid", "new"} {
		if err := repo.SaveGame(ctx, testRecord(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("SaveGame %s: %v", id, err)
		}
	}

	items, err := repo.RecentGames(ctx, 2)
	if err != nil {
		t.Fatalf("RecentGames: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	if items[0].ID != "new" || items[1].ID != "mid" {
		t.Fatalf("unexpected order: %s, %s", items[0].ID, items[1].ID)
	}
}
