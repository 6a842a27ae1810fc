package gormrepo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/p-rivero/EDA-ThePurge2020/internal/app/ports"
)

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("PURGE_DB_DSN")
	if dsn == "" {
		t.Skip("PURGE_DB_DSN is required for integration test")
	}
	return dsn
}

func TestMatchRepo_SaveAndList(t *testing.T) {
	dsn := requireDSN(t)
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	repo := NewMatchRepo(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	player := "it-player-list"
	ctx := context.Background()
	_ = db.Exec("DELETE FROM matches WHERE player = ?", player).Error

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		rec := ports.MatchRecord{
			Seed:       int64(1000 + i),
			Player:     player,
			Opponent:   "Dummy",
			Mode:       "normal",
			Won:        i != 1,
			Output:     "got top score",
			FinishedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := repo.SaveMatch(ctx, rec); err != nil {
			t.Fatalf("save match %d: %v", i, err)
		}
	}

	got, err := repo.ListMatches(ctx, player, 2)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Seed != 1002 {
		t.Fatalf("expected newest match first, got seed %d", got[0].Seed)
	}
	if got[1].Won {
		t.Fatalf("expected seed 1001 to be a loss")
	}

	all, err := repo.ListMatches(ctx, player, 0)
	if err != nil {
		t.Fatalf("list matches with default limit: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(all))
	}
}
