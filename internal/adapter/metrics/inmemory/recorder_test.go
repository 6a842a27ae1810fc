package inmemory

import (
	"testing"

	"github.com/p-rivero/EDA-ThePurge2020/internal/app/ports"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordRound(ports.RoundReport{Round: 10, Day: true, Moves: 4, Builds: 1})
	r.RecordRound(ports.RoundReport{Round: 41, Day: false, Moves: 2, Holds: 3, Fallbacks: 1})

	s := r.Snapshot()
	if s.RoundsPlayed != 2 {
		t.Fatalf("expected 2 rounds, got %d", s.RoundsPlayed)
	}
	if s.DayRounds != 1 || s.NightRounds != 1 {
		t.Fatalf("expected 1 day and 1 night round, got %d/%d", s.DayRounds, s.NightRounds)
	}
	if s.MoveTotal != 6 {
		t.Fatalf("expected 6 moves, got %d", s.MoveTotal)
	}
	if s.BuildTotal != 1 || s.HoldTotal != 3 || s.Fallbacks != 1 {
		t.Fatalf("unexpected counters: %+v", s)
	}
	if s.LastRound.Round != 41 {
		t.Fatalf("expected last round 41, got %d", s.LastRound.Round)
	}
}
