package inmemory

import (
	"sync"

	"github.com/p-rivero/EDA-ThePurge2020/internal/app/ports"
)

type Snapshot struct {
	RoundsPlayed uint64            `json:"rounds_played"`
	DayRounds    uint64            `json:"day_rounds"`
	NightRounds  uint64            `json:"night_rounds"`
	MoveTotal    uint64            `json:"move_total"`
	BuildTotal   uint64            `json:"build_total"`
	HoldTotal    uint64            `json:"hold_total"`
	Fallbacks    uint64            `json:"fallbacks"`
	LastRound    ports.RoundReport `json:"last_round"`
}

type Recorder struct {
	mu   sync.Mutex
	snap Snapshot
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordRound(rep ports.RoundReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.RoundsPlayed++
	if rep.Day {
		r.snap.DayRounds++
	} else {
		r.snap.NightRounds++
	}
	r.snap.MoveTotal += uint64(rep.Moves)
	r.snap.BuildTotal += uint64(rep.Builds)
	r.snap.HoldTotal += uint64(rep.Holds)
	r.snap.Fallbacks += uint64(rep.Fallbacks)
	r.snap.LastRound = rep
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
