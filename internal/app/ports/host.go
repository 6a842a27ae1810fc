package ports

import (
	"context"

	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"
)

// HostProvider hands the decision core one full snapshot of host state per
// round. Grid dimensions and rules are fixed after the first snapshot.
type HostProvider interface {
	Snapshot(ctx context.Context) (*game.Snapshot, error)
}

// ActionSink receives the round's submissions in flush order. Each unit is
// submitted at most once per round; the host treats anything else as a
// no-op.
type ActionSink interface {
	Move(citizenID int, d game.Dir) error
	Build(citizenID int, d game.Dir) error
}
