package bonus

import (
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/board"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"
)

// Record stores, for one pickup cell, who is currently closest to it among
// the units entitled to take it. The zero value means "no known contender".
type Record struct {
	Kind              board.PickupKind
	ClosestDist       int
	ClosestIsFriendly bool
}

// Tracker keeps the closest-contender records for the current round and the
// previous one. Two generations alternate by round parity so that swapping
// costs one map clear instead of a copy; this is the only cross-round
// memory in the whole decision core.
type Tracker struct {
	odd  map[game.Pos]*Record
	even map[game.Pos]*Record

	cur  map[game.Pos]*Record
	prev map[game.Pos]*Record
}

func NewTracker() *Tracker {
	t := &Tracker{
		odd:  map[game.Pos]*Record{},
		even: map[game.Pos]*Record{},
	}
	t.cur, t.prev = t.even, t.odd
	return t
}

// Swap selects the generation for the given round and clears it. The other
// generation keeps last round's records untouched.
func (t *Tracker) Swap(round int) {
	if round%2 == 1 {
		t.cur, t.prev = t.odd, t.even
	} else {
		t.cur, t.prev = t.even, t.odd
	}
	clear(t.cur)
}

// Rebuild registers this round's pickups and computes the closest entitled
// unit for each of them.
func (t *Tracker) Rebuild(snap *game.Snapshot, m *board.Model, pickups []board.Pickup) {
	for _, pk := range pickups {
		rec := &Record{Kind: pk.Kind}
		computeClosest(snap, m, pk.Pos, rec)
		t.cur[pk.Pos] = rec
	}
}

// Current returns this round's record for a pickup cell. Missing entries
// read as the zero record, same as an unreachable pickup.
func (t *Tracker) Current(p game.Pos) Record {
	if rec, ok := t.cur[p]; ok {
		return *rec
	}
	return Record{}
}

// Previous returns last round's record for a pickup cell.
func (t *Tracker) Previous(p game.Pos) Record {
	if rec, ok := t.prev[p]; ok {
		return *rec
	}
	return Record{}
}

// Claim marks a friendly unit as the new closest contender for a pickup,
// so that units planned later in the same round do not also converge on it.
func (t *Tracker) Claim(p game.Pos, dist int) {
	rec, ok := t.cur[p]
	if !ok {
		return
	}
	rec.ClosestIsFriendly = true
	rec.ClosestDist = dist
}
