package orders

import (
	"container/heap"

	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"
)

// Proposal is one action a unit wants to take this round. Priority decides
// submission order; among equal priorities the lowest citizen id goes first
// so that flushing is deterministic regardless of insertion order.
type Proposal struct {
	Priority  int
	Build     bool
	CitizenID int
	Dir       game.Dir
}

// Sink receives proposals in flush order, one submission each.
type Sink interface {
	Move(citizenID int, d game.Dir) error
	Build(citizenID int, d game.Dir) error
}

// Queue buffers proposals during planning and submits them at end of round
// in priority order. Append-only until Flush; nothing is revoked.
type Queue struct {
	h proposalHeap
}

func (q *Queue) Push(p Proposal) {
	heap.Push(&q.h, p)
}

func (q *Queue) Len() int {
	return q.h.Len()
}

// Flush drains the queue into the sink, best proposal first. Submission
// stops at the first sink error; the remaining proposals are discarded
// either way, since a round is never replayed.
func (q *Queue) Flush(sink Sink) error {
	var firstErr error
	for q.h.Len() > 0 {
		p := heap.Pop(&q.h).(Proposal)
		if firstErr != nil {
			continue
		}
		var err error
		if p.Build {
			err = sink.Build(p.CitizenID, p.Dir)
		} else {
			err = sink.Move(p.CitizenID, p.Dir)
		}
		if err != nil {
			firstErr = err
		}
	}
	return firstErr
}

type proposalHeap []Proposal

func (h proposalHeap) Len() int { return len(h) }
func (h proposalHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority > h[j].Priority
	}
	return h[i].CitizenID < h[j].CitizenID
}
func (h proposalHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *proposalHeap) Push(x any) { *h = append(*h, x.(Proposal)) }
func (h *proposalHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
