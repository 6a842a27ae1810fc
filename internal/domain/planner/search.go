package planner

import (
	"container/heap"

	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"
)

// searchNode is one frontier entry of the profit search: the accumulated
// cost in turns, the position, and the first step taken from the unit to
// get there. Nodes may be pushed more than once; stale ones are dropped at
// dequeue.
type searchNode struct {
	dist int
	pos  game.Pos
	dir  game.Dir
}

type searchHeap []searchNode

func (h searchHeap) Len() int            { return len(h) }
func (h searchHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h searchHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *searchHeap) Push(x any) { *h = append(*h, x.(searchNode)) }
func (h *searchHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func pushNode(h *searchHeap, n searchNode) {
	heap.Push(h, n)
}

func popNode(h *searchHeap) searchNode {
	return heap.Pop(h).(searchNode)
}
