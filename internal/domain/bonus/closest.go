package bonus

import (
	"container/heap"
	"math"

	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/board"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"
)

type node struct {
	dist int
	pos  game.Pos
}

type frontier []node

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any) { *f = append(*f, x.(node)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// computeClosest runs a uniform-cost search outward from a pickup cell and
// fills rec with the first entitled unit it reaches. Money interests
// everyone; a weapon only interests warriors strictly weaker than it, and
// the search continues through units that do not qualify. Barricades on the
// way count as extra turns at the strongest demolition rate, whoever owns
// them. If nothing qualifies in the whole reachable region the record keeps
// its zero value.
func computeClosest(snap *game.Snapshot, m *board.Model, origin game.Pos, rec *Record) {
	weaponTier := game.Weapon(m.Class(origin))
	rate := snap.Rules.Demolish(game.Bazooka)

	dist := make([][]int, m.Rows)
	visited := make([][]bool, m.Rows)
	for i := 0; i < m.Rows; i++ {
		dist[i] = make([]int, m.Cols)
		visited[i] = make([]bool, m.Cols)
		for j := 0; j < m.Cols; j++ {
			dist[i][j] = math.MaxInt
		}
	}

	q := &frontier{}
	dist[origin.I][origin.J] = 0
	heap.Push(q, node{dist: 0, pos: origin})

	for q.Len() > 0 {
		u := heap.Pop(q).(node).pos
		if visited[u.I][u.J] {
			continue
		}
		visited[u.I][u.J] = true
		d := dist[u.I][u.J]

		if cls := m.Class(u); cls.IsEnemy() || cls == board.ClassFriendly {
			if entitled(snap, m, u, rec.Kind, weaponTier) {
				rec.ClosestDist = d
				rec.ClosestIsFriendly = cls == board.ClassFriendly
				return
			}
		}

		for _, dir := range game.Dirs {
			n := u.Plus(dir)
			if !m.InBounds(n) || m.Class(n) == board.ClassWall {
				continue
			}
			nd := d + 1
			if b := m.Barricade(n); b != 0 {
				if b < 0 {
					b = -b
				}
				nd += b / rate
			}
			if nd < dist[n.I][n.J] {
				dist[n.I][n.J] = nd
				heap.Push(q, node{dist: nd, pos: n})
			}
		}
	}
}

func entitled(snap *game.Snapshot, m *board.Model, u game.Pos, kind board.PickupKind, weaponTier game.Weapon) bool {
	if kind == board.PickupMoney {
		return true
	}
	cls := m.Class(u)
	if cls == board.ClassFriendly {
		cit, ok := snap.Citizens[snap.Cell(u).CitizenID]
		return ok && cit.Type == game.Warrior && cit.Tier() < weaponTier
	}
	// Enemy builders never qualify for weapons.
	return cls < board.ClassEnemyBuilder && cls.EnemyTier() < weaponTier
}
