package round

import (
	"context"
	"fmt"

	"github.com/p-rivero/EDA-ThePurge2020/internal/app/ports"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/board"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/bonus"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/orders"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/planner"
)

// UseCase drives one full round: rebuild the world model, refresh the bonus
// index, plan every unit (builders first, then warriors) and flush the
// instruction queue into the host in priority order. One instance serves
// one match; matrices are allocated on the first round and reused.
type UseCase struct {
	Host    ports.HostProvider
	Sink    ports.ActionSink
	Metrics ports.RoundMetrics
	Tuning  planner.Tuning

	model   *board.Model
	bonuses *bonus.Tracker
	planner planner.Planner
}

func (u *UseCase) PlayRound(ctx context.Context) (ports.RoundReport, error) {
	snap, err := u.Host.Snapshot(ctx)
	if err != nil {
		return ports.RoundReport{}, fmt.Errorf("host snapshot: %w", err)
	}

	if u.model == nil {
		u.model = board.NewModel(snap.Rows, snap.Cols)
		u.bonuses = bonus.NewTracker()
		t := u.Tuning
		if t == (planner.Tuning{}) {
			t = planner.DefaultTuning()
		}
		u.planner = planner.New(t)
	}

	u.bonuses.Swap(snap.Round)
	pickups := u.model.Build(snap)
	u.bonuses.Rebuild(snap, u.model, pickups)

	env := &planner.Env{
		Snap:          snap,
		Model:         u.model,
		Bonuses:       u.bonuses,
		OwnBarricades: snap.MyBarricades(),
	}

	report := ports.RoundReport{Round: snap.Round, Day: snap.IsDay()}
	queue := &orders.Queue{}

	day := snap.IsDay()
	for _, id := range snap.Builders {
		u.runTask(env, queue, &report, id, game.Builder, day)
	}
	for _, id := range snap.Warriors {
		u.runTask(env, queue, &report, id, game.Warrior, day)
	}

	if err := queue.Flush(u.Sink); err != nil {
		return report, fmt.Errorf("flush instructions: %w", err)
	}
	if u.Metrics != nil {
		u.Metrics.RecordRound(report)
	}
	return report, nil
}

// runTask dispatches the unit to its role- and phase-specific task. The
// closed (role, day/night) table replaces per-unit polymorphism: every
// combination is one function.
func (u *UseCase) runTask(env *planner.Env, q *orders.Queue, report *ports.RoundReport, id int, role game.CitizenType, day bool) {
	switch {
	case role == game.Builder && day:
		u.builderDay(env, q, report, id)
	case role == game.Builder:
		u.nightTask(env, q, report, id, false)
	case day:
		u.warriorDay(env, q, report, id)
	default:
		u.nightTask(env, q, report, id, true)
	}
}

func (u *UseCase) warriorDay(env *planner.Env, q *orders.Queue, report *ports.RoundReport, id int) {
	// Combat is forbidden by day: the search alone decides, there is no
	// fallback worth taking.
	if p, ok := u.planner.ApproachTarget(env, id, true); ok {
		q.Push(p)
		report.Moves++
		return
	}
	report.Holds++
}

func (u *UseCase) builderDay(env *planner.Env, q *orders.Queue, report *ports.RoundReport, id int) {
	if p, ok := u.planner.ApproachTarget(env, id, false); ok {
		q.Push(p)
		report.Moves++
		return
	}

	pos := env.Snap.Citizens[id].Pos

	// Improve an adjacent own barricade before starting a new one.
	for _, d := range game.Dirs {
		if u.planner.HasBuildableBarricade(env, pos.Plus(d)) {
			q.Push(orders.Proposal{Priority: planner.PriorityBuild, Build: true, CitizenID: id, Dir: d})
			report.Builds++
			report.Fallbacks++
			return
		}
	}
	if env.OwnBarricades >= env.Snap.Rules.MaxBarricades {
		report.Holds++
		return
	}
	// New barricade on an empty cell no enemy can reach this round.
	m := env.Model
	for _, d := range game.Dirs {
		np := pos.Plus(d)
		if m.InBounds(np) && m.Class(np) == board.ClassEmpty && m.Barricade(np) == 0 &&
			m.Halo(np) == 0 && m.Life(np) == 0 {
			env.OwnBarricades++
			q.Push(orders.Proposal{Priority: planner.PriorityBuild, Build: true, CitizenID: id, Dir: d})
			report.Builds++
			report.Fallbacks++
			return
		}
	}
	// Failing that, any empty cell will do.
	for _, d := range game.Dirs {
		np := pos.Plus(d)
		if m.InBounds(np) && m.Class(np) == board.ClassEmpty && m.Barricade(np) == 0 {
			env.OwnBarricades++
			q.Push(orders.Proposal{Priority: planner.PriorityBuild, Build: true, CitizenID: id, Dir: d})
			report.Builds++
			report.Fallbacks++
			return
		}
	}
	report.Holds++
}

// nightTask is the shared night behavior: search for a target, and if the
// current cell is outmatched, retreat into a barricade or the best safe
// neighbor. Builders and warriors differ only in tier and in which cells
// count as an acceptable escape.
func (u *UseCase) nightTask(env *planner.Env, q *orders.Queue, report *ports.RoundReport, id int, isWarrior bool) {
	if p, ok := u.planner.ApproachTarget(env, id, isWarrior); ok {
		q.Push(p)
		report.Moves++
		return
	}

	c := env.Snap.Citizens[id]
	tier := c.Tier()
	m := env.Model

	if m.Halo(c.Pos) <= tier {
		report.Holds++
		return
	}

	priority := planner.PriorityRun
	if env.Snap.Rules.AttackDamage >= c.Life {
		priority = planner.PriorityRunDeath
	}

	// A barricade is the best cover there is.
	for _, d := range game.Dirs {
		np := c.Pos.Plus(d)
		if m.InBounds(np) && m.Barricade(np) > 0 {
			q.Push(orders.Proposal{Priority: priority, CitizenID: id, Dir: d})
			report.Moves++
			report.Fallbacks++
			return
		}
	}

	// Otherwise run to the most valuable adjacent cell that is not itself
	// covered by a stronger enemy. Builders refuse to displace teammates.
	best := board.ClassFriendly
	if isWarrior {
		best = board.ClassEnemyBazooka - 1
	}
	var bestDir game.Dir
	found := false
	for _, d := range game.Dirs {
		np := c.Pos.Plus(d)
		if !m.InBounds(np) || m.Class(np) == board.ClassWall || m.Halo(np) > tier {
			continue
		}
		if m.Class(np) > best {
			best = m.Class(np)
			bestDir = d
			found = true
		}
	}
	if found {
		q.Push(orders.Proposal{Priority: priority, CitizenID: id, Dir: bestDir})
		report.Moves++
		report.Fallbacks++
		return
	}
	// No escape route: accept the turn passively.
	report.Holds++
}
