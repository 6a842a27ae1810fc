package planner

import (
	"math"

	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/board"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/bonus"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/orders"
)

// Env is the round-scoped context a planner invocation works on. All of it
// is owned by the round in progress; nothing survives into the next round
// except the bonus tracker's previous generation.
type Env struct {
	Snap    *game.Snapshot
	Model   *board.Model
	Bonuses *bonus.Tracker
	// OwnBarricades is the number of barricades the local player has on
	// the board, plus any claimed by builders planned earlier this round.
	OwnBarricades int
}

type Planner struct {
	Tuning Tuning
}

func New(t Tuning) Planner {
	return Planner{Tuning: t}
}

// ApproachTarget picks the best reachable target for one unit and returns
// the move proposal for its first step. ok is false when nothing is worth
// moving towards this round, either because the board offers nothing or
// because a builder should fall back to building.
func (pl Planner) ApproachTarget(env *Env, id int, isWarrior bool) (orders.Proposal, bool) {
	snap, m := env.Snap, env.Model
	c := snap.Citizens[id]
	origin := c.Pos
	weapon := c.Tier()

	needHeal := c.Life < snap.Rules.BuilderInitialLife
	if isWarrior {
		needHeal = c.Life < snap.Rules.WarriorInitialLife
	}

	dist := make([][]int, m.Rows)
	visited := make([][]bool, m.Rows)
	for i := 0; i < m.Rows; i++ {
		dist[i] = make([]int, m.Cols)
		visited[i] = make([]bool, m.Cols)
		for j := 0; j < m.Cols; j++ {
			dist[i][j] = math.MaxInt
		}
	}
	dist[origin.I][origin.J] = 0
	visited[origin.I][origin.J] = true

	q := &searchHeap{}

	// Fast path: an adjacent guaranteed kill or a strictly better weapon
	// beats anything the search could find.
	for _, d := range game.Dirs {
		np := origin.Plus(d)
		if !m.InBounds(np) {
			continue
		}
		tmpWeapon := weapon
		if pl.noBrainer(env, np, &tmpWeapon, isWarrior) {
			if tmpWeapon < m.Halo(np) {
				// Grabbing it walks into a stronger threat: wait instead.
				return orders.Proposal{}, false
			}
			return orders.Proposal{Priority: PriorityVeryHigh, CitizenID: id, Dir: d}, true
		}
	}

	// Seed the frontier in two stages: first only fully safe neighbors
	// (no neighbor of theirs is dangerous either), then, if none qualify,
	// anything not immediately dangerous.
	pl.seed(env, q, dist, origin, weapon, true)
	if q.Len() == 0 {
		pl.seed(env, q, dist, origin, weapon, false)
	}

	bestProfit := math.MinInt
	var bestDir game.Dir
	var claimPos game.Pos
	claimDist := 0
	hasClaim := false

	for q.Len() > 0 {
		top := popNode(q)
		u, dir := top.pos, top.dir
		if visited[u.I][u.J] {
			continue
		}
		visited[u.I][u.J] = true
		d := dist[u.I][u.J]

		cls := m.Class(u)
		switch {
		case isWarrior && cls.IsEnemy() && pl.isStronger(env, c, weapon, u) && snap.Calendar.IsNight(snap.Round+d):
			profit := pl.Tuning.AttackProfit - d
			if cls < board.ClassEnemyBuilder {
				profit += pl.Tuning.WarriorExtraProfit
			}
			if profit > bestProfit {
				bestProfit = profit
				bestDir = dir
				hasClaim = false
			}
			// Melee: the path ends at the enemy, don't search past it.
			continue

		case cls == board.ClassMoney:
			profit := pl.Tuning.MoneyProfit - d
			cur := env.Bonuses.Current(u)
			prev := env.Bonuses.Previous(u)
			// Someone else is closer and was already closing in last
			// round: racing them would waste the turns, let it go.
			if profit > 0 && cur.ClosestDist < d && cur.ClosestDist < prev.ClosestDist {
				profit = 0
			}
			if profit > bestProfit {
				bestProfit = profit
				bestDir = dir
				hasClaim = false
			}

		case cls == board.ClassFood && needHeal:
			profit := pl.Tuning.HealthProfit - d
			if snap.Rules.AttackDamage >= c.Life {
				profit += pl.Tuning.AboutToDieBonus
			}
			if profit > bestProfit {
				bestProfit = profit
				bestDir = dir
				hasClaim = false
			}

		case cls >= board.ClassGun && env.Bonuses.Current(u).ClosestDist >= d:
			switch cur := env.Bonuses.Current(u); {
			case isWarrior && cls > board.Class(weapon):
				profit := pl.Tuning.WeaponProfit - d
				if cls == board.ClassBazooka {
					profit += 2 * pl.Tuning.BazookaExtraProfit
				}
				if profit > bestProfit {
					bestProfit = profit
					bestDir = dir
					hasClaim = false
				}
			case cur.ClosestIsFriendly:
				// A closer teammate wants it: make stepping on it more
				// expensive so this unit routes around it.
				dist[u.I][u.J] += pl.Tuning.TeammateClaimPenalty
			default:
				// The closest contender is an enemy: denying it the
				// weapon has value on its own.
				profit := pl.Tuning.StealWeaponProfit - d
				if cls == board.ClassBazooka {
					profit += pl.Tuning.BazookaExtraProfit
				}
				if profit > bestProfit {
					bestProfit = profit
					bestDir = dir
					claimPos = u
					claimDist = d
					hasClaim = true
				}
			}
		}

		for _, dd := range game.Dirs {
			n := u.Plus(dd)
			if !pl.traversable(env, n, weapon) {
				continue
			}
			nd := dist[u.I][u.J] + 1 + pl.movementPenalty(env, n, weapon)
			if nd < dist[n.I][n.J] {
				dist[n.I][n.J] = nd
				pushNode(q, searchNode{dist: nd, pos: n, dir: dir})
			}
		}
	}

	if bestProfit == math.MinInt {
		return orders.Proposal{}, false
	}

	// Builders by day weigh the best find against building instead.
	if snap.IsDay() && !isWarrior && m.Barricade(origin) == 0 {
		threshold := math.MinInt
		if env.OwnBarricades < snap.Rules.MaxBarricades {
			threshold = pl.Tuning.BarricadeThreshold
		}
		for _, d := range game.Dirs {
			if pl.HasBuildableBarricade(env, origin.Plus(d)) {
				threshold = pl.Tuning.BarricadeInterruptThreshold
			}
		}
		if bestProfit <= threshold {
			return orders.Proposal{}, false
		}
	}

	np := origin.Plus(bestDir)
	if pl.isDanger(env, origin, weapon) && dist[np.I][np.J] > 1 {
		// In danger and the chosen step does not resolve this turn: a
		// multi-turn commitment is worse than the fallback.
		return orders.Proposal{}, false
	}

	priority := bestProfit
	if pl.isDanger(env, origin, weapon) {
		priority = PriorityRun
		if snap.Rules.AttackDamage >= c.Life {
			priority = PriorityRunDeath
		}
	} else if m.Halo(np) == 0 && m.Life(np) == 0 {
		// No enemy can contend for the destination, order doesn't matter.
		priority = PriorityNotImportant
	}

	if hasClaim {
		env.Bonuses.Claim(claimPos, claimDist)
	}
	return orders.Proposal{Priority: priority, CitizenID: id, Dir: bestDir}, true
}

// noBrainer reports whether moving onto np is an immediately-decidable
// optimal action: finishing a weaker enemy that dies to one hit, or picking
// up a strictly better weapon. When it is a weapon grab, *weapon is updated
// as if already holding it so the caller's safety check uses the new tier.
func (pl Planner) noBrainer(env *Env, np game.Pos, weapon *game.Weapon, isWarrior bool) bool {
	m := env.Model
	cls := m.Class(np)
	if cls.IsEnemy() && cls.EnemyTier() <= *weapon && env.Snap.IsNight() &&
		m.Life(np) <= env.Snap.Rules.AttackDamage && m.Barricade(np) == 0 {
		return true
	}
	if isWarrior && cls > board.Class(*weapon) {
		*weapon = game.Weapon(cls)
		return true
	}
	return false
}

func (pl Planner) seed(env *Env, q *searchHeap, dist [][]int, origin game.Pos, weapon game.Weapon, fullySafe bool) {
	m := env.Model
	for _, d := range game.Dirs {
		np := origin.Plus(d)
		if !pl.traversable(env, np, weapon) {
			continue
		}
		if fullySafe {
			safe := true
			for _, e := range game.Dirs {
				nn := np.Plus(e)
				if m.InBounds(nn) && pl.isDanger(env, nn, weapon) {
					safe = false
				}
			}
			if !safe {
				continue
			}
		}
		nd := 1 + pl.movementPenalty(env, np, weapon)
		dist[np.I][np.J] = nd
		pushNode(q, searchNode{dist: nd, pos: np, dir: d})
	}
}

// traversable implements the edge rules: never into walls, never into a
// cell that is unsafe this round, never into a strictly stronger enemy.
func (pl Planner) traversable(env *Env, p game.Pos, weapon game.Weapon) bool {
	m := env.Model
	if !m.InBounds(p) || m.Class(p) == board.ClassWall {
		return false
	}
	if pl.isDanger(env, p, weapon) {
		return false
	}
	if cls := m.Class(p); cls.IsEnemy() && cls.EnemyTier() > weapon {
		return false
	}
	return true
}

// isDanger reports whether standing on p this round can cost life. On a
// day round followed by another day round nothing can attack, so nothing
// is dangerous.
func (pl Planner) isDanger(env *Env, p game.Pos, weapon game.Weapon) bool {
	snap := env.Snap
	if snap.IsDay() && snap.Calendar.IsDay(snap.Round+1) {
		return false
	}
	return env.Model.Halo(p) > weapon
}

// movementPenalty estimates the extra turns it takes to actually occupy p:
// demolishing an enemy barricade, finishing off the enemy standing there
// (minus one, attacks land from the adjacent cell), or squeezing past a
// friendly unit.
func (pl Planner) movementPenalty(env *Env, p game.Pos, weapon game.Weapon) int {
	m := env.Model
	penalty := 0
	if b := m.Barricade(p); b < 0 {
		penalty += -b / env.Snap.Rules.Demolish(weapon)
	}
	if m.Class(p).IsEnemy() {
		penalty += m.Life(p)/env.Snap.Rules.AttackDamage - 1
	}
	if m.Class(p) == board.ClassFriendly {
		penalty += pl.Tuning.CostWalkIntoFriendly
	}
	return penalty
}

// isStronger reports whether the citizen beats the enemy standing on u.
// Equal tiers are decided by remaining life.
func (pl Planner) isStronger(env *Env, c game.Citizen, weapon game.Weapon, u game.Pos) bool {
	tier := env.Model.Class(u).EnemyTier()
	if weapon == tier {
		return c.Life > env.Model.Life(u)
	}
	return weapon > tier
}

// HasBuildableBarricade reports whether p holds an own barricade that is
// unoccupied and still under the improvement cap.
func (pl Planner) HasBuildableBarricade(env *Env, p game.Pos) bool {
	m := env.Model
	return m.InBounds(p) && m.Barricade(p) > 0 &&
		m.Class(p) != board.ClassFriendly &&
		m.Barricade(p) < env.Snap.Rules.BarricadeMaxResistance*pl.Tuning.PercentBuild/100
}
