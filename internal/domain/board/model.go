package board

import "github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"

type PickupKind string

const (
	PickupMoney  PickupKind = "money"
	PickupWeapon PickupKind = "weapon"
)

// Pickup is a bonus cell discovered while building the model. The round
// controller hands these to the bonus tracker.
type Pickup struct {
	Pos  game.Pos
	Kind PickupKind
}

// Model is the traversal-ready representation of one round of host state.
// The matrices are sized once on the first round and rebuilt in place every
// round after that; they carry no memory between rounds.
type Model struct {
	Rows, Cols int

	// Terrain holds the ordinal class of every cell.
	Terrain [][]Class
	// EnemyLife holds the remaining life of the enemy occupying a cell,
	// 0 elsewhere.
	EnemyLife [][]int
	// threat holds, per cell, the tier of the strongest enemy standing on
	// an orthogonally adjacent cell. Read it through Halo, which masks
	// cells occupied by an enemy.
	threat [][]game.Weapon
	// Barricades holds signed barricade resistance: positive for own
	// structures, negative for enemy ones, 0 for none.
	Barricades [][]int
}

func NewModel(rows, cols int) *Model {
	m := &Model{Rows: rows, Cols: cols}
	m.Terrain = make([][]Class, rows)
	m.EnemyLife = make([][]int, rows)
	m.threat = make([][]game.Weapon, rows)
	m.Barricades = make([][]int, rows)
	for i := 0; i < rows; i++ {
		m.Terrain[i] = make([]Class, cols)
		m.EnemyLife[i] = make([]int, cols)
		m.threat[i] = make([]game.Weapon, cols)
		m.Barricades[i] = make([]int, cols)
	}
	return m
}

func (m *Model) InBounds(p game.Pos) bool {
	return p.I >= 0 && p.I < m.Rows && p.J >= 0 && p.J < m.Cols
}

func (m *Model) Class(p game.Pos) Class {
	return m.Terrain[p.I][p.J]
}

func (m *Model) Life(p game.Pos) int {
	return m.EnemyLife[p.I][p.J]
}

// Halo returns the strongest adjacent enemy tier recorded for p, or 0 when
// no enemy is adjacent. Cells occupied by an enemy report 0: walking onto
// them is ruled out by traversal checks, not by the danger rule.
func (m *Model) Halo(p game.Pos) game.Weapon {
	if m.EnemyLife[p.I][p.J] > 0 {
		return 0
	}
	return m.threat[p.I][p.J]
}

func (m *Model) Barricade(p game.Pos) int {
	return m.Barricades[p.I][p.J]
}

// Build refreshes the model from the round snapshot in a single pass over
// the board and returns every pickup cell found. The merge rule for the
// threat halo is strongest-wins: a weaker enemy never downgrades the value
// a stronger neighbor already claimed.
func (m *Model) Build(snap *game.Snapshot) []Pickup {
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			m.EnemyLife[i][j] = 0
			m.threat[i][j] = 0
		}
	}

	var pickups []Pickup
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			c := snap.Cells[i][j]
			p := game.Pos{I: i, J: j}
			switch {
			case c.Kind == game.Building:
				m.Terrain[i][j] = ClassWall
			case c.Bonus == game.Food:
				m.Terrain[i][j] = ClassFood
			case c.Bonus == game.Money:
				m.Terrain[i][j] = ClassMoney
				pickups = append(pickups, Pickup{Pos: p, Kind: PickupMoney})
			case c.Ground == game.Gun:
				m.Terrain[i][j] = ClassGun
				pickups = append(pickups, Pickup{Pos: p, Kind: PickupWeapon})
			case c.Ground == game.Bazooka:
				m.Terrain[i][j] = ClassBazooka
				pickups = append(pickups, Pickup{Pos: p, Kind: PickupWeapon})
			case c.CitizenID >= 0:
				cit := snap.Citizens[c.CitizenID]
				if cit.Player == snap.Me {
					m.Terrain[i][j] = ClassFriendly
				} else {
					tier := cit.Tier()
					m.Terrain[i][j] = enemyClass(tier)
					m.EnemyLife[i][j] = cit.Life
					m.spreadHalo(p, tier)
				}
			default:
				m.Terrain[i][j] = ClassEmpty
			}

			switch {
			case c.Resistance < 0:
				m.Barricades[i][j] = 0
			case c.BarricadeOwner == snap.Me:
				m.Barricades[i][j] = c.Resistance
			default:
				m.Barricades[i][j] = -c.Resistance
			}
		}
	}
	return pickups
}

func (m *Model) spreadHalo(p game.Pos, tier game.Weapon) {
	for _, d := range game.Dirs {
		n := p.Plus(d)
		if !m.InBounds(n) {
			continue
		}
		if m.threat[n.I][n.J] < tier {
			m.threat[n.I][n.J] = tier
		}
	}
}
