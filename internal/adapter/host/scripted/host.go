// Package scripted provides a host double whose board is written as a rune
// grid. It backs the unit and scenario tests and agentd's demo mode; the
// real host speaks through the HTTP adapter instead.
package scripted

import (
	"context"
	"fmt"

	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"
)

// Host serves a fixed snapshot. Tests mutate the snapshot between rounds
// to script multi-round situations.
type Host struct {
	Snap *game.Snapshot
}

func (h *Host) Snapshot(_ context.Context) (*game.Snapshot, error) {
	if h.Snap == nil {
		return nil, fmt.Errorf("scripted host: no snapshot loaded")
	}
	return h.Snap, nil
}

// Grid legend:
//
//	'#' building        '.' empty street
//	'$' money           '+' food
//	'g' gun on ground   'z' bazooka on ground
//	'B' own builder     'W'/'G'/'Z' own warrior with hammer/gun/bazooka
//	'b' enemy builder   'h'/'u'/'x' enemy warrior with hammer/gun/bazooka
//
// Own units belong to player 0, enemies to player 1. Citizens are numbered
// in scan order, own units first. Lives start at the role baseline.
func Parse(round int, grid []string) (*game.Snapshot, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("scripted host: empty grid")
	}
	rules := game.DefaultRules()
	snap := &game.Snapshot{
		Rows:     len(grid),
		Cols:     len(grid[0]),
		Round:    round,
		Me:       0,
		Citizens: map[int]game.Citizen{},
		Rules:    rules,
		Calendar: game.DefaultCalendar(),
	}

	type pending struct {
		pos    game.Pos
		player int
		typ    game.CitizenType
		weapon game.Weapon
	}
	var own, foes []pending

	snap.Cells = make([][]game.Cell, snap.Rows)
	for i, row := range grid {
		if len(row) != snap.Cols {
			return nil, fmt.Errorf("scripted host: row %d has %d cells, want %d", i, len(row), snap.Cols)
		}
		snap.Cells[i] = make([]game.Cell, snap.Cols)
		for j, r := range row {
			cell := game.Cell{CitizenID: -1, BarricadeOwner: -1, Resistance: -1}
			p := game.Pos{I: i, J: j}
			switch r {
			case '#':
				cell.Kind = game.Building
			case '.':
				cell.Kind = game.Street
			case '$':
				cell.Kind = game.Street
				cell.Bonus = game.Money
			case '+':
				cell.Kind = game.Street
				cell.Bonus = game.Food
			case 'g':
				cell.Kind = game.Street
				cell.Ground = game.Gun
			case 'z':
				cell.Kind = game.Street
				cell.Ground = game.Bazooka
			case 'B':
				cell.Kind = game.Street
				own = append(own, pending{p, 0, game.Builder, game.NoWeapon})
			case 'W':
				cell.Kind = game.Street
				own = append(own, pending{p, 0, game.Warrior, game.Hammer})
			case 'G':
				cell.Kind = game.Street
				own = append(own, pending{p, 0, game.Warrior, game.Gun})
			case 'Z':
				cell.Kind = game.Street
				own = append(own, pending{p, 0, game.Warrior, game.Bazooka})
			case 'b':
				cell.Kind = game.Street
				foes = append(foes, pending{p, 1, game.Builder, game.NoWeapon})
			case 'h':
				cell.Kind = game.Street
				foes = append(foes, pending{p, 1, game.Warrior, game.Hammer})
			case 'u':
				cell.Kind = game.Street
				foes = append(foes, pending{p, 1, game.Warrior, game.Gun})
			case 'x':
				cell.Kind = game.Street
				foes = append(foes, pending{p, 1, game.Warrior, game.Bazooka})
			default:
				return nil, fmt.Errorf("scripted host: unknown rune %q at %d,%d", r, i, j)
			}
			snap.Cells[i][j] = cell
		}
	}

	id := 0
	for _, list := range [][]pending{own, foes} {
		for _, pd := range list {
			life := rules.WarriorInitialLife
			if pd.typ == game.Builder {
				life = rules.BuilderInitialLife
			}
			snap.Citizens[id] = game.Citizen{
				ID: id, Player: pd.player, Type: pd.typ, Weapon: pd.weapon, Life: life, Pos: pd.pos,
			}
			snap.Cells[pd.pos.I][pd.pos.J].CitizenID = id
			if pd.player == snap.Me {
				if pd.typ == game.Builder {
					snap.Builders = append(snap.Builders, id)
				} else {
					snap.Warriors = append(snap.Warriors, id)
				}
			}
			id++
		}
	}
	return snap, nil
}

// SetLife overrides a citizen's remaining life after parsing.
func SetLife(snap *game.Snapshot, id, life int) {
	c := snap.Citizens[id]
	c.Life = life
	snap.Citizens[id] = c
}

// AddBarricade places a barricade on the given cell after parsing.
func AddBarricade(snap *game.Snapshot, p game.Pos, owner, resistance int) {
	snap.Cells[p.I][p.J].BarricadeOwner = owner
	snap.Cells[p.I][p.J].Resistance = resistance
}
