package board_test

import (
	"testing"

	"github.com/p-rivero/EDA-ThePurge2020/internal/adapter/host/scripted"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/board"
	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"
)

func buildModel(t *testing.T, round int, grid []string) (*game.Snapshot, *board.Model, []board.Pickup) {
	t.Helper()
	snap, err := scripted.Parse(round, grid)
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}
	m := board.NewModel(snap.Rows, snap.Cols)
	pickups := m.Build(snap)
	return snap, m, pickups
}

func TestBuildClassifiesCells(t *testing.T) {
	_, m, pickups := buildModel(t, 0, []string{
		"#$+",
		"gzB",
		".hW",
	})

	cases := []struct {
		p    game.Pos
		want board.Class
	}{
		{game.Pos{I: 0, J: 0}, board.ClassWall},
		{game.Pos{I: 0, J: 1}, board.ClassMoney},
		{game.Pos{I: 0, J: 2}, board.ClassFood},
		{game.Pos{I: 1, J: 0}, board.ClassGun},
		{game.Pos{I: 1, J: 1}, board.ClassBazooka},
		{game.Pos{I: 1, J: 2}, board.ClassFriendly},
		{game.Pos{I: 2, J: 0}, board.ClassEmpty},
		{game.Pos{I: 2, J: 1}, board.ClassEnemyHammer},
		{game.Pos{I: 2, J: 2}, board.ClassFriendly},
	}
	for _, tc := range cases {
		if got := m.Class(tc.p); got != tc.want {
			t.Fatalf("Class(%v)=%d want %d", tc.p, got, tc.want)
		}
	}

	wantPickups := []board.Pickup{
		{Pos: game.Pos{I: 0, J: 1}, Kind: board.PickupMoney},
		{Pos: game.Pos{I: 1, J: 0}, Kind: board.PickupWeapon},
		{Pos: game.Pos{I: 1, J: 1}, Kind: board.PickupWeapon},
	}
	if len(pickups) != len(wantPickups) {
		t.Fatalf("pickups=%v want %v", pickups, wantPickups)
	}
	for i := range pickups {
		if pickups[i] != wantPickups[i] {
			t.Fatalf("pickup[%d]=%v want %v", i, pickups[i], wantPickups[i])
		}
	}
}

func TestHaloMasksEnemyCells(t *testing.T) {
	snap, m, _ := buildModel(t, 0, []string{
		".hW",
	})

	enemy := game.Pos{I: 0, J: 1}
	if m.Life(enemy) != snap.Rules.WarriorInitialLife {
		t.Fatalf("enemy life=%d want %d", m.Life(enemy), snap.Rules.WarriorInitialLife)
	}
	if got := m.Halo(enemy); got != 0 {
		t.Fatalf("halo on the enemy's own cell must read 0, got %d", got)
	}
	if got := m.Halo(game.Pos{I: 0, J: 0}); got != game.Hammer {
		t.Fatalf("halo left of enemy=%d want %d", got, game.Hammer)
	}
	if got := m.Halo(game.Pos{I: 0, J: 2}); got != game.Hammer {
		t.Fatalf("halo right of enemy=%d want %d", got, game.Hammer)
	}
}

func TestHaloStrongestWins(t *testing.T) {
	for _, grid := range [][]string{{"h.x"}, {"x.h"}} {
		_, m, _ := buildModel(t, 0, grid)
		if got := m.Halo(game.Pos{I: 0, J: 1}); got != game.Bazooka {
			t.Fatalf("grid %v: halo=%d want %d", grid, got, game.Bazooka)
		}
	}
}

func TestBuildSignsBarricades(t *testing.T) {
	snap, err := scripted.Parse(0, []string{"..."})
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}
	scripted.AddBarricade(snap, game.Pos{I: 0, J: 0}, 0, 30)
	scripted.AddBarricade(snap, game.Pos{I: 0, J: 2}, 1, 40)

	m := board.NewModel(snap.Rows, snap.Cols)
	m.Build(snap)

	if got := m.Barricade(game.Pos{I: 0, J: 0}); got != 30 {
		t.Fatalf("own barricade=%d want 30", got)
	}
	if got := m.Barricade(game.Pos{I: 0, J: 1}); got != 0 {
		t.Fatalf("no barricade should read 0, got %d", got)
	}
	if got := m.Barricade(game.Pos{I: 0, J: 2}); got != -40 {
		t.Fatalf("enemy barricade=%d want -40", got)
	}
}

func TestBuildClearsStaleState(t *testing.T) {
	first, err := scripted.Parse(0, []string{".h."})
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}
	m := board.NewModel(first.Rows, first.Cols)
	m.Build(first)

	second, err := scripted.Parse(1, []string{"..h"})
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}
	m.Build(second)

	if got := m.Life(game.Pos{I: 0, J: 1}); got != 0 {
		t.Fatalf("stale enemy life survived rebuild: %d", got)
	}
	if got := m.Halo(game.Pos{I: 0, J: 0}); got != 0 {
		t.Fatalf("stale halo survived rebuild: %d", got)
	}
	if got := m.Halo(game.Pos{I: 0, J: 1}); got != game.Hammer {
		t.Fatalf("halo next to moved enemy=%d want %d", got, game.Hammer)
	}
}

func TestClassEnemyHelpers(t *testing.T) {
	if !board.ClassEnemyBuilder.IsEnemy() || !board.ClassEnemyBazooka.IsEnemy() {
		t.Fatalf("enemy classes must report IsEnemy")
	}
	if board.ClassFriendly.IsEnemy() || board.ClassWall.IsEnemy() {
		t.Fatalf("friendly and wall classes must not report IsEnemy")
	}
	if got := board.ClassEnemyGun.EnemyTier(); got != game.Gun {
		t.Fatalf("EnemyTier(gun)=%d want %d", got, game.Gun)
	}
}
