package httpadapter

import (
	"encoding/json"
	"testing"

	"github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"
)

func TestWireJSONUsesSnakeCase(t *testing.T) {
	snap := &game.Snapshot{
		Rows:  1,
		Cols:  2,
		Round: 7,
		Me:    0,
		Cells: [][]game.Cell{{
			{Kind: game.Street, CitizenID: 0, BarricadeOwner: -1, Resistance: -1},
			{Kind: game.Street, Bonus: game.Money, CitizenID: -1, BarricadeOwner: 1, Resistance: 40},
		}},
		Citizens: map[int]game.Citizen{
			0: {ID: 0, Player: 0, Type: game.Warrior, Weapon: game.Gun, Life: 55, Pos: game.Pos{I: 0, J: 0}},
		},
		Warriors: []int{0},
		Rules:    game.DefaultRules(),
		Calendar: game.DefaultCalendar(),
	}

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name:    "request",
			payload: roundRequest{Snapshot: snap},
			want:    []string{"snapshot"},
			notWant: []string{"Snapshot"},
		},
		{
			name: "response",
			payload: roundResponse{Round: 7, Day: true, Actions: []actionItem{
				{Op: "move", CitizenID: 0, Dir: game.Right},
			}},
			want:    []string{"round", "day", "actions"},
			notWant: []string{"Round", "Day", "Actions"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			for _, key := range tc.want {
				if _, ok := got[key]; !ok {
					t.Fatalf("expected key %q in %s", key, string(b))
				}
			}
			for _, key := range tc.notWant {
				if _, ok := got[key]; ok {
					t.Fatalf("unexpected key %q in %s", key, string(b))
				}
			}
			if tc.name == "request" {
				snapMap := asMap(got["snapshot"])
				for _, key := range []string{"rows", "cols", "round", "me", "cells", "citizens", "rules", "calendar"} {
					if _, ok := snapMap[key]; !ok {
						t.Fatalf("expected nested key snapshot.%s in %s", key, string(b))
					}
				}
				rulesMap := asMap(snapMap["rules"])
				if _, ok := rulesMap["attack_damage"]; !ok {
					t.Fatalf("expected nested key snapshot.rules.attack_damage in %s", string(b))
				}
			}
			if tc.name == "response" {
				actions, _ := got["actions"].([]any)
				if len(actions) != 1 {
					t.Fatalf("expected one action in %s", string(b))
				}
				a := asMap(actions[0])
				if _, ok := a["citizen_id"]; !ok {
					t.Fatalf("expected nested key actions[0].citizen_id in %s", string(b))
				}
			}
		})
	}
}

func TestSnapshotRoundTripsThroughJSON(t *testing.T) {
	in := &game.Snapshot{
		Rows:  1,
		Cols:  1,
		Round: 3,
		Cells: [][]game.Cell{{{Kind: game.Building, CitizenID: -1, BarricadeOwner: -1, Resistance: -1}}},
		Citizens: map[int]game.Citizen{
			4: {ID: 4, Player: 1, Type: game.Builder, Life: 40, Pos: game.Pos{I: 0, J: 0}},
		},
		Rules:    game.DefaultRules(),
		Calendar: game.Calendar{DayRounds: 30, NightRounds: 50},
	}
	b, err := json.Marshal(roundRequest{Snapshot: in})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var req roundRequest
	if err := json.Unmarshal(b, &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	out := req.Snapshot
	if out.Citizens[4].Type != game.Builder {
		t.Fatalf("citizen map key lost: %+v", out.Citizens)
	}
	if out.Rules.Demolish(game.Bazooka) != 60 {
		t.Fatalf("weapon-keyed demolish map lost: %+v", out.Rules)
	}
	if out.Calendar.IsDay(35) {
		t.Fatalf("calendar lost: %+v", out.Calendar)
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
