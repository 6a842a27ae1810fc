package game

import "testing"

func TestCalendarCycle(t *testing.T) {
	c := DefaultCalendar()
	cases := []struct {
		round int
		day   bool
	}{
		{0, true},
		{39, true},
		{40, false},
		{79, false},
		{80, true},
		{-5, true},
	}
	for _, tc := range cases {
		if got := c.IsDay(tc.round); got != tc.day {
			t.Fatalf("IsDay(%d)=%v want %v", tc.round, got, tc.day)
		}
		if got := c.IsNight(tc.round); got == tc.day {
			t.Fatalf("IsNight(%d) must be the complement of IsDay", tc.round)
		}
	}
}

func TestCalendarClampsDegenerateCycle(t *testing.T) {
	c := Calendar{}
	if !c.IsDay(0) {
		t.Fatalf("zero-length phases should clamp to a 1/1 cycle starting at day")
	}
	if c.IsDay(1) {
		t.Fatalf("round 1 of a clamped 1/1 cycle should be night")
	}
}

func TestCitizenTier(t *testing.T) {
	b := Citizen{Type: Builder, Weapon: Bazooka}
	if got := b.Tier(); got != NoWeapon {
		t.Fatalf("builder tier=%d want %d regardless of reported weapon", got, NoWeapon)
	}
	w := Citizen{Type: Warrior, Weapon: Gun}
	if got := w.Tier(); got != Gun {
		t.Fatalf("warrior tier=%d want %d", got, Gun)
	}
}

func TestPosPlus(t *testing.T) {
	p := Pos{I: 3, J: 3}
	cases := map[Dir]Pos{
		Up:    {I: 2, J: 3},
		Down:  {I: 4, J: 3},
		Left:  {I: 3, J: 2},
		Right: {I: 3, J: 4},
	}
	for d, want := range cases {
		if got := p.Plus(d); got != want {
			t.Fatalf("Plus(%s)=%v want %v", d, got, want)
		}
	}
}

func TestRulesDemolishClampsToOne(t *testing.T) {
	r := Rules{}
	if got := r.Demolish(Bazooka); got != 1 {
		t.Fatalf("missing demolish rate should clamp to 1, got %d", got)
	}
	if got := DefaultRules().Demolish(Hammer); got != 20 {
		t.Fatalf("hammer demolish rate=%d want 20", got)
	}
}

func TestMyBarricades(t *testing.T) {
	s := &Snapshot{
		Rows: 1, Cols: 4, Me: 0,
		Cells: [][]Cell{{
			{CitizenID: -1, BarricadeOwner: 0, Resistance: 50},
			{CitizenID: -1, BarricadeOwner: 1, Resistance: 50},
			{CitizenID: -1, BarricadeOwner: -1, Resistance: -1},
			{CitizenID: -1, BarricadeOwner: 0, Resistance: 0},
		}},
	}
	if got := s.MyBarricades(); got != 1 {
		t.Fatalf("MyBarricades()=%d want 1", got)
	}
}
