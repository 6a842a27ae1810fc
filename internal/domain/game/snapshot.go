package game

// Snapshot is the full host state the decision core reads during one round.
// It is rebuilt by the host adapter every round and never mutated by the
// core; all cross-round memory lives in the bonus tracker.
type Snapshot struct {
	Rows     int             `json:"rows"`
	Cols     int             `json:"cols"`
	Round    int             `json:"round"`
	Me       int             `json:"me"`
	Cells    [][]Cell        `json:"cells"`
	Citizens map[int]Citizen `json:"citizens"`
	Builders []int           `json:"builders"`
	Warriors []int           `json:"warriors"`
	Rules    Rules           `json:"rules"`
	Calendar Calendar        `json:"calendar"`
}

func (s *Snapshot) InBounds(p Pos) bool {
	return p.I >= 0 && p.I < s.Rows && p.J >= 0 && p.J < s.Cols
}

func (s *Snapshot) Cell(p Pos) Cell {
	return s.Cells[p.I][p.J]
}

func (s *Snapshot) IsDay() bool {
	return s.Calendar.IsDay(s.Round)
}

func (s *Snapshot) IsNight() bool {
	return !s.IsDay()
}

// MyBarricades counts barricades currently owned by the local player.
func (s *Snapshot) MyBarricades() int {
	n := 0
	for i := range s.Cells {
		for j := range s.Cells[i] {
			c := s.Cells[i][j]
			if c.Resistance > 0 && c.BarricadeOwner == s.Me {
				n++
			}
		}
	}
	return n
}
