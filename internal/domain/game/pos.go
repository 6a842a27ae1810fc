package game

// Pos is a board coordinate: I is the row, J is the column.
type Pos struct {
	I int `json:"i"`
	J int `json:"j"`
}

type Dir string

const (
	Up    Dir = "up"
	Down  Dir = "down"
	Left  Dir = "left"
	Right Dir = "right"
)

// Dirs lists the four orthogonal directions in a fixed order. Search and
// fallback code iterates this slice so that results are deterministic.
var Dirs = [4]Dir{Up, Down, Left, Right}

func (p Pos) Plus(d Dir) Pos {
	switch d {
	case Up:
		return Pos{I: p.I - 1, J: p.J}
	case Down:
		return Pos{I: p.I + 1, J: p.J}
	case Left:
		return Pos{I: p.I, J: p.J - 1}
	default:
		return Pos{I: p.I, J: p.J + 1}
	}
}
