package game

type CellKind string

const (
	Street   CellKind = "street"
	Building CellKind = "building"
)

type Bonus string

const (
	NoBonus Bonus = ""
	Food    Bonus = "food"
	Money   Bonus = "money"
)

// Cell is the host's view of one board position. CitizenID is -1 when the
// cell is unoccupied; Resistance is -1 when there is no barricade.
type Cell struct {
	Kind           CellKind `json:"kind"`
	Bonus          Bonus    `json:"bonus,omitempty"`
	Ground         Weapon   `json:"ground,omitempty"`
	CitizenID      int      `json:"citizen_id"`
	BarricadeOwner int      `json:"barricade_owner"`
	Resistance     int      `json:"resistance"`
}
