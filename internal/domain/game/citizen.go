package game

// Weapon is a strength tier. The numeric values form a total order shared
// with the board ordinals: comparing two tiers with < and > answers
// "who wins a fight" and "which weapon is worth swapping to".
type Weapon int8

const (
	NoWeapon Weapon = 3
	Hammer   Weapon = 4
	Gun      Weapon = 5
	Bazooka  Weapon = 6
)

type CitizenType string

const (
	Builder CitizenType = "builder"
	Warrior CitizenType = "warrior"
)

type Citizen struct {
	ID     int         `json:"id"`
	Player int         `json:"player"`
	Type   CitizenType `json:"type"`
	Weapon Weapon      `json:"weapon"`
	Life   int         `json:"life"`
	Pos    Pos         `json:"pos"`
}

// Tier is the strength tier the citizen fights at. Builders always count
// as the weakest tier regardless of what the host reports for them.
func (c Citizen) Tier() Weapon {
	if c.Type == Builder {
		return NoWeapon
	}
	return c.Weapon
}
