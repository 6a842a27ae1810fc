package game

// Rules carries the per-match constants published by the host. They never
// change after the first round.
type Rules struct {
	AttackDamage           int            `json:"attack_damage"`
	BuilderInitialLife     int            `json:"builder_initial_life"`
	WarriorInitialLife     int            `json:"warrior_initial_life"`
	MaxBarricades          int            `json:"max_barricades"`
	BarricadeMaxResistance int            `json:"barricade_max_resistance"`
	DemolishStrength       map[Weapon]int `json:"demolish_strength"`
}

// Demolish returns the damage one turn of demolition does with the given
// tier. A zero or missing rate is clamped to 1 so distance estimates stay
// finite.
func (r Rules) Demolish(w Weapon) int {
	if s := r.DemolishStrength[w]; s > 0 {
		return s
	}
	return 1
}

func DefaultRules() Rules {
	return Rules{
		AttackDamage:           30,
		BuilderInitialLife:     40,
		WarriorInitialLife:     60,
		MaxBarricades:          4,
		BarricadeMaxResistance: 100,
		DemolishStrength: map[Weapon]int{
			NoWeapon: 10,
			Hammer:   20,
			Gun:      30,
			Bazooka:  60,
		},
	}
}
