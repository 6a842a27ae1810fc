package planner

// Tuning collects the profit weights and thresholds driving target
// selection. The values are tuned offline through arena runs; none of them
// is derived from a stated correctness criterion, so changing one without
// re-measuring play strength is a regression waiting to happen.
type Tuning struct {
	MoneyProfit        int `yaml:"money_profit"`
	HealthProfit       int `yaml:"health_profit"`
	AboutToDieBonus    int `yaml:"about_to_die_bonus"`
	AttackProfit       int `yaml:"attack_profit"`
	WeaponProfit       int `yaml:"weapon_profit"`
	StealWeaponProfit  int `yaml:"steal_weapon_profit"`
	BazookaExtraProfit int `yaml:"bazooka_extra_profit"`
	WarriorExtraProfit int `yaml:"warrior_extra_profit"`

	// BarricadeThreshold is the profit a builder must beat by day to keep
	// moving instead of building; BarricadeInterruptThreshold replaces it
	// while an improvable barricade is adjacent.
	BarricadeThreshold          int `yaml:"barricade_threshold"`
	BarricadeInterruptThreshold int `yaml:"barricade_interrupt_threshold"`
	// PercentBuild caps how far barricades get improved, as a percentage
	// of the maximum resistance.
	PercentBuild int `yaml:"percent_build"`

	CostWalkIntoFriendly int `yaml:"cost_walk_into_friendly"`
	// TeammateClaimPenalty biases paths away from stepping onto a weapon a
	// closer teammate is already going for.
	TeammateClaimPenalty int `yaml:"teammate_claim_penalty"`
}

func DefaultTuning() Tuning {
	return Tuning{
		MoneyProfit:                 12,
		HealthProfit:                17,
		AboutToDieBonus:             5,
		AttackProfit:                19,
		WeaponProfit:                25,
		StealWeaponProfit:           12,
		BazookaExtraProfit:          3,
		WarriorExtraProfit:          3,
		BarricadeThreshold:          2,
		BarricadeInterruptThreshold: 5,
		PercentBuild:                70,
		CostWalkIntoFriendly:        3,
		TeammateClaimPenalty:        4,
	}
}

// Submission priorities for common situations. Higher submits first.
const (
	PriorityNotImportant = -1
	PriorityBuild        = 0
	PriorityRun          = 15
	PriorityRunDeath     = 20
	PriorityVeryHigh     = 500
)
