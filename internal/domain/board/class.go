package board

import "github.com/p-rivero/EDA-ThePurge2020/internal/domain/game"

// Class is the ordinal classification of one cell. The ranking is strict:
// anything worth walking towards is positive and ordered by value, anything
// blocking or hostile is negative and ordered by how hostile it is. This
// lets the planner compare cells and weapon tiers with plain integer
// comparisons.
type Class int8

const (
	ClassBazooka      Class = 6
	ClassGun          Class = 5
	ClassHammer       Class = 4
	ClassBuilder      Class = 3
	ClassFood         Class = 2
	ClassMoney        Class = 1
	ClassEmpty        Class = 0
	ClassFriendly     Class = -1
	ClassWall         Class = -2
	ClassEnemyBuilder Class = -3
	ClassEnemyHammer  Class = -4
	ClassEnemyGun     Class = -5
	ClassEnemyBazooka Class = -6
)

// IsEnemy reports whether the class marks an enemy citizen of any tier.
func (c Class) IsEnemy() bool {
	return c <= ClassEnemyBuilder
}

// EnemyTier converts an enemy class back into the strength tier of the
// citizen standing there.
func (c Class) EnemyTier() game.Weapon {
	return game.Weapon(-c)
}

func enemyClass(tier game.Weapon) Class {
	return Class(-tier)
}
