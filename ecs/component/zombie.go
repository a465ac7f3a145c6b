package component

import "github.com/jakecoffman/cp"

type Zombie struct {
	Health      int
	Damage      int
	FacingRight bool

	// Walking is derived from horizontal velocity each frame.
	Walking bool
	// Motion is wandering or chasing, decided by the detection check.
	Motion ZombieState
	// PreventMoving holds an idle zombie still until its idle clip advances.
	PreventMoving bool

	// AttackAnimation is set while the player is in attack range.
	AttackAnimation bool
	// Attacking deals damage; it only turns on after the attack clip leaves
	// its first frame.
	Attacking bool

	Target         cp.Vector
	LastTarget     int64
	TargetInterval int64
}

var ZombieComponent = NewComponent[Zombie]()

// Hurt subtracts damage; the zombie system removes it once health <= 0.
func (z *Zombie) Hurt(damage int) {
	if z == nil {
		return
	}
	z.Health -= damage
}

// State reports the combined behavior for debugging and tests.
func (z *Zombie) State() ZombieState {
	if z == nil {
		return ZombieIdle
	}
	if z.AttackAnimation {
		return ZombieAttacking
	}
	if z.Motion == ZombieChasing {
		return ZombieChasing
	}
	if z.Walking {
		return ZombieWalking
	}
	if z.Motion == ZombieWandering {
		return ZombieWandering
	}
	return ZombieIdle
}
