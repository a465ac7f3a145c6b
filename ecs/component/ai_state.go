package component

// ZombieState is the observable behavior of a zombie this frame.
type ZombieState int

const (
	ZombieIdle ZombieState = iota
	ZombieWalking
	ZombieWandering
	ZombieChasing
	ZombieAttacking
)

func (s ZombieState) String() string {
	switch s {
	case ZombieIdle:
		return "idle"
	case ZombieWalking:
		return "walking"
	case ZombieWandering:
		return "wandering"
	case ZombieChasing:
		return "chasing"
	case ZombieAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}
