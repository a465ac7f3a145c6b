package component

// Player holds the player's combat and movement flags. Health and score are
// the only fields carried between levels.
type Player struct {
	Health int
	Score  int

	FacingRight bool
	Walking     bool
	Jumping     bool
	OnGround    bool
	Sliding     bool
	SlideFrames int
	InAcid      bool
	HasKey      bool

	Shooting        bool
	WalkingShooting bool
	CanShoot        bool
	GunCooldown     float64
	LastShot        int64
	// GunUpgrade raises bullet damage and doubles hits on hardened targets.
	GunUpgrade bool

	DeadCause string
	Exploded  bool
}

var PlayerComponent = NewComponent[Player]()

// Hurt subtracts damage. Death is checked once per frame by the player system.
func (p *Player) Hurt(damage int) {
	if p == nil {
		return
	}
	p.Health -= damage
}

// AddPoints adds to the score, never letting it drop below zero.
func (p *Player) AddPoints(points int) {
	if p == nil {
		return
	}
	p.Score += points
	if p.Score < 0 {
		p.Score = 0
	}
}

// SetDeadCause records what killed the player. It only sticks once health is
// already at or below zero.
func (p *Player) SetDeadCause(cause string) {
	if p == nil || p.Health > 0 {
		return
	}
	p.DeadCause = cause
}

// KeepHealth restores carried health; anything outside (0, max] becomes max.
func (p *Player) KeepHealth(health, max int) {
	if p == nil {
		return
	}
	if health > max || health <= 0 {
		health = max
	}
	p.Health = health
}

// KeepScore restores a carried score, clamping negatives to zero.
func (p *Player) KeepScore(score int) {
	if p == nil {
		return
	}
	if score < 0 {
		score = 0
	}
	p.Score = score
}
