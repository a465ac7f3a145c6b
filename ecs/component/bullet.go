package component

import "github.com/jakecoffman/cp"

// Bullet is a player projectile.
type Bullet struct {
	Direction cp.Vector
	Speed     float64
	Damage    int
	// HazardHit is the times-hit contribution against saws and laser machines.
	HazardHit int
	SpawnTime int64
	Lifetime  int64
}

var BulletComponent = NewComponent[Bullet]()

// LaserBullet is fired by laser machines and only stops on collision.
type LaserBullet struct {
	Direction cp.Vector
	Speed     float64
	Damage    int
	SpawnTime int64
}

var LaserBulletComponent = NewComponent[LaserBullet]()
