package system

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shifty/common"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/ecs/entity"
	"github.com/milk9111/shifty/prefabs"
)

// ZombieSystem animates, steers and moves every zombie, then removes the dead
// ones. The behavior script picks wandering, chasing or attacking each frame;
// the system turns that into steering.
type ZombieSystem struct {
	Builder *entity.Builder
	brain   *zombieBrain
}

// NewZombieSystem loads the zombie behavior script (scripts/zombie.tengo).
func NewZombieSystem(b *entity.Builder) *ZombieSystem {
	return &ZombieSystem{Builder: b, brain: loadZombieBrain()}
}

// ReloadScript swaps in a new behavior script. A script that does not compile
// is rejected and the running one stays. Per-zombie script state carries over.
func (s *ZombieSystem) ReloadScript(src []byte) error {
	brain, err := newZombieBrain(src)
	if err != nil {
		return err
	}
	if s.brain != nil {
		brain.states = s.brain.states
	}
	s.brain = brain
	return nil
}

func (s *ZombieSystem) Update(w *ecs.World) {
	if w == nil || s.Builder == nil {
		return
	}
	t := s.Builder.Tuning
	now := w.Now()
	sounds := soundsOf(w)
	ground := groundOf(w)
	player, hasPlayer := playerOf(w)

	ecs.ForEach3(w, component.ZombieComponent.Kind(), component.BodyComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, z *component.Zombie, b *component.Body, col *component.Collider) {
			s.animate(w, e, z, b, now, t)
			if !z.PreventMoving {
				s.steer(w, e, z, b, player, hasPlayer, sounds, now, t)
			}
			s.move(w, z, b, col, ground, t)
			if z.Health <= 0 {
				s.kill(w, e, z, b, sounds, t)
			}
		})
}

func (s *ZombieSystem) animate(w *ecs.World, e ecs.Entity, z *component.Zombie, b *component.Body, now int64, t *prefabs.Tuning) {
	z.Walking = b.Vel.X != 0

	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		anim = &component.Animation{}
	}
	clips := t.Animation

	if z.AttackAnimation {
		z.PreventMoving = false
		if anim.Name != "attack" {
			anim.Restart("attack", clips.ZombieAttack.Frames)
			anim.LastUpdate = now
		}
		if anim.Step(now, clips.ZombieAttack.Interval, "attack", clips.ZombieAttack.Frames) && anim.Frame != 0 {
			z.Attacking = true
		}
	} else {
		z.Attacking = false
		if !z.Walking {
			z.PreventMoving = true
			if anim.Step(now, clips.ZombieIdle.Interval, "idle", clips.ZombieIdle.Frames) {
				z.PreventMoving = false
			}
		} else {
			anim.Step(now, clips.ZombieWalk.Interval, "walk", clips.ZombieWalk.Frames)
		}
	}

	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Frame = fmt.Sprintf("%s_%d", anim.Name, anim.Frame)
		sprite.FlipX = !z.FacingRight
	}
	s.Builder.RefreshMask(w, e)
}

// behavior names the state a zombie ended last frame in.
func behavior(z *component.Zombie) string {
	switch {
	case z.AttackAnimation:
		return behaviorAttacking
	case z.Motion == component.ZombieChasing:
		return behaviorChasing
	default:
		return behaviorWandering
	}
}

func (s *ZombieSystem) steer(w *ecs.World, e ecs.Entity, z *component.Zombie, b *component.Body, player playerRef, hasPlayer bool, sounds *component.SoundQueue, now int64, t *prefabs.Tuning) {
	zt := t.Zombie
	sense := zombieSense{
		HasPlayer:    hasPlayer,
		DetectRadius: zt.DetectRadius,
		AttackLeft:   zt.AttackLeft,
		AttackRight:  zt.AttackRight,
	}
	if hasPlayer {
		sense.DX = b.Pos.X - player.Body.Pos.X
		sense.DY = b.Pos.Y - player.Body.Pos.Y
	}

	current := behavior(z)
	next, err := s.brain.decide(e, current, sense)
	if err != nil {
		log.Error("zombie script", "entity", e, "error", err)
		next = current
	}

	switch next {
	case behaviorChasing, behaviorAttacking:
	case behaviorWandering:
		z.Motion = component.ZombieWandering
		z.AttackAnimation = false
		b.Acc = s.wander(w.Rand(), z, b, now, t)
		return
	default:
		log.Warn("zombie script picked an unknown state", "state", next)
		return
	}

	z.Motion = component.ZombieChasing
	if w.Rand().Float64() < zt.MoanChance {
		sounds.Play(SoundZombieMoan)
	}

	pp := player.Body.Pos
	switch {
	case b.Pos.X > pp.X:
		b.Acc.X = -zt.Acceleration
		z.FacingRight = false
	case b.Pos.X < pp.X:
		b.Acc.X = zt.Acceleration
		z.FacingRight = true
	default:
		// On top of the player the attack state carries over unchanged.
		return
	}
	s.attack(z, b, next == behaviorAttacking)
}

// attack stops the zombie and starts the attack clip while the player is in
// reach.
func (s *ZombieSystem) attack(z *component.Zombie, b *component.Body, inReach bool) {
	if inReach {
		b.Vel = cp.Vector{}
		z.AttackAnimation = true
		return
	}
	z.AttackAnimation = false
}

// wander returns the seek steering toward the current target, picking a new
// one when the target interval has run out.
func (s *ZombieSystem) wander(rng *rand.Rand, z *component.Zombie, b *component.Body, now int64, t *prefabs.Tuning) cp.Vector {
	if now-z.LastTarget > z.TargetInterval {
		z.LastTarget = now
		z.TargetInterval = randRange(rng, t.Zombie.TargetInterval)
		z.Target = cp.Vector{
			X: float64(randInt(rng, 0, int(t.Physics.ScreenWidth))),
			Y: float64(randInt(rng, 0, common.ScreenHeight)),
		}
		z.FacingRight = math.Abs(z.Target.X) >= math.Abs(b.Pos.X)
	}
	desired := z.Target.Sub(b.Pos).Normalize().Mult(t.Zombie.MaxSpeed)
	return desired.Sub(b.Vel)
}

func (s *ZombieSystem) move(w *ecs.World, z *component.Zombie, b *component.Body, col *component.Collider, ground []common.Rect, t *prefabs.Tuning) {
	movingRight := b.Vel.X > 0
	wall, hit, _ := mover(b, col, ground, t.Zombie.Friction, t.Physics, w.DeltaTime())
	if !hit {
		return
	}

	rng := w.Rand()
	margin := t.Zombie.WallTargetMargin
	width := int(t.Physics.ScreenWidth)
	y := float64(randInt(rng, 0, common.ScreenHeight))
	if movingRight {
		z.Target = cp.Vector{X: float64(randInt(rng, 0, int(wall.Left())-margin)), Y: y}
	} else {
		z.Target = cp.Vector{X: float64(randInt(rng, int(wall.Left())+margin, width)), Y: y}
	}
}

func (s *ZombieSystem) kill(w *ecs.World, e ecs.Entity, z *component.Zombie, b *component.Body, sounds *component.SoundQueue, t *prefabs.Tuning) {
	sounds.Play(SoundZombieDie)
	if _, err := s.Builder.SpawnSplat(w, b.Pos.Add(t.Zombie.SplatOffset.V()), !z.FacingRight); err != nil {
		log.Error("spawn splat", "error", err)
	}
	if _, err := s.Builder.SpawnItem(w, component.ItemXP, b.Pos.Add(t.Zombie.XPDropOffset.V())); err != nil {
		log.Error("spawn xp drop", "error", err)
	}
	if player, ok := playerOf(w); ok {
		player.Player.AddPoints(t.Points.Zombie)
	}
	ecs.DestroyEntity(w, e)
	s.brain.forget(e)
	w.Events().Push(ecs.Event{Type: ecs.EventZombieKilled, Entity: e})
}

// randInt draws from [lo, hi], collapsing an empty range to lo.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func randRange(rng *rand.Rand, r prefabs.Range) int64 {
	if r[1] <= r[0] {
		return r[0]
	}
	return r[0] + rng.Int63n(r[1]-r[0]+1)
}
