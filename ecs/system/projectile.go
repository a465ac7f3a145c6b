package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/ecs/entity"
)

// BulletSystem moves player bullets and resolves their first hit. Zombies
// are swept first as a group, then each surviving bullet checks walls, saws,
// spikes, laser beams, laser machines and finally its lifetime.
type BulletSystem struct {
	Builder *entity.Builder
}

func NewBulletSystem(b *entity.Builder) *BulletSystem {
	return &BulletSystem{Builder: b}
}

func (s *BulletSystem) Update(w *ecs.World) {
	if w == nil || s.Builder == nil {
		return
	}
	now := w.Now()
	dt := w.DeltaTime()
	spin := s.Builder.Tuning.Animation.BulletSpin

	ecs.ForEach2(w, component.BulletComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, bullet *component.Bullet, b *component.Body) {
		b.Pos = b.Pos.Add(bullet.Direction.Mult(bullet.Speed * dt))
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && anim.Step(now, spin.Interval, "bullet", spin.Frames) {
			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				sprite.Frame = fmt.Sprintf("bullet_%d", anim.Frame)
			}
		}
	})

	spent := s.sweepZombies(w)

	ecs.ForEach(w, component.BulletComponent.Kind(), func(e ecs.Entity, bullet *component.Bullet) {
		if spent[e] {
			return
		}
		bp, ok := placedOf(w, e)
		if !ok {
			return
		}
		if s.hitsWall(w, bp) || s.hitsSaw(w, bp, bullet) ||
			s.hitsSpikes(w, bp) || s.hitsBeam(w, bp) || s.hitsMachine(w, bp, bullet) {
			ecs.DestroyEntity(w, e)
			return
		}
		if now-bullet.SpawnTime >= bullet.Lifetime {
			ecs.DestroyEntity(w, e)
		}
	})
}

// sweepZombies applies every overlapping (zombie, bullet) pair and returns
// the bullets it consumed.
func (s *BulletSystem) sweepZombies(w *ecs.World) map[ecs.Entity]bool {
	spent := make(map[ecs.Entity]bool)
	sounds := soundsOf(w)
	ecs.ForEach(w, component.ZombieComponent.Kind(), func(ze ecs.Entity, z *component.Zombie) {
		zp, ok := placedOf(w, ze)
		if !ok {
			return
		}
		ecs.ForEach(w, component.BulletComponent.Kind(), func(be ecs.Entity, bullet *component.Bullet) {
			bp, ok := placedOf(w, be)
			if !ok || !overlaps(zp, bp) {
				return
			}
			z.Hurt(bullet.Damage)
			spent[be] = true
			ecs.DestroyEntity(w, be)
			sounds.Play(SoundZombieHit)
		})
	})
	return spent
}

func (s *BulletSystem) hitsWall(w *ecs.World, bp placed) bool {
	for _, g := range groundOf(w) {
		if bp.Rect.Intersects(g) {
			return true
		}
	}
	return false
}

func (s *BulletSystem) hitsSpikes(w *ecs.World, bp placed) bool {
	return len(touchingHazards(w, bp, component.HazardSpikes)) > 0
}

func (s *BulletSystem) hitsBeam(w *ecs.World, bp placed) bool {
	hit := false
	ecs.ForEach(w, component.LaserBeamComponent.Kind(), func(e ecs.Entity, beam *component.LaserBeam) {
		if hit || !beam.Powered {
			return
		}
		if p, ok := placedOf(w, e); ok && overlaps(bp, p) {
			hit = true
		}
	})
	return hit
}

func (s *BulletSystem) hitsSaw(w *ecs.World, bp placed, bullet *component.Bullet) bool {
	return s.hitsHardened(w, bp, bullet, func(e ecs.Entity) bool {
		return ecs.Has(w, e, component.SawComponent.Kind())
	})
}

func (s *BulletSystem) hitsMachine(w *ecs.World, bp placed, bullet *component.Bullet) bool {
	return s.hitsHardened(w, bp, bullet, func(e ecs.Entity) bool {
		return ecs.Has(w, e, component.LaserMachineComponent.Kind())
	})
}

// hitsHardened damages every hardened target accepted by match that the
// bullet touches and reports whether there was any.
func (s *BulletSystem) hitsHardened(w *ecs.World, bp placed, bullet *component.Bullet, match func(ecs.Entity) bool) bool {
	hit := false
	ecs.ForEach(w, component.HardenedComponent.Kind(), func(e ecs.Entity, h *component.Hardened) {
		if h.Destroyed || !match(e) {
			return
		}
		p, ok := placedOf(w, e)
		if !ok || !overlaps(bp, p) {
			return
		}
		hit = true
		if h.Hit(bullet.HazardHit) {
			s.destroyTarget(w, e, p, h)
		}
	})
	return hit
}

func (s *BulletSystem) destroyTarget(w *ecs.World, e ecs.Entity, p placed, h *component.Hardened) {
	if _, err := s.Builder.SpawnExplosion(w, p.Pos.Add(h.ExplosionOffset), false); err != nil {
		log.Error("spawn explosion", "error", err)
	}
	soundsOf(w).Play(SoundExplosion)
	if player, ok := playerOf(w); ok {
		player.Player.AddPoints(h.Points)
	}
	if ecs.Has(w, e, component.SawComponent.Kind()) {
		soundsOf(w).Stop(SoundSaw)
	}
	ecs.DestroyEntity(w, e)
	w.Events().Push(ecs.Event{Type: ecs.EventTargetDestroy, Entity: e, Data: h.Points})
}

// LaserBulletSystem moves machine bullets. They hurt the player and vanish
// on the player, on a receiver or once they leave the level.
type LaserBulletSystem struct{}

func NewLaserBulletSystem() *LaserBulletSystem {
	return &LaserBulletSystem{}
}

func (s *LaserBulletSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	sounds := soundsOf(w)
	bounds, hasBounds := levelBounds(w)

	ecs.ForEach2(w, component.LaserBulletComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, lb *component.LaserBullet, b *component.Body) {
		b.Pos = b.Pos.Add(lb.Direction.Mult(lb.Speed * dt))
		bp, ok := placedOf(w, e)
		if !ok {
			return
		}
		if hasBounds && !bp.Rect.Intersects(bounds) {
			ecs.DestroyEntity(w, e)
			return
		}

		if ref, ok := playerOf(w); ok && overlaps(bp, playerPlaced(ref)) {
			ecs.DestroyEntity(w, e)
			ref.Player.Hurt(lb.Damage)
			ref.Player.SetDeadCause(CauseLaserGun)
			sounds.Play(SoundPlayerHit)
			w.Events().Push(ecs.Event{Type: ecs.EventPlayerHurt, Entity: ref.Entity, Data: CauseLaserGun})
			return
		}

		ecs.ForEach(w, component.LaserReceiverComponent.Kind(), func(re ecs.Entity, _ *component.LaserReceiver) {
			if rp, ok := placedOf(w, re); ok && overlaps(bp, rp) {
				ecs.DestroyEntity(w, e)
			}
		})
	})
}
