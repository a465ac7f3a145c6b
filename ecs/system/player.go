package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shifty/common"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/ecs/entity"
	"github.com/milk9111/shifty/prefabs"
)

// PlayerSystem runs the player's frame: controls, shooting, animation,
// movement, hazard and pickup contact, gun cooldown and death.
type PlayerSystem struct {
	Builder *entity.Builder
}

func NewPlayerSystem(b *entity.Builder) *PlayerSystem {
	return &PlayerSystem{Builder: b}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil || s.Builder == nil {
		return
	}
	ref, ok := playerOf(w)
	if !ok || ref.Player == nil || ref.Player.Exploded {
		return
	}

	t := s.Builder.Tuning
	now := w.Now()
	sounds := soundsOf(w)

	s.controls(ref, sounds, t)
	s.shoot(w, ref, sounds, now, t)
	s.animate(w, ref, now, t)
	s.move(w, ref, t)

	s.touchAcid(w, ref, sounds, now, t)
	s.touchSpikes(w, ref, sounds, now, t)
	s.touchZombies(w, ref, sounds, t)
	s.touchSaws(w, ref, sounds, now, t)
	s.pickItems(w, ref, sounds, t)

	regenGun(ref.Player, t.Gun)

	if ref.Player.Health <= 0 {
		s.explode(w, ref, sounds, t)
	}
}

func (s *PlayerSystem) controls(ref playerRef, sounds *component.SoundQueue, t *prefabs.Tuning) {
	p, b, in := ref.Player, ref.Body, ref.Input

	if in.JumpPressed && p.OnGround && !p.Sliding && !p.InAcid {
		p.Jumping = true
		p.OnGround = false
		b.Vel.Y = -t.Player.Jump
		sounds.Play(SoundPlayerJump)
	}
	if in.JumpReleased && p.Jumping {
		b.Vel.Y *= t.Player.JumpCut
		p.Jumping = false
	}
	if in.SlidePressed && p.OnGround && p.Walking && !p.Sliding {
		p.Sliding = true
		p.SlideFrames = 0
	}
}

func (s *PlayerSystem) shoot(w *ecs.World, ref playerRef, sounds *component.SoundQueue, now int64, t *prefabs.Tuning) {
	p := ref.Player
	if !ref.Input.Shoot {
		p.Shooting = false
		return
	}
	if !p.CanShoot || p.Sliding || p.InAcid {
		return
	}

	p.Shooting = true
	if now-p.LastShot <= t.Gun.RateMillis {
		return
	}
	p.LastShot = now
	p.GunCooldown -= t.Gun.CooldownCost

	pos := ref.Body.Pos.Add(barrelOffset(p, t.Gun))
	damage, hazardHit := t.Bullet.Damage, t.Bullet.HazardHit
	if p.GunUpgrade {
		damage, hazardHit = t.Gun.UpgradedDamage, t.Gun.UpgradedHazardHit
	}
	if _, err := s.Builder.SpawnBullet(w, pos, p.FacingRight, damage, hazardHit); err != nil {
		log.Error("spawn bullet", "error", err)
		return
	}
	if _, err := s.Builder.SpawnMuzzleFlash(w, pos, p.FacingRight); err != nil {
		log.Error("spawn muzzle flash", "error", err)
	}
	sounds.PlayLimited(SoundGun, t.Gun.GunSoundChannels)
}

func barrelOffset(p *component.Player, gun prefabs.GunSpec) cp.Vector {
	switch {
	case p.FacingRight && p.WalkingShooting:
		return gun.BarrelWalkRight.V()
	case p.FacingRight:
		return gun.BarrelRight.V()
	case p.WalkingShooting:
		return gun.BarrelWalkLeft.V()
	default:
		return gun.BarrelLeft.V()
	}
}

func (s *PlayerSystem) animate(w *ecs.World, ref playerRef, now int64, t *prefabs.Tuning) {
	p := ref.Player
	p.Walking = ref.Body.Vel.X != 0
	p.WalkingShooting = p.Walking && p.Shooting && !p.Jumping

	anim, ok := ecs.Get(w, ref.Entity, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	clips := t.Animation
	switch {
	case p.Sliding:
		if anim.Step(now, clips.PlayerSlide.Interval, "slide", clips.PlayerSlide.Frames) {
			p.SlideFrames++
			if p.SlideFrames >= t.Player.SlideFrames {
				p.Sliding = false
				p.SlideFrames = 0
			}
		}
	case p.Jumping && p.Shooting:
		anim.Step(now, clips.PlayerJumpShoot.Interval, "jump_shoot", clips.PlayerJumpShoot.Frames)
	case p.Jumping:
		anim.Step(now, clips.PlayerJump.Interval, "jump", clips.PlayerJump.Frames)
	case p.WalkingShooting:
		anim.Step(now, clips.PlayerRunShoot.Interval, "run_shoot", clips.PlayerRunShoot.Frames)
	case p.Walking:
		anim.Step(now, clips.PlayerRun.Interval, "run", clips.PlayerRun.Frames)
	case p.Shooting:
		anim.Step(now, clips.PlayerShoot.Interval, "shoot", clips.PlayerShoot.Frames)
	default:
		anim.Step(now, clips.PlayerIdle.Interval, "idle", clips.PlayerIdle.Frames)
	}

	if sprite, ok := ecs.Get(w, ref.Entity, component.SpriteComponent.Kind()); ok {
		sprite.Frame = fmt.Sprintf("%s_%d", anim.Name, anim.Frame)
		sprite.FlipX = !p.FacingRight
	}
	s.Builder.RefreshMask(w, ref.Entity)
}

func (s *PlayerSystem) move(w *ecs.World, ref playerRef, t *prefabs.Tuning) {
	p, b, in := ref.Player, ref.Body, ref.Input

	b.Acc.X = 0
	if p.Sliding {
		b.Acc.X = t.Player.Acceleration
		if !p.FacingRight {
			b.Acc.X = -t.Player.Acceleration
		}
	} else {
		if in.Left {
			b.Acc.X = -t.Player.Acceleration
			p.FacingRight = false
		}
		if in.Right {
			b.Acc.X = t.Player.Acceleration
			p.FacingRight = true
		}
	}

	_, _, landed := mover(b, ref.Collider, groundOf(w), t.Player.Friction, t.Physics, w.DeltaTime())
	p.OnGround = landed
	if landed {
		p.Jumping = false
	}
}

func (s *PlayerSystem) hurt(w *ecs.World, ref playerRef, damage int, cause string) {
	ref.Player.Hurt(damage)
	ref.Player.SetDeadCause(cause)
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerHurt, Entity: ref.Entity, Data: cause})
}

func (s *PlayerSystem) touchAcid(w *ecs.World, ref playerRef, sounds *component.SoundQueue, now int64, t *prefabs.Tuning) {
	hits := touchingHazards(w, playerPlaced(ref), component.HazardAcid)
	if len(hits) == 0 {
		if ref.Player.InAcid {
			sounds.Stop(SoundBurn)
		}
		ref.Player.InAcid = false
		return
	}

	ref.Player.InAcid = true
	ref.Body.Vel.X = 0
	ref.Body.Vel.Y = t.Player.AcidSink
	sounds.PlayOnce(SoundBurn)
	for _, h := range hits {
		if h.Hazard.TryAttack(now) {
			s.hurt(w, ref, h.Hazard.Damage, CauseAcid)
		}
	}
	ref.Player.SetDeadCause(CauseAcid)
}

func (s *PlayerSystem) touchSpikes(w *ecs.World, ref playerRef, sounds *component.SoundQueue, now int64, t *prefabs.Tuning) {
	hits := touchingHazards(w, playerPlaced(ref), component.HazardSpikes)
	if len(hits) == 0 {
		return
	}

	ref.Body.Pos.Y = hits[0].Rect.Top()
	ref.Body.Vel.Y = t.Player.SpikeBounce
	for _, h := range hits {
		if h.Hazard.TryAttack(now) {
			s.hurt(w, ref, h.Hazard.Damage, CauseSpikes)
			sounds.Play(SoundPlayerHit)
		}
	}
	ref.Player.SetDeadCause(CauseSpikes)
}

func (s *PlayerSystem) touchZombies(w *ecs.World, ref playerRef, sounds *component.SoundQueue, t *prefabs.Tuning) {
	ecs.ForEach(w, component.ZombieComponent.Kind(), func(e ecs.Entity, z *component.Zombie) {
		if !z.Attacking {
			return
		}
		zp, ok := placedOf(w, e)
		if !ok || !overlaps(playerPlaced(ref), zp) {
			return
		}
		switch {
		case zp.Pos.X > ref.Body.Pos.X:
			ref.Body.Pos.X -= t.Zombie.Knockback
		case zp.Pos.X < ref.Body.Pos.X:
			ref.Body.Pos.X += t.Zombie.Knockback
		}
		s.hurt(w, ref, z.Damage, CauseZombies)
		sounds.Play(SoundPlayerHit)
	})
}

func (s *PlayerSystem) touchSaws(w *ecs.World, ref playerRef, sounds *component.SoundQueue, now int64, t *prefabs.Tuning) {
	pp := playerPlaced(ref)
	var hits []hazardRef
	for _, h := range hazardsOf(w, component.HazardSaw) {
		if circlesOverlap(pp, h.placed, t.Hazard.SawCircleRatio) {
			hits = append(hits, h)
		}
	}
	if len(hits) == 0 {
		return
	}

	ref.Body.Pos = ref.Body.Pos.Add(t.Hazard.SawKnockback.V())
	for _, h := range hits {
		if h.Hazard.TryAttack(now) {
			s.hurt(w, ref, h.Hazard.Damage, CauseSaw)
			sounds.Play(SoundPlayerHit)
		}
	}
	ref.Player.SetDeadCause(CauseSaw)
}

func (s *PlayerSystem) pickItems(w *ecs.World, ref playerRef, sounds *component.SoundQueue, t *prefabs.Tuning) {
	p := ref.Player
	ecs.ForEach(w, component.ItemComponent.Kind(), func(e ecs.Entity, item *component.Item) {
		ip, ok := placedOf(w, e)
		if !ok || !overlaps(playerPlaced(ref), ip) {
			return
		}
		switch item.Type {
		case component.ItemKey:
			p.HasKey = true
			p.AddPoints(t.Points.Key)
			sounds.Play(SoundKeyPickup)
		case component.ItemHealth:
			if p.Health >= t.Player.Health {
				return
			}
			p.Health = min(p.Health+t.Item.HealthPack, t.Player.Health)
			sounds.Play(SoundHealthPickup)
		case component.ItemXP:
			p.AddPoints(t.Points.XP)
			sessionOf(w).AddSeconds(t.Item.XPSeconds)
			sounds.Play(SoundXPPickup)
		case component.ItemCoin:
			p.AddPoints(t.Points.Coin)
			sounds.Play(SoundCoinPickup)
		default:
			return
		}
		ecs.DestroyEntity(w, e)
		w.Events().Push(ecs.Event{Type: ecs.EventItemPicked, Entity: e, Data: item.Type})
	})
}

// regenGun refills the gun a little every frame and gates shooting on the
// remaining charge.
func regenGun(p *component.Player, gun prefabs.GunSpec) {
	p.GunCooldown = common.Clamp(p.GunCooldown+gun.CooldownRegen, 0, gun.Cooldown)
	p.CanShoot = p.GunCooldown > gun.MinToShoot
}

func (s *PlayerSystem) explode(w *ecs.World, ref playerRef, sounds *component.SoundQueue, t *prefabs.Tuning) {
	p := ref.Player
	p.Exploded = true

	pos := ref.Body.Pos.Add(t.Player.ExplosionAt.V())
	if _, err := s.Builder.SpawnExplosion(w, pos, true); err != nil {
		log.Error("spawn player explosion", "error", err)
	}
	sounds.Stop(SoundBurn)
	sounds.Stop(SoundLaser)
	sounds.Play(SoundExplosion)

	if session := sessionOf(w); session != nil {
		session.FinalScore = p.Score
		session.DeadCause = p.DeadCause
	}
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Entity: ref.Entity, Data: p.Score})
	ecs.DestroyEntity(w, ref.Entity)
	log.Info("player died", "cause", p.DeadCause, "score", p.Score)
}
