package system

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/ecs/entity"
	"github.com/milk9111/shifty/prefabs"
)

// SawSystem moves vertical and horizontal saws between their limit markers
// and spins every saw.
type SawSystem struct {
	Tuning *prefabs.Tuning
}

func NewSawSystem(t *prefabs.Tuning) *SawSystem {
	return &SawSystem{Tuning: t}
}

func (s *SawSystem) Update(w *ecs.World) {
	if w == nil || s.Tuning == nil {
		return
	}
	now := w.Now()
	limits := map[component.ObstacleType][]placed{}
	for _, typ := range []component.ObstacleType{
		component.ObstacleSawLimitUp, component.ObstacleSawLimitDown,
		component.ObstacleSawLimitLeft, component.ObstacleSawLimitRight,
	} {
		limits[typ] = obstaclesOf(w, typ)
	}

	spinning := false
	ecs.ForEach2(w, component.SawComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, saw *component.Saw, b *component.Body) {
		spinning = true
		sp, ok := placedOf(w, e)
		if !ok {
			return
		}
		touches := func(typ component.ObstacleType) bool {
			for _, o := range limits[typ] {
				if sp.Rect.Intersects(o.Rect) {
					return true
				}
			}
			return false
		}

		switch saw.Motion {
		case component.SawVertical:
			if touches(component.ObstacleSawLimitDown) {
				saw.Reversed = true
			} else if touches(component.ObstacleSawLimitUp) {
				saw.Reversed = false
			}
			if saw.Reversed {
				b.Pos.Y -= saw.Speed
			} else {
				b.Pos.Y += saw.Speed
			}
		case component.SawHorizontal:
			if touches(component.ObstacleSawLimitRight) {
				saw.Reversed = true
			} else if touches(component.ObstacleSawLimitLeft) {
				saw.Reversed = false
			}
			if saw.Reversed {
				b.Pos.X -= saw.Speed
			} else {
				b.Pos.X += saw.Speed
			}
		}

		if now-saw.LastRot > s.Tuning.Hazard.SawRotateMs {
			saw.LastRot = now
			saw.Rotation = math.Mod(saw.Rotation+15, 360)
		}
	})

	if spinning {
		soundsOf(w).PlayOnce(SoundSaw)
	}
}

// LaserMachineSystem lets bullet-type machines fire at random intervals.
type LaserMachineSystem struct {
	Builder *entity.Builder
}

func NewLaserMachineSystem(b *entity.Builder) *LaserMachineSystem {
	return &LaserMachineSystem{Builder: b}
}

func (s *LaserMachineSystem) Update(w *ecs.World) {
	if w == nil || s.Builder == nil {
		return
	}
	t := s.Builder.Tuning
	now := w.Now()
	rng := w.Rand()

	ecs.ForEach2(w, component.LaserMachineComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, m *component.LaserMachine, b *component.Body) {
		if !m.Type.Fires() {
			return
		}
		m.Shooting = false
		if rng.Float64() >= t.Laser.FireChance || now-m.LastShot <= m.NextInterval {
			return
		}
		m.Shooting = true
		m.LastShot = now
		m.NextInterval = randRange(rng, t.Laser.Frequency)
		if _, err := s.Builder.SpawnLaserBullet(w, b.Pos.Add(m.BulletOffset), m.Direction); err != nil {
			log.Error("spawn laser bullet", "error", err)
			return
		}
		soundsOf(w).Play(SoundLaserGun)
	})
}

// LaserBeamSystem burns the player on every frame of contact with a powered
// beam.
type LaserBeamSystem struct {
	burning bool
}

func NewLaserBeamSystem() *LaserBeamSystem {
	return &LaserBeamSystem{}
}

func (s *LaserBeamSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	sounds := soundsOf(w)
	ref, ok := playerOf(w)
	if !ok {
		s.burning = false
		return
	}
	now := w.Now()
	pp := playerPlaced(ref)

	touching := false
	ecs.ForEach2(w, component.LaserBeamComponent.Kind(), component.HazardComponent.Kind(), func(e ecs.Entity, beam *component.LaserBeam, h *component.Hazard) {
		if !beam.Powered {
			return
		}
		bp, ok := placedOf(w, e)
		if !ok || !overlaps(pp, bp) {
			return
		}
		touching = true
		if h.TryAttack(now) {
			ref.Player.Hurt(h.Damage)
			ref.Player.SetDeadCause(CauseLaser)
			w.Events().Push(ecs.Event{Type: ecs.EventPlayerHurt, Entity: ref.Entity, Data: CauseLaser})
		}
	})

	switch {
	case touching:
		sounds.PlayOnce(SoundLaser)
	case s.burning:
		sounds.Stop(SoundLaser)
	}
	s.burning = touching
}
