package system

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/prefabs"
)

// EffectSystem runs visual effects: it steps explosion frames and removes
// effects whose lifetime ran out. The player's own explosion ends the game
// when it finishes.
type EffectSystem struct {
	Tuning *prefabs.Tuning
}

func NewEffectSystem(t *prefabs.Tuning) *EffectSystem {
	return &EffectSystem{Tuning: t}
}

func (s *EffectSystem) Update(w *ecs.World) {
	if w == nil || s.Tuning == nil {
		return
	}
	now := w.Now()
	fx := s.Tuning.Effect

	ecs.ForEach2(w, component.EffectComponent.Kind(), component.TTLComponent.Kind(), func(e ecs.Entity, effect *component.Effect, ttl *component.TTL) {
		if effect.Kind == component.EffectExplosion {
			anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
			if ok && anim.Step(now, fx.ExplosionFrameMillis, "explosion", fx.ExplosionFrames) {
				setFrame(w, e, fmt.Sprintf("explosion_%d", anim.Frame))
			}
		}
		if !ttl.Expired(now) {
			return
		}
		ecs.DestroyEntity(w, e)
		if effect.BoundToPlayer {
			s.gameOver(w)
		}
	})
}

func (s *EffectSystem) gameOver(w *ecs.World) {
	session := sessionOf(w)
	sounds := soundsOf(w)
	sounds.Play(SoundGameOver)
	if session == nil {
		return
	}
	if session.FinalScore >= session.HighScore {
		sounds.Play(SoundHighScore)
	}
	session.GameOver = true
	w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: session.FinalScore})
	log.Info("game over", "score", session.FinalScore, "cause", session.DeadCause)
}
