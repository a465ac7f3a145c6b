package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/prefabs"
)

// TimerSystem counts the level clock down once per tick. Pausing or game
// over stops the countdown but not the tick itself. Reaching zero ends the
// run.
type TimerSystem struct {
	Tuning *prefabs.Tuning
}

func NewTimerSystem(t *prefabs.Tuning) *TimerSystem {
	return &TimerSystem{Tuning: t}
}

func (s *TimerSystem) Update(w *ecs.World) {
	if w == nil || s.Tuning == nil {
		return
	}
	session := sessionOf(w)
	if session == nil {
		return
	}
	tick := s.Tuning.Timer.TickMillis
	now := w.Now()

	for now-session.LastTick >= tick {
		session.LastTick += tick
		if session.Paused || session.GameOver {
			continue
		}
		if session.TimerSeconds > 0 {
			session.TimerSeconds--
			continue
		}

		session.TimeUp = true
		session.GameOver = true
		if ref, ok := playerOf(w); ok {
			session.FinalScore = ref.Player.Score
		}
		sounds := soundsOf(w)
		if session.FinalScore >= session.HighScore {
			sounds.Play(SoundHighScore)
		}
		sounds.Play(SoundGameOver)
		w.Events().Push(ecs.Event{Type: ecs.EventTimeUp, Data: session.FinalScore})
		w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: session.FinalScore})
		log.Info("time up", "level", session.Level, "score", session.FinalScore)
	}
}
