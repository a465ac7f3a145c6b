package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/shifty/ecs"
)

// ScoreRecorder persists a finished run's score.
type ScoreRecorder interface {
	SaveScore(score int) error
}

// ScoreSystem saves the final score once, when the player dies or the
// countdown runs out.
type ScoreSystem struct {
	Recorder ScoreRecorder
}

func NewScoreSystem(r ScoreRecorder) *ScoreSystem {
	return &ScoreSystem{Recorder: r}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	session := sessionOf(w)
	if session == nil || session.ScoreSaved {
		return
	}
	for _, evt := range w.Events().Pending() {
		if evt.Type != ecs.EventPlayerDied && evt.Type != ecs.EventTimeUp {
			continue
		}
		session.ScoreSaved = true
		if session.FinalScore > session.HighScore {
			session.HighScore = session.FinalScore
		}
		if s.Recorder == nil {
			return
		}
		if err := s.Recorder.SaveScore(session.FinalScore); err != nil {
			log.Error("save score", "score", session.FinalScore, "error", err)
			return
		}
		log.Debug("score saved", "score", session.FinalScore)
		return
	}
}
