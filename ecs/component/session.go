package component

// Session is the per-run ledger the HUD and launcher observe.
type Session struct {
	Level        string
	TimerSeconds int
	LastTick     int64
	Paused       bool
	GameOver     bool
	TimeUp       bool
	LevelUp      bool
	HighScore    int
	ScoreSaved   bool

	// FinalScore and DeadCause outlive the player entity for the game over
	// screen.
	FinalScore int
	DeadCause  string
}

var SessionComponent = NewComponent[Session]()

// AddSeconds extends the countdown.
func (s *Session) AddSeconds(n int) {
	if s == nil {
		return
	}
	s.TimerSeconds += n
}
