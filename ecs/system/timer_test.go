package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerCountsDownToTimeUp(t *testing.T) {
	h := newHarness(t)
	s := h.session()
	s.TimerSeconds = 2
	h.playerState().Score = 40

	h.stepTo(1999)
	assert.Equal(t, 2, s.TimerSeconds)

	h.stepTo(2000)
	assert.Equal(t, 1, s.TimerSeconds)

	h.stepTo(3000)
	assert.Equal(t, 0, s.TimerSeconds)
	assert.False(t, s.TimeUp)

	h.stepTo(4000)
	assert.True(t, s.TimeUp)
	assert.True(t, s.GameOver)
	assert.Equal(t, 40, s.FinalScore)
	assert.Equal(t, 40, s.HighScore)
	assert.Equal(t, []int{40}, h.scores.saved)
	assert.Equal(t, 1, h.audio.count(SoundGameOver))

	h.stepTo(5000)
	h.stepTo(6000)
	assert.Equal(t, []int{40}, h.scores.saved)
	assert.Equal(t, 1, h.audio.count(SoundGameOver))
}

func TestTimerCatchesUpMissedTicks(t *testing.T) {
	h := newHarness(t)
	s := h.session()

	h.stepTo(4500)
	assert.Equal(t, 57, s.TimerSeconds)
	assert.Equal(t, int64(4000), s.LastTick)
}

func TestTimerPaused(t *testing.T) {
	h := newHarness(t)
	s := h.session()
	s.Paused = true

	h.stepTo(3000)
	assert.Equal(t, 60, s.TimerSeconds)
	assert.Equal(t, int64(3000), s.LastTick)

	s.Paused = false
	h.stepTo(4000)
	assert.Equal(t, 59, s.TimerSeconds)
}

func TestHighScoreKeptWhenBeaten(t *testing.T) {
	h := newHarness(t)
	s := h.session()
	s.HighScore = 500
	s.TimerSeconds = 0
	h.playerState().Score = 120

	h.stepTo(2000)
	assert.True(t, s.GameOver)
	assert.Equal(t, 500, s.HighScore)
	assert.Equal(t, 0, h.audio.count(SoundHighScore))
	assert.Equal(t, []int{120}, h.scores.saved)
}
