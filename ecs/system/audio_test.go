package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mutedSettings struct {
	off    map[string]bool
	volume float64
}

func (s mutedSettings) SoundEnabled(name string) bool { return !s.off[name] }
func (s mutedSettings) Volume() float64               { return s.volume }

func audioWorld(t *testing.T, a *AudioSystem) (*ecs.World, *component.SoundQueue) {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	q := &component.SoundQueue{}
	require.NoError(t, ecs.Add(w, e, component.SoundQueueComponent.Kind(), q))
	w.AddSystem(a)
	return w, q
}

func TestAudioSystem(t *testing.T) {
	t.Run("plays and drains", func(t *testing.T) {
		fake := newFakeAudio()
		w, q := audioWorld(t, NewAudioSystem(fake, nil))
		q.Play(SoundGun)
		q.Play(SoundGun)
		w.Step(16, 1)

		assert.Equal(t, 2, fake.count(SoundGun))
		assert.Empty(t, q.Requests)
	})

	t.Run("once skips a playing clip", func(t *testing.T) {
		fake := newFakeAudio()
		fake.playing[SoundSaw] = 1
		w, q := audioWorld(t, NewAudioSystem(fake, nil))
		q.PlayOnce(SoundSaw)
		w.Step(16, 1)

		assert.Equal(t, 0, fake.count(SoundSaw))
	})

	t.Run("channel limit restarts the clip", func(t *testing.T) {
		fake := newFakeAudio()
		fake.playing[SoundGun] = 3
		w, q := audioWorld(t, NewAudioSystem(fake, nil))
		q.PlayLimited(SoundGun, 2)
		w.Step(16, 1)

		assert.Equal(t, []string{SoundGun}, fake.stopped)
		assert.Equal(t, 1, fake.count(SoundGun))
	})

	t.Run("settings mute and scale", func(t *testing.T) {
		fake := newFakeAudio()
		settings := mutedSettings{off: map[string]bool{SoundZombieMoan: true}, volume: 0.5}
		w, q := audioWorld(t, NewAudioSystem(fake, settings))
		q.Play(SoundZombieMoan)
		q.Play(SoundExplosion)
		w.Step(16, 1)

		assert.Equal(t, []string{SoundExplosion}, fake.played)
		assert.Equal(t, []float64{0.5}, fake.volumes)
	})

	t.Run("stop", func(t *testing.T) {
		fake := newFakeAudio()
		fake.playing[SoundLaser] = 1
		w, q := audioWorld(t, NewAudioSystem(fake, nil))
		q.Stop(SoundLaser)
		w.Step(16, 1)

		assert.False(t, fake.IsPlaying(SoundLaser))
	})

	t.Run("no player still drains", func(t *testing.T) {
		w, q := audioWorld(t, NewAudioSystem(nil, nil))
		q.Play(SoundGun)
		w.Step(16, 1)
		assert.Empty(t, q.Requests)
	})
}

func TestInputEdges(t *testing.T) {
	keys := heldKeys{}
	in := NewInputSystem(DefaultKeyBindings())
	in.Keys = keys

	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	state := &component.Input{}
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), state))
	w.AddSystem(in)

	keys[ebiten.KeyW] = true
	keys[ebiten.KeyD] = true
	w.Step(16, 1)
	assert.True(t, state.JumpPressed)
	assert.True(t, state.Right)
	assert.False(t, state.JumpReleased)

	w.Step(32, 1)
	assert.False(t, state.JumpPressed)
	assert.True(t, state.Right)

	delete(keys, ebiten.KeyW)
	w.Step(48, 1)
	assert.True(t, state.JumpReleased)

	w.Step(64, 1)
	assert.False(t, state.JumpReleased)
}
