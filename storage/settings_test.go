package storage

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shifty/ecs/system"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsMemoryOnly(t *testing.T) {
	s := NewSettingsStore(nil)
	assert.True(t, s.SoundEnabled(system.SoundGun))
	assert.Equal(t, 1.0, s.Volume())
	assert.NoError(t, s.Save())
}

func TestSoundToggles(t *testing.T) {
	s := NewSettingsStore(nil)
	s.Settings().Muted = []string{system.SoundZombieMoan}
	assert.False(t, s.SoundEnabled(system.SoundZombieMoan))
	assert.True(t, s.SoundEnabled(system.SoundGun))

	s.Settings().SoundEnabled = false
	assert.False(t, s.SoundEnabled(system.SoundGun))
}

func TestBindingsOverlay(t *testing.T) {
	s := NewSettingsStore(nil)
	s.Settings().Keys = map[string]string{
		"jump":  "Space",
		"shoot": "J",
		"dance": "K",
		"left":  "NotAKey",
	}
	b := s.Bindings(system.DefaultKeyBindings())

	assert.Equal(t, ebiten.KeySpace, b.Jump)
	assert.Equal(t, ebiten.KeyJ, b.Shoot)
	assert.Equal(t, ebiten.KeyA, b.Left)
	assert.Equal(t, ebiten.KeyD, b.Right)
}

func TestSettingsPersist(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	m, err := gdata.Open(gdata.Config{AppName: "shifty_settings_test"})
	require.NoError(t, err)

	s := NewSettingsStore(m)
	s.Settings().GunUpgrade = true
	s.Settings().Volume = 0.4
	s.Settings().Keys = map[string]string{"jump": "Space"}
	require.NoError(t, s.Save())

	reloaded := NewSettingsStore(m)
	assert.True(t, reloaded.Settings().GunUpgrade)
	assert.Equal(t, 0.4, reloaded.Volume())
	assert.Equal(t, "Space", reloaded.Settings().Keys["jump"])
}
