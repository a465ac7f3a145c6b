package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletLifetime(t *testing.T) {
	h := newHarness(t)
	h.step(1)
	spawned := h.now

	e, err := h.b.SpawnBullet(h.w, cp.Vector{X: 400, Y: 300}, true, 15, 1)
	require.NoError(t, err)

	h.stepTo(spawned + 999)
	assert.True(t, ecs.IsAlive(h.w, e))

	h.stepTo(spawned + 1000)
	assert.False(t, ecs.IsAlive(h.w, e))
}

func TestBulletStopsAtWall(t *testing.T) {
	h := newHarness(t, levels.Entity{Type: "obstacle", X: 420, Y: 200, W: 40, H: 200})
	h.step(1)

	e, err := h.b.SpawnBullet(h.w, cp.Vector{X: 410, Y: 300}, true, 15, 1)
	require.NoError(t, err)
	h.step(1)
	assert.False(t, ecs.IsAlive(h.w, e))
}

func TestHardenedTargetsBreak(t *testing.T) {
	cases := []struct {
		name      string
		record    levels.Entity
		center    cp.Vector
		hazardHit int
		bullets   int
		points    int
	}{
		{"saw", levels.Entity{Type: "saw", X: 1000, Y: 200}, cp.Vector{X: 1032, Y: 232}, 1, 16, 300},
		{"saw with upgraded gun", levels.Entity{Type: "saw", X: 1000, Y: 200}, cp.Vector{X: 1032, Y: 232}, 2, 8, 300},
		{"laser machine", levels.Entity{Type: "laser_machine", Subtype: "down red", X: 1000, Y: 100}, cp.Vector{X: 1032, Y: 132}, 1, 20, 500},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t, c.record)
			target, hardened := first(t, h.w, component.HardenedComponent.Kind())

			for i := 0; i < c.bullets; i++ {
				require.True(t, ecs.IsAlive(h.w, target), "broke early after %d bullets", i)
				_, err := h.b.SpawnBullet(h.w, c.center, true, 15, c.hazardHit)
				require.NoError(t, err)
				h.step(1)
			}

			assert.False(t, ecs.IsAlive(h.w, target))
			assert.True(t, hardened.Destroyed)
			assert.Equal(t, c.points, h.playerState().Score)
			assert.Empty(t, ecs.Query(h.w, component.BulletComponent.Kind()))
			assert.Equal(t, 1, h.audio.count(SoundExplosion))
		})
	}
}

func TestPoweredBeamAbsorbsBullets(t *testing.T) {
	h := newHarness(t,
		levels.Entity{Type: "laser_machine", Subtype: "down red", X: 1000, Y: 0},
		levels.Entity{Type: "laser_beam", Subtype: "red", X: 1020, Y: 64, W: 20, H: 500},
	)
	h.step(1)

	e, err := h.b.SpawnBullet(h.w, cp.Vector{X: 1025, Y: 300}, true, 15, 1)
	require.NoError(t, err)
	h.step(1)
	assert.False(t, ecs.IsAlive(h.w, e))

	_, m := first(t, h.w, component.HardenedComponent.Kind())
	assert.Equal(t, 0, m.TimesHit)
}

func TestLaserBullets(t *testing.T) {
	t.Run("hits the player", func(t *testing.T) {
		h := newHarness(t)
		h.step(1)
		e, err := h.b.SpawnLaserBullet(h.w, cp.Vector{X: 110, Y: 565}, cp.Vector{X: 1})
		require.NoError(t, err)

		h.step(1)
		assert.False(t, ecs.IsAlive(h.w, e))
		assert.Equal(t, 90, h.playerState().Health)
		assert.Equal(t, 1, h.audio.count(SoundPlayerHit))
	})

	t.Run("absorbed by a receiver", func(t *testing.T) {
		h := newHarness(t, levels.Entity{Type: "laser_receiver", Subtype: "left", X: 700, Y: 250, W: 32, H: 100})
		h.step(1)
		e, err := h.b.SpawnLaserBullet(h.w, cp.Vector{X: 695, Y: 300}, cp.Vector{X: 1})
		require.NoError(t, err)

		h.step(1)
		assert.False(t, ecs.IsAlive(h.w, e))
		assert.Equal(t, 100, h.playerState().Health)
	})

	t.Run("leaves the level", func(t *testing.T) {
		h := newHarness(t)
		h.step(1)
		e, err := h.b.SpawnLaserBullet(h.w, cp.Vector{X: 1920, Y: 300}, cp.Vector{X: 1})
		require.NoError(t, err)

		h.step(1)
		assert.False(t, ecs.IsAlive(h.w, e))
	})
}

func TestLaserBeamBurnsEveryFrame(t *testing.T) {
	h := newHarness(t,
		levels.Entity{Type: "laser_machine", Subtype: "down blue", X: 90, Y: 0},
		levels.Entity{Type: "laser_beam", Subtype: "blue", X: 110, Y: 64, W: 20, H: 536},
	)
	h.step(3)
	assert.Equal(t, 97, h.playerState().Health)
	assert.Equal(t, 1, h.audio.count(SoundLaser))
}
