package system

import (
	"testing"

	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/levels"
	"github.com/milk9111/shifty/prefabs"
	"github.com/stretchr/testify/assert"
)

func TestCameraOffset(t *testing.T) {
	margins := prefabs.CameraSpec{MarginX: 190, MarginY: 108}
	cases := []struct {
		name         string
		cx, cy       float64
		wantX, wantY float64
	}{
		{"top left corner", 100, 500, 190, 108},
		{"bottom right corner", 3800, 1900, -2110, -1204},
		{"middle follows", 2000, 1000, -1040, -352},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := CameraOffset(c.cx, c.cy, 3840, 2176, margins)
			assert.Equal(t, c.wantX, x)
			assert.Equal(t, c.wantY, y)
		})
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	h := newHarness(t)
	h.step(1)

	_, cam := first(t, h.w, component.CameraComponent.Kind())
	x, y := CameraOffset(120, 565, 1920, 1080, h.b.Tuning.Camera)
	assert.Equal(t, x, cam.OffsetX)
	assert.Equal(t, y, cam.OffsetY)
}

func TestBobOffset(t *testing.T) {
	cases := []struct {
		name       string
		step, span float64
		want       float64
	}{
		{"start", 0, 15, -7.5},
		{"middle", 7.5, 15, 0},
		{"end", 15, 15, 7.5},
		{"no span", 3, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, BobOffset(c.step, c.span), 1e-9)
		})
	}
}

func TestItemsBobAndTurn(t *testing.T) {
	h := newHarness(t, levels.Entity{Type: "item", Subtype: "health", X: 800, Y: 300})
	e, item := first(t, h.w, component.ItemComponent.Kind())

	h.step(1)
	assert.InDelta(t, item.Origin.Y-7.5, h.body(e).Pos.Y, 1e-9)

	h.step(36)
	assert.Equal(t, 1.0, item.Direction)
	h.step(1)
	assert.Equal(t, -1.0, item.Direction)
	assert.Equal(t, 0.0, item.Step)
}
