package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shifty/common"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate(t *testing.T) {
	cases := []struct {
		name        string
		p, v, a, dt float64
		wantP       float64
		wantV       float64
	}{
		{"at rest", 5, 0, 0, 1, 5, 0},
		{"constant velocity", 10, 2, 0, 1, 12, 2},
		{"accelerating", 10, 2, 0.5, 1, 12.25, 2.5},
		{"two frames", 10, 2, 0.5, 2, 15, 3},
		{"braking", 0, 4, -1, 1, 3.5, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, v := Integrate(c.p, c.v, c.a, c.dt)
			assert.InDelta(t, c.wantP, p, 1e-9)
			assert.InDelta(t, c.wantV, v, 1e-9)
		})
	}
}

func TestStepHorizontal(t *testing.T) {
	t.Run("deadband snaps to rest", func(t *testing.T) {
		b := &component.Body{Pos: cp.Vector{X: 50}, Vel: cp.Vector{X: 0.05}}
		StepHorizontal(b, -0.12, 0.1, 1)
		assert.Equal(t, 0.0, b.Vel.X)
		assert.InDelta(t, 50.047, b.Pos.X, 1e-9)
	})

	t.Run("friction folds into acceleration", func(t *testing.T) {
		b := &component.Body{Vel: cp.Vector{X: 2}, Acc: cp.Vector{X: 0.45}}
		StepHorizontal(b, -0.12, 0.1, 1)
		assert.InDelta(t, 0.21, b.Acc.X, 1e-9)
		assert.InDelta(t, 2.21, b.Vel.X, 1e-9)
	})
}

func TestStepVerticalTerminalVelocity(t *testing.T) {
	b := &component.Body{Acc: cp.Vector{X: 3}}
	for i := 0; i < 50; i++ {
		StepVertical(b, 0.8, 7, 1)
		assert.LessOrEqual(t, b.Vel.Y, 7.0)
	}
	assert.Equal(t, 7.0, b.Vel.Y)
	assert.Equal(t, 0.0, b.Acc.X)
	assert.Equal(t, 0.8, b.Acc.Y)
}

func TestResolveX(t *testing.T) {
	wall := []common.Rect{{X: 100, Y: 0, Width: 100, Height: 200}}
	col := &component.Collider{Width: 20, Height: 20}

	cases := []struct {
		name  string
		pos   cp.Vector
		vel   float64
		wantX float64
		hit   bool
	}{
		{"moving right", cp.Vector{X: 85, Y: 100}, 3, 80, true},
		{"moving left", cp.Vector{X: 190, Y: 100}, -3, 200, true},
		{"standing still", cp.Vector{X: 90, Y: 100}, 0, 90, false},
		{"clear", cp.Vector{X: 20, Y: 100}, 3, 20, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := &component.Body{Pos: c.pos, Vel: cp.Vector{X: c.vel}}
			_, hit := ResolveX(b, col, wall)
			assert.Equal(t, c.hit, hit)
			assert.Equal(t, c.wantX, b.Pos.X)
			assert.Equal(t, c.vel, b.Vel.X)
		})
	}
}

func TestResolveY(t *testing.T) {
	ground := []common.Rect{{X: 0, Y: 100, Width: 300, Height: 50}}
	col := &component.Collider{Width: 20, Height: 20}

	t.Run("falling lands on top", func(t *testing.T) {
		b := &component.Body{Pos: cp.Vector{X: 10, Y: 105}, Vel: cp.Vector{Y: 4}}
		assert.True(t, ResolveY(b, col, ground))
		assert.Equal(t, 100.0, b.Pos.Y)
		assert.Equal(t, 0.0, b.Vel.Y)
	})

	t.Run("rising bumps the underside", func(t *testing.T) {
		b := &component.Body{Pos: cp.Vector{X: 10, Y: 165}, Vel: cp.Vector{Y: -4}}
		assert.False(t, ResolveY(b, col, ground))
		assert.Equal(t, 170.0, b.Pos.Y)
		assert.Equal(t, 0.0, b.Vel.Y)
	})
}

func TestMoverCornerIsAxisSeparated(t *testing.T) {
	block := []common.Rect{{X: 100, Y: 100, Width: 100, Height: 100}}
	col := &component.Collider{Width: 20, Height: 20}
	b := &component.Body{Pos: cp.Vector{X: 75, Y: 95}, Vel: cp.Vector{X: 30, Y: 30}}
	phys := prefabs.PhysicsSpec{Gravity: 0, TerminalVelocity: 100, Deadband: 0.1, ScreenWidth: 1920, FloorLimit: 1664}

	_, hitWall, landed := mover(b, col, block, 0, phys, 1)

	assert.False(t, hitWall)
	assert.True(t, landed)
	assert.Equal(t, 105.0, b.Pos.X)
	assert.Equal(t, 100.0, b.Pos.Y)
	assert.False(t, col.Rect(b.Pos).Intersects(block[0]))
}

// combinedStep moves by the whole displacement at once and resolves only the
// end position, for comparison with the axis separated mover.
func combinedStep(b *component.Body, col *component.Collider, ground []common.Rect) bool {
	b.Pos = b.Pos.Add(b.Vel)
	for _, g := range ground {
		if col.Rect(b.Pos).Intersects(g) {
			return true
		}
	}
	return false
}

func TestMoverCatchesWallCornerCombinedStepMisses(t *testing.T) {
	// A post 20 wide whose bottom the diagonal move clears.
	post := []common.Rect{{X: 100, Y: 50, Width: 20, Height: 80}}
	col := &component.Collider{Width: 20, Height: 20}
	phys := prefabs.PhysicsSpec{Gravity: 0, TerminalVelocity: 100, Deadband: 0.1, ScreenWidth: 1920, FloorLimit: 1664}
	start := cp.Vector{X: 75, Y: 120}
	vel := cp.Vector{X: 40, Y: 40}

	combined := &component.Body{Pos: start, Vel: vel}
	assert.False(t, combinedStep(combined, col, post), "one combined move never overlaps the post")
	assert.Greater(t, col.Rect(combined.Pos).Left(), post[0].Left(), "and ends up past its left edge")

	separated := &component.Body{Pos: start, Vel: vel}
	wall, hitWall, landed := mover(separated, col, post, 0, phys, 1)

	require.True(t, hitWall)
	assert.Equal(t, post[0], wall)
	assert.False(t, landed)
	assert.Equal(t, 80.0, separated.Pos.X, "stopped at the post's left edge")
	assert.Equal(t, 160.0, separated.Pos.Y, "vertical motion still applies")
	assert.LessOrEqual(t, col.Rect(separated.Pos).Right(), post[0].Left())
}

func TestClampToScreen(t *testing.T) {
	phys := prefabs.PhysicsSpec{ScreenWidth: 1920, FloorLimit: 1664}

	b := &component.Body{Pos: cp.Vector{X: -5, Y: 2000}, Acc: cp.Vector{X: -0.4}}
	ClampToScreen(b, phys)
	assert.Equal(t, 0.0, b.Acc.X)
	assert.Equal(t, 1664.0, b.Pos.Y)

	b = &component.Body{Pos: cp.Vector{X: 500, Y: -3}, Acc: cp.Vector{X: 0.4}}
	ClampToScreen(b, phys)
	assert.Equal(t, 0.4, b.Acc.X)
	assert.Equal(t, 0.0, b.Pos.Y)
}
