package system

import (
	"math"

	"github.com/milk9111/shifty/common"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/prefabs"
)

// Integrate advances one axis under constant acceleration a for dt frames.
func Integrate(p, v, a, dt float64) (float64, float64) {
	return p + v*dt + 0.5*a*dt*dt, v + a*dt
}

// StepHorizontal folds friction into the horizontal acceleration, integrates
// and snaps tiny velocities to rest.
func StepHorizontal(b *component.Body, friction, deadband, dt float64) {
	b.Acc.X += b.Vel.X * friction
	b.Pos.X, b.Vel.X = Integrate(b.Pos.X, b.Vel.X, b.Acc.X, dt)
	if math.Abs(b.Vel.X) < deadband {
		b.Vel.X = 0
	}
}

// StepVertical applies gravity and caps the fall speed. Acceleration is reset
// to pure gravity, so horizontal input must be set again next frame.
func StepVertical(b *component.Body, gravity, terminal, dt float64) {
	b.Acc.X = 0
	b.Acc.Y = gravity
	vy := b.Vel.Y
	b.Pos.Y, b.Vel.Y = Integrate(b.Pos.Y, vy, gravity, dt)
	if b.Vel.Y > terminal {
		b.Vel.Y = terminal
	}
}

// ResolveX pushes the collider out of every overlapping ground rect along the
// direction of travel. Velocity is kept. The last obstacle hit is returned.
func ResolveX(b *component.Body, col *component.Collider, ground []common.Rect) (common.Rect, bool) {
	var hit common.Rect
	found := false
	for _, g := range ground {
		if !col.Rect(b.Pos).Intersects(g) {
			continue
		}
		switch {
		case b.Vel.X > 0:
			b.Pos.X = g.Left() - col.Width
		case b.Vel.X < 0:
			b.Pos.X = g.Right()
		default:
			continue
		}
		hit, found = g, true
	}
	return hit, found
}

// ResolveY lands a falling collider on top of ground or stops a rising one
// under it. landed reports a landing this frame.
func ResolveY(b *component.Body, col *component.Collider, ground []common.Rect) (landed bool) {
	for _, g := range ground {
		if !col.Rect(b.Pos).Intersects(g) {
			continue
		}
		switch {
		case b.Vel.Y > 0:
			b.Pos.Y = g.Top()
			b.Vel.Y = 0
			landed = true
		case b.Vel.Y < 0:
			b.Pos.Y = g.Bottom() + col.Height
			b.Vel.Y = 0
		}
	}
	return landed
}

// ClampToScreen stops horizontal acceleration at the screen edges and keeps
// the feet between the top of the level and the floor limit.
func ClampToScreen(b *component.Body, phys prefabs.PhysicsSpec) {
	if b.Pos.X <= 0 || b.Pos.X >= phys.ScreenWidth {
		b.Acc.X = 0
	}
	b.Pos.Y = common.Clamp(b.Pos.Y, 0, phys.FloorLimit)
}

// mover runs the shared horizontal-then-vertical step with axis separated
// collision and reports the horizontal obstacle hit and whether it landed.
func mover(b *component.Body, col *component.Collider, ground []common.Rect, friction float64, phys prefabs.PhysicsSpec, dt float64) (wall common.Rect, hitWall, landed bool) {
	StepHorizontal(b, friction, phys.Deadband, dt)
	wall, hitWall = ResolveX(b, col, ground)
	StepVertical(b, phys.Gravity, phys.TerminalVelocity, dt)
	landed = ResolveY(b, col, ground)
	ClampToScreen(b, phys)
	return wall, hitWall, landed
}
