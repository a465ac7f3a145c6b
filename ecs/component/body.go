package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shifty/common"
)

// Body is the kinematic state shared by every placed entity. Static entities
// simply never integrate.
type Body struct {
	Pos cp.Vector
	Vel cp.Vector
	Acc cp.Vector
}

var BodyComponent = NewComponent[Body]()

// Anchor selects which point of the collider Body.Pos refers to.
type Anchor int

const (
	// AnchorBottomLeft: Pos.X is the left edge, Pos.Y the bottom edge.
	AnchorBottomLeft Anchor = iota
	// AnchorTopLeft: Pos is the top-left corner, as authored in level data.
	AnchorTopLeft
	// AnchorCenter: Pos is the box center.
	AnchorCenter
)

// Collider is the axis aligned box of an entity, with an optional pixel mask
// for fine overlap tests.
type Collider struct {
	Width  float64
	Height float64
	Anchor Anchor
	// Radius enables circle tests against saws. Zero means box only.
	Radius float64
	Mask   *Mask
}

var ColliderComponent = NewComponent[Collider]()

// Rect places the collider at pos.
func (c *Collider) Rect(pos cp.Vector) common.Rect {
	if c == nil {
		return common.Rect{}
	}
	switch c.Anchor {
	case AnchorTopLeft:
		return common.Rect{X: pos.X, Y: pos.Y, Width: c.Width, Height: c.Height}
	case AnchorCenter:
		return common.RectFromCenter(pos.X, pos.Y, c.Width, c.Height)
	default:
		return common.RectFromBottomLeft(pos.X, pos.Y, c.Width, c.Height)
	}
}
