package system

import (
	"math"

	"github.com/milk9111/shifty/common"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/prefabs"
)

// CameraSystem centers the view on the player, clamped so the level edges
// plus a margin never scroll past the screen.
type CameraSystem struct {
	Tuning *prefabs.Tuning
}

func NewCameraSystem(t *prefabs.Tuning) *CameraSystem {
	return &CameraSystem{Tuning: t}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if w == nil || s.Tuning == nil {
		return
	}
	ref, ok := playerOf(w)
	if !ok {
		return
	}
	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		r := ref.Rect()
		cam.OffsetX, cam.OffsetY = CameraOffset(r.CenterX(), r.CenterY(), cam.LevelWidth, cam.LevelHeight, s.Tuning.Camera)
	})
}

// CameraOffset is the draw translation that follows (cx, cy) inside a level
// of the given size.
func CameraOffset(cx, cy, levelW, levelH float64, margins prefabs.CameraSpec) (float64, float64) {
	px := -cx + common.ScreenWidth/2
	py := -cy + common.ScreenHeight/2

	left := math.Min(margins.MarginX, px)
	right := -(levelW - common.ScreenWidth) - margins.MarginX
	top := math.Min(0, py) + margins.MarginY
	bottom := -(levelH - common.ScreenHeight) - margins.MarginY

	return math.Max(right, left), math.Max(bottom, top)
}
