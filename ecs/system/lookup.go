package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shifty/common"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
)

func sessionOf(w *ecs.World) *component.Session {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	return s
}

// soundsOf returns the frame's sound queue. A nil queue swallows requests.
func soundsOf(w *ecs.World) *component.SoundQueue {
	e, ok := ecs.First(w, component.SoundQueueComponent.Kind())
	if !ok {
		return nil
	}
	q, _ := ecs.Get(w, e, component.SoundQueueComponent.Kind())
	return q
}

// playerRef bundles the live player's components.
type playerRef struct {
	Entity   ecs.Entity
	Player   *component.Player
	Body     *component.Body
	Collider *component.Collider
	Input    *component.Input
}

func (p playerRef) Rect() common.Rect {
	return p.Collider.Rect(p.Body.Pos)
}

func playerOf(w *ecs.World) (playerRef, bool) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return playerRef{}, false
	}
	ref := playerRef{Entity: e}
	ref.Player, _ = ecs.Get(w, e, component.PlayerComponent.Kind())
	ref.Body, ok = ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return playerRef{}, false
	}
	ref.Collider, ok = ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return playerRef{}, false
	}
	ref.Input, _ = ecs.Get(w, e, component.InputComponent.Kind())
	if ref.Input == nil {
		ref.Input = &component.Input{}
	}
	return ref, true
}

// placed is an entity's collider at its current position.
type placed struct {
	Entity ecs.Entity
	Rect   common.Rect
	Mask   *component.Mask
	Pos    cp.Vector
	Radius float64
}

func placedOf(w *ecs.World, e ecs.Entity) (placed, bool) {
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return placed{}, false
	}
	col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return placed{}, false
	}
	return placed{Entity: e, Rect: col.Rect(body.Pos), Mask: col.Mask, Pos: body.Pos, Radius: col.Radius}, true
}

// obstaclesOf collects static geometry of the given type.
func obstaclesOf(w *ecs.World, typ component.ObstacleType) []placed {
	var out []placed
	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(e ecs.Entity, o *component.Obstacle) {
		if o.Type != typ {
			return
		}
		if p, ok := placedOf(w, e); ok {
			out = append(out, p)
		}
	})
	return out
}

func groundOf(w *ecs.World) []common.Rect {
	obs := obstaclesOf(w, component.ObstacleGround)
	out := make([]common.Rect, 0, len(obs))
	for _, o := range obs {
		out = append(out, o.Rect)
	}
	return out
}

// overlaps tests two placed colliders: boxes first, then masks.
func overlaps(a, b placed) bool {
	if !a.Rect.Intersects(b.Rect) {
		return false
	}
	return component.MasksOverlap(a.Mask, a.Rect, b.Mask, b.Rect)
}

// circlesOverlap mirrors a ratio-scaled circle test. A collider without a
// radius uses half its box diagonal.
func circlesOverlap(a, b placed, ratio float64) bool {
	ra, rb := circleRadius(a), circleRadius(b)
	ac := cp.Vector{X: a.Rect.CenterX(), Y: a.Rect.CenterY()}
	bc := cp.Vector{X: b.Rect.CenterX(), Y: b.Rect.CenterY()}
	reach := (ra + rb) * ratio
	return ac.DistanceSq(bc) < reach*reach
}

func circleRadius(p placed) float64 {
	if p.Radius > 0 {
		return p.Radius
	}
	return 0.5 * cp.Vector{X: p.Rect.Width, Y: p.Rect.Height}.Length()
}

func playerPlaced(ref playerRef) placed {
	return placed{
		Entity: ref.Entity,
		Rect:   ref.Rect(),
		Mask:   ref.Collider.Mask,
		Pos:    ref.Body.Pos,
		Radius: ref.Collider.Radius,
	}
}

type hazardRef struct {
	placed
	Hazard *component.Hazard
}

func hazardsOf(w *ecs.World, kind component.HazardKind) []hazardRef {
	var out []hazardRef
	ecs.ForEach(w, component.HazardComponent.Kind(), func(e ecs.Entity, h *component.Hazard) {
		if h.Kind != kind {
			return
		}
		if p, ok := placedOf(w, e); ok {
			out = append(out, hazardRef{placed: p, Hazard: h})
		}
	})
	return out
}

// touchingHazards lists hazards of kind overlapping p, in spawn order.
func touchingHazards(w *ecs.World, p placed, kind component.HazardKind) []hazardRef {
	var out []hazardRef
	for _, h := range hazardsOf(w, kind) {
		if overlaps(p, h.placed) {
			out = append(out, h)
		}
	}
	return out
}

func levelBounds(w *ecs.World) (common.Rect, bool) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	if cam == nil || cam.LevelWidth <= 0 || cam.LevelHeight <= 0 {
		return common.Rect{}, false
	}
	return common.Rect{Width: cam.LevelWidth, Height: cam.LevelHeight}, true
}
