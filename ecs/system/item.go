package system

import (
	"fmt"

	"github.com/milk9111/shifty/common"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/prefabs"
)

// ItemSystem bobs health, key and xp pickups around their origin and spins
// coins.
type ItemSystem struct {
	Tuning *prefabs.Tuning
}

func NewItemSystem(t *prefabs.Tuning) *ItemSystem {
	return &ItemSystem{Tuning: t}
}

func (s *ItemSystem) Update(w *ecs.World) {
	if w == nil || s.Tuning == nil {
		return
	}
	now := w.Now()
	it := s.Tuning.Item

	ecs.ForEach2(w, component.ItemComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, item *component.Item, b *component.Body) {
		if item.Type == component.ItemCoin {
			anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
			if ok && anim.Step(now, it.CoinFrameMs, "coin", it.CoinFrames) {
				setFrame(w, e, fmt.Sprintf("coin_%d", anim.Frame))
			}
			return
		}
		b.Pos.Y = item.Origin.Y + BobOffset(item.Step, it.BobRange)*item.Direction
		item.Step += it.BobSpeed
		if item.Step > it.BobRange {
			item.Step = 0
			item.Direction = -item.Direction
		}
	})
}

// BobOffset eases step through [0, span] into an offset centered on zero.
func BobOffset(step, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return span * (common.EaseInOutSine(step/span) - 0.5)
}
