package ecs

import "github.com/milk9111/shifty/ecs/component"

// CreateEntity allocates a new entity. Entities created while systems are
// running stay out of iteration until the frame ends.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	e := w.entities.create()
	if w.updating {
		w.spawning[e] = struct{}{}
	}
	return e
}

// DestroyEntity removes e. During a frame the removal is queued and e stops
// being alive immediately. A second call for the same entity returns false.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	if !w.updating {
		return w.destroyNow(e)
	}
	if _, ok := w.doomed[e]; ok {
		return false
	}
	w.doomed[e] = struct{}{}
	w.doomList = append(w.doomList, e)
	return true
}

// IsAlive reports whether e is valid and not queued for destruction.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	_, doomed := w.doomed[e]
	return !doomed
}

// Entities lists alive entities in creation order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	all := w.entities.list()
	out := all[:0]
	for _, e := range all {
		if IsAlive(w, e) {
			out = append(out, e)
		}
	}
	return out
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e).(*T)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// ForEach visits every visible entity holding kind, in registration order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	set := w.store(kind.ID(), false)
	for _, e := range set.Entities() {
		if !w.visible(e) {
			continue
		}
		if v, ok := set.Get(e).(*T); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb := w.store(ka.ID(), false), w.store(kb.ID(), false)
	for _, e := range intersect(sa, sb) {
		if !w.visible(e) {
			continue
		}
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sa, sb, sc := w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false)
	for _, e := range intersect(sa, sb, sc) {
		if !w.visible(e) {
			continue
		}
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		c, okC := sc.Get(e).(*C)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

// First returns the first visible entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, e := range w.store(kind.ID(), false).Entities() {
		if w.visible(e) {
			return e, true
		}
	}
	return 0, false
}

// Query snapshots the visible entities holding kind.
func Query[T any](w *World, kind component.ComponentKind[T]) []Entity {
	if w == nil {
		return nil
	}
	var out []Entity
	for _, e := range w.store(kind.ID(), false).Entities() {
		if w.visible(e) {
			out = append(out, e)
		}
	}
	return out
}
