package ecs

import (
	"math/rand"

	"github.com/milk9111/shifty/ecs/component"
)

// Clock is the frame snapshot every system reads. It is taken once per
// frame so all cooldowns in a frame compare against the same instant.
type Clock struct {
	NowMillis int64
	DT        float64
	Frame     uint64
}

// World owns entities, components, the frame clock and system order.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler Scheduler
	events    EventQueue
	clock     Clock
	rng       *rand.Rand

	updating bool
	spawning map[Entity]struct{}
	doomed   map[Entity]struct{}
	doomList []Entity
}

// NewWorld creates an empty ECS world with a fixed seed.
func NewWorld() *World {
	return NewSeededWorld(1)
}

// NewSeededWorld creates an empty world whose random draws are reproducible.
func NewSeededWorld(seed int64) *World {
	return &World{
		stores:   make(map[component.ComponentID]*SparseSet),
		rng:      rand.New(rand.NewSource(seed)),
		spawning: make(map[Entity]struct{}),
		doomed:   make(map[Entity]struct{}),
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns the registered systems in run order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Step snapshots the clock and runs one frame.
func (w *World) Step(nowMillis int64, dt float64) {
	if w == nil {
		return
	}
	w.clock.NowMillis = nowMillis
	w.clock.DT = dt
	w.clock.Frame++
	w.Update()
}

// Update runs all systems once against the current clock snapshot, then
// applies spawns and destroys requested during the pass.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.updating = true
	w.scheduler.Update(w)
	w.updating = false
	w.flush()
	w.events.flush()
}

// Clock returns the current frame snapshot.
func (w *World) Clock() Clock {
	if w == nil {
		return Clock{}
	}
	return w.clock
}

// Now returns the frame timestamp in milliseconds.
func (w *World) Now() int64 {
	if w == nil {
		return 0
	}
	return w.clock.NowMillis
}

// DeltaTime returns the frame step used by integrators.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.clock.DT
}

// Rand returns the world random source.
func (w *World) Rand() *rand.Rand {
	if w == nil {
		return nil
	}
	return w.rng
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	set, ok := w.stores[id]
	if !ok && create {
		set = &SparseSet{}
		w.stores[id] = set
	}
	return set
}

// visible reports whether e takes part in iteration this frame.
func (w *World) visible(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	if _, ok := w.doomed[e]; ok {
		return false
	}
	if _, ok := w.spawning[e]; ok {
		return false
	}
	return true
}

func (w *World) flush() {
	for e := range w.spawning {
		delete(w.spawning, e)
	}
	doomed := w.doomList
	w.doomList = nil
	for _, e := range doomed {
		delete(w.doomed, e)
		w.destroyNow(e)
	}
}

func (w *World) destroyNow(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, set := range w.stores {
		set.Remove(e)
	}
	return w.entities.destroy(e)
}
