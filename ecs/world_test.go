package ecs

import (
	"testing"

	"github.com/milk9111/shifty/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label struct{ Name string }
type score struct{ Points int }
type tag struct{}

var (
	labelComponent = component.NewComponent[label]()
	scoreComponent = component.NewComponent[score]()
	tagComponent   = component.NewComponent[tag]()
)

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }

func labels(w *World) []string {
	var out []string
	ForEach(w, labelComponent.Kind(), func(_ Entity, l *label) {
		out = append(out, l.Name)
	})
	return out
}

func spawnLabeled(t *testing.T, w *World, names ...string) []Entity {
	t.Helper()
	ents := make([]Entity, 0, len(names))
	for _, name := range names {
		e := CreateEntity(w)
		require.NoError(t, Add(w, e, labelComponent.Kind(), &label{Name: name}))
		ents = append(ents, e)
	}
	return ents
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy int // -1 = none
		want    int
	}{
		{"single", 1, 0, 0},
		{"destroy middle", 3, 1, 2},
		{"none destroyed", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if c.destroy >= 0 {
				assert.True(t, DestroyEntity(w, ents[c.destroy]))
				assert.False(t, IsAlive(w, ents[c.destroy]))
				assert.False(t, DestroyEntity(w, ents[c.destroy]), "second destroy is a no-op")
			}
			assert.Len(t, Entities(w), c.want)
		})
	}
}

func TestStaleHandleAfterRecycle(t *testing.T) {
	w := NewWorld()
	old := spawnLabeled(t, w, "zombie")[0]
	require.True(t, DestroyEntity(w, old))

	fresh := spawnLabeled(t, w, "bullet")[0]
	assert.Equal(t, old.id(), fresh.id(), "slot is recycled")
	assert.NotEqual(t, old, fresh)

	assert.False(t, IsAlive(w, old))
	_, ok := Get(w, old, labelComponent.Kind())
	assert.False(t, ok)

	got, ok := Get(w, fresh, labelComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "bullet", got.Name)
}

func TestComponentAccess(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	assert.ErrorIs(t, Add(w, e, scoreComponent.Kind(), nil), component.ErrNilComponent)
	assert.ErrorIs(t, Add(w, e, component.ComponentKind[score]{}, &score{}), component.ErrInvalidComponentKind)

	require.NoError(t, Add(w, e, scoreComponent.Kind(), &score{Points: 25}))
	assert.True(t, Has(w, e, scoreComponent.Kind()))
	assert.False(t, Has(w, e, labelComponent.Kind()))

	s, ok := Get(w, e, scoreComponent.Kind())
	require.True(t, ok)
	s.Points += 150
	again, _ := Get(w, e, scoreComponent.Kind())
	assert.Equal(t, 175, again.Points, "components are stored by pointer")

	assert.True(t, Remove(w, e, scoreComponent.Kind()))
	assert.False(t, Remove(w, e, scoreComponent.Kind()))
	assert.False(t, Has(w, e, scoreComponent.Kind()))

	require.True(t, DestroyEntity(w, e))
	assert.ErrorIs(t, Add(w, e, scoreComponent.Kind(), &score{}), component.ErrEntityNotAlive)
}

func TestIterationKeepsRegistrationOrder(t *testing.T) {
	w := NewWorld()
	ents := spawnLabeled(t, w, "a", "b", "c", "d")
	require.True(t, DestroyEntity(w, ents[1]))
	spawnLabeled(t, w, "e")

	assert.Equal(t, []string{"a", "c", "d", "e"}, labels(w))

	first, ok := First(w, labelComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, ents[0], first)
	assert.Len(t, Query(w, labelComponent.Kind()), 4)
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	ents := spawnLabeled(t, w, "player", "zombie", "coin")
	require.NoError(t, Add(w, ents[0], scoreComponent.Kind(), &score{Points: 10}))
	require.NoError(t, Add(w, ents[2], scoreComponent.Kind(), &score{Points: 25}))
	require.NoError(t, Add(w, ents[2], tagComponent.Kind(), &tag{}))

	var two []string
	ForEach2(w, labelComponent.Kind(), scoreComponent.Kind(), func(_ Entity, l *label, s *score) {
		two = append(two, l.Name)
	})
	assert.Equal(t, []string{"player", "coin"}, two)

	var three []string
	ForEach3(w, labelComponent.Kind(), scoreComponent.Kind(), tagComponent.Kind(), func(_ Entity, l *label, _ *score, _ *tag) {
		three = append(three, l.Name)
	})
	assert.Equal(t, []string{"coin"}, three)

	ForEach2(w, labelComponent.Kind(), component.NewComponent[tag]().Kind(), func(Entity, *label, *tag) {
		t.Fatal("no entity holds an unregistered kind")
	})
}

func TestSpawnDuringFrameIsDeferred(t *testing.T) {
	w := NewWorld()
	spawnLabeled(t, w, "player")

	var seen []string
	spawned := false
	w.AddSystem(systemFunc(func(w *World) {
		if spawned {
			return
		}
		spawned = true
		e := CreateEntity(w)
		require.NoError(t, Add(w, e, labelComponent.Kind(), &label{Name: "bullet"}))
		assert.True(t, IsAlive(w, e))
	}))
	w.AddSystem(systemFunc(func(w *World) {
		seen = labels(w)
	}))

	w.Step(16, 1)
	assert.Equal(t, []string{"player"}, seen, "spawned entities wait for the next frame")

	w.Step(32, 1)
	assert.Equal(t, []string{"player", "bullet"}, seen)
}

func TestDestroyDuringFrameIsImmediate(t *testing.T) {
	w := NewWorld()
	ents := spawnLabeled(t, w, "zombie", "bullet")

	var seen []string
	w.AddSystem(systemFunc(func(w *World) {
		assert.True(t, DestroyEntity(w, ents[1]))
		assert.False(t, DestroyEntity(w, ents[1]))
		assert.False(t, IsAlive(w, ents[1]))
	}))
	w.AddSystem(systemFunc(func(w *World) {
		seen = labels(w)
		l, ok := Get(w, ents[1], labelComponent.Kind())
		require.True(t, ok, "data stays readable until the frame ends")
		assert.Equal(t, "bullet", l.Name)
	}))

	w.Step(16, 1)
	assert.Equal(t, []string{"zombie"}, seen)

	_, ok := Get(w, ents[1], labelComponent.Kind())
	assert.False(t, ok)
	assert.Len(t, Entities(w), 1)
}

func TestEventsLastOneFrame(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	var pending []Event
	w.AddSystem(systemFunc(func(w *World) {
		if w.Clock().Frame == 1 {
			w.Events().Push(Event{Type: EventZombieKilled, Entity: e, Data: 200})
		}
	}))
	w.AddSystem(systemFunc(func(w *World) {
		pending = append([]Event(nil), w.Events().Pending()...)
	}))

	w.Step(16, 1)
	require.Len(t, pending, 1)
	assert.Equal(t, EventZombieKilled, pending[0].Type)
	assert.Equal(t, 200, pending[0].Data)

	w.Step(32, 1)
	assert.Empty(t, pending)

	q := &EventQueue{}
	q.Push(Event{Type: EventTimeUp})
	assert.Len(t, q.Drain(), 1)
	assert.Nil(t, q.Drain())
}

func TestStepClockAndSeed(t *testing.T) {
	w := NewSeededWorld(42)
	other := NewSeededWorld(42)

	var ran int
	w.AddSystem(systemFunc(func(w *World) { ran++ }))
	w.Step(1016, 1)
	w.Step(1032, 0.5)

	assert.Equal(t, 2, ran)
	assert.Equal(t, int64(1032), w.Now())
	assert.Equal(t, 0.5, w.DeltaTime())
	assert.Equal(t, uint64(2), w.Clock().Frame)
	assert.Len(t, w.Systems(), 1)

	for i := 0; i < 5; i++ {
		assert.Equal(t, other.Rand().Intn(3000)+4000, w.Rand().Intn(3000)+4000)
	}
}

func TestNilWorld(t *testing.T) {
	var w *World
	assert.Zero(t, CreateEntity(w))
	assert.False(t, DestroyEntity(w, 1))
	assert.Nil(t, w.Rand())
	assert.Nil(t, Query(w, labelComponent.Kind()))
	assert.NotPanics(t, func() { w.Step(16, 1) })
}
