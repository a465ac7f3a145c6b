package system

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/ecs/entity"
	"github.com/milk9111/shifty/levels"
	"github.com/milk9111/shifty/prefabs"
	"github.com/stretchr/testify/require"
)

// groundY is the top of the floor every test level stands on.
const groundY = 600.0

type heldKeys map[ebiten.Key]bool

func (k heldKeys) IsKeyPressed(key ebiten.Key) bool { return k[key] }

type fakeAudio struct {
	played  []string
	volumes []float64
	stopped []string
	playing map[string]int
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{playing: map[string]int{}}
}

func (a *fakeAudio) Play(name string, volume float64) {
	a.played = append(a.played, name)
	a.volumes = append(a.volumes, volume)
	a.playing[name]++
}

func (a *fakeAudio) Stop(name string) {
	a.stopped = append(a.stopped, name)
	delete(a.playing, name)
}

func (a *fakeAudio) IsPlaying(name string) bool { return a.playing[name] > 0 }

func (a *fakeAudio) Channels(name string) int { return a.playing[name] }

func (a *fakeAudio) count(name string) int {
	n := 0
	for _, p := range a.played {
		if p == name {
			n++
		}
	}
	return n
}

type fakeScores struct {
	saved []int
}

func (s *fakeScores) SaveScore(score int) error {
	s.saved = append(s.saved, score)
	return nil
}

// harness is a level with a floor at groundY, the player standing at x=100
// and the full system pipeline. Each step advances the clock by 16ms.
type harness struct {
	t      *testing.T
	w      *ecs.World
	b      *entity.Builder
	keys   heldKeys
	audio  *fakeAudio
	scores *fakeScores
	player ecs.Entity
	now    int64
}

func newHarness(t *testing.T, records ...levels.Entity) *harness {
	t.Helper()
	b, err := entity.NewBuilder(prefabs.MustDefaultTuning())
	require.NoError(t, err)

	h := &harness{
		t:      t,
		w:      ecs.NewSeededWorld(1),
		b:      b,
		keys:   heldKeys{},
		audio:  newFakeAudio(),
		scores: &fakeScores{},
		now:    1000,
	}
	lvl := &levels.Level{
		Name:   "test",
		Width:  1920,
		Height: 1080,
		Timer:  60,
		Entities: append([]levels.Entity{
			{Type: "obstacle", X: 0, Y: groundY, W: 1920, H: 64},
			{Type: "player", X: 100, Y: groundY},
		}, records...),
	}
	h.player, err = b.LoadLevelToWorld(h.w, lvl, entity.LevelOptions{NowMillis: h.now})
	require.NoError(t, err)
	Register(h.w, Deps{Builder: b, Keys: h.keys, Audio: h.audio, Scores: h.scores})
	return h
}

func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.now += 16
		h.w.Step(h.now, 1)
	}
}

func (h *harness) stepTo(now int64) {
	h.now = now
	h.w.Step(now, 1)
}

func (h *harness) hold(keys ...ebiten.Key) {
	for _, k := range keys {
		h.keys[k] = true
	}
}

func (h *harness) release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(h.keys, k)
	}
}

func (h *harness) playerState() *component.Player {
	h.t.Helper()
	p, ok := ecs.Get(h.w, h.player, component.PlayerComponent.Kind())
	require.True(h.t, ok, "player is gone")
	return p
}

func (h *harness) body(e ecs.Entity) *component.Body {
	h.t.Helper()
	b, ok := ecs.Get(h.w, e, component.BodyComponent.Kind())
	require.True(h.t, ok)
	return b
}

func (h *harness) session() *component.Session {
	h.t.Helper()
	s := sessionOf(h.w)
	require.NotNil(h.t, s)
	return s
}

func first[T any](t *testing.T, w *ecs.World, kind component.ComponentKind[T]) (ecs.Entity, *T) {
	t.Helper()
	e, ok := ecs.First(w, kind)
	require.True(t, ok)
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok)
	return e, v
}
