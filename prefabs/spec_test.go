package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuningEmbedded(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()

	tuning, err := LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 0.8, tuning.Physics.Gravity)
	assert.Equal(t, 7.0, tuning.Physics.TerminalVelocity)
	assert.Equal(t, 100, tuning.Player.Health)
	assert.Equal(t, int64(300), tuning.Hazard.IntervalMillis)
	assert.Equal(t, int64(1000), tuning.Bullet.LifetimeMillis)
	assert.Equal(t, 16, tuning.Hazard.SawHealth)
	assert.Equal(t, 170.0, tuning.Zombie.DetectRadius)
	assert.Equal(t, Range{4000, 7000}, tuning.Zombie.TargetInterval)
	assert.Equal(t, 40.0, tuning.Gun.BarrelRight.V().X)
	assert.Equal(t, -27.0, tuning.Gun.BarrelRight.V().Y)
}

func TestLoadTuningDiskOverride(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()

	base, err := PrefabsFS.ReadFile(TuningFile)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(Dir, TuningFile), append(base, []byte("\n")...), 0o644))

	tuning, err := LoadTuning()
	require.NoError(t, err)
	assert.Equal(t, 15.5, tuning.Player.Jump)

	_, ok := ModTime(TuningFile)
	assert.True(t, ok)
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero_terminal", func(tn *Tuning) { tn.Physics.TerminalVelocity = 0 }},
		{"inverted_target_interval", func(tn *Tuning) { tn.Zombie.TargetInterval = Range{7000, 4000} }},
		{"zero_saw_health", func(tn *Tuning) { tn.Hazard.SawHealth = 0 }},
		{"zero_timer_tick", func(tn *Tuning) { tn.Timer.TickMillis = 0 }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tn := MustDefaultTuning()
			c.mutate(tn)
			assert.ErrorIs(t, tn.Validate(), ErrInvalidTuning)
		})
	}
}

func TestLoadEntityBuildSpecs(t *testing.T) {
	specs, err := LoadEntityBuildSpecs()
	require.NoError(t, err)
	player, ok := specs["player"]
	require.True(t, ok)
	assert.Equal(t, 40.0, player.Collider.Width)
	assert.Equal(t, "bottom_left", player.Collider.Anchor)
	assert.Equal(t, []string{"saw"}, specs["saw"].Sounds)
}

func TestDecodeComponentSpec(t *testing.T) {
	type props struct {
		Type string `yaml:"type"`
	}
	got, err := DecodeComponentSpec[props](map[string]any{"type": "vertical"})
	require.NoError(t, err)
	assert.Equal(t, "vertical", got.Type)
}

func TestWatcherReportsYamlWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, TuningFile)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("physics: {}\n"), 0o644))

	select {
	case change := <-w.Changes:
		assert.Equal(t, path, change.Path)
		assert.True(t, change.Tuning)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a yaml change event")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		event  fsnotify.Event
		want   Change
		wantOK bool
	}{
		{"tuning write", fsnotify.Event{Name: "prefabs/tuning.yaml", Op: fsnotify.Write}, Change{Path: "prefabs/tuning.yaml", Tuning: true}, true},
		{"entity spec create", fsnotify.Event{Name: "prefabs/entities.yaml", Op: fsnotify.Create}, Change{Path: "prefabs/entities.yaml"}, true},
		{"yml rename", fsnotify.Event{Name: "prefabs/extra.YML", Op: fsnotify.Rename}, Change{Path: "prefabs/extra.YML"}, true},
		{"script write", fsnotify.Event{Name: "prefabs/scripts/zombie.tengo", Op: fsnotify.Write}, Change{Path: "prefabs/scripts/zombie.tengo", Script: true}, true},
		{"chmod ignored", fsnotify.Event{Name: "prefabs/tuning.yaml", Op: fsnotify.Chmod}, Change{}, false},
		{"remove ignored", fsnotify.Event{Name: "prefabs/tuning.yaml", Op: fsnotify.Remove}, Change{}, false},
		{"other file", fsnotify.Event{Name: "prefabs/notes.txt", Op: fsnotify.Write}, Change{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := classify(c.event)
			assert.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestLoadScript(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	defer func() { Dir = old }()

	embedded, err := LoadScript(ZombieScript)
	require.NoError(t, err)
	assert.Contains(t, string(embedded), "update := func(engine, state, current)")

	require.NoError(t, os.MkdirAll(filepath.Join(Dir, "scripts"), 0o755))
	override := []byte("update := func(engine, state, current) {}\n")
	require.NoError(t, os.WriteFile(filepath.Join(Dir, "scripts", ZombieScript), override, 0o644))

	got, err := LoadScript("prefabs/scripts/" + ZombieScript)
	require.NoError(t, err)
	assert.Equal(t, override, got)

	again, err := EmbeddedScript(ZombieScript)
	require.NoError(t, err)
	assert.Equal(t, embedded, again)

	_, err = LoadScript("missing.tengo")
	assert.Error(t, err)
}
