package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is one edited prefab file. Tuning is set when the edit touched
// tuning.yaml, which the launcher must reload itself; entity specs and
// scripts are read again by every new level.
type Change struct {
	Path   string
	Tuning bool
	Script bool
}

// Watcher reports prefab yaml and script edits. Bursts on the same file within the
// debounce window collapse into one Change.
type Watcher struct {
	fs       *fsnotify.Watcher
	Changes  chan Change
	Errors   chan error
	debounce time.Duration

	done chan struct{}
	once sync.Once
}

const watchDebounce = 100 * time.Millisecond

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:       fsw,
		Changes:  make(chan Change, 16),
		Errors:   make(chan error, 1),
		debounce: watchDebounce,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.Changes)
	defer close(w.Errors)

	seen := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			change, ok := classify(ev)
			if !ok {
				continue
			}
			now := time.Now()
			if last, dup := seen[change.Path]; dup && now.Sub(last) < w.debounce {
				continue
			}
			seen[change.Path] = now
			select {
			case w.Changes <- change:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// Only the latest error matters to the launcher.
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

func classify(ev fsnotify.Event) (Change, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return Change{}, false
	}
	switch strings.ToLower(filepath.Ext(ev.Name)) {
	case ".yaml", ".yml":
		return Change{Path: ev.Name, Tuning: filepath.Base(ev.Name) == TuningFile}, true
	case ".tengo":
		return Change{Path: ev.Name, Script: true}, true
	}
	return Change{}, false
}
