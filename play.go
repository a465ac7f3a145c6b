package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/shifty/levels"
	"github.com/milk9111/shifty/prefabs"
	"github.com/milk9111/shifty/storage"
)

func runPlay(cmd *cobra.Command, args []string) error {
	if flagLevel != "" {
		if _, err := levels.LoadLevelFromFS(flagLevel); err != nil {
			return fmt.Errorf("unknown level %q: %w", flagLevel, err)
		}
	}

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return fmt.Errorf("load tuning: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("scores will not be saved", "db", flagDBPath, "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	settings, err := storage.OpenSettings("shifty")
	if err != nil {
		log.Warn("settings unavailable, using defaults", "error", err)
		settings = storage.NewSettingsStore(nil)
	}

	watcher, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
	if err != nil {
		log.Debug("prefab hot reload disabled", "dir", prefabs.Dir, "error", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	game, err := NewGame(Config{
		Level:    flagLevel,
		Seed:     seed,
		Timer:    flagTimer,
		Debug:    flagDebug,
		Tuning:   tuning,
		Store:    store,
		Settings: settings,
		Assets:   os.DirFS(flagAssets),
		Watcher:  watcher,
	})
	if err != nil {
		return err
	}

	if flagBase {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("shifty")

	log.Info("starting", "level", game.level, "seed", seed)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
