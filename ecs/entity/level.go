package entity

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/levels"
)

var ErrNoPlayer = errors.New("entity: level has no player")

// Carry is the player state kept across a level change.
type Carry struct {
	Health int
	Score  int
}

// LevelOptions are launcher inputs that are not part of the level file.
type LevelOptions struct {
	// Carry is nil on a fresh run.
	Carry     *Carry
	HighScore int
	// TimerSeconds overrides the level countdown when > 0.
	TimerSeconds int
	// NowMillis seeds the countdown clock.
	NowMillis int64
}

// LoadLevelToWorld spawns every record of lvl plus the session singleton and
// returns the player entity. Unknown record types are skipped with a warning.
func (b *Builder) LoadLevelToWorld(w *ecs.World, lvl *levels.Level, opts LevelOptions) (ecs.Entity, error) {
	if w == nil || lvl == nil {
		return 0, fmt.Errorf("entity: load level: world or level is nil")
	}

	seconds := lvl.Timer
	if seconds <= 0 {
		seconds = b.Tuning.Timer.DefaultSeconds
	}
	if opts.TimerSeconds > 0 {
		seconds = opts.TimerSeconds
	}
	session := ecs.CreateEntity(w)
	if err := ecs.Add(w, session, component.SessionComponent.Kind(), &component.Session{
		Level:        lvl.Name,
		TimerSeconds: seconds,
		LastTick:     opts.NowMillis,
		HighScore:    opts.HighScore,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, session, component.CameraComponent.Kind(), &component.Camera{
		LevelWidth:  float64(lvl.Width),
		LevelHeight: float64(lvl.Height),
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, session, component.SoundQueueComponent.Kind(), &component.SoundQueue{}); err != nil {
		return 0, err
	}

	var player ecs.Entity
	players := 0
	for _, rec := range lvl.Entities {
		e, err := b.Spawn(w, rec)
		if errors.Is(err, ErrUnknownType) {
			log.Warn("skipping level record", "level", lvl.Name, "error", err)
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("entity: load level %s: %w", lvl.Name, err)
		}
		if rec.Type == "player" {
			players++
			if players > 1 {
				log.Warn("extra player record ignored", "level", lvl.Name)
				ecs.DestroyEntity(w, e)
				continue
			}
			player = e
		}
	}
	if players == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoPlayer, lvl.Name)
	}

	PowerBeams(w)

	if opts.Carry != nil {
		if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
			p.KeepHealth(opts.Carry.Health, b.Tuning.Player.Health)
			p.KeepScore(opts.Carry.Score)
		}
	}

	log.Debug("level loaded", "level", lvl.Name, "entities", len(lvl.Entities), "timer", seconds)
	return player, nil
}

// PowerBeams marks each beam powered when a machine of the matching type
// exists. Beams without a machine stay inert.
func PowerBeams(w *ecs.World) {
	machines := make(map[component.LaserMachineType]bool)
	ecs.ForEach(w, component.LaserMachineComponent.Kind(), func(_ ecs.Entity, m *component.LaserMachine) {
		machines[m.Type] = true
	})
	ecs.ForEach(w, component.LaserBeamComponent.Kind(), func(_ ecs.Entity, beam *component.LaserBeam) {
		want, ok := beam.Color.MachineType()
		beam.Powered = ok && machines[want]
		if !beam.Powered {
			log.Warn("laser beam has no machine", "color", beam.Color)
		}
	})
}
