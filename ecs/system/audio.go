package system

import (
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
)

// AudioPlayer plays named clips.
type AudioPlayer interface {
	Play(name string, volume float64)
	Stop(name string)
	IsPlaying(name string) bool
	// Channels is how many instances of name are currently playing.
	Channels(name string) int
}

// SoundSettings gates clips by name and scales their volume.
type SoundSettings interface {
	SoundEnabled(name string) bool
	Volume() float64
}

// AudioSystem drains the frame's sound queue into the player. It runs last
// so every request raised during the frame is heard.
type AudioSystem struct {
	Player   AudioPlayer
	Settings SoundSettings
}

func NewAudioSystem(player AudioPlayer, settings SoundSettings) *AudioSystem {
	return &AudioSystem{Player: player, Settings: settings}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.SoundQueueComponent.Kind(), func(_ ecs.Entity, q *component.SoundQueue) {
		requests := q.Drain()
		if a.Player == nil {
			return
		}
		for _, req := range requests {
			a.handle(req)
		}
	})
}

func (a *AudioSystem) handle(req component.SoundRequest) {
	if req.Stop {
		a.Player.Stop(req.Name)
		return
	}
	volume := req.Volume
	if a.Settings != nil {
		if !a.Settings.SoundEnabled(req.Name) {
			return
		}
		volume *= a.Settings.Volume()
	}
	if req.Once && a.Player.IsPlaying(req.Name) {
		return
	}
	if req.MaxChannels > 0 && a.Player.Channels(req.Name) > req.MaxChannels {
		a.Player.Stop(req.Name)
	}
	a.Player.Play(req.Name, volume)
}
