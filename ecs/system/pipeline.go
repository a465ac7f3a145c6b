package system

import (
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/entity"
)

// Deps are the collaborators the frame pipeline talks to. Only Builder is
// required: a nil key source polls ebiten, zero bindings mean the defaults,
// a nil audio player stays silent and a nil recorder keeps scores in memory.
type Deps struct {
	Builder  *entity.Builder
	Keys     KeySource
	Bindings KeyBindings
	Audio    AudioPlayer
	Sounds   SoundSettings
	Scores   ScoreRecorder
}

// Register installs every system in frame order: input, effects, player,
// zombies, projectiles, hazards, interactive objects, items, then the level
// clock, camera, score ledger and audio.
func Register(w *ecs.World, deps Deps) *InputSystem {
	t := deps.Builder.Tuning
	if deps.Bindings == (KeyBindings{}) {
		deps.Bindings = DefaultKeyBindings()
	}
	input := NewInputSystem(deps.Bindings)
	if deps.Keys != nil {
		input.Keys = deps.Keys
	}

	for _, s := range []ecs.System{
		input,
		NewEffectSystem(t),
		NewPlayerSystem(deps.Builder),
		NewZombieSystem(deps.Builder),
		NewBulletSystem(deps.Builder),
		NewLaserBulletSystem(),
		NewSawSystem(t),
		NewLaserMachineSystem(deps.Builder),
		NewLaserBeamSystem(),
		NewInteractiveSystem(t),
		NewItemSystem(t),
		NewTimerSystem(t),
		NewCameraSystem(t),
		NewScoreSystem(deps.Scores),
		NewAudioSystem(deps.Audio, deps.Sounds),
	} {
		w.AddSystem(s)
	}
	return input
}
