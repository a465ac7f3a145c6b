package system

import (
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/prefabs"
)

// InteractiveSystem drives door switches, level-up doors and levers. Each
// transition needs the player overlapping the object and a control held.
type InteractiveSystem struct {
	Tuning *prefabs.Tuning
}

func NewInteractiveSystem(t *prefabs.Tuning) *InteractiveSystem {
	return &InteractiveSystem{Tuning: t}
}

func (s *InteractiveSystem) Update(w *ecs.World) {
	if w == nil || s.Tuning == nil {
		return
	}
	ref, hasPlayer := playerOf(w)
	sounds := soundsOf(w)

	s.switches(w, ref, hasPlayer, sounds)
	s.doors(w, ref, hasPlayer, sounds)
	s.levers(w, ref, hasPlayer, sounds)
}

func (s *InteractiveSystem) touching(w *ecs.World, e ecs.Entity, ref playerRef) bool {
	p, ok := placedOf(w, e)
	return ok && overlaps(playerPlaced(ref), p)
}

func setFrame(w *ecs.World, e ecs.Entity, frame string) {
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Frame = frame
	}
}

// switches: the key is consumed on the single locked -> unlocked transition.
// Without a key every held frame replays the failure sound.
func (s *InteractiveSystem) switches(w *ecs.World, ref playerRef, hasPlayer bool, sounds *component.SoundQueue) {
	unlocked := false
	ecs.ForEach(w, component.DoorSwitchComponent.Kind(), func(e ecs.Entity, ds *component.DoorSwitch) {
		if hasPlayer && !ds.Unlocked && ref.Input.Interact && s.touching(w, e, ref) {
			if ref.Player.HasKey {
				ds.Unlocked = true
				ref.Player.HasKey = false
				ref.Player.AddPoints(s.Tuning.Points.DoorSwitch)
				sounds.Play(SoundSwitchPress)
				setFrame(w, e, "door_switch_enabled")
				w.Events().Push(ecs.Event{Type: ecs.EventSwitchUnlocked, Entity: e})
			} else {
				sounds.Play(SoundSwitchFail)
			}
		}
		unlocked = unlocked || ds.Unlocked
	})
	if !unlocked {
		return
	}
	ecs.ForEach(w, component.DoorComponent.Kind(), func(e ecs.Entity, d *component.Door) {
		if d.Type == component.DoorLevelUp && !d.Unlocked {
			d.Unlocked = true
			setFrame(w, e, "door_unlocked")
		}
	})
}

func (s *InteractiveSystem) doors(w *ecs.World, ref playerRef, hasPlayer bool, sounds *component.SoundQueue) {
	session := sessionOf(w)
	if session != nil {
		session.LevelUp = false
	}
	alive := hasPlayer && ref.Player.Health > 0

	ecs.ForEach(w, component.DoorComponent.Kind(), func(e ecs.Entity, d *component.Door) {
		if d.Type != component.DoorLevelUp || !d.Unlocked || !alive || !s.touching(w, e, ref) {
			return
		}
		if !d.Open {
			if ref.Input.Interact {
				d.Open = true
				sounds.Play(SoundDoorOpen)
				setFrame(w, e, "door_open")
				w.Events().Push(ecs.Event{Type: ecs.EventDoorOpened, Entity: e})
			}
			return
		}
		if !ref.Input.Open || session == nil {
			return
		}
		session.LevelUp = true
		if !d.Entered {
			d.Entered = true
			ref.Player.AddPoints(s.Tuning.Points.NextLevel)
			sounds.Play(SoundLevelComplete)
			w.Events().Push(ecs.Event{Type: ecs.EventLevelUp, Entity: e, Data: ref.Player.Score})
		}
	})
}

// levers switch off every machine of the lever's color and remove the beams
// it fed. A pull is final even when nothing matched.
func (s *InteractiveSystem) levers(w *ecs.World, ref playerRef, hasPlayer bool, sounds *component.SoundQueue) {
	if !hasPlayer || !ref.Input.Interact {
		return
	}
	ecs.ForEach(w, component.LeverComponent.Kind(), func(e ecs.Entity, lever *component.Lever) {
		if lever.Pulled || !s.touching(w, e, ref) {
			return
		}
		lever.Pulled = true
		sounds.Play(SoundLeverPull)
		setFrame(w, e, "lever_off")

		machineType, ok := lever.Color.MachineType()
		if ok {
			ecs.ForEach(w, component.LaserMachineComponent.Kind(), func(_ ecs.Entity, m *component.LaserMachine) {
				if m.Type != machineType {
					return
				}
				m.Shooting = false
				ecs.ForEach(w, component.LaserBeamComponent.Kind(), func(be ecs.Entity, beam *component.LaserBeam) {
					if beam.Color == lever.Color {
						beam.Powered = false
						ecs.DestroyEntity(w, be)
					}
				})
			})
		}
		w.Events().Push(ecs.Event{Type: ecs.EventLeverPulled, Entity: e, Data: lever.Color})
	})
}
