package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
)

// KeySource answers whether a key is held right now.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// KeyBindings maps each control to its key.
type KeyBindings struct {
	Left     ebiten.Key
	Right    ebiten.Key
	Jump     ebiten.Key
	Slide    ebiten.Key
	Shoot    ebiten.Key
	Interact ebiten.Key
	Open     ebiten.Key
	Pause    ebiten.Key
}

func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:     ebiten.KeyA,
		Right:    ebiten.KeyD,
		Jump:     ebiten.KeyW,
		Slide:    ebiten.KeyS,
		Shoot:    ebiten.KeySpace,
		Interact: ebiten.KeyE,
		Open:     ebiten.KeyQ,
		Pause:    ebiten.KeyEscape,
	}
}

// ebitenKeys polls the keyboard and mirrors each binding onto any connected
// standard gamepad.
type ebitenKeys struct {
	pad map[ebiten.Key]ebiten.StandardGamepadButton
}

func newEbitenKeys(b KeyBindings) ebitenKeys {
	return ebitenKeys{pad: map[ebiten.Key]ebiten.StandardGamepadButton{
		b.Left:     ebiten.StandardGamepadButtonLeftLeft,
		b.Right:    ebiten.StandardGamepadButtonLeftRight,
		b.Jump:     ebiten.StandardGamepadButtonRightBottom,
		b.Slide:    ebiten.StandardGamepadButtonRightRight,
		b.Shoot:    ebiten.StandardGamepadButtonRightLeft,
		b.Interact: ebiten.StandardGamepadButtonRightTop,
		b.Open:     ebiten.StandardGamepadButtonFrontTopRight,
		b.Pause:    ebiten.StandardGamepadButtonCenterRight,
	}}
}

func (k ebitenKeys) IsKeyPressed(key ebiten.Key) bool {
	if ebiten.IsKeyPressed(key) {
		return true
	}
	button, ok := k.pad[key]
	if !ok {
		return false
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadButtonPressed(id, button) {
			return true
		}
	}
	return false
}

// InputSystem polls the bindings once per frame and writes the result into
// every Input component. Press and release edges come from comparing with
// the previous frame.
type InputSystem struct {
	Keys     KeySource
	Bindings KeyBindings

	prevJump  bool
	prevSlide bool
}

func NewInputSystem(bindings KeyBindings) *InputSystem {
	return &InputSystem{Keys: newEbitenKeys(bindings), Bindings: bindings}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.Keys == nil {
		return
	}

	b := i.Bindings
	jump := i.Keys.IsKeyPressed(b.Jump)
	slide := i.Keys.IsKeyPressed(b.Slide)

	state := component.Input{
		Left:         i.Keys.IsKeyPressed(b.Left),
		Right:        i.Keys.IsKeyPressed(b.Right),
		Shoot:        i.Keys.IsKeyPressed(b.Shoot),
		JumpPressed:  jump && !i.prevJump,
		JumpReleased: !jump && i.prevJump,
		SlidePressed: slide && !i.prevSlide,
		Interact:     i.Keys.IsKeyPressed(b.Interact),
		Open:         i.Keys.IsKeyPressed(b.Open),
		Pause:        i.Keys.IsKeyPressed(b.Pause),
	}
	i.prevJump = jump
	i.prevSlide = slide

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = state
	})
}
