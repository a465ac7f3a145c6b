package component

// Input stores per-frame control state for the player.
type Input struct {
	Left  bool
	Right bool
	Shoot bool

	JumpPressed  bool
	JumpReleased bool
	SlidePressed bool

	Interact bool
	Open     bool
	Pause    bool
}

var InputComponent = NewComponent[Input]()
