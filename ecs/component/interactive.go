package component

// DoorSwitch unlocks level-up doors once the player brings the key.
type DoorSwitch struct {
	Unlocked bool
}

var DoorSwitchComponent = NewComponent[DoorSwitch]()

type DoorType string

const (
	DoorLevelUp  DoorType = "level_up"
	DoorDisabled DoorType = "disabled"
)

// Door goes locked -> unlocked -> open. Only level-up doors change state.
type Door struct {
	Type     DoorType
	Unlocked bool
	Open     bool
	// Entered is set the first frame the player walks through; the level
	// bonus is paid once.
	Entered bool
}

var DoorComponent = NewComponent[Door]()

// Lever switches off the laser pair of its color. Pulling is one-way.
type Lever struct {
	Color  BeamColor
	Pulled bool
}

var LeverComponent = NewComponent[Lever]()
