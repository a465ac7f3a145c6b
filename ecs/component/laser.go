package component

import "github.com/jakecoffman/cp"

// LaserMachineType is the authored subtype of a laser machine.
type LaserMachineType string

const (
	LaserDownRed     LaserMachineType = "down red"
	LaserDownBlue    LaserMachineType = "down blue"
	LaserLeft        LaserMachineType = "left"
	LaserRight       LaserMachineType = "right"
	LaserLeftBullet  LaserMachineType = "left_bullet"
	LaserRightBullet LaserMachineType = "right_bullet"
)

// Fires reports whether the machine shoots laser bullets.
func (t LaserMachineType) Fires() bool {
	return t == LaserLeftBullet || t == LaserRightBullet
}

// BeamColor is the beam a machine of this type feeds, if any.
func (t LaserMachineType) BeamColor() (BeamColor, bool) {
	switch t {
	case LaserDownRed:
		return BeamRed, true
	case LaserDownBlue:
		return BeamBlue, true
	case LaserLeft:
		return BeamGreen, true
	case LaserRight:
		return BeamYellow, true
	default:
		return "", false
	}
}

type LaserMachine struct {
	Type         LaserMachineType
	Shooting     bool
	LastShot     int64
	NextInterval int64
	BulletOffset cp.Vector
	Direction    cp.Vector
}

var LaserMachineComponent = NewComponent[LaserMachine]()

// BeamColor names a beam and the lever that controls it.
type BeamColor string

const (
	BeamRed    BeamColor = "red"
	BeamBlue   BeamColor = "blue"
	BeamGreen  BeamColor = "green"
	BeamYellow BeamColor = "yellow"
)

// MachineType is the machine subtype that powers a beam of this color.
func (c BeamColor) MachineType() (LaserMachineType, bool) {
	switch c {
	case BeamRed:
		return LaserDownRed, true
	case BeamBlue:
		return LaserDownBlue, true
	case BeamGreen:
		return LaserLeft, true
	case BeamYellow:
		return LaserRight, true
	default:
		return "", false
	}
}

type LaserBeam struct {
	Color BeamColor
	// Powered is false when no matching machine exists; the beam is inert.
	Powered bool
}

var LaserBeamComponent = NewComponent[LaserBeam]()

// LaserReceiver absorbs laser bullets.
type LaserReceiver struct {
	Orientation string
}

var LaserReceiverComponent = NewComponent[LaserReceiver]()
