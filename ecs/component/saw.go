package component

// SawMotion is the authored travel axis of a saw.
type SawMotion int

const (
	SawStatic SawMotion = iota
	SawVertical
	SawHorizontal
)

type Saw struct {
	Motion   SawMotion
	Speed    float64
	Reversed bool
	// Rotation is decorative, in degrees.
	Rotation float64
	LastRot  int64
}

var SawComponent = NewComponent[Saw]()
