package component

// Camera is the draw offset that keeps the player in view without showing
// past the level edges.
type Camera struct {
	OffsetX     float64
	OffsetY     float64
	LevelWidth  float64
	LevelHeight float64
}

var CameraComponent = NewComponent[Camera]()
