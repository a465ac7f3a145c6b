package common

const (
	// ScreenWidth and ScreenHeight are the logical render size and the
	// horizontal walking bounds for every mover.
	ScreenWidth  = 1920
	ScreenHeight = 1080

	// FloorLimit is the lowest y any mover may reach.
	FloorLimit = 1664

	BaseWidth  = ScreenWidth
	BaseHeight = ScreenHeight
)
