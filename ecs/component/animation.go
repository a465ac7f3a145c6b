package component

// Animation is a looping frame counter driven by the frame clock.
type Animation struct {
	Name       string
	Frame      int
	Frames     int
	LastUpdate int64
}

var AnimationComponent = NewComponent[Animation]()

// Play switches to name without resetting the frame clock, matching how
// clips hand over mid-cycle.
func (a *Animation) Play(name string, frames int) {
	if a == nil || a.Name == name {
		return
	}
	a.Name = name
	a.Frames = frames
	if a.Frames > 0 {
		a.Frame %= a.Frames
	} else {
		a.Frame = 0
	}
}

// Advance steps one frame when more than interval ms passed since the last
// step and reports whether it did.
func (a *Animation) Advance(now, interval int64) bool {
	if a == nil || now-a.LastUpdate <= interval {
		return false
	}
	a.LastUpdate = now
	if a.Frames > 0 {
		a.Frame = (a.Frame + 1) % a.Frames
	}
	return true
}

// Step plays name and advances it in one go when interval has elapsed. Clips
// checked later in the same frame see the refreshed clock and stay put.
func (a *Animation) Step(now, interval int64, name string, frames int) bool {
	if a == nil || now-a.LastUpdate <= interval {
		return false
	}
	a.Play(name, frames)
	return a.Advance(now, interval)
}

// Restart jumps to the first frame of name.
func (a *Animation) Restart(name string, frames int) {
	if a == nil {
		return
	}
	a.Name = name
	a.Frames = frames
	a.Frame = 0
}
