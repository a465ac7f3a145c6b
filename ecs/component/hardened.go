package component

import "github.com/jakecoffman/cp"

// Hardened is a target that absorbs several bullet hits before breaking.
type Hardened struct {
	Health   int
	TimesHit int
	Points   int
	// ExplosionOffset is added to the body position when it breaks.
	ExplosionOffset cp.Vector
	Destroyed       bool
}

var HardenedComponent = NewComponent[Hardened]()

// Hit adds amount to the times-hit counter and reports whether this hit broke
// the target. A broken target never reports breaking again.
func (h *Hardened) Hit(amount int) bool {
	if h == nil || h.Destroyed {
		return false
	}
	h.TimesHit += amount
	if h.TimesHit >= h.Health {
		h.Destroyed = true
		return true
	}
	return false
}
