package component

// HazardKind tags what a hazard is so systems can route player contact.
type HazardKind int

const (
	HazardAcid HazardKind = iota
	HazardSpikes
	HazardSaw
	HazardLaserBeam
)

func (k HazardKind) String() string {
	switch k {
	case HazardAcid:
		return "acid"
	case HazardSpikes:
		return "spikes"
	case HazardSaw:
		return "saw"
	case HazardLaserBeam:
		return "laser"
	default:
		return "unknown"
	}
}

// Hazard deals Damage on contact at most once per Interval milliseconds.
// The first contact always lands.
type Hazard struct {
	Kind        HazardKind
	Damage      int
	Interval    int64
	LastAttack  int64
	HasAttacked bool
}

var HazardComponent = NewComponent[Hazard]()

// TryAttack reports whether the hazard may strike at now and, if so, records
// the strike.
func (h *Hazard) TryAttack(now int64) bool {
	if h == nil {
		return false
	}
	if h.HasAttacked && now-h.LastAttack < h.Interval {
		return false
	}
	h.HasAttacked = true
	h.LastAttack = now
	return true
}
