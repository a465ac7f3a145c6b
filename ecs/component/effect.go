package component

type EffectKind int

const (
	EffectMuzzleFlash EffectKind = iota
	EffectExplosion
	EffectSplat
)

// Effect is a purely visual entity. An explosion bound to the player ends the
// game when it finishes.
type Effect struct {
	Kind          EffectKind
	Variant       int
	BoundToPlayer bool
}

var EffectComponent = NewComponent[Effect]()
