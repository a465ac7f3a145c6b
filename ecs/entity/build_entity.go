package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/shifty/common"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
	"github.com/milk9111/shifty/levels"
	"github.com/milk9111/shifty/prefabs"
)

var ErrUnknownType = errors.New("entity: unknown spawn type")

// MaskSource hands out collision masks for sprite frames. Frames it does not
// know yield nil, which tests as a solid box.
type MaskSource interface {
	Mask(sheet, frame string) *component.Mask
}

// Builder assembles entities from level records and the prefab tables.
type Builder struct {
	Tuning     *prefabs.Tuning
	Specs      map[string]prefabs.EntityBuildSpec
	Masks      MaskSource
	GunUpgrade bool
}

// NewBuilder loads entities.yaml and pairs it with tuning.
func NewBuilder(tuning *prefabs.Tuning) (*Builder, error) {
	if tuning == nil {
		return nil, fmt.Errorf("entity: new builder: %w", prefabs.ErrInvalidTuning)
	}
	specs, err := prefabs.LoadEntityBuildSpecs()
	if err != nil {
		return nil, fmt.Errorf("entity: new builder: %w", err)
	}
	return &Builder{Tuning: tuning, Specs: specs}, nil
}

// RefreshMask points e's collider at the mask of its sprite's current frame.
// Without a mask source the collider keeps whatever mask it has.
func (b *Builder) RefreshMask(w *ecs.World, e ecs.Entity) {
	if b == nil || b.Masks == nil {
		return
	}
	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok || sprite.Sheet == "" {
		return
	}
	if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		col.Mask = b.Masks.Mask(sprite.Sheet, sprite.Frame)
	}
}

type spawnFn func(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error)

var spawnRegistry = map[string]spawnFn{
	"player":         spawnPlayer,
	"zombie":         spawnZombie,
	"obstacle":       spawnObstacle,
	"acid":           spawnAcid,
	"spikes":         spawnSpikes,
	"saw":            spawnSaw,
	"laser_machine":  spawnLaserMachine,
	"laser_beam":     spawnLaserBeam,
	"laser_receiver": spawnLaserReceiver,
	"door_switch":    spawnDoorSwitch,
	"door":           spawnDoor,
	"lever":          spawnLever,
	"item":           spawnLevelItem,
}

// Spawn builds the entity a level record describes.
func (b *Builder) Spawn(w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("entity: spawn %q: world is nil", rec.Type)
	}
	fn, ok := spawnRegistry[rec.Type]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, rec.Type)
	}
	e, err := fn(b, w, rec)
	if err != nil {
		return 0, fmt.Errorf("entity: spawn %q: %w", rec.Type, err)
	}
	return e, nil
}

// base creates an entity with body, collider, sprite and layer from the
// named entities.yaml entry. A non-zero size overrides the authored one.
func (b *Builder) base(w *ecs.World, kind string, pos cp.Vector, width, height float64) (ecs.Entity, error) {
	spec, ok := b.Specs[kind]
	if !ok {
		return 0, fmt.Errorf("no entities.yaml entry for %q", kind)
	}

	col := &component.Collider{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
		Anchor: parseAnchor(spec.Collider.Anchor),
		Radius: spec.Collider.Radius,
	}
	if width > 0 {
		col.Width = width
	}
	if height > 0 {
		col.Height = height
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Pos: pos}); err != nil {
		return discard(w, e, err)
	}
	if spec.Sprite.Sheet != "" {
		if b.Masks != nil {
			col.Mask = b.Masks.Mask(spec.Sprite.Sheet, spec.Sprite.Frame)
		}
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
			Sheet: spec.Sprite.Sheet,
			Frame: spec.Sprite.Frame,
		}); err != nil {
			return discard(w, e, err)
		}
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), col); err != nil {
		return discard(w, e, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Layer}); err != nil {
		return discard(w, e, err)
	}
	return e, nil
}

// discard destroys a half-built entity so a failed spawn leaves nothing behind.
func discard(w *ecs.World, e ecs.Entity, err error) (ecs.Entity, error) {
	ecs.DestroyEntity(w, e)
	return 0, err
}

func built(w *ecs.World, e ecs.Entity, err error) (ecs.Entity, error) {
	if err != nil {
		return discard(w, e, err)
	}
	return e, nil
}

func parseAnchor(s string) component.Anchor {
	switch s {
	case "top_left":
		return component.AnchorTopLeft
	case "center":
		return component.AnchorCenter
	default:
		return component.AnchorBottomLeft
	}
}

func topLeft(rec levels.Entity) cp.Vector {
	return cp.Vector{X: rec.X, Y: rec.Y}
}

func center(rec levels.Entity, w, h float64) cp.Vector {
	return cp.Vector{X: rec.X + w/2, Y: rec.Y + h/2}
}

// randRange draws from the inclusive [min, max] window.
func randRange(rng *rand.Rand, r prefabs.Range) int64 {
	if r[1] <= r[0] {
		return r[0]
	}
	return r[0] + rng.Int63n(r[1]-r[0]+1)
}

func spawnPlayer(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	t := b.Tuning
	e, err := b.base(w, "player", cp.Vector{X: rec.X, Y: rec.Y}, t.Player.Width, t.Player.Height)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Health:      t.Player.Health,
		FacingRight: true,
		CanShoot:    true,
		GunCooldown: t.Gun.Cooldown,
		GunUpgrade:  b.GunUpgrade,
	}); err != nil {
		return discard(w, e, err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return discard(w, e, err)
	}
	clip := t.Animation.PlayerIdle
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Name: "idle", Frames: clip.Frames}); err != nil {
		return discard(w, e, err)
	}
	return e, nil
}

func spawnZombie(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	t := b.Tuning
	e, err := b.base(w, "zombie", cp.Vector{X: rec.X, Y: rec.Y}, t.Zombie.Width, t.Zombie.Height)
	if err != nil {
		return 0, err
	}
	rng := w.Rand()
	z := &component.Zombie{
		Health: t.Zombie.Health,
		Damage: t.Zombie.Damage,
		Motion: component.ZombieWandering,
		Target: cp.Vector{
			X: float64(rng.Intn(int(t.Physics.ScreenWidth) + 1)),
			Y: float64(rng.Intn(common.ScreenHeight + 1)),
		},
		TargetInterval: randRange(rng, t.Zombie.TargetInterval),
	}
	z.FacingRight = z.Target.X >= rec.X
	if err := ecs.Add(w, e, component.ZombieComponent.Kind(), z); err != nil {
		return discard(w, e, err)
	}
	clip := t.Animation.ZombieIdle
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Name: "idle", Frames: clip.Frames}); err != nil {
		return discard(w, e, err)
	}
	return e, nil
}

func spawnObstacle(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	typ := component.ObstacleType(rec.Subtype)
	switch typ {
	case "":
		typ = component.ObstacleGround
	case component.ObstacleGround, component.ObstacleSawLimitUp, component.ObstacleSawLimitDown,
		component.ObstacleSawLimitLeft, component.ObstacleSawLimitRight:
	default:
		log.Warn("unknown obstacle subtype, it will block nothing", "subtype", rec.Subtype)
	}
	e, err := b.base(w, "obstacle", topLeft(rec), rec.W, rec.H)
	if err != nil {
		return 0, err
	}
	return built(w, e, ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{Type: typ}))
}

func (b *Builder) spawnHazard(w *ecs.World, kind string, rec levels.Entity, hazard component.Hazard) (ecs.Entity, error) {
	e, err := b.base(w, kind, topLeft(rec), rec.W, rec.H)
	if err != nil {
		return 0, err
	}
	return built(w, e, ecs.Add(w, e, component.HazardComponent.Kind(), &hazard))
}

func spawnAcid(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	return b.spawnHazard(w, "acid", rec, component.Hazard{
		Kind:     component.HazardAcid,
		Damage:   b.Tuning.Hazard.AcidDamage,
		Interval: b.Tuning.Hazard.IntervalMillis,
	})
}

func spawnSpikes(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	return b.spawnHazard(w, "spikes", rec, component.Hazard{
		Kind:     component.HazardSpikes,
		Damage:   b.Tuning.Hazard.SpikesDamage,
		Interval: b.Tuning.Hazard.IntervalMillis,
	})
}

func spawnSaw(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	t := b.Tuning
	spec := b.Specs["saw"]
	width, height := spec.Collider.Width, spec.Collider.Height
	if rec.W > 0 {
		width = rec.W
	}
	if rec.H > 0 {
		height = rec.H
	}

	motion := component.SawStatic
	switch rec.Subtype {
	case "vertical":
		motion = component.SawVertical
	case "horizontal":
		motion = component.SawHorizontal
	case "", "static":
	default:
		log.Warn("unknown saw subtype, saw will not move", "subtype", rec.Subtype)
	}

	e, err := b.base(w, "saw", center(rec, width, height), width, height)
	if err != nil {
		return 0, err
	}
	if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok && col.Radius == 0 {
		col.Radius = width / 2
	}
	if err := ecs.Add(w, e, component.SawComponent.Kind(), &component.Saw{Motion: motion, Speed: t.Hazard.SawSpeed}); err != nil {
		return discard(w, e, err)
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
		Kind:     component.HazardSaw,
		Damage:   t.Hazard.SawDamage,
		Interval: t.Hazard.IntervalMillis,
	}); err != nil {
		return discard(w, e, err)
	}
	return built(w, e, ecs.Add(w, e, component.HardenedComponent.Kind(), &component.Hardened{
		Health: t.Hazard.SawHealth,
		Points: t.Points.Saw,
	}))
}

func spawnLaserMachine(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	t := b.Tuning
	typ := component.LaserMachineType(rec.Subtype)
	m := &component.LaserMachine{
		Type:         typ,
		NextInterval: randRange(w.Rand(), t.Laser.Frequency),
	}
	switch typ {
	case component.LaserRight, component.LaserRightBullet:
		m.BulletOffset = t.Laser.BulletOffsetRight.V()
		m.Direction = cp.Vector{X: 1}
	case component.LaserLeft, component.LaserLeftBullet:
		m.BulletOffset = t.Laser.BulletOffsetLeft.V()
		m.Direction = cp.Vector{X: -1}
	case component.LaserDownRed, component.LaserDownBlue:
		m.Direction = cp.Vector{Y: 1}
	default:
		log.Warn("unknown laser machine type, it will stay idle", "type", rec.Subtype)
	}

	e, err := b.base(w, "laser_machine", topLeft(rec), rec.W, rec.H)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.LaserMachineComponent.Kind(), m); err != nil {
		return discard(w, e, err)
	}
	return built(w, e, ecs.Add(w, e, component.HardenedComponent.Kind(), &component.Hardened{
		Health:          t.Laser.MachineHealth,
		Points:          t.Points.LaserMachine,
		ExplosionOffset: t.Laser.ExplosionOffset.V(),
	}))
}

func spawnLaserBeam(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	color := component.BeamColor(rec.Subtype)
	if _, ok := color.MachineType(); !ok {
		log.Warn("unknown laser beam color, beam stays unpowered", "color", rec.Subtype)
	}
	e, err := b.spawnHazard(w, "laser_beam", rec, component.Hazard{
		Kind:   component.HazardLaserBeam,
		Damage: b.Tuning.Hazard.LaserDamage,
	})
	if err != nil {
		return 0, err
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Frame = "laser_beam_" + rec.Subtype
	}
	return built(w, e, ecs.Add(w, e, component.LaserBeamComponent.Kind(), &component.LaserBeam{Color: color}))
}

func spawnLaserReceiver(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	e, err := b.base(w, "laser_receiver", topLeft(rec), rec.W, rec.H)
	if err != nil {
		return 0, err
	}
	return built(w, e, ecs.Add(w, e, component.LaserReceiverComponent.Kind(), &component.LaserReceiver{Orientation: rec.Subtype}))
}

func spawnDoorSwitch(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	e, err := b.base(w, "door_switch", topLeft(rec), rec.W, rec.H)
	if err != nil {
		return 0, err
	}
	return built(w, e, ecs.Add(w, e, component.DoorSwitchComponent.Kind(), &component.DoorSwitch{}))
}

func spawnDoor(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	typ := component.DoorType(rec.Subtype)
	switch typ {
	case component.DoorLevelUp, component.DoorDisabled:
	default:
		log.Warn("unknown door type, door stays disabled", "type", rec.Subtype)
		typ = component.DoorDisabled
	}
	e, err := b.base(w, "door", topLeft(rec), rec.W, rec.H)
	if err != nil {
		return 0, err
	}
	return built(w, e, ecs.Add(w, e, component.DoorComponent.Kind(), &component.Door{Type: typ}))
}

func spawnLever(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	color := component.BeamColor(rec.Subtype)
	if _, ok := color.MachineType(); !ok {
		log.Warn("unknown lever color, lever controls nothing", "color", rec.Subtype)
	}
	e, err := b.base(w, "lever", topLeft(rec), rec.W, rec.H)
	if err != nil {
		return 0, err
	}
	return built(w, e, ecs.Add(w, e, component.LeverComponent.Kind(), &component.Lever{Color: color}))
}

func spawnLevelItem(b *Builder, w *ecs.World, rec levels.Entity) (ecs.Entity, error) {
	typ := component.ItemType(rec.Subtype)
	switch typ {
	case component.ItemHealth, component.ItemXP, component.ItemCoin, component.ItemKey:
	default:
		return 0, fmt.Errorf("%w: item %q", ErrUnknownType, rec.Subtype)
	}
	spec := b.Specs["item"]
	return b.SpawnItem(w, typ, center(rec, spec.Collider.Width, spec.Collider.Height))
}
