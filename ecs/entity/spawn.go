package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/ecs/component"
)

// SpawnItem places a pickup centered on pos.
func (b *Builder) SpawnItem(w *ecs.World, typ component.ItemType, pos cp.Vector) (ecs.Entity, error) {
	e, err := b.base(w, "item", pos, 0, 0)
	if err != nil {
		return 0, err
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Frame = string(typ)
		if typ == component.ItemCoin {
			sprite.Frame = "coin_0"
		}
	}
	if err := ecs.Add(w, e, component.ItemComponent.Kind(), &component.Item{
		Type:      typ,
		Origin:    pos,
		Direction: 1,
	}); err != nil {
		return discard(w, e, err)
	}
	if typ == component.ItemCoin {
		return built(w, e, ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
			Name:   "coin",
			Frames: b.Tuning.Item.CoinFrames,
		}))
	}
	return e, nil
}

// SpawnBullet fires a player bullet centered on pos.
func (b *Builder) SpawnBullet(w *ecs.World, pos cp.Vector, facingRight bool, damage, hazardHit int) (ecs.Entity, error) {
	t := b.Tuning
	e, err := b.base(w, "bullet", pos, t.Bullet.Width, t.Bullet.Height)
	if err != nil {
		return 0, fmt.Errorf("entity: spawn bullet: %w", err)
	}
	dir := cp.Vector{X: 1}
	if !facingRight {
		dir.X = -1
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.FlipX = !facingRight
	}
	if err := ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{
		Direction: dir,
		Speed:     t.Bullet.Speed,
		Damage:    damage,
		HazardHit: hazardHit,
		SpawnTime: w.Now(),
		Lifetime:  t.Bullet.LifetimeMillis,
	}); err != nil {
		return discard(w, e, err)
	}
	return built(w, e, ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Name:       "bullet",
		Frames:     t.Animation.BulletSpin.Frames,
		LastUpdate: w.Now(),
	}))
}

// SpawnLaserBullet fires a machine bullet centered on pos.
func (b *Builder) SpawnLaserBullet(w *ecs.World, pos, dir cp.Vector) (ecs.Entity, error) {
	t := b.Tuning
	e, err := b.base(w, "laser_bullet", pos, t.Laser.BulletSize, t.Laser.BulletSize)
	if err != nil {
		return 0, fmt.Errorf("entity: spawn laser bullet: %w", err)
	}
	return built(w, e, ecs.Add(w, e, component.LaserBulletComponent.Kind(), &component.LaserBullet{
		Direction: dir,
		Speed:     t.Laser.BulletSpeed,
		Damage:    t.Laser.BulletDamage,
		SpawnTime: w.Now(),
	}))
}

// SpawnMuzzleFlash shows a short flash at the barrel.
func (b *Builder) SpawnMuzzleFlash(w *ecs.World, pos cp.Vector, facingRight bool) (ecs.Entity, error) {
	t := b.Tuning
	e, err := b.base(w, "muzzle_flash", pos, 0, 0)
	if err != nil {
		return 0, err
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.FlipX = !facingRight
		sprite.Frame = fmt.Sprintf("muzzle_%d", w.Rand().Intn(max(t.Effect.FlashFrames, 1)))
	}
	if err := ecs.Add(w, e, component.EffectComponent.Kind(), &component.Effect{Kind: component.EffectMuzzleFlash}); err != nil {
		return discard(w, e, err)
	}
	return built(w, e, ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{SpawnTime: w.Now(), Millis: t.Effect.FlashMillis}))
}

// SpawnExplosion plays the explosion clip centered on pos. When bound to the
// player, its end triggers game over.
func (b *Builder) SpawnExplosion(w *ecs.World, pos cp.Vector, boundToPlayer bool) (ecs.Entity, error) {
	t := b.Tuning
	e, err := b.base(w, "explosion", pos, 0, 0)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.EffectComponent.Kind(), &component.Effect{
		Kind:          component.EffectExplosion,
		BoundToPlayer: boundToPlayer,
	}); err != nil {
		return discard(w, e, err)
	}
	if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{SpawnTime: w.Now(), Millis: t.Effect.ExplosionMillis}); err != nil {
		return discard(w, e, err)
	}
	return built(w, e, ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Name:       "explosion",
		Frames:     t.Effect.ExplosionFrames,
		LastUpdate: w.Now(),
	}))
}

// SpawnSplat leaves a blood splat. It never expires.
func (b *Builder) SpawnSplat(w *ecs.World, pos cp.Vector, flip bool) (ecs.Entity, error) {
	variant := w.Rand().Intn(max(b.Tuning.Effect.SplatVariants, 1))
	e, err := b.base(w, "splat", pos, 0, 0)
	if err != nil {
		return 0, err
	}
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Frame = fmt.Sprintf("splat_%d", variant)
		sprite.FlipX = flip
	}
	return built(w, e, ecs.Add(w, e, component.EffectComponent.Kind(), &component.Effect{Kind: component.EffectSplat, Variant: variant}))
}
