package entity

import (
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/levels"
)

// NewPlayerAt spawns a player whose feet rest at (x, y).
func (b *Builder) NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return b.Spawn(w, levels.Entity{Type: "player", X: x, Y: y})
}

// NewZombieAt spawns a zombie whose feet rest at (x, y).
func (b *Builder) NewZombieAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return b.Spawn(w, levels.Entity{Type: "zombie", X: x, Y: y})
}
