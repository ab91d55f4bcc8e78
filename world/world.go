// Package world wires the entity registry and the typed component tables
// into one owning context that is passed explicitly to the update and
// render passes each frame. There is no ambient singleton.
package world

import (
	"glyphrogue/components"
	"glyphrogue/ecs"
	"glyphrogue/generation"
)

// World owns every component table, the entity registry behind them, the
// immutable tile map, and the designated player entity. The storage
// discipline per component type is fixed here: Position and Renderable are
// dense because nearly every entity carries them, Health and Inventory are
// sparse because decorative entities omit them.
type World struct {
	ECS *ecs.World

	Positions   *ecs.DenseTable[components.PositionComponent]
	Renderables *ecs.DenseTable[components.RenderableComponent]
	Healths     *ecs.SparseTable[components.HealthComponent]
	Inventories *ecs.SparseTable[components.InventoryComponent]

	Map *generation.TileMap

	// Player is set once at initialization and stays valid for the
	// lifetime of the World.
	Player ecs.EntityID
}

// New creates an empty world over the given map.
func New(m *generation.TileMap) *World {
	registry := ecs.NewWorld()
	return &World{
		ECS:         registry,
		Positions:   ecs.NewDenseTable[components.PositionComponent](registry),
		Renderables: ecs.NewDenseTable[components.RenderableComponent](registry),
		Healths:     ecs.NewSparseTable[components.HealthComponent](registry),
		Inventories: ecs.NewSparseTable[components.InventoryComponent](registry),
		Map:         m,
	}
}

// Maintain applies deferred entity destruction. Runs once per frame, after
// the update pass and before the next frame's joins.
func (w *World) Maintain() {
	w.ECS.Maintain()
}
