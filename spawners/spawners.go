// Package spawners creates the initial entity population. All entities
// are created here at initialization; the core never spawns mid-session.
package spawners

import (
	"fmt"
	"image/color"

	"glyphrogue/components"
	"glyphrogue/ecs"
	"glyphrogue/world"
)

// SpawnAll creates one entity per spawn list entry. Every entity gets
// Position and Renderable; Health only when the entry carries hit points.
// Returns the number of entities created.
func SpawnAll(w *world.World, list *SpawnList) (int, error) {
	for i, entry := range list.Spawns {
		clr, err := ParseHexColor(entry.Color)
		if err != nil {
			return i, fmt.Errorf("spawn entry %d: %w", i, err)
		}

		id := w.ECS.Create()
		w.Positions.Insert(id, components.PositionComponent{X: entry.X, Y: entry.Y})
		w.Renderables.Insert(id, components.RenderableComponent{
			Glyph: []rune(entry.Glyph)[0],
			Color: clr,
		})
		if entry.MaxHP > 0 {
			w.Healths.Insert(id, components.HealthComponent{Current: entry.HP, Max: entry.MaxHP})
		}
	}
	return len(list.Spawns), nil
}

// SpawnPlayer creates the player entity with the full component set
// {Position, Renderable, Health, Inventory} and designates it on the
// world. Called exactly once at initialization.
func SpawnPlayer(w *world.World, x, y float64) ecs.EntityID {
	id := w.ECS.Create()
	w.Positions.Insert(id, components.PositionComponent{X: x, Y: y})
	w.Renderables.Insert(id, components.RenderableComponent{
		Glyph: '@',
		Color: color.RGBA{0, 0, 255, 255},
	})
	w.Healths.Insert(id, components.HealthComponent{Current: 3, Max: 5})
	w.Inventories.Insert(id, components.InventoryComponent{
		Items:    []string{"sword", "shield"},
		Equipped: 0,
	})
	w.Player = id
	return id
}
