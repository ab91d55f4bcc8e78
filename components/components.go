package components

import "image/color"

// PositionComponent stores the entity's location in grid-cell units
// (not pixels).
type PositionComponent struct {
	X, Y float64
}

// RenderableComponent stores rendering information. Glyph must resolve as
// a key in the loaded glyph table, otherwise the entity is silently
// skipped when drawn.
type RenderableComponent struct {
	Glyph rune
	Color color.RGBA
}

// HealthComponent stores hit points. Current stays within [0, Max];
// decorative entities omit this component entirely.
type HealthComponent struct {
	Current int
	Max     int
}

// InventoryComponent stores carried item names and which slot is equipped.
type InventoryComponent struct {
	Items    []string
	Equipped int
}
