package generation

import "image/color"

// Glyphs used by the generator.
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
)

// Tile is one immutable grid cell.
type Tile struct {
	X, Y  int
	Glyph rune
	Color color.RGBA
}

// TileMap is the generated grid. It is populated once by Generate and
// read-only for the rest of the run.
type TileMap struct {
	Width  int
	Height int
	Tiles  []Tile
}

// Generate builds a width*height grid with '#' on the border and '.'
// everywhere else, all black. One tile per cell, no duplicates.
// Deterministic for a given size; non-positive dimensions yield an empty
// map.
func Generate(width, height int) *TileMap {
	if width <= 0 || height <= 0 {
		return &TileMap{}
	}

	black := color.RGBA{0, 0, 0, 255}
	tiles := make([]Tile, 0, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			tile := Tile{X: x, Y: y, Glyph: GlyphFloor, Color: black}
			if x == 0 || x == width-1 || y == 0 || y == height-1 {
				tile.Glyph = GlyphWall
			}
			tiles = append(tiles, tile)
		}
	}
	return &TileMap{Width: width, Height: height, Tiles: tiles}
}

// At returns the tile at (x, y). Callers must stay in bounds.
func (m *TileMap) At(x, y int) Tile {
	return m.Tiles[x*m.Height+y]
}
