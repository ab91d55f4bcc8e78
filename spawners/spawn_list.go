package spawners

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnEntry describes one entity to create at initialization. Entries
// without hit points (max_hp == 0) are decorative: they get no Health
// component at all.
type SpawnEntry struct {
	Glyph string  `yaml:"glyph"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color"` // hex format, e.g. "#FF0000"
	HP    int     `yaml:"hp"`
	MaxHP int     `yaml:"max_hp"`
}

// SpawnList is the on-disk entity population for a run.
type SpawnList struct {
	Spawns []SpawnEntry `yaml:"spawns"`
}

// LoadSpawnList reads a YAML spawn list. A missing file is not an error:
// the built-in defaults are returned so the game can start without data
// files on disk.
func LoadSpawnList(path string) (*SpawnList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSpawnList(), nil
		}
		return nil, fmt.Errorf("read spawn list %s: %w", path, err)
	}
	var list SpawnList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse spawn list %s: %w", path, err)
	}
	for i, entry := range list.Spawns {
		if len([]rune(entry.Glyph)) != 1 {
			return nil, fmt.Errorf("spawn list %s: entry %d glyph %q is not a single rune", path, i, entry.Glyph)
		}
		if entry.HP < 0 || entry.MaxHP < 0 || entry.HP > entry.MaxHP {
			return nil, fmt.Errorf("spawn list %s: entry %d has hp %d/%d", path, i, entry.HP, entry.MaxHP)
		}
	}
	return &list, nil
}

// DefaultSpawnList mirrors the classic starting population: two goblins
// and one decorative item without health.
func DefaultSpawnList() *SpawnList {
	return &SpawnList{
		Spawns: []SpawnEntry{
			{Glyph: "g", X: 9, Y: 6, Color: "#FF0000", HP: 1, MaxHP: 1},
			{Glyph: "g", X: 2, Y: 4, Color: "#FF0000", HP: 1, MaxHP: 1},
			{Glyph: "%", X: 13, Y: 10, Color: "#800080"},
		},
	}
}

// ParseHexColor converts a "#RRGGBB" string to a color.RGBA.
func ParseHexColor(hex string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	if len(hex) != 7 || hex[0] != '#' {
		return c, fmt.Errorf("invalid hex color %q", hex)
	}
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, nil
}
