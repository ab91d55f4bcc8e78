package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Map     MapConfig     `toml:"map"`
	UI      UIConfig      `toml:"ui"`
	Assets  AssetsConfig  `toml:"assets"`
	Player  PlayerConfig  `toml:"player"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type MapConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type UIConfig struct {
	TileSize          int     `toml:"tile_size"`
	OffsetX           float64 `toml:"offset_x"`
	OffsetY           float64 `toml:"offset_y"`
	TitleOffsetY      float64 `toml:"title_offset_y"`
	AttributionStride float64 `toml:"attribution_stride"`
	HealthBarWidth    float64 `toml:"health_bar_width"`
	TextSize          float64 `toml:"text_size"`
	TitleSize         float64 `toml:"title_size"`
}

type AssetsConfig struct {
	TextFont    string `toml:"text_font"`
	TileFont    string `toml:"tile_font"`
	GlyphSource string `toml:"glyph_source"`
	SpawnList   string `toml:"spawn_list"`
}

type PlayerConfig struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML config file over the built-in defaults. A missing
// file is not an error: the game runs fine on defaults alone.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "GlyphRogue",
			Width:  800,
			Height: 600,
		},
		Map: MapConfig{
			Width:  20,
			Height: 15,
		},
		UI: UIConfig{
			TileSize:          24,
			OffsetX:           50,
			OffsetY:           150,
			TitleOffsetY:      40,
			AttributionStride: 30,
			HealthBarWidth:    100,
			TextSize:          20,
			TitleSize:         72,
		},
		Assets: AssetsConfig{
			TextFont:    "mononoki-Regular.ttf",
			TileFont:    "square.ttf",
			GlyphSource: "#@g.%",
			SpawnList:   "data/spawns.yaml",
		},
		Player: PlayerConfig{
			X: 5,
			Y: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
