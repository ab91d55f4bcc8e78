package systems

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"glyphrogue/config"
)

// Assets holds the glyph tilemap and the text font, plus a cache of
// rendered text images keyed by content and style. It satisfies
// AssetSource. Accessed from the frame loop only.
type Assets struct {
	glyphs    map[rune]*ebiten.Image
	textFont  *text.GoTextFaceSource
	textCache map[textKey]*ebiten.Image
}

type textKey struct {
	s    string
	size float64
	clr  color.RGBA
}

// Glyph returns the image for r, or false when r is not in the loaded
// glyph table.
func (a *Assets) Glyph(r rune) (Texture, bool) {
	img, ok := a.glyphs[r]
	if !ok {
		return nil, false
	}
	return img, true
}

// Text renders s with the text font at the given size and color, caching
// the result for subsequent frames.
func (a *Assets) Text(s string, size float64, clr color.RGBA) (Texture, bool) {
	key := textKey{s: s, size: size, clr: clr}
	if img, ok := a.textCache[key]; ok {
		return img, true
	}

	face := &text.GoTextFace{Source: a.textFont, Size: size}
	w, h := text.Measure(s, face, 0)
	if w <= 0 || h <= 0 {
		return nil, false
	}
	img := ebiten.NewImage(int(math.Ceil(w)), int(math.Ceil(h)))
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, s, face, op)

	a.textCache[key] = img
	return img, true
}

// LoadAssets reads both fonts and builds the glyph-to-image table by
// rendering each rune of the glyph source string into a tile-sized image.
// Glyphs render white so draw-time tinting multiplies cleanly.
func LoadAssets(cfg *config.Config) (*Assets, error) {
	textFont, err := loadFontSource(cfg.Assets.TextFont)
	if err != nil {
		return nil, err
	}
	tileFont, err := loadFontSource(cfg.Assets.TileFont)
	if err != nil {
		return nil, err
	}

	tile := cfg.UI.TileSize
	face := &text.GoTextFace{Source: tileFont, Size: float64(tile)}
	glyphs := make(map[rune]*ebiten.Image, len(cfg.Assets.GlyphSource))
	for _, r := range cfg.Assets.GlyphSource {
		img := ebiten.NewImage(tile, tile)
		op := &text.DrawOptions{}
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(img, string(r), face, op)
		glyphs[r] = img
	}

	return &Assets{
		glyphs:    glyphs,
		textFont:  textFont,
		textCache: make(map[textKey]*ebiten.Image, 16),
	}, nil
}

func loadFontSource(path string) (*text.GoTextFaceSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode font %s: %w", path, err)
	}
	return src, nil
}

// AssetLoader loads assets in the background. The frame loop polls it and
// treats "not ready yet" as skip-the-layer, never as an error. A genuinely
// missing resource aborts the program with its cause: the game cannot
// render without its fonts.
type AssetLoader struct {
	assets atomic.Pointer[Assets]
}

func StartAssetLoad(cfg *config.Config, log *zap.Logger) *AssetLoader {
	l := &AssetLoader{}
	go func() {
		assets, err := LoadAssets(cfg)
		if err != nil {
			log.Fatal("asset load failed", zap.Error(err))
		}
		l.assets.Store(assets)
		log.Info("assets loaded",
			zap.Int("glyphs", len(assets.glyphs)),
			zap.String("tile_font", cfg.Assets.TileFont),
			zap.String("text_font", cfg.Assets.TextFont))
	}()
	return l
}

// Poll returns the loaded assets, or nil while loading is still in flight.
func (l *AssetLoader) Poll() *Assets {
	return l.assets.Load()
}

// Execute replays a composed command list onto the screen.
func Execute(screen *ebiten.Image, cmds []DrawCommand) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case CommandFillRect:
			vector.DrawFilledRect(screen,
				float32(cmd.Dst.X), float32(cmd.Dst.Y),
				float32(cmd.Dst.W), float32(cmd.Dst.H),
				cmd.Tint, false)

		case CommandBlit, CommandBlitTinted:
			img, ok := cmd.Image.(*ebiten.Image)
			if !ok || img == nil {
				continue
			}
			b := img.Bounds()
			if b.Dx() == 0 || b.Dy() == 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(cmd.Dst.W/float64(b.Dx()), cmd.Dst.H/float64(b.Dy()))
			op.GeoM.Translate(cmd.Dst.X, cmd.Dst.Y)
			if cmd.Kind == CommandBlitTinted {
				op.ColorScale.ScaleWithColor(cmd.Tint)
			}
			screen.DrawImage(img, op)
		}
	}
}
