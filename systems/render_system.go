package systems

import (
	"image/color"

	"glyphrogue/components"
	"glyphrogue/config"
	"glyphrogue/ecs"
	"glyphrogue/world"
)

// Attribution for the bundled fonts.
const (
	attributionLine1 = "Mononoki font by Matthias Tellen, terms: SIL Open Font License 1.1"
	attributionLine2 = "Square font by Wouter Van Oortmerssen, terms: CC BY 3.0"
)

// AssetSource supplies glyph images and rendered text. A false return
// means the asset is not available (unknown glyph, or font still
// loading); the composer skips that draw and tries again next frame.
type AssetSource interface {
	Glyph(r rune) (Texture, bool)
	Text(s string, size float64, clr color.RGBA) (Texture, bool)
}

// RenderSystem composes the frame's draw command list. It never draws
// anything itself.
type RenderSystem struct {
	cfg *config.Config
}

func NewRenderSystem(cfg *config.Config) *RenderSystem {
	return &RenderSystem{cfg: cfg}
}

// Compose produces the ordered back-to-front command list for one frame:
// title text, attribution text, map tiles, entities, the player health
// bar, and the inventory status line. assets may be nil while loading is
// in flight; every layer that depends on an unavailable asset is skipped
// for this frame, which is a valid transient state and never an error.
func (s *RenderSystem) Compose(w *world.World, assets AssetSource) []DrawCommand {
	cmds := make([]DrawCommand, 0, len(w.Map.Tiles)+16)
	cmds = s.composeTitle(cmds, assets)
	cmds = s.composeAttribution(cmds, assets)
	cmds = s.composeMap(cmds, w, assets)
	cmds = s.composeEntities(cmds, w, assets)
	cmds = s.composeHealthBar(cmds, w)
	cmds = s.composeStatus(cmds, w, assets)
	return cmds
}

var textBlack = color.RGBA{0, 0, 0, 255}

func (s *RenderSystem) composeTitle(cmds []DrawCommand, assets AssetSource) []DrawCommand {
	if assets == nil {
		return cmds
	}
	img, ok := assets.Text(s.cfg.Window.Title, s.cfg.UI.TitleSize, textBlack)
	if !ok {
		return cmds
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	return append(cmds, DrawCommand{
		Kind:  CommandBlit,
		Image: img,
		Dst: Rect{
			X: (float64(s.cfg.Window.Width) - w) / 2,
			Y: s.cfg.UI.TitleOffsetY - h/2,
			W: w,
			H: h,
		},
	})
}

func (s *RenderSystem) composeAttribution(cmds []DrawCommand, assets AssetSource) []DrawCommand {
	if assets == nil {
		return cmds
	}
	lines := [2]string{attributionLine1, attributionLine2}
	for i, line := range lines {
		img, ok := assets.Text(line, s.cfg.UI.TextSize, textBlack)
		if !ok {
			continue
		}
		b := img.Bounds()
		y := float64(s.cfg.Window.Height) - s.cfg.UI.AttributionStride*float64(len(lines)-i)
		cmds = append(cmds, DrawCommand{
			Kind:  CommandBlit,
			Image: img,
			Dst:   Rect{X: 2, Y: y, W: float64(b.Dx()), H: float64(b.Dy())},
		})
	}
	return cmds
}

func (s *RenderSystem) composeMap(cmds []DrawCommand, w *world.World, assets AssetSource) []DrawCommand {
	if assets == nil {
		return cmds
	}
	tile := float64(s.cfg.UI.TileSize)
	for _, t := range w.Map.Tiles {
		img, ok := assets.Glyph(t.Glyph)
		if !ok {
			continue
		}
		cmds = append(cmds, DrawCommand{
			Kind:  CommandBlitTinted,
			Image: img,
			Dst: Rect{
				X: s.cfg.UI.OffsetX + float64(t.X)*tile,
				Y: s.cfg.UI.OffsetY + float64(t.Y)*tile,
				W: tile,
				H: tile,
			},
			Tint: t.Color,
		})
	}
	return cmds
}

func (s *RenderSystem) composeEntities(cmds []DrawCommand, w *world.World, assets AssetSource) []DrawCommand {
	if assets == nil {
		return cmds
	}
	tile := float64(s.cfg.UI.TileSize)
	ecs.Join2(w.Positions, w.Renderables, func(_ ecs.EntityID, pos *components.PositionComponent, rend *components.RenderableComponent) {
		img, ok := assets.Glyph(rend.Glyph)
		if !ok {
			return // unknown glyph: skip this entity, not an error
		}
		cmds = append(cmds, DrawCommand{
			Kind:  CommandBlitTinted,
			Image: img,
			Dst: Rect{
				X: s.cfg.UI.OffsetX + pos.X*tile,
				Y: s.cfg.UI.OffsetY + pos.Y*tile,
				W: tile,
				H: tile,
			},
			Tint: rend.Color,
		})
	})
	return cmds
}

func (s *RenderSystem) composeHealthBar(cmds []DrawCommand, w *world.World) []DrawCommand {
	hp, ok := w.Healths.Get(w.Player)
	if !ok || hp.Max <= 0 {
		// Nothing to show, and current/max must never reach a division.
		return cmds
	}

	tile := float64(s.cfg.UI.TileSize)
	barX := s.cfg.UI.OffsetX + float64(w.Map.Width)*tile
	barY := s.cfg.UI.OffsetY
	full := s.cfg.UI.HealthBarWidth
	current := full * float64(hp.Current) / float64(hp.Max)

	cmds = append(cmds, DrawCommand{
		Kind: CommandFillRect,
		Dst:  Rect{X: barX, Y: barY, W: full, H: tile},
		Tint: color.RGBA{255, 0, 0, 128},
	})
	return append(cmds, DrawCommand{
		Kind: CommandFillRect,
		Dst:  Rect{X: barX, Y: barY, W: current, H: tile},
		Tint: color.RGBA{255, 0, 0, 255},
	})
}

func (s *RenderSystem) composeStatus(cmds []DrawCommand, w *world.World, assets AssetSource) []DrawCommand {
	if assets == nil {
		return cmds
	}
	inv, ok := w.Inventories.Get(w.Player)
	if !ok || len(inv.Items) == 0 {
		return cmds
	}
	img, ok := assets.Text("Equipped: "+inv.Items[inv.Equipped], s.cfg.UI.TextSize, textBlack)
	if !ok {
		return cmds
	}

	tile := float64(s.cfg.UI.TileSize)
	b := img.Bounds()
	return append(cmds, DrawCommand{
		Kind:  CommandBlit,
		Image: img,
		Dst: Rect{
			X: s.cfg.UI.OffsetX + float64(w.Map.Width)*tile,
			Y: s.cfg.UI.OffsetY + tile + 8,
			W: float64(b.Dx()),
			H: float64(b.Dy()),
		},
	})
}
