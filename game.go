package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"glyphrogue/config"
	"glyphrogue/generation"
	"glyphrogue/spawners"
	"glyphrogue/systems"
	"glyphrogue/world"
)

// Game implements ebiten.Game: one Update then one Draw per frame,
// strictly sequential, driven by the external event loop.
type Game struct {
	cfg      *config.Config
	log      *zap.Logger
	world    *world.World
	movement *systems.MovementSystem
	renderer *systems.RenderSystem
	loader   *systems.AssetLoader
}

// NewGame generates the map, spawns the initial population and the
// player, and kicks off the background asset load.
func NewGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	w := world.New(generation.Generate(cfg.Map.Width, cfg.Map.Height))

	list, err := spawners.LoadSpawnList(cfg.Assets.SpawnList)
	if err != nil {
		return nil, fmt.Errorf("spawn list: %w", err)
	}
	n, err := spawners.SpawnAll(w, list)
	if err != nil {
		return nil, fmt.Errorf("spawn entities: %w", err)
	}
	spawners.SpawnPlayer(w, cfg.Player.X, cfg.Player.Y)

	log.Info("world initialized",
		zap.Int("map_width", cfg.Map.Width),
		zap.Int("map_height", cfg.Map.Height),
		zap.Int("entities", n+1))

	return &Game{
		cfg:      cfg,
		log:      log,
		world:    w,
		movement: systems.NewMovementSystem(),
		renderer: systems.NewRenderSystem(cfg),
		loader:   systems.StartAssetLoad(cfg, log),
	}, nil
}

// Update runs the per-frame update pass, then applies deferred registry
// maintenance before the next frame's queries can run.
func (g *Game) Update() error {
	quit := g.movement.Update(g.world, systems.GatherIntents())
	g.world.Maintain()
	if quit {
		return ebiten.Termination
	}
	return nil
}

// Draw composes the frame's command list and replays it onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	var assets systems.AssetSource
	if a := g.loader.Poll(); a != nil {
		assets = a
	}
	systems.Execute(screen, g.renderer.Compose(g.world, assets))
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
