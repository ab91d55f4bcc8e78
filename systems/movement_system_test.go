package systems

import (
	"image/color"
	"testing"

	"glyphrogue/components"
	"glyphrogue/generation"
	"glyphrogue/world"
)

func newTestWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New(generation.Generate(20, 15))
	id := w.ECS.Create()
	w.Positions.Insert(id, components.PositionComponent{X: 5, Y: 3})
	w.Renderables.Insert(id, components.RenderableComponent{Glyph: '@', Color: color.RGBA{0, 0, 255, 255}})
	w.Healths.Insert(id, components.HealthComponent{Current: 3, Max: 5})
	w.Inventories.Insert(id, components.InventoryComponent{Items: []string{"sword", "shield"}})
	w.Player = id
	return w
}

func playerPos(t *testing.T, w *world.World) components.PositionComponent {
	t.Helper()
	pos, ok := w.Positions.Get(w.Player)
	if !ok {
		t.Fatal("player has no position")
	}
	return *pos
}

func runFrame(w *world.World, in Intents) bool {
	quit := NewMovementSystem().Update(w, in)
	w.Maintain()
	return quit
}

func TestMoveLeftOneUnit(t *testing.T) {
	w := newTestWorld(t)
	runFrame(w, Intents{MoveLeft: true})
	if pos := playerPos(t, w); pos.X != 4 || pos.Y != 3 {
		t.Errorf("player at (%v,%v), want (4,3)", pos.X, pos.Y)
	}
}

func TestOppositeIntentsCancelPerAxis(t *testing.T) {
	w := newTestWorld(t)
	runFrame(w, Intents{MoveLeft: true, MoveRight: true})
	if pos := playerPos(t, w); pos.X != 5 || pos.Y != 3 {
		t.Errorf("player at (%v,%v), want unchanged (5,3)", pos.X, pos.Y)
	}

	runFrame(w, Intents{MoveUp: true, MoveDown: true})
	if pos := playerPos(t, w); pos.X != 5 || pos.Y != 3 {
		t.Errorf("player at (%v,%v), want unchanged (5,3)", pos.X, pos.Y)
	}
}

func TestDiagonalMovesBothAxes(t *testing.T) {
	w := newTestWorld(t)
	runFrame(w, Intents{MoveRight: true, MoveDown: true})
	if pos := playerPos(t, w); pos.X != 6 || pos.Y != 4 {
		t.Errorf("player at (%v,%v), want (6,4)", pos.X, pos.Y)
	}
}

func TestQuitIsReturnedNotHandled(t *testing.T) {
	w := newTestWorld(t)
	if quit := runFrame(w, Intents{Quit: true}); !quit {
		t.Error("quit intent not propagated to caller")
	}
	if quit := runFrame(w, Intents{}); quit {
		t.Error("quit reported without the intent")
	}
	// The player is untouched by quit.
	if pos := playerPos(t, w); pos.X != 5 || pos.Y != 3 {
		t.Errorf("quit moved the player to (%v,%v)", pos.X, pos.Y)
	}
}

func TestSwapInventoryCycles(t *testing.T) {
	w := newTestWorld(t)
	runFrame(w, Intents{SwapInventory: true})
	inv, _ := w.Inventories.Get(w.Player)
	if inv.Equipped != 1 {
		t.Errorf("equipped slot = %d, want 1", inv.Equipped)
	}
	runFrame(w, Intents{SwapInventory: true})
	if inv.Equipped != 0 {
		t.Errorf("equipped slot = %d, want wrap to 0", inv.Equipped)
	}
}

func TestHealthInvariantHoldsAcrossFrames(t *testing.T) {
	w := newTestWorld(t)
	frames := []Intents{
		{MoveLeft: true},
		{MoveLeft: true, MoveRight: true, MoveUp: true},
		{SwapInventory: true},
		{},
	}
	for i, in := range frames {
		runFrame(w, in)
		hp, ok := w.Healths.Get(w.Player)
		if !ok {
			t.Fatalf("frame %d: player lost Health", i)
		}
		if hp.Current < 0 || hp.Current > hp.Max {
			t.Fatalf("frame %d: health invariant violated: %d/%d", i, hp.Current, hp.Max)
		}
	}
}

func TestUpdateSurvivesMissingPlayerData(t *testing.T) {
	w := newTestWorld(t)
	w.ECS.Destroy(w.Player)
	w.Maintain()

	// A frame against a dead player must be a quiet no-op.
	if quit := runFrame(w, Intents{MoveLeft: true, SwapInventory: true}); quit {
		t.Error("unexpected quit")
	}
}
