package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Intents is one frame's worth of discrete input. Directional moves and
// the inventory swap fire on the frame the key goes down; Quit fires while
// the key is held.
type Intents struct {
	MoveLeft      bool
	MoveRight     bool
	MoveUp        bool
	MoveDown      bool
	Quit          bool
	SwapInventory bool
}

// GatherIntents reads the keyboard state for the current frame. The core
// only ever reads these states.
func GatherIntents() Intents {
	return Intents{
		MoveLeft:      inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		MoveRight:     inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		MoveUp:        inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		MoveDown:      inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Quit:          ebiten.IsKeyPressed(ebiten.KeyEscape),
		SwapInventory: inpututil.IsKeyJustPressed(ebiten.KeyI),
	}
}
