package systems

import "glyphrogue/world"

// MovementSystem is the per-frame update pass. It mutates exactly the
// player's Position (and Inventory, for the swap intent); everything else
// in the world is untouched.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update applies one frame of intents. Each directional intent adjusts its
// axis independently by exactly one grid unit, so pressing both left and
// right in the same frame nets to zero movement. Returns true when the
// player asked to quit; termination itself is the caller's business.
//
// The frame driver must call World.Maintain after this, once, before the
// next frame's joins run.
func (s *MovementSystem) Update(w *world.World, in Intents) bool {
	if pos, ok := w.Positions.Get(w.Player); ok {
		if in.MoveLeft {
			pos.X -= 1.0
		}
		if in.MoveRight {
			pos.X += 1.0
		}
		if in.MoveUp {
			pos.Y -= 1.0
		}
		if in.MoveDown {
			pos.Y += 1.0
		}
	}

	if in.SwapInventory {
		if inv, ok := w.Inventories.Get(w.Player); ok && len(inv.Items) > 0 {
			inv.Equipped = (inv.Equipped + 1) % len(inv.Items)
		}
	}

	return in.Quit
}
