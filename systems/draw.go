package systems

import (
	"image"
	"image/color"
)

// Texture is the minimal surface the composer needs from an image asset.
// The composer never touches pixels, only sizes.
type Texture interface {
	Bounds() image.Rectangle
}

// Rect is a destination rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

type CommandKind uint8

const (
	// CommandBlit draws the image into Dst as-is.
	CommandBlit CommandKind = iota
	// CommandBlitTinted draws the image into Dst blended with Tint.
	CommandBlitTinted
	// CommandFillRect fills Dst with Tint; Image is nil.
	CommandFillRect
)

// DrawCommand is one renderer-agnostic drawing instruction. The composer
// emits an ordered back-to-front list of these; how pixels actually reach
// the screen is the renderer collaborator's business.
type DrawCommand struct {
	Kind  CommandKind
	Image Texture
	Dst   Rect
	Tint  color.RGBA
}
