// Package render paints game snapshots onto a drawing surface. The draw
// routine is a pure function of (snapshot, viewport); surfaces decide what a
// drawing command becomes (recorded command, terminal cells).
package render

import "github.com/vovakirdan/tui-pachinko/internal/core"

// Viewport is the pixel size of the board being drawn.
type Viewport struct {
	Width, Height float64
}

// Align is horizontal text alignment relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Font describes how text is set.
type Font struct {
	Size  float64 // Pixel height
	Bold  bool
	Align Align
}

// Surface is a 2D drawing target with a separate score label.
type Surface interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(r core.Rect, c core.Color)

	// FillCircle fills a circle centered at (x, y).
	FillCircle(x, y, radius float64, c core.Color)

	// FillText draws text anchored at (x, y); the anchor is the vertical
	// middle of the line.
	FillText(text string, x, y float64, f Font, c core.Color)

	// SetScore updates the score label shown outside the board.
	SetScore(text string)
}
