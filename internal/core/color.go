package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color used for board drawing and screen cells.
type Color struct {
	R, G, B uint8
}

// Named colors used by the board renderer.
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorRed   = RGB(255, 0, 0)
	ColorGreen = RGB(0, 128, 0)
	ColorBlue  = RGB(0, 0, 255)
	ColorGold  = RGB(255, 215, 0)
)

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// HSL converts hue (degrees), saturation and lightness (both 0..1) to RGB.
// Hue is taken modulo 360.
func HSL(h, s, l float64) Color {
	h = Wrap01(h/360) * 360
	c := colorful.Hsl(h, ClampF(s, 0, 1), ClampF(l, 0, 1)).Clamped()
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}

// Hex returns the color in #rrggbb form, as accepted by lipgloss.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the hex form.
func (c Color) String() string {
	return c.Hex()
}
