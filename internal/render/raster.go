package render

import (
	"math"

	"github.com/vovakirdan/tui-pachinko/internal/core"
)

// Glyphs used for circles. Circles smaller than SmallCircleRadius render as
// the small dot.
const (
	CircleRune        = '●'
	SmallCircleRune   = '•'
	SmallCircleRadius = 5
)

// Raster is a Surface that scales board pixels onto a cell screen. Rects set
// cell backgrounds; circles and text set glyphs and keep the background.
// A cell is covered when its center lies inside the shape; shapes too small
// to cover any center still mark the cell under their own center.
type Raster struct {
	screen *core.Screen
	vp     Viewport
	score  string
}

// NewRaster creates a raster surface drawing the viewport onto screen.
func NewRaster(screen *core.Screen, vp Viewport) *Raster {
	return &Raster{screen: screen, vp: vp}
}

// Screen returns the target cell buffer.
func (r *Raster) Screen() *core.Screen {
	return r.screen
}

// Score returns the last score label text.
func (r *Raster) Score() string {
	return r.score
}

// SetViewport changes the board size mapped onto the screen.
func (r *Raster) SetViewport(vp Viewport) {
	r.vp = vp
}

// cellSize returns the pixel width and height of one cell.
func (r *Raster) cellSize() (float64, float64) {
	w, h := r.screen.Width(), r.screen.Height()
	if w == 0 || h == 0 || r.vp.Width <= 0 || r.vp.Height <= 0 {
		return 0, 0
	}
	return r.vp.Width / float64(w), r.vp.Height / float64(h)
}

// cellAt returns the cell containing a pixel.
func (r *Raster) cellAt(x, y float64) (int, int, bool) {
	sx, sy := r.cellSize()
	if sx == 0 || !core.Finite(x, y) {
		return 0, 0, false
	}
	return int(math.Floor(x / sx)), int(math.Floor(y / sy)), true
}

// cellsCovered calls fn for every cell whose center satisfies inside, limited
// to the given pixel bounds. It reports whether any cell was visited.
func (r *Raster) cellsCovered(bounds core.Rect, inside func(px, py float64) bool, fn func(cx, cy int)) bool {
	sx, sy := r.cellSize()
	if sx == 0 {
		return false
	}
	x0 := core.Max(int(math.Floor(bounds.X/sx)), 0)
	y0 := core.Max(int(math.Floor(bounds.Y/sy)), 0)
	x1 := core.Min(int(math.Ceil(bounds.Right()/sx)), r.screen.Width()-1)
	y1 := core.Min(int(math.Ceil(bounds.Bottom()/sy)), r.screen.Height()-1)

	hit := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px := (float64(cx) + 0.5) * sx
			py := (float64(cy) + 0.5) * sy
			if inside(px, py) {
				fn(cx, cy)
				hit = true
			}
		}
	}
	return hit
}

func (r *Raster) FillRect(rect core.Rect, c core.Color) {
	if rect.W <= 0 || rect.H <= 0 || !core.Finite(rect.X, rect.Y, rect.W, rect.H) {
		return
	}
	paint := func(cx, cy int) {
		r.screen.Set(cx, cy, core.Cell{Rune: ' ', FG: core.ColorWhite, BG: c})
	}
	if r.cellsCovered(rect, rect.Contains, paint) {
		return
	}
	if cx, cy, ok := r.cellAt(rect.Center()); ok {
		paint(cx, cy)
	}
}

func (r *Raster) FillCircle(x, y, radius float64, c core.Color) {
	if radius <= 0 || !core.Finite(x, y, radius) {
		return
	}
	glyph := CircleRune
	if radius < SmallCircleRadius {
		glyph = SmallCircleRune
	}
	paint := func(cx, cy int) {
		r.screen.SetRune(cx, cy, glyph, c, false)
	}
	inside := func(px, py float64) bool {
		return math.Hypot(px-x, py-y) <= radius
	}
	if r.cellsCovered(core.RectAround(x, y, radius), inside, paint) {
		return
	}
	if cx, cy, ok := r.cellAt(x, y); ok {
		paint(cx, cy)
	}
}

func (r *Raster) FillText(text string, x, y float64, f Font, c core.Color) {
	cx, cy, ok := r.cellAt(x, y)
	if !ok {
		return
	}
	if f.Align == AlignCenter {
		cx -= len([]rune(text)) / 2
	}
	r.screen.DrawText(cx, cy, text, c, f.Bold)
}

func (r *Raster) SetScore(text string) {
	r.score = text
}
