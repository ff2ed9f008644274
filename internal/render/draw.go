package render

import (
	"strconv"

	"github.com/vovakirdan/tui-pachinko/internal/core"
	"github.com/vovakirdan/tui-pachinko/internal/game"
)

// Board palette.
var (
	BackgroundColor   = core.ColorBlack
	PinColor          = core.ColorBlue
	PocketColor       = core.ColorRed
	BigWinPocketColor = core.ColorGreen
	BallColor         = core.ColorWhite
	MessageColor      = core.ColorBlack
)

// MessageFont is the font of the BIG_WIN overlay.
var MessageFont = Font{Size: 72, Bold: true, Align: AlignCenter}

// BoardViewport is the default pixel size of the pachinko board.
func BoardViewport() Viewport {
	return Viewport{Width: game.ScreenWidth, Height: game.ScreenHeight}
}

// NewViewport returns a viewport of the given board size. Non-positive or
// non-finite sizes fall back to BoardViewport.
func NewViewport(width, height float64) Viewport {
	if width <= 0 || height <= 0 || !core.Finite(width, height) {
		return BoardViewport()
	}
	return Viewport{Width: width, Height: height}
}

// Draw paints one snapshot. Layers go background, pins, pockets, balls,
// score label, then the BIG_WIN message. Unknown statuses render as NORMAL.
// The snapshot is only read.
func Draw(s Surface, st game.State, vp Viewport) {
	bigWin := st.Status == game.StatusBigWin

	s.FillRect(core.NewRect(0, 0, vp.Width, vp.Height), Background(st))

	for _, p := range st.Pins {
		s.FillCircle(p.X, p.Y, game.PinRadius, PinColor)
	}

	for _, p := range st.Pockets {
		c := PocketColor
		if p.BigWin {
			c = BigWinPocketColor
		}
		s.FillRect(p.Rect(), c)
	}

	for _, b := range st.Balls {
		s.FillCircle(b.X, b.Y, game.BallRadius, BallColor)
	}

	s.SetScore(strconv.Itoa(st.Score))

	if bigWin {
		s.FillText(st.BigWinMessage, vp.Width/2, vp.Height/2, MessageFont, MessageColor)
	}
}

// Background returns the board fill for a snapshot: the rainbow hue at full
// saturation and half lightness during BIG_WIN, black otherwise.
func Background(st game.State) core.Color {
	if st.Status != game.StatusBigWin {
		return BackgroundColor
	}
	return core.HSL(core.Wrap01(st.RainbowHue)*360, 1, 0.5)
}
