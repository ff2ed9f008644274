package pachinko

import (
	"math/rand"

	"github.com/vovakirdan/tui-pachinko/internal/config"
	"github.com/vovakirdan/tui-pachinko/internal/game"
)

// layoutPins builds the staggered pin grid: odd rows shift right by the
// stagger so balls cannot fall straight through a column.
func layoutPins(b config.BoardConfig) []game.Pin {
	pins := make([]game.Pin, 0, b.PinRows*b.PinCols)
	for row := 0; row < b.PinRows; row++ {
		for col := 0; col < b.PinCols; col++ {
			x := b.PinOriginX + float64(col)*b.PinSpacingX + float64(row%2)*b.PinStagger
			y := b.PinOriginY + float64(row)*b.PinSpacingY
			pins = append(pins, game.Pin{X: x, Y: y})
		}
	}
	return pins
}

// layoutPockets spreads the pockets evenly across the bottom row and marks
// one of them, chosen by rng, as the big-win pocket.
func layoutPockets(b config.BoardConfig, rng *rand.Rand) []game.Pocket {
	n := b.Pockets
	if n <= 0 {
		return []game.Pocket{}
	}
	spacing := float64(int((b.Width - b.PocketWidth*float64(n)) / float64(n+1)))
	bigWin := rng.Intn(n)
	y := b.Height - b.PocketOffset

	pockets := make([]game.Pocket, 0, n)
	for i := 0; i < n; i++ {
		pockets = append(pockets, game.Pocket{
			X:      spacing*float64(i+1) + b.PocketWidth*float64(i),
			Y:      y,
			Width:  b.PocketWidth,
			Height: b.PocketHeight,
			BigWin: i == bigWin,
		})
	}
	return pockets
}
