package pachinko

import (
	"math"

	"github.com/vovakirdan/tui-pachinko/internal/config"
	"github.com/vovakirdan/tui-pachinko/internal/core"
	"github.com/vovakirdan/tui-pachinko/internal/game"
)

// integrate applies gravity and moves the ball by one step.
func integrate(b *game.Ball, p config.PhysicsConfig) {
	b.VY += p.Gravity
	b.X += b.VX
	b.Y += b.VY
}

// bounceWalls keeps the ball inside the side walls, losing energy on impact.
func bounceWalls(b *game.Ball, width, elasticity float64) {
	switch {
	case b.X-game.BallRadius < 0:
		b.X = game.BallRadius
		b.VX = -b.VX * elasticity
	case b.X+game.BallRadius > width:
		b.X = width - game.BallRadius
		b.VX = -b.VX * elasticity
	}
}

// fellOut reports whether the ball has left the bottom of the board.
func fellOut(b game.Ball, height float64) bool {
	return b.Y-game.BallRadius > height
}

// collidePins resolves overlap with every pin the ball touches: the ball is
// pushed out along the contact normal and, if moving into the pin, its
// velocity is reflected and damped.
func collidePins(b *game.Ball, pins []game.Pin, elasticity float64) {
	const minDist = game.BallRadius + game.PinRadius

	for _, pin := range pins {
		dx := b.X - pin.X
		dy := b.Y - pin.Y
		if math.Abs(dx) >= minDist || math.Abs(dy) >= minDist {
			continue
		}
		dist := math.Hypot(dx, dy)
		if dist >= minDist || dist == 0 {
			continue
		}

		nx, ny := dx/dist, dy/dist
		overlap := minDist - dist
		b.X += nx * overlap
		b.Y += ny * overlap

		dot := b.VX*nx + b.VY*ny
		if dot >= 0 {
			continue // already separating
		}
		b.VX = (b.VX - 2*dot*nx) * elasticity
		b.VY = (b.VY - 2*dot*ny) * elasticity
	}
}

// pocketHit returns the index of the first pocket the ball overlaps, or -1.
func pocketHit(b game.Ball, pockets []game.Pocket) int {
	box := core.RectAround(b.X, b.Y, game.BallRadius)
	for i, p := range pockets {
		if box.Intersects(p.Rect()) {
			return i
		}
	}
	return -1
}
