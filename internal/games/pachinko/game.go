// Package pachinko implements the pachinko board simulation: balls fall
// through a staggered pin field into a row of scoring pockets, one of which
// starts the BIG_WIN celebration.
package pachinko

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pachinko/internal/config"
	"github.com/vovakirdan/tui-pachinko/internal/game"
	"github.com/vovakirdan/tui-pachinko/internal/registry"
)

// Simulation IDs registered by this package.
const (
	ID     = "pachinko"
	AutoID = "pachinko_auto"
)

// Game is the authoritative pachinko simulation. It implements
// game.Simulation; every snapshot it returns is a deep copy.
type Game struct {
	cfg  config.Config
	seed int64
	rng  *rand.Rand

	state      game.State
	pending    int // Balls requested by AddBall, launched on the next Step
	spawnTimer int
	tickCount  int
}

// New creates a simulation for the given board configuration.
func New(cfg config.Config, seed int64) *Game {
	return &Game{cfg: cfg, seed: seed}
}

// Init lays out the board and returns the starting snapshot.
func (g *Game) Init() game.State {
	g.rng = rand.New(rand.NewSource(g.seed))
	g.pending = 0
	g.spawnTimer = 0
	g.tickCount = 0

	g.state = game.NewState()
	g.state.Pins = layoutPins(g.cfg.Board)
	g.state.Pockets = layoutPockets(g.cfg.Board, g.rng)

	return g.state.Clone()
}

// AddBall queues a ball launch from the top center.
func (g *Game) AddBall() {
	g.pending++
}

// Step advances the board by one simulation step. deltaMs is accepted for
// interface compatibility; motion is per step, and nowMs drives the
// BIG_WIN timer and rainbow phase.
func (g *Game) Step(_, nowMs float64) game.State {
	if g.rng == nil {
		g.Init()
	}
	g.tickCount++

	g.autoSpawn()
	for ; g.pending > 0; g.pending-- {
		g.launch()
	}

	b := g.cfg.Board
	p := g.cfg.Physics

	balls := g.state.Balls[:0]
	for _, ball := range g.state.Balls {
		integrate(&ball, p)
		bounceWalls(&ball, b.Width, p.Elasticity)
		if fellOut(ball, b.Height) {
			continue
		}
		collidePins(&ball, g.state.Pins, p.Elasticity)

		if i := pocketHit(ball, g.state.Pockets); i >= 0 {
			g.score(g.state.Pockets[i], nowMs)
			continue
		}
		balls = append(balls, ball)
	}
	g.state.Balls = balls

	g.updateBigWin(nowMs)

	return g.state.Clone()
}

// launch adds one ball unless the cap is reached.
func (g *Game) launch() {
	if limit := g.cfg.Physics.MaxBalls; limit > 0 && len(g.state.Balls) >= limit {
		return
	}
	spread := g.cfg.Physics.LaunchSpread
	g.state.Balls = append(g.state.Balls, game.Ball{
		X:  math.Floor(g.cfg.Board.Width / 2),
		Y:  0,
		VX: (g.rng.Float64()*2 - 1) * spread,
	})
}

// autoSpawn launches balls on a timer when enabled; the interval shortens
// during BIG_WIN.
func (g *Game) autoSpawn() {
	s := g.cfg.Spawn
	if !s.Auto {
		return
	}
	interval := s.IntervalNormal
	if g.state.BigWin() {
		interval = s.IntervalBigWin
	}
	g.spawnTimer++
	if g.spawnTimer >= interval {
		g.pending++
		g.spawnTimer = 0
	}
}

// score credits a pocket hit and enters BIG_WIN from NORMAL when the pocket
// is the big-win one.
func (g *Game) score(pocket game.Pocket, nowMs float64) {
	g.state.Score += g.cfg.Scoring.PointsPerPocket

	if !pocket.BigWin || g.state.BigWin() {
		return
	}
	g.state.Status = game.StatusBigWin
	g.state.BigWinStart = nowMs
	g.state.HasBigWinStart = true
	if msgs := g.cfg.BigWin.Messages; len(msgs) > 0 {
		g.state.BigWinMessage = msgs[g.rng.Intn(len(msgs))]
	}
}

// updateBigWin advances the rainbow phase and ends the celebration once its
// duration has elapsed.
func (g *Game) updateBigWin(nowMs float64) {
	if !g.state.BigWin() {
		return
	}
	phase := nowMs / 1000 * g.cfg.BigWin.HueSpeed
	g.state.RainbowHue = phase - math.Floor(phase)

	if nowMs-g.state.BigWinStart > g.cfg.BigWin.DurationMs {
		g.state.Status = game.StatusNormal
	}
}

// Snapshot returns the current state without stepping.
func (g *Game) Snapshot() game.State {
	return g.state.Clone()
}

// Ticks returns the number of steps since Init.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Register the simulations with the registry
func init() {
	registry.Register(ID, "Pachinko", func(cfg config.Config, seed int64) game.Simulation {
		return New(cfg, seed)
	})
	registry.Register(AutoID, "Pachinko (auto launcher)", func(cfg config.Config, seed int64) game.Simulation {
		cfg.Spawn.Auto = true
		return New(cfg, seed)
	})
}
