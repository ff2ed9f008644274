// Package game defines the snapshot shared between a simulation and the
// renderer, and the Simulation contract the frame loop drives.
package game

import (
	"slices"

	"github.com/vovakirdan/tui-pachinko/internal/core"
)

// Board geometry in pixel space.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	BallRadius   = 5
	PinRadius    = 4
	PocketWidth  = 80
	PocketHeight = 20
)

// GameStatus is the visual/game mode of a snapshot.
type GameStatus string

const (
	StatusNormal GameStatus = "NORMAL"
	StatusBigWin GameStatus = "BIG_WIN"
)

// Valid reports whether the status is one of the known modes.
func (s GameStatus) Valid() bool {
	return s == StatusNormal || s == StatusBigWin
}

// Ball is an active ball. Only X and Y are rendered; the velocity travels
// with the snapshot as opaque payload.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Pin is a static peg on the board.
type Pin struct {
	X, Y float64
}

// Pocket is a rectangular scoring zone.
type Pocket struct {
	X, Y          float64
	Width, Height float64
	BigWin        bool
}

// Rect returns the pocket hit region.
func (p Pocket) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// State is one immutable snapshot of the full game for a single frame.
type State struct {
	Score   int
	Balls   []Ball
	Pins    []Pin
	Pockets []Pocket
	Status  GameStatus

	// BigWinStart is the timestamp (ms) BIG_WIN began; valid only when
	// HasBigWinStart is set.
	BigWinStart    float64
	HasBigWinStart bool

	// BigWinMessage and RainbowHue are meaningful only in BIG_WIN.
	BigWinMessage string
	RainbowHue    float64
}

// NewState returns an empty NORMAL snapshot.
func NewState() State {
	return State{
		Balls:   []Ball{},
		Pins:    []Pin{},
		Pockets: []Pocket{},
		Status:  StatusNormal,
	}
}

// BigWin reports whether the snapshot is in BIG_WIN mode.
func (s State) BigWin() bool {
	return s.Status == StatusBigWin
}

// Clone returns a deep copy so a producer can keep mutating its own slices.
func (s State) Clone() State {
	c := s
	c.Balls = slices.Clone(s.Balls)
	c.Pins = slices.Clone(s.Pins)
	c.Pockets = slices.Clone(s.Pockets)
	return c
}

// Normalize returns a copy with safe defaults applied: unknown status falls
// back to NORMAL, hue is wrapped into [0,1), nil slices become empty and
// entries with non-finite coordinates are dropped.
func (s State) Normalize() State {
	out := s
	if !out.Status.Valid() {
		out.Status = StatusNormal
	}
	out.RainbowHue = core.Wrap01(out.RainbowHue)
	if out.Score < 0 {
		out.Score = 0
	}
	if out.HasBigWinStart && !core.Finite(out.BigWinStart) {
		out.BigWinStart = 0
		out.HasBigWinStart = false
	}

	out.Balls = make([]Ball, 0, len(s.Balls))
	for _, b := range s.Balls {
		if core.Finite(b.X, b.Y) {
			out.Balls = append(out.Balls, b)
		}
	}
	out.Pins = make([]Pin, 0, len(s.Pins))
	for _, p := range s.Pins {
		if core.Finite(p.X, p.Y) {
			out.Pins = append(out.Pins, p)
		}
	}
	out.Pockets = make([]Pocket, 0, len(s.Pockets))
	for _, p := range s.Pockets {
		if core.Finite(p.X, p.Y, p.Width, p.Height) && p.Width >= 0 && p.Height >= 0 {
			out.Pockets = append(out.Pockets, p)
		}
	}
	return out
}
