// Package loop drives the per-frame pipeline: pull a snapshot from the
// simulation, keep it as the current state, and draw it.
package loop

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pachinko/internal/game"
	"github.com/vovakirdan/tui-pachinko/internal/render"
)

// MaxDeltaMs bounds the delta handed to the simulation. The first frame is
// measured against a zero baseline and would otherwise pass the full host
// uptime.
const MaxDeltaMs = 250.0

// Loop owns the current snapshot and the frame clock. All methods must be
// called from a single goroutine (the host event loop).
type Loop struct {
	sim     game.Simulation
	surface render.Surface
	vp      render.Viewport
	logger  *log.Logger

	current     game.State
	lastFrameMs float64
	frames      uint64

	stopped bool
	paused  bool
}

// viewportAware is a surface that scales board pixels to its own space.
type viewportAware interface {
	SetViewport(render.Viewport)
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for recovered faults.
func WithLogger(l *log.Logger) Option {
	return func(lp *Loop) {
		lp.logger = l
	}
}

// WithViewport sets the board viewport. Surfaces that scale board pixels
// are switched to it as well.
func WithViewport(vp render.Viewport) Option {
	return func(lp *Loop) {
		lp.vp = vp
	}
}

// New creates a loop drawing onto surface. sim may be nil, in which case
// frames draw the default state until a simulation is attached.
func New(sim game.Simulation, surface render.Surface, opts ...Option) *Loop {
	l := &Loop{
		surface: surface,
		vp:      render.BoardViewport(),
		logger:  log.New(io.Discard),
		current: game.NewState(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if va, ok := surface.(viewportAware); ok {
		va.SetViewport(l.vp)
	}
	if sim != nil {
		l.Attach(sim)
	}
	return l
}

// Attach installs a simulation and takes its initial snapshot.
func (l *Loop) Attach(sim game.Simulation) {
	l.sim = sim
	l.Reset()
}

// Reset re-initializes the simulation and replaces the current snapshot.
func (l *Loop) Reset() {
	if l.sim == nil {
		l.current = game.NewState()
		return
	}
	if err := l.guard("init", func() {
		l.current = l.sim.Init().Normalize()
	}); err != nil {
		l.current = game.NewState()
	}
	l.logger.Debug("board reset", "pins", len(l.current.Pins), "pockets", len(l.current.Pockets))
}

// Frame runs one iteration: advance the clock, step the simulation, replace
// the current snapshot and draw it. It returns whether another frame should
// be scheduled.
func (l *Loop) Frame(nowMs float64) bool {
	if l.stopped {
		return false
	}

	delta := clampDelta(nowMs - l.lastFrameMs)
	l.lastFrameMs = nowMs
	l.frames++

	if l.sim != nil && !l.paused {
		var next game.State
		err := l.guard("step", func() {
			next = l.sim.Step(delta, nowMs).Normalize()
		})
		if err == nil {
			prev := l.current
			l.current = next
			l.logTransition(prev, next)
		}
	}

	l.draw()
	return !l.stopped
}

// Redraw paints the current snapshot without stepping.
func (l *Loop) Redraw() {
	l.draw()
}

func (l *Loop) draw() {
	if l.surface == nil {
		return
	}
	//nolint:errcheck // Fault is logged by guard; the next frame redraws
	l.guard("draw", func() {
		render.Draw(l.surface, l.current, l.vp)
	})
}

// guard runs fn and converts a panic into an error so one bad frame cannot
// end the schedule.
func (l *Loop) guard(phase string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("loop: %s panicked: %v", phase, r)
			l.logger.Error("frame fault", "phase", phase, "frame", l.frames, "error", err)
		}
	}()
	fn()
	return nil
}

func (l *Loop) logTransition(prev, next game.State) {
	if prev.Status == next.Status {
		return
	}
	if next.BigWin() {
		l.logger.Info("big win", "score", next.Score, "message", next.BigWinMessage)
		return
	}
	l.logger.Info("big win over", "score", next.Score)
}

// clampDelta bounds the frame delta to [0, MaxDeltaMs].
func clampDelta(d float64) float64 {
	if math.IsNaN(d) || d < 0 { // clock went backwards
		return 0
	}
	if d > MaxDeltaMs {
		return MaxDeltaMs
	}
	return d
}

// Viewport returns the board viewport frames are drawn with.
func (l *Loop) Viewport() render.Viewport {
	return l.vp
}

// State returns the current snapshot.
func (l *Loop) State() game.State {
	return l.current
}

// Frames returns how many frames have run.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Stop prevents further frames from being scheduled.
func (l *Loop) Stop() {
	l.stopped = true
}

// Running reports whether the loop still wants frames.
func (l *Loop) Running() bool {
	return !l.stopped
}

// Pause stops stepping; frames keep drawing.
func (l *Loop) Pause() {
	l.paused = true
}

// Resume continues stepping.
func (l *Loop) Resume() {
	l.paused = false
}

// TogglePause pauses or resumes stepping. Paused frames still draw and
// advance the clock, so resuming does not produce a delta burst.
func (l *Loop) TogglePause() {
	l.paused = !l.paused
	l.logger.Debug("pause toggled", "paused", l.paused)
}

// Paused reports whether stepping is paused.
func (l *Loop) Paused() bool {
	return l.paused
}
