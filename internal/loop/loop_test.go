package loop

import (
	"strconv"
	"testing"

	"github.com/vovakirdan/tui-pachinko/internal/core"
	"github.com/vovakirdan/tui-pachinko/internal/game"
	"github.com/vovakirdan/tui-pachinko/internal/render"
)

// mockSim is a scripted simulation recording every call.
type mockSim struct {
	inits    int
	addBalls int
	deltas   []float64
	nows     []float64

	score        int
	scorePerStep int
	panicOnStep  map[int]bool
}

func (m *mockSim) Init() game.State {
	m.inits++
	m.score = 0
	return game.NewState()
}

func (m *mockSim) Step(deltaMs, nowMs float64) game.State {
	m.deltas = append(m.deltas, deltaMs)
	m.nows = append(m.nows, nowMs)
	if m.panicOnStep[len(m.deltas)] {
		panic("simulation fault")
	}
	m.score += m.scorePerStep
	st := game.NewState()
	st.Score = m.score
	return st
}

func (m *mockSim) AddBall() {
	m.addBalls++
}

// panicSurface fails every rectangle draw, including the background.
type panicSurface struct {
	*render.Recorder
}

func (p panicSurface) FillRect(_ core.Rect, _ core.Color) {
	panic("surface fault")
}

func lastScore(t *testing.T, rec *render.Recorder) string {
	t.Helper()
	scores := rec.Filter(render.CmdSetScore)
	if len(scores) == 0 {
		t.Fatal("no score was drawn")
	}
	return scores[len(scores)-1].Text
}

func TestFirstFrameDelta(t *testing.T) {
	sim := &mockSim{}
	l := New(sim, render.NewRecorder())

	if !l.Frame(123456) {
		t.Fatal("first frame should keep the loop running")
	}
	l.Frame(123472)

	if len(sim.deltas) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(sim.deltas))
	}
	if l.Frames() != 2 {
		t.Errorf("Frames() = %d, expected 2", l.Frames())
	}
	if sim.deltas[0] != MaxDeltaMs {
		t.Errorf("first delta = %v, expected it clamped to %v", sim.deltas[0], MaxDeltaMs)
	}
	if sim.deltas[1] != 16 {
		t.Errorf("second delta = %v, expected 16", sim.deltas[1])
	}
	if sim.nows[1] != 123472 {
		t.Errorf("step should receive the frame timestamp, got %v", sim.nows[1])
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{16, 16},
		{-5, 0},
		{0, 0},
		{10000, MaxDeltaMs},
	}

	for _, tc := range tests {
		if got := clampDelta(tc.in); got != tc.expected {
			t.Errorf("clampDelta(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestScoreAfterThreeSteps(t *testing.T) {
	sim := &mockSim{scorePerStep: 10}
	rec := render.NewRecorder()
	l := New(sim, rec)

	if l.State().Score != 0 {
		t.Fatalf("initial score = %d, expected 0", l.State().Score)
	}

	for i := 1; i <= 3; i++ {
		l.Frame(float64(i) * 16)
	}

	if got := lastScore(t, rec); got != "30" {
		t.Errorf("displayed score = %q, expected \"30\"", got)
	}
}

func TestDrawSeesStateOfSameFrame(t *testing.T) {
	sim := &mockSim{scorePerStep: 1}
	rec := render.NewRecorder()
	l := New(sim, rec)

	for i := 1; i <= 5; i++ {
		rec.Reset()
		l.Frame(float64(i) * 16)
		if got, want := lastScore(t, rec), l.State().Score; got != strconv.Itoa(want) || want != i {
			t.Errorf("frame %d drew score %s, state holds %d", i, got, want)
		}
	}
}

func TestNoSimulation(t *testing.T) {
	rec := render.NewRecorder()
	l := New(nil, rec)

	if !l.Frame(16) {
		t.Error("loop without a simulation should keep running")
	}
	if got := lastScore(t, rec); got != "0" {
		t.Errorf("default state should draw score 0, got %q", got)
	}

	// Attaching later starts stepping
	sim := &mockSim{scorePerStep: 5}
	l.Attach(sim)
	l.Frame(32)
	if sim.inits != 1 || len(sim.deltas) != 1 {
		t.Errorf("attached simulation: inits=%d steps=%d", sim.inits, len(sim.deltas))
	}
}

func TestStepFaultKeepsLastState(t *testing.T) {
	sim := &mockSim{scorePerStep: 10, panicOnStep: map[int]bool{2: true}}
	rec := render.NewRecorder()
	l := New(sim, rec)

	l.Frame(16)
	if !l.Frame(32) {
		t.Fatal("a faulty step must not stop the loop")
	}
	if l.State().Score != 10 {
		t.Errorf("state after fault = %d, expected the previous snapshot (10)", l.State().Score)
	}
	if got := lastScore(t, rec); got != "10" {
		t.Errorf("faulty frame should redraw the last state, drew %q", got)
	}

	l.Frame(48)
	if l.State().Score != 20 {
		t.Errorf("loop should recover on the next frame, score=%d", l.State().Score)
	}
}

func TestDrawFaultKeepsRunning(t *testing.T) {
	sim := &mockSim{}
	l := New(sim, panicSurface{render.NewRecorder()})

	if !l.Frame(16) {
		t.Error("a faulty draw must not stop the loop")
	}
	if !l.Frame(32) || len(sim.deltas) != 2 {
		t.Error("frames should keep stepping after a draw fault")
	}
}

func TestStop(t *testing.T) {
	sim := &mockSim{}
	rec := render.NewRecorder()
	l := New(sim, rec)

	l.Frame(16)
	l.Stop()

	if l.Running() {
		t.Error("Running() should be false after Stop")
	}
	rec.Reset()
	if l.Frame(32) {
		t.Error("Frame should not ask for rescheduling after Stop")
	}
	if len(sim.deltas) != 1 || len(rec.Commands) != 0 {
		t.Error("a stopped loop should neither step nor draw")
	}
}

func TestPause(t *testing.T) {
	sim := &mockSim{scorePerStep: 1}
	rec := render.NewRecorder()
	l := New(sim, rec)

	l.Frame(16)
	l.TogglePause()
	rec.Reset()
	l.Frame(1000)

	if len(sim.deltas) != 1 {
		t.Errorf("paused frame should not step, got %d steps", len(sim.deltas))
	}
	if len(rec.Commands) == 0 {
		t.Error("paused frame should still draw")
	}

	l.TogglePause()
	l.Frame(1016)
	if sim.deltas[1] != 16 {
		t.Errorf("delta after resume = %v, expected 16", sim.deltas[1])
	}
}

func TestReset(t *testing.T) {
	sim := &mockSim{scorePerStep: 10}
	l := New(sim, render.NewRecorder())

	l.Frame(16)
	l.Frame(32)
	l.Reset()

	if sim.inits != 2 {
		t.Errorf("Reset should call Init again, inits=%d", sim.inits)
	}
	if l.State().Score != 0 {
		t.Errorf("score after reset = %d, expected 0", l.State().Score)
	}
}

func TestInputForwarding(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		expected int
	}{
		{"single fire", []core.Action{core.ActionFire}, 1},
		{"three fires", []core.Action{core.ActionFire, core.ActionFire, core.ActionFire}, 3},
		{"other actions ignored", []core.Action{core.ActionNone, core.ActionPause, core.ActionRestart, core.ActionQuit}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := &mockSim{}
			l := New(sim, render.NewRecorder())
			for _, a := range tc.actions {
				l.Input(a)
			}
			if sim.addBalls != tc.expected {
				t.Errorf("AddBall called %d times, expected %d", sim.addBalls, tc.expected)
			}
		})
	}
}

func TestInputWithoutSimulation(t *testing.T) {
	l := New(nil, render.NewRecorder())
	// Must not panic
	l.Input(core.ActionFire)
}

func TestWithViewportScalesRaster(t *testing.T) {
	wide := render.Viewport{Width: 1200, Height: 600}
	raster := render.NewRaster(core.NewScreen(120, 60), render.BoardViewport())
	l := New(nil, raster, WithViewport(wide))

	if l.Viewport() != wide {
		t.Errorf("Viewport() = %+v, expected %+v", l.Viewport(), wide)
	}

	st := game.NewState()
	st.Balls = []game.Ball{{X: 1150, Y: 300}}
	l.current = st
	l.Redraw()

	if c := raster.Screen().GetCell(115, 30); c.Rune != render.CircleRune {
		t.Errorf("ball at x=1150 should land in cell 115, got %+v", c)
	}
}
