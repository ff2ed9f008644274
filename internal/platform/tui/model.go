package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pachinko/internal/core"
	"github.com/vovakirdan/tui-pachinko/internal/game"
	"github.com/vovakirdan/tui-pachinko/internal/loop"
	"github.com/vovakirdan/tui-pachinko/internal/render"
)

// chromeRows is the number of terminal rows used by the score and help lines.
const chromeRows = 2

// Model is the Bubble Tea model running one pachinko board.
type Model struct {
	loop     *loop.Loop
	raster   *render.Raster
	screen   *core.Screen
	styles   styleCache
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	start    time.Time
	quitting bool
}

// NewModel creates a model driving sim on a board of size vp. A nil sim
// shows an empty board.
func NewModel(sim game.Simulation, cfg core.RuntimeConfig, vp render.Viewport, logger *log.Logger) Model {
	screen := core.NewScreen(boardSize(cfg.ScreenW, cfg.ScreenH))
	raster := render.NewRaster(screen, vp)

	opts := []loop.Option{loop.WithViewport(vp)}
	if logger != nil {
		opts = append(opts, loop.WithLogger(logger))
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		loop:   loop.New(sim, raster, opts...),
		raster: raster,
		screen: screen,
		styles: styleCache{},
		keys:   DefaultKeyMap(),
		help:   h,
		config: cfg,
		start:  time.Now(),
	}
}

// boardSize returns the cell grid left for the board.
func boardSize(w, h int) (int, int) {
	h -= chromeRows
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Init draws the initial state and starts the frame schedule.
func (m Model) Init() tea.Cmd {
	m.redraw()
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.loop.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.loop.TogglePause()
		m.redraw()
	case core.ActionRestart:
		m.loop.Reset()
		m.loop.Resume()
		m.redraw()
	}

	m.loop.Input(action)
	return m, nil
}

// handleResize fits the board to the new terminal size. The simulation keeps
// its pixel-space state, so nothing is reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(boardSize(msg.Width, msg.Height))
	m.help.Width = msg.Width
	m.redraw()
	return m, nil
}

// handleFrame runs one loop iteration and reschedules while running.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	nowMs := float64(t.Sub(m.start)) / float64(time.Millisecond)
	running := m.loop.Frame(nowMs)
	m.overlay()
	if !running {
		return m, nil
	}
	return m, frameCmd(m.config.TickRate)
}

// redraw paints the current snapshot without stepping.
func (m Model) redraw() {
	m.loop.Redraw()
	m.overlay()
}

// overlay marks a paused board in the middle of the screen.
func (m Model) overlay() {
	if m.loop.Paused() {
		m.screen.DrawTextCentered(m.screen.Height()/2, "PAUSED", core.ColorGold, true)
	}
}

// Loop exposes the underlying frame loop.
func (m Model) Loop() *loop.Loop {
	return m.loop
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return renderStatus(m.raster.Score(), m.loop.Paused()) + "\n" +
		renderScreen(m.screen, m.styles) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for sim.
func Run(sim game.Simulation, cfg core.RuntimeConfig, vp render.Viewport, logger *log.Logger) error {
	model := NewModel(sim, cfg, vp, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
