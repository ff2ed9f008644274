// Package tui hosts the frame loop inside a Bubble Tea program: it schedules
// frames, maps keys to actions and shows the rasterized board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to run one frame at the given wall time.
type FrameMsg time.Time

// frameCmd schedules the next frame at the configured rate.
func frameCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
