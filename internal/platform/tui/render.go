package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pachinko/internal/core"
)

// styleKey identifies a cell style. Runs of cells sharing one are rendered
// with a single escape sequence.
type styleKey struct {
	fg, bg core.Color
	bold   bool
}

func cellStyle(c core.Cell) styleKey {
	return styleKey{fg: c.FG, bg: c.BG, bold: c.Bold}
}

// styleCache memoizes lipgloss styles per cell style.
type styleCache map[styleKey]lipgloss.Style

func (sc styleCache) get(k styleKey) lipgloss.Style {
	if st, ok := sc[k]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(k.fg.Hex())).
		Background(lipgloss.Color(k.bg.Hex())).
		Bold(k.bold)
	sc[k] = st
	return st
}

var (
	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, styleCache{})
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := cellStyle(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cellStyle(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}

// renderStatus renders the score label line.
func renderStatus(score string, paused bool) string {
	line := scoreStyle.Render("SCORE " + score)
	if paused {
		line += "  " + pausedStyle.Render("PAUSED")
	}
	return line
}
