package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pachinko/internal/core"
)

func TestRenderScreenKeepsGlyphs(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.Set(0, 0, core.Cell{Rune: '●', FG: core.ColorWhite, BG: core.ColorBlack})
	s.Set(1, 0, core.Cell{Rune: '#', FG: core.ColorRed, BG: core.ColorGreen, Bold: true})
	s.DrawText(2, 1, "ok", core.ColorBlue, false)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, expected 6", i, w)
		}
	}
	for _, want := range []string{"●", "#", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
}

func TestStyleCacheReuses(t *testing.T) {
	sc := styleCache{}
	k := styleKey{fg: core.ColorWhite, bg: core.ColorBlack}
	sc.get(k)
	sc.get(k)
	sc.get(styleKey{fg: core.ColorWhite, bg: core.ColorBlack, bold: true})
	if len(sc) != 2 {
		t.Errorf("expected 2 cached styles, got %d", len(sc))
	}
}

func TestRenderStatus(t *testing.T) {
	if got := renderStatus("30", false); !strings.Contains(got, "SCORE 30") || strings.Contains(got, "PAUSED") {
		t.Errorf("status = %q", got)
	}
	if got := renderStatus("0", true); !strings.Contains(got, "PAUSED") {
		t.Errorf("paused status = %q", got)
	}
}
