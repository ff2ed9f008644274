package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pachinko/internal/core"
)

// CommandKind identifies a recorded drawing command.
type CommandKind string

const (
	CmdFillRect   CommandKind = "fill_rect"
	CmdFillCircle CommandKind = "fill_circle"
	CmdFillText   CommandKind = "fill_text"
	CmdSetScore   CommandKind = "set_score"
)

// Command is one recorded drawing call. Only the fields relevant to Kind are set.
type Command struct {
	Kind   CommandKind
	Rect   core.Rect
	X, Y   float64
	Radius float64
	Color  core.Color
	Text   string
	Font   Font
}

// String formats the command on one line.
func (c Command) String() string {
	switch c.Kind {
	case CmdFillRect:
		return fmt.Sprintf("%s x=%g y=%g w=%g h=%g color=%s", c.Kind, c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, c.Color)
	case CmdFillCircle:
		return fmt.Sprintf("%s x=%g y=%g r=%g color=%s", c.Kind, c.X, c.Y, c.Radius, c.Color)
	case CmdFillText:
		return fmt.Sprintf("%s %q x=%g y=%g size=%g bold=%t color=%s", c.Kind, c.Text, c.X, c.Y, c.Font.Size, c.Font.Bold, c.Color)
	case CmdSetScore:
		return fmt.Sprintf("%s %q", c.Kind, c.Text)
	default:
		return string(c.Kind)
	}
}

// Recorder is a Surface that keeps every command in call order.
type Recorder struct {
	Commands []Command
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) FillRect(rect core.Rect, c core.Color) {
	r.Commands = append(r.Commands, Command{Kind: CmdFillRect, Rect: rect, Color: c})
}

func (r *Recorder) FillCircle(x, y, radius float64, c core.Color) {
	r.Commands = append(r.Commands, Command{Kind: CmdFillCircle, X: x, Y: y, Radius: radius, Color: c})
}

func (r *Recorder) FillText(text string, x, y float64, f Font, c core.Color) {
	r.Commands = append(r.Commands, Command{Kind: CmdFillText, Text: text, X: x, Y: y, Font: f, Color: c})
}

func (r *Recorder) SetScore(text string) {
	r.Commands = append(r.Commands, Command{Kind: CmdSetScore, Text: text})
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Filter returns the commands of the given kind.
func (r *Recorder) Filter(kind CommandKind) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// String lists the commands, one per line.
func (r *Recorder) String() string {
	var sb strings.Builder
	for i, c := range r.Commands {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
