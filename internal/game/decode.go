package game

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pachinko/internal/core"
)

// Snapshot keys used by loosely-typed producers (embedded interpreters,
// fixture files).
const (
	keyScore         = "score"
	keyBalls         = "balls"
	keyPins          = "pins"
	keyPockets       = "pockets"
	keyStatus        = "game_status"
	keyBigWinStart   = "big_win_start_time"
	keyBigWinMessage = "current_big_win_message"
	keyRainbowHue    = "rainbow_hue"
)

// Decode converts a loosely-typed snapshot into a State. Tuples are lists:
// balls [x, y, ...], pins [x, y], pockets [x, y, w, h, bigWin]. Missing or
// malformed fields are defaulted, malformed tuples skipped; the result is
// normalized.
func Decode(m map[string]any) State {
	st := NewState()

	if v, ok := number(m[keyScore]); ok {
		st.Score = scoreFromFloat(v)
	}

	for _, t := range tuples(m[keyBalls]) {
		if len(t) < 2 {
			continue
		}
		x, okX := number(t[0])
		y, okY := number(t[1])
		if !okX || !okY {
			continue
		}
		b := Ball{X: x, Y: y}
		if len(t) >= 4 {
			b.VX, _ = number(t[2])
			b.VY, _ = number(t[3])
		}
		st.Balls = append(st.Balls, b)
	}

	for _, t := range tuples(m[keyPins]) {
		if len(t) < 2 {
			continue
		}
		x, okX := number(t[0])
		y, okY := number(t[1])
		if !okX || !okY {
			continue
		}
		st.Pins = append(st.Pins, Pin{X: x, Y: y})
	}

	for _, t := range tuples(m[keyPockets]) {
		if len(t) < 4 {
			continue
		}
		var vals [4]float64
		valid := true
		for i := range vals {
			v, ok := number(t[i])
			if !ok {
				valid = false
				break
			}
			vals[i] = v
		}
		if !valid {
			continue
		}
		p := Pocket{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
		if len(t) >= 5 {
			p.BigWin, _ = t[4].(bool)
		}
		st.Pockets = append(st.Pockets, p)
	}

	if s, ok := m[keyStatus].(string); ok {
		st.Status = GameStatus(s)
	}
	if v, ok := number(m[keyBigWinStart]); ok {
		st.BigWinStart = v
		st.HasBigWinStart = true
	}
	if s, ok := m[keyBigWinMessage].(string); ok {
		st.BigWinMessage = s
	}
	if v, ok := number(m[keyRainbowHue]); ok {
		st.RainbowHue = v
	}

	return st.Normalize()
}

// Encode is the inverse of Decode, producing the loosely-typed shape.
func Encode(st State) map[string]any {
	balls := make([]any, 0, len(st.Balls))
	for _, b := range st.Balls {
		balls = append(balls, []any{b.X, b.Y, b.VX, b.VY})
	}
	pins := make([]any, 0, len(st.Pins))
	for _, p := range st.Pins {
		pins = append(pins, []any{p.X, p.Y})
	}
	pockets := make([]any, 0, len(st.Pockets))
	for _, p := range st.Pockets {
		pockets = append(pockets, []any{p.X, p.Y, p.Width, p.Height, p.BigWin})
	}

	var start any
	if st.HasBigWinStart {
		start = st.BigWinStart
	}

	return map[string]any{
		keyScore:         st.Score,
		keyBalls:         balls,
		keyPins:          pins,
		keyPockets:       pockets,
		keyStatus:        string(st.Status),
		keyBigWinStart:   start,
		keyBigWinMessage: st.BigWinMessage,
		keyRainbowHue:    st.RainbowHue,
	}
}

// ParseYAML reads a snapshot fixture.
func ParseYAML(data []byte) (State, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return State{}, fmt.Errorf("game: parse snapshot: %w", err)
	}
	if m == nil {
		return NewState(), nil
	}
	return Decode(m), nil
}

// MarshalYAML renders a snapshot in fixture form.
func MarshalYAML(st State) ([]byte, error) {
	data, err := yaml.Marshal(Encode(st))
	if err != nil {
		return nil, fmt.Errorf("game: marshal snapshot: %w", err)
	}
	return data, nil
}

// maxScore is the largest decoded score; it fits int on every platform.
const maxScore = math.MaxInt32

// scoreFromFloat converts a decoded score. Non-finite values become 0 and
// out-of-range values saturate, so the int conversion is always defined.
func scoreFromFloat(v float64) int {
	if !core.Finite(v) {
		return 0
	}
	return int(core.ClampF(v, 0, maxScore))
}

// tuples returns the list elements of v that are themselves lists.
func tuples(v any) [][]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([][]any, 0, len(list))
	for _, item := range list {
		if t, ok := item.([]any); ok {
			out = append(out, t)
		}
	}
	return out
}

// number accepts any numeric kind a decoder may produce.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}
