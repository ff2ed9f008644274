package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "ball grazing pocket top",
			a:        RectAround(100, 545, 5),
			b:        NewRect(80, 550, 80, 20),
			expected: false,
		},
		{
			name:     "ball inside pocket",
			a:        RectAround(100, 551, 5),
			b:        NewRect(80, 550, 80, 20),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(10, 20, 5)
	if r.X != 5 || r.Y != 15 || r.W != 10 || r.H != 10 {
		t.Errorf("RectAround(10, 20, 5) = %+v", r)
	}
	cx, cy := r.Center()
	if cx != 10 || cy != 20 {
		t.Errorf("Center() = (%v, %v), expected (10, 20)", cx, cy)
	}
}

func TestWrap01(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0.25, 0.25},
		{1.25, 0.25},
		{-0.25, 0.75},
		{1, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, tc := range tests {
		result := Wrap01(tc.in)
		if math.Abs(result-tc.expected) > 1e-9 {
			t.Errorf("Wrap01(%v) = %v, expected %v", tc.in, result, tc.expected)
		}
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name     string
		hue      float64
		expected Color
	}{
		{"red", 0, RGB(255, 0, 0)},
		{"green", 120, RGB(0, 255, 0)},
		{"blue", 240, RGB(0, 0, 255)},
		{"wraps past 360", 480, RGB(0, 255, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := HSL(tc.hue, 1, 0.5)
			if result != tc.expected {
				t.Errorf("HSL(%v, 1, 0.5) = %v, expected %v", tc.hue, result, tc.expected)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if ColorRed.Hex() != "#ff0000" {
		t.Errorf("ColorRed.Hex() = %q", ColorRed.Hex())
	}
	if RGB(0, 128, 255).Hex() != "#0080ff" {
		t.Errorf("Hex() = %q, expected #0080ff", RGB(0, 128, 255).Hex())
	}
}
