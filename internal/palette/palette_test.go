package palette

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func sameColor(a, b colorful.Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps
}

func TestScale(t *testing.T) {
	c := colorful.Color{R: 0.2, G: 0.4, B: 1}
	tests := []struct {
		s    float64
		want colorful.Color
	}{
		{0, colorful.Color{}},
		{0.5, colorful.Color{R: 0.1, G: 0.2, B: 0.5}},
		{1, c},
		{2, colorful.Color{R: 0.4, G: 0.8, B: 2}},
	}
	for _, tt := range tests {
		if got := Scale(c, tt.s); !sameColor(got, tt.want) {
			t.Errorf("Scale(%v, %v) = %v, want %v", c, tt.s, got, tt.want)
		}
	}
}

func TestAddMul(t *testing.T) {
	a := colorful.Color{R: 0.5, G: 0.25, B: 1}
	b := colorful.Color{R: 0.5, G: 1, B: 0}

	if got, want := Add(a, b), (colorful.Color{R: 1, G: 1.25, B: 1}); !sameColor(got, want) {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := Mul(a, b), (colorful.Color{R: 0.25, G: 0.25, B: 0}); !sameColor(got, want) {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}
