// Package wave computes the per-frame state of the sphere row: elevation from a
// time value, and the colours and shininess derived from that elevation.
package wave

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/wave-spheres/internal/palette"
)

const (
	MinElevation = -1.0
	MaxElevation = 1.0

	// SliderMax is the upper bound of the manual time slider.
	SliderMax = 100

	minShininess = 50
	maxShininess = 100
)

// highlightBase is the emissive tint at full elevation (#7573ff).
var highlightBase = colorful.Color{R: 0x75 / 255.0, G: 0x73 / 255.0, B: 0xff / 255.0}

// Point is one sphere of the wave. X is fixed at creation, the rest is
// recomputed by Field.Update.
type Point struct {
	X         float64
	Y         float64
	Color     color.RGBA
	Highlight colorful.Color
	Shininess float64
}

// Field is the fixed row of points.
type Field struct {
	Points []Point
	time   float64
}

// NewField lays out count points centred on the origin, spacing apart.
func NewField(count int, spacing float64) *Field {
	f := &Field{Points: make([]Point, count)}
	for i := range f.Points {
		x := (float64(i) - float64(count)/2) * spacing
		f.Points[i] = Point{X: x}
	}
	f.Update(0)
	return f
}

// Update recomputes every point for time t.
func (f *Field) Update(t float64) {
	f.time = t
	for i := range f.Points {
		p := &f.Points[i]
		p.Y = Offset(p.X, t)
		p.Color = ColorFor(p.Y)
		p.Highlight = HighlightFor(p.Y)
		p.Shininess = Shininess(p.Y)
	}
}

// Time returns the value passed to the last Update.
func (f *Field) Time() float64 { return f.time }

// Offset is the vertical position of a point at x for time t.
func Offset(x, t float64) float64 {
	return math.Sin(x + t)
}

// ColorFor maps elevation to a blue (low) to red (high) gradient.
// Elevation outside [-1, 1] is clamped.
func ColorFor(elevation float64) color.RGBA {
	v := uint8(math.Floor(normalize(elevation) * 255))
	return color.RGBA{R: v, G: 0, B: 255 - v, A: 255}
}

// HighlightFor scales the emissive base tint by normalized elevation.
func HighlightFor(elevation float64) colorful.Color {
	n := normalize(elevation)
	return palette.Scale(highlightBase, n)
}

// Shininess grows with elevation but never drops below 50.
func Shininess(elevation float64) float64 {
	return math.Max(minShininess, maxShininess*(elevation+1)/2)
}

// ResolveTime picks the animation time for this frame: wall-clock elapsed
// seconds wrapped to one period when auto-play is on, otherwise the slider
// position (0..SliderMax) scaled to one period.
func ResolveTime(autoPlay bool, elapsedSeconds, sliderValue float64) float64 {
	if autoPlay {
		return math.Mod(elapsedSeconds, 2*math.Pi)
	}
	return sliderValue / SliderMax * 2 * math.Pi
}

func normalize(elevation float64) float64 {
	return clamp01((elevation - MinElevation) / (MaxElevation - MinElevation))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
