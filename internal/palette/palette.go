// Package palette has the colour arithmetic shared by the wave tints and the
// scene lighting. go-colorful blends between colours but has no
// component-wise sum or product, which lighting needs.
package palette

import "github.com/lucasb-eyer/go-colorful"

var black = colorful.Color{}

// Scale multiplies every channel of c by s. s may exceed 1.
func Scale(c colorful.Color, s float64) colorful.Color {
	return black.BlendRgb(c, s)
}

// Add sums two colours channel by channel.
func Add(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

// Mul multiplies two colours channel by channel, e.g. a surface colour by the
// colour of the light falling on it.
func Mul(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B}
}
