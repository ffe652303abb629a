package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/tweentx/config"
)

// GradientTable stores a look-up table of hues keyed by position in [0, 1].
type GradientTable []config.GradientStop

// DefaultGradient runs pink through the rainbow and back to pink.
var DefaultGradient = GradientTable{
	{Hue: 0.0, Pos: 0.0},
	{Hue: 6.0, Pos: 0.04},   // Pink
	{Hue: 87.0, Pos: 0.14},  // Red
	{Hue: 88.0, Pos: 0.28},  // Orange
	{Hue: 98.0, Pos: 0.42},  // Yellow
	{Hue: 180.0, Pos: 0.56}, // Green
	{Hue: 190.0, Pos: 0.70}, // Turquoise
	{Hue: 320.0, Pos: 0.84}, // Blue
	{Hue: 328.0, Pos: 0.91}, // Violet
	{Hue: 360.0, Pos: 1.0},  // Pink wrap
}

// Hue returns the hue at position t, blending linearly between stops.
func (g GradientTable) Hue(t float64) float64 {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			return (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
		}
	}

	if t < g[0].Pos {
		return g[0].Hue
	}
	return g[len(g)-1].Hue
}

// GetColor gets a colour at position t with chroma s and luminance l.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	return colorful.Hcl(g.Hue(t), s, l)
}

// wrap folds t into [0, 1).
func wrap(t float64) float64 {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	return t
}
