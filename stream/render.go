package stream

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/tweentx/config"
	"github.com/matt-g-everett/tweentx/tween"
)

var (
	// ErrUnknownRender is returned by NewRenderer for unsupported modes.
	ErrUnknownRender = errors.New("stream: unknown render mode")

	// ErrTooManyPixels is returned by NewRenderer when the strip does not
	// fit in a frame header.
	ErrTooManyPixels = errors.New("stream: pixel count exceeds frame header")
)

// A Renderer turns an animation value into a Frame.
type Renderer interface {
	Render(v tween.Value) *Frame
}

// NewRenderer builds the Renderer selected by cfg.Mode.
func NewRenderer(cfg config.RenderConfig) (Renderer, error) {
	if cfg.Pixels > MaxPixels {
		return nil, fmt.Errorf("%w: %d", ErrTooManyPixels, cfg.Pixels)
	}

	switch cfg.Mode {
	case "", "blend":
		from, err := colorful.Hex(cfg.From)
		if err != nil {
			return nil, fmt.Errorf("stream: from colour: %w", err)
		}
		to, err := colorful.Hex(cfg.To)
		if err != nil {
			return nil, fmt.Errorf("stream: to colour: %w", err)
		}
		return NewBlend(cfg.Pixels, from, to), nil
	case "gradient":
		g := DefaultGradient
		if len(cfg.Gradient) > 1 {
			g = GradientTable(cfg.Gradient)
		}
		return NewGradientTrail(cfg.Pixels, g, cfg.Saturation, cfg.Luminance), nil
	case "hcl":
		return NewHcl(cfg.Pixels), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRender, cfg.Mode)
	}
}

// Blend fills the strip with a colour blended in HCL space between two
// colours. The scalar value is the blend point.
type Blend struct {
	pixels int
	from   colorful.Color
	to     colorful.Color
}

// NewBlend creates a Blend renderer.
func NewBlend(pixels int, from, to colorful.Color) *Blend {
	b := new(Blend)
	b.pixels = pixels
	b.from = from
	b.to = to
	return b
}

// Render implements Renderer.
func (b *Blend) Render(v tween.Value) *Frame {
	f := NewFrame(b.pixels)
	f.Fill(b.from.BlendHcl(b.to, v.Scalar).Clamped())
	return f
}

// A GradientTrail lays a gradient along the strip. The scalar value shifts
// the gradient by that fraction of the strip.
type GradientTrail struct {
	pixels     int
	gradient   GradientTable
	saturation float64
	luminance  float64
}

// NewGradientTrail creates a GradientTrail renderer.
func NewGradientTrail(pixels int, gradient GradientTable, saturation, luminance float64) *GradientTrail {
	g := new(GradientTrail)
	g.pixels = pixels
	g.gradient = gradient
	g.saturation = saturation
	g.luminance = luminance
	return g
}

// Render implements Renderer.
func (g *GradientTrail) Render(v tween.Value) *Frame {
	f := NewFrame(g.pixels)
	numPixels := f.Len()
	for i := 0; i < numPixels; i++ {
		t := wrap(float64(i)/float64(numPixels) - v.Scalar)
		f.pixels[i] = g.gradient.GetColor(t, g.saturation, g.luminance)
	}
	return f
}

// Hcl fills the strip from group fields "h", "c" and "l". Missing fields
// fall back to a dim white.
type Hcl struct {
	pixels int
}

// NewHcl creates an Hcl renderer.
func NewHcl(pixels int) *Hcl {
	h := new(Hcl)
	h.pixels = pixels
	return h
}

// Render implements Renderer.
func (h *Hcl) Render(v tween.Value) *Frame {
	field := func(key string, fallback float64) float64 {
		if x, ok := v.Fields[key]; ok {
			return x
		}
		return fallback
	}

	f := NewFrame(h.pixels)
	f.Fill(colorful.Hcl(field("h", 0), field("c", 0), field("l", 0.25)).Clamped())
	return f
}
