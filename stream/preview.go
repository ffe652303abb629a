package stream

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-g-everett/tweentx/tween"
)

// Preview writes one line per animation value to a terminal: a progress
// bar for the value and a swatch of the rendered frame's first pixel.
type Preview struct {
	out      io.Writer
	renderer Renderer
	width    int
	min, max float64

	bar   lipgloss.Style
	label lipgloss.Style
}

// NewPreview creates a Preview. min and max bound the bar; values outside
// them are drawn clipped.
func NewPreview(out io.Writer, renderer Renderer, width int, min, max float64) *Preview {
	if width < 0 {
		width = 0
	}

	p := new(Preview)
	p.out = out
	p.renderer = renderer
	p.width = width
	p.min = min
	p.max = max
	p.bar = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	p.label = lipgloss.NewStyle().Bold(true)
	return p
}

// Update has the shape of a tween.Config.OnUpdate.
func (p *Preview) Update(v tween.Value) {
	fmt.Fprintln(p.out, p.Line(v))
}

// Line formats v without writing it.
func (p *Preview) Line(v tween.Value) string {
	swatch := "  "
	if p.renderer != nil {
		f := p.renderer.Render(v)
		if f.Len() > 0 {
			swatch = lipgloss.NewStyle().
				Background(lipgloss.Color(f.Pixel(0).Clamped().Hex())).
				Render("  ")
		}
	}

	if !v.IsGroup() {
		return fmt.Sprintf("%s %s %s", swatch, p.bar.Render(p.fill(v.Scalar)), p.label.Render(fmt.Sprintf("%.3f", v.Scalar)))
	}

	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%.3f", k, v.Fields[k]))
	}
	return fmt.Sprintf("%s %s", swatch, p.label.Render(strings.Join(parts, " ")))
}

func (p *Preview) fill(x float64) string {
	span := p.max - p.min
	frac := 0.0
	if span != 0 {
		frac = (x - p.min) / span
	}
	frac = math.Max(0, math.Min(1, frac))

	n := int(math.Round(frac * float64(p.width)))
	return strings.Repeat("█", n) + strings.Repeat("░", p.width-n)
}
