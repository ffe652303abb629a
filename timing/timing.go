// Package timing provides easing curves that map a progress fraction in
// [0, 1] to an eased output. Outputs are not clamped; custom curves may
// overshoot.
package timing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fogleman/ease"
)

// ErrUnknownTiming is returned by Lookup for names that are not registered.
var ErrUnknownTiming = errors.New("timing: unknown timing function")

// Func maps a progress fraction to an eased fraction.
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// EaseIn is a cubic ease in, t^3.
func EaseIn(t float64) float64 {
	return ease.InCubic(t)
}

// EaseOut is a cubic ease out, 1-(1-t)^3.
func EaseOut(t float64) float64 {
	return ease.OutCubic(t)
}

// EaseOutInverted is 1-t^3: it starts at 1 and falls to 0.
func EaseOutInverted(t float64) float64 {
	return 1 - t*t*t
}

// EaseInOut is 4t^3 below the midpoint and 4(t-1)^3+1 from it onwards.
func EaseInOut(t float64) float64 {
	return ease.InOutCubic(t)
}

var registry = map[string]Func{
	"linear":    Linear,
	"easeIn":    EaseIn,
	"easeOut":   EaseOut,
	"easeInOut": EaseInOut,

	"easeOutInverted": EaseOutInverted,

	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"inQuint":      ease.InQuint,
	"outQuint":     ease.OutQuint,
	"inOutQuint":   ease.InOutQuint,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
}

// Lookup finds a timing function by name. An empty name means Linear.
func Lookup(name string) (Func, error) {
	if name == "" {
		return Linear, nil
	}

	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTiming, name)
	}

	return f, nil
}

// Names lists the registered timing functions in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
