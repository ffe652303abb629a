package tween

// Value is what an animation hands to OnUpdate each frame. Fields is nil in
// single mode and holds one entry per key in group mode.
type Value struct {
	Scalar float64            `json:"scalar"`
	Fields map[string]float64 `json:"fields,omitempty"`
}

// IsGroup reports whether v came from a Group range.
func (v Value) IsGroup() bool {
	return v.Fields != nil
}

// Range is the start and end state of an animation, either Single or Group.
type Range interface {
	// At interpolates the range at eased fraction e.
	At(e float64) Value

	validate() error
}

// Lerp interpolates between start and end at eased fraction e. e is not
// clamped.
func Lerp(e, start, end float64) float64 {
	return e*(end-start) + start
}

// Single animates one scalar.
type Single struct {
	Start float64
	End   float64
}

// At implements Range.
func (s Single) At(e float64) Value {
	return Value{Scalar: Lerp(e, s.Start, s.End)}
}

func (Single) validate() error {
	return nil
}

// Group animates a named set of scalars with one shared eased fraction.
type Group struct {
	Start map[string]float64
	End   map[string]float64
}

// At implements Range. Every key is interpolated with the same e.
func (g Group) At(e float64) Value {
	fields := make(map[string]float64, len(g.Start))
	for k, start := range g.Start {
		fields[k] = Lerp(e, start, g.End[k])
	}
	return Value{Fields: fields}
}

func (g Group) validate() error {
	if g.End == nil || !sameKeys(g.Start, g.End) {
		return ErrMismatchedGroupKeys
	}
	return nil
}

// sameKeys compares key sets; iteration order does not matter.
func sameKeys(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
