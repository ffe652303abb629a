package timing

import "sync"

// Sample builds a look-up table of length points evenly spaced over [0, 1],
// both ends included.
func Sample(f Func, length int) []float64 {
	if length < 2 {
		length = 2
	}

	increment := 1.0 / float64(length-1)
	lut := make([]float64, length)
	for i := 0; i < length; i++ {
		lut[i] = f(float64(i) * increment)
	}
	lut[length-1] = f(1)

	return lut
}

// Memoizer caches look-up tables per timing name and length.
type Memoizer struct {
	mu     sync.Mutex
	tables map[memoKey][]float64
}

type memoKey struct {
	name   string
	length int
}

// NewMemoizer creates an empty Memoizer.
func NewMemoizer() *Memoizer {
	m := new(Memoizer)
	m.tables = make(map[memoKey][]float64)
	return m
}

// Sample returns the table for the named timing function, building it on
// first use. Callers must not modify the returned slice.
func (m *Memoizer) Sample(name string, length int) ([]float64, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	key := memoKey{name, length}

	m.mu.Lock()
	defer m.mu.Unlock()

	if lut, ok := m.tables[key]; ok {
		return lut, nil
	}

	lut := Sample(f, length)
	m.tables[key] = lut
	return lut, nil
}
