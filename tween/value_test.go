package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 0, 100))
	assert.Equal(t, 50.0, Lerp(0.5, 0, 100))
	assert.Equal(t, 100.0, Lerp(1, 0, 100))
	assert.Equal(t, 5.0, Lerp(0.5, 10, 0))
	assert.InDelta(t, 110.0, Lerp(1.1, 0, 100), 1e-9)
}

func TestSingleAt(t *testing.T) {
	v := Single{Start: 2, End: 4}.At(0.5)
	assert.Equal(t, 3.0, v.Scalar)
	assert.False(t, v.IsGroup())
	assert.NoError(t, Single{}.validate())
}

func TestGroupAt(t *testing.T) {
	g := Group{
		Start: map[string]float64{"x": 0, "y": 10},
		End:   map[string]float64{"x": 10, "y": 0},
	}

	v := g.At(0.25)
	assert.True(t, v.IsGroup())
	assert.Equal(t, map[string]float64{"x": 2.5, "y": 7.5}, v.Fields)
}

func TestSameKeys(t *testing.T) {
	assert.True(t, sameKeys(map[string]float64{}, map[string]float64{}))
	assert.True(t, sameKeys(map[string]float64{"a": 1, "b": 2}, map[string]float64{"b": 0, "a": 0}))
	assert.False(t, sameKeys(map[string]float64{"a": 1}, map[string]float64{"a": 1, "b": 2}))
	assert.False(t, sameKeys(map[string]float64{"a": 1, "b": 2}, map[string]float64{"a": 1, "c": 2}))
}
