package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(from, to float64) []float64 {
	var vs []float64
	for v := from; v <= to; v++ {
		vs = append(vs, v)
	}

	return vs
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		id   any
		want string
	}{
		{"string", "leu", "leu"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.id, []float64{3, 1, 2})
			assert.Equal(t, tt.want, c.ID())
			assert.Equal(t, 3, c.Len())
			assert.Equal(t, 1.0, c.Min())
			assert.Equal(t, 3.0, c.Max())
		})
	}
}

func TestNewCopiesValues(t *testing.T) {
	vs := []float64{1, 2, 3}
	c := New("a", vs)

	vs[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, c.Values())

	got := c.Values()
	got[1] = 100
	assert.Equal(t, []float64{1, 2, 3}, c.Values())
	assert.Equal(t, 3.0, c.Max())
}

func TestEmptyCurve(t *testing.T) {
	c := New("empty", nil)

	assert.Equal(t, 0, c.Len())
	assert.True(t, c.IsDegenerate())

	s := c.Sample(SampleOptions{Timesteps: 2, IncludeY: true, Normalise: true, B: 1})
	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.Y)
}

func TestCSV(t *testing.T) {
	c := New(7, []float64{1, 2.5, -3})

	assert.Equal(t, "7\t1\t2.5\t-3", c.String())
	assert.Equal(t, "7,1,2.5,-3", c.CSV(","))
}

func TestNormaliseRoundTrip(t *testing.T) {
	c := New("x", []float64{-4, 2, 10, 7.5, 3})
	vs := c.Values()

	ranges := [][2]float64{{0, 1}, {-1, 1}, {10, 20}, {-0.5, 0.25}}
	for _, r := range ranges {
		n := c.Normalise(vs, r[0], r[1])
		for _, v := range n {
			assert.GreaterOrEqual(t, v, r[0]-1e-12)
			assert.LessOrEqual(t, v, r[1]+1e-12)
		}

		back := c.Denormalise(n, r[0], r[1])
		require.Len(t, back, len(vs))
		for i := range vs {
			assert.InDelta(t, vs[i], back[i], 1e-9)
		}
	}
}

func TestNormaliseValues(t *testing.T) {
	c := New("x", []float64{0, 5, 10})

	assert.Equal(t, []float64{0, 0.5, 1}, c.Normalise([]float64{0, 5, 10}, 0, 1))
	assert.Equal(t, []float64{-1, 0, 1}, c.Normalise([]float64{0, 5, 10}, -1, 1))
}

func TestNormaliseEmptyRangeIsNoop(t *testing.T) {
	c := New("x", []float64{0, 5, 10})
	in := []float64{1, 2, 3}

	assert.Equal(t, in, c.Normalise(in, 1, 1))
	assert.Equal(t, in, c.Normalise(in, 2, 1))
	assert.Equal(t, in, c.Denormalise(in, 1, 0))
}

func TestNormaliseDegenerate(t *testing.T) {
	c := New("flat", []float64{5, 5, 5, 5})
	require.True(t, c.IsDegenerate())

	n := c.Normalise(c.Values(), 0, 1)
	for _, v := range n {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		assert.InDelta(t, 0.1, v, 1e-12)
	}

	back := c.Denormalise(n, 0, 1)
	for _, v := range back {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		assert.InDelta(t, 5, v, 1e-9)
	}

	// the fallback ignores [a,b], so it is not an inverse for other ranges
	assert.InDelta(t, 0.1, c.Normalise([]float64{5}, 3, 4)[0], 1e-12)
}

func TestNormaliseDegenerateZero(t *testing.T) {
	c := New("zero", []float64{0, 0, 0})

	n := c.Normalise(c.Values(), 0, 1)
	for _, v := range n {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}

	back := c.Denormalise(n, 0, 1)
	for _, v := range back {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestDenormaliseMatrix(t *testing.T) {
	c := New("x", []float64{10, 20})

	got := c.DenormaliseMatrix([][]float64{{0}, {0.5}, {1}}, 0, 1)
	assert.Equal(t, [][]float64{{10}, {15}, {20}}, got)

	assert.Equal(t, [][]float64{{0}, {1}}, c.NormaliseMatrix([][]float64{{10}, {20}}, 0, 1))
}
