package stats

import (
	"math"
	"sort"

	"github.com/sartorproj/gocurve/curve"
)

// Summary describes the distribution of a curve's values.
type Summary struct {
	ID     string
	Len    int
	Min    float64
	Max    float64
	Mean   float64
	Std    float64
	Median float64
}

// Describe summarises c. Statistics of an empty curve are NaN.
func Describe(c *curve.Curve) Summary {
	vs := c.Values()

	s := Summary{
		ID:     c.ID(),
		Len:    len(vs),
		Min:    c.Min(),
		Max:    c.Max(),
		Mean:   mean(vs),
		Std:    math.Sqrt(variance(vs)),
		Median: median(vs),
	}

	if len(vs) == 0 {
		s.Min, s.Max, s.Mean, s.Median = math.NaN(), math.NaN(), math.NaN(), math.NaN()
	}

	return s
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance is the sample variance.
func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - m
		sumSq += diff * diff
	}
	return sumSq / float64(len(values)-1)
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
