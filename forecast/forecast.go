// Package forecast runs an external sequence model over a curve's windows
// and maps its output back onto the curve's scale.
package forecast

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sartorproj/gocurve/curve"
	"github.com/sartorproj/gocurve/stats"
)

var ErrNoWindows = errors.New("curve yields no windows")

// Model is a trained sequence model. Predict receives an n x timesteps
// matrix and returns an n x k matrix whose first column is used.
type Model interface {
	Predict(x [][]float64) ([][]float64, error)
}

// ModelFunc adapts a function to Model.
type ModelFunc func(x [][]float64) ([][]float64, error)

// Predict calls f.
func (f ModelFunc) Predict(x [][]float64) ([][]float64, error) {
	return f(x)
}

// Result is one curve's forecast, ready for presentation.
type Result struct {
	ID         string
	Values     []float64 // original curve values
	Prediction []float64 // denormalised, one per window
	Offset     int       // index in Values of the first predicted point
	MSE        float64   // in the model's space, against the window targets
}

// Run samples c with opts, predicts every window and denormalises the first
// output column with the curve's own range. Targets are always sampled.
func Run(c *curve.Curve, m Model, opts curve.SampleOptions) (*Result, error) {
	opts.IncludeY = true

	s := c.Sample(opts)
	if s.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", c.ID(), ErrNoWindows)
	}

	out, err := m.Predict(s.X)
	if err != nil {
		return nil, fmt.Errorf("%s: predict: %w", c.ID(), err)
	}

	if len(out) != s.Len() {
		return nil, fmt.Errorf("%s: model returned %d rows for %d windows", c.ID(), len(out), s.Len())
	}

	predicted := stats.Column(out, 0)
	if len(predicted) != s.Len() {
		return nil, fmt.Errorf("%s: model returned empty rows", c.ID())
	}

	prediction := predicted
	if opts.Normalise {
		prediction = c.Denormalise(predicted, opts.A, opts.B)
	}

	length := opts.Length
	if length <= 0 || length > c.Len() {
		length = c.Len()
	}

	// Sample raises a width below 1 to 1
	timesteps := max(opts.Timesteps, 1)

	offset := c.Len() - length + timesteps
	if opts.Front {
		offset = timesteps
	}

	return &Result{
		ID:         c.ID(),
		Values:     c.Values(),
		Prediction: prediction,
		Offset:     offset,
		MSE:        stats.MSE(stats.Column(s.Y, 0), predicted),
	}, nil
}

// Pick returns n distinct indices drawn from [0,total). n is clamped to
// [0,total]; a nil rng uses the package level source.
func Pick(n, total int, rng *rand.Rand) []int {
	if total <= 0 {
		return []int{}
	}

	n = min(max(n, 0), total)

	var perm []int
	if rng != nil {
		perm = rng.Perm(total)
	} else {
		perm = rand.Perm(total)
	}

	return perm[:n]
}
