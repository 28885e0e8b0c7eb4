package curve

import "github.com/sgostarter/i/l"

// DegenerateDivisor scales values of a constant curve (max == min) where no
// range is available. The forward and inverse fallbacks are an approximation
// and are not exact inverses of each other.
const DegenerateDivisor = 10.0

// Normalise rescales seq into [a,b] using the curve's range. The input is
// returned unchanged unless a < b. A constant curve divides by its max and
// then by DegenerateDivisor instead.
func (c *Curve) Normalise(seq []float64, a, b float64) []float64 {
	if !(a < b) {
		logger.WithFields(l.StringField("id", c.id)).Debug("normalise skipped: empty target range")

		return seq
	}

	out := make([]float64, len(seq))

	if c.max > c.min {
		span := c.max - c.min
		for i, v := range seq {
			out[i] = (b-a)*((v-c.min)/span) + a
		}

		return out
	}

	logger.WithFields(l.StringField("id", c.id)).Debug("normalise: degenerate curve, using divisor fallback")

	for i, v := range seq {
		if c.max != 0 {
			v /= c.max
		}
		out[i] = v / DegenerateDivisor
	}

	return out
}

// Denormalise maps seq from [a,b] back onto the curve's range. It mirrors
// Normalise, including the constant curve fallback.
func (c *Curve) Denormalise(seq []float64, a, b float64) []float64 {
	if !(a < b) {
		logger.WithFields(l.StringField("id", c.id)).Debug("denormalise skipped: empty target range")

		return seq
	}

	out := make([]float64, len(seq))

	if c.max > c.min {
		span := c.max - c.min
		for i, v := range seq {
			out[i] = ((v-a)*span)/(b-a) + c.min
		}

		return out
	}

	for i, v := range seq {
		v *= DegenerateDivisor
		if c.max != 0 {
			v *= c.max
		}
		out[i] = v
	}

	return out
}

// NormaliseMatrix applies Normalise to every row of m.
func (c *Curve) NormaliseMatrix(m [][]float64, a, b float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = c.Normalise(row, a, b)
	}

	return out
}

// DenormaliseMatrix applies Denormalise to every row of m, typically a
// model's n x 1 prediction.
func (c *Curve) DenormaliseMatrix(m [][]float64, a, b float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = c.Denormalise(row, a, b)
	}

	return out
}
