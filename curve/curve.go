package curve

import (
	"strconv"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// Curve is a named, immutable univariate series with cached extrema.
type Curve struct {
	id     string
	values []float64
	min    float64
	max    float64
}

// New creates a curve. The id may be any scalar (int, string, float) and is
// stored in its string form. Values are copied.
func New(id any, values []float64) *Curve {
	vs := make([]float64, len(values))
	copy(vs, values)

	c := &Curve{
		id:     cast.ToString(id),
		values: vs,
	}

	if len(vs) == 0 {
		logger.WithFields(l.StringField("id", c.id)).Debug("curve has no values")

		return c
	}

	c.min, c.max = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < c.min {
			c.min = v
		}
		if v > c.max {
			c.max = v
		}
	}

	return c
}

// ID returns the curve identifier.
func (c *Curve) ID() string {
	return c.id
}

// Len returns the number of values.
func (c *Curve) Len() int {
	return len(c.values)
}

// Values returns a copy of the curve values.
func (c *Curve) Values() []float64 {
	vs := make([]float64, len(c.values))
	copy(vs, c.values)

	return vs
}

// Min returns the smallest value seen at construction.
func (c *Curve) Min() float64 {
	return c.min
}

// Max returns the largest value seen at construction.
func (c *Curve) Max() float64 {
	return c.max
}

// IsDegenerate reports whether all values are equal.
func (c *Curve) IsDegenerate() bool {
	return c.max <= c.min
}

// CSV renders the id followed by every value, joined by delimiter.
func (c *Curve) CSV(delimiter string) string {
	var sb strings.Builder

	sb.WriteString(c.id)

	for _, v := range c.values {
		sb.WriteString(delimiter)
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}

	return sb.String()
}

// String returns the tab separated CSV form.
func (c *Curve) String() string {
	return c.CSV("\t")
}
