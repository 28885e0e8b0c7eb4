package curve

import (
	"math"
	"math/rand/v2"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// Set is an ordered collection of curves. Curves need not share a length.
type Set []*Curve

// IDs returns the curve identifiers in set order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for _, c := range s {
		ids = append(ids, c.ID())
	}

	return ids
}

// Find returns the first curve with the given id.
func (s Set) Find(id string) (*Curve, bool) {
	for _, c := range s {
		if c.ID() == id {
			return c, true
		}
	}

	return nil, false
}

// SampleSet windows every curve of the set and concatenates the rows in set
// order. Length is clamped against the first curve only; every curve is then
// cut to that length, so shorter curves contribute fewer windows and longer
// ones are truncated. Each curve is normalised with its own range.
func SampleSet(set Set, opts SampleOptions) Samples {
	out := Samples{X: [][]float64{}}
	if opts.IncludeY {
		out.Y = [][]float64{}
	}

	if len(set) == 0 {
		logger.Debug("sample set: empty set")

		return out
	}

	opts.Timesteps = checkTimesteps(opts.Timesteps)

	first := set[0].Len()

	length := opts.Length
	if length <= 0 || length > first {
		length = first
	}

	for _, c := range set {
		vs := c.values

		if opts.Normalise && opts.A < opts.B {
			vs = c.Normalise(vs, opts.A, opts.B)
		}

		if opts.Front {
			vs = vs[:min(length, len(vs))]
		} else {
			vs = vs[tailStart(len(vs), length):]
		}

		if len(vs) < length {
			logger.WithFields(l.StringField("id", c.id), l.IntField("length", length),
				l.IntField("available", len(vs))).Debug("sample set: curve shorter than first curve")
		}

		out.Append(window(vs, opts.Timesteps, opts.IncludeY))
	}

	return out
}

// tailStart returns the index of the last length values of an n long
// sequence. A negative offset counts back from the end once more and is
// floored at zero, so a curve shorter than length starts at 2n-length and
// keeps only its last length-n values, or all of them once length reaches 2n.
func tailStart(n, length int) int {
	start := n - length
	if start < 0 {
		start += n
	}

	return max(start, 0)
}

// SplitOptions controls SplitSet.
type SplitOptions struct {
	// Value is a fraction in (0,1] when AsPercentage is set, otherwise a
	// count in [1,len(set)]. Invalid values fall back to 0.5 and len(set)/3.
	Value        float64
	AsPercentage bool
	// Shuffle reorders the input set in place before splitting.
	Shuffle bool
	// Rand is the shuffle source; nil uses the package level source.
	Rand *rand.Rand
}

// DefaultSplitOptions returns a shuffled count based split with the count
// left to its fallback.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{Shuffle: true}
}

// SplitSet partitions set into a prefix and a suffix. When opts.Shuffle is
// set the input set itself is shuffled first; callers needing the original
// order must copy it. Every curve ends up in exactly one of the two results.
func SplitSet(set Set, opts SplitOptions) (Set, Set) {
	if opts.Shuffle {
		swap := func(i, j int) { set[i], set[j] = set[j], set[i] }
		if opts.Rand != nil {
			opts.Rand.Shuffle(len(set), swap)
		} else {
			rand.Shuffle(len(set), swap)
		}
	}

	n := len(set)

	var size int

	if opts.AsPercentage {
		value := opts.Value
		if math.IsNaN(value) || value <= 0 || value > 1 {
			logger.WithFields(l.StringField("value", cast.ToString(value))).Debug("split fraction out of (0,1], using 0.5")

			value = 0.5
		}

		size = int(value * float64(n))
	} else {
		size = toCount(opts.Value)
		if size <= 0 || size > n {
			logger.WithFields(l.StringField("value", cast.ToString(opts.Value))).Debug("split count out of range, using a third")

			size = n / 3
		}
	}

	first := make(Set, size)
	copy(first, set[:size])

	second := make(Set, n-size)
	copy(second, set[size:])

	return first, second
}

func toCount(v float64) int {
	if math.IsNaN(v) || v >= math.MaxInt32 || v <= math.MinInt32 {
		return 0
	}

	return int(v)
}
