// Package curve provides the Curve type and the operations that turn curves
// into supervised learning samples.
//
// # Creating a Curve
//
// A curve pairs an identifier with its values. The identifier may be any
// scalar and is kept as a string:
//
//	c := curve.New("leu", []float64{1, 2, 3, 4, 5})
//	c.Min(), c.Max() // cached at construction
//
// # Windowing
//
// Sample cuts a curve into overlapping windows and the value following each:
//
//	s := c.Sample(curve.SampleOptions{Timesteps: 3, Front: true, IncludeY: true})
//	// s.X = [[1 2 3] [2 3 4]], s.Y = [[4] [5]]
//
// SampleSet does the same over a Set, clamping Length against the first
// curve of the set.
//
// # Normalisation
//
// Normalise and Denormalise rescale values against the curve's own range:
//
//	n := c.Normalise(values, 0, 1)
//	v := c.Denormalise(n, 0, 1)
//
// Constant curves have no range and use DegenerateDivisor instead; that
// fallback does not round trip exactly.
//
// # Splitting
//
// SplitSet partitions a set into two. Shuffling happens in place:
//
//	train, test := curve.SplitSet(set, curve.SplitOptions{
//	    Value:        0.8,
//	    AsPercentage: true,
//	    Shuffle:      true,
//	    Rand:         rand.New(rand.NewPCG(123, 123)),
//	})
//
// None of the operations in this package fail. Out of range parameters fall
// back to defaults and are reported through the logger set with SetLogger.
package curve
