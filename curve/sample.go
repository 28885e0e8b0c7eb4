package curve

import "github.com/sgostarter/i/l"

// SampleOptions controls how a curve is cut into windows.
type SampleOptions struct {
	Timesteps int  // window width
	Length    int  // values considered; <= 0 or > Len() means all of them
	Front     bool // take the first Length values instead of the last
	IncludeY  bool // emit the value following each window as a target
	Normalise bool // rescale into [A,B] before windowing, only when A < B
	A         float64
	B         float64
}

// DefaultSampleOptions returns options for single step targets over the
// whole curve, normalised into [0,1].
func DefaultSampleOptions(timesteps int) SampleOptions {
	return SampleOptions{
		Timesteps: timesteps,
		Front:     true,
		IncludeY:  true,
		Normalise: true,
		A:         0,
		B:         1,
	}
}

// Samples holds model ready windows. Y is nil unless targets were requested.
type Samples struct {
	X [][]float64
	Y [][]float64
}

// Len returns the number of windows.
func (s Samples) Len() int {
	return len(s.X)
}

// Append adds the windows of o after those of s.
func (s *Samples) Append(o Samples) {
	s.X = append(s.X, o.X...)
	if o.Y != nil {
		s.Y = append(s.Y, o.Y...)
	}
}

// Sample cuts the curve into overlapping windows of opts.Timesteps values.
// It never fails: an over-large or non-positive Length selects the whole
// curve and a window wider than the selection yields no samples.
func (c *Curve) Sample(opts SampleOptions) Samples {
	opts.Timesteps = checkTimesteps(opts.Timesteps)

	length := opts.Length
	if length <= 0 || length > c.Len() {
		if length != c.Len() {
			logger.WithFields(l.StringField("id", c.id), l.IntField("length", length),
				l.IntField("clamped", c.Len())).Debug("sample length clamped")
		}

		length = c.Len()
	}

	var vs []float64
	if opts.Front {
		vs = c.values[:length]
	} else {
		vs = c.values[c.Len()-length:]
	}

	if opts.Normalise && opts.A < opts.B {
		vs = c.Normalise(vs, opts.A, opts.B)
	}

	return window(vs, opts.Timesteps, opts.IncludeY)
}

func checkTimesteps(timesteps int) int {
	if timesteps < 1 {
		logger.WithFields(l.IntField("timesteps", timesteps)).Debug("timesteps below 1, using 1")

		return 1
	}

	return timesteps
}

// window copies every run of timesteps values preceding position i, for i in
// [timesteps, len(vs)).
func window(vs []float64, timesteps int, includeY bool) Samples {
	n := len(vs) - timesteps
	if n <= 0 {
		s := Samples{X: [][]float64{}}
		if includeY {
			s.Y = [][]float64{}
		}

		return s
	}

	s := Samples{X: make([][]float64, 0, n)}
	if includeY {
		s.Y = make([][]float64, 0, n)
	}

	for i := timesteps; i < len(vs); i++ {
		row := make([]float64, timesteps)
		copy(row, vs[i-timesteps:i])
		s.X = append(s.X, row)

		if includeY {
			s.Y = append(s.Y, []float64{vs[i]})
		}
	}

	return s
}
