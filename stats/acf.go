package stats

import "math"

// centred returns values minus their mean and the sum of squared deviations.
func centred(values []float64) ([]float64, float64) {
	m := mean(values)

	dev := make([]float64, len(values))
	ss := 0.0

	for i, v := range values {
		dev[i] = v - m
		ss += dev[i] * dev[i]
	}

	return dev, ss
}

// ACF returns the sample autocorrelation of values at lags 0..maxLag, with
// maxLag capped at len(values)-1. A constant or empty input yields nil.
func ACF(values []float64, maxLag int) []float64 {
	maxLag = min(maxLag, len(values)-1)
	if maxLag < 0 {
		return nil
	}

	dev, ss := centred(values)
	if ss == 0 {
		return nil
	}

	r := make([]float64, maxLag+1)
	for lag := range r {
		var cov float64
		for i, d := range dev[lag:] {
			cov += d * dev[i]
		}

		r[lag] = cov / ss
	}

	return r
}

// PACF returns the partial autocorrelation at lags 0..maxLag. Index 0 is 1.
// Coefficients come from the Durbin-Levinson recursion, keeping only the
// previous order's coefficients.
func PACF(values []float64, maxLag int) []float64 {
	maxLag = min(maxLag, len(values)-1)
	if maxLag < 1 {
		return nil
	}

	r := ACF(values, maxLag)
	if r == nil {
		return nil
	}

	out := make([]float64, maxLag+1)
	out[0] = 1

	// prev[j-1] holds phi(k-1, j)
	prev := []float64{r[1]}
	out[1] = r[1]

	for k := 2; k <= maxLag; k++ {
		num, den := r[k], 1.0
		for j, p := range prev {
			num -= p * r[k-1-j]
			den -= p * r[j+1]
		}

		if den == 0 {
			prev = make([]float64, k)

			continue
		}

		kk := num / den
		out[k] = kk

		next := make([]float64, k)
		for j := range prev {
			next[j] = prev[j] - kk*prev[k-2-j]
		}
		next[k-1] = kk

		prev = next
	}

	return out
}

// ConfBound returns the 95% significance bound for n observations.
func ConfBound(n int) float64 {
	if n <= 0 {
		return math.Inf(1)
	}

	return 1.96 / math.Sqrt(float64(n))
}

// SignificantLags returns the lags where ACF/PACF values exceed confidence bounds.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ { // Skip lag 0
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}

// SuggestTimesteps proposes a window width for values: the largest lag up to
// maxLag whose partial autocorrelation is significant. When no lag is
// significant, fallback is returned.
func SuggestTimesteps(values []float64, maxLag, fallback int) int {
	pacf := PACF(values, maxLag)
	if pacf == nil {
		return fallback
	}

	lags := SignificantLags(pacf, ConfBound(len(values)))
	if len(lags) == 0 {
		return fallback
	}

	return lags[len(lags)-1]
}
