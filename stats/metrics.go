package stats

import "math"

// MSE is the mean squared error over the common prefix of actual and
// predicted. It is 0 when either is empty.
func MSE(actual, predicted []float64) float64 {
	n := min(len(actual), len(predicted))
	if n == 0 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		d := actual[i] - predicted[i]
		sum += d * d
	}

	return sum / float64(n)
}

// RMSE is the square root of MSE.
func RMSE(actual, predicted []float64) float64 {
	return math.Sqrt(MSE(actual, predicted))
}

// MAE is the mean absolute error over the common prefix.
func MAE(actual, predicted []float64) float64 {
	n := min(len(actual), len(predicted))
	if n == 0 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += math.Abs(actual[i] - predicted[i])
	}

	return sum / float64(n)
}

// Column returns column j of m; rows too short for j are skipped.
func Column(m [][]float64, j int) []float64 {
	out := make([]float64, 0, len(m))
	for _, row := range m {
		if j >= 0 && j < len(row) {
			out = append(out, row[j])
		}
	}

	return out
}
