// Package stats provides descriptive statistics, autocorrelation analysis
// and accuracy metrics for curves.
//
// # Summaries
//
//	s := stats.Describe(c)
//	fmt.Printf("%s: n=%d min=%.2f max=%.2f mean=%.2f\n", s.ID, s.Len, s.Min, s.Max, s.Mean)
//
// # Autocorrelation
//
// ACF and PACF work on raw values. SuggestTimesteps picks a window width from
// the largest significant PACF lag:
//
//	acf := stats.ACF(c.Values(), 24)
//	pacf := stats.PACF(c.Values(), 24)
//	lags := stats.SignificantLags(pacf, stats.ConfBound(c.Len()))
//	timesteps := stats.SuggestTimesteps(c.Values(), 24, 10)
//
// # Accuracy
//
//	mse := stats.MSE(actual, predicted)
//	rmse := stats.RMSE(actual, predicted)
//	mae := stats.MAE(actual, predicted)
package stats
