// Package gocurve prepares univariate curves for supervised sequence learning.
//
// A curve is a named series of values. GoCurve cuts curves into fixed width
// sliding windows with their next value as a target, rescales them against
// each curve's own range, and splits collections of curves into training and
// evaluation groups. Models themselves live outside this module; they only
// see the plain matrices produced here.
//
// # Features
//
//   - Windowing of a single curve or a whole set (curve.Sample, curve.SampleSet)
//   - Min/max normalisation and its inverse (Curve.Normalise, Curve.Denormalise)
//   - Split of a set by fraction or count with an injectable random source
//   - Loading curves from delimited files or an SQLite store
//   - Dataset export, optionally snappy compressed
//   - Summary statistics, PACF based window width suggestion, accuracy metrics
//
// # Quick Start
//
//	set, _ := ingest.LoadCSV("curves.csv", nil)
//	opts := config.Default().Train.Options(set[0])
//	samples := curve.SampleSet(set, opts)
//
// Split a set, reproducibly:
//
//	train, test := curve.SplitSet(set, curve.SplitOptions{
//	    Value: 0.8, AsPercentage: true, Shuffle: true,
//	    Rand: rand.New(rand.NewPCG(123, 123)),
//	})
//
// Map model output back onto a curve:
//
//	res, _ := forecast.Run(c, model, config.Default().Eval.Options(c))
//
// # Packages
//
//   - curve: Curve, Set, windowing, normalisation, split
//   - ingest: CSV loading and saving
//   - store: SQLite curve store
//   - dataset: window export and import
//   - stats: summaries, ACF/PACF, metrics
//   - forecast: model adapter and result assembly
//   - config: YAML configuration
//   - cmd/curveprep: command line tool
package gocurve
