// Command curveprep turns curve files into windowed training data.
//
// Usage:
//
//	curveprep windows  -d curves.csv [-db curves.db] [-config cfg.yaml] [-mode train|eval] -o out.csv [-z]
//	curveprep split    -d curves.csv [-db curves.db] [-config cfg.yaml] [-value 0.8] -train a.csv -test b.csv
//	curveprep describe -d curves.csv [-db curves.db] [-config cfg.yaml] [-n 5] [-seed 123]
//	curveprep import   -d curves.csv -db curves.db [-config cfg.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sartorproj/gocurve/config"
	"github.com/sartorproj/gocurve/curve"
	"github.com/sartorproj/gocurve/dataset"
	"github.com/sartorproj/gocurve/forecast"
	"github.com/sartorproj/gocurve/ingest"
	"github.com/sartorproj/gocurve/stats"
	"github.com/sartorproj/gocurve/store"
	"github.com/sgostarter/i/l"
)

const usage = `usage: curveprep <command> [flags]

commands:
  windows   cut curves into windows and write them as a dataset
  split     split curves into two files
  describe  print statistics and a suggested window width per curve
  import    copy a curve file into an SQLite store`

func main() {
	logger := l.NewConsoleLoggerWrapper()
	curve.SetLogger(logger)

	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, logger))
}

func run(ctx context.Context, args []string, out io.Writer, logger l.Wrapper) int {
	if len(args) == 0 {
		fmt.Fprintln(out, usage)

		return 1
	}

	var err error

	switch args[0] {
	case "windows":
		err = runWindows(ctx, args[1:], out, logger)
	case "split":
		err = runSplit(ctx, args[1:], out, logger)
	case "describe":
		err = runDescribe(ctx, args[1:], out, logger)
	case "import":
		err = runImport(ctx, args[1:], out, logger)
	case "-h", "-help", "help":
		fmt.Fprintln(out, usage)

		return 0
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		fmt.Fprintf(out, "Error : %v\n", err)

		return 1
	}

	return 0
}

// source holds the flags shared by every command that reads curves.
type source struct {
	data       string
	db         string
	configPath string
}

func (s *source) register(fs *flag.FlagSet) []argument {
	fs.StringVar(&s.data, "d", "", "curve file (.csv)")
	fs.StringVar(&s.db, "db", "", "SQLite curve store, used instead of -d")
	fs.StringVar(&s.configPath, "config", "", "YAML configuration")

	return []argument{
		pathArg{name: "d", value: &s.data},
		pathArg{name: "db", value: &s.db},
		pathArg{name: "config", value: &s.configPath},
	}
}

func (s *source) config() (*config.Config, error) {
	if s.configPath == "" {
		return config.Default(), nil
	}

	return config.Load(s.configPath)
}

func (s *source) load(ctx context.Context, cfg *config.Config, logger l.Wrapper) (curve.Set, error) {
	var (
		set curve.Set
		err error
	)

	switch {
	case s.db != "":
		set, err = loadStore(ctx, s.db, logger)
	case s.data != "":
		set, err = ingest.LoadCSV(s.data, &ingest.CSVOptions{
			Delimiter: cfg.Ingest.DelimiterRune(),
			BitSize:   cfg.Ingest.BitSize,
		})
	default:
		return nil, errors.New("argument -d or -db was not provided")
	}

	if err != nil {
		return nil, err
	}

	if len(set) == 0 {
		return nil, ingest.ErrNoCurves
	}

	logger.WithFields(l.IntField("curves", len(set))).Debug("curves loaded")

	return set, nil
}

func loadStore(ctx context.Context, path string, logger l.Wrapper) (curve.Set, error) {
	cfg := store.DefaultConfig()
	cfg.Path = path

	s, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.Load(ctx)
}

func runWindows(ctx context.Context, args []string, out io.Writer, logger l.Wrapper) error {
	fs := flag.NewFlagSet("windows", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		src      source
		mode     string
		output   string
		compress bool
	)

	arguments := src.register(fs)
	fs.StringVar(&mode, "mode", "train", "window configuration: train or eval")
	fs.StringVar(&output, "o", "", "output dataset file")
	fs.BoolVar(&compress, "z", false, "snappy compress the output")

	arguments = append(arguments,
		stringArg{name: "o", mandatory: true, value: &output},
		boolArg{name: "z", value: &compress},
	)

	if err := parseArgs(fs, args, arguments...); err != nil {
		return err
	}

	cfg, err := src.config()
	if err != nil {
		return err
	}

	wc, err := cfg.Window(mode)
	if err != nil {
		return err
	}

	set, err := src.load(ctx, cfg, logger)
	if err != nil {
		return err
	}

	opts := wc.Options(set[0])
	samples := curve.SampleSet(set, opts)

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := dataset.Write(f, samples, dataset.Options{Delimiter: ",", Compress: compress}); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %d windows of %d timesteps from %d curves to %s\n",
		samples.Len(), opts.Timesteps, len(set), output)

	return nil
}

func runSplit(ctx context.Context, args []string, out io.Writer, logger l.Wrapper) error {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		src       source
		value     float64
		trainPath string
		testPath  string
	)

	arguments := src.register(fs)
	fs.Float64Var(&value, "value", 0, "split value, overrides the configuration")
	fs.StringVar(&trainPath, "train", "", "output file for the first group")
	fs.StringVar(&testPath, "test", "", "output file for the second group")

	arguments = append(arguments,
		floatArg{name: "value", floor: ptr(0.0), value: &value},
		stringArg{name: "train", mandatory: true, value: &trainPath},
		stringArg{name: "test", mandatory: true, value: &testPath},
	)

	if err := parseArgs(fs, args, arguments...); err != nil {
		return err
	}

	cfg, err := src.config()
	if err != nil {
		return err
	}

	if value > 0 {
		cfg.Split.Value = value
	}

	set, err := src.load(ctx, cfg, logger)
	if err != nil {
		return err
	}

	first, second := curve.SplitSet(set, curve.SplitOptions{
		Value:        cfg.Split.Value,
		AsPercentage: cfg.Split.AsPercentage,
		Shuffle:      cfg.Split.Shuffle,
		Rand:         rand.New(rand.NewPCG(cfg.Split.Seed, cfg.Split.Seed)),
	})

	delimiter := string(cfg.Ingest.DelimiterRune())

	if err := ingest.SaveCSV(first, trainPath, delimiter); err != nil {
		return err
	}

	if err := ingest.SaveCSV(second, testPath, delimiter); err != nil {
		return err
	}

	fmt.Fprintf(out, "Split %d curves: %d to %s, %d to %s\n", len(set), len(first), trainPath, len(second), testPath)

	return nil
}

func runDescribe(ctx context.Context, args []string, out io.Writer, logger l.Wrapper) error {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		src  source
		n    int
		seed uint64
	)

	arguments := src.register(fs)
	fs.IntVar(&n, "n", 0, "number of randomly picked curves, 0 for all")
	fs.Uint64Var(&seed, "seed", 0, "seed for picking curves")

	arguments = append(arguments, intArg{name: "n", floor: ptr(0), value: &n})

	if err := parseArgs(fs, args, arguments...); err != nil {
		return err
	}

	cfg, err := src.config()
	if err != nil {
		return err
	}

	set, err := src.load(ctx, cfg, logger)
	if err != nil {
		return err
	}

	indices := make([]int, len(set))
	for i := range indices {
		indices[i] = i
	}

	if n > 0 {
		indices = forecast.Pick(n, len(set), rand.New(rand.NewPCG(seed, seed)))
	}

	maxLag := 24

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"ID", "LEN", "MIN", "MAX", "MEAN", "STD", "MEDIAN", "TIMESTEPS"}, "\t"))

	for _, idx := range indices {
		c := set[idx]
		s := stats.Describe(c)
		timesteps := stats.SuggestTimesteps(c.Values(), min(maxLag, c.Len()/2), cfg.Train.Timesteps)

		fmt.Fprintf(tw, "%s\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%d\n",
			s.ID, s.Len, s.Min, s.Max, s.Mean, s.Std, s.Median, timesteps)
	}

	return tw.Flush()
}

func runImport(ctx context.Context, args []string, out io.Writer, logger l.Wrapper) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(out)

	var (
		data       string
		db         string
		configPath string
	)

	fs.StringVar(&data, "d", "", "curve file (.csv)")
	fs.StringVar(&db, "db", "", "SQLite curve store")
	fs.StringVar(&configPath, "config", "", "YAML configuration")

	if err := parseArgs(fs, args,
		pathArg{name: "d", mandatory: true, value: &data},
		stringArg{name: "db", mandatory: true, value: &db},
		pathArg{name: "config", value: &configPath},
	); err != nil {
		return err
	}

	src := source{data: data, configPath: configPath}

	cfg, err := src.config()
	if err != nil {
		return err
	}

	set, err := src.load(ctx, cfg, logger)
	if err != nil {
		return err
	}

	scfg := store.DefaultConfig()
	scfg.Path = db

	s, err := store.Open(ctx, scfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Save(ctx, set); err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("db", db)).Error("import failed")

		return err
	}

	fmt.Fprintf(out, "Imported %d curves into %s\n", len(set), db)

	return nil
}
