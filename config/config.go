// Package config loads the windowing and split parameters used by curveprep.
package config

import (
	"fmt"
	"os"

	"github.com/sartorproj/gocurve/curve"
	"gopkg.in/yaml.v3"
)

// WindowConfig describes how curves are cut into samples. LengthFraction is
// relative to the first curve of a set.
type WindowConfig struct {
	Timesteps      int     `yaml:"timesteps"`
	LengthFraction float64 `yaml:"length_fraction"`
	Front          bool    `yaml:"front"`
	IncludeY       bool    `yaml:"include_y"`
	Normalise      bool    `yaml:"normalise"`
	A              float64 `yaml:"a"`
	B              float64 `yaml:"b"`
}

// SplitConfig describes how a set is partitioned.
type SplitConfig struct {
	Value        float64 `yaml:"value"`
	AsPercentage bool    `yaml:"as_percentage"`
	Shuffle      bool    `yaml:"shuffle"`
	Seed         uint64  `yaml:"seed"`
}

// IngestConfig describes the input file layout.
type IngestConfig struct {
	Delimiter string `yaml:"delimiter"`
	BitSize   int    `yaml:"bit_size"`
}

// Config is the curveprep configuration file.
type Config struct {
	Train  WindowConfig `yaml:"train"`
	Eval   WindowConfig `yaml:"eval"`
	Split  SplitConfig  `yaml:"split"`
	Ingest IngestConfig `yaml:"ingest"`
}

// Default returns the configuration used when no file is given: training
// windows over the first 80% of every curve, evaluation windows over the
// last 20%, both 10 steps wide and normalised into [0,1].
func Default() *Config {
	return &Config{
		Train: WindowConfig{
			Timesteps:      10,
			LengthFraction: 0.8,
			Front:          true,
			IncludeY:       true,
			Normalise:      true,
			A:              0,
			B:              1,
		},
		Eval: WindowConfig{
			Timesteps:      10,
			LengthFraction: 0.2,
			Front:          false,
			IncludeY:       true,
			Normalise:      true,
			A:              0,
			B:              1,
		},
		Split: SplitConfig{
			Value:        0.8,
			AsPercentage: true,
			Shuffle:      true,
			Seed:         123,
		},
		Ingest: IngestConfig{
			Delimiter: "\t",
			BitSize:   32,
		},
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML on top of Default; absent fields keep their defaults.
func Parse(d []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes cfg as YAML.
func (cfg *Config) Save(path string) error {
	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, d, 0600)
}

// Window returns the window configuration by name, "train" or "eval".
func (cfg *Config) Window(mode string) (WindowConfig, error) {
	switch mode {
	case "train", "":
		return cfg.Train, nil
	case "eval":
		return cfg.Eval, nil
	default:
		return WindowConfig{}, fmt.Errorf("unknown window mode %q", mode)
	}
}

// Options turns the window configuration into sample options, resolving
// LengthFraction against the length of first. A nil first curve leaves the
// length to the sampler's clamp.
func (wc WindowConfig) Options(first *curve.Curve) curve.SampleOptions {
	opts := curve.SampleOptions{
		Timesteps: wc.Timesteps,
		Front:     wc.Front,
		IncludeY:  wc.IncludeY,
		Normalise: wc.Normalise,
		A:         wc.A,
		B:         wc.B,
	}

	if first != nil {
		opts.Length = int(wc.LengthFraction * float64(first.Len()))
	}

	return opts
}

// DelimiterRune returns the first rune of the configured delimiter, tab when
// unset.
func (ic IngestConfig) DelimiterRune() rune {
	for _, r := range ic.Delimiter {
		return r
	}

	return '\t'
}
