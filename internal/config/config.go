// SPDX-License-Identifier: MIT
// Package: snngraph/internal/config
//
// config.go — CLI configuration: defaults, strict YAML loading, validation.

// Package config holds the snngraph command configuration. Values come from
// Default, are overlaid by an optional YAML file (Load) and finally by
// command-line flags in cmd/snngraph.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/snngraph/snn"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Graph kinds.
const (
	GraphSNN = "snn"
	GraphKNN = "knn"
)

// Config is the full command configuration.
type Config struct {
	// Graph selects the builder: "snn" (default) or "knn".
	Graph string `yaml:"graph"`

	// Scheme is the SNN weighting: "rank", "number" or "jaccard".
	Scheme string `yaml:"scheme"`

	// Directed emits k-NN arcs instead of pairs. SNN output is always
	// undirected.
	Directed bool `yaml:"directed"`

	// Mutual weights reciprocal k-NN pairs 2.
	Mutual bool `yaml:"mutual"`

	// IndexBase is subtracted from every identifier in the input (1 for
	// tables exported by 1-based tools).
	IndexBase int `yaml:"index_base"`

	// Delimiter separates fields in both input and output. Single rune.
	Delimiter string `yaml:"delimiter"`

	// Header skips the first input line.
	Header bool `yaml:"header"`

	// Backbone writes the maximum spanning forest instead of the full graph.
	Backbone bool `yaml:"backbone"`

	// Workers is the SNN goroutine count; 0 means one per CPU.
	Workers int `yaml:"workers"`

	// MaxEdges fails the build above this many edges; 0 means unlimited.
	MaxEdges int `yaml:"max_edges"`

	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
}

// Default returns a configuration that reads a comma-separated 0-based table
// and builds a rank-weighted SNN graph on every CPU.
func Default() Config {
	return Config{
		Graph:     GraphSNN,
		Scheme:    snn.Rank.String(),
		Delimiter: ",",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a YAML file over Default using strict parsing: unknown keys are
// errors. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	switch c.Graph {
	case GraphSNN, GraphKNN:
	default:
		return fmt.Errorf("graph %q (want snn|knn): %w", c.Graph, ErrInvalid)
	}
	if _, err := c.SNNScheme(); err != nil {
		return fmt.Errorf("scheme %q: %w", c.Scheme, ErrInvalid)
	}
	if c.Directed && c.Graph == GraphSNN {
		return fmt.Errorf("directed output requires graph=knn: %w", ErrInvalid)
	}
	if c.Backbone && c.Directed {
		return fmt.Errorf("backbone requires undirected output: %w", ErrInvalid)
	}
	if c.IndexBase < 0 {
		return fmt.Errorf("index_base %d < 0: %w", c.IndexBase, ErrInvalid)
	}
	if _, err := c.Comma(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d < 0: %w", c.Workers, ErrInvalid)
	}
	if c.MaxEdges < 0 {
		return fmt.Errorf("max_edges %d < 0: %w", c.MaxEdges, ErrInvalid)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q (want text|json): %w", c.LogFormat, ErrInvalid)
	}

	return nil
}

// SNNScheme resolves Scheme.
func (c Config) SNNScheme() (snn.Scheme, error) {
	return snn.ParseScheme(c.Scheme)
}

// Comma returns Delimiter as a rune. "\t" and "tab" both mean a tab.
func (c Config) Comma() (rune, error) {
	d := c.Delimiter
	if d == `\t` || strings.EqualFold(d, "tab") {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(d)
	if size == 0 || size != len(d) || r == utf8.RuneError || r == '\n' || r == '\r' || r == '"' {
		return 0, fmt.Errorf("delimiter %q must be a single field separator: %w", d, ErrInvalid)
	}
	return r, nil
}

// SlogLevel maps LogLevel onto slog.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	return lvl, nil
}

// Logger builds a text or JSON slog.Logger writing to w at LogLevel.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
