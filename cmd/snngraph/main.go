// SPDX-License-Identifier: MIT
// Package: snngraph/cmd/snngraph
//
// main.go — command-line front-end: neighbor table in, edge list out.

// Command snngraph reads a k-NN index table (one row per point, delimited
// identifiers) and writes its SNN or k-NN graph as "from,to,weight" records.
//
//	snngraph -in knn.csv -scheme number -out edges.csv
//	snngraph -config snngraph.yaml < knn.tsv > edges.tsv
//
// Flags given on the command line override the YAML file, which overrides
// the built-in defaults.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/snngraph/bfs"
	"github.com/katalvlaran/snngraph/core"
	"github.com/katalvlaran/snngraph/internal/config"
	"github.com/katalvlaran/snngraph/internal/tableio"
	"github.com/katalvlaran/snngraph/knn"
	"github.com/katalvlaran/snngraph/neighbors"
	"github.com/katalvlaran/snngraph/prim_kruskal"
	"github.com/katalvlaran/snngraph/snn"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "snngraph:", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so it can be driven from tests.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("snngraph", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	cfgPath := fs.String("config", "", "YAML configuration file")
	inPath := fs.String("in", "-", "neighbor table path, - for stdin")
	outPath := fs.String("out", "-", "edge list path, - for stdout")
	graphKind := fs.String("graph", def.Graph, "graph to build: snn|knn")
	scheme := fs.String("scheme", def.Scheme, "snn weighting: rank|number|jaccard")
	directed := fs.Bool("directed", def.Directed, "knn only: emit arcs i->m")
	mutual := fs.Bool("mutual", def.Mutual, "knn only: weight reciprocal pairs 2")
	indexBase := fs.Int("index-base", def.IndexBase, "first identifier value in the input (0 or 1)")
	delim := fs.String("delim", def.Delimiter, `field separator ("\t" or "tab" for tabs)`)
	header := fs.Bool("header", def.Header, "skip the first input line and write a header")
	backbone := fs.Bool("backbone", def.Backbone, "write the maximum spanning forest only")
	workers := fs.Int("workers", def.Workers, "snn goroutines, 0 = one per CPU")
	maxEdges := fs.Int("max-edges", def.MaxEdges, "fail above this many edges, 0 = unlimited")
	logLevel := fs.String("log-level", def.LogLevel, "debug|info|warn|error")
	logFormat := fs.String("log-format", def.LogFormat, "text|json")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	// Only flags that were set override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "graph":
			cfg.Graph = *graphKind
		case "scheme":
			cfg.Scheme = *scheme
		case "directed":
			cfg.Directed = *directed
		case "mutual":
			cfg.Mutual = *mutual
		case "index-base":
			cfg.IndexBase = *indexBase
		case "delim":
			cfg.Delimiter = *delim
		case "header":
			cfg.Header = *header
		case "backbone":
			cfg.Backbone = *backbone
		case "workers":
			cfg.Workers = *workers
		case "max-edges":
			cfg.MaxEdges = *maxEdges
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.Logger(stderr)
	if err != nil {
		return err
	}
	comma, _ := cfg.Comma()
	format := tableio.Format{Comma: comma, Header: cfg.Header, IndexBase: cfg.IndexBase}

	tbl, err := readInput(*inPath, stdin, format)
	if err != nil {
		return err
	}
	log.Info("table loaded", "n", tbl.N(), "k", tbl.K(), "source", *inPath)

	start := time.Now()
	el, err := buildGraph(cfg, tbl, log)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	cs, err := bfs.Components(el)
	if err != nil {
		return err
	}
	log.Info("graph built",
		"graph", cfg.Graph,
		"edges", el.Len(),
		"total_weight", el.TotalWeight(),
		"components", cs.Count,
		"elapsed", elapsed,
	)

	if cfg.Backbone {
		if el, err = prim_kruskal.Kruskal(el); err != nil {
			return err
		}
		log.Info("backbone extracted", "edges", el.Len(), "total_weight", el.TotalWeight())
	}

	return writeOutput(*outPath, stdout, el, format)
}

func buildGraph(cfg config.Config, tbl *neighbors.Table, log *slog.Logger) (*core.EdgeList, error) {
	if cfg.Graph == config.GraphKNN {
		opts := []knn.Option{knn.WithDirected(cfg.Directed)}
		if cfg.Mutual {
			opts = append(opts, knn.WithMutualWeight())
		}
		return knn.Build(tbl, opts...)
	}

	scheme, err := cfg.SNNScheme()
	if err != nil {
		return nil, err
	}
	return snn.Build(tbl, scheme,
		snn.WithWorkers(cfg.Workers),
		snn.WithMaxEdges(cfg.MaxEdges),
		snn.WithLogger(log),
	)
}

func readInput(path string, stdin io.Reader, f tableio.Format) (*neighbors.Table, error) {
	if path == "-" {
		return tableio.ReadTable(bufio.NewReader(stdin), f)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return tableio.ReadTable(bufio.NewReader(file), f)
}

func writeOutput(path string, stdout io.Writer, el *core.EdgeList, f tableio.Format) error {
	if path == "-" {
		return tableio.WriteEdges(stdout, el, f)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tableio.WriteEdges(file, el, f); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
