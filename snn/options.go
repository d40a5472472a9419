// SPDX-License-Identifier: MIT
// Package: snngraph/snn
//
// options.go — functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs;
//     the builder itself never panics.
//   • Defaults are deterministic: NumCPU workers, no edge budget, silent logger.

package snn

import (
	"io"
	"log/slog"
	"runtime"
)

// Option customizes a Build call.
type Option func(*config)

type config struct {
	workers  int          // goroutines enumerating owner blocks
	maxEdges int          // 0 = unlimited
	logger   *slog.Logger // phase logging at debug level
}

// blocksPerWorker oversubscribes owner blocks so that the skew toward small
// owners (which have more partners j > i) is balanced across workers.
const blocksPerWorker = 4

// WithWorkers sets the number of goroutines. 0 means runtime.NumCPU();
// 1 runs sequentially. Panics on a negative count.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("snn: WithWorkers(n<0)")
	}
	return func(c *config) {
		if n == 0 {
			c.workers = runtime.NumCPU()
			return
		}
		c.workers = n
	}
}

// WithMaxEdges caps the number of emitted edges; exceeding it fails the call
// with ErrTooManyEdges. 0 means unlimited. Panics on a negative cap.
func WithMaxEdges(n int) Option {
	if n < 0 {
		panic("snn: WithMaxEdges(n<0)")
	}
	return func(c *config) { c.maxEdges = n }
}

// WithLogger routes debug-level phase logs (index size, candidate bound,
// edge count) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("snn: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: runtime.NumCPU(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
