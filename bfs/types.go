// Package bfs provides tunable options and error definitions for
// breadth-first inspection of SNN graphs.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph or edge list is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the walk did not reach.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Option configures Walk and Components via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search runs.
type Option func(*options)

type options struct {
	ctx       context.Context
	maxDepth  int     // 0 = unlimited
	minWeight float64 // edges with Weight < minWeight are ignored
	onVisit   func(id string, depth int) error
	err       error
}

func defaultOptions() options {
	return options{
		ctx:       context.Background(),
		minWeight: math.Inf(-1),
		onVisit:   func(string, int) error { return nil },
	}
}

func resolve(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithContext sets a context checked once per dequeued vertex.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth stops exploring beyond d hops. d == 0 means no limit;
// d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithMinWeight ignores edges whose weight is below w.
func WithMinWeight(w float64) Option {
	return func(o *options) {
		if math.IsNaN(w) {
			o.err = fmt.Errorf("%w: MinWeight is NaN", ErrOptionViolation)
			return
		}
		o.minWeight = w
	}
}

// WithOnVisit registers a Walk callback; returning an error aborts the walk.
// Components ignores it.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// Result holds the outcome of Walk:
//   - Order: vertices in visit sequence.
//   - Depth: hop distance from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the hop-shortest path from the start vertex to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: PathTo(%q): %w", dest, ErrNoPath)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// ComponentSet labels every point with its connected component.
type ComponentSet struct {
	// Label[i] is the component of point i, in [0, Count).
	Label []int

	// Count is the number of components, isolated points included.
	Count int

	// Sizes[c] is the number of points in component c.
	Sizes []int
}
