// SPDX-License-Identifier: MIT
// Package: snngraph/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed / WithRand.

package builder

import "math/rand"

// BuilderOption customizes a table constructor.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng  *rand.Rand // nil means "no randomness"
	self bool       // column 0 of row i is i
}

// WithRand provides an explicit RNG for Random. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new seeded *rand.Rand for Random.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSelf makes every row start with the point itself, followed by its
// k-1 nearest other points.
func WithSelf() BuilderOption {
	return func(c *builderConfig) { c.self = true }
}

// newBuilderConfig applies options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
