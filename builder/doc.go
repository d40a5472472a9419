// Package builder produces deterministic k-nearest-neighbor tables for tests,
// examples and benchmarks of the SNN and k-NN graph builders.
//
// The package offers the following key components:
//
//   - Table constructors:
//     – Ring(n, k):            row i lists i±1, i±2, … around a ring.
//     – Blocks(b, size, k):    b disjoint rings of `size` points each; rows
//     never leave their block, so blocks share no neighbors.
//     – Random(n, k):          k distinct uniformly drawn neighbors per row
//     (requires WithSeed or WithRand).
//   - Configuration primitives:
//     – BuilderOption:         a function that mutates builderConfig before use.
//     – WithSeed / WithRand:   reproducible randomness.
//     – WithSelf:              put each point first in its own row, as exact
//     k-NN searches that do not exclude the query point return it.
//
// Guarantees:
//
//   - Same arguments, options and seed ⇒ identical tables.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Structured runtime errors (sentinel + %w with method context) for invalid
//     sizes, never panics at build time.
//
// Complexity: every constructor is O(n·k) time and memory.
package builder
