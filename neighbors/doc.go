// Package neighbors holds the k-nearest-neighbor index table consumed by the
// graph builders, together with its inverted index.
//
// What is a neighbor table?
//
//	An N×k table of point identifiers. Row i lists the k nearest neighbors of
//	point i by increasing distance, so column 0 is the closest. Identifiers
//	live in [0, N). The table is produced elsewhere (an exact or approximate
//	k-NN search) and is treated as given: self-references and repeated
//	identifiers are accepted.
//
// Closed neighborhoods:
//
//	Builders treat every point as its own nearest neighbor. The closed
//	neighborhood C(i) is {i} ∪ row(i), with closed ranks
//	  • rank 0      — i itself
//	  • rank c + 1  — the identifier in column c
//	Repeated identifiers keep their closest rank only.
//
// Inverted index:
//
//	Invert(t) answers "which rows contain m, and at which rank?" for every
//	point m. Host lists are ordered by ascending row, which lets callers stop
//	a scan early once they cross a row bound.
//
// Usage:
//
//	t, err := neighbors.New([][]int{{1, 2}, {0, 2}, {0, 1}})
//	if err != nil {
//	    // errors.Is(err, neighbors.ErrIDOutOfRange) etc.
//	}
//	idx := neighbors.Invert(t)
//	for _, h := range idx.Hosts(2) {
//	    fmt.Println(h.Row, h.Rank)
//	}
//
// Complexity:
//
//   - Construction + validation: O(N·k)
//   - Invert: O(N·k) time, O(N·k) memory (CSR layout, no per-point slices)
package neighbors
