// SPDX-License-Identifier: MIT
// Package: snngraph/neighbors
//
// index.go — closed neighborhoods and the inverted (host) index.
//
// Layout:
//   • Both views are CSR: an offsets slice of length N+1 and one flat slice
//     of Host values, so memory is O(N·(k+1)) regardless of skew.
//   • closed[closedOff[i]:closedOff[i+1]] is C(i) in rank order, self first.
//   • hosts[hostOff[m]:hostOff[m+1]] lists the rows whose C(row) contains m,
//     in ascending row order; Rank is the closed rank of m within that row.

package neighbors

// Host is one (point, closed rank) entry. In Index.Hosts(m) the Row field is
// the referencing row; in Index.Closed(i) it is the neighbor identifier.
type Host struct {
	Row  int
	Rank int
}

// Index is the inverted view of a Table. It is read-only after Invert returns
// and safe for concurrent readers.
type Index struct {
	n, k int

	closedOff []int
	closed    []Host

	hostOff []int
	hosts   []Host
}

// Invert builds the closed neighborhoods of t and inverts them so that every
// point knows which rows reference it. Self-references and repeated
// identifiers in a row collapse to their closest rank.
//
// Complexity: O(N·k) time, O(N·k) memory.
func Invert(t *Table) *Index {
	n, k := t.n, t.k
	idx := &Index{
		n:         n,
		k:         k,
		closedOff: make([]int, n+1),
		closed:    make([]Host, 0, n*(k+1)),
		hostOff:   make([]int, n+1),
	}

	// Pass 1: deduplicated closed neighborhoods. mark[m] == i+1 means m is
	// already in C(i); stamping by row avoids clearing between rows.
	mark := make([]int, n)
	for i := 0; i < n; i++ {
		stamp := i + 1
		mark[i] = stamp
		idx.closed = append(idx.closed, Host{Row: i, Rank: 0})
		for c, m := range t.row(i) {
			if mark[m] == stamp {
				continue
			}
			mark[m] = stamp
			idx.closed = append(idx.closed, Host{Row: m, Rank: c + 1})
		}
		idx.closedOff[i+1] = len(idx.closed)
	}

	// Pass 2: count hosts per point, prefix-sum into offsets.
	for _, h := range idx.closed {
		idx.hostOff[h.Row+1]++
	}
	for m := 0; m < n; m++ {
		idx.hostOff[m+1] += idx.hostOff[m]
	}

	// Pass 3: scatter. Rows are visited in ascending order, so each host list
	// ends up sorted by row without a separate sort.
	idx.hosts = make([]Host, len(idx.closed))
	next := make([]int, n)
	copy(next, idx.hostOff[:n])
	for i := 0; i < n; i++ {
		for _, h := range idx.closed[idx.closedOff[i]:idx.closedOff[i+1]] {
			idx.hosts[next[h.Row]] = Host{Row: i, Rank: h.Rank}
			next[h.Row]++
		}
	}

	return idx
}

// N returns the number of points.
func (x *Index) N() int { return x.n }

// K returns the width of the source table.
func (x *Index) K() int { return x.k }

// Closed returns C(i) ordered by closed rank (self first). The slice aliases
// internal storage and must not be modified.
func (x *Index) Closed(i int) []Host {
	return x.closed[x.closedOff[i]:x.closedOff[i+1]]
}

// ClosedSize returns |C(i)|.
func (x *Index) ClosedSize(i int) int {
	return x.closedOff[i+1] - x.closedOff[i]
}

// Hosts returns the rows whose closed neighborhood contains m, ascending by
// row, with the rank at which each lists m. The slice aliases internal
// storage and must not be modified.
func (x *Index) Hosts(m int) []Host {
	return x.hosts[x.hostOff[m]:x.hostOff[m+1]]
}

// CandidateBound returns Σ_m C(|Hosts(m)|, 2), the number of pair visits a
// shared-neighbor enumeration performs. It is an upper bound on the number of
// distinct candidate pairs.
// Complexity: O(N).
func (x *Index) CandidateBound() int64 {
	var total int64
	for m := 0; m < x.n; m++ {
		h := int64(x.hostOff[m+1] - x.hostOff[m])
		total += h * (h - 1) / 2
	}
	return total
}
