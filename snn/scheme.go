package snn

import (
	"fmt"
	"strings"
)

// Scheme selects how shared neighbors are turned into an edge weight.
type Scheme int

const (
	// Rank weights a pair by its best combined rank over shared neighbors.
	Rank Scheme = iota

	// Number weights a pair by its shared-neighbor count.
	Number

	// Jaccard weights a pair by the Jaccard index of its closed neighborhoods.
	Jaccard
)

// rankFloor keeps rank weights strictly positive for pairs that share only
// their most distant neighbors.
const rankFloor = 1e-6

// String returns the lowercase scheme name.
func (s Scheme) String() string {
	switch s {
	case Rank:
		return "rank"
	case Number:
		return "number"
	case Jaccard:
		return "jaccard"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

func (s Scheme) valid() bool {
	return s == Rank || s == Number || s == Jaccard
}

// ParseScheme resolves "rank", "number" or "jaccard" (case-insensitive).
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rank":
		return Rank, nil
	case "number":
		return Number, nil
	case "jaccard":
		return Jaccard, nil
	default:
		return 0, fmt.Errorf("ParseScheme(%q): %w", name, ErrUnknownScheme)
	}
}
