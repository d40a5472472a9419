// Package core: shared result types for the snngraph builders.
//
// EdgeList
//
//	The boundary type every builder returns: three parallel sequences
//	From, To and Weight plus the point count N and a Directed flag.
//	Undirected lists carry each unordered pair once with From < To, sorted
//	ascending by (From, To). Consumers that want both orientations call
//	Symmetrize; consumers that want a graph object call Graph.
//
//	  el, _ := snn.BuildRank(table)
//	  w, ok := el.Lookup(3, 7)   // binary search, O(log E)
//	  g, _ := el.Graph()         // core.Graph with vertices "0".."N-1"
//
// Graph
//
//	A thread-safe in-memory graph G = (V,E):
//	  - Directed vs. undirected edges (WithDirected)
//	  - Weighted vs. unweighted edges (WithWeighted)
//	  - Parallel edges (WithMultiEdges)
//	  - Self-loops (WithLoops)
//	  - Constant-time edge membership via nested maps:
//	    adjacencyList[from][to][edgeID] = struct{}{}
//	  - Atomic Edge.ID generation ("e1", "e2", …)
//
// Determinism:
//
//	Vertices(), Edges(), Neighbors() and NeighborIDs() return sorted results,
//	so golden tests and logs are stable.
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	AddEdge(from, to string, weight float64) (string, error)    // O(1)†
//	HasEdge(from, to string) bool                               // O(1)
//	Weight(from, to string) (float64, error)                    // O(m) over parallel edges
//	Neighbors(id string) ([]*Edge, error)                       // O(d·log d)
//	NeighborIDs(id string) ([]string, error)                    // O(d·log d)
//	Degree(id string) (int, error)                              // O(d)
//	Strength(id string) (float64, error)                        // O(d)
//	Vertices() []string / Edges() []*Edge                       // sorted
//	Stats() GraphStats                                          // O(V+E)
//
//	† amortized: atomic ID generation + nested-map insertion.
package core
