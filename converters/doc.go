// Package converters bridges core.EdgeList and gonum/graph.
//
// Export:
//
//	ToGonum          — undirected list → *simple.WeightedUndirectedGraph
//	ToGonumDirected  — any list → *simple.WeightedDirectedGraph; undirected
//	                   edges become two arcs of equal weight
//
// Import:
//
//	FromGonum        — graph.WeightedUndirected → canonical undirected list
//
// Node IDs are the point indices 0..N-1. Every point becomes a node, so
// isolated points survive the round trip. Self-loops have no EdgeList
// representation and are rejected on import.
//
// Usage:
//
//	el, _ := snn.BuildRank(t)
//	g, _ := converters.ToGonum(el)
//	comps := topo.ConnectedComponents(g)
package converters
