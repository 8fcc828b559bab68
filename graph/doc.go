// Package graph implements the directed dual-cost multigraph that the
// bi-objective search algorithms (package bod), the bounded stages
// (package stages), and the routing-table builder (package routing)
// run over.
//
// A Graph stores, for every source vertex, a bucket of (destination,
// cost-pair) entries. Multiple entries between the same ordered pair
// of vertices are permitted and are all considered by the search — the
// graph never collapses parallel edges, and isolated destinations are
// only discovered through the edges that reach them.
//
// Graphs are built once, typically via ReadFile or repeated AddEdge
// calls, then handed to the search algorithms as read-only. Algorithms
// never mutate a Graph.
package graph
