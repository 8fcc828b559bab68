// Package search implements the implicit search-tree node (State) and
// the lexicographic priority frontier (PQD) that the bi-objective
// algorithms in package bod and package stages are built on.
//
// A State is immutable after creation: its cost fields never change,
// and its back-link (Parent, FirstHop, or NextAfterTarget, depending
// on which pipeline stage produced it) is fixed at construction time.
// States form a DAG rooted at the search's start State purely through
// Parent pointers — a child's parent is always a strictly earlier
// expansion, so no cycle collector is needed.
//
// The Frontier is a min-heap ordered lexicographically on (F1, F2),
// with a deterministic tertiary tie-break (insertion order) so that
// two equal-(F1,F2) States never compare equal to heap.Interface.
// Frontier does no per-vertex deduplication on Push; the dominance
// checks that make that safe live in the algorithms that drive it
// (package bod, package stages), per the design note that the closed
// set is redundant once a per-vertex g2-minimum is tracked.
package search
