package search

import "github.com/birouted/biroute/graph"

// NoVertex marks an unset FirstHop or NextAfterTarget field; zero is a
// legitimate vertex ID, so a dedicated sentinel is needed rather than
// relying on the zero value.
const NoVertex graph.Vertex = -1

// State is a node of the implicit bi-objective search tree: a vertex
// together with its accumulated and heuristic costs, plus whichever
// back-link the owning pipeline stage retains.
//
// Only one of Parent, FirstHop, or NextAfterTarget is meaningful for
// any given search — BOD/BOA and bod_limited use Parent (full path
// reconstruction), Stage 1 uses FirstHop, Stage 3 uses NextAfterTarget,
// and Stage 2 uses none of them (reachability only).
type State struct {
	Vertex graph.Vertex
	G1, G2 float64
	H1, H2 float64
	F1, F2 float64

	Parent *State

	HasFirstHop bool
	FirstHop    graph.Vertex

	HasNextAfterTarget bool
	NextAfterTarget    graph.Vertex

	// seq is the insertion sequence number, used only to break ties
	// when two States share (F1, F2) so the heap has a total order.
	seq uint64
}

// New constructs a State with the given vertex, accumulated costs g1/g2,
// heuristic costs h1/h2 (zero for pure Dijkstra search), and full
// parent back-link. f1/f2 are derived as g+h, as in the reference
// implementation.
func New(vertex graph.Vertex, g1, g2, h1, h2 float64, parent *State) *State {
	return &State{
		Vertex: vertex,
		G1:     g1, G2: g2,
		H1: h1, H2: h2,
		F1: g1 + h1, F2: g2 + h2,
		Parent:   parent,
		FirstHop: NoVertex, NextAfterTarget: NoVertex,
	}
}

// Dominates reports whether s dominates other under the strict product
// order with weak dominance on ties, evaluated on the (F1, F2) pair —
// the same relation the frontier uses to prune states that can no
// longer lead to a non-dominated solution.
func (s *State) Dominates(other *State) bool {
	return (s.F1 < other.F1 && s.F2 <= other.F2) || (s.F1 <= other.F1 && s.F2 < other.F2)
}

// Path reconstructs the sequence of vertices from the search's root to
// s, inclusive, by walking Parent links. For a State produced by a
// search that does not retain parent back-links (FirstHop/
// NextAfterTarget/no-link variants) it returns only s's own vertex.
func Path(s *State) []graph.Vertex {
	var rev []graph.Vertex
	for n := s; n != nil; n = n.Parent {
		rev = append(rev, n.Vertex)
	}
	path := make([]graph.Vertex, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}
