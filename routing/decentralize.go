package routing

import (
	"fmt"
	"io"

	"github.com/birouted/biroute/graph"
	"github.com/birouted/biroute/pareto"
	"github.com/birouted/biroute/search"
)

// PathFinder runs a bi-objective search from s over g, returning a
// Pareto set per reachable vertex. bod.BOD satisfies this signature;
// stages.Limited does once its caps are bound in a closure.
type PathFinder func(g *graph.Graph, s graph.Vertex) map[graph.Vertex]*pareto.ParetoSet

// Mismatch describes where a decentralizability walk found that the
// re-planned suffix disagreed with the originally chosen path.
type Mismatch struct {
	Node     graph.Vertex
	Expected []graph.Vertex
	Got      []graph.Vertex
}

// Decentralized walks from start to target, re-running find and sel
// at every intermediate node, and checks that the re-planned suffix
// always agrees with the remaining suffix of the path chosen at
// start. trace, if non-nil, receives a line per node describing the
// comparison — the verbose variant of the check.
//
// It returns true with a nil Mismatch on success. On a genuine
// disagreement it returns false with the offending Mismatch and a nil
// error. false, a nil Mismatch and a non-nil error indicate the walk
// itself could not proceed (e.g. target unreachable from some node).
func Decentralized(g *graph.Graph, start, target graph.Vertex, find PathFinder, sel Selector, c1, c2 float64, trace io.Writer) (bool, *Mismatch, error) {
	chosen, err := chosenPath(find(g, start), target, sel, c1, c2)
	if err != nil {
		return false, nil, fmt.Errorf("%w: from %v", err, start)
	}
	if trace != nil {
		fmt.Fprintf(trace, "chosen path from %v: %v\n", start, chosen)
	}

	cur := start
	idx := 0
	for cur != target {
		path, err := chosenPath(find(g, cur), target, sel, c1, c2)
		if err != nil {
			return false, nil, fmt.Errorf("%w: from %v", err, cur)
		}

		expected := chosen[idx:]
		if trace != nil {
			fmt.Fprintf(trace, "%v: expect %v, got %v\n", cur, expected, path)
		}

		if !equalPaths(path, expected) {
			return false, &Mismatch{Node: cur, Expected: expected, Got: path}, nil
		}
		if len(path) < 2 {
			return false, nil, fmt.Errorf("%w: no next hop from %v", ErrUnreachable, cur)
		}
		cur = path[1]
		idx++
	}

	return true, nil, nil
}

func chosenPath(solutions map[graph.Vertex]*pareto.ParetoSet, target graph.Vertex, sel Selector, c1, c2 float64) ([]graph.Vertex, error) {
	ps, ok := solutions[target]
	if !ok || ps.Len() == 0 {
		return nil, ErrUnreachable
	}
	sol, err := sel(ps, c1, c2)
	if err != nil {
		return nil, err
	}
	st, ok := sol.Payload.(*search.State)
	if !ok {
		return nil, fmt.Errorf("routing: solution payload is not a *search.State")
	}
	return search.Path(st), nil
}

func equalPaths(a, b []graph.Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
