package bod

import (
	"github.com/birouted/biroute/graph"
	"github.com/birouted/biroute/pareto"
	"github.com/birouted/biroute/search"
)

// Heuristic estimates the remaining (h1, h2) cost from n to the search
// target. It must be componentwise admissible — never exceeding the
// true remaining cost on either objective — and must never return a
// negative component.
type Heuristic func(n, target graph.Vertex) (h1, h2 float64)

// BOA runs Bi-objective A* from start toward target over g, using h as
// the admissible heuristic. It returns the same shape of result as
// BOD — a Pareto set per reachable vertex — but explores only the
// portion of the graph the heuristic cannot rule out as worse than the
// best (g1,g2) already found for target.
//
// BOA returns ErrInvalidHeuristic if h ever produces a negative
// component.
func BOA(g *graph.Graph, start, target graph.Vertex, h Heuristic) (map[graph.Vertex]*pareto.ParetoSet, error) {
	solutions := make(map[graph.Vertex]*pareto.ParetoSet)
	g2Min := make(map[graph.Vertex]float64)

	h1, h2 := h(start, target)
	if h1 < 0 || h2 < 0 {
		return nil, ErrInvalidHeuristic
	}

	frontier := search.NewFrontier()
	frontier.Push(search.New(start, 0, 0, h1, h2, nil))

	for !frontier.Empty() {
		cur := frontier.PopBest()

		if min, ok := g2Min[cur.Vertex]; ok && cur.G2 >= min {
			continue
		}
		if tmin, ok := g2Min[target]; ok && cur.F2 >= tmin {
			continue
		}
		g2Min[cur.Vertex] = cur.G2

		if solutions[cur.Vertex] == nil {
			solutions[cur.Vertex] = pareto.NewBiObjParetoSet()
		}
		_, _ = solutions[cur.Vertex].Add(pareto.BiObjSolution{Payload: cur, G1: cur.G1, G2: cur.G2})

		if cur.Vertex == target {
			continue
		}

		for _, nb := range g.Neighbors(cur.Vertex) {
			for _, cost := range nb.Costs {
				nh1, nh2 := h(nb.To, target)
				if nh1 < 0 || nh2 < 0 {
					return nil, ErrInvalidHeuristic
				}
				y := search.New(nb.To, cur.G1+cost.C1, cur.G2+cost.C2, nh1, nh2, cur)

				if min, ok := g2Min[y.Vertex]; ok && y.G2 >= min {
					continue
				}
				if tmin, ok := g2Min[target]; ok && y.F2 >= tmin {
					continue
				}
				frontier.Push(y)
			}
		}
	}

	return solutions, nil
}
