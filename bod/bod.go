package bod

import (
	"github.com/birouted/biroute/graph"
	"github.com/birouted/biroute/pareto"
	"github.com/birouted/biroute/search"
)

// BOD runs Bi-objective Dijkstra from start over g, returning, for
// every reachable vertex, the Pareto set of non-dominated paths from
// start on the (g1, g2) objective. Each member's Payload is the
// terminal *search.State of the discovering path, so callers can walk
// search.Path on it to recover the full route.
func BOD(g *graph.Graph, start graph.Vertex) map[graph.Vertex]*pareto.ParetoSet {
	solutions := make(map[graph.Vertex]*pareto.ParetoSet)
	g2Min := make(map[graph.Vertex]float64)

	frontier := search.NewFrontier()
	frontier.Push(search.New(start, 0, 0, 0, 0, nil))

	for !frontier.Empty() {
		cur := frontier.PopBest()

		if min, ok := g2Min[cur.Vertex]; ok && cur.G2 >= min {
			continue
		}
		g2Min[cur.Vertex] = cur.G2

		if solutions[cur.Vertex] == nil {
			solutions[cur.Vertex] = pareto.NewBiObjParetoSet()
		}
		_, _ = solutions[cur.Vertex].Add(pareto.BiObjSolution{Payload: cur, G1: cur.G1, G2: cur.G2})

		for _, nb := range g.Neighbors(cur.Vertex) {
			for _, cost := range nb.Costs {
				y := search.New(nb.To, cur.G1+cost.C1, cur.G2+cost.C2, 0, 0, cur)
				if min, ok := g2Min[y.Vertex]; ok && y.G2 >= min {
					continue
				}
				frontier.Push(y)
			}
		}
	}

	return solutions
}
