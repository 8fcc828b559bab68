package stages

import (
	"github.com/birouted/biroute/graph"
	"github.com/birouted/biroute/pareto"
	"github.com/birouted/biroute/search"
)

// Limited runs capped Bi-objective Dijkstra from start over g: the
// same expansion loop as bod.BOD, but any candidate whose g1 exceeds
// c1 or whose g2 exceeds c2 is discarded. Member States retain full
// parent back-links, so search.Path reconstructs the discovering
// route.
func Limited(g *graph.Graph, start graph.Vertex, c1, c2 float64) map[graph.Vertex]*pareto.ParetoSet {
	checkCaps(c1, c2)

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
				ng1, ng2 := cur.G1+cost.C1, cur.G2+cost.C2
				if min, ok := g2Min[nb.To]; ok && ng2 >= min {
					continue
				}
				if ng1 > c1 || ng2 > c2 {
					continue
				}
				frontier.Push(search.New(nb.To, ng1, ng2, 0, 0, cur))
			}
		}
	}

	return solutions
}
