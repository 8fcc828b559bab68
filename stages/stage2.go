package stages

import (
	"github.com/birouted/biroute/graph"
	"github.com/birouted/biroute/pareto"
	"github.com/birouted/biroute/search"
)

// Stage2 runs the possible-senders variant: identical to Limited
// except that it retains no back-link at all. Its States exist only
// to be queried for vertex membership — callers run it on a reversed
// Graph (see graph.Graph.Reverse) to answer "which vertices can reach
// start within the caps" as "which vertices are reachable from start
// in the reverse graph".
func Stage2(g *graph.Graph, start graph.Vertex, c1, c2 float64) map[graph.Vertex]*pareto.ParetoSet {
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
		_, _ = solutions[cur.Vertex].Add(pareto.BiObjSolution{Payload: cur.Vertex, G1: cur.G1, G2: cur.G2})

		for _, nb := range g.Neighbors(cur.Vertex) {
			for _, cost := range nb.Costs {
				ng1, ng2 := cur.G1+cost.C1, cur.G2+cost.C2
				if min, ok := g2Min[nb.To]; ok && ng2 >= min {
					continue
				}
				if ng1 > c1 || ng2 > c2 {
					continue
				}
				frontier.Push(search.New(nb.To, ng1, ng2, 0, 0, nil))
			}
		}
	}

	return solutions
}
