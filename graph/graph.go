package graph

// New returns an empty Graph, ready to accept edges via AddEdge.
func New() *Graph {
	return &Graph{
		adj: make(map[Vertex]map[Vertex][]CostPair),
	}
}

// AddEdge appends a parallel edge (u, v, (c1, c2)) to the graph. It is
// directional: a second call with v and u swapped creates a distinct,
// independent edge. Negative costs are the caller's responsibility to
// avoid — the search algorithms assume non-negative costs and do not
// re-validate them here.
func (g *Graph) AddEdge(u, v Vertex, c1, c2 float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[u]; !ok {
		g.adj[u] = make(map[Vertex][]CostPair)
	}
	g.adj[u][v] = append(g.adj[u][v], CostPair{C1: c1, C2: c2})
}

// Neighbors returns every destination directly reachable from u,
// together with all of its parallel cost pairs. It returns nil when u
// has no outgoing edges. The returned slice's order is not stable
// across calls; callers must not rely on it.
func (g *Graph) Neighbors(u Vertex) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[u]
	if !ok {
		return nil
	}
	out := make([]Neighbor, 0, len(bucket))
	for v, costs := range bucket {
		cs := make([]CostPair, len(costs))
		copy(cs, costs)
		out = append(out, Neighbor{To: v, Costs: cs})
	}
	return out
}

// Vertices returns every vertex that appears as the source of at least
// one edge. Destinations that never act as a source are not included —
// per the data model, isolated destinations are only discovered
// through their incoming edges.
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	return out
}

// Reset clears every edge, leaving an empty graph.
func (g *Graph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = make(map[Vertex]map[Vertex][]CostPair)
}

// Reverse returns a new Graph with every edge's endpoints swapped. When
// unitCosts is true, every reversed edge carries cost (1, 1) regardless
// of the original pair, for callers that only care about reachability
// within hop-count caps. routing's table builder calls Reverse(false),
// so its Stage 2 run keeps the original costs.
func (g *Graph) Reverse(unitCosts bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := New()
	for u, bucket := range g.adj {
		for v, costs := range bucket {
			for _, c := range costs {
				if unitCosts {
					r.AddEdge(v, u, 1, 1)
				} else {
					r.AddEdge(v, u, c.C1, c.C2)
				}
			}
		}
	}
	return r
}
