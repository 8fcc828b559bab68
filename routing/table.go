package routing

import (
	"sort"

	"github.com/birouted/biroute/graph"
	"github.com/birouted/biroute/pareto"
	"github.com/birouted/biroute/search"
	"github.com/birouted/biroute/stages"
)

// Entry is a target's forwarding decision: either a single next hop
// valid regardless of the sender a packet arrived from (Compressed),
// or a per-presumed-previous-hop mapping.
type Entry struct {
	Compressed bool
	Uniform    graph.Vertex
	BySender   map[graph.Vertex]graph.Vertex
}

// NextHop resolves the next hop for a packet destined for this
// Entry's target that arrived from sender. ok is false if no decision
// is recorded for that sender (and the entry isn't compressed).
func (e Entry) NextHop(sender graph.Vertex) (hop graph.Vertex, ok bool) {
	if e.Compressed {
		return e.Uniform, true
	}
	hop, ok = e.BySender[sender]
	return hop, ok
}

// Table maps a destination vertex to its forwarding Entry.
type Table map[graph.Vertex]Entry

// BuildFirstHopTable runs only the defaults-plus-Stage-1 portion of
// the pipeline: a cheap table usable when start only needs its own
// forwarding decisions, not how other senders would forward through
// it.
func BuildFirstHopTable(g *graph.Graph, start graph.Vertex, opts ...Option) (Table, error) {
	cfg := defaultOptions()
	cfg.FullTable = false
	for _, opt := range opts {
		opt(&cfg)
	}
	return build(g, start, cfg)
}

// BuildTable runs the full pipeline: defaults, Stage 1, Stage 2,
// Stage 3, and compression, producing a table usable to simulate how
// every possible sender through start would forward a packet.
func BuildTable(g *graph.Graph, start graph.Vertex, opts ...Option) (Table, error) {
	cfg := defaultOptions()
	cfg.FullTable = true
	for _, opt := range opts {
		opt(&cfg)
	}
	return build(g, start, cfg)
}

func build(g *graph.Graph, start graph.Vertex, cfg Options) (Table, error) {
	table := make(Table)

	neighbors := g.Neighbors(start)
	if len(neighbors) == 0 {
		return table, nil
	}
	placeholder := neighbors[0].To
	for target := range g.VerticesMap() {
		table[target] = Entry{BySender: map[graph.Vertex]graph.Vertex{start: placeholder}}
	}

	stage1 := stages.Stage1(g, start, cfg.C1, cfg.C2)
	for target, ps := range stage1 {
		if target == start {
			continue
		}
		hop, ok := firstHopOf(ps, cfg.Selector, cfg.C1, cfg.C2)
		if !ok {
			continue
		}
		setEntry(table, target, start, hop)
	}

	if !cfg.FullTable {
		return table, nil
	}

	reverse := g.Reverse(false)
	possibleSenders := stages.Stage2(reverse, start, cfg.C1, cfg.C2)
	senders := make([]graph.Vertex, 0, len(possibleSenders))
	for u := range possibleSenders {
		if u == start {
			// start's own forwarding decision came from Stage 1, not
			// Stage 3; it is not one of the "non-first senders".
			continue
		}
		senders = append(senders, u)
	}
	sort.Slice(senders, func(i, j int) bool { return senders[i] < senders[j] })

	for _, u := range senders {
		senderTable := stages.Stage3(g, u, start, cfg.C1, cfg.C2)
		for target, ps := range senderTable {
			if target == start {
				continue
			}
			hop, ok := nextAfterTargetOf(ps, cfg.Selector, cfg.C1, cfg.C2)
			if !ok {
				continue
			}
			setEntry(table, target, u, hop)
		}
	}

	if len(senders) == 0 {
		return table, nil
	}

	for target, entry := range table {
		distinct := make(map[graph.Vertex]struct{})
		for _, u := range senders {
			if hop, ok := entry.BySender[u]; ok {
				distinct[hop] = struct{}{}
			}
		}
		if len(distinct) == 1 {
			var only graph.Vertex
			for hop := range distinct {
				only = hop
			}
			table[target] = Entry{Compressed: true, Uniform: only}
		}
	}

	return table, nil
}

func setEntry(table Table, target, sender, hop graph.Vertex) {
	entry, ok := table[target]
	if !ok || entry.BySender == nil {
		entry = Entry{BySender: map[graph.Vertex]graph.Vertex{}}
	}
	entry.BySender[sender] = hop
	table[target] = entry
}

func firstHopOf(ps *pareto.ParetoSet, sel Selector, c1, c2 float64) (graph.Vertex, bool) {
	sol, err := sel(ps, c1, c2)
	if err != nil {
		return 0, false
	}
	st, ok := sol.Payload.(*search.State)
	if !ok || !st.HasFirstHop {
		return 0, false
	}
	return st.FirstHop, true
}

func nextAfterTargetOf(ps *pareto.ParetoSet, sel Selector, c1, c2 float64) (graph.Vertex, bool) {
	sol, err := sel(ps, c1, c2)
	if err != nil {
		return 0, false
	}
	st, ok := sol.Payload.(*search.State)
	if !ok || !st.HasNextAfterTarget {
		return 0, false
	}
	return st.NextAfterTarget, true
}
