package stages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birouted/biroute/graph"
	"github.com/birouted/biroute/pareto"
	"github.com/birouted/biroute/search"
	"github.com/birouted/biroute/stages"
)

// buildS1 mirrors the simple-DAG scenario used across the algorithm
// packages.
func buildS1() *graph.Graph {
	g := graph.New()
	g.AddEdge(0, 2, 1, 5)
	g.AddEdge(0, 4, 5, 1)
	g.AddEdge(2, 3, 1, 4)
	g.AddEdge(2, 5, 1, 2)
	g.AddEdge(2, 5, 2, 1)
	g.AddEdge(4, 3, 1, 3)
	g.AddEdge(3, 1, 9, 3)
	g.AddEdge(4, 1, 2, 1)
	g.AddEdge(5, 1, 1, 1)
	return g
}

func statesOf(t *testing.T, ps *pareto.ParetoSet) []*search.State {
	t.Helper()
	var out []*search.State
	for _, sol := range ps.Solutions() {
		b, ok := sol.(pareto.BiObjSolution)
		require.True(t, ok)
		st, ok := b.Payload.(*search.State)
		require.True(t, ok)
		out = append(out, st)
	}
	return out
}

func TestLimitedExcludesOverCapSolutions(t *testing.T) {
	solutions := stages.Limited(buildS1(), 0, 3, 6)
	assert.Empty(t, solutions[1].Values())
}

func TestStage1FirstHopField(t *testing.T) {
	solutions := stages.Stage1(buildS1(), 0, 100, 100)
	require.NotNil(t, solutions[3])

	// vertex 3's Pareto set holds two non-dominated members: (2,9) via
	// 0->2->3 (first hop 2) and (6,4) via 0->4->3 (first hop 4).
	seenFirstHops := make(map[graph.Vertex]bool)
	for _, st := range statesOf(t, solutions[3]) {
		assert.True(t, st.HasFirstHop)
		assert.Contains(t, []graph.Vertex{2, 4}, st.FirstHop)
		seenFirstHops[st.FirstHop] = true
		if st.G1 == 6 && st.G2 == 4 {
			assert.Equal(t, graph.Vertex(4), st.FirstHop)
		}
	}
	assert.True(t, seenFirstHops[2])
	assert.True(t, seenFirstHops[4])
}

func TestStage2RunsOnReverseGraph(t *testing.T) {
	g := buildS1()
	rev := g.Reverse(false)

	senders := stages.Stage2(rev, 1, 100, 100)
	assert.Contains(t, senders, graph.Vertex(0))
	assert.Contains(t, senders, graph.Vertex(2))
}

func TestStage3RecordsNextAfterTarget(t *testing.T) {
	solutions := stages.Stage3(buildS1(), 0, 2, 100, 100)
	require.NotNil(t, solutions[1])

	sawTracked := false
	for _, st := range statesOf(t, solutions[1]) {
		if st.HasNextAfterTarget {
			sawTracked = true
			assert.Contains(t, []graph.Vertex{3, 5}, st.NextAfterTarget)
		}
	}
	assert.True(t, sawTracked)
}
