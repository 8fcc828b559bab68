package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birouted/biroute/bod"
	"github.com/birouted/biroute/graph"
	"github.com/birouted/biroute/routing"
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

func TestBuildFirstHopTableEmptyWhenNoOutgoingEdges(t *testing.T) {
	g := buildS1()
	table, err := routing.BuildFirstHopTable(g, 1, routing.WithCaps(100, 100))
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestBuildFirstHopTableRecordsReachableTargets(t *testing.T) {
	g := buildS1()
	table, err := routing.BuildFirstHopTable(g, 0, routing.WithCaps(100, 100))
	require.NoError(t, err)

	entry, ok := table[1]
	require.True(t, ok)
	hop, ok := entry.NextHop(0)
	require.True(t, ok)
	assert.Contains(t, []graph.Vertex{2, 4}, hop)
}

func TestBuildTableFullPipelineDoesNotPanic(t *testing.T) {
	g := buildS1()
	table, err := routing.BuildTable(g, 2, routing.WithCaps(100, 100), routing.WithSelector(routing.MinG1))
	require.NoError(t, err)
	assert.NotNil(t, table)
}

func TestMinG1PrefersSmallestFirstObjective(t *testing.T) {
	g := buildS1()
	solutions := bod.BOD(g, 0)

	sol, err := routing.MinG1(solutions[1], 100, 100)
	require.NoError(t, err)
	assert.Equal(t, float64(3), sol.G1)
}

func TestMinG2PrefersSmallestSecondObjective(t *testing.T) {
	g := buildS1()
	solutions := bod.BOD(g, 0)

	sol, err := routing.MinG2(solutions[1], 100, 100)
	require.NoError(t, err)
	assert.Equal(t, float64(2), sol.G2)
}

func TestDecentralizedWalkSucceedsForMinG1(t *testing.T) {
	g := buildS1()
	ok, mismatch, err := routing.Decentralized(g, 0, 1, bod.BOD, routing.MinG1, 1e9, 1e9, nil)
	require.NoError(t, err)
	assert.Nil(t, mismatch)
	assert.True(t, ok)
}

func TestDecentralizedWalkFailsWhenTargetUnreachable(t *testing.T) {
	g := graph.New()
	g.AddEdge(0, 1, 1, 1)
	_, _, err := routing.Decentralized(g, 0, 99, bod.BOD, routing.MinG1, 1e9, 1e9, nil)
	assert.ErrorIs(t, err, routing.ErrUnreachable)
}
