package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birouted/biroute/graph"
	"github.com/birouted/biroute/search"
)

func TestFrontierPopsInLexicographicOrder(t *testing.T) {
	f := search.NewFrontier()
	f.Push(search.New(1, 3, 1, 0, 0, nil))
	f.Push(search.New(2, 1, 9, 0, 0, nil))
	f.Push(search.New(3, 1, 2, 0, 0, nil))

	first := f.PopBest()
	assert.Equal(t, graph.Vertex(3), first.Vertex) // (1,2) < (1,9) < (3,1)

	second := f.PopBest()
	assert.Equal(t, graph.Vertex(2), second.Vertex)

	third := f.PopBest()
	assert.Equal(t, graph.Vertex(1), third.Vertex)

	assert.True(t, f.Empty())
}

func TestFrontierTieBreaksOnInsertionOrder(t *testing.T) {
	f := search.NewFrontier()
	first := search.New(10, 1, 1, 0, 0, nil)
	second := search.New(20, 1, 1, 0, 0, nil)
	f.Push(first)
	f.Push(second)

	assert.Same(t, first, f.PopBest())
	assert.Same(t, second, f.PopBest())
}

func TestPruneDominatedByRemovesDominatedStates(t *testing.T) {
	f := search.NewFrontier()
	f.Push(search.New(1, 5, 5, 0, 0, nil)) // dominated by (2,2)
	f.Push(search.New(2, 1, 9, 0, 0, nil)) // not dominated: better on F1
	f.Push(search.New(3, 9, 1, 0, 0, nil)) // not dominated: better on F2

	f.PruneDominatedBy(2, 2)
	require.Equal(t, 2, f.Len())

	seen := map[graph.Vertex]bool{}
	for !f.Empty() {
		seen[f.PopBest().Vertex] = true
	}
	assert.True(t, seen[2])
	assert.True(t, seen[3])
	assert.False(t, seen[1])
}

func TestPathWalksParentChain(t *testing.T) {
	root := search.New(1, 0, 0, 0, 0, nil)
	mid := search.New(2, 1, 1, 0, 0, root)
	leaf := search.New(3, 2, 2, 0, 0, mid)

	assert.Equal(t, []graph.Vertex{1, 2, 3}, search.Path(leaf))
	assert.Equal(t, []graph.Vertex{1}, search.Path(root))
}

func TestStateDominates(t *testing.T) {
	a := search.New(1, 1, 2, 0, 0, nil)
	b := search.New(2, 1, 3, 0, 0, nil) // equal F1, worse F2
	c := search.New(3, 2, 1, 0, 0, nil) // better F2, worse F1: incomparable

	assert.True(t, a.Dominates(b))
	assert.False(t, a.Dominates(c))
	assert.False(t, b.Dominates(a))
}
