package pareto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birouted/biroute/pareto"
)

func TestBiObjSolutionDominance(t *testing.T) {
	s1 := pareto.BiObjSolution{Payload: 0, G1: 6, G2: 3}
	s2 := pareto.BiObjSolution{Payload: 1, G1: 4, G2: 2}

	assert.False(t, s1.Dominates(s2))
	assert.True(t, s2.Dominates(s1))
	assert.True(t, s1.IsDominatedBy(s2))
	assert.False(t, s2.IsDominatedBy(s1))
	assert.NotEqual(t, s1, s2)
}

func TestParetoSetAddKeepsOnlyNonDominated(t *testing.T) {
	ps := pareto.NewBiObjParetoSet()

	added, err := ps.Add(pareto.BiObjSolution{Payload: 0, G1: 1, G2: 2})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = ps.Add(pareto.BiObjSolution{Payload: 1, G1: 3, G2: 4})
	require.NoError(t, err)
	assert.False(t, added) // dominated by (1,2)

	added, err = ps.Add(pareto.BiObjSolution{Payload: 2, G1: 2, G2: 3})
	require.NoError(t, err)
	assert.False(t, added) // dominated by (1,2)

	added, err = ps.Add(pareto.BiObjSolution{Payload: 3, G1: 5, G2: 1})
	require.NoError(t, err)
	assert.True(t, added) // incomparable with (1,2)

	assert.Equal(t, 2, ps.Len())
}

func TestParetoSetRemove(t *testing.T) {
	ps := pareto.NewBiObjParetoSet()
	a := pareto.BiObjSolution{Payload: 0, G1: 1, G2: 4}
	b := pareto.BiObjSolution{Payload: 1, G1: 3, G2: 2}
	_, err := ps.Add(a)
	require.NoError(t, err)
	_, err = ps.Add(b)
	require.NoError(t, err)

	require.NoError(t, ps.Remove(a))
	assert.False(t, ps.Contains(a))
	assert.Equal(t, 1, ps.Len())
}

func TestParetoSetRemoveNonExistent(t *testing.T) {
	ps := pareto.NewBiObjParetoSet()
	err := ps.Remove(pareto.BiObjSolution{Payload: 0, G1: 1, G2: 1})
	assert.ErrorIs(t, err, pareto.ErrNotFound)
}

func TestParetoSetContains(t *testing.T) {
	ps := pareto.NewBiObjParetoSet()
	s1 := pareto.BiObjSolution{Payload: 0, G1: 1, G2: 7}
	s2 := pareto.BiObjSolution{Payload: 0, G1: 2, G2: 5}
	_, err := ps.Add(s1)
	require.NoError(t, err)
	_, err = ps.Add(s2)
	require.NoError(t, err)

	assert.True(t, ps.Contains(s1))
	assert.True(t, ps.Contains(s2))
	assert.False(t, ps.Contains(pareto.BiObjSolution{Payload: 3, G1: 1, G2: 4}))
}

// fakeSolution is a second Kind used only to exercise ParetoSet's
// type-mismatch guard.
type fakeSolution struct{}

func (fakeSolution) Kind() pareto.Kind                      { return pareto.BiObj + 1 }
func (fakeSolution) Values() (float64, float64)             { return 0, 0 }
func (fakeSolution) Dominates(pareto.Solution) bool         { return false }
func (fakeSolution) IsDominatedBy(pareto.Solution) bool     { return false }

func TestParetoSetRejectsMismatchedKind(t *testing.T) {
	ps := pareto.NewBiObjParetoSet()
	_, err := ps.Add(fakeSolution{})
	assert.ErrorIs(t, err, pareto.ErrTypeMismatch)
}

func TestParetoSetRemoveWorse(t *testing.T) {
	ps := pareto.NewBiObjParetoSet()
	_, err := ps.Add(pareto.BiObjSolution{Payload: 0, G1: 5, G2: 5})
	require.NoError(t, err)
	_, err = ps.Add(pareto.BiObjSolution{Payload: 1, G1: 1, G2: 9})
	require.NoError(t, err)

	ps.RemoveWorse(pareto.BiObjSolution{Payload: 2, G1: 2, G2: 2})
	assert.Equal(t, 1, ps.Len())
}
