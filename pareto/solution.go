package pareto

// Kind tags the concrete shape of a Solution so ParetoSet can reject a
// mismatched variant without reflection.
type Kind int

// BiObj is the only Kind implemented: a two-objective solution.
const BiObj Kind = iota

// Solution is any dominance-comparable optimization outcome. ParetoSet
// is parameterized on a single Kind at construction and only accepts
// Solutions carrying that Kind.
type Solution interface {
	Kind() Kind
	Values() (g1, g2 float64)
	Dominates(other Solution) bool
	IsDominatedBy(other Solution) bool
}

// BiObjSolution is a solution to a bi-objective problem: a pair of
// objective values plus an arbitrary payload identifying where the
// solution came from (typically the terminal *search.State of the
// search that produced it, so callers can reconstruct the path).
type BiObjSolution struct {
	Payload interface{}
	G1, G2  float64
}

// Kind implements Solution.
func (BiObjSolution) Kind() Kind { return BiObj }

// Values implements Solution.
func (s BiObjSolution) Values() (float64, float64) { return s.G1, s.G2 }

// Dominates reports whether s dominates other under the strict product
// order with weak dominance on ties. It returns false if other is not
// a BiObjSolution.
func (s BiObjSolution) Dominates(other Solution) bool {
	o, ok := other.(BiObjSolution)
	if !ok {
		return false
	}
	return (s.G1 < o.G1 && s.G2 <= o.G2) || (s.G1 <= o.G1 && s.G2 < o.G2)
}

// IsDominatedBy reports whether other dominates s.
func (s BiObjSolution) IsDominatedBy(other Solution) bool {
	o, ok := other.(BiObjSolution)
	if !ok {
		return false
	}
	return o.Dominates(s)
}
