package pareto

// ParetoSet holds a Pareto-optimal antichain of Solutions of a single
// Kind, keyed on each member's (g1, g2) objective vector rather than
// its payload — two solutions realizing the same vector are the same
// member, matching the equality the dominance rules assume. It is not
// safe for concurrent use without external synchronization — the
// searches that populate it are single-threaded.
type ParetoSet struct {
	kind      Kind
	solutions map[[2]float64]Solution
}

// NewParetoSet returns an empty ParetoSet that only accepts Solutions
// of the given kind.
func NewParetoSet(kind Kind) *ParetoSet {
	return &ParetoSet{kind: kind, solutions: make(map[[2]float64]Solution)}
}

// NewBiObjParetoSet is a convenience constructor for the common case.
func NewBiObjParetoSet() *ParetoSet {
	return NewParetoSet(BiObj)
}

func valueKey(solution Solution) [2]float64 {
	g1, g2 := solution.Values()
	return [2]float64{g1, g2}
}

// Add inserts solution into the set if it is non-dominated by any
// current member, discarding every member it dominates in the
// process and replacing a member that shares its exact objective
// vector. It reports whether the solution was added.
//
// Add returns ErrTypeMismatch if solution.Kind() does not match the
// set's kind.
func (ps *ParetoSet) Add(solution Solution) (bool, error) {
	if solution.Kind() != ps.kind {
		return false, ErrTypeMismatch
	}

	if !ps.CheckDominance(solution) {
		return false, nil
	}

	for k, existing := range ps.solutions {
		if solution.Dominates(existing) {
			delete(ps.solutions, k)
		}
	}
	ps.solutions[valueKey(solution)] = solution

	return true, nil
}

// Remove deletes the member sharing solution's objective vector.
//
// Remove returns ErrTypeMismatch if solution.Kind() does not match the
// set's kind, and ErrNotFound if no member shares its vector.
func (ps *ParetoSet) Remove(solution Solution) error {
	if solution.Kind() != ps.kind {
		return ErrTypeMismatch
	}
	k := valueKey(solution)
	if _, ok := ps.solutions[k]; !ok {
		return ErrNotFound
	}
	delete(ps.solutions, k)
	return nil
}

// CheckDominance reports whether solution is non-dominated by every
// current member of the set — i.e. whether it is eligible for Add.
func (ps *ParetoSet) CheckDominance(solution Solution) bool {
	for _, existing := range ps.solutions {
		if existing.Dominates(solution) {
			return false
		}
	}
	return true
}

// RemoveWorse deletes every member of the set that better dominates.
// It is the bulk counterpart of the per-Add pruning Add already
// performs.
func (ps *ParetoSet) RemoveWorse(better Solution) {
	for k, existing := range ps.solutions {
		if better.Dominates(existing) {
			delete(ps.solutions, k)
		}
	}
}

// Contains reports whether a member shares solution's objective
// vector.
func (ps *ParetoSet) Contains(solution Solution) bool {
	_, ok := ps.solutions[valueKey(solution)]
	return ok
}

// Len returns the number of solutions currently in the set.
func (ps *ParetoSet) Len() int { return len(ps.solutions) }

// Solutions returns a snapshot slice of the set's members, in no
// particular order.
func (ps *ParetoSet) Solutions() []Solution {
	out := make([]Solution, 0, len(ps.solutions))
	for _, s := range ps.solutions {
		out = append(out, s)
	}
	return out
}

// Values returns the (g1, g2) pair of every member, in no particular
// order — the Go analogue of get_solutions(values=True).
func (ps *ParetoSet) Values() [][2]float64 {
	out := make([][2]float64, 0, len(ps.solutions))
	for k := range ps.solutions {
		out = append(out, k)
	}
	return out
}
