package routing

import (
	"math"
	"sort"

	"github.com/birouted/biroute/pareto"
)

// Selector picks one representative solution from a Pareto set under
// caps (c1, c2). It returns ErrEmptyParetoSet if the set has no
// members.
type Selector func(ps *pareto.ParetoSet, c1, c2 float64) (pareto.BiObjSolution, error)

func biObjSolutions(ps *pareto.ParetoSet) []pareto.BiObjSolution {
	raw := ps.Solutions()
	out := make([]pareto.BiObjSolution, 0, len(raw))
	for _, s := range raw {
		if b, ok := s.(pareto.BiObjSolution); ok {
			out = append(out, b)
		}
	}
	return out
}

// distanceToLine returns the distance from (g1, g2) to the line y = x.
func distanceToLine(g1, g2 float64) float64 {
	return math.Abs(g1-g2) / math.Sqrt2
}

// sortByDistanceThenValues sorts solutions by distance to the y=x line,
// breaking ties deterministically on (g1, g2) so repeated calls over
// the same set pick the same representative regardless of map
// iteration order.
func sortByDistanceThenValues(sols []pareto.BiObjSolution) {
	sort.Slice(sols, func(i, j int) bool {
		di, dj := distanceToLine(sols[i].G1, sols[i].G2), distanceToLine(sols[j].G1, sols[j].G2)
		if di != dj {
			return di < dj
		}
		if sols[i].G1 != sols[j].G1 {
			return sols[i].G1 < sols[j].G1
		}
		return sols[i].G2 < sols[j].G2
	})
}

// BudgetedMiddle filters to solutions with g1 ≤ c1 or g2 ≤ c2 (falling
// back to the full set if that filter is empty), sorts by distance to
// the y = x line, and returns the middle element — a balanced
// compromise between the two objectives.
func BudgetedMiddle(ps *pareto.ParetoSet, c1, c2 float64) (pareto.BiObjSolution, error) {
	all := biObjSolutions(ps)
	if len(all) == 0 {
		return pareto.BiObjSolution{}, ErrEmptyParetoSet
	}

	filtered := make([]pareto.BiObjSolution, 0, len(all))
	for _, s := range all {
		if s.G1 <= c1 || s.G2 <= c2 {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		filtered = all
	}

	sortByDistanceThenValues(filtered)
	return filtered[len(filtered)/2], nil
}

// MinG1 returns the solution with the smallest g1, breaking ties on
// g2.
func MinG1(ps *pareto.ParetoSet, _, _ float64) (pareto.BiObjSolution, error) {
	all := biObjSolutions(ps)
	if len(all) == 0 {
		return pareto.BiObjSolution{}, ErrEmptyParetoSet
	}
	best := all[0]
	for _, s := range all[1:] {
		if s.G1 < best.G1 || (s.G1 == best.G1 && s.G2 < best.G2) {
			best = s
		}
	}
	return best, nil
}

// MinG2 returns the solution with the smallest g2, breaking ties on
// g1.
func MinG2(ps *pareto.ParetoSet, _, _ float64) (pareto.BiObjSolution, error) {
	all := biObjSolutions(ps)
	if len(all) == 0 {
		return pareto.BiObjSolution{}, ErrEmptyParetoSet
	}
	best := all[0]
	for _, s := range all[1:] {
		if s.G2 < best.G2 || (s.G2 == best.G2 && s.G1 < best.G1) {
			best = s
		}
	}
	return best, nil
}
