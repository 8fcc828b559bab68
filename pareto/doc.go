// Package pareto implements the Pareto-optimal solution set used by the
// bi-objective search algorithms in package bod: an antichain under the
// dominance relation, where adding a solution discards everything it
// dominates and is itself rejected if anything already present
// dominates it.
//
// Solution is a small tagged-variant interface rather than an open
// abstract hierarchy: ParetoSet is built for exactly one Kind of
// Solution, and Add rejects any Solution whose Kind doesn't match with
// ErrTypeMismatch. BiObjSolution is the only Kind implemented — the
// variant tag exists so a future objective count or solution shape can
// be added without widening ParetoSet's API.
package pareto
