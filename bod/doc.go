// Package bod implements Bi-objective Dijkstra (BOD) and its
// target-directed variant, Bi-objective A* (BOA): search algorithms
// that compute, for one or more destinations, the full Pareto set of
// non-dominated paths under two additive cost objectives.
//
// Both algorithms share the same expansion loop, built on package
// search's Frontier and populating a pareto.ParetoSet per destination,
// differing only in how they order the frontier (g-ordering for BOD,
// f-ordering with an admissible heuristic for BOA) and in the extra
// target-dominance prune BOA applies.
package bod
