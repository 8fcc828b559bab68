package pareto

import "errors"

// ErrTypeMismatch is returned by ParetoSet.Add and ParetoSet.Remove when
// the given Solution's Kind does not match the Kind the set was
// constructed for.
var ErrTypeMismatch = errors.New("pareto: solution kind does not match this set")

// ErrNotFound is returned by ParetoSet.Remove when the given Solution
// is not a member of the set.
var ErrNotFound = errors.New("pareto: solution not found in set")
