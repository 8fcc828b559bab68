package routing

import "errors"

// ErrEmptyParetoSet is returned by a Selector when the Pareto set it
// was given has no members to choose from.
var ErrEmptyParetoSet = errors.New("routing: pareto set has no solutions")

// ErrUnreachable is returned by Decentralized when the target is not
// reachable from some node encountered during the walk.
var ErrUnreachable = errors.New("routing: target unreachable from node")

// ErrNegativeCap is the panic value used by WithCaps when given a
// negative C1 or C2.
var ErrNegativeCap = errors.New("routing: cap must be non-negative")
