package bod

import "errors"

// ErrInvalidHeuristic is returned by BOA when the supplied Heuristic
// produces a negative component, which can never be a valid lower
// bound on remaining cost.
var ErrInvalidHeuristic = errors.New("bod: heuristic returned a negative component")
