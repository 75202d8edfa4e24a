package mutate

import "errors"

// ErrTargetUnreachable indicates PathClone was asked to clone a path to a
// target team not reachable from the given starting team.
var ErrTargetUnreachable = errors.New("mutate: target team is not reachable from the starting team")
