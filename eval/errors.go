package eval

import "errors"

// ErrEmptyTeam indicates Team was asked to evaluate a team with no member
// programs; there is no winner to pick.
var ErrEmptyTeam = errors.New("eval: team has no programs")
