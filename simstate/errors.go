package simstate

import "errors"

// ErrResidencyConflict signals a bug rather than bad input: more than
// one zone (or none) claims an agent as resident. It is never expected
// to surface in a correct run.
var ErrResidencyConflict = errors.New("simstate: agent has no unique resident zone")
