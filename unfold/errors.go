package unfold

import "errors"

// ErrEmptyMOPE is returned when constructing a Spec from an empty edge set,
// which the reference algorithm never defines a transition for.
var ErrEmptyMOPE = errors.New("unfold: MOPE edge set must be non-empty")
