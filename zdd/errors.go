package zdd

import "errors"

// ErrNotKeyer indicates a Spec returned a state that does not implement
// Keyer, so Build/Subset cannot deduplicate it.
var ErrNotKeyer = errors.New("zdd: spec state does not implement Keyer")

// ErrLevelMismatch indicates Subset was called with a filter Spec whose
// root level does not match the diagram's root level — the two were
// built over a different number of edges.
var ErrLevelMismatch = errors.New("zdd: spec/diagram level mismatch")

// ErrMissingChildCount indicates Cardinality encountered a node whose
// child ref was never assigned a count — an internal consistency
// failure (a malformed or hand-built Diagram), never raised by Build,
// Reduce, or Subset output.
var ErrMissingChildCount = errors.New("zdd: cardinality: missing child count")
