package pgraph

import "errors"

// Sentinel errors returned while reading or validating a Graph file.
var (
	// ErrEmptyGraph indicates the edge list contained zero edges.
	ErrEmptyGraph = errors.New("pgraph: edge list is empty")

	// ErrMalformedLine indicates a line did not parse as "u v" with two
	// non-negative integers.
	ErrMalformedLine = errors.New("pgraph: malformed edge line")

	// ErrNegativeVertex indicates a vertex identifier was negative.
	ErrNegativeVertex = errors.New("pgraph: negative vertex identifier")
)
