package inputs

import "errors"

var (
	// ErrMalformedMOPE is returned for a MOPE line that is not a valid
	// {"edges": [...]} JSON object.
	ErrMalformedMOPE = errors.New("inputs: malformed MOPE line")

	// ErrEdgeOutOfRange is returned when a MOPE or permutation references
	// an edge index outside [0, E).
	ErrEdgeOutOfRange = errors.New("inputs: edge index out of range")

	// ErrMalformedAutomorphisms is returned when the automorphism JSON
	// object is missing required fields or structurally invalid.
	ErrMalformedAutomorphisms = errors.New("inputs: malformed automorphism file")

	// ErrPermutationLength is returned when an edge_permutations entry's
	// length does not equal E.
	ErrPermutationLength = errors.New("inputs: permutation length mismatch")

	// ErrMissingIdentity is returned when no permutation in
	// edge_permutations is the identity.
	ErrMissingIdentity = errors.New("inputs: identity permutation not present")
)
