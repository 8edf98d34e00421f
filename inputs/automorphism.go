package inputs

import (
	"encoding/json"
	"fmt"
	"io"
)

// Automorphisms is the parsed automorphism JSON object (spec §6).
type Automorphisms struct {
	GroupOrder       int
	EdgePermutations [][]int
	ZeroFlags        []bool // nil if the file omitted zero_flags
}

type automorphismFile struct {
	GroupOrder       int     `json:"group_order"`
	EdgePermutations [][]int `json:"edge_permutations"`
	ZeroFlags        []bool  `json:"zero_flags,omitempty"`
}

// ReadAutomorphisms parses and validates the automorphism JSON file
// against a graph of e edges: every permutation must have length e,
// every entry must be in [0, e), and the identity permutation must be
// present. A mismatch between group_order and len(edge_permutations) is
// reported as a warning, not an error, per the semantic-warning class.
func ReadAutomorphisms(r io.Reader, e int) (Automorphisms, []string, error) {
	var parsed automorphismFile
	if err := json.NewDecoder(r).Decode(&parsed); err != nil {
		return Automorphisms{}, nil, fmt.Errorf("inputs: %w: %v", ErrMalformedAutomorphisms, err)
	}

	if parsed.GroupOrder <= 0 || len(parsed.EdgePermutations) == 0 {
		return Automorphisms{}, nil, fmt.Errorf("inputs: %w: missing group_order or edge_permutations", ErrMalformedAutomorphisms)
	}
	if parsed.ZeroFlags != nil && len(parsed.ZeroFlags) != len(parsed.EdgePermutations) {
		return Automorphisms{}, nil, fmt.Errorf("inputs: %w: zero_flags length %d != %d permutations", ErrMalformedAutomorphisms, len(parsed.ZeroFlags), len(parsed.EdgePermutations))
	}

	var warnings []string
	if parsed.GroupOrder != len(parsed.EdgePermutations) {
		warnings = append(warnings, fmt.Sprintf("inputs: group_order %d differs from %d provided permutations", parsed.GroupOrder, len(parsed.EdgePermutations)))
	}

	hasIdentity := false
	for pi, perm := range parsed.EdgePermutations {
		if len(perm) != e {
			return Automorphisms{}, warnings, fmt.Errorf("inputs: permutation %d: %w (got %d, want %d)", pi, ErrPermutationLength, len(perm), e)
		}
		identity := true
		seen := make([]bool, e)
		for j, target := range perm {
			if target < 0 || target >= e {
				return Automorphisms{}, warnings, fmt.Errorf("inputs: permutation %d entry %d: %w", pi, j, ErrEdgeOutOfRange)
			}
			if seen[target] {
				return Automorphisms{}, warnings, fmt.Errorf("inputs: permutation %d: %w: repeated target %d", pi, ErrMalformedAutomorphisms, target)
			}
			seen[target] = true
			if target != j {
				identity = false
			}
		}
		if identity {
			hasIdentity = true
		}
	}
	if !hasIdentity {
		return Automorphisms{}, warnings, fmt.Errorf("inputs: %w", ErrMissingIdentity)
	}

	return Automorphisms{
		GroupOrder:       parsed.GroupOrder,
		EdgePermutations: parsed.EdgePermutations,
		ZeroFlags:        parsed.ZeroFlags,
	}, warnings, nil
}
