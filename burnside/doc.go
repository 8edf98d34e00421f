// Package burnside aggregates per-automorphism fixed spanning-tree
// counts into the orbit count Burnside's lemma predicts: the number of
// non-isomorphic spanning trees is the average, over the automorphism
// group, of the number of trees each automorphism fixes.
//
// The identity automorphism's fixed-tree count is always the unfiltered
// cardinality, computed without a ZDD pass. A zero-flagged automorphism
// is trusted to fix none and likewise skips the pass. Every other
// automorphism gets a fresh copy of the reduced spanning-tree diagram,
// intersected against symmetry.New's per-orbit filter.
package burnside
