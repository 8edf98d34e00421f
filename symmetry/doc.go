// Package symmetry implements the SymmetryFilter zdd.Spec used to count
// spanning trees fixed by one automorphism of the underlying graph, the
// |T_g| term Burnside's lemma averages over the automorphism group.
//
// An automorphism is given as an edge permutation σ; its non-trivial
// orbits (cycles of length > 1) are the only edges that constrain a
// path. Each orbit is tracked with a single state bit: the orbit's
// representative (its minimum-indexed edge) fixes the bit the first
// time it is reached, and every other member of the orbit is then
// forced to agree with that bit — since σ fixes T iff T is a union of
// whole orbits.
package symmetry
