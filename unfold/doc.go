// Package unfold implements the UnfoldingFilter zdd.Spec: a per-MOPE
// subsetting filter over the spanning-tree diagram, one pass for each
// Minimal Overlapping Partial Enumeration (MOPE) — edge sets whose
// simultaneous presence in the tree is known to force an overlapping
// unfolding. A path is pruned only when every edge of the MOPE is
// refused; a path that selects any MOPE edge, including one that selects
// all of them, is kept.
//
// The filter's prune direction is intentionally inverted from the naive
// "prune once all MOPE edges are selected" reading: the state mask
// starts holding every MOPE edge, a 0-branch (edge refused) clears that
// edge's bit, and reaching an all-zero mask on a 0-branch means every
// MOPE edge has been refused — the condition this filter actually
// prunes. A 1-branch hitting a still-set bit zeroes the whole mask,
// permanently disarming the filter for the rest of that path, since the
// MOPE no longer constrains anything once one of its edges is fixed
// selected. This transition is preserved literally from the reference
// algorithm; it is not a bug to "fix".
//
// Applying several MOPEs is a chain of independent subset+reduce passes,
// one per MOPE, in any order.
package unfold
