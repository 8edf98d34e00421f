// Package spantree implements the SpanningTree zdd.Spec: the frontier-based
// recursive filter whose accepted paths are exactly the edge subsets that
// form a spanning tree of the underlying pgraph.Graph.
//
// Per-path state is a FrontierData array, one union-find-style component
// representative per frontier slot. At each edge step the Spec:
//
//   - admits newly-entering vertices as singleton components (Step A),
//   - on a selected edge, merges the two endpoints' components unless
//     they already coincide, in which case the edge would close a cycle
//     and the path is pruned (Step B),
//   - at the last edge, accepts iff the two endpoints now share a
//     component (Step C),
//   - retires leaving vertices, pruning any path that would strand one
//     with no witness still sharing its component on the frontier,
//     since such a vertex could never join the spanning tree (Step D).
//
// This mirrors the classic frontier-based spanning-tree ZDD construction:
// global connectedness is enforced through purely local, per-step checks
// against O(maxFrontierSize) state.
package spantree
