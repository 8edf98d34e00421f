// Package frontier precomputes, from an edge-ordered pgraph.Graph, the
// per-step frontier sets that let spantree track connectivity with O(1)
// state per on-frontier vertex instead of O(V) union-find over the whole
// graph.
//
// For each edge step i (0 <= i < E), a vertex x is:
//
//   - entering at i  if i is x's minimum-indexed incident edge,
//   - leaving after i if i is x's maximum-indexed incident edge,
//   - on the frontier at step i if its incidence range straddles i
//     (entered at or before i, leaves at or after i).
//
// Manager additionally assigns each on-frontier vertex a small integer
// slot, reused once the vertex leaves, bounding per-step state to
// maxFrontierSize entries rather than V.
package frontier
