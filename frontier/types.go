package frontier

// Manager holds the precomputed per-step frontier sets and slot
// assignment for one edge-ordered graph. It is derived once and is
// read-only afterward; spantree.Spec consults it at every Child
// transition but never mutates it.
type Manager struct {
	enter     [][]int // enter[i]: vertices whose minimum incident edge is i
	leave     [][]int // leave[i]: vertices whose maximum incident edge is i
	frontier  [][]int // frontier[i]: vertices on the frontier while processing edge i
	slot      map[int]int
	maxFrontierSize int
	edgeCount int
}

// Enter returns the vertices entering the frontier at step i, in
// ascending vertex-ID order.
func (m *Manager) Enter(i int) []int { return m.enter[i] }

// Leave returns the vertices retiring after step i, in ascending
// vertex-ID order.
func (m *Manager) Leave(i int) []int { return m.leave[i] }

// Frontier returns the set of vertices on the frontier while edge i is
// being processed (entered at or before i, leaving at or after i).
func (m *Manager) Frontier(i int) []int { return m.frontier[i] }

// Slot returns the frontier slot assigned to vertex v for the duration
// of its tenure on the frontier. Slots are reused across disjoint
// tenures, so the returned index is only meaningful while v is on the
// frontier at the step being processed.
func (m *Manager) Slot(v int) int { return m.slot[v] }

// MaxFrontierSize returns the maximum, over all steps, of the frontier
// size — the width spantree.Spec's per-vertex state array must have.
func (m *Manager) MaxFrontierSize() int { return m.maxFrontierSize }

// EdgeCount returns E, the number of edge steps this Manager was built
// from.
func (m *Manager) EdgeCount() int { return m.edgeCount }
