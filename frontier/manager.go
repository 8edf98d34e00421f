package frontier

import (
	"sort"

	"github.com/zdcount/zdcount/pgraph"
)

// New derives a Manager from g's fixed edge order.
//
// Complexity: O(V + E log E + E*F log F) time and O(V + E*F) space, where
// F is maxFrontierSize: besides sorting each step's enter/leave lists, a
// sorted snapshot of the frontier is stored for every step.
func New(g *pgraph.Graph) *Manager {
	e := g.EdgeCount()
	v := g.VertexCount()

	// Stage 1: find each vertex's minimum and maximum incident edge index.
	minEdge := make([]int, v)
	maxEdge := make([]int, v)
	seen := make([]bool, v)
	for i, edge := range g.Edges() {
		for _, x := range [2]int{edge.U, edge.V} {
			if !seen[x] {
				seen[x] = true
				minEdge[x] = i
				maxEdge[x] = i
			} else {
				if i < minEdge[x] {
					minEdge[x] = i
				}
				if i > maxEdge[x] {
					maxEdge[x] = i
				}
			}
		}
	}

	// Stage 2: bucket vertices into enter[]/leave[] by their tenure
	// boundary, in ascending vertex-ID order for determinism.
	enter := make([][]int, e)
	leave := make([][]int, e)
	for x := 0; x < v; x++ {
		if !seen[x] {
			continue // isolated vertex: cannot appear in any spanning tree path anyway
		}
		enter[minEdge[x]] = append(enter[minEdge[x]], x)
		leave[maxEdge[x]] = append(leave[maxEdge[x]], x)
	}
	for i := 0; i < e; i++ {
		sort.Ints(enter[i])
		sort.Ints(leave[i])
	}

	// Stage 3: sweep steps in order, assigning/freeing frontier slots and
	// recording the frontier snapshot and maximum concurrent size.
	slot := make(map[int]int, v)
	var free []int
	nextSlot := 0
	frontier := make([][]int, e)
	active := make(map[int]bool, v)
	maxFrontierSize := 0

	for i := 0; i < e; i++ {
		for _, x := range enter[i] {
			var s int
			if n := len(free); n > 0 {
				s, free = free[n-1], free[:n-1]
			} else {
				s, nextSlot = nextSlot, nextSlot+1
			}
			slot[x] = s
			active[x] = true
		}

		snapshot := make([]int, 0, len(active))
		for x := range active {
			snapshot = append(snapshot, x)
		}
		sort.Ints(snapshot)
		frontier[i] = snapshot
		if len(snapshot) > maxFrontierSize {
			maxFrontierSize = len(snapshot)
		}

		for _, x := range leave[i] {
			free = append(free, slot[x])
			delete(active, x)
		}
	}

	return &Manager{
		enter:           enter,
		leave:           leave,
		frontier:        frontier,
		slot:            slot,
		maxFrontierSize: maxFrontierSize,
		edgeCount:       e,
	}
}
