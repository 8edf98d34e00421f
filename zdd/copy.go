package zdd

// Copy returns a structural clone of d sharing no mutable state with it.
// Since Diagram's only mutable-looking field is the levels map of
// value-typed nodes, a per-level slice copy is sufficient — there is no
// deeper structure to walk.
//
// Complexity: O(total node count).
func Copy(d *Diagram) *Diagram {
	newLevels := make(map[int][]node, len(d.levels))
	for lvl, nodes := range d.levels {
		cloned := make([]node, len(nodes))
		copy(cloned, nodes)
		newLevels[lvl] = cloned
	}

	return &Diagram{levels: newLevels, root: d.root}
}
