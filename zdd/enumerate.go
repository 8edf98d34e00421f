package zdd

// Enumerate walks every accepted path of d explicitly and returns each as
// the sorted list of selected edge indices (0-based, edge index =
// e - level at the point that edge's decision was made). This exists
// purely as a verification tool for property P7 (spec.md §8) — normal
// execution always uses Cardinality/Subset instead, never materializing
// individual paths — so it is only safe to call on diagrams small enough
// to enumerate in full.
//
// e must be the original edge count the diagram was built over (the
// level its root would have had before any zero-suppression skipped it).
func Enumerate(d *Diagram, e int) [][]int {
	var out [][]int
	var walk func(r ref, level int, selected []int)
	walk = func(r ref, level int, selected []int) {
		if level == 0 {
			if r.isAccept() {
				path := make([]int, len(selected))
				copy(path, selected)
				out = append(out, path)
			}

			return
		}

		edgeIndex := e - level

		// value 0: not selected
		lo := childOf(d, r, level, 0)
		walk(lo, level-1, selected)

		// value 1: selected
		hi := childOf(d, r, level, 1)
		walk(hi, level-1, append(selected, edgeIndex))
	}

	walk(d.root, e, nil)

	return out
}
