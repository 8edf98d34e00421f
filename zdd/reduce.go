package zdd

import "sort"

// Reduce returns a new Diagram equivalent to d but canonical: no two
// distinct nodes at the same level share an identical (lo, hi) pair, and
// every node whose hi-edge targets the reject terminal is zero-suppressed
// (its incoming references are redirected straight to its lo child,
// possibly skipping several levels). Reduction never changes the
// accepted-path language, hence never changes Cardinality.
//
// Complexity: O(total node count) time and space.
func Reduce(d *Diagram) *Diagram {
	memo := make(map[ref]ref)
	memo[rejectRef()] = rejectRef()
	memo[acceptRef()] = acceptRef()

	newLevels := make(map[int][]node, len(d.levels))

	for _, lvl := range ascendingLevels(d.levels) {
		oldNodes := d.levels[lvl]
		dedup := make(map[node]int, len(oldNodes))
		var newNodes []node

		for idx, n := range oldNodes {
			lo := memo[n.lo]
			hi := memo[n.hi]

			if hi == rejectRef() {
				// Zero-suppression: this node contributes nothing beyond
				// its lo child, so redirect straight through it.
				memo[ref{level: lvl, idx: idx}] = lo
				continue
			}

			key := node{lo: lo, hi: hi}
			newIdx, ok := dedup[key]
			if !ok {
				newIdx = len(newNodes)
				dedup[key] = newIdx
				newNodes = append(newNodes, key)
			}
			memo[ref{level: lvl, idx: idx}] = ref{level: lvl, idx: newIdx}
		}

		if len(newNodes) > 0 {
			newLevels[lvl] = newNodes
		}
	}

	return &Diagram{levels: newLevels, root: memo[d.root]}
}

func ascendingLevels(levels map[int][]node) []int {
	out := make([]int, 0, len(levels))
	for lvl := range levels {
		out = append(out, lvl)
	}
	sort.Ints(out)

	return out
}
