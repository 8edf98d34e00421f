package symmetry

// Orbits decomposes the edge permutation perm (length E, perm[j] = σ(j))
// into cycles. It returns, for every edge index, the orbit index it
// belongs to (or -1 for a trivial fixed-point orbit), and the
// representative edge (minimum index) of every non-trivial orbit, in
// ascending representative order.
func Orbits(perm []int) (orbitOf []int, representatives []int) {
	e := len(perm)
	orbitOf = make([]int, e)
	for i := range orbitOf {
		orbitOf[i] = -2 // unvisited
	}

	var cycles [][]int
	for i := 0; i < e; i++ {
		if orbitOf[i] != -2 {
			continue
		}
		var cycle []int
		for j := i; orbitOf[j] == -2; j = perm[j] {
			orbitOf[j] = -3 // visiting marker, replaced below
			cycle = append(cycle, j)
		}
		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		} else {
			orbitOf[cycle[0]] = -1
		}
	}

	for idx, cycle := range cycles {
		for _, e := range cycle {
			orbitOf[e] = idx
		}
	}

	representatives = make([]int, len(cycles))
	for idx, cycle := range cycles {
		min := cycle[0]
		for _, e := range cycle[1:] {
			if e < min {
				min = e
			}
		}
		representatives[idx] = min
	}

	return orbitOf, representatives
}
