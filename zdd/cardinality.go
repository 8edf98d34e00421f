package zdd

import (
	"fmt"

	"github.com/zdcount/zdcount/decimal"
)

// Cardinality counts d's accepted paths as a decimal string, via a
// bottom-up pass: the reject terminal counts 0, the accept terminal
// counts 1, and every node counts count(lo) + count(hi).
//
// Complexity: O(total node count) decimal additions, each O(digits).
func Cardinality(d *Diagram) (string, error) {
	counts := map[ref]string{
		rejectRef():  decimal.Zero,
		acceptRef():  "1",
	}

	for _, lvl := range ascendingLevels(d.levels) {
		for idx, n := range d.levels[lvl] {
			loCount, ok := counts[n.lo]
			if !ok {
				return "", fmt.Errorf("zdd: cardinality: level %d idx %d lo ref %v: %w", lvl, idx, n.lo, ErrMissingChildCount)
			}
			hiCount, ok := counts[n.hi]
			if !ok {
				return "", fmt.Errorf("zdd: cardinality: level %d idx %d hi ref %v: %w", lvl, idx, n.hi, ErrMissingChildCount)
			}

			sum, err := decimal.Add(loCount, hiCount)
			if err != nil {
				return "", fmt.Errorf("zdd: cardinality: level %d idx %d: %w", lvl, idx, err)
			}
			counts[ref{level: lvl, idx: idx}] = sum
		}
	}

	rootCount, ok := counts[d.root]
	if !ok {
		return "", fmt.Errorf("zdd: cardinality: root %v: %w", d.root, ErrMissingChildCount)
	}

	return rootCount, nil
}
