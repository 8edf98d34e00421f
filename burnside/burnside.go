package burnside

import (
	"fmt"

	"github.com/zdcount/zdcount/decimal"
	"github.com/zdcount/zdcount/symmetry"
	"github.com/zdcount/zdcount/zdd"
)

// Result is the aggregator's output: the per-automorphism invariant
// counts (index-aligned with the caller's permutation list), their
// decimal sum, and the Burnside quotient.
type Result struct {
	InvariantCounts []string
	Sum             string
	Quotient        string
}

// Aggregate runs the Burnside procedure of spec §4.7 over tree (already
// reduced) for e total edges, groupOrder = |Aut(Γ)|, perms the ordered
// edge permutations (identity must be among them), and optional
// zeroFlags (nil, or one bool per perms entry; true skips the ZDD pass
// and records 0).
//
// If the sum is not evenly divisible by groupOrder, Aggregate still
// returns the floor quotient alongside ErrNotDivisible — this is a
// reported inconsistency, not a fatal error; callers should log and
// continue per spec §7 item 4.
func Aggregate(tree *zdd.Diagram, e int, groupOrder int, perms [][]int, zeroFlags []bool) (Result, error) {
	baseCount, err := zdd.Cardinality(tree)
	if err != nil {
		return Result{}, fmt.Errorf("burnside: base cardinality: %w", err)
	}

	counts := make([]string, len(perms))
	sum := decimal.Zero

	for k, perm := range perms {
		var count string

		switch {
		case zeroFlags != nil && zeroFlags[k]:
			count = decimal.Zero
		case isIdentity(perm):
			count = baseCount
		default:
			symSpec, serr := symmetry.New(e, perm)
			if serr != nil {
				return Result{}, fmt.Errorf("burnside: automorphism %d: %w", k, serr)
			}

			copied := zdd.Copy(tree)
			fixed, serr := zdd.Subset(copied, symSpec)
			if serr != nil {
				return Result{}, fmt.Errorf("burnside: automorphism %d: %w", k, serr)
			}
			fixed = zdd.Reduce(fixed)

			count, serr = zdd.Cardinality(fixed)
			if serr != nil {
				return Result{}, fmt.Errorf("burnside: automorphism %d: %w", k, serr)
			}
		}

		counts[k] = count
		sum, err = decimal.Add(sum, count)
		if err != nil {
			return Result{}, fmt.Errorf("burnside: accumulating sum: %w", err)
		}
	}

	quotient, remainder, err := decimal.Divide(sum, groupOrder)
	if err != nil {
		return Result{}, fmt.Errorf("burnside: %w", err)
	}

	result := Result{InvariantCounts: counts, Sum: sum, Quotient: quotient}
	if remainder != 0 {
		return result, ErrNotDivisible
	}

	return result, nil
}

func isIdentity(perm []int) bool {
	for j, target := range perm {
		if target != j {
			return false
		}
	}

	return true
}
