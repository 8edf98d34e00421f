package partition

import (
	"fmt"

	"github.com/zdcount/zdcount/decimal"
	"github.com/zdcount/zdcount/pgraph"
	"github.com/zdcount/zdcount/spantree"
	"github.com/zdcount/zdcount/zdd"
)

// BuildPartition builds the reduced spanning-tree diagram restricted to
// partition p (0 <= p < 2^k): paths whose first k edge decisions match
// p's bit pattern. Building the product Spec directly, rather than
// building the unrestricted spanning-tree diagram and subsetting
// afterward, keeps peak memory to roughly 1/2^k of the unpartitioned
// build.
func BuildPartition(g *pgraph.Graph, k int, p int) (*zdd.Diagram, error) {
	e := g.EdgeCount()
	combined := zdd.Product(spantree.New(g), NewEdgeRestrictor(e, k, p))

	d, err := zdd.Build(combined)
	if err != nil {
		return nil, fmt.Errorf("partition: build partition %d: %w", p, err)
	}

	return zdd.Reduce(d), nil
}

// SumCardinalities builds every partition 0..2^k-1 and returns the
// decimal sum of their spanning tree counts, equal to the unpartitioned
// count since the partitions are disjoint and exhaustive.
func SumCardinalities(g *pgraph.Graph, k int) (string, error) {
	sum := decimal.Zero

	for p := 0; p < (1 << uint(k)); p++ {
		d, err := BuildPartition(g, k, p)
		if err != nil {
			return "", err
		}

		count, err := zdd.Cardinality(d)
		if err != nil {
			return "", fmt.Errorf("partition: cardinality partition %d: %w", p, err)
		}

		sum, err = decimal.Add(sum, count)
		if err != nil {
			return "", fmt.Errorf("partition: accumulating sum: %w", err)
		}
	}

	return sum, nil
}
