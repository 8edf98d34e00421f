package engine

import (
	"fmt"
	"time"

	"github.com/zdcount/zdcount/burnside"
	"github.com/zdcount/zdcount/decimal"
	"github.com/zdcount/zdcount/partition"
	"github.com/zdcount/zdcount/pgraph"
	"github.com/zdcount/zdcount/spantree"
	"github.com/zdcount/zdcount/unfold"
	"github.com/zdcount/zdcount/zdd"
)

// Run drives the full pipeline over g and returns the Result artifact
// spec §6 describes: phase 4 always runs; phase 5 (the MOPE overlap
// filter) and phase 6 (Burnside) run only when their Option was
// supplied. Partitioning (WithSplitDepth) changes how phase 4/5/6 are
// computed internally; the only change to the Result shape is that
// SplitDepth is set.
func Run(g *pgraph.Graph, inputFile string, opts ...Option) (Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := g.EdgeCount()

	result := Result{
		InputFile: inputFile,
		Vertices:  g.VertexCount(),
		Edges:     e,
	}
	if cfg.splitDepth > 0 {
		d := cfg.splitDepth
		result.SplitDepth = &d
	}

	if cfg.splitDepth > 0 {
		return runPartitioned(g, cfg, result)
	}

	return runUnpartitioned(g, cfg, result)
}

func runUnpartitioned(g *pgraph.Graph, cfg Config, result Result) (Result, error) {
	start := time.Now()

	// A disconnected graph has zero spanning trees; skip the ZDD build
	// entirely rather than pay for a pass that is certain to empty out.
	if !g.IsConnected() {
		result.Phase4 = Phase4Result{
			BuildTimeMs:       time.Since(start).Milliseconds(),
			SpanningTreeCount: decimal.Zero,
		}
		if cfg.mopes != nil {
			result.Phase5 = &Phase5Result{FilterApplied: len(cfg.mopes) > 0, NumMopes: len(cfg.mopes), NonOverlappingCount: decimal.Zero}
		}
		if len(cfg.permutations) > 0 {
			if cfg.groupOrder <= 0 {
				return Result{}, ErrAutomorphismsWithoutGroupOrder
			}
			result.Phase6 = &Phase6Result{BurnsideApplied: true, GroupOrder: cfg.groupOrder, BurnsideSum: decimal.Zero, NonisomorphicCount: decimal.Zero}
		}

		return result, nil
	}

	tree, err := zdd.Build(spantree.New(g))
	if err != nil {
		return Result{}, fmt.Errorf("engine: phase4: %w", err)
	}
	tree = zdd.Reduce(tree)

	baseCount, err := zdd.Cardinality(tree)
	if err != nil {
		return Result{}, fmt.Errorf("engine: phase4: %w", err)
	}
	result.Phase4 = Phase4Result{
		BuildTimeMs:       time.Since(start).Milliseconds(),
		SpanningTreeCount: baseCount,
	}

	workingTree := tree
	var indivisible error

	if len(cfg.mopes) > 0 {
		start = time.Now()
		filtered, ferr := applyMOPEFilters(tree, g.EdgeCount(), cfg.mopes, cfg.progress)
		if ferr != nil {
			return Result{}, fmt.Errorf("engine: phase5: %w", ferr)
		}
		count, cerr := zdd.Cardinality(filtered)
		if cerr != nil {
			return Result{}, fmt.Errorf("engine: phase5: %w", cerr)
		}
		result.Phase5 = &Phase5Result{
			FilterApplied:       true,
			NumMopes:            len(cfg.mopes),
			SubsetTimeMs:        time.Since(start).Milliseconds(),
			NonOverlappingCount: count,
		}
		workingTree = filtered
	} else if cfg.mopes != nil {
		result.Phase5 = &Phase5Result{FilterApplied: false}
	}

	if len(cfg.permutations) > 0 {
		if cfg.groupOrder <= 0 {
			return Result{}, ErrAutomorphismsWithoutGroupOrder
		}
		start = time.Now()
		br, berr := burnside.Aggregate(workingTree, g.EdgeCount(), cfg.groupOrder, cfg.permutations, cfg.zeroFlags)
		if berr != nil && br.Sum == "" {
			return Result{}, fmt.Errorf("engine: phase6: %w", berr)
		}
		if berr != nil {
			indivisible = berr
		}
		result.Phase6 = &Phase6Result{
			BurnsideApplied:    true,
			GroupOrder:         cfg.groupOrder,
			BurnsideTimeMs:     time.Since(start).Milliseconds(),
			BurnsideSum:        br.Sum,
			NonisomorphicCount: br.Quotient,
			InvariantCounts:    br.InvariantCounts,
		}
	}

	if indivisible != nil {
		return result, indivisible
	}

	return result, nil
}

func applyMOPEFilters(tree *zdd.Diagram, e int, mopes [][]int, progress ProgressFunc) (*zdd.Diagram, error) {
	current := tree
	for i, m := range mopes {
		spec, err := unfold.New(e, m)
		if err != nil {
			return nil, fmt.Errorf("MOPE %d: %w", i, err)
		}
		filtered, err := zdd.Subset(current, spec)
		if err != nil {
			return nil, fmt.Errorf("MOPE %d: %w", i, err)
		}
		current = zdd.Reduce(filtered)
		progress("MOPE", i+1, len(mopes))
	}

	return current, nil
}

// runPartitioned replays phase 4/5/6 once per memory partition,
// accumulating the decimal-string sums, per spec §4.8.
func runPartitioned(g *pgraph.Graph, cfg Config, result Result) (Result, error) {
	k := cfg.splitDepth
	numPartitions := 1 << uint(k)

	start := time.Now()
	spanningSum := decimal.Zero
	var partitionTrees []*zdd.Diagram

	for p := 0; p < numPartitions; p++ {
		d, err := partition.BuildPartition(g, k, p)
		if err != nil {
			return Result{}, fmt.Errorf("engine: phase4: partition %d: %w", p, err)
		}
		count, err := zdd.Cardinality(d)
		if err != nil {
			return Result{}, fmt.Errorf("engine: phase4: partition %d: %w", p, err)
		}
		spanningSum, err = decimal.Add(spanningSum, count)
		if err != nil {
			return Result{}, fmt.Errorf("engine: phase4: %w", err)
		}
		partitionTrees = append(partitionTrees, d)
		cfg.progress("partition", p+1, numPartitions)
	}
	result.Phase4 = Phase4Result{
		BuildTimeMs:       time.Since(start).Milliseconds(),
		SpanningTreeCount: spanningSum,
	}

	workingTrees := partitionTrees

	if len(cfg.mopes) > 0 {
		start = time.Now()
		nonOverlapSum := decimal.Zero
		filteredTrees := make([]*zdd.Diagram, numPartitions)
		for p, d := range partitionTrees {
			filtered, err := applyMOPEFilters(d, g.EdgeCount(), cfg.mopes, func(string, int, int) {})
			if err != nil {
				return Result{}, fmt.Errorf("engine: phase5: partition %d: %w", p, err)
			}
			count, err := zdd.Cardinality(filtered)
			if err != nil {
				return Result{}, fmt.Errorf("engine: phase5: partition %d: %w", p, err)
			}
			nonOverlapSum, err = decimal.Add(nonOverlapSum, count)
			if err != nil {
				return Result{}, fmt.Errorf("engine: phase5: %w", err)
			}
			filteredTrees[p] = filtered
		}
		result.Phase5 = &Phase5Result{
			FilterApplied:       true,
			NumMopes:            len(cfg.mopes),
			SubsetTimeMs:        time.Since(start).Milliseconds(),
			NonOverlappingCount: nonOverlapSum,
		}
		workingTrees = filteredTrees
	} else if cfg.mopes != nil {
		result.Phase5 = &Phase5Result{FilterApplied: false}
	}

	if len(cfg.permutations) > 0 {
		if cfg.groupOrder <= 0 {
			return Result{}, ErrAutomorphismsWithoutGroupOrder
		}
		start = time.Now()

		invariantSums := make([]string, len(cfg.permutations))
		for i := range invariantSums {
			invariantSums[i] = decimal.Zero
		}

		var indivisible error
		for p, d := range workingTrees {
			br, err := burnside.Aggregate(d, g.EdgeCount(), cfg.groupOrder, cfg.permutations, cfg.zeroFlags)
			if err != nil && br.Sum == "" {
				return Result{}, fmt.Errorf("engine: phase6: partition %d: %w", p, err)
			}
			for i, c := range br.InvariantCounts {
				invariantSums[i], err = decimal.Add(invariantSums[i], c)
				if err != nil {
					return Result{}, fmt.Errorf("engine: phase6: %w", err)
				}
			}
			cfg.progress("partition-burnside", p+1, len(workingTrees))
		}

		burnsideSum := decimal.Zero
		var err error
		for _, c := range invariantSums {
			burnsideSum, err = decimal.Add(burnsideSum, c)
			if err != nil {
				return Result{}, fmt.Errorf("engine: phase6: %w", err)
			}
		}

		quotient, remainder, err := decimal.Divide(burnsideSum, cfg.groupOrder)
		if err != nil {
			return Result{}, fmt.Errorf("engine: phase6: %w", err)
		}
		if remainder != 0 {
			indivisible = burnside.ErrNotDivisible
		}

		result.Phase6 = &Phase6Result{
			BurnsideApplied:    true,
			GroupOrder:         cfg.groupOrder,
			BurnsideTimeMs:     time.Since(start).Milliseconds(),
			BurnsideSum:        burnsideSum,
			NonisomorphicCount: quotient,
			InvariantCounts:    invariantSums,
		}

		if indivisible != nil {
			return result, indivisible
		}
	}

	return result, nil
}
