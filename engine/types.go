package engine

// ProgressFunc receives advisory progress marks ("MOPE 2/5",
// "partition 3/8", "partition-burnside 3/8"); it is never required to
// synchronize or block. Run calls the configured sink directly: the
// default is a no-op and WithProgress ignores a nil func, so the sink is
// never nil.
type ProgressFunc func(stage string, current, total int)

// Phase4Result mirrors the result (JSON) phase4 object.
type Phase4Result struct {
	BuildTimeMs       int64  `json:"build_time_ms"`
	SpanningTreeCount string `json:"spanning_tree_count"`
}

// Phase5Result mirrors the result (JSON) phase5 object.
type Phase5Result struct {
	FilterApplied       bool   `json:"filter_applied"`
	NumMopes            int    `json:"num_mopes,omitempty"`
	SubsetTimeMs        int64  `json:"subset_time_ms,omitempty"`
	NonOverlappingCount string `json:"non_overlapping_count,omitempty"`
}

// Phase6Result mirrors the result (JSON) phase6 object.
type Phase6Result struct {
	BurnsideApplied    bool     `json:"burnside_applied"`
	GroupOrder         int      `json:"group_order,omitempty"`
	BurnsideTimeMs     int64    `json:"burnside_time_ms,omitempty"`
	BurnsideSum        string   `json:"burnside_sum,omitempty"`
	NonisomorphicCount string   `json:"nonisomorphic_count,omitempty"`
	InvariantCounts    []string `json:"invariant_counts,omitempty"`
}

// Result is the full Result (JSON) artifact of spec §6.
type Result struct {
	InputFile  string        `json:"input_file"`
	Vertices   int           `json:"vertices"`
	Edges      int           `json:"edges"`
	Phase4     Phase4Result  `json:"phase4"`
	Phase5     *Phase5Result `json:"phase5,omitempty"`
	Phase6     *Phase6Result `json:"phase6,omitempty"`
	SplitDepth *int          `json:"split_depth,omitempty"`
}

// Config holds Run's optional knobs, built via the functional Option
// pattern so new knobs never break existing callers.
type Config struct {
	mopes        [][]int
	groupOrder   int
	permutations [][]int
	zeroFlags    []bool
	splitDepth   int // 0 means "no partitioning"
	progress     ProgressFunc
}

// DefaultConfig returns the zero-knob configuration: no MOPE filter, no
// symmetry filter, no partitioning, a no-op progress sink.
func DefaultConfig() Config {
	return Config{progress: func(string, int, int) {}}
}

// Option mutates a Config during Run's construction.
type Option func(*Config)

// WithMOPEs enables phase 5 with the given MOPE edge sets.
func WithMOPEs(mopes [][]int) Option {
	return func(c *Config) { c.mopes = mopes }
}

// WithAutomorphisms enables phase 6 with the given group order, edge
// permutations (identity must be included), and optional zero flags.
func WithAutomorphisms(groupOrder int, permutations [][]int, zeroFlags []bool) Option {
	return func(c *Config) {
		c.groupOrder = groupOrder
		c.permutations = permutations
		c.zeroFlags = zeroFlags
	}
}

// WithSplitDepth enables the memory-partitioned driver at depth k
// (0 <= k <= 30 and k < E is validated by the caller, per spec §6).
func WithSplitDepth(k int) Option {
	return func(c *Config) { c.splitDepth = k }
}

// WithProgress installs a progress sink; a nil func is ignored.
func WithProgress(p ProgressFunc) Option {
	return func(c *Config) {
		if p != nil {
			c.progress = p
		}
	}
}
