package partition

import "github.com/zdcount/zdcount/zdd"

// restrictorState is the trivial constant state EdgeRestrictor threads
// through — the restriction only depends on (level, value), never on
// accumulated history, so every live path shares the same state.
type restrictorState struct{}

func (restrictorState) Key() string { return "." }

// EdgeRestrictor is a zdd.Spec accepting exactly the paths whose first k
// edge decisions match the bit pattern p (bit j of p is edge j's
// required value, for j in [0, k)); edges at index >= k are unconstrained.
type EdgeRestrictor struct {
	e, k, p int
}

// NewEdgeRestrictor builds EdgeRestrictor(e, k, p). p must fit in k bits;
// callers iterate p over [0, 2^k) to cover every partition.
func NewEdgeRestrictor(e, k, p int) EdgeRestrictor {
	return EdgeRestrictor{e: e, k: k, p: p}
}

// Root returns the constant state and level e.
func (r EdgeRestrictor) Root() (zdd.State, int) {
	return restrictorState{}, r.e
}

// Child accepts unconditionally once past the first k edges; within the
// first k, value must match the corresponding bit of p.
func (r EdgeRestrictor) Child(_ zdd.State, level int, value int) (zdd.State, int, zdd.Outcome) {
	i := r.e - level
	if i < r.k {
		want := (r.p >> uint(i)) & 1
		if value != want {
			return nil, 0, zdd.Reject
		}
	}

	if level == 1 {
		return nil, 0, zdd.Accept
	}

	return restrictorState{}, level - 1, zdd.Continue
}
