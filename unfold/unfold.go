package unfold

import (
	"fmt"

	"github.com/zdcount/zdcount/bitmask"
	"github.com/zdcount/zdcount/zdd"
)

// maskState wraps a bitmask.Mask so it satisfies zdd.Keyer via the
// mask's own canonical String form.
type maskState struct {
	m bitmask.Mask
}

func (s maskState) Key() string { return s.m.String() }

// Spec is the UnfoldingFilter zdd.Spec for one MOPE edge set, over a
// graph of e total edges.
type Spec struct {
	e        int
	factory  bitmask.Factory
	rootMask bitmask.Mask
}

// New builds the Spec for mope (edge indices, 0-based) against a graph
// of e total edges.
func New(e int, mope []int) (Spec, error) {
	if len(mope) == 0 {
		return Spec{}, ErrEmptyMOPE
	}

	factory, err := bitmask.NewFactory(e)
	if err != nil {
		return Spec{}, fmt.Errorf("unfold: %w", err)
	}

	root := factory.Zero()
	for _, i := range mope {
		root.OrAssign(root.Bit(i))
	}

	return Spec{e: e, factory: factory, rootMask: root}, nil
}

// Root returns the initial mask (every MOPE edge's bit set) and level e.
func (s Spec) Root() (zdd.State, int) {
	return maskState{m: s.rootMask}, s.e
}

// Child implements the (deliberately inverted) prune transition of
// spec §4.5.
func (s Spec) Child(state zdd.State, level int, value int) (zdd.State, int, zdd.Outcome) {
	i := s.e - level
	cur := state.(maskState).m.Clone()

	if value == 0 {
		bit := cur.Bit(i)
		if !bit.And(cur).IsZero() {
			cur.AndAssign(bit.Not())
			if cur.IsZero() {
				return nil, 0, zdd.Reject
			}
		}
	} else {
		bit := cur.Bit(i)
		if !bit.And(cur).IsZero() {
			cur = s.factory.Zero()
		}
	}

	if level == 1 {
		return nil, 0, zdd.Accept
	}

	return maskState{m: cur}, level - 1, zdd.Continue
}
