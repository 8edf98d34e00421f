package symmetry

import (
	"fmt"

	"github.com/zdcount/zdcount/bitmask"
	"github.com/zdcount/zdcount/zdd"
)

type maskState struct {
	m bitmask.Mask
}

func (s maskState) Key() string { return s.m.String() }

// Spec is the SymmetryFilter zdd.Spec for one automorphism (edge
// permutation) over a graph of e total edges.
type Spec struct {
	e        int
	factory  bitmask.Factory
	orbitOf  []int // orbitOf[i]: non-trivial orbit index of edge i, or -1
	isRep    []bool
	rootMask bitmask.Mask
}

// New builds the Spec for the automorphism whose edge permutation is
// perm (length e, perm[j] = σ(j)).
func New(e int, perm []int) (Spec, error) {
	if len(perm) != e {
		return Spec{}, fmt.Errorf("symmetry: permutation length %d != %d edges", len(perm), e)
	}

	orbitOf, reps := Orbits(perm)

	factory, err := bitmask.NewFactory(maxInt(len(reps), 1))
	if err != nil {
		return Spec{}, fmt.Errorf("symmetry: %w", err)
	}

	isRep := make([]bool, e)
	for _, r := range reps {
		isRep[r] = true
	}

	return Spec{
		e:        e,
		factory:  factory,
		orbitOf:  orbitOf,
		isRep:    isRep,
		rootMask: factory.Zero(),
	}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// Root returns the zero orbit-commitment mask and level e.
func (s Spec) Root() (zdd.State, int) {
	return maskState{m: s.rootMask}, s.e
}

// Child implements the orbit-commitment transition of spec §4.6.
func (s Spec) Child(state zdd.State, level int, value int) (zdd.State, int, zdd.Outcome) {
	i := s.e - level
	o := s.orbitOf[i]

	cur := state.(maskState).m

	if o < 0 {
		// Trivial orbit: no constraint.
	} else {
		bit := cur.Bit(o)
		if s.isRep[i] {
			if value == 1 {
				next := cur.Clone()
				next.OrAssign(bit)
				cur = next
			}
		} else {
			included := !bit.And(cur).IsZero()
			if included && value == 0 {
				return nil, 0, zdd.Reject
			}
			if !included && value == 1 {
				return nil, 0, zdd.Reject
			}
		}
	}

	if level == 1 {
		return nil, 0, zdd.Accept
	}

	return maskState{m: cur}, level - 1, zdd.Continue
}
