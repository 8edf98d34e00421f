package zdd

// productState pairs two component specs' states so Product can thread
// them through Build as a single combined Spec.
type productState struct {
	a, b State
}

func (s productState) Key() string {
	ka, _ := keyOf(s.a)
	kb, _ := keyOf(s.b)

	return ka + "|" + kb
}

// productSpec is the AND-composition of two Specs sharing the same edge
// count: it accepts exactly the paths both a and b accept, rejecting as
// soon as either does. Building productSpec directly (rather than
// building a's full diagram and then Subset-ing against b) never
// materializes a's unrestricted diagram — the point of partition.BuildPartition's
// use of this against EdgeRestrictor.
type productSpec struct {
	a, b Spec
}

// Product returns the Spec whose language is the intersection of a's and
// b's languages. a and b must report the same root level.
func Product(a, b Spec) Spec {
	return productSpec{a: a, b: b}
}

func (p productSpec) Root() (State, int) {
	ra, la := p.a.Root()
	rb, lb := p.b.Root()

	return productState{a: ra, b: rb}, maxLevel(la, lb)
}

func maxLevel(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func (p productSpec) Child(state State, level int, value int) (State, int, Outcome) {
	ps := state.(productState)

	na, nla, oa := p.a.Child(ps.a, level, value)
	nb, _, ob := p.b.Child(ps.b, level, value)

	if oa == Reject || ob == Reject {
		return nil, 0, Reject
	}
	if oa == Accept && ob == Accept {
		return nil, 0, Accept
	}

	// Both Specs share the same edge count, so they Continue and report
	// the same next level in lockstep; Build's own level bookkeeping
	// surfaces any contract violation as an error at the call site.
	return productState{a: na, b: nb}, nla, Continue
}
