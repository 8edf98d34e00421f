package spantree

import (
	"github.com/zdcount/zdcount/frontier"
	"github.com/zdcount/zdcount/pgraph"
	"github.com/zdcount/zdcount/zdd"
)

// Spec is the zdd.Spec whose accepted paths are the spanning trees of g,
// computed against the frontier precomputed by fm. Both are read-only
// after construction.
type Spec struct {
	g  *pgraph.Graph
	fm *frontier.Manager
}

// New derives a SpanningTree Spec from g, computing its frontier manager.
func New(g *pgraph.Graph) Spec {
	return Spec{g: g, fm: frontier.New(g)}
}

// Root returns an all-uninitialized FrontierData and level E.
func (s Spec) Root() (zdd.State, int) {
	return newFrontierData(s.fm.MaxFrontierSize()), s.fm.EdgeCount()
}

// Child implements the Step A-D transition of spec §4.3.
func (s Spec) Child(state zdd.State, level int, value int) (zdd.State, int, zdd.Outcome) {
	i := s.fm.EdgeCount() - level
	a, b := s.g.Endpoints(i)

	fd := state.(FrontierData).clone()

	// Step A: admit entering vertices as singleton components.
	for _, x := range s.fm.Enter(i) {
		fd.comp[s.fm.Slot(x)] = x
	}

	// Step B: selecting the edge merges a's and b's components, or
	// fails if they already coincide (would close a cycle).
	if value == 1 {
		slotA, slotB := s.fm.Slot(a), s.fm.Slot(b)
		ca, cb := fd.comp[slotA], fd.comp[slotB]
		if ca == cb {
			return nil, 0, zdd.Reject
		}

		cMin, cMax := ca, cb
		if cMin > cMax {
			cMin, cMax = cMax, cMin
		}
		for _, w := range s.fm.Frontier(i) {
			ws := s.fm.Slot(w)
			if fd.comp[ws] == cMin {
				fd.comp[ws] = cMax
			}
		}
	}

	// Step C: at the last edge, accept iff a and b now share a component.
	if level == 1 {
		if fd.comp[s.fm.Slot(a)] == fd.comp[s.fm.Slot(b)] {
			return nil, 0, zdd.Accept
		}

		return nil, 0, zdd.Reject
	}

	// Step D: retire leaving vertices in input order, each requiring a
	// witness that shares its component and is not itself already
	// retired this step — a vertex leaving later in the same step may
	// still serve as another's witness — otherwise the retiring vertex
	// could never join the spanning tree.
	leaving := s.fm.Leave(i)
	retiredThisStep := make(map[int]bool, len(leaving))

	for _, x := range leaving {
		xs := s.fm.Slot(x)
		cx := fd.comp[xs]
		witnessed := false
		for _, w := range s.fm.Frontier(i) {
			if w == x || retiredThisStep[w] {
				continue
			}
			if fd.comp[s.fm.Slot(w)] == cx {
				witnessed = true

				break
			}
		}
		if !witnessed {
			return nil, 0, zdd.Reject
		}
		fd.comp[xs] = retired
		retiredThisStep[x] = true
	}

	return fd, level - 1, zdd.Continue
}
