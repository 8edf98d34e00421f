package zdd

import "fmt"

// Subset intersects t's accepted-path language with spec's language,
// returning a new (unreduced) Diagram whose accepted paths are exactly
// those accepted by both. It walks t and spec in lockstep via a parallel
// top-down descent keyed by (t-ref, spec-state) — spec.md §4.4's
// "parallel top-down descent keyed by (T-node, spec-state)".
//
// t may already be reduced, so a composite's t-side ref can sit below
// the current level (zero-suppression skipped intervening levels); such
// a ref implicitly means "every skipped edge is forced unselected",
// which childOf below encodes directly: selecting an edge whose level
// was skipped always rejects, and not selecting it leaves the ref
// unchanged.
//
// Complexity: O(|t| * distinct spec states reachable per t-node).
func Subset(t *Diagram, spec Spec) (*Diagram, error) {
	specRoot, specLevel := spec.Root()
	if t.root.level != specLevel {
		return nil, fmt.Errorf("zdd: subset: diagram root level %d, spec root level %d: %w", t.root.level, specLevel, ErrLevelMismatch)
	}

	if specLevel <= 0 {
		return &Diagram{levels: map[int][]node{}, root: rejectRef()}, nil
	}

	type composite struct {
		tref ref
		s    State
	}

	compositeKey := func(c composite) (string, error) {
		sk, err := keyOf(c.s)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%d:%d|%s", c.tref.level, c.tref.idx, sk), nil
	}

	rootComposite := composite{tref: t.root, s: specRoot}

	levels := make(map[int][]node)
	curLevel := specLevel
	curOrder := []composite{rootComposite}

	for curLevel >= 1 {
		nextIndex := make(map[string]int)
		var nextOrder []composite
		levelNodes := make([]node, len(curOrder))
		nextLevel := curLevel - 1

		for idx, c := range curOrder {
			var branch [2]ref
			for _, value := range [2]int{0, 1} {
				tChild := childOf(t, c.tref, curLevel, value)
				sNext, sLevel, outcome := spec.Child(c.s, curLevel, value)

				switch {
				case outcome == Reject || tChild == rejectRef():
					branch[value] = rejectRef()
				case outcome == Accept:
					// spec decides at the bottom; combined verdict is
					// exactly t's own terminal at this point.
					branch[value] = tChild
				default:
					if sLevel != nextLevel {
						return nil, fmt.Errorf("zdd: subset: level %d value %d: spec returned level %d, want %d", curLevel, value, sLevel, nextLevel)
					}
					nc := composite{tref: tChild, s: sNext}
					key, err := compositeKey(nc)
					if err != nil {
						return nil, err
					}
					id, ok := nextIndex[key]
					if !ok {
						id = len(nextOrder)
						nextIndex[key] = id
						nextOrder = append(nextOrder, nc)
					}
					branch[value] = ref{level: nextLevel, idx: id}
				}
			}
			levelNodes[idx] = node{lo: branch[0], hi: branch[1]}
		}

		levels[curLevel] = levelNodes
		curOrder = nextOrder
		curLevel = nextLevel
	}

	return &Diagram{levels: levels, root: ref{level: specLevel, idx: 0}}, nil
}

// childOf returns t's child ref for (tref, level, value): tref's real
// node if tref sits exactly at level, or the implicit "skipped level"
// rule otherwise (value 1 always rejects; value 0 leaves tref
// unchanged), which also correctly covers tref already being a terminal.
func childOf(t *Diagram, tref ref, level int, value int) ref {
	if tref.level == level {
		n := t.levels[level][tref.idx]
		if value == 0 {
			return n.lo
		}

		return n.hi
	}

	if value == 1 {
		return rejectRef()
	}

	return tref
}
