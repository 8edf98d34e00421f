package zdd

import "fmt"

// Build performs a top-down expansion of spec into an unreduced Diagram,
// merging equivalent states within each level via their Keyer key — the
// "per-level state hashing" of spec.md §4.4. The result already has no
// duplicate states within a level, but may still contain nodes whose
// hi-edge targets the reject terminal; call Reduce to zero-suppress
// those and obtain a canonical Diagram.
//
// Complexity: O(sum over levels of distinct states at that level), each
// expanded via two Child calls.
func Build(spec Spec) (*Diagram, error) {
	rootState, rootLevel := spec.Root()

	if rootLevel <= 0 {
		// Degenerate Spec whose language is decided with zero edges.
		return &Diagram{levels: map[int][]node{}, root: rejectRef()}, nil
	}

	rootKey, err := keyOf(rootState)
	if err != nil {
		return nil, err
	}

	levels := make(map[int][]node)
	curLevel := rootLevel
	curOrder := []State{rootState}
	_ = rootKey // root key only needed for cross-checking uniqueness, not stored

	for curLevel >= 1 {
		nextIndex := make(map[string]int)
		var nextOrder []State
		levelNodes := make([]node, len(curOrder))
		nextLevel := curLevel - 1

		for idx, state := range curOrder {
			var branch [2]ref
			for _, value := range [2]int{0, 1} {
				nextState, reportedLevel, outcome := spec.Child(state, curLevel, value)
				switch outcome {
				case Reject:
					branch[value] = rejectRef()
				case Accept:
					branch[value] = acceptRef()
				case Continue:
					if reportedLevel != nextLevel {
						return nil, fmt.Errorf("zdd: build: level %d value %d: spec returned level %d, want %d", curLevel, value, reportedLevel, nextLevel)
					}
					key, kerr := keyOf(nextState)
					if kerr != nil {
						return nil, kerr
					}
					id, ok := nextIndex[key]
					if !ok {
						id = len(nextOrder)
						nextIndex[key] = id
						nextOrder = append(nextOrder, nextState)
					}
					branch[value] = ref{level: nextLevel, idx: id}
				default:
					return nil, fmt.Errorf("zdd: build: unknown outcome %d", outcome)
				}
			}
			levelNodes[idx] = node{lo: branch[0], hi: branch[1]}
		}

		levels[curLevel] = levelNodes
		curOrder = nextOrder
		curLevel = nextLevel
	}

	return &Diagram{levels: levels, root: ref{level: rootLevel, idx: 0}}, nil
}

func keyOf(s State) (string, error) {
	k, ok := s.(Keyer)
	if !ok {
		return "", ErrNotKeyer
	}

	return k.Key(), nil
}
