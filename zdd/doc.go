// Package zdd implements a generic, frontier-friendly Zero-suppressed
// Decision Diagram engine: a top-down builder that consumes any
// recursive Spec, a bottom-up reducer, a parallel-descent subsetting
// operator, and a decimal-string cardinality count.
//
// A Spec describes a language of accepted edge-selection paths without
// ever materializing the diagram itself: Root returns the starting state
// and level (E, the edge count); Child(state, level, value) advances one
// edge decision (value 0 = not selected, 1 = selected) and reports
// either a new (state, level) to continue from, or a terminal verdict
// (Accept/Reject). spantree.Spec, unfold.Spec, symmetry.Spec, and
// partition.EdgeRestrictor all implement Spec; Build, Subset, and the
// memory-partitioned driver are oblivious to which one they're holding.
//
// States must additionally implement Keyer so Build/Subset can merge
// equivalent states into one node per level (spec.md §4.4's "per-level
// state hashing").
//
// Diagram nodes live in per-level arenas (levels[level][idx]), addressed
// by (level, idx) ref pairs rather than pointers — children are always a
// ref, never an owning pointer — so Copy is a cheap structural clone and
// there is no possibility of a reference cycle.
package zdd
