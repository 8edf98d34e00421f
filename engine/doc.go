// Package engine orchestrates the end-to-end count: build the spanning
// tree ZDD (phase 4), optionally chain-intersect it against one
// unfold.Spec per MOPE (phase 5), optionally run the burnside aggregator
// over an automorphism group (phase 6), and optionally do all of the
// above per memory partition instead of once.
//
// Scheduling is single-threaded and synchronous throughout, matching the
// core's resource model: no phase suspends or runs concurrently with
// another, and every intermediate ZDD is scoped to Run's call frame.
// Progress is reported through a caller-supplied ProgressFunc sink
// rather than any package-level state, so Run has no observable side
// channel besides its return value and the sink calls.
package engine
