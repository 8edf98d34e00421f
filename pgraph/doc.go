// Package pgraph represents the 1-skeleton graph Γ of a convex
// regular-faced polyhedron as a fixed, edge-ordered multigraph.
//
// Unlike lvlath/core's mutable, string-keyed Graph, pgraph.Graph is
// immutable after load: vertices are the dense range 0..V-1, and edges
// keep the exact order they were read in, because that order fixes the
// ZDD level assignment used throughout this module (edge k sits at ZDD
// level E-k; spec.md §3).
//
// Parallel edges are permitted and distinguished by index; edge order is
// caller-defined (normally chosen upstream by a pathwidth-minimizing
// relabeling pass, which is out of scope here — pgraph only consumes the
// resulting edge list).
package pgraph
