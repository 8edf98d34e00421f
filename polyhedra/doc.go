// Package polyhedra provides canonical 1-skeleton graphs of the five
// Platonic solids, for use as fixtures wherever a convex regular-faced
// polyhedron graph is needed (tests, CLI examples, Burnside automorphism
// tables).
//
// Each solid's vertex count and edge list are a single source of truth.
// Edges keep the fixed order they are listed in, which becomes the ZDD
// edge order (edge i's two endpoints are fixed for the lifetime of a
// Graph); the lists are not sorted and do not always put the smaller
// endpoint first.
package polyhedra
