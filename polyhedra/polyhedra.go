package polyhedra

import (
	"fmt"

	"github.com/zdcount/zdcount/pgraph"
)

// Name enumerates the five Platonic solids.
type Name int

const (
	Tetrahedron  Name = iota // V=4,  E=6
	Cube                     // V=8,  E=12
	Octahedron               // V=6,  E=12
	Dodecahedron             // V=20, E=30
	Icosahedron              // V=12, E=30
)

func (n Name) String() string {
	switch n {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// edgeSets holds each solid's canonical shell edges, in their fixed order.
var edgeSets = map[Name][][2]int{
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	},
	// Bottom face 0-1-2-3-0, top face 4-5-6-7-4, verticals 0-4,1-5,2-6,3-7.
	Cube: {
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		{4, 5}, {4, 7}, {5, 6}, {6, 7},
	},
	// Poles {0,1}, equatorial ring {2,3,4,5}; each pole joins the whole ring,
	// equator joins in two opposite pairs to keep every vertex degree 4.
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	},
	// Top pentagon 0-4, bottom pentagon 5-9, middle 10-cycle 10-19, spokes
	// from even middle indices to the top ring and odd to the bottom ring.
	Dodecahedron: {
		{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4},
		{5, 6}, {5, 9}, {6, 7}, {7, 8}, {8, 9},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
		{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
		{0, 10}, {1, 12}, {2, 14}, {3, 16}, {4, 18},
		{5, 11}, {6, 13}, {7, 15}, {8, 17}, {9, 19},
	},
	// Top pole 0, top ring 1-5, bottom ring 6-10, bottom pole 11; each top
	// ring vertex i crosses to bottom ring vertices i and i+1 (mod 5).
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	},
}

// vertexCounts maps each solid to its shell vertex count.
var vertexCounts = map[Name]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// Graph builds the 1-skeleton of the given Platonic solid as a pgraph.Graph
// with edges in the canonical order listed above.
func Graph(name Name) (*pgraph.Graph, error) {
	edges, ok := edgeSets[name]
	if !ok {
		return nil, fmt.Errorf("polyhedra: unknown solid %q", name)
	}

	g := pgraph.New(edges)
	if want := vertexCounts[name]; g.VertexCount() != want {
		return nil, fmt.Errorf("polyhedra: %s: built %d vertices, want %d", name, g.VertexCount(), want)
	}

	return g, nil
}

// All returns every Platonic solid name, in enumeration order.
func All() []Name {
	return []Name{Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}
}
