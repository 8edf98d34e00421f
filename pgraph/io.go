package pgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// New builds a Graph directly from an in-memory edge list, preserving
// order. Useful for tests and for composing a Graph without going
// through the text file format.
func New(edges [][2]int) *Graph {
	g := &Graph{edges: make([]Edge, len(edges))}
	maxVertex := -1
	for i, e := range edges {
		g.edges[i] = Edge{U: e[0], V: e[1], Index: i}
		if e[0] > maxVertex {
			maxVertex = e[0]
		}
		if e[1] > maxVertex {
			maxVertex = e[1]
		}
	}
	g.vertices = maxVertex + 1

	return g
}

// ReadGraph parses the plain-text Graph file format of spec.md §6: lines
// of "u v" separated by whitespace, one per edge, in ZDD edge order, no
// header. Blank lines are skipped. V is computed as 1 + max identifier
// seen.
//
// Complexity: O(E) time and space.
func ReadGraph(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	// Edge lines for very large polyhedra can exceed the default 64KiB
	// scanner buffer only in pathological cases; widen defensively.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var edges []Edge
	maxVertex := -1
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("pgraph: line %d: %w", lineNo, ErrMalformedLine)
		}

		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("pgraph: line %d: %w", lineNo, ErrMalformedLine)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("pgraph: line %d: %w", lineNo, ErrMalformedLine)
		}
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("pgraph: line %d: %w", lineNo, ErrNegativeVertex)
		}

		edges = append(edges, Edge{U: u, V: v, Index: len(edges)})
		if u > maxVertex {
			maxVertex = u
		}
		if v > maxVertex {
			maxVertex = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pgraph: reading graph file: %w", err)
	}
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}

	return &Graph{edges: edges, vertices: maxVertex + 1}, nil
}
