// SPDX-License-Identifier: MIT
// File: api.go
// Role: Whole-graph constructors from vertex and edge lists.

package core

import "fmt"

// FromEdges builds a graph from an explicit vertex list and edge list.
//
// Malformed input is rejected rather than repaired: an edge naming a vertex
// outside vertices returns ErrVertexNotFound, a self-loop ErrLoopNotAllowed.
// Duplicate vertices or edges collapse silently.
func FromEdges(vertices []string, edges []Edge) (*Graph, error) {
	g := NewGraph()
	for _, id := range vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}

	return g, nil
}

// MustFromEdges is FromEdges that panics on error. Intended for fixtures.
func MustFromEdges(vertices []string, edges []Edge) *Graph {
	g, err := FromEdges(vertices, edges)
	if err != nil {
		panic(err)
	}

	return g
}

// FromPairs builds a graph whose vertex set is exactly the endpoints of
// pairs, e.g. FromPairs("a","b", "b","c"). An odd argument count is an error.
func FromPairs(ends ...string) (*Graph, error) {
	if len(ends)%2 != 0 {
		return nil, fmt.Errorf("FromPairs: odd number of endpoints (%d)", len(ends))
	}
	g := NewGraph()
	for _, id := range ends {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("FromPairs: %w", err)
		}
	}
	for i := 0; i < len(ends); i += 2 {
		if err := g.AddEdge(ends[i], ends[i+1]); err != nil {
			return nil, fmt.Errorf("FromPairs: %w", err)
		}
	}

	return g, nil
}
