// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle and queries.
// Determinism:
//   - Edges() is sorted by (From, To) with From < To inside each edge.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u, v}.
//
// Both endpoints must already be vertices: an edge never introduces a vertex,
// which keeps the "every endpoint is in V" invariant checkable at the call site.
// Adding an existing edge is a no-op.
//
// Errors:
//   - ErrEmptyVertexID if u or v is empty.
//   - ErrLoopNotAllowed if u == v.
//   - ErrVertexNotFound if either endpoint is absent.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, ErrLoopNotAllowed)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[u]; !ok {
		return fmt.Errorf("AddEdge(%q,%q): endpoint %q: %w", u, v, u, ErrVertexNotFound)
	}
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("AddEdge(%q,%q): endpoint %q: %w", u, v, v, ErrVertexNotFound)
	}
	g.addEdgeLocked(u, v)

	return nil
}

// addEdgeLocked mirrors {u,v} into adj. Caller holds g.mu and has validated u, v.
func (g *Graph) addEdgeLocked(u, v string) {
	if _, ok := g.adj[u][v]; ok {
		return
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.size++
}

// RemoveEdge deletes the edge {u, v}.
//
// Errors:
//   - ErrEdgeNotFound if the edge is absent (including absent endpoints).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%q,%q): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.size--

	return nil
}

// HasEdge reports whether {u, v} is an edge.
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]

	return ok
}

// Edges returns every edge once, in canonical orientation, sorted.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.size)
	for u, nbs := range g.adj {
		for v := range nbs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// Size returns |E|.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}
