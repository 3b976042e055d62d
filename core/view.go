// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating views: induced subgraphs, vertex deletion, relabelling.
// Determinism:
//   - Views keep vertex IDs unless the view is a relabelling; Canonical numbers
//     vertices in sorted order.
// Concurrency:
//   - Read lock on the source; result is a fresh graph instance.

package core

import (
	"fmt"
	"strconv"
)

// InducedSubgraph returns the subgraph induced by the vertices in keep.
// IDs in keep that are not vertices of g are ignored. The input is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := NewGraph()
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: id, Metadata: copyMetadata(v.Metadata)}
			out.adj[id] = make(map[string]struct{})
		}
	}
	for u := range out.vertices {
		for v := range g.adj[u] {
			if u < v && keep[v] {
				out.addEdgeLocked(u, v)
			}
		}
	}

	return out
}

// Without returns g minus the listed vertices and their incident edges.
// Unknown IDs are ignored.
func Without(g *Graph, ids ...string) *Graph {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	keep := make(map[string]bool)
	for _, id := range g.Vertices() {
		if !drop[id] {
			keep[id] = true
		}
	}

	return InducedSubgraph(g, keep)
}

// WithoutEdge returns a copy of g with the edge {u, v} removed.
//
// Errors:
//   - ErrEdgeNotFound if {u, v} is not an edge of g.
func WithoutEdge(g *Graph, u, v string) (*Graph, error) {
	out := g.Clone()
	if err := out.RemoveEdge(u, v); err != nil {
		return nil, fmt.Errorf("WithoutEdge: %w", err)
	}

	return out, nil
}

// OpenNeighborhood returns the subgraph induced by N(v); v itself is excluded.
//
// Errors:
//   - ErrVertexNotFound if v is absent.
func OpenNeighborhood(g *Graph, v string) (*Graph, error) {
	nbs, err := g.Neighbors(v)
	if err != nil {
		return nil, fmt.Errorf("OpenNeighborhood: %w", err)
	}

	return InducedSubgraph(g, toSet(nbs)), nil
}

// Relabel returns a copy of g whose vertex x is renamed to mapping[x].
// Metadata follows its vertex.
//
// Errors:
//   - ErrVertexNotFound if a vertex of g has no image in mapping.
//   - ErrEmptyVertexID if an image is empty.
//   - fmt error if two vertices share an image (the relabelling must be injective).
func Relabel(g *Graph, mapping map[string]string) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := NewGraph()
	for id, v := range g.vertices {
		img, ok := mapping[id]
		if !ok {
			return nil, fmt.Errorf("Relabel: vertex %q has no image: %w", id, ErrVertexNotFound)
		}
		if img == "" {
			return nil, fmt.Errorf("Relabel: vertex %q: %w", id, ErrEmptyVertexID)
		}
		if _, dup := out.vertices[img]; dup {
			return nil, fmt.Errorf("Relabel: image %q assigned twice", img)
		}
		out.vertices[img] = &Vertex{ID: img, Metadata: copyMetadata(v.Metadata)}
		out.adj[img] = make(map[string]struct{})
	}
	for u, nbs := range g.adj {
		for v := range nbs {
			if u < v {
				out.addEdgeLocked(mapping[u], mapping[v])
			}
		}
	}

	return out, nil
}

// Canonical renames the vertices of g to "0".."n-1" following the sorted
// order of their current IDs and returns the renamed graph with the
// old->new mapping. Iterated clique graphs use it to keep IDs short.
func Canonical(g *Graph) (*Graph, map[string]string) {
	ids := g.Vertices()
	mapping := make(map[string]string, len(ids))
	for i, id := range ids {
		mapping[id] = strconv.Itoa(i)
	}
	out, err := Relabel(g, mapping)
	if err != nil {
		// mapping is total and injective by construction
		panic(err)
	}

	return out, mapping
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return set
}
