// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copies and structural equality.
// Concurrency:
//   - Read lock on the source; the copy is a fresh graph.

package core

// Clone returns a deep copy of vertices and adjacency.
// Metadata maps are copied one level deep.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := &Graph{
		vertices: make(map[string]*Vertex, len(g.vertices)),
		adj:      make(map[string]map[string]struct{}, len(g.adj)),
		size:     g.size,
	}
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id, Metadata: copyMetadata(v.Metadata)}
		nbs := make(map[string]struct{}, len(g.adj[id]))
		for nb := range g.adj[id] {
			nbs[nb] = struct{}{}
		}
		clone.adj[id] = nbs
	}

	return clone
}

// Equal reports whether a and b have the same vertex IDs and the same edges.
// Metadata is ignored. This is labelled equality, not isomorphism.
func Equal(a, b *Graph) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(a.vertices) != len(b.vertices) || a.size != b.size {
		return false
	}
	for u, nbs := range a.adj {
		other, ok := b.adj[u]
		if !ok || len(other) != len(nbs) {
			return false
		}
		for v := range nbs {
			if _, ok = other[v]; !ok {
				return false
			}
		}
	}

	return true
}

func copyMetadata(md map[string]interface{}) map[string]interface{} {
	if md == nil {
		return nil
	}
	out := make(map[string]interface{}, len(md))
	for k, v := range md {
		out[k] = v
	}

	return out
}
