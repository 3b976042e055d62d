// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle and queries.
// Determinism:
//   - Vertices() is sorted lexicographically.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex. Adding an existing ID is a no-op.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id if absent. Caller holds g.mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.adj[id] = make(map[string]struct{})
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex together with its incident edges.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if id is absent.
//
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("RemoveVertex(%q): %w", id, ErrVertexNotFound)
	}
	for nb := range g.adj[id] {
		delete(g.adj[nb], id)
		g.size--
	}
	delete(g.adj, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.verticesLocked()
}

func (g *Graph) verticesLocked() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Order returns |V|.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// SetMetadata stores value under key on vertex id.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
func (g *Graph) SetMetadata(id, key string, value interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetMetadata(%q): %w", id, ErrVertexNotFound)
	}
	if v.Metadata == nil {
		v.Metadata = make(map[string]interface{})
	}
	v.Metadata[key] = value

	return nil
}

// Metadata returns the value stored under key on vertex id.
func (g *Graph) Metadata(id, key string) (interface{}, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok || v.Metadata == nil {
		return nil, false
	}
	val, ok := v.Metadata[key]

	return val, ok
}
