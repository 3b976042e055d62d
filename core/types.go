// SPDX-License-Identifier: MIT
// File: types.go
// Role: Sentinel errors, Graph/Vertex/Edge types and the constructor.
// Concurrency:
//   - Graph guards vertices and adjacency with one RWMutex (mu).

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates a missing vertex, including an edge endpoint
	// that is not a member of the vertex set.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates an attempt to add a self-loop.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrGraphNil indicates a nil *Graph was passed to a helper.
	ErrGraphNil = errors.New("core: graph is nil")
)

// Vertex is a node of a Graph.
// Metadata is free-form and copied shallowly by Clone and views.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge is an unordered pair of distinct vertices. Graph methods always
// return edges with From < To.
type Edge struct {
	From string
	To   string
}

// NewEdge returns the canonical form of the pair {u, v}.
func NewEdge(u, v string) Edge {
	if v < u {
		u, v = v, u
	}

	return Edge{From: u, To: v}
}

// String renders the edge as "u-v".
func (e Edge) String() string {
	return e.From + "-" + e.To
}

// Graph is a finite simple undirected graph.
//
// Fields:
//   - vertices: catalog of vertices by ID.
//   - adj: adjacency sets, adj[u][v] present iff {u,v} is an edge (mirrored).
//   - size: number of edges.
type Graph struct {
	mu       sync.RWMutex
	vertices map[string]*Vertex
	adj      map[string]map[string]struct{}
	size     int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
		adj:      make(map[string]map[string]struct{}),
	}
}
