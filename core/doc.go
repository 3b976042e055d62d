// SPDX-License-Identifier: MIT

// Package core provides the simple undirected Graph every other package of
// cliques operates on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are non-empty string IDs; each may carry a Metadata map.
//   - Edges are unordered pairs of distinct vertices: no self-loops, no
//     parallel edges, no weights, no direction.
//   - Every edge endpoint is a member of V. AddEdge never creates vertices,
//     so a malformed edge list fails loudly with ErrVertexNotFound.
//   - A single sync.RWMutex guards the vertex catalog and the adjacency sets.
//
// Determinism:
//
//	Vertices(), Edges(), Neighbors() and every helper returning IDs sort
//	lexicographically, so algorithms that scan "the first vertex with
//	property P" are reproducible run to run.
//
// Immutability convention:
//
//	Algorithms in this module never mutate the graph they are given. Anything
//	that "removes" a vertex or an edge works on Clone, InducedSubgraph or
//	Without and returns the new value. Mutating methods exist for
//	constructors (package builder, catalog decoding) that own the graph they
//	are filling.
//
// Core Methods:
//
//	AddVertex(id) error            // idempotent
//	AddEdge(u, v) error            // idempotent for an existing edge
//	RemoveVertex(id) error
//	RemoveEdge(u, v) error
//	HasVertex(id), HasEdge(u, v) bool
//	Vertices() []string, Edges() []Edge
//	Neighbors(id) ([]string, error), Degree(id) (int, error)
//	Order(), Size() int
//
// Views (never mutate the source):
//
//	Clone, InducedSubgraph, Without, OpenNeighborhood, Relabel, Canonical
//
// Quick ASCII example:
//
//	0───1
//	│   │
//	3───2
//
// is FromEdges([]string{"0","1","2","3"}, []Edge{{"0","1"},{"1","2"},{"2","3"},{"0","3"}}).
package core
