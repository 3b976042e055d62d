// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// edge-count distances, parent links and visit order.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex and
//     returns a BFSResult (Order, Depth, Parent).
//   - Distances computes all-pairs distances by one BFS per vertex; pairs in
//     different components are absent from the inner maps.
//   - Hooks: OnVisit may abort the traversal with an error.
//   - WithMaxDepth limits exploration; WithContext allows cancellation.
//
// Determinism
//
//	core.Graph.Neighbors is sorted, and BFS enqueues neighbours in that order,
//	so Order is reproducible.
//
// Complexity
//
//   - BFS: O(V + E). Distances: O(V·(V + E)).
//
// Used by package props (coaffinations need d(x, σ(x)) for every vertex).
package bfs
