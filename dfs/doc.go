// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal of a core.Graph and the
// connectivity queries built on it.
//
//   - DFS(g, start, opts...) returns pre-order, depths and tree parents.
//     WithFullTraversal turns it into a DFS forest over every component.
//   - Components, IsConnected and IsTree answer the structural questions
//     asked by the predicates in package props (cycles, paths, local
//     cutpoints, surfaces).
//
// Hooks (OnVisit, OnExit) may abort the traversal by returning an error;
// WithContext allows cancellation. Neighbours are explored in sorted order,
// so results are deterministic.
package dfs
