// SPDX-License-Identifier: MIT

// Package matrix offers a dense, bit-packed adjacency representation of a
// core.Graph snapshot.
//
// The combinatorial searches in this module (maximal cliques, domination,
// subgraph matching, retraction extension) spend almost all of their time on
// three questions: "is i adjacent to j", "is N[i] a subset of N[j]" and
// "which vertices lie in the intersection of these neighbourhoods". An
// AdjacencyMatrix answers all three with word-parallel operations on Bitset
// rows.
//
//   - Index maps vertex ID → row; IDs maps row → vertex ID (sorted order).
//   - Rows[i] is the open neighbourhood of i; Closed(i) adds i itself.
//   - The matrix is a snapshot: later mutations of the source graph are not
//     reflected.
//
// Memory is O(V²/64) words, which is the right trade-off for graphs of a few
// hundred vertices.
package matrix
