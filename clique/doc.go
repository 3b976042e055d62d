// SPDX-License-Identifier: MIT

// Package clique implements the clique-graph operator K and its building blocks.
//
// For an undirected graph G, K(G) is the intersection graph of the maximal
// complete subgraphs of G: one vertex per maximal clique, two cliques
// adjacent iff they share a vertex.
//
//   - Clique is an immutable, sorted vertex set compared by content. Its Key
//     ("{a,b,c}") becomes the vertex ID in K(G), and the Clique itself is
//     attached to that vertex under MetadataKey.
//   - MaximalCliques enumerates maximal cliques lazily (pivoting
//     Bron–Kerbosch over bit-packed rows); the order is deterministic but
//     callers must not depend on it.
//   - Graph builds K(G). Because |K(G)| can grow exponentially, Graph takes a
//     bound: as soon as more than bound cliques have been seen it stops and
//     returns ErrBoundExceeded. That outcome is expected and recoverable (try
//     a smaller input or abandon the branch); it is not "no clique graph".
//   - HomotopyGraph builds H(G), whose vertices are the pairs (x, Q) with
//     x ∈ Q, adjacent when each first coordinate lies in the other clique.
//
// Complexity: enumeration is output-sensitive, O(3^{n/3}) in the worst case;
// building K(G) from m cliques costs O(Σ_v c(v)²) where c(v) is the number of
// cliques containing v.
package clique
