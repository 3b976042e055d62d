// SPDX-License-Identifier: MIT

// Package cliques is a research toolkit for clique graphs, dismantlability
// and retractions of finite simple graphs.
//
// The work is split into subpackages:
//
//	core/       thread-safe undirected Graph with vertex metadata and views
//	builder/    cycles, paths, complete graphs, wheels, circulants, platonic solids, names
//	matrix/     bitset adjacency rows used by the search kernels
//	bfs/, dfs/  traversal, distances, components
//	clique/     maximal cliques, the clique graph K(G) with an abort bound, H(G)
//	dominated/  dominated and s-dismantlable vertices and edges, pare, collapse
//	matcher/    induced embeddings, automorphisms, isomorphism
//	retraction/ retraction search with symmetry pruning
//	props/      Helly, surface, cone, coaffination and octahedron tests
//	catalog/    graph6 files, edge expressions
//	dot/        Graphviz rendering
//	explore/    iterated K driver and batch classification
//
// The cliques command in cmd/cliques exposes all of the above.
package cliques
