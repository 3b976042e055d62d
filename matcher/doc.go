// SPDX-License-Identifier: MIT

// Package matcher finds induced copies of one graph inside another.
//
// What
//
//   - Embeddings(large, small) lazily yields every injective φ: V(small) →
//     V(large) with s ~ t ⇔ φ(s) ~ φ(t), i.e. every induced copy of small.
//   - Subgraphs(large, small) yields the same matches turned around:
//     σ = φ⁻¹ maps a vertex subset of large onto small bijectively.
//   - Automorphisms(g), Isomorphic(a, b) and HasInduced(g, h) are thin
//     wrappers over the same search.
//   - NewEnumeration bounds a run by a context and a step budget (one step
//     is one candidate test); AutomorphismsWithin collects a bounded list.
//
// Determinism
//
//	Vertices of small are assigned in sorted ID order and candidates in
//	sorted ID order of large, so the first embedding of G into itself is the
//	identity and the sequence is reproducible.
//
// Complexity
//
//	Exponential in |V(small)| in the worst case. Candidates are filtered by
//	degree and checked against every earlier assignment with O(1) bit lookups.
package matcher
