// SPDX-License-Identifier: MIT

// Package retraction decides whether a graph retracts onto another and
// enumerates the witnesses.
//
// A retraction of large onto small is a pair (ρ, ι): ρ: V(large) → V(small)
// a homomorphism of reflexive graphs (adjacent vertices go to adjacent or
// equal vertices) and ι an embedding of small into large with ρ∘ι = id.
//
// Search
//
//  1. Seeds come from matcher.Subgraphs: induced copies of small in large,
//     each a bijection σ from a vertex subset of large onto V(small).
//     No seed means no retraction.
//  2. Each seed is extended to the rest of large by backtracking over an
//     explicit stack. An unmapped v may go to any vertex in the intersection
//     of N_small[ρ(w)] over its mapped neighbours w. The vertex with the
//     fewest candidates is extended next; an empty candidate set backtracks.
//  3. A total ρ together with ι = σ⁻¹ is a Retraction.
//
// Symmetry pruning
//
//	Once a seed σ has been explored, every α∘σ∘β⁻¹ with α ∈ Aut(small) and
//	β ∈ Aut(large) leads to an isomorphic search tree and is skipped. The
//	automorphism lists are built after the first fully extended seed and
//	are capped both in length and in embedder steps; a capped list only
//	prunes less. Pruning never changes whether a retraction exists; it only
//	changes how many witnesses All yields. Enumerating every retraction
//	needs WithSymmetryPruning(false).
//
// Outcomes
//
//   - "no retraction" is data: Find returns (Retraction{}, false, nil).
//   - malformed input (nil graphs, small larger than large, empty small) is
//     an error from New and Find and a panic from RetractsTo.
//   - a cancelled WithContext context ends All early; Err reports it.
package retraction
