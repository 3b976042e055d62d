// SPDX-License-Identifier: MIT
// File: search.go
// Role: Induced-embedding search and the enumerators built on it.

package matcher

import (
	"context"
	"iter"

	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/matrix"
)

// pollEvery is how many candidate tests pass between two context checks.
const pollEvery = 1024

// Embeddings returns a lazy sequence of induced embeddings of small into
// large, each as a total Mapping V(small) → V(large). A nil graph yields
// nothing; the empty small graph has exactly one (empty) embedding.
//
// Implementation:
//   - Stage 1: Snapshot both graphs as bit-row matrices.
//   - Stage 2: Assign small rows in order; a large row c is a candidate for
//     small row s when it is unused, deg(c) ≥ deg(s), and for every earlier
//     assignment t ↦ φ(t): s ~ t ⇔ c ~ φ(t).
//   - Stage 3: A full assignment is yielded as a fresh Mapping.
func Embeddings(large, small *core.Graph) iter.Seq[Mapping] {
	return NewEnumeration(context.Background(), large, small, 0).Embeddings()
}

// Subgraphs returns a lazy sequence of induced matches of small inside
// large, each as a Mapping from a vertex subset of large onto V(small).
// It is Embeddings with every match inverted.
func Subgraphs(large, small *core.Graph) iter.Seq[Mapping] {
	return NewEnumeration(context.Background(), large, small, 0).Subgraphs()
}

// Automorphisms returns a lazy sequence of the automorphisms of g,
// starting with the identity.
func Automorphisms(g *core.Graph) iter.Seq[Mapping] {
	return Embeddings(g, g)
}

// AutomorphismsWithin collects at most limit automorphisms of g (limit ≤ 0
// means no cap), spending at most steps candidate tests (steps ≤ 0 means no
// cap). exhausted reports that the step budget cut the listing short.
// On cancellation the automorphisms found so far are returned with
// ctx.Err().
func AutomorphismsWithin(ctx context.Context, g *core.Graph, limit, steps int) (auts []Mapping, exhausted bool, err error) {
	en := NewEnumeration(ctx, g, g, steps)
	for m := range en.Embeddings() {
		auts = append(auts, m)
		if limit > 0 && len(auts) == limit {
			break
		}
	}

	return auts, en.Exhausted(), en.Err()
}

// Enumeration is one bounded, cancellable run of the embedding search.
// Its sequences stop early when the context ends or the step budget runs
// out; Err and Exhausted tell the two apart from a finished search.
// An Enumeration is not safe for concurrent use.
type Enumeration struct {
	ctx          context.Context
	large, small *core.Graph
	steps        int

	err       error
	exhausted bool
}

// NewEnumeration prepares a search of small inside large. steps caps the
// candidate tests of each sequence started from it; steps ≤ 0 means no cap.
// A nil ctx is treated as context.Background().
func NewEnumeration(ctx context.Context, large, small *core.Graph, steps int) *Enumeration {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Enumeration{ctx: ctx, large: large, small: small, steps: steps}
}

// Err returns the context error that ended the last sequence, if any.
func (en *Enumeration) Err() error { return en.err }

// Exhausted reports whether the step budget ended the last sequence.
func (en *Enumeration) Exhausted() bool { return en.exhausted }

// Embeddings is the bounded form of the package-level Embeddings.
// Every call restarts the search and resets Err and Exhausted.
func (en *Enumeration) Embeddings() iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		en.err, en.exhausted = nil, false
		if en.large == nil || en.small == nil {
			return
		}
		if err := en.ctx.Err(); err != nil {
			en.err = err
			return
		}
		e := newEmbedder(matrix.MustAdjacency(en.large), matrix.MustAdjacency(en.small))
		if e.ns > e.nl {
			return
		}
		e.yield = yield
		e.ctx = en.ctx
		e.budget = en.steps
		e.assign(0)
		en.err, en.exhausted = e.err, e.exhausted
	}
}

// Subgraphs is the bounded form of the package-level Subgraphs.
func (en *Enumeration) Subgraphs() iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		for phi := range en.Embeddings() {
			// embeddings are injective, so the inverse always exists
			sigma, _ := phi.Inverse()
			if !yield(sigma) {
				return
			}
		}
	}
}

// Isomorphic reports whether a and b are isomorphic.
func Isomorphic(a, b *core.Graph) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Order() != b.Order() || a.Size() != b.Size() {
		return false
	}

	return HasInduced(a, b)
}

// Isomorphism returns an isomorphism a → b, if one exists.
func Isomorphism(a, b *core.Graph) (Mapping, bool) {
	if a == nil || b == nil || a.Order() != b.Order() || a.Size() != b.Size() {
		return nil, false
	}
	for sigma := range Subgraphs(a, b) {
		return sigma, true
	}

	return nil, false
}

// HasInduced reports whether g contains an induced copy of h.
func HasInduced(g, h *core.Graph) bool {
	for range Embeddings(g, h) {
		return true
	}

	return false
}

type embedder struct {
	large, small *matrix.AdjacencyMatrix
	nl, ns       int
	phi          []int
	used         matrix.Bitset
	yield        func(Mapping) bool

	ctx       context.Context
	budget    int // candidate tests left; ≤ 0 when uncapped
	ticks     int
	err       error
	exhausted bool
}

func newEmbedder(large, small *matrix.AdjacencyMatrix) *embedder {
	e := &embedder{
		large: large,
		small: small,
		nl:    large.VertexCount(),
		ns:    small.VertexCount(),
	}
	e.phi = make([]int, e.ns)
	e.used = matrix.NewBitset(e.nl)

	return e
}

// assign extends φ at small row s; it returns false once the consumer stops
// or the run is cut short by the context or the step budget.
func (e *embedder) assign(s int) bool {
	if s == e.ns {
		return e.yield(e.mapping())
	}
	need := e.small.Degree(s)
	for c := 0; c < e.nl; c++ {
		if !e.tick() {
			return false
		}
		if e.used.Has(c) || e.large.Degree(c) < need || !e.consistent(s, c) {
			continue
		}
		e.phi[s] = c
		e.used.Set(c)
		ok := e.assign(s + 1)
		e.used.Clear(c)
		if !ok {
			return false
		}
	}

	return true
}

// tick spends one candidate test.
func (e *embedder) tick() bool {
	if e.budget > 0 && e.ticks == e.budget {
		e.exhausted = true
		return false
	}
	e.ticks++
	if e.ctx != nil && e.ticks%pollEvery == 0 {
		if err := e.ctx.Err(); err != nil {
			e.err = err
			return false
		}
	}

	return true
}

func (e *embedder) consistent(s, c int) bool {
	for t := 0; t < s; t++ {
		if e.small.Adjacent(s, t) != e.large.Adjacent(c, e.phi[t]) {
			return false
		}
	}

	return true
}

func (e *embedder) mapping() Mapping {
	m := make(Mapping, e.ns)
	for s, c := range e.phi {
		m[e.small.IDs[s]] = e.large.IDs[c]
	}

	return m
}
