// SPDX-License-Identifier: MIT
// File: search.go
// Role: Seeded backtracking search for retractions.
// Determinism:
//   - Seeds arrive in matcher order, vertices are scanned in sorted ID order
//     and candidates are tried in ascending row order, so All is reproducible.

package retraction

import (
	"fmt"
	"iter"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/matcher"
	"github.com/katalvlaran/cliques/matrix"
)

const methodNew = "New"

// Search enumerates the retractions of one graph onto another.
// A Search is not safe for concurrent use; run one per goroutine.
type Search struct {
	large, small *core.Graph
	opts         Options

	lm, sm *matrix.AdjacencyMatrix
	closed []matrix.Bitset // N_small[i]
	every  matrix.Bitset   // all rows of small

	stats Stats
	err   error
}

// frame is one level of the backtracking stack: vertex v of large is being
// tried against cands, of which cands[:next] are spent.
type frame struct {
	v     int
	cands []int
	next  int
}

// New prepares a search for retractions of large onto small.
//
// Errors:
//   - ErrGraphNil, ErrEmptyTarget, ErrSmallLarger, ErrOptionViolation.
func New(large, small *core.Graph, opts ...Option) (*Search, error) {
	if large == nil || small == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if small.Order() == 0 {
		return nil, ErrEmptyTarget
	}
	if small.Order() > large.Order() {
		return nil, fmt.Errorf("%s: |small|=%d > |large|=%d: %w", methodNew, small.Order(), large.Order(), ErrSmallLarger)
	}

	s := &Search{
		large: large,
		small: small,
		opts:  o,
		lm:    matrix.MustAdjacency(large),
		sm:    matrix.MustAdjacency(small),
	}
	s.closed = make([]matrix.Bitset, s.sm.VertexCount())
	for i := range s.closed {
		s.closed[i] = s.sm.Closed(i)
	}
	s.every = s.sm.All()

	return s, nil
}

// Err returns the context error that ended the last run of All, if any.
func (s *Search) Err() error { return s.err }

// Stats returns the counters of the last run of All.
func (s *Search) Stats() Stats { return s.stats }

// All returns a lazy sequence of retractions. With symmetry pruning on,
// at most the witnesses of one seed per symmetry class are produced; the
// full enumeration of every retraction needs WithSymmetryPruning(false).
// The automorphism lists used for pruning are built only once a seed has
// been fully extended, so a consumer that stops at the first witness never
// pays for them. Every call restarts the search and resets Stats and Err.
func (s *Search) All() iter.Seq[Retraction] {
	return func(yield func(Retraction) bool) {
		s.stats = Stats{}
		s.err = nil

		var (
			seen       *hashset.Set
			listed     bool
			autS, autL []matcher.Mapping
		)
		if s.opts.SymmetryPruning {
			seen = hashset.New()
		}

		seeds := matcher.NewEnumeration(s.opts.Ctx, s.large, s.small, 0)
		for sigma := range seeds.Subgraphs() {
			if err := s.opts.Ctx.Err(); err != nil {
				s.err = err
				return
			}
			if seen != nil && seen.Contains(sigma.Key()) {
				s.stats.SeedsPruned++
				continue
			}
			s.stats.SeedsTried++
			if !s.extend(sigma, yield) {
				return
			}
			if seen == nil {
				continue
			}
			if !listed {
				var err error
				if autS, autL, err = s.symmetries(); err != nil {
					s.err = err
					return
				}
				listed = true
			}
			recordOrbit(seen, sigma, autS, autL)
		}
		if err := seeds.Err(); err != nil {
			s.err = err
		}
	}
}

// symmetries lists Aut(small) and Aut(large) within the configured limit
// and step budget. A cut-short list is still a set of automorphisms.
func (s *Search) symmetries() (autS, autL []matcher.Mapping, err error) {
	var exhausted bool
	autS, exhausted, err = matcher.AutomorphismsWithin(s.opts.Ctx, s.small, s.opts.AutomorphismLimit, s.opts.AutomorphismBudget)
	if err != nil {
		return nil, nil, err
	}
	s.stats.SymmetryExhausted = exhausted
	autL, exhausted, err = matcher.AutomorphismsWithin(s.opts.Ctx, s.large, s.opts.AutomorphismLimit, s.opts.AutomorphismBudget)
	if err != nil {
		return nil, nil, err
	}
	s.stats.SymmetryExhausted = s.stats.SymmetryExhausted || exhausted

	return autS, autL, nil
}

// extend completes sigma in every consistent way. It returns false when
// the consumer stopped or the context ended.
func (s *Search) extend(sigma matcher.Mapping, yield func(Retraction) bool) bool {
	nl := s.lm.VertexCount()
	rho := make([]int, nl)
	for i := range rho {
		rho[i] = -1
	}
	for x, y := range sigma {
		rho[s.lm.Index[x]] = s.sm.Index[y]
	}
	// seeds are bijections, so the inverse exists
	inv, _ := sigma.Inverse()

	mapped := len(sigma)
	if mapped == nl {
		return s.emit(rho, inv, yield)
	}

	stack := arraystack.New()
	first := s.choose(rho)
	if first == nil {
		return true
	}
	stack.Push(first)
	s.stats.FramesPushed++

	for !stack.Empty() {
		if err := s.opts.Ctx.Err(); err != nil {
			s.err = err
			return false
		}
		top, _ := stack.Peek()
		f := top.(*frame)
		if rho[f.v] >= 0 {
			rho[f.v] = -1
			mapped--
		}
		if f.next == len(f.cands) {
			stack.Pop()
			continue
		}
		rho[f.v] = f.cands[f.next]
		f.next++
		mapped++

		if mapped == nl {
			if !s.emit(rho, inv, yield) {
				return false
			}
			continue
		}
		if nf := s.choose(rho); nf != nil {
			stack.Push(nf)
			s.stats.FramesPushed++
		}
	}

	return true
}

// choose returns a frame for the unmapped vertex with the fewest
// candidates, or nil when some unmapped vertex has none.
func (s *Search) choose(rho []int) *frame {
	best, bestCount := -1, 0
	var bestSet matrix.Bitset
	for v, img := range rho {
		if img >= 0 {
			continue
		}
		cands := s.candidates(v, rho)
		c := cands.Count()
		if c == 0 {
			return nil
		}
		if best < 0 || c < bestCount {
			best, bestCount, bestSet = v, c, cands
		}
	}
	if best < 0 {
		return nil
	}

	return &frame{v: best, cands: bestSet.Indices()}
}

// candidates intersects N_small[ρ(w)] over the mapped neighbours w of v.
func (s *Search) candidates(v int, rho []int) matrix.Bitset {
	set := s.every.Clone()
	nb := s.lm.Rows[v]
	for w := nb.Next(0); w >= 0; w = nb.Next(w + 1) {
		if rho[w] >= 0 {
			set.InPlaceAnd(s.closed[rho[w]])
		}
	}

	return set
}

func (s *Search) emit(rho []int, inv matcher.Mapping, yield func(Retraction) bool) bool {
	m := make(matcher.Mapping, len(rho))
	for v, img := range rho {
		m[s.lm.IDs[v]] = s.sm.IDs[img]
	}
	s.stats.Found++

	return yield(Retraction{Rho: m, Iota: inv.Clone()})
}

// recordOrbit adds α∘σ∘β⁻¹ to seen for every listed α and β.
func recordOrbit(seen *hashset.Set, sigma matcher.Mapping, autS, autL []matcher.Mapping) {
	for _, beta := range autL {
		for _, alpha := range autS {
			m := make(matcher.Mapping, len(sigma))
			for x, y := range sigma {
				m[beta[x]] = alpha[y]
			}
			seen.Add(m.Key())
		}
	}
}
