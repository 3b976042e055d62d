// SPDX-License-Identifier: MIT

package retraction

import (
	"fmt"

	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/matcher"
)

// Retraction is a witness that large retracts onto small.
type Retraction struct {
	// Rho maps every vertex of large to a vertex of small.
	Rho matcher.Mapping
	// Iota embeds small into large; Rho[Iota[s]] == s for every s.
	Iota matcher.Mapping
}

// Verify re-checks r against the two graphs.
//
// Errors:
//   - ErrGraphNil.
//   - ErrNotRetraction wrapped with the first violated condition.
func (r Retraction) Verify(large, small *core.Graph) error {
	if large == nil || small == nil {
		return ErrGraphNil
	}
	for _, v := range large.Vertices() {
		img, ok := r.Rho[v]
		if !ok {
			return fmt.Errorf("%w: rho undefined on %q", ErrNotRetraction, v)
		}
		if !small.HasVertex(img) {
			return fmt.Errorf("%w: rho(%q)=%q is not in small", ErrNotRetraction, v, img)
		}
	}
	if len(r.Rho) != large.Order() {
		return fmt.Errorf("%w: rho has %d keys for %d vertices", ErrNotRetraction, len(r.Rho), large.Order())
	}
	for _, e := range large.Edges() {
		a, b := r.Rho[e.From], r.Rho[e.To]
		if a != b && !small.HasEdge(a, b) {
			return fmt.Errorf("%w: edge %s maps to non-edge %s-%s", ErrNotRetraction, e, a, b)
		}
	}
	if len(r.Iota) != small.Order() || !r.Iota.IsInjective() {
		return fmt.Errorf("%w: iota is not an injection of small", ErrNotRetraction)
	}
	for _, s := range small.Vertices() {
		x, ok := r.Iota[s]
		if !ok || !large.HasVertex(x) {
			return fmt.Errorf("%w: iota(%q) is not a vertex of large", ErrNotRetraction, s)
		}
		if r.Rho[x] != s {
			return fmt.Errorf("%w: rho(iota(%q)) = %q", ErrNotRetraction, s, r.Rho[x])
		}
	}

	return nil
}

// Stats counts the work done by the last run of Search.All.
type Stats struct {
	// SeedsTried is the number of seeds extended.
	SeedsTried int
	// SeedsPruned is the number of seeds skipped as symmetric.
	SeedsPruned int
	// FramesPushed is the number of backtracking frames pushed.
	FramesPushed int
	// Found is the number of retractions yielded.
	Found int
	// SymmetryExhausted reports that the automorphism budget cut a pruning
	// list short.
	SymmetryExhausted bool
}
