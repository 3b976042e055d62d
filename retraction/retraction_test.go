// SPDX-License-Identifier: MIT

package retraction_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/matcher"
	"github.com/katalvlaran/cliques/retraction"
)

// TestFind_Reflexive VERIFIES that every graph retracts onto itself by the identity.
func TestFind_Reflexive(t *testing.T) {
	for _, cons := range []builder.Constructor{
		builder.Cycle(5),
		builder.Path(4),
		builder.OctahedronGraph(),
		builder.IcosahedronGraph(),
		builder.Circulant(7, []int{1, 2}),
	} {
		g := builder.MustBuild(cons)
		r, ok, err := retraction.Find(g, g)
		require.NoError(t, err)
		require.True(t, ok)
		for _, v := range g.Vertices() {
			assert.Equal(t, v, r.Rho[v])
			assert.Equal(t, v, r.Iota[v])
		}
		assert.NoError(t, r.Verify(g, g))
	}
}

// TestFind_Scenarios VERIFIES existence and absence on named pairs.
func TestFind_Scenarios(t *testing.T) {
	cases := []struct {
		name         string
		large, small builder.Constructor
		want         bool
	}{
		{"C4 onto an edge", builder.Cycle(4), builder.Complete(2), true},
		{"P3 onto P2", builder.Path(3), builder.Path(2), true},
		{"C5 onto P3", builder.Cycle(5), builder.Path(3), true},
		{"octahedron onto its equator", builder.OctahedronGraph(), builder.Cycle(4), false},
		{"wheel onto its rim", builder.Wheel(5), builder.Cycle(4), false},
		{"C6 has no induced C4", builder.Cycle(6), builder.Cycle(4), false},
		{"K4 onto K3", builder.Complete(4), builder.Complete(3), true},
		{"P4 onto K3", builder.Path(4), builder.Complete(3), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			large, small := builder.MustBuild(tc.large), builder.MustBuild(tc.small)
			r, ok, err := retraction.Find(large, small)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
			if ok {
				assert.NoError(t, r.Verify(large, small))
			} else {
				assert.Nil(t, r.Rho)
			}
			assert.Equal(t, tc.want, retraction.RetractsTo(small)(large))
		})
	}
}

// TestAll_PathOntoEdge VERIFIES the two witnesses left after symmetry pruning.
func TestAll_PathOntoEdge(t *testing.T) {
	p3 := builder.MustBuild(builder.Path(3))
	p2 := builder.MustBuild(builder.Path(2))

	s, err := retraction.New(p3, p2)
	require.NoError(t, err)
	var got []retraction.Retraction
	for r := range s.All() {
		got = append(got, r)
	}
	require.Len(t, got, 2)
	assert.Equal(t, matcher.Mapping{"0": "0", "1": "1", "2": "0"}, got[0].Rho)
	assert.Equal(t, matcher.Mapping{"0": "0", "1": "1", "2": "1"}, got[1].Rho)
	for _, r := range got {
		assert.Equal(t, matcher.Mapping{"0": "0", "1": "1"}, r.Iota)
		assert.NoError(t, r.Verify(p3, p2))
	}
	st := s.Stats()
	assert.Equal(t, 1, st.SeedsTried)
	assert.Equal(t, 3, st.SeedsPruned)
	assert.Equal(t, 2, st.Found)

	s, err = retraction.New(p3, p2, retraction.WithSymmetryPruning(false))
	require.NoError(t, err)
	n := 0
	for range s.All() {
		n++
	}
	assert.Equal(t, 8, n)
	assert.Equal(t, 4, s.Stats().SeedsTried)
	assert.Zero(t, s.Stats().SeedsPruned)
}

// TestAll_EqualOrders VERIFIES that seeds of a same-order target are returned as they are.
func TestAll_EqualOrders(t *testing.T) {
	c5 := builder.MustBuild(builder.Cycle(5))
	s, err := retraction.New(c5, c5, retraction.WithSymmetryPruning(false))
	require.NoError(t, err)
	n := 0
	for r := range s.All() {
		require.NoError(t, r.Verify(c5, c5))
		n++
	}
	assert.Equal(t, 10, n, "one per automorphism")
	assert.Zero(t, s.Stats().FramesPushed)

	s, err = retraction.New(c5, c5)
	require.NoError(t, err)
	n = 0
	for range s.All() {
		n++
	}
	assert.Equal(t, 1, n, "all automorphisms are one symmetry class")
}

// bruteForce decides retractability by trying every map V(large) → V(small).
func bruteForce(large, small *core.Graph) bool {
	lv, sv := large.Vertices(), small.Vertices()
	var embeddings []matcher.Mapping
	for phi := range matcher.Embeddings(large, small) {
		embeddings = append(embeddings, phi)
	}
	if len(embeddings) == 0 {
		return false
	}
	edges := large.Edges()
	idx := make([]int, len(lv))
	rho := make(map[string]string, len(lv))
	for {
		for i, v := range lv {
			rho[v] = sv[idx[i]]
		}
		hom := true
		for _, e := range edges {
			a, b := rho[e.From], rho[e.To]
			if a != b && !small.HasEdge(a, b) {
				hom = false
				break
			}
		}
		if hom {
			for _, phi := range embeddings {
				fixed := true
				for s, x := range phi {
					if rho[x] != s {
						fixed = false
						break
					}
				}
				if fixed {
					return true
				}
			}
		}
		k := 0
		for k < len(idx) {
			idx[k]++
			if idx[k] < len(sv) {
				break
			}
			idx[k] = 0
			k++
		}
		if k == len(idx) {
			return false
		}
	}
}

// TestFind_AgainstBruteForce VERIFIES the search, with and without pruning, on random graphs.
func TestFind_AgainstBruteForce(t *testing.T) {
	targets := []builder.Constructor{
		builder.Path(3),
		builder.Complete(3),
		builder.Cycle(4),
		builder.Path(4),
		builder.Star(3),
	}
	for seed := int64(1); seed <= 12; seed++ {
		large, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(6, 0.5))
		require.NoError(t, err)
		for _, tc := range targets {
			small := builder.MustBuild(tc)
			want := bruteForce(large, small)

			r, ok, err := retraction.Find(large, small)
			require.NoError(t, err)
			assert.Equal(t, want, ok, "seed %d, small %v", seed, small.Edges())
			if ok {
				assert.NoError(t, r.Verify(large, small))
			}

			_, ok, err = retraction.Find(large, small, retraction.WithSymmetryPruning(false))
			require.NoError(t, err)
			assert.Equal(t, want, ok, "seed %d without pruning", seed)

			_, ok, err = retraction.Find(large, small, retraction.WithAutomorphismLimit(1))
			require.NoError(t, err)
			assert.Equal(t, want, ok, "seed %d with identity-only pruning", seed)

			_, ok, err = retraction.Find(large, small, retraction.WithAutomorphismBudget(8))
			require.NoError(t, err)
			assert.Equal(t, want, ok, "seed %d with a starved pruning budget", seed)
		}
	}
}

// TestNew_Errors VERIFIES malformed input handling.
func TestNew_Errors(t *testing.T) {
	k2 := builder.MustBuild(builder.Complete(2))
	c4 := builder.MustBuild(builder.Cycle(4))

	_, err := retraction.New(nil, k2)
	assert.ErrorIs(t, err, retraction.ErrGraphNil)
	_, err = retraction.New(k2, c4)
	assert.ErrorIs(t, err, retraction.ErrSmallLarger)
	_, err = retraction.New(c4, core.NewGraph())
	assert.ErrorIs(t, err, retraction.ErrEmptyTarget)
	_, err = retraction.New(c4, k2, retraction.WithAutomorphismLimit(0))
	assert.ErrorIs(t, err, retraction.ErrOptionViolation)
	_, err = retraction.New(c4, k2, retraction.WithAutomorphismBudget(0))
	assert.ErrorIs(t, err, retraction.ErrOptionViolation)

	_, ok, err := retraction.Find(k2, c4)
	assert.ErrorIs(t, err, retraction.ErrSmallLarger)
	assert.False(t, ok)

	assert.Panics(t, func() { retraction.RetractsTo(c4)(k2) })
	assert.Panics(t, func() { retraction.RetractsTo(nil)(c4) })
}

// TestFind_Cancelled VERIFIES that a cancelled context ends the search with its error.
func TestFind_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	octa := builder.MustBuild(builder.OctahedronGraph())
	_, ok, err := retraction.Find(octa, builder.MustBuild(builder.Path(3)), retraction.WithContext(ctx))
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestVerify_Rejects VERIFIES that broken witnesses are caught.
func TestVerify_Rejects(t *testing.T) {
	p3 := builder.MustBuild(builder.Path(3))
	p2 := builder.MustBuild(builder.Path(2))
	good := retraction.Retraction{
		Rho:  matcher.Mapping{"0": "0", "1": "1", "2": "0"},
		Iota: matcher.Mapping{"0": "0", "1": "1"},
	}
	require.NoError(t, good.Verify(p3, p2))

	cases := map[string]retraction.Retraction{
		"partial rho":   {Rho: matcher.Mapping{"0": "0", "1": "1"}, Iota: good.Iota},
		"foreign image": {Rho: matcher.Mapping{"0": "0", "1": "1", "2": "9"}, Iota: good.Iota},
		"not fixing":    {Rho: matcher.Mapping{"0": "1", "1": "1", "2": "1"}, Iota: good.Iota},
		"bad iota":      {Rho: good.Rho, Iota: matcher.Mapping{"0": "0", "1": "0"}},
	}
	for name, r := range cases {
		assert.ErrorIs(t, r.Verify(p3, p2), retraction.ErrNotRetraction, name)
	}

	c4 := builder.MustBuild(builder.Cycle(4))
	k2 := builder.MustBuild(builder.Complete(2))
	broken := retraction.Retraction{
		Rho:  matcher.Mapping{"0": "0", "1": "1", "2": "0", "3": "1"},
		Iota: matcher.Mapping{"0": "0", "1": "1"},
	}
	assert.NoError(t, broken.Verify(c4, k2), "K2 is reflexive: every map is a homomorphism")

	p4 := builder.MustBuild(builder.Path(4))
	notHom := retraction.Retraction{
		Rho:  matcher.Mapping{"0": "0", "1": "1", "2": "2", "3": "0"},
		Iota: matcher.Mapping{"0": "0", "1": "1", "2": "2"},
	}
	assert.ErrorIs(t, notHom.Verify(p4, p3), retraction.ErrNotRetraction, "edge 2-3 maps to the non-edge 2-0")
	assert.ErrorIs(t, good.Verify(nil, p2), retraction.ErrGraphNil)
}

// twoCycles overlays the cycle 0…n-1 with a second Hamiltonian cycle in a
// seeded random order: a near-4-regular graph with few automorphisms.
func twoCycles(t *testing.T, n int, seed int64) *core.Graph {
	t.Helper()
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	ends := make([]string, 0, 4*n)
	for i := 0; i < n; i++ {
		ends = append(ends, strconv.Itoa(i), strconv.Itoa((i+1)%n))
		ends = append(ends, strconv.Itoa(perm[i]), strconv.Itoa(perm[(i+1)%n]))
	}
	g, err := core.FromPairs(ends...)
	require.NoError(t, err)

	return g
}

// TestFind_SparseNearRegular VERIFIES that pruning stays cheap on a sparse
// graph whose automorphism group is tiny.
func TestFind_SparseNearRegular(t *testing.T) {
	g := twoCycles(t, 32, 7)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	r, ok, err := retraction.Find(g, builder.MustBuild(builder.Path(3)), retraction.WithContext(ctx))
	require.NoError(t, err)
	require.True(t, ok)
	assert.NoError(t, r.Verify(g, builder.MustBuild(builder.Path(3))))
}

// TestAll_AutomorphismBudget VERIFIES that a starved budget only weakens
// pruning and that the default budget finishes within a deadline.
func TestAll_AutomorphismBudget(t *testing.T) {
	g := twoCycles(t, 32, 7)
	k1 := core.NewGraph()
	require.NoError(t, k1.AddVertex("x"))

	s, err := retraction.New(g, k1, retraction.WithAutomorphismBudget(64))
	require.NoError(t, err)
	n := 0
	for range s.All() {
		n++
	}
	require.NoError(t, s.Err())
	assert.Equal(t, 32, n, "nothing is pruned without Aut(large)")
	assert.True(t, s.Stats().SymmetryExhausted)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s, err = retraction.New(g, k1, retraction.WithContext(ctx))
	require.NoError(t, err)
	n = 0
	for range s.All() {
		n++
	}
	require.NoError(t, s.Err())
	st := s.Stats()
	assert.Equal(t, 32, st.SeedsTried+st.SeedsPruned)
	assert.Equal(t, n, st.Found)
	assert.GreaterOrEqual(t, n, 1)
}
