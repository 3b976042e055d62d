// SPDX-License-Identifier: MIT

package matcher_test

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
)

func count(seq func(func(matcher.Mapping) bool)) int {
	n := 0
	for range seq {
		n++
	}

	return n
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

// TestMapping_Algebra VERIFIES Clone, Inverse, Compose and canonical keys.
func TestMapping_Algebra(t *testing.T) {
	m := matcher.Mapping{"b": "y", "a": "x"}
	assert.Equal(t, "a:x,b:y", m.Key())
	assert.Equal(t, "{a:x,b:y}", m.String())
	assert.Equal(t, []string{"a", "b"}, m.Domain())
	assert.True(t, m.IsInjective())

	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.Equal(t, matcher.Mapping{"x": "a", "y": "b"}, inv)
	assert.Equal(t, matcher.Mapping{"a": "a", "b": "b"}, inv.Compose(m))

	cp := m.Clone()
	cp["a"] = "z"
	assert.Equal(t, "x", m["a"])

	collapse := matcher.Mapping{"a": "x", "b": "x"}
	assert.False(t, collapse.IsInjective())
	_, ok = collapse.Inverse()
	assert.False(t, ok)

	partial := matcher.Mapping{"x": "1"}.Compose(m)
	assert.Equal(t, matcher.Mapping{"a": "1"}, partial, "b's image lies outside the outer domain")
	assert.Equal(t, "", matcher.Mapping{}.Key())
}

// TestEmbeddings_Counts VERIFIES induced embedding counts on small fixtures.
func TestEmbeddings_Counts(t *testing.T) {
	p3 := builder.MustBuild(builder.Path(3))
	k2 := builder.MustBuild(builder.Complete(2))
	c4 := builder.MustBuild(builder.Cycle(4))
	k4 := builder.MustBuild(builder.Complete(4))

	cases := []struct {
		name         string
		large, small *core.Graph
		want         int
	}{
		{"K2 in P3", p3, k2, 4},
		{"K2 in C4", c4, k2, 8},
		{"P3 in C4", c4, p3, 8},
		{"P3 in K4 is never induced", k4, p3, 0},
		{"C4 in P3 is too big", p3, c4, 0},
		{"empty pattern", p3, core.NewGraph(), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, count(matcher.Embeddings(tc.large, tc.small)))
			assert.Equal(t, tc.want, count(matcher.Subgraphs(tc.large, tc.small)))
		})
	}
	assert.Zero(t, count(matcher.Embeddings(nil, k2)))
}

// TestSubgraphs_Orientation VERIFIES that matches map a subset of large onto small.
func TestSubgraphs_Orientation(t *testing.T) {
	p3 := builder.MustBuild(builder.Path(3))
	k2 := builder.MustBuild(builder.Complete(2))

	var got []matcher.Mapping
	for sigma := range matcher.Subgraphs(p3, k2) {
		got = append(got, sigma)
	}
	require.Len(t, got, 4)
	assert.Equal(t, matcher.Mapping{"0": "0", "1": "1"}, got[0])
	for _, sigma := range got {
		assert.Len(t, sigma, 2)
		assert.True(t, sigma.IsInjective())
		for x, y := range sigma {
			assert.True(t, p3.HasVertex(x))
			assert.True(t, k2.HasVertex(y))
		}
	}
}

// TestAutomorphisms VERIFIES group orders and that the identity comes first.
func TestAutomorphisms(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		want int
	}{
		{"P3", builder.Path(3), 2},
		{"C5", builder.Cycle(5), 10},
		{"K4", builder.Complete(4), 24},
		{"star", builder.Star(3), 6},
		{"octahedron", builder.OctahedronGraph(), 48},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := builder.MustBuild(tc.cons)
			assert.Equal(t, tc.want, count(matcher.Automorphisms(g)))

			for first := range matcher.Automorphisms(g) {
				for x, y := range first {
					assert.Equal(t, x, y)
				}
				break
			}
		})
	}
}

// TestIsomorphic VERIFIES isomorphism on equal and unequal pairs.
func TestIsomorphic(t *testing.T) {
	c4 := builder.MustBuild(builder.Cycle(4))
	k22 := builder.MustBuild(builder.CompleteBipartite(2, 2))
	assert.True(t, matcher.Isomorphic(c4, k22))

	iso, ok := matcher.Isomorphism(c4, k22)
	require.True(t, ok)
	relabelled, err := core.Relabel(c4, iso)
	require.NoError(t, err)
	assert.True(t, core.Equal(relabelled, k22))

	c6 := builder.MustBuild(builder.Cycle(6))
	twoTriangles, err := core.FromPairs("a", "b", "b", "c", "c", "a", "x", "y", "y", "z", "z", "x")
	require.NoError(t, err)
	assert.False(t, matcher.Isomorphic(c6, twoTriangles), "same order and size")
	_, ok = matcher.Isomorphism(c6, twoTriangles)
	assert.False(t, ok)

	assert.False(t, matcher.Isomorphic(c4, builder.MustBuild(builder.Path(4))))
	assert.True(t, matcher.Isomorphic(nil, nil))
	assert.False(t, matcher.Isomorphic(c4, nil))
}

// TestHasInduced VERIFIES induced containment.
func TestHasInduced(t *testing.T) {
	octa := builder.MustBuild(builder.OctahedronGraph())
	c4 := builder.MustBuild(builder.Cycle(4))
	assert.True(t, matcher.HasInduced(octa, c4))
	assert.False(t, matcher.HasInduced(builder.MustBuild(builder.Cycle(5)), c4))
	assert.False(t, matcher.HasInduced(builder.MustBuild(builder.Complete(5)), c4))
}

// TestEmbeddings_EarlyStop VERIFIES that breaking out stops the search.
func TestEmbeddings_EarlyStop(t *testing.T) {
	octa := builder.MustBuild(builder.OctahedronGraph())
	n := 0
	for range matcher.Automorphisms(octa) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

// TestAutomorphismsWithin VERIFIES the limit, the step budget and
// cancellation of the bounded listing.
func TestAutomorphismsWithin(t *testing.T) {
	octa := builder.MustBuild(builder.OctahedronGraph())
	ctx := context.Background()

	auts, exhausted, err := matcher.AutomorphismsWithin(ctx, octa, 0, 0)
	require.NoError(t, err)
	assert.False(t, exhausted)
	assert.Len(t, auts, 48)

	auts, exhausted, err = matcher.AutomorphismsWithin(ctx, octa, 5, 0)
	require.NoError(t, err)
	assert.False(t, exhausted)
	assert.Len(t, auts, 5)

	auts, exhausted, err = matcher.AutomorphismsWithin(ctx, octa, 0, 10)
	require.NoError(t, err)
	assert.True(t, exhausted)
	assert.Less(t, len(auts), 48)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	auts, _, err = matcher.AutomorphismsWithin(cancelled, octa, 0, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, auts)
}

// TestAutomorphismsWithin_SparseGraph VERIFIES that a step budget keeps the
// listing short on a sparse graph with a tiny automorphism group.
func TestAutomorphismsWithin_SparseGraph(t *testing.T) {
	g := twoCycles(t, 32, 7)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	auts, _, err := matcher.AutomorphismsWithin(ctx, g, 0, 1<<16)
	require.NoError(t, err)
	require.NotEmpty(t, auts)
	for x, y := range auts[0] {
		assert.Equal(t, x, y)
	}
}

// TestEnumeration_Bounds VERIFIES that Err and Exhausted reset on restart.
func TestEnumeration_Bounds(t *testing.T) {
	octa := builder.MustBuild(builder.OctahedronGraph())
	c4 := builder.MustBuild(builder.Cycle(4))

	en := matcher.NewEnumeration(context.Background(), octa, c4, 3)
	assert.Zero(t, count(en.Subgraphs()))
	assert.True(t, en.Exhausted())

	en = matcher.NewEnumeration(nil, octa, c4, 0) //nolint:staticcheck // nil means Background
	assert.Equal(t, count(matcher.Subgraphs(octa, c4)), count(en.Subgraphs()))
	assert.False(t, en.Exhausted())
	assert.NoError(t, en.Err())
}
