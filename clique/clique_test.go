// SPDX-License-Identifier: MIT

package clique_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/clique"
	"github.com/katalvlaran/cliques/core"
)

// TestClique_Value VERIFIES content equality, canonical keys and set queries.
func TestClique_Value(t *testing.T) {
	a := clique.New("c", "a", "b", "a")
	b := clique.New("b", "c", "a")
	assert.True(t, a.Equal(b))
	assert.Equal(t, "{a,b,c}", a.Key())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []string{"a", "b", "c"}, a.Members())
	assert.True(t, a.Contains("b"))
	assert.False(t, a.Contains("d"))

	c := clique.New("c", "d")
	assert.True(t, a.Intersects(c))
	assert.Equal(t, []string{"c"}, a.Intersection(c))
	assert.False(t, clique.New("x").Intersects(c))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "{}", clique.Clique{}.Key())

	ms := a.Members()
	ms[0] = "zzz"
	assert.Equal(t, "{a,b,c}", a.String(), "Members returns a copy")
}

func keys(cs []clique.Clique) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Key()
	}
	sort.Strings(out)

	return out
}

// TestMaximalCliques_Fixtures VERIFIES enumeration on small named graphs.
func TestMaximalCliques_Fixtures(t *testing.T) {
	assert.Equal(t, []string{"{0,1}", "{1,2}"}, keys(clique.All(builder.MustBuild(builder.Path(3)))))
	assert.Equal(t, []string{"{0,1,2,3}"}, keys(clique.All(builder.MustBuild(builder.Complete(4)))))
	assert.Equal(t, []string{"{0}", "{1}", "{2}"}, keys(clique.All(builder.MustBuild(builder.Empty(3)))))
	assert.Empty(t, clique.All(core.NewGraph()))
	assert.Empty(t, clique.All(nil))

	octa := clique.All(builder.MustBuild(builder.OctahedronGraph()))
	assert.Len(t, octa, 8)
	for _, c := range octa {
		assert.Equal(t, 3, c.Len())
	}
	assert.Len(t, clique.All(builder.MustBuild(builder.IcosahedronGraph())), 20)
}

// TestMaximalCliques_EarlyStop VERIFIES that breaking out of the range loop stops enumeration.
func TestMaximalCliques_EarlyStop(t *testing.T) {
	n := 0
	for range clique.MaximalCliques(builder.MustBuild(builder.IcosahedronGraph())) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

// TestMaximalCliques_AgainstGonum VERIFIES enumeration against topo.BronKerbosch on random graphs.
func TestMaximalCliques_AgainstGonum(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(14, 0.45))
		require.NoError(t, err)

		ids := g.Vertices()
		index := make(map[string]int64, len(ids))
		ug := simple.NewUndirectedGraph()
		for i, id := range ids {
			index[id] = int64(i)
			ug.AddNode(simple.Node(int64(i)))
		}
		for _, e := range g.Edges() {
			ug.SetEdge(ug.NewEdge(simple.Node(index[e.From]), simple.Node(index[e.To])))
		}
		var want []string
		for _, c := range topo.BronKerbosch(ug) {
			ms := make([]string, len(c))
			for i, nd := range c {
				ms[i] = ids[nd.ID()]
			}
			want = append(want, clique.New(ms...).Key())
		}
		sort.Strings(want)

		assert.Equal(t, want, keys(clique.All(g)), "seed %d", seed)
	}
}

// TestGraph_Operator VERIFIES K on fixtures with known clique graphs.
func TestGraph_Operator(t *testing.T) {
	k, err := clique.Graph(builder.MustBuild(builder.OctahedronGraph()), clique.NoBound)
	require.NoError(t, err)
	assert.Equal(t, 8, k.Order())
	assert.Equal(t, 24, k.Size(), "K(octahedron) is K8 minus a perfect matching")

	k, err = clique.Graph(builder.MustBuild(builder.Complete(5)), clique.NoBound)
	require.NoError(t, err)
	assert.Equal(t, []string{"{0,1,2,3,4}"}, k.Vertices())

	k, err = clique.Graph(builder.MustBuild(builder.Cycle(5)), clique.NoBound)
	require.NoError(t, err)
	assert.Equal(t, 5, k.Order())
	assert.Equal(t, 5, k.Size())
	assert.True(t, k.HasEdge("{0,1}", "{1,2}"))
	assert.True(t, k.HasEdge("{0,1}", "{0,4}"))

	c, ok := clique.Of(k, "{0,1}")
	require.True(t, ok)
	assert.Equal(t, []string{"0", "1"}, c.Members())
	_, ok = clique.Of(k, "{9}")
	assert.False(t, ok)

	k, err = clique.Graph(core.NewGraph(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, k.Order())
}

// TestGraph_Bound VERIFIES that abort happens iff the true count exceeds the bound.
func TestGraph_Bound(t *testing.T) {
	octa := builder.MustBuild(builder.OctahedronGraph())

	_, err := clique.Graph(octa, 7)
	assert.ErrorIs(t, err, clique.ErrBoundExceeded)

	k, err := clique.Graph(octa, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, k.Order())

	n, err := clique.Count(octa, clique.NoBound)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	_, err = clique.Count(octa, 2)
	assert.ErrorIs(t, err, clique.ErrBoundExceeded)

	_, err = clique.Graph(octa, -2)
	assert.ErrorIs(t, err, clique.ErrInvalidBound)
	_, err = clique.Graph(nil, 3)
	assert.ErrorIs(t, err, clique.ErrGraphNil)
}

// TestGraph_DelimiterIDs VERIFIES that IDs containing key delimiters still
// give one K(G) vertex per maximal clique.
func TestGraph_DelimiterIDs(t *testing.T) {
	g, err := core.FromPairs("a", "b,c", "a,b", "c")
	require.NoError(t, err)
	n, err := clique.Count(g, clique.NoBound)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	k, err := clique.Graph(g, clique.NoBound)
	require.NoError(t, err)
	assert.Equal(t, 2, k.Order())
	assert.Zero(t, k.Size())
	assert.Equal(t, []string{`{a,b\,c}`, `{a\,b,c}`}, k.Vertices())

	// {"a,b"} and {"a","b"} once shared a key
	g, err = core.FromEdges([]string{"a,b", "a", "b"}, []core.Edge{{From: "a", To: "b"}})
	require.NoError(t, err)
	k, err = clique.Graph(g, clique.NoBound)
	require.NoError(t, err)
	assert.Equal(t, []string{"{a,b}", `{a\,b}`}, k.Vertices())

	assert.NotEqual(t, clique.New(`a\`, "b").Key(), clique.New(`a\,b`).Key())
	assert.Equal(t, `{\{x\}}`, clique.New("{x}").Key())
}

// TestHomotopyGraph VERIFIES H on a triangle and a path.
func TestHomotopyGraph(t *testing.T) {
	h, err := clique.HomotopyGraph(builder.MustBuild(builder.Complete(3)))
	require.NoError(t, err)
	assert.Equal(t, 3, h.Order())
	assert.Equal(t, 3, h.Size())

	h, err = clique.HomotopyGraph(builder.MustBuild(builder.Path(3)))
	require.NoError(t, err)
	assert.Equal(t, []string{"0@{0,1}", "1@{0,1}", "1@{1,2}", "2@{1,2}"}, h.Vertices())
	assert.Equal(t, []core.Edge{
		{From: "0@{0,1}", To: "1@{0,1}"},
		{From: "1@{0,1}", To: "1@{1,2}"},
		{From: "1@{1,2}", To: "2@{1,2}"},
	}, h.Edges())

	_, err = clique.HomotopyGraph(nil)
	assert.ErrorIs(t, err, clique.ErrGraphNil)
}
