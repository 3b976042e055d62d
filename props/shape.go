// SPDX-License-Identifier: MIT
// File: shape.go
// Role: Degree- and neighbourhood-shape predicates.

package props

import (
	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/dfs"
)

// IsRegular reports whether every vertex of g has degree k.
func IsRegular(g *core.Graph, k int) bool {
	if g == nil {
		return false
	}
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d != k {
			return false
		}
	}

	return true
}

// IsCone reports whether some vertex is adjacent to every other vertex.
// The empty graph is not a cone.
func IsCone(g *core.Graph) bool {
	if g == nil {
		return false
	}
	n := g.Order()
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d == n-1 {
			return true
		}
	}

	return false
}

// IsCycle reports whether g is connected and 2-regular.
func IsCycle(g *core.Graph) bool {
	return dfs.IsConnected(g) && IsRegular(g, 2)
}

// IsPath reports whether g is a tree with exactly two leaves.
func IsPath(g *core.Graph) bool {
	if !dfs.IsTree(g) {
		return false
	}
	leaves := 0
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d == 1 {
			leaves++
		}
	}

	return leaves == 2
}

// IsClosedSurface reports whether every open neighbourhood is a cycle of
// length at least 4.
func IsClosedSurface(g *core.Graph) bool {
	return everyLink(g, func(link *core.Graph) bool {
		return link.Order() >= 4 && IsCycle(link)
	})
}

// IsSurface is IsClosedSurface that also accepts paths of at least 4
// vertices as links (boundary vertices).
func IsSurface(g *core.Graph) bool {
	return everyLink(g, func(link *core.Graph) bool {
		return link.Order() >= 4 && (IsCycle(link) || IsPath(link))
	})
}

func everyLink(g *core.Graph, ok func(*core.Graph) bool) bool {
	if g == nil {
		return false
	}
	for _, v := range g.Vertices() {
		// v comes from g, so OpenNeighborhood cannot fail
		link, _ := core.OpenNeighborhood(g, v)
		if !ok(link) {
			return false
		}
	}

	return true
}

// LocalCutpoints returns the vertices whose open neighbourhood is
// disconnected. An isolated vertex has an empty neighbourhood and is not
// reported.
func LocalCutpoints(g *core.Graph) []string {
	if g == nil {
		return nil
	}
	var out []string
	for _, v := range g.Vertices() {
		link, _ := core.OpenNeighborhood(g, v)
		if link.Order() > 0 && !dfs.IsConnected(link) {
			out = append(out, v)
		}
	}

	return out
}

// HasLocalCutpoint returns the smallest local cutpoint, if any.
func HasLocalCutpoint(g *core.Graph) (string, bool) {
	if cps := LocalCutpoints(g); len(cps) > 0 {
		return cps[0], true
	}

	return "", false
}
