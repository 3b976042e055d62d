// SPDX-License-Identifier: MIT

package dfs

import (
	"sort"

	"github.com/katalvlaran/cliques/core"
)

// Components returns the vertex sets of the connected components.
// Each component is sorted, and components are ordered by their smallest ID.
func Components(g *core.Graph) ([][]string, error) {
	res, err := DFS(g, "", WithFullTraversal())
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(res.Roots))
	out := make([][]string, len(res.Roots))
	for i, r := range res.Roots {
		index[r] = i
	}
	for _, v := range res.Order {
		root := v
		for {
			p, ok := res.Parent[root]
			if !ok {
				break
			}
			root = p
		}
		out[index[root]] = append(out[index[root]], v)
	}
	for _, c := range out {
		sort.Strings(c)
	}

	return out, nil
}

// IsConnected reports whether g has exactly one component.
// The empty graph is not connected.
func IsConnected(g *core.Graph) bool {
	if g == nil || g.Order() == 0 {
		return false
	}
	res, err := DFS(g, g.Vertices()[0])
	if err != nil {
		return false
	}

	return len(res.Order) == g.Order()
}

// IsTree reports whether g is connected with |E| = |V| - 1.
func IsTree(g *core.Graph) bool {
	return IsConnected(g) && g.Size() == g.Order()-1
}
