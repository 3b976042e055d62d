// SPDX-License-Identifier: MIT

package clique_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/clique"
)

// ExampleGraph computes K of the 4-cycle and shows the abort bound.
func ExampleGraph() {
	c4 := builder.MustBuild(builder.Cycle(4))

	k, err := clique.Graph(c4, clique.NoBound)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(k.Vertices())
	fmt.Println(k.Size())

	_, err = clique.Graph(c4, 3)
	fmt.Println(errors.Is(err, clique.ErrBoundExceeded))

	// Output:
	// [{0,1} {0,3} {1,2} {2,3}]
	// 4
	// true
}
