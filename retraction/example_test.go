// SPDX-License-Identifier: MIT

package retraction_test

import (
	"fmt"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/retraction"
)

// ExampleFind retracts a path onto one of its edges.
func ExampleFind() {
	p3 := builder.MustBuild(builder.Path(3))
	p2 := builder.MustBuild(builder.Path(2))

	r, ok, err := retraction.Find(p3, p2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ok, r.Rho, r.Iota)

	// Output:
	// true {0:0,1:1,2:0} {0:0,1:1}
}

// ExampleRetractsTo shows that the octahedron does not retract onto its equator.
func ExampleRetractsTo() {
	toSquare := retraction.RetractsTo(builder.MustBuild(builder.Cycle(4)))
	fmt.Println(toSquare(builder.MustBuild(builder.OctahedronGraph())))
	fmt.Println(toSquare(builder.MustBuild(builder.CompleteBipartite(3, 3))))

	// Output:
	// false
	// true
}
