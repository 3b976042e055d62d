// SPDX-License-Identifier: MIT

package props_test

import (
	"fmt"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/props"
)

// ExampleIsHelly contrasts the octahedron with a wheel.
func ExampleIsHelly() {
	fmt.Println(props.IsHelly(builder.MustBuild(builder.OctahedronGraph())))
	fmt.Println(props.IsHelly(builder.MustBuild(builder.Wheel(6))))

	// Output:
	// false
	// true
}

// ExampleCoaffinations finds the antipodal map of the octahedron.
func ExampleCoaffinations() {
	for sigma := range props.Coaffinations(builder.MustBuild(builder.OctahedronGraph()), 2) {
		fmt.Println(sigma)
	}

	// Output:
	// {0:1,1:0,2:3,3:2,4:5,5:4}
}
