// SPDX-License-Identifier: MIT

package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/cliques/catalog"
)

// ExampleParseExpr builds a 4-cycle plus an isolated vertex and prints its graph6 form.
func ExampleParseExpr() {
	g, err := catalog.ParseExpr("0-1-2-3-0, 4")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Order(), g.Size())

	c4, _ := catalog.ParseExpr("0-1-2-3-0")
	s, _ := catalog.Encode(c4)
	fmt.Println(s)

	// Output:
	// 5 4
	// Cl
}
