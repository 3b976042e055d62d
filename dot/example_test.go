// SPDX-License-Identifier: MIT

package dot_test

import (
	"fmt"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/dot"
)

func ExampleToDOT() {
	src, _ := dot.ToDOT(builder.MustBuild(builder.Complete(2)), dot.Options{Layout: "circo"})
	fmt.Print(src)

	// Output:
	// graph "G" {
	//   layout="circo";
	//   node [shape=circle, fontsize=12];
	//   "0";
	//   "1";
	//   "0" -- "1";
	// }
}
