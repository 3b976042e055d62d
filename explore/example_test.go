// SPDX-License-Identifier: MIT

package explore_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/explore"
)

// ExampleRun follows the 5-cycle, whose clique graph is itself.
func ExampleRun() {
	cfg := explore.DefaultConfig()
	cfg.Iterations = 2
	r, err := explore.Run(context.Background(), builder.MustBuild(builder.Cycle(5)), cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.Outcome, len(r.Steps), r.Last().Order)

	// Output:
	// budget 3 5
}
