// SPDX-License-Identifier: MIT

package retraction

import (
	"github.com/katalvlaran/cliques/core"
)

// Find returns the first retraction of large onto small. A missing
// retraction is reported as (Retraction{}, false, nil). Symmetry pruning
// never changes the answer; to list every witness instead, range over
// Search.All with WithSymmetryPruning(false).
//
// Errors:
//   - everything New returns.
//   - the context error when WithContext is cancelled mid-search.
func Find(large, small *core.Graph, opts ...Option) (Retraction, bool, error) {
	s, err := New(large, small, opts...)
	if err != nil {
		return Retraction{}, false, err
	}
	for r := range s.All() {
		return r, true, nil
	}

	return Retraction{}, false, s.Err()
}

// RetractsTo returns a predicate reporting whether its argument retracts
// onto small. The predicate panics on malformed input (nil graphs, an
// empty small, or small larger than the argument).
func RetractsTo(small *core.Graph, opts ...Option) func(large *core.Graph) bool {
	return func(large *core.Graph) bool {
		_, ok, err := Find(large, small, opts...)
		if err != nil {
			panic(err)
		}

		return ok
	}
}
