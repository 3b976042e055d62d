// SPDX-License-Identifier: MIT

package retraction

import (
	"context"
	"fmt"
)

// DefaultAutomorphismLimit caps each automorphism list used for pruning.
// Every explored seed records up to limit² equivalent seeds.
const DefaultAutomorphismLimit = 128

// DefaultAutomorphismBudget caps the candidate tests spent listing each of
// Aut(small) and Aut(large).
const DefaultAutomorphismBudget = 1 << 16

// Option configures a Search.
type Option func(*Options)

// Options holds the knobs of a Search.
type Options struct {
	// Ctx is checked once per stack step and polled by every enumeration.
	Ctx context.Context

	// SymmetryPruning skips seeds equivalent to an explored one.
	SymmetryPruning bool

	// AutomorphismLimit caps Aut(small) and Aut(large) during pruning.
	AutomorphismLimit int

	// AutomorphismBudget caps the embedder steps spent on each list.
	AutomorphismBudget int

	err error
}

// DefaultOptions returns a background context with pruning on.
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		SymmetryPruning:    true,
		AutomorphismLimit:  DefaultAutomorphismLimit,
		AutomorphismBudget: DefaultAutomorphismBudget,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSymmetryPruning turns seed pruning on or off.
func WithSymmetryPruning(on bool) Option {
	return func(o *Options) { o.SymmetryPruning = on }
}

// WithAutomorphismLimit caps the automorphism lists. n must be at least 1.
func WithAutomorphismLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: AutomorphismLimit must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.AutomorphismLimit = n
	}
}

// WithAutomorphismBudget caps the candidate tests spent listing each
// automorphism group for pruning. n must be at least 1.
func WithAutomorphismBudget(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: AutomorphismBudget must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.AutomorphismBudget = n
	}
}
