// SPDX-License-Identifier: MIT

package retraction

import "errors"

var (
	// ErrGraphNil is returned when either graph is nil.
	ErrGraphNil = errors.New("retraction: graph is nil")

	// ErrSmallLarger is returned when the target has more vertices than the source.
	ErrSmallLarger = errors.New("retraction: small graph has more vertices than large graph")

	// ErrEmptyTarget is returned when the target graph has no vertices.
	ErrEmptyTarget = errors.New("retraction: small graph is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("retraction: invalid option supplied")

	// ErrNotRetraction is returned by Retraction.Verify.
	ErrNotRetraction = errors.New("retraction: not a retraction")
)
