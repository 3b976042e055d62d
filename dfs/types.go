// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures DFS.
type Option func(*DFSOptions)

// DFSOptions holds traversal parameters and hooks.
type DFSOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit runs before exploring a vertex's neighbours.
	OnVisit func(id string) error

	// OnExit runs after all neighbours of a vertex have been explored.
	OnExit func(id string) error

	// MaxDepth < 0 means unlimited.
	MaxDepth int

	// FullTraversal restarts from every unvisited vertex (sorted order),
	// producing a DFS forest; the start ID is ignored.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, unlimited depth.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit sets the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits recursion depth; negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult collects the traversal.
type DFSResult struct {
	// Order is the pre-order visit sequence.
	Order []string
	// Depth is the tree depth of every visited vertex.
	Depth map[string]int
	// Parent links every non-root visited vertex to its tree parent.
	Parent map[string]string
	// Visited marks reached vertices.
	Visited map[string]bool
	// Roots lists the tree roots (one per component under FullTraversal).
	Roots []string
}
