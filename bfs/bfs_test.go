// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliques/bfs"
	"github.com/katalvlaran/cliques/builder"
)

// TestBFS_Cycle VERIFIES depths, order and path reconstruction on C6.
func TestBFS_Cycle(t *testing.T) {
	g := builder.MustBuild(builder.Cycle(6))
	res, err := bfs.BFS(g, "0")
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "5", "2", "4", "3"}, res.Order)
	assert.Equal(t, 3, res.Depth["3"])
	path, err := res.PathTo("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, path)
}

// TestBFS_Errors VERIFIES sentinels, hooks and cancellation.
func TestBFS_Errors(t *testing.T) {
	g := builder.MustBuild(builder.Path(4))

	_, err := bfs.BFS(nil, "0")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.BFS(g, "x")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, "0", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "2" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, res.Order)
	_, err = res.PathTo("3")
	assert.Error(t, err)
}

// TestDistances VERIFIES all-pairs distances skip other components.
func TestDistances(t *testing.T) {
	g := builder.MustBuild(builder.Path(3), builder.Empty(4))
	d, err := bfs.Distances(g)
	require.NoError(t, err)
	assert.Equal(t, 2, d["0"]["2"])
	assert.Equal(t, 0, d["1"]["1"])
	_, ok := d["0"]["3"]
	assert.False(t, ok)
}
