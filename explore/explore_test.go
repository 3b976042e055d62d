// SPDX-License-Identifier: MIT

package explore_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/core"
	"github.com/katalvlaran/cliques/explore"
)

func orders(r explore.Report) []int {
	out := make([]int, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.Order
	}

	return out
}

// TestRun_Outcomes VERIFIES each way a run can end.
func TestRun_Outcomes(t *testing.T) {
	ctx := context.Background()
	octa := builder.MustBuild(builder.OctahedronGraph())
	star := builder.MustBuild(builder.Star(3))
	c4 := builder.MustBuild(builder.Cycle(4))

	t.Run("retracts at step 0", func(t *testing.T) {
		r, err := explore.Run(ctx, octa, explore.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, explore.OutcomeRetracts, r.Outcome)
		assert.Equal(t, "octahedron", r.Target)
		assert.Equal(t, []int{6}, orders(r))
		assert.Len(t, r.Witness.Rho, 6)
	})

	t.Run("pared star dismantles at once", func(t *testing.T) {
		r, err := explore.Run(ctx, star, explore.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, explore.OutcomeDismantled, r.Outcome)
		assert.Equal(t, []int{1}, orders(r))
	})

	t.Run("unpared star reaches K1 through K3", func(t *testing.T) {
		cfg := explore.DefaultConfig()
		cfg.Pare = false
		cfg.Targets = nil
		r, err := explore.Run(ctx, star, cfg)
		require.NoError(t, err)
		assert.Equal(t, explore.OutcomeDismantled, r.Outcome)
		assert.Equal(t, []int{4, 3, 1}, orders(r))
		assert.Equal(t, 1, r.Final.Order())
	})

	t.Run("C4 is a fixed point", func(t *testing.T) {
		cfg := explore.DefaultConfig()
		cfg.Iterations = 3
		r, err := explore.Run(ctx, c4, cfg)
		require.NoError(t, err)
		assert.Equal(t, explore.OutcomeBudget, r.Outcome)
		assert.Equal(t, []int{4, 4, 4, 4}, orders(r))
		assert.Equal(t, explore.Step{Index: 3, Order: 4, Size: 4}, r.Last())
	})

	t.Run("clockwork graph grows steadily", func(t *testing.T) {
		cw := builder.MustBuild(builder.Clockwork([]int{1, 1, 1}, [][]int{{1}, {0}, {0}}, 2, []int{1, 0}))
		cfg := explore.DefaultConfig()
		cfg.Targets = nil
		cfg.Iterations = 3
		r, err := explore.Run(ctx, cw, cfg)
		require.NoError(t, err)
		assert.Equal(t, explore.OutcomeBudget, r.Outcome)
		assert.Equal(t, []int{9, 11, 13, 15}, orders(r))
		assert.Equal(t, explore.Step{Index: 3, Order: 15, Size: 66}, r.Last())
	})

	t.Run("empty graph is not dismantled", func(t *testing.T) {
		r, err := explore.Run(ctx, core.NewGraph(), explore.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, explore.OutcomeEmpty, r.Outcome)
		assert.Equal(t, "empty", r.Outcome.String())
		assert.Equal(t, []int{0}, orders(r))
		assert.Zero(t, r.Final.Order())
	})

	t.Run("bound aborts", func(t *testing.T) {
		cfg := explore.DefaultConfig()
		cfg.Targets = nil
		cfg.Bound = 7
		r, err := explore.Run(ctx, octa, cfg)
		require.NoError(t, err)
		assert.Equal(t, explore.OutcomeAborted, r.Outcome)
		assert.Equal(t, []int{6}, orders(r))
	})
}

// TestRun_Errors VERIFIES nil input, invalid config and cancellation.
func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := explore.Run(ctx, nil, explore.DefaultConfig())
	assert.ErrorIs(t, err, explore.ErrGraphNil)

	cfg := explore.DefaultConfig()
	cfg.Targets = []string{"dodecagon-ish"}
	_, err = explore.Run(ctx, core.NewGraph(), cfg)
	assert.ErrorIs(t, err, explore.ErrInvalidConfig)

	cfg = explore.DefaultConfig()
	cfg.Iterations = -1
	assert.ErrorIs(t, cfg.Validate(), explore.ErrInvalidConfig)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = explore.Run(cancelled, builder.MustBuild(builder.Cycle(5)), explore.DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_Logging VERIFIES that steps are logged at debug level.
func TestRun_Logging(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	l.SetLevel(log.DebugLevel)

	cfg := explore.DefaultConfig()
	cfg.Iterations = 1
	_, err := explore.Run(context.Background(), builder.MustBuild(builder.Cycle(4)), cfg, explore.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "step")
	assert.Contains(t, buf.String(), "budget spent")
}

// TestClassify VERIFIES concurrent runs keep input order.
func TestClassify(t *testing.T) {
	graphs := []*core.Graph{
		builder.MustBuild(builder.OctahedronGraph()),
		builder.MustBuild(builder.Star(3)),
		builder.MustBuild(builder.Cycle(4)),
		builder.MustBuild(builder.Complete(5)),
	}
	cfg := explore.DefaultConfig()
	cfg.Iterations = 2
	cfg.Workers = 2
	reports, err := explore.Classify(context.Background(), graphs, cfg)
	require.NoError(t, err)
	require.Len(t, reports, 4)

	got := make([]explore.Outcome, len(reports))
	for i, r := range reports {
		got[i] = r.Outcome
	}
	assert.Equal(t, []explore.Outcome{
		explore.OutcomeRetracts,
		explore.OutcomeDismantled,
		explore.OutcomeBudget,
		explore.OutcomeDismantled,
	}, got)

	_, err = explore.Classify(context.Background(), []*core.Graph{graphs[0], nil}, cfg)
	assert.ErrorIs(t, err, explore.ErrGraphNil)
}

// TestLoadConfig VERIFIES TOML and YAML files over the defaults.
func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	cfg, err := explore.LoadConfig(write("a.toml", "iterations = 3\npare = false\ntargets = [\"cycle:4\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Iterations)
	assert.False(t, cfg.Pare)
	assert.Equal(t, []string{"cycle:4"}, cfg.Targets)
	assert.Equal(t, explore.DefaultBound, cfg.Bound)

	cfg, err = explore.LoadConfig(write("b.yaml", "bound: 50\nworkers: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Bound)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Pare)
	assert.Equal(t, []string{explore.DefaultTarget}, cfg.Targets)

	_, err = explore.LoadConfig(write("c.yml", "targets: [nope]\n"))
	assert.ErrorIs(t, err, explore.ErrInvalidConfig)

	_, err = explore.LoadConfig(write("d.json", "{}"))
	assert.ErrorIs(t, err, explore.ErrConfigFormat)

	_, err = explore.LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
