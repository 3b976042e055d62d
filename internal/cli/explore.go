// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliques/catalog"
	"github.com/katalvlaran/cliques/explore"
)

// exploreFlags are overrides applied on top of the config file.
type exploreFlags struct {
	iterations int
	bound      int
	noPare     bool
	targets    []string
	workers    int
}

func (f *exploreFlags) register(cmd *cobra.Command) {
	d := explore.DefaultConfig()
	cmd.Flags().IntVar(&f.iterations, "iterations", d.Iterations, "K steps after step 0")
	cmd.Flags().IntVar(&f.bound, "bound", d.Bound, "maximal-clique bound per step (-1 disables)")
	cmd.Flags().BoolVar(&f.noPare, "no-pare", false, "keep dominated vertices between steps")
	cmd.Flags().StringSliceVar(&f.targets, "target", d.Targets, "retraction targets (builder names)")
}

// config loads --config when given and applies changed flags over it.
func (c *CLI) config(cmd *cobra.Command, f *exploreFlags) (explore.Config, error) {
	cfg := explore.DefaultConfig()
	if c.configPath != "" {
		var err error
		if cfg, err = explore.LoadConfig(c.configPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("iterations") {
		cfg.Iterations = f.iterations
	}
	if flags.Changed("bound") {
		cfg.Bound = f.bound
	}
	if flags.Changed("no-pare") {
		cfg.Pare = !f.noPare
	}
	if flags.Changed("target") {
		cfg.Targets = f.targets
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}

	return cfg, cfg.Validate()
}

func (c *CLI) exploreCommand() *cobra.Command {
	var f exploreFlags
	cmd := &cobra.Command{
		Use:   "explore <graph>",
		Short: "Follow a graph through iterated clique graphs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ParseGraph(args[0])
			if err != nil {
				return err
			}
			cfg, err := c.config(cmd, &f)
			if err != nil {
				return err
			}
			r, err := explore.Run(cmd.Context(), g, cfg, explore.WithLogger(c.Logger))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, "explore")
			for _, s := range r.Steps {
				printKV(w, fmt.Sprintf("step %d", s.Index), fmt.Sprintf("order %s  size %s", num(s.Order), num(s.Size)))
			}
			printKV(w, "outcome", r.Outcome)
			if r.Outcome == explore.OutcomeRetracts {
				printKV(w, "target", r.Target)
				printKV(w, "ρ", r.Witness.Rho)
			}

			return nil
		},
	}
	f.register(cmd)

	return cmd
}

func (c *CLI) classifyCommand() *cobra.Command {
	var f exploreFlags
	cmd := &cobra.Command{
		Use:   "classify <catalog.g6[.gz]>",
		Short: "Run explore over every graph of a catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd, &f)
			if err != nil {
				return err
			}
			start := time.Now()
			graphs, err := catalog.Load(args[0])
			if err != nil {
				return err
			}
			c.Logger.Info("loaded catalog", "path", args[0], "graphs", len(graphs))

			reports, err := explore.Classify(cmd.Context(), graphs, cfg, explore.WithLogger(c.Logger))
			if err != nil {
				return err
			}
			counts := make(map[explore.Outcome]int)
			w := cmd.OutOrStdout()
			for i, r := range reports {
				counts[r.Outcome]++
				fmt.Fprintf(w, "%d\t%s\t%d\n", i, r.Outcome, len(r.Steps)-1)
			}
			c.Logger.Info("classified",
				"dismantled", counts[explore.OutcomeDismantled],
				"retracts", counts[explore.OutcomeRetracts],
				"aborted", counts[explore.OutcomeAborted],
				"budget", counts[explore.OutcomeBudget],
				"empty", counts[explore.OutcomeEmpty],
				"elapsed", time.Since(start).Round(time.Millisecond))

			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent runs (0 = GOMAXPROCS)")

	return cmd
}
