// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliques/retraction"
)

func (c *CLI) retractCommand() *cobra.Command {
	var (
		all     bool
		noPrune bool
		limit   int
		budget  int
	)
	cmd := &cobra.Command{
		Use:   "retract <large> <small>",
		Short: "Search for retractions of large onto an induced copy of small",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gs, err := parseGraphs(args)
			if err != nil {
				return err
			}
			s, err := retraction.New(gs[0], gs[1],
				retraction.WithContext(cmd.Context()),
				retraction.WithSymmetryPruning(!noPrune),
				retraction.WithAutomorphismLimit(limit),
				retraction.WithAutomorphismBudget(budget),
			)
			if err != nil {
				return err
			}

			start := time.Now()
			w := cmd.OutOrStdout()
			printTitle(w, "retract")
			found := 0
			for r := range s.All() {
				found++
				printKV(w, fmt.Sprintf("ρ #%d", found), r.Rho)
				printKV(w, "ι", r.Iota)
				if !all {
					break
				}
			}
			if err = s.Err(); err != nil {
				return err
			}
			st := s.Stats()
			printKV(w, "retracts", yesNo(found > 0))
			c.Logger.Debug("search done",
				"seeds", st.SeedsTried, "pruned", st.SeedsPruned,
				"frames", st.FramesPushed, "aut_exhausted", st.SymmetryExhausted, "elapsed", time.Since(start).Round(time.Millisecond))

			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every retraction instead of the first (one seed per symmetry class unless --no-prune)")
	cmd.Flags().BoolVar(&noPrune, "no-prune", false, "disable automorphism pruning of seeds")
	cmd.Flags().IntVar(&limit, "aut-limit", retraction.DefaultAutomorphismLimit, "automorphisms kept per side for pruning")
	cmd.Flags().IntVar(&budget, "aut-budget", retraction.DefaultAutomorphismBudget, "embedder steps spent listing automorphisms per side")

	return cmd
}
