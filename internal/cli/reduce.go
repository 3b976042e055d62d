// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliques/clique"
	"github.com/katalvlaran/cliques/dominated"
)

func (c *CLI) cliqueCommand() *cobra.Command {
	var (
		bound    int
		homotopy bool
	)
	cmd := &cobra.Command{
		Use:   "clique <graph>",
		Short: "Build the clique graph K(G)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ParseGraph(args[0])
			if err != nil {
				return err
			}
			k, err := clique.Graph(g, bound)
			if homotopy && err == nil {
				k, err = clique.HomotopyGraph(g)
			}
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			title := "K(G)"
			if homotopy {
				title = "H(G)"
			}
			printTitle(w, title)
			printKV(w, "order", num(k.Order()))
			printKV(w, "size", num(k.Size()))
			printKV(w, "vertices", list(k.Vertices()))

			return nil
		},
	}
	cmd.Flags().IntVar(&bound, "bound", clique.NoBound, "abort when G has more maximal cliques (-1 disables)")
	cmd.Flags().BoolVar(&homotopy, "homotopy", false, "build the homotopy clique graph H(G) instead")

	return cmd
}

func (c *CLI) pareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pare <graph>",
		Short: "Remove dominated vertices until none remain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ParseGraph(args[0])
			if err != nil {
				return err
			}
			p := dominated.Pare(g)
			w := cmd.OutOrStdout()
			printTitle(w, "pare")
			printKV(w, "survivors", list(p.Vertices()))
			printKV(w, "order", num(p.Order()))
			printKV(w, "dismantlable", yesNo(p.Order() == 1))

			return nil
		},
	}
}

func (c *CLI) dismantleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dismantle <graph>",
		Short: "Show the order in which dominated vertices are removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ParseGraph(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, "dismantle")
			printKV(w, "removed", list(dominated.Dismantling(g)))
			printKV(w, "dismantlable", yesNo(dominated.IsDismantlable(g)))

			return nil
		},
	}
}

func (c *CLI) collapseCommand() *cobra.Command {
	var edges bool
	cmd := &cobra.Command{
		Use:   "collapse <graph>",
		Short: "Remove s-dismantlable vertices (or edges) until none remain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ParseGraph(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if edges {
				r := dominated.CollapseEdges(g)
				ids := make([]string, 0, r.Size())
				for _, e := range r.Edges() {
					ids = append(ids, e.String())
				}
				printTitle(w, "collapse --edges")
				printKV(w, "edges", list(ids))
				printKV(w, "size", num(r.Size()))

				return nil
			}
			r := dominated.Collapse(g)
			printTitle(w, "collapse")
			printKV(w, "survivors", list(r.Vertices()))
			printKV(w, "order", num(r.Order()))

			return nil
		},
	}
	cmd.Flags().BoolVar(&edges, "edges", false, "remove s-dismantlable edges instead of vertices")

	return cmd
}
