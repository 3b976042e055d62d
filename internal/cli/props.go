// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliques/props"
)

func (c *CLI) propsCommand() *cobra.Command {
	var (
		iterations int
		bound      int
	)
	cmd := &cobra.Command{
		Use:   "props <graph>",
		Short: "Report structural properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ParseGraph(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, "props")
			printKV(w, "order", num(g.Order()))
			printKV(w, "size", num(g.Size()))
			printKV(w, "triangles", num(len(props.Triangles(g))))
			printKV(w, "cycle", yesNo(props.IsCycle(g)))
			printKV(w, "path", yesNo(props.IsPath(g)))
			printKV(w, "cone", yesNo(props.IsCone(g)))
			printKV(w, "helly", yesNo(props.IsHelly(g)))
			printKV(w, "surface", yesNo(props.IsSurface(g)))
			printKV(w, "closed surface", yesNo(props.IsClosedSurface(g)))
			printKV(w, "local cutpoints", list(props.LocalCutpoints(g)))
			printKV(w, "triangle condition", yesNo(props.SatisfiesTriangleCondition(g)))
			if octa, face, ok := props.SpecialOctahedron(g); ok {
				printKV(w, "special octahedron", list(octa))
				printKV(w, "open face", list(face))
			}
			if iterations > 0 {
				eh, err := props.IsEventuallyHelly(g, iterations, bound)
				if err != nil {
					return err
				}
				printKV(w, "eventually helly", yesNo(eh))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&iterations, "helly-iterations", 0, "also test K^i(G) for Helly, i ≤ N")
	cmd.Flags().IntVar(&bound, "bound", 2000, "clique bound for --helly-iterations")

	return cmd
}
