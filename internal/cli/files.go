// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliques/catalog"
	"github.com/katalvlaran/cliques/dot"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		output    string
		layout    string
		highlight []string
	)
	cmd := &cobra.Command{
		Use:   "render <graph>",
		Short: "Draw a graph with Graphviz (svg, png, jpg, dot)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ParseGraph(args[0])
			if err != nil {
				return err
			}
			opts := dot.Options{Layout: layout, Highlight: highlight}
			format, ok := dot.FormatFor(output)
			if !ok {
				return fmt.Errorf("render: unsupported output %q", output)
			}
			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(err, "render")
			}
			defer f.Close()

			if format == graphviz.XDOT {
				src, err := dot.ToDOT(g, opts)
				if err != nil {
					return err
				}
				_, err = f.WriteString(src)

				return errors.Wrap(err, "render")
			}
			if err = dot.Render(cmd.Context(), g, opts, format, f); err != nil {
				return err
			}
			c.Logger.Info("rendered", "path", output)

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "graph.svg", "output file; the extension picks the format")
	cmd.Flags().StringVar(&layout, "layout", "neato", "graphviz engine")
	cmd.Flags().StringSliceVar(&highlight, "highlight", nil, "vertices to fill")

	return cmd
}

func (c *CLI) extractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <catalog> <out> <index>...",
		Short: "Copy the graphs at 0-based positions of a catalog to a new one",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices := make([]int, 0, len(args)-2)
			for _, a := range args[2:] {
				i, err := strconv.Atoi(a)
				if err != nil || i < 0 {
					return fmt.Errorf("extract: bad index %q", a)
				}
				indices = append(indices, i)
			}
			n, err := catalog.Filter(args[0], args[1], indices)
			if err != nil {
				return err
			}
			c.Logger.Info("extracted", "graphs", n, "out", args[1])
			fmt.Fprintln(cmd.OutOrStdout(), n)

			return nil
		},
	}
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, Version)
		},
	}
}
