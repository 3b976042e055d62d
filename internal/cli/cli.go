// SPDX-License-Identifier: MIT

// Package cli implements the cliques command-line interface.
//
// Every command takes graphs as arguments in one of three forms: a builder
// name ("octahedron", "cycle:5", "circulant:7:1,2"), a graph6 string
// ("g6:Cl") or an edge expression ("expr:0-1-2-3-0, 4"). Results go to the
// command's output; progress and timing go to the logger on stderr.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliques/builder"
	"github.com/katalvlaran/cliques/catalog"
	"github.com/katalvlaran/cliques/core"
)

const appName = "cliques"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a CLI logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Clique graphs, dismantlability and retractions",
		Long:         `cliques computes clique graphs, removes dominated vertices, searches for retractions and follows graphs through iterated clique graphs.`,
		Version:      Version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "explore config file (.toml, .yaml)")

	root.AddCommand(c.cliqueCommand())
	root.AddCommand(c.pareCommand())
	root.AddCommand(c.dismantleCommand())
	root.AddCommand(c.collapseCommand())
	root.AddCommand(c.retractCommand())
	root.AddCommand(c.propsCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.classifyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.extractCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// ParseGraph resolves a graph argument.
func ParseGraph(arg string) (*core.Graph, error) {
	switch {
	case strings.HasPrefix(arg, "g6:"):
		return catalog.Decode(strings.TrimPrefix(arg, "g6:"))
	case strings.HasPrefix(arg, "expr:"):
		return catalog.ParseExpr(strings.TrimPrefix(arg, "expr:"))
	}
	g, err := builder.Named(arg)
	if err != nil {
		return nil, fmt.Errorf("graph %q: %w", arg, err)
	}

	return g, nil
}

func parseGraphs(args []string) ([]*core.Graph, error) {
	out := make([]*core.Graph, len(args))
	for i, a := range args {
		g, err := ParseGraph(a)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}

	return out, nil
}
