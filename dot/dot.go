// SPDX-License-Identifier: MIT
// File: dot.go
// Role: DOT text generation and Graphviz rendering.

package dot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/cliques/core"
)

// ErrGraphNil is returned when a nil graph is rendered.
var ErrGraphNil = errors.New("dot: graph is nil")

// Options configures the DOT description.
type Options struct {
	// Name is the graph name; empty means "G".
	Name string
	// Layout is the Graphviz engine ("neato", "circo", "dot", ...); empty means "neato".
	Layout string
	// Highlight lists vertices drawn filled.
	Highlight []string
}

func (o Options) layout() string {
	if o.Layout == "" {
		return string(graphviz.NEATO)
	}

	return o.Layout
}

// ToDOT returns the undirected DOT description of g. Vertices and edges are
// written in sorted order, so equal graphs give equal text.
func ToDOT(g *core.Graph, opts Options) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	name := opts.Name
	if name == "" {
		name = "G"
	}
	layout := opts.layout()
	hl := make(map[string]bool, len(opts.Highlight))
	for _, v := range opts.Highlight {
		hl[v] = true
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %q {\n", name)
	fmt.Fprintf(&buf, "  layout=%q;\n", layout)
	buf.WriteString("  node [shape=circle, fontsize=12];\n")
	for _, v := range g.Vertices() {
		if hl[v] {
			fmt.Fprintf(&buf, "  %q [style=filled, fillcolor=lightblue];\n", v)
			continue
		}
		fmt.Fprintf(&buf, "  %q;\n", v)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
	}
	buf.WriteString("}\n")

	return buf.String(), nil
}

// Render draws g in the given format (graphviz.SVG, graphviz.PNG, ...) to w.
func Render(ctx context.Context, g *core.Graph, opts Options, format graphviz.Format, w io.Writer) error {
	src, err := ToDOT(g, opts)
	if err != nil {
		return err
	}
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(opts.layout()))

	parsed, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	if err = gv.Render(ctx, parsed, format, w); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// RenderSVG is Render to SVG bytes.
func RenderSVG(ctx context.Context, g *core.Graph, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(ctx, g, opts, graphviz.SVG, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FormatFor maps a file extension to a Graphviz output format.
func FormatFor(path string) (graphviz.Format, bool) {
	switch {
	case strings.HasSuffix(path, ".svg"):
		return graphviz.SVG, true
	case strings.HasSuffix(path, ".png"):
		return graphviz.PNG, true
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".jpeg"):
		return graphviz.JPG, true
	case strings.HasSuffix(path, ".dot"), strings.HasSuffix(path, ".gv"):
		return graphviz.XDOT, true
	}

	return "", false
}
