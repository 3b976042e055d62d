// SPDX-License-Identifier: MIT

// Package dot renders graphs with Graphviz.
//
// ToDOT writes an undirected DOT description of a core.Graph, optionally
// highlighting a vertex subset (a retract, a dismantling survivor set) and
// laying the graph out with a chosen engine. Render and RenderSVG run the
// description through the embedded Graphviz from github.com/goccy/go-graphviz,
// so no dot binary is needed.
package dot
