// SPDX-License-Identifier: MIT

// Package catalog reads and writes graph collections.
//
// What
//
//   - Decode and Encode convert between core.Graph and graph6 strings. A
//     decoded graph has vertices "0".."n-1"; Encode orders vertices
//     numerically when every ID is an integer and lexicographically
//     otherwise.
//   - Open, Create, Read, Load and Write handle one-graph-per-line graph6
//     files, gzip-compressed when the name ends in ".gz".
//   - Filter copies the lines at selected 0-based positions from one catalog
//     to another.
//   - ParseExpr builds a graph from an edge expression such as
//     "0-1-2-3-0, 4": runs of vertices joined by "-" add a path, runs are
//     separated by ",", and a lone vertex adds an isolated vertex.
//   - FromGAPAdjacency builds a graph from 1-based adjacency lists.
//
// Errors at file boundaries carry the path and line via github.com/pkg/errors
// and still match the package sentinels with errors.Is.
package catalog
