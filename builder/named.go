// SPDX-License-Identifier: MIT
// Package: cliques/builder
//
// named.go — textual graph names → Constructors.
//
// Grammar (case-insensitive):
//   tetrahedron | cube | octahedron | dodecahedron | icosahedron
//   <solid>+center                 cone over the solid
//   cycle:N | path:N | complete:N | empty:N | star:K | wheel:N
//   bipartite:M,N | grid:R,C | torus:R,C
//   circulant:N:J1,J2,...
//   random:N:P:SEED
//   clockwork:S1,...,Sk:L1/.../Lk:CROWN:P1,...  (Ls = comma list of links
//                                   of segment s, e.g. clockwork:1,1,1:1/0/0:2:1,0)
//   shorthands CN, PN, KN, WN (C5, P3, K4, W6)

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliques/core"
)

const methodByName = "ByName"

// ByName resolves a textual graph name into a Constructor.
//
// Errors:
//   - ErrUnknownName for an unrecognised family or malformed parameters.
func ByName(name string) (Constructor, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return nil, fmt.Errorf("%s: empty name: %w", methodByName, ErrUnknownName)
	}
	if solid, center, ok := parseSolid(s); ok {
		return PlatonicSolid(solid, center), nil
	}
	if c, ok := parseShorthand(s); ok {
		return c, nil
	}

	family, rest, _ := strings.Cut(s, ":")
	params := strings.Split(rest, ":")
	switch family {
	case "cycle", "path", "complete", "empty", "star", "wheel":
		n, err := atoi(name, rest)
		if err != nil {
			return nil, err
		}

		return sizedFamily(family, n), nil
	case "bipartite", "grid", "torus":
		sides, err := atoiList(name, rest)
		if err != nil {
			return nil, err
		}
		if len(sides) != 2 {
			return nil, fmt.Errorf("%s(%q): want two sides: %w", methodByName, name, ErrUnknownName)
		}
		switch family {
		case "grid":
			return Grid(sides[0], sides[1]), nil
		case "torus":
			return Torus(sides[0], sides[1]), nil
		}

		return CompleteBipartite(sides[0], sides[1]), nil
	case "circulant":
		if len(params) != 2 {
			return nil, fmt.Errorf("%s(%q): want circulant:N:J1,J2: %w", methodByName, name, ErrUnknownName)
		}
		n, err := atoi(name, params[0])
		if err != nil {
			return nil, err
		}
		jumps, err := atoiList(name, params[1])
		if err != nil {
			return nil, err
		}

		return Circulant(n, jumps), nil
	case "random":
		if len(params) != 3 {
			return nil, fmt.Errorf("%s(%q): want random:N:P:SEED: %w", methodByName, name, ErrUnknownName)
		}
		n, err := atoi(name, params[0])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(params[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s(%q): %v: %w", methodByName, name, err, ErrUnknownName)
		}
		seed, err := strconv.ParseInt(params[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s(%q): %v: %w", methodByName, name, err, ErrUnknownName)
		}

		return seeded(RandomSparse(n, p), seed), nil
	case "clockwork":
		return parseClockwork(name, params)
	}

	return nil, fmt.Errorf("%s(%q): %w", methodByName, name, ErrUnknownName)
}

// Named builds the graph ByName resolves to.
func Named(name string) (*core.Graph, error) {
	c, err := ByName(name)
	if err != nil {
		return nil, err
	}

	return BuildGraph(nil, c)
}

func parseSolid(s string) (PlatonicName, bool, bool) {
	base, center := strings.CutSuffix(s, "+center")
	for p := Tetrahedron; p <= Icosahedron; p++ {
		if p.String() == base {
			return p, center, true
		}
	}

	return 0, false, false
}

func parseShorthand(s string) (Constructor, bool) {
	if len(s) < 2 {
		return nil, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return nil, false
	}
	switch s[0] {
	case 'c':
		return Cycle(n), true
	case 'p':
		return Path(n), true
	case 'k':
		return Complete(n), true
	case 'w':
		return Wheel(n), true
	}

	return nil, false
}

func sizedFamily(family string, n int) Constructor {
	switch family {
	case "cycle":
		return Cycle(n)
	case "path":
		return Path(n)
	case "complete":
		return Complete(n)
	case "empty":
		return Empty(n)
	case "star":
		return Star(n)
	default:
		return Wheel(n)
	}
}

// seeded pins an RNG onto a single constructor regardless of BuildGraph options.
func seeded(c Constructor, seed int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		WithSeed(seed)(&cfg)

		return c(g, cfg)
	}
}

func parseClockwork(name string, params []string) (Constructor, error) {
	if len(params) != 4 {
		return nil, fmt.Errorf("%s(%q): want clockwork:SEGMENTS:LINKS:CROWN:PERM: %w", methodByName, name, ErrUnknownName)
	}
	segments, err := atoiList(name, params[0])
	if err != nil {
		return nil, err
	}
	rows := strings.Split(params[1], "/")
	links := make([][]int, len(rows))
	for i, row := range rows {
		if links[i], err = atoiList(name, row); err != nil {
			return nil, err
		}
	}
	crownSize, err := atoi(name, params[2])
	if err != nil {
		return nil, err
	}
	perm, err := atoiList(name, params[3])
	if err != nil {
		return nil, err
	}

	return Clockwork(segments, links, crownSize, perm), nil
}

func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s(%q): %v: %w", methodByName, name, err, ErrUnknownName)
	}

	return n, nil
}

func atoiList(name, s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := atoi(name, p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}
