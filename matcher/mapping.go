// SPDX-License-Identifier: MIT
// File: mapping.go
// Role: Mapping, a finite vertex-to-vertex map, and its algebra.

package matcher

import (
	"sort"
	"strings"
)

// Mapping maps vertex IDs of one graph to vertex IDs of another.
type Mapping map[string]string

// Clone returns an independent copy.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Domain returns the mapped keys in sorted order.
func (m Mapping) Domain() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// IsInjective reports whether no two keys share an image.
func (m Mapping) IsInjective() bool {
	seen := make(map[string]struct{}, len(m))
	for _, v := range m {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
	}

	return true
}

// Inverse returns the reverse map. ok is false when m is not injective.
func (m Mapping) Inverse() (inv Mapping, ok bool) {
	inv = make(Mapping, len(m))
	for k, v := range m {
		if _, dup := inv[v]; dup {
			return nil, false
		}
		inv[v] = k
	}

	return inv, true
}

// Compose returns m∘inner: x ↦ m[inner[x]] for every x whose image under
// inner lies in the domain of m.
func (m Mapping) Compose(inner Mapping) Mapping {
	out := make(Mapping, len(inner))
	for x, y := range inner {
		if z, ok := m[y]; ok {
			out[x] = z
		}
	}

	return out
}

// Key renders m canonically as "k1:v1,k2:v2" with sorted keys.
// Equal mappings have equal keys.
func (m Mapping) Key() string {
	var sb strings.Builder
	for i, k := range m.Domain() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte(':')
		sb.WriteString(m[k])
	}

	return sb.String()
}

// String is Key wrapped in braces.
func (m Mapping) String() string { return "{" + m.Key() + "}" }
