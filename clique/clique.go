// SPDX-License-Identifier: MIT
// File: clique.go
// Role: Clique value type: immutable sorted vertex set with content equality.

package clique

import (
	"sort"
	"strings"
)

// Clique is an immutable set of vertex IDs. The zero value is the empty set.
type Clique struct {
	members []string // sorted, unique
	key     string
}

// New returns the clique with the given members; duplicates collapse.
func New(members ...string) Clique {
	ms := append([]string(nil), members...)
	sort.Strings(ms)
	out := ms[:0]
	for i, m := range ms {
		if i > 0 && m == ms[i-1] {
			continue
		}
		out = append(out, m)
	}

	return fromSorted(out)
}

// keyEscaper backslash-escapes the key delimiters inside member IDs, so
// distinct cliques always get distinct keys.
var keyEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, "{", `\{`, "}", `\}`)

// fromSorted wraps an already sorted, duplicate-free slice without copying.
func fromSorted(ms []string) Clique {
	var b strings.Builder
	b.WriteByte('{')
	for i, m := range ms {
		if i > 0 {
			b.WriteByte(',')
		}
		keyEscaper.WriteString(&b, m) //nolint:errcheck // strings.Builder never fails
	}
	b.WriteByte('}')

	return Clique{members: ms, key: b.String()}
}

// Members returns a copy of the sorted member list.
func (c Clique) Members() []string {
	return append([]string(nil), c.members...)
}

// Len returns the number of members.
func (c Clique) Len() int { return len(c.members) }

// Key returns the canonical textual form "{a,b,c}". A backslash, comma or
// brace inside a member ID is written with a leading backslash, so Key is
// injective: "{a,b\,c}" is the clique of "a" and "b,c".
func (c Clique) Key() string {
	if c.key == "" {
		return "{}"
	}

	return c.key
}

// String implements fmt.Stringer.
func (c Clique) String() string { return c.Key() }

// Contains reports membership.
func (c Clique) Contains(v string) bool {
	i := sort.SearchStrings(c.members, v)

	return i < len(c.members) && c.members[i] == v
}

// Equal reports set equality.
func (c Clique) Equal(o Clique) bool {
	if len(c.members) != len(o.members) {
		return false
	}
	for i := range c.members {
		if c.members[i] != o.members[i] {
			return false
		}
	}

	return true
}

// Intersection returns the sorted common members.
func (c Clique) Intersection(o Clique) []string {
	var out []string
	i, j := 0, 0
	for i < len(c.members) && j < len(o.members) {
		switch {
		case c.members[i] < o.members[j]:
			i++
		case c.members[i] > o.members[j]:
			j++
		default:
			out = append(out, c.members[i])
			i++
			j++
		}
	}

	return out
}

// Intersects reports whether the two cliques share a member.
func (c Clique) Intersects(o Clique) bool {
	i, j := 0, 0
	for i < len(c.members) && j < len(o.members) {
		switch {
		case c.members[i] < o.members[j]:
			i++
		case c.members[i] > o.members[j]:
			j++
		default:
			return true
		}
	}

	return false
}
