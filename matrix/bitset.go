// SPDX-License-Identifier: MIT
// File: bitset.go
// Role: Fixed-capacity bitset over row indices.

package matrix

import "math/bits"

const wordBits = 64

// Bitset is a fixed-capacity set of small non-negative integers.
// The zero value is an empty set of capacity 0; use NewBitset.
type Bitset []uint64

// NewBitset returns an empty set able to hold 0..n-1.
func NewBitset(n int) Bitset {
	return make(Bitset, (n+wordBits-1)/wordBits)
}

// Set adds i.
func (b Bitset) Set(i int) { b[i/wordBits] |= 1 << (uint(i) % wordBits) }

// Clear removes i.
func (b Bitset) Clear(i int) { b[i/wordBits] &^= 1 << (uint(i) % wordBits) }

// Has reports whether i is a member.
func (b Bitset) Has(i int) bool {
	return b[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Count returns the number of members.
func (b Bitset) Count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}

	return n
}

// IsEmpty reports whether the set has no members.
func (b Bitset) IsEmpty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (b Bitset) Clone() Bitset {
	out := make(Bitset, len(b))
	copy(out, b)

	return out
}

// SubsetOf reports whether every member of b is a member of o.
// Both sets must have the same capacity.
func (b Bitset) SubsetOf(o Bitset) bool {
	for i, w := range b {
		if w&^o[i] != 0 {
			return false
		}
	}

	return true
}

// Intersects reports whether b ∩ o is non-empty.
func (b Bitset) Intersects(o Bitset) bool {
	for i, w := range b {
		if w&o[i] != 0 {
			return true
		}
	}

	return false
}

// Equal reports set equality.
func (b Bitset) Equal(o Bitset) bool {
	if len(b) != len(o) {
		return false
	}
	for i, w := range b {
		if w != o[i] {
			return false
		}
	}

	return true
}

// And returns b ∩ o as a new set.
func (b Bitset) And(o Bitset) Bitset {
	out := make(Bitset, len(b))
	for i, w := range b {
		out[i] = w & o[i]
	}

	return out
}

// AndNot returns b \ o as a new set.
func (b Bitset) AndNot(o Bitset) Bitset {
	out := make(Bitset, len(b))
	for i, w := range b {
		out[i] = w &^ o[i]
	}

	return out
}

// InPlaceAnd sets b to b ∩ o.
func (b Bitset) InPlaceAnd(o Bitset) {
	for i := range b {
		b[i] &= o[i]
	}
}

// Next returns the smallest member >= i, or -1.
func (b Bitset) Next(i int) int {
	if i < 0 {
		i = 0
	}
	wi := i / wordBits
	if wi >= len(b) {
		return -1
	}
	w := b[wi] >> (uint(i) % wordBits)
	if w != 0 {
		return i + bits.TrailingZeros64(w)
	}
	for wi++; wi < len(b); wi++ {
		if b[wi] != 0 {
			return wi*wordBits + bits.TrailingZeros64(b[wi])
		}
	}

	return -1
}

// Indices returns the members in ascending order.
func (b Bitset) Indices() []int {
	out := make([]int, 0, b.Count())
	for i := b.Next(0); i >= 0; i = b.Next(i + 1) {
		out = append(out, i)
	}

	return out
}
