// SPDX-License-Identifier: MIT
// Package: polyhedra/key
//
// key.go — the Key type, constructors and total ordering.

package key

import (
	"fmt"
	"strings"
)

// Slots is the fixed width of a Key.
const Slots = 4

// Key names a symbolic vertex or face. Slot value 0 means "unused";
// any other value is the encoded component plus one.
type Key [Slots]uint32

// Component is any value that may occupy a key slot: plain indices
// (int, uint32) and operator tags.
type Component interface {
	~int | ~uint32
}

// New1 returns the single-slot key of a.
func New1[A Component](a A) Key {
	return Key{uint32(a) + 1}
}

// New2 returns the two-slot key (a, b). The order of a and b is kept as
// given; use Edge for an undirected pair.
func New2[A, B Component](a A, b B) Key {
	return Key{uint32(a) + 1, uint32(b) + 1}
}

// New3 returns the three-slot key (a, b, c).
func New3[A, B, C Component](a A, b B, c C) Key {
	return Key{uint32(a) + 1, uint32(b) + 1, uint32(c) + 1}
}

// New4 returns the four-slot key (a, b, c, d).
func New4[A, B, C, D Component](a A, b B, c C, d D) Key {
	return Key{uint32(a) + 1, uint32(b) + 1, uint32(c) + 1, uint32(d) + 1}
}

// Edge returns the canonical key of the undirected edge {a, b}:
// Edge(a, b) == Edge(b, a).
func Edge(a, b int) Key {
	if b < a {
		a, b = b, a
	}
	return New2(a, b)
}

// FaceEdge returns the canonical key of edge {a, b} as seen from face f:
// FaceEdge(f, a, b) == FaceEdge(f, b, a).
func FaceEdge(f, a, b int) Key {
	if b < a {
		a, b = b, a
	}
	return New3(f, a, b)
}

// Compare orders keys lexicographically by slot.
// It returns -1 if a < b, 0 if a == b and +1 if a > b.
func Compare(a, b Key) int {
	for i := 0; i < Slots; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool { return Compare(k, o) < 0 }

// IsZero reports whether no slot of k is used.
func (k Key) IsZero() bool { return k == Key{} }

// Len returns the number of leading used slots.
func (k Key) Len() int {
	n := 0
	for n < Slots && k[n] != 0 {
		n++
	}
	return n
}

// String renders the decoded components, printing tags by their letter:
// New2(TagKis, 3) → "(k',3)".
func (k Key) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < k.Len(); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		v := k[i] - 1
		if t := Tag(v); t.IsTag() {
			sb.WriteString(t.String())
			continue
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte(')')
	return sb.String()
}
