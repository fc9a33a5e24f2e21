// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// face_index.go — directed-edge → face lookup.
//
// Complexity:
//   • NewFaceIndex: O(E log E) for E directed edges.
//   • Face/Opposite: O(log E).

package polyhedron

import (
	"sort"

	"github.com/katalvlaran/polyhedra/key"
)

type faceEntry struct {
	edge key.Key
	face int
}

// FaceIndex maps each directed edge (prev → cur) of a polyhedron to the face
// that owns it. On a consistently oriented closed mesh every directed edge
// has exactly one owner, and its reverse belongs to the neighbouring face.
type FaceIndex struct {
	entries []faceEntry
}

// NewFaceIndex indexes every directed edge of p, including each face's
// closing edge.
func NewFaceIndex(p *Polyhedron) *FaceIndex {
	entries := make([]faceEntry, 0, p.directedEdgeCount())
	for fi, face := range p.Faces {
		if len(face) == 0 {
			continue
		}
		prev := face[len(face)-1]
		for _, cur := range face {
			entries = append(entries, faceEntry{edge: key.New2(prev, cur), face: fi})
			prev = cur
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].edge.Less(entries[j].edge) })
	return &FaceIndex{entries: entries}
}

// Face returns the face owning the directed edge v1 → v2.
func (x *FaceIndex) Face(v1, v2 int) (int, bool) {
	k := key.New2(v1, v2)
	i := sort.Search(len(x.entries), func(i int) bool { return !x.entries[i].edge.Less(k) })
	if i < len(x.entries) && x.entries[i].edge == k {
		return x.entries[i].face, true
	}
	return 0, false
}

// Opposite returns the face on the other side of edge v1 → v2, i.e. the owner
// of v2 → v1. On an open mesh a boundary edge reports false.
func (x *FaceIndex) Opposite(v1, v2 int) (int, bool) {
	return x.Face(v2, v1)
}

// Len returns the number of indexed directed edges.
func (x *FaceIndex) Len() int { return len(x.entries) }
