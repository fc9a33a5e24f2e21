// SPDX-License-Identifier: MIT
// Package: polyhedra/flag
//
// resolve.go — collapse keyed declarations into an indexed mesh.
//
// Determinism:
//   • Vertex order is key order; equal keys keep declaration order (stable
//     sort) and the first declaration wins.
//   • Map faces are emitted in face-key order, explicit faces in declaration
//     order, map faces first.

package flag

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/key"
)

const methodResolve = "Resolve"

// table is the sorted, deduplicated vertex table.
type table struct {
	keys   []key.Key
	coords []r3.Vec
}

// find returns the index of k by binary search.
func (t *table) find(k key.Key) (int, bool) {
	i := sort.Search(len(t.keys), func(i int) bool { return !t.keys[i].Less(k) })
	if i < len(t.keys) && t.keys[i] == k {
		return i, true
	}
	return 0, false
}

// Resolve consumes the Flag and returns the indexed mesh.
//
// Errors:
//   - ErrKeyNotFound if any face references an undeclared vertex key.
//   - ErrShortFace for an explicit face with fewer than 3 keys.
//   - ErrResolved if called twice.
//
// Unclosable map faces, and map chains closing on fewer than 3 vertices, are
// not errors: see Mesh.Warnings.
//
// Complexity:
//   • Time: O(N log N + M log M), N vertex declarations, M map edges plus
//     explicit face keys (each resolved by binary search).
//   • Space: O(N + M).
func (f *Flag) Resolve() (Mesh, error) {
	if f.resolved {
		return Mesh{}, fmt.Errorf("%s: %w", methodResolve, ErrResolved)
	}
	defer f.reset()

	// Pass 1: vertices.
	t := f.buildTable()
	faces := make([][]int, 0, len(f.faces)+len(f.edges)/3)

	// Pass 2: map faces, then explicit faces.
	mapped, warnings, err := f.resolveMapFaces(t)
	if err != nil {
		return Mesh{}, err
	}
	faces = append(faces, mapped...)

	for i, keys := range f.faces {
		if len(keys) < 3 {
			return Mesh{}, fmt.Errorf("%s: explicit face %d: %w", methodResolve, i, ErrShortFace)
		}
		face := make([]int, len(keys))
		for j, k := range keys {
			idx, ok := t.find(k)
			if !ok {
				return Mesh{}, fmt.Errorf("%s: explicit face %d: %v: %w", methodResolve, i, k, ErrKeyNotFound)
			}
			face[j] = idx
		}
		faces = append(faces, face)
	}

	return Mesh{Vertices: t.coords, Faces: faces, Warnings: warnings}, nil
}

// buildTable sorts the vertex declarations and keeps the first of every key.
func (f *Flag) buildTable() *table {
	sort.SliceStable(f.verts, func(i, j int) bool { return f.verts[i].key.Less(f.verts[j].key) })

	t := &table{
		keys:   make([]key.Key, 0, len(f.verts)),
		coords: make([]r3.Vec, 0, len(f.verts)),
	}
	for i, d := range f.verts {
		if i > 0 && f.verts[i-1].key == d.key {
			continue
		}
		t.keys = append(t.keys, d.key)
		t.coords = append(t.coords, d.pos)
	}
	return t
}

// resolveMapFaces walks every face-map group into an index cycle.
func (f *Flag) resolveMapFaces(t *table) ([][]int, []Warning, error) {
	if len(f.edges) == 0 {
		return nil, nil, nil
	}
	edges := f.edges
	sort.SliceStable(edges, func(i, j int) bool {
		if c := key.Compare(edges[i].face, edges[j].face); c != 0 {
			return c < 0
		}
		return edges[i].from.Less(edges[j].from)
	})

	var (
		faces    [][]int
		warnings []Warning
	)
	// Edges of one face are contiguous after the sort.
	for lo := 0; lo < len(edges); {
		hi := lo + 1
		for hi < len(edges) && edges[hi].face == edges[lo].face {
			hi++
		}
		face, w, err := walk(t, edges[lo:hi])
		if err != nil {
			return nil, nil, err
		}
		if w != nil {
			warnings = append(warnings, *w)
		}
		faces = append(faces, face)
		lo = hi
	}
	return faces, warnings, nil
}

// walk follows one group (all edges of a single face, sorted by from) from the
// first entry's to key until the chain returns to it.
func walk(t *table, group []mapEdge) ([]int, *Warning, error) {
	faceKey := group[0].face
	start := group[0].to
	state := start
	face := make([]int, 0, len(group))

	for steps := 0; ; steps++ {
		if steps >= MaxFaceSteps {
			return placeholder(face), &Warning{Face: faceKey, Steps: steps, Reason: "chain did not close"}, nil
		}
		idx, ok := t.find(state)
		if !ok {
			return nil, nil, fmt.Errorf("%s: map face %v: %v: %w", methodResolve, faceKey, state, ErrKeyNotFound)
		}
		face = append(face, idx)

		next, ok := nextOf(group, state)
		if !ok {
			return placeholder(face), &Warning{Face: faceKey, Steps: steps + 1, Reason: "chain dead-ends at " + state.String()}, nil
		}
		if next == start {
			if len(face) < 3 {
				return placeholder(face), &Warning{Face: faceKey, Steps: len(face), Reason: "chain closed with fewer than 3 vertices"}, nil
			}
			return face, nil, nil
		}
		state = next
	}
}

// nextOf finds the to key of the edge leaving from within a from-sorted group.
func nextOf(group []mapEdge, from key.Key) (key.Key, bool) {
	i := sort.Search(len(group), func(i int) bool { return !group[i].from.Less(from) })
	if i < len(group) && group[i].from == from {
		return group[i].to, true
	}
	return key.Key{}, false
}

// placeholder keeps the first three collected indices, padding with the first.
// Every index in it is valid; collected is never empty.
func placeholder(collected []int) []int {
	out := make([]int, 3)
	for i := range out {
		if i < len(collected) {
			out[i] = collected[i]
		} else {
			out[i] = collected[0]
		}
	}
	return out
}

func (f *Flag) reset() {
	f.verts, f.edges, f.faces = nil, nil, nil
	f.resolved = true
}
