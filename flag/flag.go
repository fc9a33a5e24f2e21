// SPDX-License-Identifier: MIT
// Package: polyhedra/flag
//
// flag.go — the declaration side of the builder.

package flag

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/key"
)

// MaxFaceSteps bounds the walk of a single map face. A chain still open after
// this many steps is abandoned and degraded to a placeholder face.
const MaxFaceSteps = 30

// vertexDecl is one AddVertex call.
type vertexDecl struct {
	key key.Key
	pos r3.Vec
}

// mapEdge is one directed step of a map face: face, arriving at from, goes to.
type mapEdge struct {
	face key.Key
	from key.Key
	to   key.Key
}

// Flag accumulates keyed vertex and face declarations for one operator
// invocation. The zero value is ready to use. A Flag is consumed by Resolve.
type Flag struct {
	verts    []vertexDecl
	edges    []mapEdge
	faces    [][]key.Key
	resolved bool
}

// New returns an empty Flag with room for the given number of vertex declarations.
func New(sizeHint int) *Flag {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Flag{verts: make([]vertexDecl, 0, sizeHint)}
}

// AddVertex declares vertex k at p. Declaring the same key more than once is
// expected (shared edges and corners are visited from every adjacent face);
// no uniqueness check happens here.
func (f *Flag) AddVertex(k key.Key, p r3.Vec) {
	f.verts = append(f.verts, vertexDecl{key: k, pos: p})
}

// AddVertices declares every vertex of an existing mesh under key.New1(i).
// Vertices never referenced by a face still survive Resolve.
func (f *Flag) AddVertices(ps []r3.Vec) {
	for i, p := range ps {
		f.AddVertex(key.New1(i), p)
	}
}

// AddFace declares a complete face by its key sequence. The slice is copied.
func (f *Flag) AddFace(keys ...key.Key) {
	face := make([]key.Key, len(keys))
	copy(face, keys)
	f.faces = append(f.faces, face)
}

// AddFaceMap declares one directed boundary step of face: arriving at from,
// the boundary continues to to. Calls sharing a face key accumulate the
// whole boundary.
func (f *Flag) AddFaceMap(face, from, to key.Key) {
	f.edges = append(f.edges, mapEdge{face: face, from: from, to: to})
}

// VertexDecls returns the number of AddVertex declarations so far (duplicates included).
func (f *Flag) VertexDecls() int { return len(f.verts) }

// FaceDecls returns the number of explicit faces and map edges declared so far.
func (f *Flag) FaceDecls() (explicit, mapEdges int) { return len(f.faces), len(f.edges) }

// Warning reports a map face that could not be closed and was replaced by a
// placeholder.
type Warning struct {
	Face   key.Key // face key of the abandoned chain
	Steps  int     // vertices visited before giving up
	Reason string
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return fmt.Sprintf("face %v degenerated after %d steps: %s", w.Face, w.Steps, w.Reason)
}

// Mesh is the resolved output of a Flag.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][]int
	Warnings []Warning
}

// Offset returns a copy of m whose face indices are shifted by n. Vertices
// and warnings are shared with m.
func (m Mesh) Offset(n int) Mesh {
	faces := make([][]int, len(m.Faces))
	for i, face := range m.Faces {
		shifted := make([]int, len(face))
		for j, v := range face {
			shifted[j] = v + n
		}
		faces[i] = shifted
	}
	return Mesh{Vertices: m.Vertices, Faces: faces, Warnings: m.Warnings}
}
