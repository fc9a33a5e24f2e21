// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_quinto.go — Quinto(p).
//
// Complexity:
//   • Time: O(C log C); one midpoint, one inner point and one pentagon per corner.
//   • Space: O(C).

package conway

import (
	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/vec"
)

// Quinto surrounds every face with one pentagon per corner. Per edge it adds
// the midpoint (shared by both faces) and, per face, an inner point halfway
// between that midpoint and the face center; the inner points also form a
// copy of the original face.
func Quinto(p *polyhedron.Polyhedron, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodQuinto, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	vs := p.Vertices

	f := flag.New(len(vs) + 3*len(p.Faces))
	for fi, face := range p.Faces {
		center := p.FaceCenter(face)
		inner := make([]key.Key, 0, len(face))

		v1, v2 := face[len(face)-2], face[len(face)-1]
		for _, v3 := range face {
			t12, ti12 := key.Edge(v1, v2), key.FaceEdge(fi, v1, v2)
			t23, ti23 := key.Edge(v2, v3), key.FaceEdge(fi, v2, v3)

			mid := vec.Midpoint(vs[v1], vs[v2])
			f.AddVertex(t12, mid)
			f.AddVertex(ti12, vec.Midpoint(mid, center))
			f.AddVertex(key.New1(v2), vs[v2])

			f.AddFace(ti12, t12, key.New1(v2), t23, ti23)
			inner = append(inner, ti12)

			v1, v2 = v2, v3
		}
		f.AddFace(inner...)
	}
	return build(MethodQuinto, "q"+p.Name, f, cfg)
}
