// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_hollow.go — Hollow(p, insetDist, thickness).
//
// Every face gets a window: an inner rim tweened insetDist toward the face
// center. The solid is given a wall of the given thickness and the result is
// a closed shell, three quads per face edge:
//   • outer  [v1, v2, in2, in1]          rim of the window on the outside
//   • wall   [in1, in2, down2, down1]    side of the window, through the wall
//   • inner  [under2, under1, down1, down2] the window seen from inside
// down points drop the rim along the unit averaged face normal; under points
// drop each original vertex along its vertex normal. On a closed genus-0
// input with F faces the output has genus F-1.
//
// Complexity:
//   • Time: O(V + C log C); vertex normals in O(C), three quads per corner.
//   • Space: O(V + C).

package conway

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/vec"
)

// Hollow carves a window through every face of p.
func Hollow(p *polyhedron.Polyhedron, insetDist, thickness float64, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodHollow, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	vs := p.Vertices

	f := flag.New(2*len(vs) + 6*len(p.Faces))
	f.AddVertices(vs)
	under := func(v int) key.Key { return key.New2(key.TagHollowUnder, v) }
	for i, n := range p.VertexNormals() {
		f.AddVertex(under(i), r3.Sub(vs[i], r3.Scale(thickness, n)))
	}

	avg := p.FaceAvgNormals()
	for fi, face := range p.Faces {
		center := p.FaceCenter(face)
		drop := r3.Scale(thickness, vec.Normalize(avg[fi]))
		in := func(v int) key.Key { return key.New4(key.TagHollowIn, fi, key.TagVertex, v) }
		down := func(v int) key.Key { return key.New4(key.TagHollowDown, fi, key.TagVertex, v) }

		v1 := face[len(face)-1]
		for _, v2 := range face {
			rim := vec.Tween(vs[v2], center, insetDist)
			f.AddVertex(in(v2), rim)
			f.AddVertex(down(v2), r3.Sub(rim, drop))

			f.AddFace(key.New1(v1), key.New1(v2), in(v2), in(v1))
			f.AddFace(in(v1), in(v2), down(v2), down(v1))
			f.AddFace(under(v2), under(v1), down(v1), down(v2))
			v1 = v2
		}
	}
	return build(MethodHollow, "H"+p.Name, f, cfg)
}
