// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_whirl.go — Whirl(p).
//
// Complexity:
//   • Time: O(V + C log C); two one-third points, one inner point and one hexagon per corner.
//   • Space: O(V + C).

package conway

import (
	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/vec"
)

// Whirl turns every edge into a hexagon spiralling around a rotated copy of
// each face. The inner points New3(TagWhirlInner, f, v) sit one third of the
// way from the face center to the edge's one-third point, projected onto the
// unit sphere.
func Whirl(p *polyhedron.Polyhedron, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodWhirl, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	vs := p.Vertices

	f := flag.New(len(vs) + 4*len(p.Faces))
	f.AddVertices(vs)
	for fi, face := range p.Faces {
		center := p.FaceCenter(face)
		inner := key.New2(key.TagWhirlFace, fi)

		v1, v2 := face[len(face)-2], face[len(face)-1]
		for _, v3 := range face {
			v12 := vec.OneThird(vs[v1], vs[v2])
			f.AddVertex(key.New2(v1, v2), v12)
			f.AddVertex(key.New2(v2, v1), vec.OneThird(vs[v2], vs[v1]))

			cv1 := key.New3(key.TagWhirlInner, fi, v1)
			cv2 := key.New3(key.TagWhirlInner, fi, v2)
			// cv2 is declared by the next corner.
			f.AddVertex(cv1, vec.Normalize(vec.OneThird(center, v12)))

			f.AddFace(cv1, key.New2(v1, v2), key.New2(v2, v1), key.New1(v2), key.New2(v2, v3), cv2)
			f.AddFaceMap(inner, cv1, cv2)

			v1, v2 = v2, v3
		}
	}
	return build(MethodWhirl, "w"+p.Name, f, cfg)
}
