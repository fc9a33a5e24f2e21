// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_perspectiva.go — Perspectiva(p).
//
// Complexity:
//   • Time: O(V + C log C); one stellated point and two triangles per corner.
//   • Space: O(V + C).

package conway

import (
	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/vec"
)

// Perspectiva insets every face to the "stellated" points halfway between
// each edge midpoint and the face center, keyed by the directed edge. Each
// corner is filled by two triangles.
func Perspectiva(p *polyhedron.Polyhedron, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodPerspectiva, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	vs := p.Vertices

	f := flag.New(len(vs) + 2*len(p.Faces))
	f.AddVertices(vs)
	for _, face := range p.Faces {
		center := p.FaceCenter(face)
		inner := make([]key.Key, 0, len(face))

		v1, v2 := face[len(face)-2], face[len(face)-1]
		for _, v3 := range face {
			v12, v21, v23 := key.New2(v1, v2), key.New2(v2, v1), key.New2(v2, v3)
			f.AddVertex(v12, vec.Midpoint(vec.Midpoint(vs[v1], vs[v2]), center))
			inner = append(inner, v12)

			f.AddFace(v23, v12, key.New1(v2))
			f.AddFace(key.New1(v1), v21, v12)

			v1, v2 = v2, v3
		}
		f.AddFace(inner...)
	}
	return build(MethodPerspectiva, "P"+p.Name, f, cfg)
}
