// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_gyro.go — Gyro(p).
//
// Vertices: originals, one center per face, and two one-third points per
// edge (one from each end, keyed by the directed edge). Every corner of
// every face yields one pentagon: center, v1→v2 third, v2→v1 third, v2,
// v2→v3 third.
//
// Complexity:
//   • Time: O(V + C log C); two one-third points and one pentagon per corner.
//   • Space: O(V + C).

package conway

import (
	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/vec"
)

// Gyro replaces every corner of every face with a pentagon.
func Gyro(p *polyhedron.Polyhedron, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodGyro, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	vs := p.Vertices

	f := flag.New(len(vs) + 3*len(p.Faces))
	f.AddVertices(vs)
	for fi, face := range p.Faces {
		center := key.New2(key.TagCenter, fi)
		f.AddVertex(center, p.FaceCenter(face))

		v1, v2 := face[len(face)-2], face[len(face)-1]
		for _, v3 := range face {
			f.AddVertex(key.New2(v1, v2), vec.OneThird(vs[v1], vs[v2]))
			f.AddVertex(key.New2(v2, v1), vec.OneThird(vs[v2], vs[v1]))
			// Pentagon of corner v2, wound like the source face.
			f.AddFace(center, key.New2(v1, v2), key.New2(v2, v1), key.New1(v2), key.New2(v2, v3))
			v1, v2 = v2, v3
		}
	}
	return build(MethodGyro, "g"+p.Name, f, cfg)
}
