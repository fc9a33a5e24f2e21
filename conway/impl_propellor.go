// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_propellor.go — Propellor(p).
//
// Complexity:
//   • Time: O(V + C log C); two one-third points, one quad and one map step per corner.
//   • Space: O(V + C).

package conway

import (
	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/vec"
)

// Propellor keeps every face as a rotated inner copy built from one-third
// points and adds a quad per corner: v1→v2 third, v2→v1 third, v2, v2→v3 third.
func Propellor(p *polyhedron.Polyhedron, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodPropellor, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	vs := p.Vertices

	f := flag.New(len(vs) + 2*len(p.Faces))
	f.AddVertices(vs)
	for fi, face := range p.Faces {
		v1, v2 := face[len(face)-2], face[len(face)-1]
		for _, v3 := range face {
			// Both thirds of the edge; the neighbour face declares the same keys.
			f.AddVertex(key.New2(v1, v2), vec.OneThird(vs[v1], vs[v2]))
			f.AddVertex(key.New2(v2, v1), vec.OneThird(vs[v2], vs[v1]))
			// Rotated inner copy of the face, one step per corner.
			f.AddFaceMap(key.New1(fi), key.New2(v1, v2), key.New2(v2, v3))
			f.AddFace(key.New2(v1, v2), key.New2(v2, v1), key.New1(v2), key.New2(v2, v3))
			v1, v2 = v2, v3
		}
	}
	return build(MethodPropellor, "p"+p.Name, f, cfg)
}
