// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_chamfer.go — Chamfer(p, dist).
//
// Construction per face f and corner v:
//   • the original vertex, pushed away from the origin by (1 + dist);
//   • a face-local copy New2(f, v), raised along the unit face normal by
//     1.5 × dist.
// The face-local copies form the shrunk original face; every edge becomes a
// hexagon joining the two faces' copies and the two pushed originals. All
// faces are declared as map steps; the hexagon of edge {a, b} collects three
// steps from each side.
//
// Complexity:
//   • Time: O(C log C); four vertex declarations and five map steps per corner.
//   • Space: O(C).

package conway

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

// chamferRaise scales dist into the normal offset of the face-local copies.
const chamferRaise = 1.5

// Chamfer bevels every edge of p into a hexagon.
func Chamfer(p *polyhedron.Polyhedron, dist float64, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodChamfer, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	vs := p.Vertices

	f := flag.New(len(vs) + 4*len(p.Faces))
	for fi, face := range p.Faces {
		lift := r3.Scale(chamferRaise*dist, p.FaceNormal(face))
		shrunk := key.New2(key.TagChamferFace, fi)

		v1 := face[len(face)-1]
		v1new := key.New2(fi, v1)
		for _, v2 := range face {
			f.AddVertex(key.New1(v2), r3.Scale(1+dist, vs[v2]))
			v2new := key.New2(fi, v2)
			f.AddVertex(v2new, r3.Add(vs[v2], lift))

			f.AddFaceMap(shrunk, v1new, v2new)

			hex := key.New3(key.TagChamferHex, min(v1, v2), max(v1, v2))
			f.AddFaceMap(hex, key.New1(v2), v2new)
			f.AddFaceMap(hex, v2new, v1new)
			f.AddFaceMap(hex, v1new, key.New1(v1))

			v1, v1new = v2, v2new
		}
	}
	return build(MethodChamfer, "c"+p.Name, f, cfg)
}
