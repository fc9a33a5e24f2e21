// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_kis.go — Kis(p, n, apexDist).
//
// Contract:
//   • Every face with n sides (every face when n == 0) becomes a fan of
//     triangles around an apex at center + unit normal × apexDist.
//   • Other faces pass through unchanged.
//   • n < 0 → ErrNegativeN.
//
// Complexity:
//   • Time: O(C log C), C = Σ|face| corners; dominated by the flag resolution.
//   • Space: O(V + C).

package conway

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

// Kis raises a pyramid on every face with n sides (n == 0: all faces).
func Kis(p *polyhedron.Polyhedron, n int, apexDist float64, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodKis, p); err != nil {
		return nil, err
	}
	if err := checkN(MethodKis, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	f := flag.New(len(p.Vertices) + len(p.Faces))
	matched := 0
	for fi := range p.Faces {
		if kisFace(f, p, fi, n, apexDist) {
			matched++
		}
	}
	if matched == 0 {
		noMatch(cfg, MethodKis, n)
	}
	return build(MethodKis, kisName(p, n), f, cfg)
}

// kisFace declares face fi of p into f and reports whether it was raised.
// Shared by Kis and every KisParallel chunk.
func kisFace(f *flag.Flag, p *polyhedron.Polyhedron, fi, n int, apexDist float64) bool {
	face := p.Faces[fi]
	raise := n == 0 || len(face) == n

	apex := key.New2(key.TagKis, fi)
	if raise {
		f.AddVertex(apex, r3.Add(p.FaceCenter(face), r3.Scale(apexDist, p.FaceNormal(face))))
	}

	v1 := face[len(face)-1]
	for _, v2 := range face {
		f.AddVertex(key.New1(v2), p.Vertices[v2])
		if raise {
			f.AddFace(key.New1(v1), key.New1(v2), apex)
		} else {
			f.AddFaceMap(key.New1(fi), key.New1(v1), key.New1(v2))
		}
		v1 = v2
	}
	return raise
}

// kisName is shared with KisParallel so both produce identical names.
func kisName(p *polyhedron.Polyhedron, n int) string {
	return fmt.Sprintf("%s%s", prefixN("k", n), p.Name)
}
