// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_inset.go — Inset(p, n, insetDist, popoutDist) and its two presets,
// Extrude and Loft.
//
// Contract:
//   • Faces with n sides (all faces when n == 0) are replaced by a smaller
//     copy, tweened insetDist of the way toward the face center and moved
//     popoutDist along the unit normal, plus one quad per edge joining the
//     copy to the original rim.
//   • Other faces pass through unchanged.
//   • When n > 0 matches nothing the result equals a renamed copy and
//     ErrNoMatchingFaces is logged.
//
// Complexity:
//   • Time: O(V + C log C); one inset vertex, one quad and one map step per matched corner.
//   • Space: O(V + C).

package conway

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/vec"
)

// Inset insets every face with n sides (n == 0: all faces).
func Inset(p *polyhedron.Polyhedron, n int, insetDist, popoutDist float64, opts ...Option) (*polyhedron.Polyhedron, error) {
	return inset(MethodInset, prefixN("n", n), p, n, insetDist, popoutDist, newConfig(opts...))
}

// Extrude pushes every face with n sides outward along its normal, keeping
// its size, by the configured extrude distance (default 0.1).
func Extrude(p *polyhedron.Polyhedron, n int, opts ...Option) (*polyhedron.Polyhedron, error) {
	cfg := newConfig(opts...)
	return inset(MethodExtrude, prefixN("x", n), p, n, 0, cfg.extrudeDist, cfg)
}

// Loft insets every face with n sides by alpha without popping it out.
func Loft(p *polyhedron.Polyhedron, n int, alpha float64, opts ...Option) (*polyhedron.Polyhedron, error) {
	return inset(MethodLoft, prefixN("l", n), p, n, alpha, 0, newConfig(opts...))
}

func inset(method, prefix string, p *polyhedron.Polyhedron, n int, insetDist, popoutDist float64, cfg config) (*polyhedron.Polyhedron, error) {
	if err := checkInput(method, p); err != nil {
		return nil, err
	}
	if err := checkN(method, n); err != nil {
		return nil, err
	}
	vs := p.Vertices

	f := flag.New(len(vs) + 4*len(p.Faces))
	f.AddVertices(vs)
	matched := 0
	for fi, face := range p.Faces {
		v1 := face[len(face)-1]
		if n != 0 && len(face) != n {
			for _, v2 := range face {
				f.AddFaceMap(key.New1(fi), key.New1(v1), key.New1(v2))
				v1 = v2
			}
			continue
		}

		matched++
		center := p.FaceCenter(face)
		pop := r3.Scale(popoutDist, p.FaceNormal(face))
		raised := key.New2(key.TagInsetFace, fi)
		for _, v2 := range face {
			in1, in2 := key.New3(key.TagInset, fi, v1), key.New3(key.TagInset, fi, v2)
			f.AddVertex(in2, r3.Add(vec.Tween(vs[v2], center, insetDist), pop))
			f.AddFace(key.New1(v1), key.New1(v2), in2, in1)
			f.AddFaceMap(raised, in1, in2)
			v1 = v2
		}
	}
	if matched == 0 {
		noMatch(cfg, method, n)
	}
	return build(method, prefix+p.Name, f, cfg)
}
