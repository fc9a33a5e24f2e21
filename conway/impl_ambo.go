// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_ambo.go — Ambo(p): rectification.
//
// New vertices are the edge midpoints, keyed by the undirected edge. Each
// original face survives as the polygon of its edge midpoints; each original
// vertex becomes a face assembled from one map step per incident face.
//
// Complexity:
//   • Time: O(C log C), C = Σ|face| corners; one midpoint declaration and one map step per corner.
//   • Space: O(C) declarations.

package conway

import (
	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/vec"
)

// Ambo truncates p to its edge midpoints.
func Ambo(p *polyhedron.Polyhedron, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodAmbo, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	f := flag.New(2 * len(p.Faces))
	for _, face := range p.Faces {
		v1, v2 := face[len(face)-2], face[len(face)-1]
		mids := make([]key.Key, 0, len(face))
		for _, v3 := range face {
			m12, m23 := key.Edge(v1, v2), key.Edge(v2, v3)
			f.AddVertex(m12, vec.Midpoint(p.Vertices[v1], p.Vertices[v2]))
			mids = append(mids, m12)
			f.AddFaceMap(key.New2(key.TagAmboVertex, v2), m23, m12)
			v1, v2 = v2, v3
		}
		f.AddFace(mids...)
	}
	return build(MethodAmbo, "a"+p.Name, f, cfg)
}
