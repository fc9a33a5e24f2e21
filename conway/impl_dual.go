// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_dual.go — Dual(p).
//
// Each face f becomes the vertex New1(f) at its center. Each original vertex
// v becomes a face keyed New1(v): walking every face around v, the step
// "arriving from the neighbour across edge v2→v1, continue to f" is declared
// as a map edge. The walk needs FaceIndex.Opposite for every edge, so the
// input must be closed; an open edge fails with ErrOpenEdge.
//
// Complexity:
//   • Time: O(C log C): FaceIndex build plus one Opposite search and one map step per corner.
//   • Space: O(C).

package conway

import (
	"fmt"

	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

// Dual swaps the roles of faces and vertices.
func Dual(p *polyhedron.Polyhedron, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodDual, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	idx := polyhedron.NewFaceIndex(p)
	f := flag.New(len(p.Faces))
	for fi, face := range p.Faces {
		f.AddVertex(key.New1(fi), p.FaceCenter(face))

		v1 := face[len(face)-1]
		for _, v2 := range face {
			across, ok := idx.Opposite(v1, v2)
			if !ok {
				return nil, fmt.Errorf("%s: edge %d→%d of face %d: %w", MethodDual, v1, v2, fi, ErrOpenEdge)
			}
			f.AddFaceMap(key.New1(v1), key.New1(across), key.New1(fi))
			v1 = v2
		}
	}
	return build(MethodDual, "d"+p.Name, f, cfg)
}
