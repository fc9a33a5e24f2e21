// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// impl_reflect.go — Reflect(p): point reflection through the origin.
//
// Complexity:
//   • Time: O(V + C); no flag resolution.
//   • Space: O(V + C) for the copy.

package conway

import (
	"slices"

	"github.com/katalvlaran/polyhedra/polyhedron"
	"github.com/katalvlaran/polyhedra/vec"
)

// Reflect negates every coordinate and reverses every face so normals keep
// pointing outward. Topology is unchanged; no flag is needed. opts are
// accepted for a uniform operator signature and have no effect.
func Reflect(p *polyhedron.Polyhedron, opts ...Option) (*polyhedron.Polyhedron, error) {
	if err := checkInput(MethodReflect, p); err != nil {
		return nil, err
	}
	q := p.Clone()
	q.Name = "r" + p.Name
	for i, v := range q.Vertices {
		q.Vertices[i] = vec.Neg(v)
	}
	for _, face := range q.Faces {
		slices.Reverse(face)
	}
	return q, nil
}
