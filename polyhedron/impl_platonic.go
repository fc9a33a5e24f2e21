// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// impl_platonic.go — Platonic(name) seed constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrUnknownSolid.
//   • The returned value is a fresh deep copy named by the solid's Symbol.

package polyhedron

import "fmt"

const methodPlatonic = "Platonic"

// Platonic returns a fresh copy of the named Platonic solid.
func Platonic(name PlatonicName) (*Polyhedron, error) {
	seed, ok := platonicSeeds[name]
	if !ok {
		return nil, fmt.Errorf("%s: %v: %w", methodPlatonic, name, ErrUnknownSolid)
	}
	return New(name.Symbol(), seed.vertices, seed.faces), nil
}
