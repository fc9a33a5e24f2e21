// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// variants_platonic.go — canonical coordinates and faces of the Platonic seeds.
//
// Design:
//   • Single source of truth for the five seed meshes; impl_platonic.go copies
//     them out so callers can never alias these tables.
//   • Faces are wound counter-clockwise seen from outside.
//
// Determinism:
//   • Vertex and face order is fixed; operator output over a seed is therefore
//     reproducible bit for bit.

package polyhedron

import "gonum.org/v1/gonum/spatial/r3"

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4
	Cube                             // V=8,  F=6
	Octahedron                       // V=6,  F=8
	Dodecahedron                     // V=20, F=12
	Icosahedron                      // V=12, F=20
)

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Symbol returns the one-letter notation symbol used as the seed's name.
func (p PlatonicName) Symbol() string {
	if s, ok := platonicSymbols[p]; ok {
		return s
	}
	return ""
}

// PlatonicBySymbol maps a notation letter ("T", "C", "O", "D", "I") back to
// its solid.
func PlatonicBySymbol(sym string) (PlatonicName, bool) {
	for name, s := range platonicSymbols {
		if s == sym {
			return name, true
		}
	}
	return 0, false
}

var platonicSymbols = map[PlatonicName]string{
	Tetrahedron:  "T",
	Cube:         "C",
	Octahedron:   "O",
	Dodecahedron: "D",
	Icosahedron:  "I",
}

type seedData struct {
	vertices []r3.Vec
	faces    [][]int
}

var platonicSeeds = map[PlatonicName]seedData{
	Tetrahedron: {
		vertices: []r3.Vec{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		faces: [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}},
	},
	Cube: {
		vertices: []r3.Vec{
			{X: 0.707, Y: 0.707, Z: 0.707},
			{X: -0.707, Y: 0.707, Z: 0.707},
			{X: -0.707, Y: -0.707, Z: 0.707},
			{X: 0.707, Y: -0.707, Z: 0.707},
			{X: 0.707, Y: -0.707, Z: -0.707},
			{X: 0.707, Y: 0.707, Z: -0.707},
			{X: -0.707, Y: 0.707, Z: -0.707},
			{X: -0.707, Y: -0.707, Z: -0.707},
		},
		faces: [][]int{
			{3, 0, 1, 2},
			{3, 4, 5, 0},
			{0, 5, 6, 1},
			{1, 6, 7, 2},
			{2, 7, 4, 3},
			{5, 4, 7, 6},
		},
	},
	Octahedron: {
		vertices: []r3.Vec{
			{Z: 1.414},
			{X: 1.414},
			{Y: 1.414},
			{X: -1.414},
			{Y: -1.414},
			{Z: -1.414},
		},
		faces: [][]int{
			{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 1},
			{1, 4, 5}, {1, 5, 2}, {2, 5, 3}, {3, 5, 4},
		},
	},
	Dodecahedron: {
		vertices: []r3.Vec{
			{X: 0, Y: 0, Z: 1.07047},
			{X: 0.713644, Y: 0, Z: 0.797878},
			{X: -0.356822, Y: 0.618, Z: 0.797878},
			{X: -0.356822, Y: -0.618, Z: 0.797878},
			{X: 0.797878, Y: 0.618034, Z: 0.356822},
			{X: 0.797878, Y: -0.618, Z: 0.356822},
			{X: -0.934172, Y: 0.381966, Z: 0.356822},
			{X: 0.136294, Y: 1.0, Z: 0.356822},
			{X: 0.136294, Y: -1.0, Z: 0.356822},
			{X: -0.934172, Y: -0.381966, Z: 0.356822},
			{X: 0.934172, Y: 0.381966, Z: -0.356822},
			{X: 0.934172, Y: -0.381966, Z: -0.356822},
			{X: -0.797878, Y: 0.618, Z: -0.356822},
			{X: -0.136294, Y: 1.0, Z: -0.356822},
			{X: -0.136294, Y: -1.0, Z: -0.356822},
			{X: -0.797878, Y: -0.618034, Z: -0.356822},
			{X: 0.356822, Y: 0.618, Z: -0.797878},
			{X: 0.356822, Y: -0.618, Z: -0.797878},
			{X: -0.713644, Y: 0, Z: -0.797878},
			{X: 0, Y: 0, Z: -1.07047},
		},
		faces: [][]int{
			{0, 1, 4, 7, 2},
			{0, 2, 6, 9, 3},
			{0, 3, 8, 5, 1},
			{1, 5, 11, 10, 4},
			{2, 7, 13, 12, 6},
			{3, 9, 15, 14, 8},
			{4, 10, 16, 13, 7},
			{5, 8, 14, 17, 11},
			{6, 12, 18, 15, 9},
			{10, 11, 17, 19, 16},
			{12, 13, 16, 19, 18},
			{14, 15, 18, 19, 17},
		},
	},
	Icosahedron: {
		vertices: []r3.Vec{
			{X: 0, Y: 0, Z: 1.176},
			{X: 1.051, Y: 0, Z: 0.526},
			{X: 0.324, Y: 1.0, Z: 0.525},
			{X: -0.851, Y: 0.618, Z: 0.526},
			{X: -0.851, Y: -0.618, Z: 0.526},
			{X: 0.325, Y: -1.0, Z: 0.526},
			{X: 0.851, Y: 0.618, Z: -0.526},
			{X: 0.851, Y: -0.618, Z: -0.526},
			{X: -0.325, Y: 1.0, Z: -0.526},
			{X: -1.051, Y: 0, Z: -0.526},
			{X: -0.325, Y: -1.0, Z: -0.526},
			{X: 0, Y: 0, Z: -1.176},
		},
		faces: [][]int{
			{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
			{1, 5, 7}, {1, 7, 6}, {1, 6, 2}, {2, 6, 8}, {2, 8, 3},
			{3, 8, 9}, {3, 9, 4}, {4, 9, 10}, {4, 10, 5}, {5, 10, 7},
			{6, 7, 11}, {6, 11, 8}, {7, 10, 11}, {8, 11, 9}, {9, 11, 10},
		},
	},
}
