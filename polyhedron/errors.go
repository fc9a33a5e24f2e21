// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// errors.go — sentinel errors for seeds, validation and colouring.

package polyhedron

import "errors"

var (
	// ErrTooFewSides indicates a prismatic seed asked for fewer than 3 sides.
	ErrTooFewSides = errors.New("polyhedron: seed needs at least 3 sides")

	// ErrUnknownSolid indicates an unsupported PlatonicName.
	ErrUnknownSolid = errors.New("polyhedron: unknown platonic solid")

	// ErrIndexOutOfRange indicates a face index outside [0, len(Vertices)).
	ErrIndexOutOfRange = errors.New("polyhedron: face index out of range")

	// ErrFaceTooSmall indicates a face with fewer than 3 vertices.
	ErrFaceTooSmall = errors.New("polyhedron: face has fewer than 3 vertices")

	// ErrNilPalette indicates Colors was called without a palette.
	ErrNilPalette = errors.New("polyhedron: nil palette")

	// ErrShortPalette indicates a palette returned fewer than PaletteSize colours.
	ErrShortPalette = errors.New("polyhedron: palette shorter than PaletteSize")
)
