// SPDX-License-Identifier: MIT
// Package: polyhedra/conway
//
// errors.go — sentinel errors for operators and notation.
//
// Error policy:
//   • Operators return sentinels wrapped with the method name ("Kis: ...: %w").
//   • Resolution failures from package flag are wrapped, not replaced, so
//     errors.Is(err, flag.ErrKeyNotFound) keeps working.
//   • Option constructors panic instead of returning errors.

package conway

import "errors"

var (
	// ErrNilPolyhedron indicates a nil input polyhedron.
	ErrNilPolyhedron = errors.New("conway: nil polyhedron")

	// ErrEmptyPolyhedron indicates an input with no faces.
	ErrEmptyPolyhedron = errors.New("conway: polyhedron has no faces")

	// ErrNegativeN indicates a negative face-size filter.
	ErrNegativeN = errors.New("conway: n must be >= 0")

	// ErrOpenEdge indicates an edge with no opposite face; Dual needs a closed mesh.
	ErrOpenEdge = errors.New("conway: edge has no opposite face")

	// ErrNoMatchingFaces is logged, never returned, when an n-filtered
	// operator finds no face with n sides.
	ErrNoMatchingFaces = errors.New("conway: no faces with the requested side count")

	// ErrBadRecipe indicates a malformed notation string.
	ErrBadRecipe = errors.New("conway: malformed recipe")

	// ErrUnknownOperator indicates an unsupported operator letter in a recipe.
	ErrUnknownOperator = errors.New("conway: unknown operator")

	// ErrUnknownSeed indicates an unsupported seed letter in a recipe.
	ErrUnknownSeed = errors.New("conway: unknown seed")
)
