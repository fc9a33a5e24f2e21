// Package vec is the geometry kit shared by every polyhedron operator.
//
// Plain arithmetic (Add, Sub, Scale, Dot, Cross, Norm) comes straight from
// gonum.org/v1/gonum/spatial/r3; this package adds the operator-specific
// helpers on top of r3.Vec: zero-safe normalization, midpoints, tweening,
// the one-third point, scalar helpers, bounding extent and fan triangulation.
//
// All functions are total over finite input. Normalize of the zero vector
// returns the zero vector instead of r3.Unit's NaNs.
package vec
