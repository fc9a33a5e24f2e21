// SPDX-License-Identifier: MIT
// Package: polyhedra/vec
//
// vec.go — r3.Vec helpers used by operators and geometry queries.

package vec

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Neg returns -a.
func Neg(a r3.Vec) r3.Vec { return r3.Scale(-1, a) }

// Div divides a by f. Division by zero yields the zero vector.
func Div(a r3.Vec, f float64) r3.Vec {
	if f == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/f, a)
}

// Normalize returns a scaled to unit length, or the zero vector when a is zero.
func Normalize(a r3.Vec) r3.Vec {
	l := r3.Norm(a)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, a)
}

// Midpoint returns (a+b)/2.
func Midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

// Tween interpolates linearly: (1-t)*a + t*b.
func Tween(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(r3.Scale(1-t, a), r3.Scale(t, b))
}

// OneThird returns the point one third of the way from a to b.
func OneThird(a, b r3.Vec) r3.Vec { return Tween(a, b, 1.0/3.0) }

// Mean returns the unweighted average of vs (zero for an empty slice).
func Mean(vs ...r3.Vec) r3.Vec {
	var sum r3.Vec
	for _, v := range vs {
		sum = r3.Add(sum, v)
	}
	return Div(sum, float64(len(vs)))
}

// Extent returns the smallest and largest single component found in vs.
// For an empty slice both are zero.
func Extent(vs []r3.Vec) (lo, hi float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		lo = math.Min(lo, math.Min(v.X, math.Min(v.Y, v.Z)))
		hi = math.Max(hi, math.Max(v.X, math.Max(v.Y, v.Z)))
	}
	return lo, hi
}

// Triangulate returns the fan triangulation of a convex n-gon as index
// triples into the polygon's own vertex list: (0,1,2), (0,2,3), ...
// n < 3 yields nil.
func Triangulate(n int) [][3]int {
	if n < 3 {
		return nil
	}
	tris := make([][3]int, 0, n-2)
	for i := 1; i < n-1; i++ {
		tris = append(tris, [3]int{0, i, i + 1})
	}
	return tris
}
