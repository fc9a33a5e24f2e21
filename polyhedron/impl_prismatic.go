// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// impl_prismatic.go — n-gonal seed families.
//
// Contract:
//   • n < 3 → ErrTooFewSides for every family.
//   • Names follow the seed notation: Y<n>, R<n>, A<n>, U<n>, V<n>.
//   • Base faces wind clockwise seen from above (outward normal points down),
//     top faces counter-clockwise.
//
// Complexity: O(n) time and space.

package polyhedron

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodPyramid    = "Pyramid"
	methodPrism      = "Prism"
	methodAntiprism  = "Antiprism"
	methodCupola     = "Cupola"
	methodAnticupola = "Anticupola"

	minSides     = 3
	pyramidBaseZ = -0.2
	pyramidApexZ = 1.0
)

// Pyramid returns an n-gonal pyramid with its apex on +Z.
func Pyramid(n int) (*Polyhedron, error) {
	if n < minSides {
		return nil, fmt.Errorf("%s: n=%d: %w", methodPyramid, n, ErrTooFewSides)
	}
	theta := 2 * math.Pi / float64(n)

	vertices := make([]r3.Vec, 0, n+1)
	for i := 0; i < n; i++ {
		a := float64(i) * theta
		vertices = append(vertices, r3.Vec{X: -math.Cos(a), Y: -math.Sin(a), Z: pyramidBaseZ})
	}
	vertices = append(vertices, r3.Vec{Z: pyramidApexZ})

	faces := make([][]int, 0, n+1)
	faces = append(faces, descending(n-1, 0))
	for i := 0; i < n; i++ {
		faces = append(faces, []int{i, (i + 1) % n, n})
	}
	return &Polyhedron{Name: fmt.Sprintf("Y%d", n), Vertices: vertices, Faces: faces}, nil
}

// Prism returns an n-gonal prism whose side quads are squares.
func Prism(n int) (*Polyhedron, error) {
	if n < minSides {
		return nil, fmt.Errorf("%s: n=%d: %w", methodPrism, n, ErrTooFewSides)
	}
	theta := 2 * math.Pi / float64(n)
	h := math.Sin(theta / 2) // half-edge

	vertices := make([]r3.Vec, 2*n)
	for i := 0; i < n; i++ {
		a := float64(i) * theta
		vertices[i] = r3.Vec{X: -math.Cos(a), Y: -math.Sin(a), Z: -h}
		vertices[i+n] = r3.Vec{X: -math.Cos(a), Y: -math.Sin(a), Z: h}
	}

	faces := make([][]int, 0, n+2)
	faces = append(faces, descending(n-1, 0), ascending(n, 2*n-1))
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces, []int{i, j, j + n, i + n})
	}
	return &Polyhedron{Name: fmt.Sprintf("R%d", n), Vertices: vertices, Faces: faces}, nil
}

// Antiprism returns an n-gonal antiprism scaled so edge midpoints lie on the
// unit sphere.
func Antiprism(n int) (*Polyhedron, error) {
	if n < minSides {
		return nil, fmt.Errorf("%s: n=%d: %w", methodAntiprism, n, ErrTooFewSides)
	}
	theta := 2 * math.Pi / float64(n)
	h := math.Sqrt(1 - 4/(4+2*math.Cos(theta/2)-2*math.Cos(theta)))
	r := math.Sqrt(1 - h*h)
	f := math.Sqrt(h*h + math.Pow(r*math.Cos(theta/2), 2))
	r, h = -r/f, -h/f

	vertices := make([]r3.Vec, 2*n)
	for i := 0; i < n; i++ {
		a := float64(i) * theta
		b := (float64(i) + 0.5) * theta
		vertices[i] = r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: h}
		vertices[i+n] = r3.Vec{X: r * math.Cos(b), Y: r * math.Sin(b), Z: -h}
	}

	faces := make([][]int, 0, 2*n+2)
	faces = append(faces, descending(n-1, 0), ascending(n, 2*n-1))
	for i := 0; i < n; i++ {
		faces = append(faces,
			[]int{i, (i + 1) % n, i + n},
			[]int{i, i + n, (n+i-1)%n + n},
		)
	}
	return &Polyhedron{Name: fmt.Sprintf("A%d", n), Vertices: vertices, Faces: faces}, nil
}

// Cupola returns an n-gonal cupola: a 2n-gon base joined to an n-gon top by
// alternating triangles and squares. alpha twists the base pairs; height 0
// selects the default (regular for n = 3..5).
func Cupola(n int, alpha, height float64) (*Polyhedron, error) {
	if n < minSides {
		return nil, fmt.Errorf("%s: n=%d: %w", methodCupola, n, ErrTooFewSides)
	}
	nf := float64(n)
	rb, rt := cupolaRadii(n)
	if height == 0 {
		height = rb - rt
	}
	if n <= 5 {
		s := math.Sin(math.Pi / nf)
		height = math.Sqrt(1 - 1/4.0/s/s)
	}

	vertices := make([]r3.Vec, 3*n)
	for i := 0; i < n; i++ {
		fi := float64(i)
		a := math.Pi*(2*fi)/nf + math.Pi/2/nf + alpha
		b := math.Pi*(2*fi+1)/nf + math.Pi/2/nf - alpha
		c := 2 * math.Pi * fi / nf
		vertices[2*i] = r3.Vec{X: rb * math.Cos(a), Y: rb * math.Sin(a)}
		vertices[2*i+1] = r3.Vec{X: rb * math.Cos(b), Y: rb * math.Sin(b)}
		vertices[2*n+i] = r3.Vec{X: rt * math.Cos(c), Y: rt * math.Sin(c), Z: height}
	}

	faces := make([][]int, 0, 2*n+2)
	faces = append(faces, descending(2*n-1, 0), ascending(2*n, 3*n-1))
	for i := 0; i < n; i++ {
		faces = append(faces,
			[]int{(2*i + 1) % (2 * n), (2*i + 2) % (2 * n), 2*n + (i+1)%n},
			[]int{2 * i, (2*i + 1) % (2 * n), 2*n + (i+1)%n, 2*n + i},
		)
	}
	return &Polyhedron{Name: fmt.Sprintf("U%d", n), Vertices: vertices, Faces: faces}, nil
}

// Anticupola returns an n-gonal anticupola: like Cupola but the sides are
// all triangles. height 0 selects rb - rt.
func Anticupola(n int, alpha, height float64) (*Polyhedron, error) {
	if n < minSides {
		return nil, fmt.Errorf("%s: n=%d: %w", methodAnticupola, n, ErrTooFewSides)
	}
	nf := float64(n)
	rb, rt := cupolaRadii(n)
	if height == 0 {
		height = rb - rt
	}

	vertices := make([]r3.Vec, 3*n)
	for i := 0; i < n; i++ {
		fi := float64(i)
		a := math.Pi*(2*fi)/nf + alpha
		b := math.Pi*(2*fi+1)/nf - alpha
		c := 2 * math.Pi * fi / nf
		vertices[2*i] = r3.Vec{X: rb * math.Cos(a), Y: rb * math.Sin(a)}
		vertices[2*i+1] = r3.Vec{X: rb * math.Cos(b), Y: rb * math.Sin(b)}
		vertices[2*n+i] = r3.Vec{X: rt * math.Cos(c), Y: rt * math.Sin(c), Z: height}
	}

	faces := make([][]int, 0, 3*n+2)
	faces = append(faces, descending(2*n-1, 0), ascending(2*n, 3*n-1))
	for i := 0; i < n; i++ {
		top, next := 2*n+i, 2*n+(i+1)%n
		faces = append(faces,
			[]int{2 * i, 2*i + 1, top},
			[]int{next, 2*i + 1, (2*i + 2) % (2 * n)},
			[]int{next, top, 2*i + 1},
		)
	}
	return &Polyhedron{Name: fmt.Sprintf("V%d", n), Vertices: vertices, Faces: faces}, nil
}

// cupolaRadii returns the base (2n-gon) and top (n-gon) circumradii for unit edges.
func cupolaRadii(n int) (rb, rt float64) {
	nf := float64(n)
	return 0.5 / math.Sin(math.Pi/2/nf), 0.5 / math.Sin(math.Pi/nf)
}

// ascending returns lo, lo+1, ..., hi.
func ascending(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

// descending returns hi, hi-1, ..., lo.
func descending(hi, lo int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := hi; i >= lo; i-- {
		out = append(out, i)
	}
	return out
}
