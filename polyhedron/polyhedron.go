// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// polyhedron.go — the Polyhedron type and its structural queries.

package polyhedron

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

const methodValidate = "Validate"

// Polyhedron is a named polygon mesh. Every face index must be a valid index
// into Vertices; faces wind counter-clockwise seen from outside.
type Polyhedron struct {
	Name     string
	Vertices []r3.Vec
	Faces    [][]int
}

// New builds a Polyhedron from deep copies of vertices and faces.
func New(name string, vertices []r3.Vec, faces [][]int) *Polyhedron {
	return &Polyhedron{
		Name:     name,
		Vertices: append([]r3.Vec(nil), vertices...),
		Faces:    copyFaces(faces),
	}
}

// Clone returns a deep copy of p.
func (p *Polyhedron) Clone() *Polyhedron {
	return New(p.Name, p.Vertices, p.Faces)
}

// Validate reports the first face that breaks the index invariant.
//
// Errors: ErrFaceTooSmall, ErrIndexOutOfRange.
func (p *Polyhedron) Validate() error {
	n := len(p.Vertices)
	for fi, face := range p.Faces {
		if len(face) < 3 {
			return fmt.Errorf("%s: face %d has %d vertices: %w", methodValidate, fi, len(face), ErrFaceTooSmall)
		}
		for _, v := range face {
			if v < 0 || v >= n {
				return fmt.Errorf("%s: face %d index %d (vertices=%d): %w", methodValidate, fi, v, n, ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

// Edges returns every undirected edge once as {lo, hi}, sorted.
func (p *Polyhedron) Edges() [][2]int {
	edges := make([][2]int, 0, p.directedEdgeCount()/2)
	seen := make(map[[2]int]struct{}, cap(edges))
	for _, face := range p.Faces {
		if len(face) == 0 {
			continue
		}
		prev := face[len(face)-1]
		for _, cur := range face {
			e := [2]int{prev, cur}
			if e[1] < e[0] {
				e[0], e[1] = e[1], e[0]
			}
			if _, ok := seen[e]; !ok {
				seen[e] = struct{}{}
				edges = append(edges, e)
			}
			prev = cur
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// EdgeCount returns len(p.Edges()).
func (p *Polyhedron) EdgeCount() int { return len(p.Edges()) }

// Euler returns V - E + F; 2 for any closed genus-0 surface.
func (p *Polyhedron) Euler() int {
	return len(p.Vertices) - p.EdgeCount() + len(p.Faces)
}

// String summarizes p for logs.
func (p *Polyhedron) String() string {
	return fmt.Sprintf("%s (V=%d E=%d F=%d)", p.Name, len(p.Vertices), p.EdgeCount(), len(p.Faces))
}

func (p *Polyhedron) directedEdgeCount() int {
	n := 0
	for _, face := range p.Faces {
		n += len(face)
	}
	return n
}

func copyFaces(faces [][]int) [][]int {
	out := make([][]int, len(faces))
	for i, f := range faces {
		out[i] = append([]int(nil), f...)
	}
	return out
}
