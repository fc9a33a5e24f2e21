// SPDX-License-Identifier: MIT
// Package: polyhedra/polyhedron
//
// geometry.go — per-face and per-vertex geometric queries.
//
// Every query is total: degenerate faces yield zero vectors and zero areas,
// never NaN.

package polyhedron

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/vec"
)

// triangleNormal returns (b-a)×(c-b), unnormalized.
func triangleNormal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, b))
}

// FaceNormal returns the unit normal of face from its first three vertices.
// Faces with fewer than 3 vertices, or collinear leading vertices, give zero.
func (p *Polyhedron) FaceNormal(face []int) r3.Vec {
	if len(face) < 3 {
		return r3.Vec{}
	}
	v := p.Vertices
	return vec.Normalize(triangleNormal(v[face[0]], v[face[1]], v[face[2]]))
}

// FaceCenter returns the unweighted mean of the face's vertices.
func (p *Polyhedron) FaceCenter(face []int) r3.Vec {
	pts := make([]r3.Vec, len(face))
	for j, i := range face {
		pts[j] = p.Vertices[i]
	}
	return vec.Mean(pts...)
}

// FaceArea returns the area of a planar face given its unit normal.
func (p *Polyhedron) FaceArea(face []int, normal r3.Vec) float64 {
	if len(face) < 3 {
		return 0
	}
	var sum r3.Vec
	prev := p.Vertices[face[len(face)-1]]
	for _, i := range face {
		cur := p.Vertices[i]
		sum = r3.Add(sum, r3.Cross(prev, cur))
		prev = cur
	}
	return math.Abs(r3.Dot(normal, sum)) / 2
}

// Normals returns FaceNormal for every face.
func (p *Polyhedron) Normals() []r3.Vec {
	out := make([]r3.Vec, len(p.Faces))
	for i, f := range p.Faces {
		out[i] = p.FaceNormal(f)
	}
	return out
}

// Centers returns FaceCenter for every face.
func (p *Polyhedron) Centers() []r3.Vec {
	out := make([]r3.Vec, len(p.Faces))
	for i, f := range p.Faces {
		out[i] = p.FaceCenter(f)
	}
	return out
}

// Areas returns FaceArea for every face, pairing faces with normals by index.
// A missing normal counts as zero.
func (p *Polyhedron) Areas(normals []r3.Vec) []float64 {
	out := make([]float64, len(p.Faces))
	for i, f := range p.Faces {
		if i < len(normals) {
			out[i] = p.FaceArea(f, normals[i])
		}
	}
	return out
}

// FaceAvgNormals returns, per face, the sum of the corner normals of every
// consecutive vertex triple (wrapping). The result is not normalized; on a
// warped face it is steadier than FaceNormal.
func (p *Polyhedron) FaceAvgNormals() []r3.Vec {
	out := make([]r3.Vec, len(p.Faces))
	for fi, face := range p.Faces {
		n := len(face)
		if n < 3 {
			continue
		}
		var sum r3.Vec
		v1, v2 := p.Vertices[face[n-2]], p.Vertices[face[n-1]]
		for _, i := range face {
			v3 := p.Vertices[i]
			sum = r3.Add(sum, triangleNormal(v1, v2, v3))
			v1, v2 = v2, v3
		}
		out[fi] = sum
	}
	return out
}

// VertexNormals returns, per vertex, the normalized sum of the unit normals of
// its incident faces. Vertices on no face get the zero vector.
func (p *Polyhedron) VertexNormals() []r3.Vec {
	out := make([]r3.Vec, len(p.Vertices))
	for _, face := range p.Faces {
		n := p.FaceNormal(face)
		for _, i := range face {
			out[i] = r3.Add(out[i], n)
		}
	}
	for i := range out {
		out[i] = vec.Normalize(out[i])
	}
	return out
}

// Normalized returns a copy of p with every coordinate divided by the spread
// between the smallest and largest coordinate component. A flat spread leaves
// coordinates unchanged.
func (p *Polyhedron) Normalized() *Polyhedron {
	q := p.Clone()
	lo, hi := vec.Extent(q.Vertices)
	if d := hi - lo; d != 0 {
		for i, v := range q.Vertices {
			q.Vertices[i] = vec.Div(v, d)
		}
	}
	return q
}

// Volume returns the signed volume enclosed by p, summed over fan triangles
// of every face. It is positive when faces wind outward and only meaningful
// for closed meshes.
func (p *Polyhedron) Volume() float64 {
	var sum float64
	for _, face := range p.Faces {
		for _, t := range vec.Triangulate(len(face)) {
			a, b, c := p.Vertices[face[t[0]]], p.Vertices[face[t[1]]], p.Vertices[face[t[2]]]
			sum += r3.Dot(a, r3.Cross(b, c))
		}
	}
	return sum / 6
}
