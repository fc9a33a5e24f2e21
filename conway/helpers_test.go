package conway_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyhedra/polyhedron"
)

// seedSet returns a fresh copy of every seed the operator tests run on.
func seedSet(t testing.TB) []*polyhedron.Polyhedron {
	t.Helper()
	var out []*polyhedron.Polyhedron
	for _, name := range []polyhedron.PlatonicName{
		polyhedron.Tetrahedron, polyhedron.Cube, polyhedron.Octahedron,
		polyhedron.Dodecahedron, polyhedron.Icosahedron,
	} {
		p, err := polyhedron.Platonic(name)
		require.NoError(t, err)
		out = append(out, p)
	}
	for _, build := range []func() (*polyhedron.Polyhedron, error){
		func() (*polyhedron.Polyhedron, error) { return polyhedron.Pyramid(4) },
		func() (*polyhedron.Polyhedron, error) { return polyhedron.Prism(5) },
		func() (*polyhedron.Polyhedron, error) { return polyhedron.Antiprism(4) },
		func() (*polyhedron.Polyhedron, error) { return polyhedron.Cupola(3, 0, 0) },
		func() (*polyhedron.Polyhedron, error) { return polyhedron.Anticupola(5, 0, 0) },
	} {
		p, err := build()
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func cube(t testing.TB) *polyhedron.Polyhedron {
	t.Helper()
	p, err := polyhedron.Platonic(polyhedron.Cube)
	require.NoError(t, err)
	return p
}

func tetrahedron(t testing.TB) *polyhedron.Polyhedron {
	t.Helper()
	p, err := polyhedron.Platonic(polyhedron.Tetrahedron)
	require.NoError(t, err)
	return p
}

// requireClosed checks the index invariant, that every directed edge occurs
// once and its reverse exists (closed, consistently oriented), and that the
// faces wind outward.
func requireClosed(t *testing.T, p *polyhedron.Polyhedron) {
	t.Helper()
	require.NoError(t, p.Validate(), p.Name)

	idx := polyhedron.NewFaceIndex(p)
	seen := make(map[[2]int]bool, idx.Len())
	for _, face := range p.Faces {
		prev := face[len(face)-1]
		for _, cur := range face {
			e := [2]int{prev, cur}
			require.False(t, seen[e], "%s: directed edge %v used twice", p.Name, e)
			seen[e] = true
			_, ok := idx.Opposite(prev, cur)
			require.True(t, ok, "%s: edge %v has no reverse", p.Name, e)
			prev = cur
		}
	}
	require.Greater(t, p.Volume(), 0.0, "%s winds inward", p.Name)
}

// requireUniqueVertices checks that no two vertices coincide.
func requireUniqueVertices(t *testing.T, p *polyhedron.Polyhedron) {
	t.Helper()
	seen := make(map[[3]int64]int, len(p.Vertices))
	for i, v := range p.Vertices {
		k := [3]int64{int64(v.X * 1e6), int64(v.Y * 1e6), int64(v.Z * 1e6)}
		j, dup := seen[k]
		require.False(t, dup, "%s: vertices %d and %d coincide", p.Name, j, i)
		seen[k] = i
	}
}
