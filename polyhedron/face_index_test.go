package polyhedron_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/polyhedron"
)

func TestFaceIndex_Cube(t *testing.T) {
	t.Parallel()

	p := mustPlatonic(t, polyhedron.Cube)
	idx := polyhedron.NewFaceIndex(p)
	assert.Equal(t, 24, idx.Len())

	// Face 0 is {3,0,1,2}; its closing edge 2→3 is indexed too.
	f, ok := idx.Face(2, 3)
	require.True(t, ok)
	assert.Equal(t, 0, f)

	// Across edge 3→0 lies face 1 {3,4,5,0}, which walks 0→3.
	opp, ok := idx.Opposite(3, 0)
	require.True(t, ok)
	assert.Equal(t, 1, opp)

	_, ok = idx.Face(0, 7)
	assert.False(t, ok, "0 and 7 are not adjacent")
}

func TestFaceIndex_OpenMesh(t *testing.T) {
	t.Parallel()

	p := polyhedron.New("tri", []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}, [][]int{{0, 1, 2}})
	idx := polyhedron.NewFaceIndex(p)
	assert.Equal(t, 3, idx.Len())
	_, ok := idx.Opposite(0, 1)
	assert.False(t, ok)
}
