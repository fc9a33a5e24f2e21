package flag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/key"
)

func square() []r3.Vec {
	return []r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// TestAddVertices_DeclaresIndexKeys checks New1(i) keys and that unreferenced
// vertices survive resolution.
func TestAddVertices_DeclaresIndexKeys(t *testing.T) {
	t.Parallel()

	f := flag.New(4)
	f.AddVertices(square())
	f.AddFace(key.New1(0), key.New1(1), key.New1(2))
	require.Equal(t, 4, f.VertexDecls())

	m, err := f.Resolve()
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 4)
	assert.Equal(t, [][]int{{0, 1, 2}}, m.Faces)
	assert.Equal(t, r3.Vec{X: 0, Y: 1}, m.Vertices[3])
}

// TestDedupe_FirstDeclarationWins declares the same key with two coordinates.
func TestDedupe_FirstDeclarationWins(t *testing.T) {
	t.Parallel()

	f := flag.New(0)
	k := key.New2(0, 1)
	f.AddVertex(k, r3.Vec{X: 1})
	f.AddVertex(key.New1(7), r3.Vec{Y: 7})
	f.AddVertex(k, r3.Vec{X: 2})
	f.AddVertex(key.New1(8), r3.Vec{Y: 8})
	f.AddFace(key.New1(7), k, key.New1(8))

	m, err := f.Resolve()
	require.NoError(t, err)
	require.Len(t, m.Vertices, 3)
	// Key order: New2(0,1) = [1 2 0 0] < New1(7) = [8 0 0 0] < New1(8).
	assert.Equal(t, r3.Vec{X: 1}, m.Vertices[0])
	assert.Equal(t, r3.Vec{Y: 7}, m.Vertices[1])
	assert.Equal(t, [][]int{{1, 0, 2}}, m.Faces)
}

// TestVertexOrder_IsKeyOrder verifies indices follow key order, not
// declaration order.
func TestVertexOrder_IsKeyOrder(t *testing.T) {
	t.Parallel()

	f := flag.New(3)
	f.AddVertex(key.New1(2), r3.Vec{Z: 2})
	f.AddVertex(key.New1(0), r3.Vec{Z: 0})
	f.AddVertex(key.New1(1), r3.Vec{Z: 1})

	m, err := f.Resolve()
	require.NoError(t, err)
	for i, v := range m.Vertices {
		assert.Equal(t, float64(i), v.Z)
	}
	assert.Empty(t, m.Faces)
}

func TestFaceDecls(t *testing.T) {
	t.Parallel()

	f := flag.New(0)
	f.AddFace(key.New1(0), key.New1(1), key.New1(2))
	f.AddFaceMap(key.New1(0), key.New1(0), key.New1(1))
	f.AddFaceMap(key.New1(0), key.New1(1), key.New1(0))
	explicit, edges := f.FaceDecls()
	assert.Equal(t, 1, explicit)
	assert.Equal(t, 2, edges)
}

// TestAddFace_CopiesKeys ensures the caller may reuse its slice.
func TestAddFace_CopiesKeys(t *testing.T) {
	t.Parallel()

	f := flag.New(0)
	f.AddVertices(square())
	keys := []key.Key{key.New1(0), key.New1(1), key.New1(2)}
	f.AddFace(keys...)
	keys[0] = key.New1(3)

	m, err := f.Resolve()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, m.Faces)
}

func TestMesh_Offset(t *testing.T) {
	t.Parallel()

	m := flag.Mesh{
		Vertices: square(),
		Faces:    [][]int{{0, 1, 2}, {2, 3, 0}},
	}
	shifted := m.Offset(10)
	assert.Equal(t, [][]int{{10, 11, 12}, {12, 13, 10}}, shifted.Faces)
	assert.Equal(t, [][]int{{0, 1, 2}, {2, 3, 0}}, m.Faces, "source must be untouched")
	assert.Len(t, shifted.Vertices, 4)
}

func TestWarning_String(t *testing.T) {
	t.Parallel()

	w := flag.Warning{Face: key.New1(3), Steps: 30, Reason: "chain did not close"}
	assert.Equal(t, "face (3) degenerated after 30 steps: chain did not close", w.String())
}
