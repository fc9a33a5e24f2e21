package conway_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/polyhedra/conway"
	"github.com/katalvlaran/polyhedra/flag"
	"github.com/katalvlaran/polyhedra/polyhedron"
)

const eps = 1e-9

func TestAmbo_Tetrahedron(t *testing.T) {
	t.Parallel()

	out, err := conway.Ambo(tetrahedron(t))
	require.NoError(t, err)
	assert.Equal(t, "aT", out.Name)
	assert.Len(t, out.Vertices, 6)
	assert.Len(t, out.Faces, 8)
	for _, f := range out.Faces {
		assert.Len(t, f, 3, "ambo of a tetrahedron is an octahedron")
	}
}

func TestKis_Cube(t *testing.T) {
	t.Parallel()

	out, err := conway.Kis(cube(t), 0, 0.1)
	require.NoError(t, err)
	assert.Len(t, out.Vertices, 14)
	assert.Len(t, out.Faces, 24)

	// Originals keep indices 0..7; the apex of face 0 (the +Z face) follows.
	assert.Equal(t, cube(t).Vertices, out.Vertices[:8])
	apex := out.Vertices[8]
	assert.InDelta(t, 0, apex.X, eps)
	assert.InDelta(t, 0, apex.Y, eps)
	assert.InDelta(t, 0.807, apex.Z, eps)
}

// TestKis_SideFilter raises only the quads of a pentagonal prism.
func TestKis_SideFilter(t *testing.T) {
	t.Parallel()

	prism, err := polyhedron.Prism(5)
	require.NoError(t, err)

	out, err := conway.Kis(prism, 4, 0.1)
	require.NoError(t, err)
	assert.Equal(t, "k4R5", out.Name)
	assert.Len(t, out.Vertices, 15)
	assert.Len(t, out.Faces, 22)
	pentagons := 0
	for _, f := range out.Faces {
		if len(f) == 5 {
			pentagons++
		}
	}
	assert.Equal(t, 2, pentagons)
	requireClosed(t, out)
}

// TestNoMatchingFaces: an n filter that matches nothing yields a renamed
// copy and a log line, not an error.
func TestNoMatchingFaces(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	out, err := conway.Inset(cube(t), 3, 0.3, -0.1, conway.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, "n3C", out.Name)
	assert.Len(t, out.Vertices, 8)
	assert.Len(t, out.Faces, 6)
	requireClosed(t, out)
	assert.Contains(t, buf.String(), conway.ErrNoMatchingFaces.Error())

	buf.Reset()
	out, err = conway.Kis(cube(t), 5, 0.1, conway.WithLogger(logger))
	require.NoError(t, err)
	assert.Len(t, out.Faces, 6)
	assert.Contains(t, buf.String(), "Kis: n=5")
}

func TestNegativeN(t *testing.T) {
	t.Parallel()

	c := cube(t)
	_, err := conway.Kis(c, -1, 0.1)
	require.ErrorIs(t, err, conway.ErrNegativeN)
	_, err = conway.KisParallel(c, -1, 0.1)
	require.ErrorIs(t, err, conway.ErrNegativeN)
	_, err = conway.Inset(c, -3, 0.3, 0)
	require.ErrorIs(t, err, conway.ErrNegativeN)
	_, err = conway.Extrude(c, -3)
	require.ErrorIs(t, err, conway.ErrNegativeN)
	_, err = conway.Loft(c, -3, 0.1)
	require.ErrorIs(t, err, conway.ErrNegativeN)
}

func TestChamfer_Cube(t *testing.T) {
	t.Parallel()

	out, err := conway.Chamfer(cube(t), 0.05)
	require.NoError(t, err)
	assert.Len(t, out.Faces, 18)

	sides := map[int]int{}
	for _, f := range out.Faces {
		sides[len(f)]++
	}
	assert.Equal(t, map[int]int{4: 6, 6: 12}, sides)
}

func TestDual_Twice(t *testing.T) {
	t.Parallel()

	d, err := conway.Dual(cube(t))
	require.NoError(t, err)
	dd, err := conway.Dual(d)
	require.NoError(t, err)
	assert.Equal(t, "ddC", dd.Name)
	assert.Len(t, dd.Vertices, 8)
	assert.Len(t, dd.Faces, 6)
	for _, f := range dd.Faces {
		assert.Len(t, f, 4)
	}
}

func TestDual_OpenEdge(t *testing.T) {
	t.Parallel()

	c := cube(t)
	open := polyhedron.New("open", c.Vertices, c.Faces[1:])
	_, err := conway.Dual(open)
	require.ErrorIs(t, err, conway.ErrOpenEdge)
}

// TestReflect_KeepsOutwardWinding mirrors the cube and checks every face
// still points away from the body.
func TestReflect_KeepsOutwardWinding(t *testing.T) {
	t.Parallel()

	c := cube(t)
	out, err := conway.Reflect(c)
	require.NoError(t, err)
	assert.Equal(t, "rC", out.Name)
	for i, v := range out.Vertices {
		assert.Equal(t, r3.Scale(-1, c.Vertices[i]), v)
	}
	for i, f := range out.Faces {
		n := out.FaceNormal(f)
		assert.Greater(t, r3.Dot(n, out.FaceCenter(f)), 0.0, "face %d", i)
		assert.Equal(t, c.Faces[i][0], f[len(f)-1])
	}
}

func TestExtrude_Distance(t *testing.T) {
	t.Parallel()

	c := cube(t)
	out, err := conway.Extrude(c, 4, conway.WithExtrudeDist(0.5))
	require.NoError(t, err)
	assert.Equal(t, "x4C", out.Name)

	// Every new vertex sits 0.5 outside a cube corner along one axis.
	for _, v := range out.Vertices[8:] {
		far := 0
		for _, x := range []float64{v.X, v.Y, v.Z} {
			if x > 1.2 || x < -1.2 {
				far++
			}
		}
		assert.Equal(t, 1, far, "%v", v)
	}
}

func TestLoft_Name(t *testing.T) {
	t.Parallel()

	out, err := conway.Loft(cube(t), 4, 0.3)
	require.NoError(t, err)
	assert.Equal(t, "l4C", out.Name)
	requireClosed(t, out)
}

// TestDegenerateFaces passes the 31-gon caps of a prism through a kis
// filter; their map walk exceeds flag.MaxFaceSteps and degrades.
func TestDegenerateFaces(t *testing.T) {
	t.Parallel()

	prism, err := polyhedron.Prism(31)
	require.NoError(t, err)

	var (
		got []flag.Warning
		buf bytes.Buffer
	)
	out, err := conway.Kis(prism, 4, 0.1,
		conway.WithDegenerateHandler(func(w flag.Warning) { got = append(got, w) }),
		conway.WithLogger(log.New(&buf, "", 0)),
	)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, w := range got {
		assert.Equal(t, flag.MaxFaceSteps, w.Steps)
	}
	assert.Contains(t, buf.String(), "degenerated")

	assert.Len(t, out.Vertices, 93)
	assert.Len(t, out.Faces, 2+31*4)
	require.NoError(t, out.Validate())
	assert.Len(t, out.Faces[0], 3)
}

func TestHollow_Cube(t *testing.T) {
	t.Parallel()

	out, err := conway.Hollow(cube(t), 0.2, 0.1)
	require.NoError(t, err)
	assert.Len(t, out.Vertices, 64)
	assert.Len(t, out.Faces, 72)
	assert.Equal(t, -8, out.Euler(), "genus 5")
}
