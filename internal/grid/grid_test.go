package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texelforge/texeluv/internal/geom"
	"github.com/texelforge/texeluv/internal/mesh"
)

func TestBuildRectangularGrid(t *testing.T) {
	// A full N×M arrangement of quads maps to exactly N×M unique
	// coordinates spanning (0,0)..(N-1,M-1).
	m := mesh.Plane(4, 3)
	g, err := Build(m, m.Faces)
	require.NoError(t, err)

	assert.Equal(t, geom.Vi(4, 3), g.Size)
	assert.Equal(t, 12, g.Len())

	seen := make(map[geom.Vec2i]bool)
	for _, gf := range g.Faces() {
		require.False(t, seen[gf.Coord], "coordinate %v assigned twice", gf.Coord)
		seen[gf.Coord] = true
		assert.GreaterOrEqual(t, gf.Coord.X, 0)
		assert.Less(t, gf.Coord.X, 4)
		assert.GreaterOrEqual(t, gf.Coord.Y, 0)
		assert.Less(t, gf.Coord.Y, 3)
	}
}

func TestBuildSingleFace(t *testing.T) {
	m := mesh.Plane(1, 1)
	g, err := Build(m, m.Faces)
	require.NoError(t, err)

	assert.Equal(t, geom.Vi(1, 1), g.Size)
	assert.Equal(t, geom.Vi(0, 0), g.Faces()[0].Coord)
}

func TestBuildEveryFaceHasFourDirectionEdges(t *testing.T) {
	m := mesh.Plane(2, 2)
	g, err := Build(m, m.Faces)
	require.NoError(t, err)

	for _, gf := range g.Faces() {
		found := map[*mesh.Edge]bool{}
		for _, dir := range []Direction{East, North, West, South} {
			e := gf.Edge(dir)
			require.NotNil(t, e)
			require.False(t, found[e], "edge labeled twice on face %d", gf.Face.Index)
			found[e] = true
		}
	}
}

func TestBuildNeighborCoordsAreAdjacent(t *testing.T) {
	// Any two faces sharing an edge must sit one grid step apart.
	m := mesh.Plane(3, 3)
	g, err := Build(m, m.Faces)
	require.NoError(t, err)

	byFace := make(map[int]*GridFace)
	for _, gf := range g.Faces() {
		byFace[gf.Face.Index] = gf
	}

	for _, e := range m.Edges {
		linked := e.LinkedFaces()
		if len(linked) != 2 {
			continue
		}
		a := byFace[linked[0].Index].Coord
		b := byFace[linked[1].Index].Coord
		d := a.Sub(b)
		distSq := d.X*d.X + d.Y*d.Y
		assert.Equal(t, 1, distSq, "faces %d and %d share an edge but sit at %v and %v",
			linked[0].Index, linked[1].Index, a, b)
	}
}

func TestBuildRejectsNonQuads(t *testing.T) {
	m := mesh.New()
	a := m.AddVert(geom.V3(0, 0, 0))
	b := m.AddVert(geom.V3(1, 0, 0))
	c := m.AddVert(geom.V3(1, 1, 0))
	m.AddFace(a, b, c)

	_, err := Build(m, m.Faces)
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, []int{0}, buildErr.NonQuadFaces)
}

func TestBuildDisconnectedSelectionListsUnreached(t *testing.T) {
	// Two 2×2 patches separated by an unselected column cannot be walked
	// as one grid; the error names the patch that was never reached.
	m := mesh.Plane(5, 2)
	var selected []*mesh.Face
	for _, f := range m.Faces {
		x := f.Index % 5
		if x != 2 {
			selected = append(selected, f)
		}
	}

	_, err := Build(m, selected)
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.NotEmpty(t, buildErr.UnreachedFaces)
	assert.Len(t, buildErr.UnreachedFaces, 4, "one whole patch stays unreached")
}

func TestBuildSeamBlocksWalk(t *testing.T) {
	// A seam splits an otherwise connected strip.
	m := mesh.Plane(4, 1)
	seam := m.Faces[1].Edges[1] // right edge of face 1, shared with face 2
	require.Len(t, seam.LinkedFaces(), 2)
	seam.Seam = true

	_, err := Build(m, m.Faces)
	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, []int{2, 3}, buildErr.UnreachedFaces)
}

func TestBuildStartsFromActiveFace(t *testing.T) {
	m := mesh.Plane(3, 2)
	m.Active = m.Faces[4]

	g, err := Build(m, m.Faces)
	require.NoError(t, err)
	// Start choice never changes the normalized result shape.
	assert.Equal(t, geom.Vi(3, 2), g.Size)
}

func TestBuildEmptySelection(t *testing.T) {
	m := mesh.Plane(1, 1)
	_, err := Build(m, nil)
	assert.True(t, errors.As(err, new(*BuildError)))
}
