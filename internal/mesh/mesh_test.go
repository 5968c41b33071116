package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texelforge/texeluv/internal/geom"
)

func TestPlaneTopology(t *testing.T) {
	m := Plane(3, 2)

	assert.Len(t, m.Verts, 4*3)
	assert.Len(t, m.Faces, 6)
	// Edge count of a grid: horizontal runs + vertical runs.
	assert.Len(t, m.Edges, 3*3+4*2)

	for _, f := range m.Faces {
		require.True(t, f.IsQuad())
		require.Len(t, f.Loops, 4)
	}
}

func TestSharedEdgesLinkBothFaces(t *testing.T) {
	m := Plane(2, 1)

	shared := 0
	for _, e := range m.Edges {
		switch len(e.LinkedFaces()) {
		case 1:
			// boundary
		case 2:
			shared++
			assert.NotNil(t, e.OtherFace(e.LinkedFaces()[0]))
		default:
			t.Fatalf("edge %d linked to %d faces", e.Index, len(e.LinkedFaces()))
		}
	}
	assert.Equal(t, 1, shared, "two side-by-side quads share exactly one edge")
}

func TestEdgeBetweenLooksUpEitherOrder(t *testing.T) {
	m := Plane(2, 1)

	// The middle vertical edge joins verts 1 and 4.
	e := m.EdgeBetween(m.Verts[1], m.Verts[4])
	require.NotNil(t, e)
	assert.Same(t, e, m.EdgeBetween(m.Verts[4], m.Verts[1]))
	assert.Len(t, e.LinkedFaces(), 2)

	assert.Nil(t, m.EdgeBetween(m.Verts[0], m.Verts[4]), "diagonal is not an edge")
}

func TestLoopsForEdgeReturnsCornerPair(t *testing.T) {
	m := Plane(1, 1)
	f := m.Faces[0]

	for _, e := range f.Edges {
		loops := f.LoopsForEdge(e)
		require.Len(t, loops, 2)
		for _, l := range loops {
			assert.True(t, e.HasVert(l.Vert))
		}
	}
}

func TestLoopBetweenEdges(t *testing.T) {
	m := Plane(1, 1)
	f := m.Faces[0]

	corner := f.LoopBetweenEdges(f.Edges[0], f.Edges[1])
	require.NotNil(t, corner)
	// The corner between edge 0 and edge 1 is loop 1 by winding convention.
	assert.Same(t, f.Loops[1], corner)

	assert.Nil(t, f.LoopBetweenEdges(f.Edges[0], f.Edges[2]), "opposite edges share no corner")
}

func TestEdgeLength(t *testing.T) {
	m := PlaneSized([]float64{2.5}, []float64{1})
	f := m.Faces[0]

	// Bottom edge spans the 2.5-wide column.
	assert.InDelta(t, 2.5, f.Edges[0].Length(), 1e-12)
	assert.InDelta(t, 1.0, f.Edges[1].Length(), 1e-12)
}

func TestProjectUVsXY(t *testing.T) {
	m := Plane(2, 2)
	m.ProjectUVsXY(0.25)

	f := m.Faces[3] // top-right quad, corners (1,1)..(2,2)
	assert.Equal(t, geom.V(0.25, 0.25), f.Loops[0].UV)
	assert.Equal(t, geom.V(0.5, 0.5), f.Loops[2].UV)
}

func TestIntLayerDefaultAbsent(t *testing.T) {
	m := Plane(1, 1)

	_, ok := m.IntLayer("orientation_locked")
	assert.False(t, ok, "layers do not exist until created")

	layer := m.EnsureIntLayer("orientation_locked")
	layer[0] = 1

	got, ok := m.IntLayer("orientation_locked")
	require.True(t, ok)
	assert.Equal(t, 1, got[0])
}
