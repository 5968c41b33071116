package island

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texelforge/texeluv/internal/geom"
	"github.com/texelforge/texeluv/internal/mesh"
)

func TestDetectContiguousPlaneIsOneIsland(t *testing.T) {
	m := mesh.Plane(4, 3)
	m.ProjectUVsXY(0.1)

	islands := Detect(m.Faces)
	require.Len(t, islands, 1)
	assert.Len(t, islands[0].Faces, 12)
	assert.Equal(t, 48, islands[0].NumUV)
}

func TestDetectSplitsOnUVDiscontinuity(t *testing.T) {
	m := mesh.Plane(2, 1)
	m.ProjectUVsXY(0.5)
	// Shift one face away in UV space; the shared mesh edge no longer
	// shares UV coordinates, so the faces land in separate islands.
	for _, l := range m.Faces[1].Loops {
		l.UV = l.UV.Add(geom.V(10, 0))
	}

	islands := Detect(m.Faces)
	assert.Len(t, islands, 2)
}

func TestDetectToleratesTinyUVJitter(t *testing.T) {
	m := mesh.Plane(2, 1)
	m.ProjectUVsXY(0.5)
	// Jitter well below the key rounding; the faces must stay connected.
	for _, l := range m.Faces[1].Loops {
		l.UV = l.UV.Add(geom.V(1e-9, -1e-9))
	}

	islands := Detect(m.Faces)
	assert.Len(t, islands, 1)
}

func TestDetectSelectedSplitsByFaceSelection(t *testing.T) {
	m := mesh.Plane(3, 1)
	m.ProjectUVsXY(0.25)
	m.Faces[0].Selected = true

	selected, others := DetectSelected(m)
	require.Len(t, selected, 1)
	require.Len(t, others, 1)
	assert.Len(t, selected[0].Faces, 1)
	assert.Len(t, others[0].Faces, 2)
}

func TestCalcPixelBounds(t *testing.T) {
	m := mesh.Plane(1, 1)
	m.ProjectUVsXY(0.25) // UVs span (0,0)..(0.25,0.25)

	isl := New(m.Faces)
	r := isl.CalcPixelBounds(16, 0)
	assert.Equal(t, geom.Vi(0, 0), r.Min)
	assert.Equal(t, geom.Vi(4, 4), r.Max)

	// Padding expands the box before snapping to texels.
	r = isl.CalcPixelBounds(16, 0.5)
	assert.Equal(t, geom.Vi(-1, -1), r.Min)
	assert.Equal(t, geom.Vi(5, 5), r.Max)
}

// islandWithPixelBounds fabricates a one-face island whose pixel bounds on
// a 16px texture are exactly the given rect.
func islandWithPixelBounds(t *testing.T, min, max geom.Vec2i) *Island {
	t.Helper()
	m := mesh.New()
	a := m.AddVert(geom.V3(0, 0, 0))
	b := m.AddVert(geom.V3(1, 0, 0))
	c := m.AddVert(geom.V3(1, 1, 0))
	d := m.AddVert(geom.V3(0, 1, 0))
	f := m.AddFace(a, b, c, d)
	lo := min.ToVec2().Div(16)
	hi := max.ToVec2().Div(16)
	f.Loops[0].UV = lo
	f.Loops[1].UV = geom.V(hi.X, lo.Y)
	f.Loops[2].UV = hi
	f.Loops[3].UV = geom.V(lo.X, hi.Y)

	isl := New([]*mesh.Face{f})
	r := isl.CalcPixelBounds(16, 0)
	require.Equal(t, geom.Rect{Min: min, Max: max}, r)
	return isl
}

func TestMergeOverlappingCollapsesOverlapChain(t *testing.T) {
	islands := []*Island{
		islandWithPixelBounds(t, geom.Vi(0, 0), geom.Vi(4, 4)),
		islandWithPixelBounds(t, geom.Vi(3, 3), geom.Vi(8, 8)),
		islandWithPixelBounds(t, geom.Vi(20, 20), geom.Vi(24, 24)),
	}

	merged := MergeOverlapping(islands)
	require.Len(t, merged, 2)
	assert.Len(t, merged[0].Faces, 2)
	assert.Equal(t, geom.Rect{Min: geom.Vi(0, 0), Max: geom.Vi(8, 8)}, merged[0].PixelBounds)
	assert.Len(t, merged[1].Faces, 1)
}

func TestMergeOverlappingLeavesTouchingIslandsApart(t *testing.T) {
	islands := []*Island{
		islandWithPixelBounds(t, geom.Vi(0, 0), geom.Vi(4, 4)),
		islandWithPixelBounds(t, geom.Vi(4, 0), geom.Vi(8, 4)),
	}

	merged := MergeOverlapping(islands)
	assert.Len(t, merged, 2)
}

func TestMergeOverlappingIsIdempotent(t *testing.T) {
	islands := []*Island{
		islandWithPixelBounds(t, geom.Vi(0, 0), geom.Vi(4, 4)),
		islandWithPixelBounds(t, geom.Vi(3, 3), geom.Vi(8, 8)),
	}

	merged := MergeOverlapping(islands)
	again := MergeOverlapping(merged)
	assert.Len(t, again, 1)
	assert.Same(t, merged[0], again[0])
}

func TestMergeCombinesWeightedAverage(t *testing.T) {
	a := islandWithPixelBounds(t, geom.Vi(0, 0), geom.Vi(4, 4))
	b := islandWithPixelBounds(t, geom.Vi(4, 4), geom.Vi(8, 8))

	avgA, avgB := a.AverageUV, b.AverageUV
	a.Merge(b)

	assert.Equal(t, 8, a.NumUV)
	want := avgA.Add(avgB).Div(2)
	assert.InDelta(t, want.X, a.AverageUV.X, 1e-12)
	assert.InDelta(t, want.Y, a.AverageUV.Y, 1e-12)
	assert.Equal(t, geom.Rect{Min: geom.Vi(0, 0), Max: geom.Vi(8, 8)}, a.PixelBounds)
}

func TestAnyPinned(t *testing.T) {
	m := mesh.Plane(2, 1)
	m.ProjectUVsXY(0.5)
	isl := New(m.Faces)

	assert.False(t, isl.AnyPinned())
	m.Faces[1].Loops[2].Pinned = true
	assert.True(t, isl.AnyPinned())
}

func TestAnyOrientationLocked(t *testing.T) {
	m := mesh.Plane(2, 1)
	m.ProjectUVsXY(0.5)
	isl := New(m.Faces)

	// Without the attribute layer nothing counts as locked.
	assert.False(t, isl.AnyOrientationLocked(m))

	layer := m.EnsureIntLayer(OrientationLockLayer)
	assert.False(t, isl.AnyOrientationLocked(m))

	layer[m.Faces[0].Index] = 1
	assert.True(t, isl.AnyOrientationLocked(m))
}

func TestBoundaryLoopsSingleRim(t *testing.T) {
	m := mesh.Plane(2, 2)
	m.ProjectUVsXY(0.5)
	isl := New(m.Faces)

	loops, err := isl.BoundaryLoops()
	require.NoError(t, err)
	require.Len(t, loops, 1)
	require.Len(t, loops[0], 8)

	// The interior vertex of a 2x2 plane must not appear on the rim.
	center := m.Verts[4]
	for _, v := range loops[0] {
		assert.NotSame(t, center, v)
	}
}

func TestBoundaryLoopsDisjointFaces(t *testing.T) {
	m := mesh.New()
	var faces []*mesh.Face
	for i := 0; i < 2; i++ {
		x := float64(i * 3)
		a := m.AddVert(geom.V3(x, 0, 0))
		b := m.AddVert(geom.V3(x+1, 0, 0))
		c := m.AddVert(geom.V3(x+1, 1, 0))
		d := m.AddVert(geom.V3(x, 1, 0))
		faces = append(faces, m.AddFace(a, b, c, d))
	}
	m.ProjectUVsXY(0.1)

	isl := New(faces)
	loops, err := isl.BoundaryLoops()
	require.NoError(t, err)
	require.Len(t, loops, 2)
	assert.Len(t, loops[0], 4)
	assert.Len(t, loops[1], 4)
}
