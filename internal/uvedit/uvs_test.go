package uvedit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texelforge/texeluv/internal/geom"
	"github.com/texelforge/texeluv/internal/mesh"
)

func TestTranslateRotateScale(t *testing.T) {
	m := mesh.Plane(1, 1)
	m.ProjectUVsXY(1)

	TranslateRotateScale(m.Faces, geom.V(1, 2), math.Pi/2, 2)

	// Corner (1,0): quarter turn to (0,1), doubled to (0,2), then moved.
	uv := m.Faces[0].Loops[1].UV
	assert.InDelta(t, 1, uv.X, 1e-9)
	assert.InDelta(t, 4, uv.Y, 1e-9)
}

func TestRotate90AboutPivotKeepsPivotFixed(t *testing.T) {
	m := mesh.Plane(1, 1)
	m.ProjectUVsXY(1)
	m.Faces[0].Loops[0].UV = geom.V(0.5, 0.5)

	Rotate90AboutPivot(m.Faces, geom.V(0.5, 0.5))

	uv := m.Faces[0].Loops[0].UV
	assert.InDelta(t, 0.5, uv.X, 1e-9)
	assert.InDelta(t, 0.5, uv.Y, 1e-9)

	// Corner right of the pivot ends up above it.
	uv = m.Faces[0].Loops[1].UV
	assert.InDelta(t, 1, uv.X, 1e-9)
	assert.InDelta(t, 1, uv.Y, 1e-9)
}

func TestSnapToTexelCornerSkipsPinned(t *testing.T) {
	m := mesh.Plane(1, 1)
	m.Faces[0].Loops[0].UV = geom.V(0.24, 0.26)
	m.Faces[0].Loops[1].UV = geom.V(0.24, 0.26)
	m.Faces[0].Loops[1].Pinned = true

	SnapToTexelCorner(m.Faces, 4, true)

	assert.Equal(t, geom.V(0.25, 0.25), m.Faces[0].Loops[0].UV)
	assert.Equal(t, geom.V(0.24, 0.26), m.Faces[0].Loops[1].UV)
}

func TestPinAndAnyPinned(t *testing.T) {
	m := mesh.Plane(2, 1)
	assert.False(t, AnyPinned(m.Faces))

	Pin(m.Faces[:1], true)
	assert.True(t, AnyPinned(m.Faces))

	Pin(m.Faces, false)
	assert.False(t, AnyPinned(m.Faces))
}

func TestTexelDensity(t *testing.T) {
	// A unit quad mapped to a quarter of a 16px texture covers 4x4
	// texels, so density is 4 texels per unit.
	m := mesh.Plane(1, 1)
	m.ProjectUVsXY(0.25)

	assert.InDelta(t, 4, TexelDensity(m.Faces, 16), 1e-9)
}

func TestScaleTexelDensity(t *testing.T) {
	m := mesh.Plane(1, 1)
	m.ProjectUVsXY(0.25)

	ScaleTexelDensity(m.Faces, 16, 8)

	assert.InDelta(t, 8, TexelDensity(m.Faces, 16), 1e-9)
	// Scaling is uniform about the origin.
	assert.InDelta(t, 0.5, m.Faces[0].Loops[2].UV.X, 1e-9)
}

func TestFaceUVArea(t *testing.T) {
	m := mesh.Plane(1, 1)
	m.ProjectUVsXY(0.5)

	assert.InDelta(t, 0.25, FaceUVArea(m.Faces[0]), 1e-9)
}

func TestFindQuadGroupsSingleGroupTakesAllNonQuads(t *testing.T) {
	m := mesh.Plane(2, 1)
	a := m.AddVert(geom.V3(5, 0, 0))
	b := m.AddVert(geom.V3(6, 0, 0))
	c := m.AddVert(geom.V3(5.5, 1, 0))
	tri := m.AddFace(a, b, c)

	groups, attached := FindQuadGroups(m.Faces)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
	require.Len(t, attached, 1)
	assert.Equal(t, []*mesh.Face{tri}, attached[0])
}

func TestFindQuadGroupsAssignsNonQuadToNearestGroup(t *testing.T) {
	m := mesh.New()
	quad := func(x float64) *mesh.Face {
		a := m.AddVert(geom.V3(x, 0, 0))
		b := m.AddVert(geom.V3(x+1, 0, 0))
		c := m.AddVert(geom.V3(x+1, 1, 0))
		d := m.AddVert(geom.V3(x, 1, 0))
		return m.AddFace(a, b, c, d)
	}
	far := quad(0)
	near := quad(10)
	ta := m.AddVert(geom.V3(12, 0, 0))
	tb := m.AddVert(geom.V3(13, 0, 0))
	tc := m.AddVert(geom.V3(12.5, 1, 0))
	tri := m.AddFace(ta, tb, tc)

	groups, attached := FindQuadGroups(m.Faces)
	require.Len(t, groups, 2)

	for i, g := range groups {
		switch g[0] {
		case near:
			assert.Equal(t, []*mesh.Face{tri}, attached[i])
		case far:
			assert.Empty(t, attached[i])
		}
	}
}

func TestCheckSingleMaterial(t *testing.T) {
	m := mesh.Plane(2, 1)
	assert.NoError(t, CheckSingleMaterial(m.Faces))

	m.Faces[1].MaterialIndex = 3
	err := CheckSingleMaterial(m.Faces)
	var matErr *MultipleMaterialsError
	require.ErrorAs(t, err, &matErr)
	assert.Equal(t, []int{0, 3}, matErr.Materials)
}
