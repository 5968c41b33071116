package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texelforge/texeluv/internal/geom"
)

func pixel(t *testing.T, p *PixelArray, x, y int) [4]float64 {
	t.Helper()
	r, g, b, a := p.GetPixel(geom.Vi(x, y))
	return [4]float64{r, g, b, a}
}

func TestNewCheckerQuadrantColors(t *testing.T) {
	p := NewChecker(32)

	assert.Equal(t, [4]float64{0.8, 0, 0, 1}, pixel(t, p, 0, 0), "top-left quadrant is red")
	assert.Equal(t, [4]float64{0, 0.8, 0, 1}, pixel(t, p, 8, 0), "top-right quadrant is green")
	assert.Equal(t, [4]float64{0.4, 0.4, 1, 1}, pixel(t, p, 0, 8), "bottom-left quadrant is blue")
	assert.Equal(t, [4]float64{1, 0.6, 0, 1}, pixel(t, p, 9, 9), "bottom-right quadrant is yellow")

	// Alternate texels are dimmed to 70%.
	dim := pixel(t, p, 1, 0)
	assert.InDelta(t, 0.8*0.7, dim[0], 1e-12)
	assert.InDelta(t, 0.7, dim[3], 1e-12)
}

func TestGetPixelWrapsToroidally(t *testing.T) {
	p := New(4, 4)
	p.SetPixel(geom.Vi(3, 3), 1, 0, 0, 1)

	assert.Equal(t, [4]float64{1, 0, 0, 1}, pixel(t, p, -1, -1))
	assert.Equal(t, [4]float64{1, 0, 0, 1}, pixel(t, p, 7, 7))
}

func TestFromPixelsRejectsWrongLength(t *testing.T) {
	_, err := FromPixels(2, 2, make([]float64, 15))
	assert.Error(t, err)

	p, err := FromPixels(2, 2, make([]float64, 16))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Width)
}

func TestCopyRegionRotates(t *testing.T) {
	src := New(4, 4)
	src.SetPixel(geom.Vi(0, 0), 1, 0, 0, 1)
	src.SetPixel(geom.Vi(1, 0), 0, 1, 0, 1)

	dst := New(4, 4)
	dst.CopyRegion(src, geom.Vi(0, 0), geom.Vi(2, 1), geom.Vi(0, 0), true)

	// A quarter turn maps the 2x1 strip onto a 1x2 column.
	assert.Equal(t, [4]float64{1, 0, 0, 1}, pixel(t, dst, 0, 0))
	assert.Equal(t, [4]float64{0, 1, 0, 1}, pixel(t, dst, 0, 1))
}

func TestCopyRegionTransformedQuarterTurn(t *testing.T) {
	src := New(4, 4)
	src.SetPixel(geom.Vi(0, 0), 1, 0, 0, 1)

	region := geom.NewRect(geom.Vi(0, 0), geom.Vi(4, 4))
	turn := geom.AboutPivot(geom.V(2, 2), geom.RotationQuarters(1))

	dst := New(4, 4)
	require.NoError(t, dst.CopyRegionTransformed(src, region, turn))
	assert.Equal(t, [4]float64{1, 0, 0, 1}, pixel(t, dst, 3, 0))
}

func TestCopyRegionTransformedIdentityRoundTrip(t *testing.T) {
	src := NewChecker(16)
	region := geom.NewRect(geom.Vi(4, 4), geom.Vi(8, 8))
	pivot := geom.V(8, 8)

	// Quarter turn composed with its inverse about the same pivot is the
	// identity; nearest-neighbor sampling of it must be lossless.
	composed := geom.AboutPivot(pivot, geom.RotationQuarters(3)).
		Mul(geom.AboutPivot(pivot, geom.RotationQuarters(1)))

	dst := New(16, 16)
	require.NoError(t, dst.CopyRegionTransformed(src, region, composed))

	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			assert.Equal(t, pixel(t, src, x, y), pixel(t, dst, x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestCopyRegionTransformedClampsWrites(t *testing.T) {
	src := New(8, 8)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetPixel(geom.Vi(x, y), 1, 1, 1, 1)
		}
	}

	dst := New(8, 8)
	region := geom.NewRect(geom.Vi(0, 0), geom.Vi(4, 4))
	// Shift the region so half of it falls off the right edge.
	shift := geom.Translation(6, 0)

	require.NoError(t, dst.CopyRegionTransformed(src, region, shift))

	assert.Equal(t, [4]float64{1, 1, 1, 1}, pixel(t, dst, 6, 0))
	assert.Equal(t, [4]float64{1, 1, 1, 1}, pixel(t, dst, 7, 3))
	// Nothing wrapped around to the left column.
	assert.Equal(t, [4]float64{0, 0, 0, 0}, pixel(t, dst, 0, 0))
}

func TestCopyRegionTransformedRejectsSingularTransform(t *testing.T) {
	dst := New(4, 4)
	err := dst.CopyRegionTransformed(New(4, 4), geom.NewRect(geom.Vi(0, 0), geom.Vi(2, 2)), geom.Scaling(0, 0))
	assert.Error(t, err)
}
