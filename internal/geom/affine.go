package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Affine is a 3×3 matrix over homogeneous 2D coordinates, stored row-major.
// It expresses any combination of translation, scaling, quarter rotation and
// mirroring used for UV and pixel-space edits.
type Affine struct {
	m [9]float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{m: [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// Translation returns a transform that shifts by (tx, ty).
func Translation(tx, ty float64) Affine {
	return Affine{m: [9]float64{
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	}}
}

// Scaling returns a transform that scales each axis independently.
// Negative factors mirror the corresponding axis.
func Scaling(sx, sy float64) Affine {
	return Affine{m: [9]float64{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}}
}

// RotationQuarters returns an exact counter-clockwise rotation by n quarter
// turns. Exact integer entries keep nearest-neighbor sampling lossless, which
// a trigonometric rotation by n*π/2 would not guarantee.
func RotationQuarters(n int) Affine {
	n = ((n % 4) + 4) % 4
	switch n {
	case 1:
		return Affine{m: [9]float64{0, -1, 0, 1, 0, 0, 0, 0, 1}}
	case 2:
		return Affine{m: [9]float64{-1, 0, 0, 0, -1, 0, 0, 0, 1}}
	case 3:
		return Affine{m: [9]float64{0, 1, 0, -1, 0, 0, 0, 0, 1}}
	default:
		return Identity()
	}
}

// Rotation returns a counter-clockwise rotation by the given angle in radians.
func Rotation(angle float64) Affine {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Affine{m: [9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

// SwapXY returns the transform that exchanges the two axes (transpose).
func SwapXY() Affine {
	return Affine{m: [9]float64{
		0, 1, 0,
		1, 0, 0,
		0, 0, 1,
	}}
}

// FlipXAcross mirrors the X axis across a grid of the given width, mapping
// column 0 to column width-1.
func FlipXAcross(width int) Affine {
	return Affine{m: [9]float64{
		-1, 0, float64(width - 1),
		0, 1, 0,
		0, 0, 1,
	}}
}

// FlipYAcross mirrors the Y axis across a grid of the given height.
func FlipYAcross(height int) Affine {
	return Affine{m: [9]float64{
		1, 0, 0,
		0, -1, float64(height - 1),
		0, 0, 1,
	}}
}

// AboutPivot wraps a transform so it is applied around the given pivot point
// instead of the origin.
func AboutPivot(pivot Vec2, inner Affine) Affine {
	return Translation(pivot.X, pivot.Y).Mul(inner).Mul(Translation(-pivot.X, -pivot.Y))
}

// Mul returns the composition a∘b: b is applied first, then a.
func (a Affine) Mul(b Affine) Affine {
	var out mat.Dense
	out.Mul(a.dense(), b.dense())
	return fromDense(&out)
}

// Inverse returns the inverse transform. Transforms composed from
// translation, non-zero scaling, rotation and mirroring are always
// invertible.
func (a Affine) Inverse() (Affine, error) {
	var inv mat.Dense
	if err := inv.Inverse(a.dense()); err != nil {
		return Affine{}, fmt.Errorf("affine transform is singular: %w", err)
	}
	return fromDense(&inv), nil
}

// Apply transforms a point, including translation.
func (a Affine) Apply(v Vec2) Vec2 {
	return Vec2{
		X: a.m[0]*v.X + a.m[1]*v.Y + a.m[2],
		Y: a.m[3]*v.X + a.m[4]*v.Y + a.m[5],
	}
}

// ApplyVector transforms a direction, ignoring translation.
func (a Affine) ApplyVector(v Vec2) Vec2 {
	return Vec2{
		X: a.m[0]*v.X + a.m[1]*v.Y,
		Y: a.m[3]*v.X + a.m[4]*v.Y,
	}
}

// ApplyVec2i transforms an integer point and rounds the result back to
// integers. Used for grid-coordinate transforms whose entries are all
// integral.
func (a Affine) ApplyVec2i(v Vec2i) Vec2i {
	p := a.Apply(v.ToVec2())
	return Vec2i{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

func (a Affine) dense() *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d.Set(i, j, a.m[i*3+j])
		}
	}
	return d
}

func fromDense(d *mat.Dense) Affine {
	var a Affine
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a.m[i*3+j] = d.At(i, j)
		}
	}
	return a
}
