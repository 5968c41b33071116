package uvedit

import (
	"math"

	"github.com/texelforge/texeluv/internal/geom"
	"github.com/texelforge/texeluv/internal/mesh"
)

// TranslateRotateScale applies rotation (radians), then uniform scale,
// then translation to every loop UV of the given faces.
func TranslateRotateScale(faces []*mesh.Face, translate geom.Vec2, rotate, scale float64) {
	t := geom.Translation(translate.X, translate.Y).
		Mul(geom.Scaling(scale, scale)).
		Mul(geom.Rotation(rotate))
	for _, f := range faces {
		for _, l := range f.Loops {
			l.UV = t.Apply(l.UV)
		}
	}
}

// Translate moves every loop UV by the given offset.
func Translate(faces []*mesh.Face, offset geom.Vec2) {
	TranslateRotateScale(faces, offset, 0, 1)
}

// ScaleXY scales loop UVs per axis about the origin.
func ScaleXY(faces []*mesh.Face, scale geom.Vec2) {
	for _, f := range faces {
		for _, l := range f.Loops {
			l.UV = l.UV.ScaleXY(scale.X, scale.Y)
		}
	}
}

// Rotate90AboutPivot turns the faces' UVs a quarter turn counter-clockwise
// around the given pivot. The pivot is folded into the translation: rotate
// the pivot itself, and offsetting by the difference puts it back.
func Rotate90AboutPivot(faces []*mesh.Face, pivot geom.Vec2) {
	transformedPivot := geom.V(-pivot.Y, pivot.X)
	offset := pivot.Sub(transformedPivot)
	TranslateRotateScale(faces, offset, math.Pi/2, 1)
}

// SnapToTexelCorner rounds every loop UV to the nearest texel corner.
// Pinned loops are left alone when skipPinned is set.
func SnapToTexelCorner(faces []*mesh.Face, textureSize int, skipPinned bool) {
	ts := float64(textureSize)
	for _, f := range faces {
		for _, l := range f.Loops {
			if skipPinned && l.Pinned {
				continue
			}
			l.UV = geom.V(math.Round(l.UV.X*ts)/ts, math.Round(l.UV.Y*ts)/ts)
		}
	}
}

// Pin sets or clears the pin flag on every loop of the given faces.
func Pin(faces []*mesh.Face, pin bool) {
	for _, f := range faces {
		for _, l := range f.Loops {
			l.Pinned = pin
		}
	}
}

// AnyPinned reports whether any loop of the given faces is pinned.
func AnyPinned(faces []*mesh.Face) bool {
	for _, f := range faces {
		for _, l := range f.Loops {
			if l.Pinned {
				return true
			}
		}
	}
	return false
}

// FaceUVArea returns the UV-space area of one face via fan triangulation.
func FaceUVArea(f *mesh.Face) float64 {
	if len(f.Loops) < 3 {
		return 0
	}
	origin := f.Loops[0].UV
	area := 0.0
	for i := 1; i < len(f.Loops)-1; i++ {
		a := f.Loops[i].UV.Sub(origin)
		b := f.Loops[i+1].UV.Sub(origin)
		area += a.X*b.Y - a.Y*b.X
	}
	return math.Abs(0.5 * area)
}

// TexelDensity measures the current texels-per-mesh-unit density of the
// faces: the square root of the total UV area in texels over the square
// root of the total mesh area.
func TexelDensity(faces []*mesh.Face, textureSize int) float64 {
	meshArea := 0.0
	uvArea := 0.0
	for _, f := range faces {
		meshArea += f.Area()
		uvArea += FaceUVArea(f)
	}
	ts := float64(textureSize)
	uvArea *= ts * ts
	if meshArea == 0 {
		return 0
	}
	return math.Sqrt(uvArea) / math.Sqrt(meshArea)
}

// ScaleTexelDensity uniformly rescales the faces' UVs about the origin so
// their density matches the target.
func ScaleTexelDensity(faces []*mesh.Face, textureSize int, targetDensity float64) {
	current := TexelDensity(faces, textureSize)
	if current == 0 {
		return
	}
	TranslateRotateScale(faces, geom.Vec2{}, 0, targetDensity/current)
}
