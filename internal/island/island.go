// Package island finds connected UV fragments of a mesh, merges the ones
// whose footprints collide, and exposes the pixel-space bounds used by the
// texture packer.
package island

import (
	"math"

	"github.com/google/uuid"

	"github.com/texelforge/texeluv/internal/geom"
	"github.com/texelforge/texeluv/internal/mesh"
)

// UVFace wraps one mesh face with its UV-space bounding box.
type UVFace struct {
	Face *mesh.Face
	Min  geom.Vec2
	Max  geom.Vec2
}

func newUVFace(f *mesh.Face) *UVFace {
	uf := &UVFace{Face: f}
	uf.calcBounds()
	return uf
}

func (uf *UVFace) calcBounds() {
	uf.Min = geom.V(math.Inf(1), math.Inf(1))
	uf.Max = geom.V(math.Inf(-1), math.Inf(-1))
	for _, l := range uf.Face.Loops {
		uf.Min = uf.Min.Min(l.UV)
		uf.Max = uf.Max.Max(l.UV)
	}
}

// Island is a maximal set of faces whose UVs are contiguous. It lives for
// one operator call; topology or UV edits between calls invalidate it.
type Island struct {
	ID    string
	Faces []*UVFace

	Min       geom.Vec2
	Max       geom.Vec2
	AverageUV geom.Vec2
	NumUV     int

	// PixelBounds is only meaningful after CalcPixelBounds.
	PixelBounds    geom.Rect
	hasPixelBounds bool
}

// New builds an island over the given faces and computes its aggregates.
func New(faces []*mesh.Face) *Island {
	isl := &Island{ID: uuid.New().String()[:8]}
	for _, f := range faces {
		isl.Faces = append(isl.Faces, newUVFace(f))
	}
	isl.UpdateMinMax()
	return isl
}

// UpdateMinMax recomputes bounds and the UV average from scratch. Needed
// after the island's UVs have been transformed.
func (isl *Island) UpdateMinMax() {
	isl.Min = geom.V(math.Inf(1), math.Inf(1))
	isl.Max = geom.V(math.Inf(-1), math.Inf(-1))
	isl.AverageUV = geom.Vec2{}
	isl.NumUV = 0

	for _, uf := range isl.Faces {
		uf.calcBounds()
		for _, l := range uf.Face.Loops {
			isl.AverageUV = isl.AverageUV.Add(l.UV)
		}
		isl.NumUV += len(uf.Face.Loops)
		isl.Min = isl.Min.Min(uf.Min)
		isl.Max = isl.Max.Max(uf.Max)
	}
	if isl.NumUV > 0 {
		isl.AverageUV = isl.AverageUV.Div(float64(isl.NumUV))
	}
}

// CalcPixelBounds converts the UV bounds to integer pixel coordinates for
// the given texture size. The padding expands the box before flooring and
// ceiling, so islands that nearly touch a texel boundary still claim it.
func (isl *Island) CalcPixelBounds(textureSize int, minPadding float64) geom.Rect {
	ts := float64(textureSize)
	r := geom.Rect{
		Min: geom.Vi(
			int(math.Floor(isl.Min.X*ts-minPadding)),
			int(math.Floor(isl.Min.Y*ts-minPadding)),
		),
		Max: geom.Vi(
			int(math.Ceil(isl.Max.X*ts+minPadding)),
			int(math.Ceil(isl.Max.Y*ts+minPadding)),
		),
	}
	isl.PixelBounds = r
	isl.hasPixelBounds = true
	return r
}

// Merge absorbs the other island: faces are concatenated, bounds unioned,
// and the UV average recombined weighted by UV counts.
func (isl *Island) Merge(other *Island) {
	isl.Min = isl.Min.Min(other.Min)
	isl.Max = isl.Max.Max(other.Max)

	total := isl.NumUV + other.NumUV
	if total > 0 {
		isl.AverageUV = isl.AverageUV.Scale(float64(isl.NumUV)).
			Add(other.AverageUV.Scale(float64(other.NumUV))).
			Div(float64(total))
	}
	isl.NumUV = total
	isl.Faces = append(isl.Faces, other.Faces...)

	if isl.hasPixelBounds && other.hasPixelBounds {
		isl.PixelBounds.Encapsulate(other.PixelBounds)
	}
}

// MeshFaces returns the underlying mesh faces.
func (isl *Island) MeshFaces() []*mesh.Face {
	out := make([]*mesh.Face, len(isl.Faces))
	for i, uf := range isl.Faces {
		out[i] = uf.Face
	}
	return out
}

// AnyPinned reports whether any loop of the island is pinned.
func (isl *Island) AnyPinned() bool {
	for _, uf := range isl.Faces {
		for _, l := range uf.Face.Loops {
			if l.Pinned {
				return true
			}
		}
	}
	return false
}

// OrientationLockLayer is the per-face attribute layer marking faces whose
// texture orientation must not change.
const OrientationLockLayer = "orientation_locked"

// AnyOrientationLocked reports whether any face of the island carries the
// orientation lock flag. A mesh without the layer has nothing locked.
func (isl *Island) AnyOrientationLocked(m *mesh.Mesh) bool {
	layer, ok := m.IntLayer(OrientationLockLayer)
	if !ok {
		return false
	}
	for _, uf := range isl.Faces {
		if layer[uf.Face.Index] == 1 {
			return true
		}
	}
	return false
}
