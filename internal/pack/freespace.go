package pack

import (
	"sort"

	"github.com/texelforge/texeluv/internal/geom"
	"github.com/texelforge/texeluv/internal/island"
)

// FindFreeSpace picks a pixel position where the target island's bounds do
// not overlap any other island. Candidates are the texture origin plus the
// top-right and bottom-left corners of every occupied rectangle, scanned
// top to bottom then left to right. With preferCurrent the island's current
// position is tried before anything else, otherwise it is the last resort
// before giving up and returning the origin.
//
// Positions inside the texture win over positions outside it, but an
// off-texture spot beats an overlapping one: the caller may grow the
// texture afterwards, overlap it cannot fix.
func FindFreeSpace(target *island.Island, others []*island.Island, textureSize int, preferCurrent bool) geom.Vec2i {
	size := target.PixelBounds.Size()
	current := target.PixelBounds.Min

	candidates := []geom.Vec2i{geom.Vi(0, 0)}
	for _, other := range others {
		b := other.PixelBounds
		candidates = append(candidates,
			geom.Vi(b.Max.X, b.Min.Y),
			geom.Vi(b.Min.X, b.Max.Y),
		)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Y != candidates[j].Y {
			return candidates[i].Y < candidates[j].Y
		}
		return candidates[i].X < candidates[j].X
	})

	if preferCurrent {
		candidates = append([]geom.Vec2i{current}, candidates...)
	} else {
		candidates = append(candidates, current)
	}

	texture := geom.NewRect(geom.Vi(0, 0), geom.Vi(textureSize, textureSize))
	for _, pos := range candidates {
		if texture.Contains(pos, size) && !anyOverlap(others, pos, size) {
			return pos
		}
	}
	for _, pos := range candidates {
		if !anyOverlap(others, pos, size) {
			return pos
		}
	}
	return geom.Vi(0, 0)
}

func anyOverlap(islands []*island.Island, pos, size geom.Vec2i) bool {
	for _, isl := range islands {
		if isl.PixelBounds.Overlaps(pos, size) {
			return true
		}
	}
	return false
}
