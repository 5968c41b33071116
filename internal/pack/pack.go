// Package pack places island pixel rectangles on a square texture. It
// offers a full repack via first-fit decreasing-height shelves and an
// incremental placer that slides a single island into existing free space.
package pack

import (
	"sort"

	"github.com/texelforge/texeluv/internal/geom"
)

type indexedRect struct {
	index int
	size  geom.Vec2i
}

type shelf struct {
	y      int
	height int
	filled int
}

// PackRects lays the given rectangle sizes onto a square canvas using
// first-fit decreasing height. The canvas starts at initialSize pixels and
// doubles until everything fits, so the call always succeeds. Positions
// are returned in input order alongside the final canvas size.
func PackRects(sizes []geom.Vec2i, initialSize int) ([]geom.Vec2i, int) {
	rects := make([]indexedRect, len(sizes))
	for i, s := range sizes {
		rects[i] = indexedRect{index: i, size: s}
	}
	// Tall rectangles first. The sort is stable so equal heights keep
	// input order and the result stays deterministic.
	sort.SliceStable(rects, func(i, j int) bool {
		return rects[i].size.Y > rects[j].size.Y
	})

	space := initialSize
	if space < 1 {
		space = 1
	}
	positions := make([]geom.Vec2i, len(sizes))

	for {
		if fitAll(rects, space, positions) {
			return positions, space
		}
		space *= 2
	}
}

// fitAll attempts one complete shelf layout at the given canvas size,
// writing positions in input order. A false return means the canvas is
// too small and the whole layout must be redone larger; partially placed
// rectangles from the failed attempt are simply overwritten next round.
func fitAll(rects []indexedRect, space int, positions []geom.Vec2i) bool {
	var shelves []shelf
	for _, r := range rects {
		placed := false
		for i := range shelves {
			s := &shelves[i]
			if r.size.Y <= s.height && r.size.X < space-s.filled {
				positions[r.index] = geom.Vi(s.filled, s.y)
				s.filled += r.size.X
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		y := 0
		if n := len(shelves); n > 0 {
			y = shelves[n-1].y + shelves[n-1].height
		}
		if y+r.size.Y > space || r.size.X > space {
			return false
		}
		shelves = append(shelves, shelf{y: y, height: r.size.Y, filled: r.size.X})
		positions[r.index] = geom.Vi(0, y)
	}
	return true
}
