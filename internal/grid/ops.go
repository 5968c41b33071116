package grid

import (
	"math"

	"github.com/texelforge/texeluv/internal/geom"
)

// SnapMode controls how row and column sizes are quantized to whole texels
// when straightening a grid.
type SnapMode string

const (
	// SnapAll rounds every row and column to a whole number of pixels,
	// with a minimum of one pixel each.
	SnapAll SnapMode = "all"
	// SnapBounds rounds only the total width and height; rows and columns
	// keep their relative proportions.
	SnapBounds SnapMode = "bounds"
	// SnapNone scales the total size by the texel density without any
	// rounding.
	SnapNone SnapMode = "none"
)

// RowColumnSizes averages the mesh-space lengths of the bounding edges of
// the faces in each column and row. "Horizontal" and "vertical" are the
// grid's own axes; they only match the UV map after RealignToUVMap.
func (g *Grid) RowColumnSizes() (columns, rows []float64) {
	colSums := make([]float64, g.Size.X)
	colCounts := make([]int, g.Size.X)
	rowSums := make([]float64, g.Size.Y)
	rowCounts := make([]int, g.Size.Y)

	// The grid may be sparse, so sizes accumulate per face rather than by
	// scanning fixed rows.
	for _, gf := range g.Faces() {
		rowSums[gf.Coord.Y] += gf.Edge(West).Length() + gf.Edge(East).Length()
		rowCounts[gf.Coord.Y] += 2
		colSums[gf.Coord.X] += gf.Edge(South).Length() + gf.Edge(North).Length()
		colCounts[gf.Coord.X] += 2
	}

	columns = make([]float64, g.Size.X)
	for i := range columns {
		if colCounts[i] > 0 {
			columns[i] = colSums[i] / float64(colCounts[i])
		}
	}
	rows = make([]float64, g.Size.Y)
	for i := range rows {
		if rowCounts[i] > 0 {
			rows[i] = rowSums[i] / float64(rowCounts[i])
		}
	}
	return columns, rows
}

// StraightenUV writes straight-line UV coordinates for the whole grid:
// every column and row becomes a run of the cumulative sizes from
// RowColumnSizes. When textureSize and texelDensity are both positive the
// sizes are first quantized according to the snap mode, so rows and columns
// land on texel boundaries. Coordinates are written per boundary edge, so
// edges shared between grid neighbors receive consistent values.
func (g *Grid) StraightenUV(mode SnapMode, textureSize int, texelDensity float64) {
	columns, rows := g.RowColumnSizes()

	if textureSize > 0 && texelDensity > 0 {
		ts := float64(textureSize)
		if mode == SnapAll {
			for i, s := range columns {
				columns[i] = math.Max(1, math.Round(s*texelDensity)) / ts
			}
			for i, s := range rows {
				rows[i] = math.Max(1, math.Round(s*texelDensity)) / ts
			}
		} else {
			var width, height float64
			for _, s := range columns {
				width += s
			}
			for _, s := range rows {
				height += s
			}
			var newWidth, newHeight float64
			if mode == SnapBounds {
				newWidth = math.Max(1, math.Round(width*texelDensity)) / ts
				newHeight = math.Max(1, math.Round(height*texelDensity)) / ts
			} else {
				newWidth = math.Max(1, width*texelDensity) / ts
				newHeight = math.Max(1, height*texelDensity) / ts
			}
			// A grid of zero-length edges has nothing to rescale; leaving
			// the zero sizes keeps the UVs finite.
			if width > 0 {
				for i, s := range columns {
					columns[i] = s * newWidth / width
				}
			}
			if height > 0 {
				for i, s := range rows {
					rows[i] = s * newHeight / height
				}
			}
		}
	}

	xPos := prefixSum(columns)
	yPos := prefixSum(rows)

	for _, gf := range g.Faces() {
		for _, l := range gf.Loops(West) {
			l.UV.X = xPos[gf.Coord.X]
		}
		for _, l := range gf.Loops(East) {
			l.UV.X = xPos[gf.Coord.X+1]
		}
		for _, l := range gf.Loops(South) {
			l.UV.Y = yPos[gf.Coord.Y]
		}
		for _, l := range gf.Loops(North) {
			l.UV.Y = yPos[gf.Coord.Y+1]
		}
	}
}

func prefixSum(sizes []float64) []float64 {
	out := make([]float64, len(sizes)+1)
	for i, s := range sizes {
		out[i+1] = out[i] + s
	}
	return out
}

// RealignToUVMap re-orients the grid so that "north" in grid coordinates
// actually points up on the UV map. The build walk assigns directions
// combinatorially, so the grid may come out transposed or mirrored; this
// measures the average UV-space north and east over all faces and applies
// the integer transform that corrects them.
func (g *Grid) RealignToUVMap() {
	var northAvg, eastAvg geom.Vec2
	for _, gf := range g.Faces() {
		north, east := gf.averageEdgeDir()
		northAvg = northAvg.Add(north)
		eastAvg = eastAvg.Add(east)
	}

	m := geom.Identity()
	changed := false

	if math.Abs(northAvg.X) > math.Abs(northAvg.Y) {
		m = m.Mul(geom.SwapXY())
		g.Size = geom.Vi(g.Size.Y, g.Size.X)
		northAvg = northAvg.YX()
		eastAvg = eastAvg.YX()
		changed = true
	}
	if eastAvg.X < 0 {
		m = geom.FlipXAcross(g.Size.X).Mul(m)
		changed = true
	}
	if northAvg.Y < 0 {
		m = geom.FlipYAcross(g.Size.Y).Mul(m)
		changed = true
	}

	if changed {
		for _, gf := range g.Faces() {
			gf.transformCoord(m)
		}
	}
}

// Fold overlays sections of the grid's UV layout onto section (0,0), like
// folding a strip of paper. With alternate set, odd sections are mirrored
// (a real fold); without it every section maps identically (cut and stack).
// Faces already inside section (0,0) are left untouched; they only serve as
// overlay targets.
func (g *Grid) Fold(xSections, ySections int, alternate bool) {
	if xSections < 1 {
		xSections = 1
	}
	if ySections < 1 {
		ySections = 1
	}

	byCoord := make(map[geom.Vec2i]*GridFace, g.Len())
	for _, gf := range g.Faces() {
		byCoord[gf.Coord] = gf
	}

	sectionWidth := (g.Size.X + xSections - 1) / xSections
	sectionHeight := (g.Size.Y + ySections - 1) / ySections

	for _, gf := range g.Faces() {
		col := gf.Coord.X / sectionWidth
		tx := gf.Coord.X % sectionWidth
		oddCol := col%2 != 0
		if oddCol && alternate {
			tx = sectionWidth - tx - 1
		}

		row := gf.Coord.Y / sectionHeight
		ty := gf.Coord.Y % sectionHeight
		oddRow := row%2 != 0
		if oddRow && alternate {
			ty = sectionHeight - ty - 1
		}

		target := geom.Vi(tx, ty)
		if target == gf.Coord {
			continue
		}
		if targetFace := byCoord[target]; targetFace != nil {
			gf.overlayOn(targetFace, oddCol && alternate, oddRow && alternate)
		}
	}
}
