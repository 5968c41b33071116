package mesh

import "github.com/texelforge/texeluv/internal/geom"

// Plane builds a flat cols × rows grid of unit quads in the XY plane.
// Faces are created row-major with consistent counter-clockwise winding.
func Plane(cols, rows int) *Mesh {
	colWidths := make([]float64, cols)
	rowHeights := make([]float64, rows)
	for i := range colWidths {
		colWidths[i] = 1
	}
	for i := range rowHeights {
		rowHeights[i] = 1
	}
	return PlaneSized(colWidths, rowHeights)
}

// PlaneSized builds a flat grid of quads whose columns and rows have the
// given mesh-space sizes. Useful for exercising proportional UV layout.
func PlaneSized(colWidths, rowHeights []float64) *Mesh {
	cols := len(colWidths)
	rows := len(rowHeights)

	xs := make([]float64, cols+1)
	for i, w := range colWidths {
		xs[i+1] = xs[i] + w
	}
	ys := make([]float64, rows+1)
	for i, h := range rowHeights {
		ys[i+1] = ys[i] + h
	}

	m := New()
	verts := make([][]*Vert, rows+1)
	for y := 0; y <= rows; y++ {
		verts[y] = make([]*Vert, cols+1)
		for x := 0; x <= cols; x++ {
			verts[y][x] = m.AddVert(geom.V3(xs[x], ys[y], 0))
		}
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.AddFace(verts[y][x], verts[y][x+1], verts[y+1][x+1], verts[y+1][x])
		}
	}
	return m
}

// ProjectUVsXY assigns every loop a UV taken from the vertex's mesh-space
// X/Y position scaled by the given factor. It stands in for a host unwrap
// when a deterministic starting layout is needed.
func (m *Mesh) ProjectUVsXY(scale float64) {
	for _, f := range m.Faces {
		for _, l := range f.Loops {
			l.UV = geom.V(l.Vert.Pos.X*scale, l.Vert.Pos.Y*scale)
		}
	}
}
