// Package grid infers the rectangular topology of a connected set of quad
// faces and lays their UV coordinates out on texel boundaries. The walk is
// purely combinatorial: any consistent starting choice yields a valid grid,
// and RealignToUVMap later fixes the orientation against the real UV data.
package grid

import (
	"fmt"
	"sort"

	"github.com/texelforge/texeluv/internal/geom"
	"github.com/texelforge/texeluv/internal/mesh"
)

// BuildError reports a face selection that cannot be laid out as a grid:
// either it contains non-quad faces, or the faces are not connected through
// non-seam edges.
type BuildError struct {
	NonQuadFaces   []int
	UnreachedFaces []int
	StartFace      int
}

func (e *BuildError) Error() string {
	if len(e.NonQuadFaces) > 0 {
		return fmt.Sprintf("selection contains non-quad faces %v", e.NonQuadFaces)
	}
	return fmt.Sprintf("grid needs a connected set of quad faces: faces %v cannot be reached from face %d",
		e.UnreachedFaces, e.StartFace)
}

// Grid maps a connected set of quad faces to integer grid coordinates.
// After a successful build every face has a unique coordinate, the minimum
// coordinate is (0,0), and Size spans the coordinate bounding box.
type Grid struct {
	Size geom.Vec2i

	faces map[int]*GridFace
	order []int // face indices in ascending order, for deterministic iteration
}

// walkStep is one pending face visit: the edge used to arrive and the
// direction that edge represents in the frame of the face being entered.
type walkStep struct {
	face     *mesh.Face
	coord    geom.Vec2i
	incoming *mesh.Edge
	edgeDir  Direction
}

// Build indexes the given faces by their position on a rectangular grid.
// The walk starts from the mesh's active face when it is part of the set,
// otherwise from the first face, and never crosses seam edges.
func Build(m *mesh.Mesh, faces []*mesh.Face) (*Grid, error) {
	var nonQuads []int
	for _, f := range faces {
		if !f.IsQuad() {
			nonQuads = append(nonQuads, f.Index)
		}
	}
	if len(nonQuads) > 0 {
		return nil, &BuildError{NonQuadFaces: nonQuads}
	}
	if len(faces) == 0 {
		return nil, &BuildError{}
	}

	target := make(map[int]*mesh.Face, len(faces))
	for _, f := range faces {
		target[f.Index] = f
	}

	start := faces[0]
	if m.Active != nil {
		if _, ok := target[m.Active.Index]; ok {
			start = m.Active
		}
	}

	g := &Grid{faces: make(map[int]*GridFace, len(faces))}

	// The first edge of the start face is declared "north"; everything else
	// follows combinatorially. An explicit stack bounds the walk depth on
	// large grids.
	stack := []walkStep{{
		face:     start,
		coord:    geom.Vi(0, 0),
		incoming: start.Edges[0],
		edgeDir:  North,
	}}
	for len(stack) > 0 {
		step := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, wanted := target[step.face.Index]; !wanted {
			continue
		}
		if _, seen := g.faces[step.face.Index]; seen {
			continue
		}

		gf := &GridFace{Face: step.face, Coord: step.coord}
		g.faces[step.face.Index] = gf

		// A quad's edge list advances one direction per edge, so rotating
		// the list by the incoming edge's direction lines every edge up
		// with its direction label.
		base := step.face.EdgeIndexIn(step.incoming) - int(step.edgeDir)
		base = ((base % 4) + 4) % 4
		for d := 0; d < 4; d++ {
			e := step.face.Edges[(base+d)%4]
			gf.edges[d] = e
			if e.Seam {
				continue
			}
			if other := e.OtherFace(step.face); other != nil {
				stack = append(stack, walkStep{
					face:     other,
					coord:    step.coord.Add(Direction(d).Vector()),
					incoming: e,
					// Arriving over our east edge means entering through
					// the neighbor's west edge.
					edgeDir: Direction(d).Opposite(),
				})
			}
		}
	}

	if len(g.faces) != len(target) {
		var unreached []int
		for idx := range target {
			if _, ok := g.faces[idx]; !ok {
				unreached = append(unreached, idx)
			}
		}
		sort.Ints(unreached)
		return nil, &BuildError{UnreachedFaces: unreached, StartFace: start.Index}
	}

	g.normalize()
	return g, nil
}

// normalize shifts all coordinates so the minimum is (0,0) and records the
// overall size.
func (g *Grid) normalize() {
	first := true
	var minC, maxC geom.Vec2i
	for _, gf := range g.faces {
		if first {
			minC, maxC = gf.Coord, gf.Coord
			first = false
			continue
		}
		minC = minC.Min(gf.Coord)
		maxC = maxC.Max(gf.Coord)
	}
	for _, gf := range g.faces {
		gf.Coord = gf.Coord.Sub(minC)
	}
	g.Size = maxC.Sub(minC).AddScalar(1)

	g.order = g.order[:0]
	for idx := range g.faces {
		g.order = append(g.order, idx)
	}
	sort.Ints(g.order)
}

// Faces returns the grid faces in ascending face-index order.
func (g *Grid) Faces() []*GridFace {
	out := make([]*GridFace, 0, len(g.faces))
	for _, idx := range g.order {
		out = append(out, g.faces[idx])
	}
	return out
}

// FaceAt returns the grid face at the given coordinate, or nil.
func (g *Grid) FaceAt(coord geom.Vec2i) *GridFace {
	for _, gf := range g.faces {
		if gf.Coord == coord {
			return gf
		}
	}
	return nil
}

// Len returns the number of faces on the grid.
func (g *Grid) Len() int {
	return len(g.faces)
}
