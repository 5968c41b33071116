package grid

import (
	"github.com/texelforge/texeluv/internal/geom"
	"github.com/texelforge/texeluv/internal/mesh"
)

// GridFace is one quad face annotated with its inferred grid coordinate and
// its four direction-labeled boundary edges. Created during the build walk,
// mutated only when the whole grid is re-oriented.
type GridFace struct {
	Face  *mesh.Face
	Coord geom.Vec2i

	edges [4]*mesh.Edge
}

// Edge returns the boundary edge in the given direction.
func (gf *GridFace) Edge(dir Direction) *mesh.Edge {
	return gf.edges[dir]
}

// Loops returns the face's two corner loops on the boundary edge in the
// given direction, in face corner order.
func (gf *GridFace) Loops(dir Direction) []*mesh.Loop {
	return gf.Face.LoopsForEdge(gf.edges[dir])
}

// transformCoord moves the face to its transformed grid coordinate and
// relabels the per-direction edges to match.
func (gf *GridFace) transformCoord(m geom.Affine) {
	gf.Coord = m.ApplyVec2i(gf.Coord)
	gf.edges = [4]*mesh.Edge{
		gf.edges[East.Transform(m)],
		gf.edges[North.Transform(m)],
		gf.edges[West.Transform(m)],
		gf.edges[South.Transform(m)],
	}
}

// averageEdgeDir returns the face's UV-space "north" and "east" direction
// vectors, derived from the corners shared by adjacent boundary edges.
// Summed over all faces this tells how the grid actually sits on the UV map.
func (gf *GridFace) averageEdgeDir() (north, east geom.Vec2) {
	ne := gf.Face.LoopBetweenEdges(gf.Edge(North), gf.Edge(East))
	nw := gf.Face.LoopBetweenEdges(gf.Edge(North), gf.Edge(West))
	sw := gf.Face.LoopBetweenEdges(gf.Edge(South), gf.Edge(West))
	if ne == nil || nw == nil || sw == nil {
		return geom.Vec2{}, geom.Vec2{}
	}
	east = ne.UV.Sub(nw.UV)
	north = nw.UV.Sub(sw.UV)
	return north, east
}

// overlayOn copies the UV coordinates of other's boundary edges onto this
// face's edges: X from the west/east pair, Y from the south/north pair.
// When a flip is set the pairs are exchanged, which mirrors the section.
func (gf *GridFace) overlayOn(other *GridFace, flipX, flipY bool) {
	srcWest, srcEast := West, East
	if flipX {
		srcWest, srcEast = East, West
	}
	srcSouth, srcNorth := South, North
	if flipY {
		srcSouth, srcNorth = North, South
	}

	copyUVComponent(gf.Loops(West), other.Loops(srcWest), true)
	copyUVComponent(gf.Loops(East), other.Loops(srcEast), true)
	copyUVComponent(gf.Loops(South), other.Loops(srcSouth), false)
	copyUVComponent(gf.Loops(North), other.Loops(srcNorth), false)
}

func copyUVComponent(dst, src []*mesh.Loop, xAxis bool) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		if xAxis {
			dst[i].UV.X = src[i].UV.X
		} else {
			dst[i].UV.Y = src[i].UV.Y
		}
	}
}
