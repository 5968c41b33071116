// Package mesh holds the in-memory mesh structure the UV toolkit operates
// on. A host application adapter fills one of these from its own mesh
// representation, the toolkit edits the per-loop UV coordinates, and the
// adapter writes them back. Faces, edges and loops mirror the usual
// edit-mesh model: a face owns one loop per corner, consecutive corners are
// joined by shared edge objects, and edges know every face that uses them.
package mesh

import (
	"github.com/texelforge/texeluv/internal/geom"
)

// Vert is a mesh vertex. Only its position is needed, for mesh-space edge
// lengths and face centers.
type Vert struct {
	Index int
	Pos   geom.Vec3
}

// Edge joins two vertices. Seam marks a UV discontinuity: island detection
// and grid walking never cross a seam edge.
type Edge struct {
	Index int
	Seam  bool

	verts [2]*Vert
	faces []*Face
}

// Verts returns the two endpoint vertices.
func (e *Edge) Verts() (*Vert, *Vert) {
	return e.verts[0], e.verts[1]
}

// HasVert reports whether v is one of the edge's endpoints.
func (e *Edge) HasVert(v *Vert) bool {
	return e.verts[0] == v || e.verts[1] == v
}

// LinkedFaces returns every face that uses this edge.
func (e *Edge) LinkedFaces() []*Face {
	return e.faces
}

// OtherFace returns the first linked face that is not the given one, or nil
// for a boundary edge.
func (e *Edge) OtherFace(f *Face) *Face {
	for _, other := range e.faces {
		if other != f {
			return other
		}
	}
	return nil
}

// Length returns the mesh-space length of the edge.
func (e *Edge) Length() float64 {
	return e.verts[1].Pos.Sub(e.verts[0].Pos).Len()
}

// Loop is one face corner. It carries the corner's vertex plus the mutable
// UV coordinate and pin flag of the active UV layer.
type Loop struct {
	Vert   *Vert
	UV     geom.Vec2
	Pinned bool
}

// Face is a polygon. Edges and Loops run in corner order: Edges[i] joins
// Loops[i].Vert to Loops[(i+1) % n].Vert.
type Face struct {
	Index         int
	MaterialIndex int
	Selected      bool
	Edges         []*Edge
	Loops         []*Loop
}

// IsQuad reports whether the face has exactly four edges.
func (f *Face) IsQuad() bool {
	return len(f.Edges) == 4
}

// CenterBounds returns the mesh-space center of the face's vertices.
func (f *Face) CenterBounds() geom.Vec3 {
	var c geom.Vec3
	for _, l := range f.Loops {
		c = c.Add(l.Vert.Pos)
	}
	return c.Scale(1.0 / float64(len(f.Loops)))
}

// Area returns the mesh-space surface area via fan triangulation from the
// first corner.
func (f *Face) Area() float64 {
	if len(f.Loops) < 3 {
		return 0
	}
	origin := f.Loops[0].Vert.Pos
	area := 0.0
	for i := 1; i < len(f.Loops)-1; i++ {
		a := f.Loops[i].Vert.Pos.Sub(origin)
		b := f.Loops[i+1].Vert.Pos.Sub(origin)
		area += a.Cross(b).Len()
	}
	return 0.5 * area
}

// LoopsForEdge returns the face's loops whose corner vertex belongs to the
// given edge, in face corner order. For a well-formed face that is exactly
// the two corners the edge spans; corner order makes the pairing stable so
// two faces sharing an edge enumerate matching corners consistently.
func (f *Face) LoopsForEdge(e *Edge) []*Loop {
	var out []*Loop
	for _, l := range f.Loops {
		if e.HasVert(l.Vert) {
			out = append(out, l)
		}
	}
	return out
}

// LoopBetweenEdges returns the loop at the corner shared by two of the
// face's edges, or nil when the edges share no corner.
func (f *Face) LoopBetweenEdges(a, b *Edge) *Loop {
	for _, l := range f.Loops {
		if a.HasVert(l.Vert) && b.HasVert(l.Vert) {
			return l
		}
	}
	return nil
}

// EdgeIndexIn returns the position of e in the face's edge list, or -1.
func (f *Face) EdgeIndexIn(e *Edge) int {
	for i, fe := range f.Edges {
		if fe == e {
			return i
		}
	}
	return -1
}

// Mesh owns vertices, edges and faces. One instance is exclusively owned by
// a single operator call for its duration; nothing here is safe for
// concurrent mutation.
type Mesh struct {
	Verts []*Vert
	Edges []*Edge
	Faces []*Face

	// Active is the face grid building starts from when it is part of the
	// working set. May be nil.
	Active *Face

	edgeLookup map[[2]int]*Edge
	intLayers  map[string]map[int]int
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{
		edgeLookup: make(map[[2]int]*Edge),
		intLayers:  make(map[string]map[int]int),
	}
}

// AddVert appends a vertex at the given position.
func (m *Mesh) AddVert(pos geom.Vec3) *Vert {
	v := &Vert{Index: len(m.Verts), Pos: pos}
	m.Verts = append(m.Verts, v)
	return v
}

// AddFace creates a face over the given vertices in winding order, creating
// or reusing the edges between consecutive corners.
func (m *Mesh) AddFace(verts ...*Vert) *Face {
	f := &Face{Index: len(m.Faces)}
	for i, v := range verts {
		next := verts[(i+1)%len(verts)]
		e := m.ensureEdge(v, next)
		e.faces = append(e.faces, f)
		f.Edges = append(f.Edges, e)
		f.Loops = append(f.Loops, &Loop{Vert: v})
	}
	m.Faces = append(m.Faces, f)
	return f
}

// EdgeBetween returns the edge joining two vertices, or nil.
func (m *Mesh) EdgeBetween(a, b *Vert) *Edge {
	return m.edgeLookup[edgeKey(a.Index, b.Index)]
}

func (m *Mesh) ensureEdge(a, b *Vert) *Edge {
	key := edgeKey(a.Index, b.Index)
	if e, ok := m.edgeLookup[key]; ok {
		return e
	}
	e := &Edge{
		Index: len(m.Edges),
		verts: [2]*Vert{a, b},
	}
	m.Edges = append(m.Edges, e)
	m.edgeLookup[key] = e
	return e
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// SelectedFaces returns the faces with the selection flag set, in face
// order.
func (m *Mesh) SelectedFaces() []*Face {
	var out []*Face
	for _, f := range m.Faces {
		if f.Selected {
			out = append(out, f)
		}
	}
	return out
}

// SelectAll sets the selection flag on every face.
func (m *Mesh) SelectAll(selected bool) {
	for _, f := range m.Faces {
		f.Selected = selected
	}
}

// IntLayer returns the named per-face integer attribute layer. The second
// return is false when the layer was never created; callers decide what an
// absent layer means.
func (m *Mesh) IntLayer(name string) (map[int]int, bool) {
	layer, ok := m.intLayers[name]
	return layer, ok
}

// EnsureIntLayer returns the named per-face integer attribute layer,
// creating it when absent.
func (m *Mesh) EnsureIntLayer(name string) map[int]int {
	if layer, ok := m.intLayers[name]; ok {
		return layer
	}
	layer := make(map[int]int)
	m.intLayers[name] = layer
	return layer
}
