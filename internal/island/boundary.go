package island

import (
	"fmt"
	"sort"

	"github.com/texelforge/texeluv/internal/mesh"
)

// BoundaryError reports a boundary walk that could not be closed into a
// loop, which means the island's rim is not manifold.
type BoundaryError struct {
	Vert int
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("boundary loop does not close at vertex %d", e.Vert)
}

// BoundaryLoops extracts the island's outer rims as closed vertex loops.
// A boundary edge is one used by exactly one island face; this counts mesh
// adjacency among the island's own faces, so an island with internal seams
// yields a close approximation of its UV outline. Each loop is walked
// until it returns to its starting vertex; a walk that dead-ends is an
// invariant violation, not a recoverable state.
func (isl *Island) BoundaryLoops() ([][]*mesh.Vert, error) {
	inIsland := make(map[*mesh.Face]bool, len(isl.Faces))
	for _, uf := range isl.Faces {
		inIsland[uf.Face] = true
	}

	edgeUse := make(map[*mesh.Edge]int)
	for _, uf := range isl.Faces {
		for _, e := range uf.Face.Edges {
			edgeUse[e]++
		}
	}

	var boundary []*mesh.Edge
	for _, uf := range isl.Faces {
		for _, e := range uf.Face.Edges {
			if edgeUse[e] == 1 {
				boundary = append(boundary, e)
			}
		}
	}
	// Face iteration may list an edge after its partner face; dedupe and
	// order by index for a deterministic walk.
	sort.Slice(boundary, func(i, j int) bool { return boundary[i].Index < boundary[j].Index })
	boundary = dedupeEdges(boundary)

	byVert := make(map[*mesh.Vert][]*mesh.Edge)
	for _, e := range boundary {
		a, b := e.Verts()
		byVert[a] = append(byVert[a], e)
		byVert[b] = append(byVert[b], e)
	}

	visited := make(map[*mesh.Edge]bool, len(boundary))
	var loops [][]*mesh.Vert

	for _, start := range boundary {
		if visited[start] {
			continue
		}
		first, second := start.Verts()
		loop := []*mesh.Vert{first}
		visited[start] = true
		current := second

		for current != first {
			loop = append(loop, current)
			next := nextUnvisited(byVert[current], visited)
			if next == nil {
				return nil, &BoundaryError{Vert: current.Index}
			}
			visited[next] = true
			a, b := next.Verts()
			if a == current {
				current = b
			} else {
				current = a
			}
		}
		loops = append(loops, loop)
	}
	return loops, nil
}

func dedupeEdges(edges []*mesh.Edge) []*mesh.Edge {
	out := edges[:0]
	var prev *mesh.Edge
	for _, e := range edges {
		if e != prev {
			out = append(out, e)
		}
		prev = e
	}
	return out
}

func nextUnvisited(edges []*mesh.Edge, visited map[*mesh.Edge]bool) *mesh.Edge {
	for _, e := range edges {
		if !visited[e] {
			return e
		}
	}
	return nil
}
