package island

import (
	"math"

	"github.com/texelforge/texeluv/internal/mesh"
)

// uvKeyDigits fixes the rounding of UV coordinates in the identity key.
// Two loops at the same vertex count as the same UV point when their
// coordinates agree to five decimals; this is a deliberate tolerance, not
// float equality.
const uvKeyDigits = 1e5

// uvVertKey identifies a (UV position, vertex) pairing. Faces sharing a key
// are contiguous in both mesh and UV space, which is exactly the absence of
// a seam between them.
type uvVertKey struct {
	x, y int64
	vert int
}

func keyFor(l *mesh.Loop) uvVertKey {
	return uvVertKey{
		x:    int64(math.Round(l.UV.X * uvKeyDigits)),
		y:    int64(math.Round(l.UV.Y * uvKeyDigits)),
		vert: l.Vert.Index,
	}
}

// Detect groups the given faces into UV islands. Faces connect when they
// share at least one (UV, vertex) key; flood fill over that adjacency
// yields the islands. The fill is iterative so large meshes cannot
// overflow the stack.
func Detect(faces []*mesh.Face) []*Island {
	faceKeys := make(map[int][]uvVertKey, len(faces))
	keyFaces := make(map[uvVertKey][]int)
	byIndex := make(map[int]*mesh.Face, len(faces))

	for _, f := range faces {
		byIndex[f.Index] = f
		seen := make(map[uvVertKey]bool, len(f.Loops))
		for _, l := range f.Loops {
			k := keyFor(l)
			if seen[k] {
				continue
			}
			seen[k] = true
			faceKeys[f.Index] = append(faceKeys[f.Index], k)
			keyFaces[k] = append(keyFaces[k], f.Index)
		}
	}

	nodes := make([]int, 0, len(faces))
	for _, f := range faces {
		nodes = append(nodes, f.Index)
	}
	components := connectedComponents(nodes, func(idx int) []int {
		var out []int
		for _, k := range faceKeys[idx] {
			out = append(out, keyFaces[k]...)
		}
		return out
	})

	islands := make([]*Island, 0, len(components))
	for _, component := range components {
		islandFaces := make([]*mesh.Face, 0, len(component))
		for _, idx := range component {
			islandFaces = append(islandFaces, byIndex[idx])
		}
		islands = append(islands, New(islandFaces))
	}
	return islands
}

// DetectSelected splits the mesh into islands of selected and unselected
// faces, detected independently.
func DetectSelected(m *mesh.Mesh) (selected, others []*Island) {
	var sel, rest []*mesh.Face
	for _, f := range m.Faces {
		if f.Selected {
			sel = append(sel, f)
		} else {
			rest = append(rest, f)
		}
	}
	return Detect(sel), Detect(rest)
}

// connectedComponents runs an iterative flood fill over an abstract graph.
// Component seeds follow the input node order, so results are deterministic
// for identical input.
func connectedComponents(nodes []int, neighbors func(int) []int) [][]int {
	remaining := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		remaining[n] = true
	}

	var components [][]int
	for _, seed := range nodes {
		if !remaining[seed] {
			continue
		}
		var component []int
		stack := []int{seed}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !remaining[n] {
				continue
			}
			delete(remaining, n)
			component = append(component, n)
			stack = append(stack, neighbors(n)...)
		}
		components = append(components, component)
	}
	return components
}

// MergeOverlapping repeatedly unions islands whose pixel bounds overlap,
// until no pair does. After a merge the grown island is retested against
// every remaining island, which collapses transitive overlap chains. The
// input slice is rewritten. Callers must have computed pixel bounds first.
func MergeOverlapping(islands []*Island) []*Island {
	for i := 0; i < len(islands); i++ {
		for j := i + 1; j < len(islands); {
			if islands[i].PixelBounds.OverlapsRect(islands[j].PixelBounds) {
				islands[i].Merge(islands[j])
				islands = append(islands[:j], islands[j+1:]...)
				// Start the inner scan over: the merged island may now
				// reach islands it previously missed.
				j = i + 1
			} else {
				j++
			}
		}
	}
	return islands
}
