package uvedit

import (
	"math"

	"github.com/texelforge/texeluv/internal/mesh"
)

// FindQuadGroups splits the faces into contiguous groups of quads, which
// can be turned into grids, plus a matching list of the stray non-quad
// faces nearest to each group. With a single quad group all non-quads
// attach to it; with several, each non-quad goes to the group whose
// nearest face center is closest in mesh space.
func FindQuadGroups(faces []*mesh.Face) (quadGroups, attachedNonQuads [][]*mesh.Face) {
	var quads, nonQuads []*mesh.Face
	for _, f := range faces {
		if f.IsQuad() {
			quads = append(quads, f)
		} else {
			nonQuads = append(nonQuads, f)
		}
	}

	quadGroups = connectedFaceGroups(quads)

	attachedNonQuads = make([][]*mesh.Face, len(quadGroups))
	if len(quadGroups) <= 1 {
		if len(quadGroups) == 1 {
			attachedNonQuads[0] = nonQuads
		}
		return quadGroups, attachedNonQuads
	}
	for _, f := range nonQuads {
		closest := closestGroup(f, quadGroups)
		attachedNonQuads[closest] = append(attachedNonQuads[closest], f)
	}
	return quadGroups, attachedNonQuads
}

// connectedFaceGroups partitions faces into components connected through
// shared mesh edges, membership restricted to the input set.
func connectedFaceGroups(faces []*mesh.Face) [][]*mesh.Face {
	inSet := make(map[*mesh.Face]bool, len(faces))
	for _, f := range faces {
		inSet[f] = true
	}

	visited := make(map[*mesh.Face]bool, len(faces))
	var groups [][]*mesh.Face
	for _, seed := range faces {
		if visited[seed] {
			continue
		}
		var group []*mesh.Face
		stack := []*mesh.Face{seed}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[f] {
				continue
			}
			visited[f] = true
			group = append(group, f)
			for _, e := range f.Edges {
				for _, other := range e.LinkedFaces() {
					if other != f && inSet[other] && !visited[other] {
						stack = append(stack, other)
					}
				}
			}
		}
		groups = append(groups, group)
	}
	return groups
}

func closestGroup(f *mesh.Face, groups [][]*mesh.Face) int {
	center := f.CenterBounds()
	closest := 0
	closestDist := math.Inf(1)
	for i, group := range groups {
		for _, gf := range group {
			if d := center.DistanceSq(gf.CenterBounds()); d < closestDist {
				closestDist = d
				closest = i
			}
		}
	}
	return closest
}
