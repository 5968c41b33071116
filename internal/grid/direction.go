package grid

import (
	"math"

	"github.com/texelforge/texeluv/internal/geom"
)

// Direction labels the four boundary edges of a grid face. The integer
// values matter: walking the edge list of a quad advances one direction per
// edge, so direction arithmetic is modular index arithmetic.
type Direction int

const (
	East Direction = iota
	North
	West
	South
)

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	}
	return "invalid"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Vector returns the unit grid-coordinate step in this direction.
func (d Direction) Vector() geom.Vec2i {
	switch d {
	case East:
		return geom.Vi(1, 0)
	case North:
		return geom.Vi(0, 1)
	case West:
		return geom.Vi(-1, 0)
	default:
		return geom.Vi(0, -1)
	}
}

// Transform maps the direction through the linear part of an affine
// transform and snaps the result back to the dominant axis. A transpose or
// mirror matrix therefore relabels directions exactly.
func (d Direction) Transform(m geom.Affine) Direction {
	v := m.ApplyVector(d.Vector().ToVec2())
	if math.Abs(v.X) > math.Abs(v.Y) {
		if v.X > 0 {
			return East
		}
		return West
	}
	if v.Y > 0 {
		return North
	}
	return South
}
