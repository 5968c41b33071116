// Package geom provides the integer and float 2D primitives used by the
// UV toolkit: points, axis-aligned rectangles, and homogeneous transforms.
package geom

// Vec2i is a 2D point with integer coordinates. It is a value type;
// all operations return a new vector.
type Vec2i struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vi is shorthand for constructing a Vec2i.
func Vi(x, y int) Vec2i {
	return Vec2i{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2i) Add(other Vec2i) Vec2i {
	return Vec2i{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference.
func (v Vec2i) Sub(other Vec2i) Vec2i {
	return Vec2i{X: v.X - other.X, Y: v.Y - other.Y}
}

// Neg returns the vector with both components negated.
func (v Vec2i) Neg() Vec2i {
	return Vec2i{X: -v.X, Y: -v.Y}
}

// Offset returns the vector shifted by dx, dy.
func (v Vec2i) Offset(dx, dy int) Vec2i {
	return Vec2i{X: v.X + dx, Y: v.Y + dy}
}

// AddScalar adds s to both components.
func (v Vec2i) AddScalar(s int) Vec2i {
	return Vec2i{X: v.X + s, Y: v.Y + s}
}

// Min returns the component-wise minimum of two vectors.
func (v Vec2i) Min(other Vec2i) Vec2i {
	return Vec2i{X: mini(v.X, other.X), Y: mini(v.Y, other.Y)}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec2i) Max(other Vec2i) Vec2i {
	return Vec2i{X: maxi(v.X, other.X), Y: maxi(v.Y, other.Y)}
}

// ToVec2 converts to a float vector.
func (v Vec2i) ToVec2() Vec2 {
	return Vec2{X: float64(v.X), Y: float64(v.Y)}
}

// Div divides by a scalar. Integer vectors never divide implicitly;
// the result is always a float vector.
func (v Vec2i) Div(s float64) Vec2 {
	return Vec2{X: float64(v.X) / s, Y: float64(v.Y) / s}
}

// Scale multiplies by a float scalar, yielding a float vector.
func (v Vec2i) Scale(s float64) Vec2 {
	return Vec2{X: float64(v.X) * s, Y: float64(v.Y) * s}
}

// Vec2 is a 2D point with float64 coordinates.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector scaled by a factor.
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// ScaleXY scales each component independently.
func (v Vec2) ScaleXY(sx, sy float64) Vec2 {
	return Vec2{X: v.X * sx, Y: v.Y * sy}
}

// Div divides both components by a scalar.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Min returns the component-wise minimum of two vectors.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{X: minf(v.X, other.X), Y: minf(v.Y, other.Y)}
}

// Max returns the component-wise maximum of two vectors.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{X: maxf(v.X, other.X), Y: maxf(v.Y, other.Y)}
}

// YX returns the vector with its components swapped.
func (v Vec2) YX() Vec2 {
	return Vec2{X: v.Y, Y: v.X}
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
