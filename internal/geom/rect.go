package geom

// Rect is an axis-aligned rectangle with integer corners. Min is inclusive,
// Max is exclusive, so a rectangle covering one pixel at the origin is
// {Min: (0,0), Max: (1,1)}.
type Rect struct {
	Min Vec2i `json:"min"`
	Max Vec2i `json:"max"`
}

// NewRect builds a rectangle from a position and a size.
func NewRect(min, size Vec2i) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

// Size returns the width and height.
func (r Rect) Size() Vec2i {
	return r.Max.Sub(r.Min)
}

// Overlaps reports whether a rectangle at otherMin with otherSize shares any
// area with r. Touching edges do not count as overlap.
func (r Rect) Overlaps(otherMin, otherSize Vec2i) bool {
	otherMax := otherMin.Add(otherSize)
	return !(otherMin.X >= r.Max.X ||
		r.Min.X >= otherMax.X ||
		otherMin.Y >= r.Max.Y ||
		r.Min.Y >= otherMax.Y)
}

// OverlapsRect reports whether two rectangles share any area.
func (r Rect) OverlapsRect(other Rect) bool {
	return r.Overlaps(other.Min, other.Size())
}

// Contains reports whether a rectangle at otherMin with otherSize lies
// entirely inside r.
func (r Rect) Contains(otherMin, otherSize Vec2i) bool {
	otherMax := otherMin.Add(otherSize)
	return otherMin.X >= r.Min.X &&
		otherMax.X <= r.Max.X &&
		otherMin.Y >= r.Min.Y &&
		otherMax.Y <= r.Max.Y
}

// Encapsulate grows r in place so that it also covers other.
func (r *Rect) Encapsulate(other Rect) {
	r.Min = r.Min.Min(other.Min)
	r.Max = r.Max.Max(other.Max)
}
