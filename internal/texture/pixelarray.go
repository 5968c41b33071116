// Package texture holds the RGBA pixel buffer used to mirror UV edits
// into texture pixels. Reads wrap toroidally so a region sampled across
// the texture edge picks up the tiled continuation; writes stay inside
// the buffer.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/texelforge/texeluv/internal/geom"
)

// PixelArray is a width × height RGBA buffer of float components in
// [0,1], addressed as ((y*width+x)*4 + channel).
type PixelArray struct {
	Width  int
	Height int
	Pixels []float64
}

// New returns a fully transparent buffer.
func New(width, height int) *PixelArray {
	return &PixelArray{
		Width:  width,
		Height: height,
		Pixels: make([]float64, width*height*4),
	}
}

// FromPixels wraps an existing flat RGBA sequence, as handed over by the
// host texture. The slice is copied so the host copy stays untouched
// until the caller explicitly writes back.
func FromPixels(width, height int, pixels []float64) (*PixelArray, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel buffer has %d components, want %d for %dx%d",
			len(pixels), width*height*4, width, height)
	}
	p := New(width, height)
	copy(p.Pixels, pixels)
	return p, nil
}

// NewChecker builds a square texture filled with the default paint-over
// pattern: 8px quadrant blocks in red, green, blue and yellow, with a
// per-texel checkerboard dimming alternate texels to 70%.
func NewChecker(size int) *PixelArray {
	p := New(size, size)
	for i := 0; i < size*size; i++ {
		row := i / size
		col := i % size

		var c [4]float64
		left := col%16 < 8
		top := row%16 < 8
		switch {
		case left && top:
			c = [4]float64{0.8, 0, 0, 1}
		case left:
			c = [4]float64{0.4, 0.4, 1, 1}
		case top:
			c = [4]float64{0, 0.8, 0, 1}
		default:
			c = [4]float64{1, 0.6, 0, 1}
		}
		if (row+col)%2 != 0 {
			for k := range c {
				c[k] *= 0.7
			}
		}
		copy(p.Pixels[i*4:], c[:])
	}
	return p
}

// Clone returns an independent copy of the buffer.
func (p *PixelArray) Clone() *PixelArray {
	c := New(p.Width, p.Height)
	copy(c.Pixels, p.Pixels)
	return c
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// GetPixel reads one RGBA texel. Coordinates wrap modulo the buffer size
// in both directions.
func (p *PixelArray) GetPixel(pos geom.Vec2i) (r, g, b, a float64) {
	idx := (wrap(pos.Y, p.Height)*p.Width + wrap(pos.X, p.Width)) * 4
	return p.Pixels[idx], p.Pixels[idx+1], p.Pixels[idx+2], p.Pixels[idx+3]
}

// SetPixel writes one RGBA texel, wrapping like GetPixel.
func (p *PixelArray) SetPixel(pos geom.Vec2i, r, g, b, a float64) {
	idx := (wrap(pos.Y, p.Height)*p.Width + wrap(pos.X, p.Width)) * 4
	p.Pixels[idx] = r
	p.Pixels[idx+1] = g
	p.Pixels[idx+2] = b
	p.Pixels[idx+3] = a
}

// CopyRegion copies a size-sized block of pixels from source starting at
// srcPos into this buffer at dstPos, optionally rotating the block a
// quarter turn counter-clockwise.
func (p *PixelArray) CopyRegion(source *PixelArray, srcPos, size, dstPos geom.Vec2i, rotate90 bool) {
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			readPos := srcPos.Offset(x, y)
			writePos := dstPos.Offset(x, y)
			if rotate90 {
				writePos = dstPos.Offset(size.Y-1-y, x)
			}
			r, g, b, a := source.GetPixel(readPos)
			p.SetPixel(writePos, r, g, b, a)
		}
	}
}

// CopyRegionTransformed maps the source rectangle through the given
// pixel-space affine transform and writes the result into this buffer
// with nearest-neighbor sampling. The destination scan region is the
// bounding box of the transformed corners clamped to the buffer, so parts
// that land outside are silently dropped rather than wrapped. Source
// reads wrap. Fails only when the transform is not invertible.
func (p *PixelArray) CopyRegionTransformed(source *PixelArray, srcRect geom.Rect, transform geom.Affine) error {
	inverse, err := transform.Inverse()
	if err != nil {
		return fmt.Errorf("region transform: %w", err)
	}

	// Corner samples sit at pixel centers, half a pixel inside the rect
	// edges, so a pure rotation maps an N-pixel span onto N pixels.
	corners := [4]geom.Vec2{
		transform.Apply(geom.V(float64(srcRect.Min.X)+0.5, float64(srcRect.Min.Y)+0.5)),
		transform.Apply(geom.V(float64(srcRect.Max.X)-0.5, float64(srcRect.Min.Y)+0.5)),
		transform.Apply(geom.V(float64(srcRect.Max.X)-0.5, float64(srcRect.Max.Y)-0.5)),
		transform.Apply(geom.V(float64(srcRect.Min.X)+0.5, float64(srcRect.Max.Y)-0.5)),
	}
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		lo = lo.Min(c)
		hi = hi.Max(c)
	}

	minX := clamp(int(math.Floor(lo.X)), 0, p.Width)
	minY := clamp(int(math.Floor(lo.Y)), 0, p.Height)
	maxX := clamp(int(math.Ceil(hi.X)), 0, p.Width)
	maxY := clamp(int(math.Ceil(hi.Y)), 0, p.Height)

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			src := inverse.Apply(geom.V(float64(x)+0.5, float64(y)+0.5))
			readPos := geom.Vi(int(math.Floor(src.X)), int(math.Floor(src.Y)))
			r, g, b, a := source.GetPixel(readPos)
			p.SetPixel(geom.Vi(x, y), r, g, b, a)
		}
	}
	return nil
}

// ToImage converts the buffer to an NRGBA image for display. Pixel rows
// are stored bottom-up (UV origin at the bottom left) while images are
// top-down, so rows are flipped.
func (p *PixelArray) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			idx := (y*p.Width + x) * 4
			img.SetNRGBA(x, p.Height-1-y, color.NRGBA{
				R: componentByte(p.Pixels[idx]),
				G: componentByte(p.Pixels[idx+1]),
				B: componentByte(p.Pixels[idx+2]),
				A: componentByte(p.Pixels[idx+3]),
			})
		}
	}
	return img
}

func componentByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
