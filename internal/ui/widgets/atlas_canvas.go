package widgets

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"

	"github.com/texelforge/texeluv/internal/island"
	"github.com/texelforge/texeluv/internal/texture"
)

// Island overlay colors — cycle through these for visual distinction.
var islandColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 110},  // green
	{R: 33, G: 150, B: 243, A: 110}, // blue
	{R: 255, G: 152, B: 0, A: 110},  // orange
	{R: 156, G: 39, B: 176, A: 110}, // purple
	{R: 0, G: 188, B: 212, A: 110},  // cyan
	{R: 244, G: 67, B: 54, A: 110},  // red
	{R: 255, G: 235, B: 59, A: 110}, // yellow
	{R: 121, G: 85, B: 72, A: 110},  // brown
}

// AtlasCanvas renders the texture atlas with the islands' pixel bounds
// drawn on top of it.
type AtlasCanvas struct {
	widget.BaseWidget
	tex         *texture.PixelArray
	islands     []*island.Island
	textureSize int
	maxWidth    float32
	maxHeight   float32
}

func NewAtlasCanvas(tex *texture.PixelArray, islands []*island.Island, textureSize int, maxW, maxH float32) *AtlasCanvas {
	ac := &AtlasCanvas{
		tex:         tex,
		islands:     islands,
		textureSize: textureSize,
		maxWidth:    maxW,
		maxHeight:   maxH,
	}
	ac.ExtendBaseWidget(ac)
	return ac
}

// SetState swaps the rendered texture and islands and redraws.
func (ac *AtlasCanvas) SetState(tex *texture.PixelArray, islands []*island.Island, textureSize int) {
	ac.tex = tex
	ac.islands = islands
	ac.textureSize = textureSize
	ac.Refresh()
}

func (ac *AtlasCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newAtlasCanvasRenderer(ac)
}

type atlasCanvasRenderer struct {
	ac      *AtlasCanvas
	objects []fyne.CanvasObject
}

func newAtlasCanvasRenderer(ac *AtlasCanvas) *atlasCanvasRenderer {
	r := &atlasCanvasRenderer{ac: ac}
	r.rebuild()
	return r
}

func (r *atlasCanvasRenderer) scale() float32 {
	ts := float32(r.ac.textureSize)
	scale := r.ac.maxWidth / ts
	if s := r.ac.maxHeight / ts; s < scale {
		scale = s
	}
	return scale
}

func (r *atlasCanvasRenderer) rebuild() {
	r.objects = nil

	scale := r.scale()
	canvasW := float32(r.ac.textureSize) * scale
	canvasH := float32(r.ac.textureSize) * scale

	// Texture background, pre-scaled with nearest-neighbor so texels stay
	// crisp at any zoom.
	if r.ac.tex != nil {
		img := upscalePixels(r.ac.tex, int(canvasW), int(canvasH))
		texImage := canvas.NewImageFromImage(img)
		texImage.FillMode = canvas.ImageFillStretch
		texImage.Resize(fyne.NewSize(canvasW, canvasH))
		texImage.Move(fyne.NewPos(0, 0))
		r.objects = append(r.objects, texImage)
	}

	// Atlas border
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	// Island bounds. Pixel coordinates grow upwards, screen coordinates
	// grow downwards, so rects are flipped against the canvas height.
	for i, isl := range r.ac.islands {
		col := islandColors[i%len(islandColors)]
		b := isl.PixelBounds
		w := float32(b.Size().X) * scale
		h := float32(b.Size().Y) * scale
		x := float32(b.Min.X) * scale
		y := canvasH - float32(b.Max.Y)*scale

		islandRect := canvas.NewRectangle(col)
		islandRect.Resize(fyne.NewSize(w, h))
		islandRect.Move(fyne.NewPos(x, y))
		r.objects = append(r.objects, islandRect)

		islandBorder := canvas.NewRectangle(color.Transparent)
		islandBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		islandBorder.StrokeWidth = 1
		islandBorder.Resize(fyne.NewSize(w, h))
		islandBorder.Move(fyne.NewPos(x, y))
		r.objects = append(r.objects, islandBorder)

		// Label (only if big enough)
		if w > 30 && h > 16 {
			label := canvas.NewText(
				fmt.Sprintf("%s %dx%d", isl.ID, b.Size().X, b.Size().Y),
				color.Black,
			)
			label.TextSize = 10
			label.Move(fyne.NewPos(x+3, y+2))
			r.objects = append(r.objects, label)
		}
	}
}

// upscalePixels converts the buffer to an image at display resolution
// using nearest-neighbor sampling.
func upscalePixels(tex *texture.PixelArray, w, h int) image.Image {
	src := tex.ToImage()
	if w <= src.Bounds().Dx() || h <= src.Bounds().Dy() {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func (r *atlasCanvasRenderer) Layout(size fyne.Size)        {}
func (r *atlasCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *atlasCanvasRenderer) Destroy()                     {}
func (r *atlasCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *atlasCanvasRenderer) MinSize() fyne.Size {
	scale := r.scale()
	ts := float32(r.ac.textureSize)
	return fyne.NewSize(ts*scale, ts*scale)
}

// RenderAtlasSummary creates a scrollable view of the atlas with a header
// describing how full it is.
func RenderAtlasSummary(tex *texture.PixelArray, islands []*island.Island, textureSize int) fyne.CanvasObject {
	if textureSize <= 0 {
		return widget.NewLabel("No texture yet. Create one to see the atlas.")
	}

	occupied := 0
	for _, isl := range islands {
		s := isl.PixelBounds.Size()
		occupied += s.X * s.Y
	}
	total := textureSize * textureSize
	percent := 0.0
	if total > 0 {
		percent = float64(occupied) / float64(total) * 100
	}

	header := widget.NewLabel(fmt.Sprintf(
		"Atlas %d × %d — %d islands, %.1f%% claimed",
		textureSize, textureSize, len(islands), percent,
	))
	header.TextStyle = fyne.TextStyle{Bold: true}

	atlas := NewAtlasCanvas(tex, islands, textureSize, 600, 600)

	return container.NewVScroll(container.NewVBox(header, atlas))
}
