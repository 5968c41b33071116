package uvedit

import (
	"math"
	"sort"

	"github.com/texelforge/texeluv/internal/geom"
	"github.com/texelforge/texeluv/internal/grid"
	"github.com/texelforge/texeluv/internal/island"
	"github.com/texelforge/texeluv/internal/mesh"
	"github.com/texelforge/texeluv/internal/pack"
	"github.com/texelforge/texeluv/internal/texture"
)

// defaultPixelPadding expands island pixel bounds before snapping to
// texels, so islands a hair short of a texel boundary still claim it.
const defaultPixelPadding = 0.3

// maxTextureSize caps resizes; anything bigger is almost certainly a
// mistake for pixel-art work.
const maxTextureSize = 8192

// CheckSingleMaterial verifies the faces all share one material index.
func CheckSingleMaterial(faces []*mesh.Face) error {
	seen := map[int]bool{}
	var materials []int
	for _, f := range faces {
		if !seen[f.MaterialIndex] {
			seen[f.MaterialIndex] = true
			materials = append(materials, f.MaterialIndex)
		}
	}
	if len(materials) > 1 {
		sort.Ints(materials)
		return &MultipleMaterialsError{Materials: materials}
	}
	return nil
}

// NewTextureBuffer creates the default paint-over texture for the current
// texture size.
func NewTextureBuffer(p Params) *texture.PixelArray {
	return texture.NewChecker(p.TextureSize)
}

// FreeSpaceOptions tune IslandToFreeSpace.
type FreeSpaceOptions struct {
	// ModifyTexture also moves the island's pixels to the new location.
	ModifyTexture bool

	// SelectionIsIsland treats the whole selection as islands to move;
	// otherwise islands are detected over the full mesh and the ones
	// containing a selected face move.
	SelectionIsIsland bool

	// IgnoreUnpinned counts only islands with pinned loops as occupied;
	// unpinned islands are treated as free space.
	IgnoreUnpinned bool

	// PreferCurrent keeps an island where it is when that spot is
	// already free.
	PreferCurrent bool

	// ExtraOccupied adds islands from other meshes sharing the texture
	// to the occupied set. They are subject to IgnoreUnpinned like the
	// mesh's own islands.
	ExtraOccupied []*island.Island
}

// DefaultFreeSpaceOptions matches the values the interactive operator
// starts with.
func DefaultFreeSpaceOptions() FreeSpaceOptions {
	return FreeSpaceOptions{SelectionIsIsland: true, IgnoreUnpinned: true}
}

// IslandToFreeSpace moves every selected island to a spot on the UV map
// not occupied by the other islands, then pins it. With ModifyTexture the
// island's pixels travel along; tex must then be non-nil and is mutated
// in place region by region, matching each island's UV move.
func IslandToFreeSpace(m *mesh.Mesh, p Params, opts FreeSpaceOptions, tex *texture.PixelArray) error {
	var selectedIslands, occupied []*island.Island
	if opts.SelectionIsIsland {
		selectedIslands, occupied = island.DetectSelected(m)
	} else {
		all := island.Detect(m.Faces)
		for _, isl := range all {
			if anySelected(isl) {
				selectedIslands = append(selectedIslands, isl)
			} else {
				occupied = append(occupied, isl)
			}
		}
	}

	occupied = append(occupied, opts.ExtraOccupied...)

	if opts.IgnoreUnpinned {
		pinned := occupied[:0]
		for _, isl := range occupied {
			if isl.AnyPinned() {
				pinned = append(pinned, isl)
			}
		}
		occupied = pinned
	}
	for _, isl := range occupied {
		isl.CalcPixelBounds(p.TextureSize, defaultPixelPadding)
	}

	for _, isl := range selectedIslands {
		isl.CalcPixelBounds(p.TextureSize, defaultPixelPadding)

		newPos := pack.FindFreeSpace(isl, occupied, p.TextureSize, opts.PreferCurrent)
		oldPos := isl.PixelBounds.Min
		offset := newPos.Sub(oldPos).Div(float64(p.TextureSize))

		faces := isl.MeshFaces()
		Translate(faces, offset)

		if opts.ModifyTexture && tex != nil {
			src := tex.Clone()
			tex.CopyRegion(src, oldPos, isl.PixelBounds.Size(), newPos, false)
		}
		Pin(faces, true)

		// The island now occupies its new spot for the remaining moves.
		isl.UpdateMinMax()
		isl.CalcPixelBounds(p.TextureSize, defaultPixelPadding)
		occupied = append(occupied, isl)
	}
	return nil
}

func anySelected(isl *island.Island) bool {
	for _, uf := range isl.Faces {
		if uf.Face.Selected {
			return true
		}
	}
	return false
}

// RepackUVs lays out all of the mesh's islands again with the shelf
// packer. Tall islands are flipped a quarter turn to lie flat unless
// their orientation is locked. When modifyTexture is set the pixels move
// with the UVs: the copy works on a fresh buffer that is only returned
// when the whole repack succeeds, so a failed call leaves tex untouched;
// without modifyTexture the returned buffer is tex unchanged.
func RepackUVs(m *mesh.Mesh, p Params, modifyTexture bool, tex *texture.PixelArray) (*texture.PixelArray, error) {
	if err := CheckSingleMaterial(m.Faces); err != nil {
		return nil, err
	}

	islands := island.Detect(m.Faces)
	for _, isl := range islands {
		isl.CalcPixelBounds(p.TextureSize, defaultPixelPadding)
	}
	islands = island.MergeOverlapping(islands)

	rects := make([]geom.Vec2i, len(islands))
	needFlip := make([]bool, len(islands))
	for i, isl := range islands {
		size := isl.PixelBounds.Size()
		if size.Y > size.X && !isl.AnyOrientationLocked(m) {
			size = geom.Vi(size.Y, size.X)
			needFlip[i] = true
		}
		rects[i] = size
	}

	// Try one size smaller when the texture splits evenly; repacking
	// often frees enough room to shrink.
	minSize := p.TextureSize
	if p.TextureSize%2 == 0 {
		minSize = p.TextureSize / 2
	}
	positions, neededSize := pack.PackRects(rects, minSize)
	if neededSize > p.TextureSize {
		return nil, &OutOfSpaceError{NeededSize: neededSize, TextureSize: p.TextureSize}
	}

	modifyTexture = modifyTexture && tex != nil
	var dst *texture.PixelArray
	if modifyTexture {
		dst = texture.NewChecker(p.TextureSize)
	}

	ts := float64(p.TextureSize)
	for i, isl := range islands {
		newPos := positions[i]
		oldPos := isl.PixelBounds.Min
		offset := newPos.Sub(oldPos).Div(ts)
		faces := isl.MeshFaces()

		// Flipping about a pivot halfway up the rect's left side keeps
		// the bottom-left corner fixed, so the translation below works
		// the same whether or not the island was flipped.
		if needFlip[i] {
			h := float64(isl.PixelBounds.Size().Y) / 2
			pivot := geom.V(float64(oldPos.X)+h, float64(oldPos.Y)+h).Div(ts)
			Rotate90AboutPivot(faces, pivot)
		}
		Translate(faces, offset)

		if modifyTexture {
			dst.CopyRegion(tex, oldPos, isl.PixelBounds.Size(), newPos, needFlip[i])
		}
	}

	if modifyTexture {
		return dst, nil
	}
	return tex, nil
}

// SetTexelDensity rescales the selected faces' UVs so their texel density
// matches the target.
func SetTexelDensity(m *mesh.Mesh, p Params) {
	ScaleTexelDensity(m.SelectedFaces(), p.TextureSize, p.TexelDensity)
}

// UnwrapGrid unwraps each contiguous group of selected quads as a pixel
// grid: the host unwrap provides a starting layout, the grid walk
// recovers the rectangular topology, and straightening lands every face
// on whole-texel boundaries. Stray non-quad faces attached to a group are
// unwrapped afterwards against the pinned grid. Each finished group is
// moved to free UV space.
func UnwrapGrid(m *mesh.Mesh, p Params, unwrap UnwrapFunc) error {
	selected := m.SelectedFaces()
	quadGroups, attached := FindQuadGroups(selected)

	for gi, quadGroup := range quadGroups {
		unwrap(quadGroup)

		g, err := grid.Build(m, quadGroup)
		if err != nil {
			return err
		}
		g.RealignToUVMap()
		g.StraightenUV(grid.SnapAll, p.TextureSize, p.TexelDensity)

		// Attach the non-quad faces to the now-pinned quad grid.
		Pin(quadGroup, true)
		nonQuads := attached[gi]
		if len(nonQuads) > 0 {
			Pin(nonQuads, false)
			unwrap(nonQuads)
			Pin(nonQuads, true)
		}

		if err := moveGroupToFreeSpace(m, p, append(append([]*mesh.Face{}, quadGroup...), nonQuads...)); err != nil {
			return err
		}
	}
	return nil
}

// moveGroupToFreeSpace runs the free-space move with only the given faces
// selected, restoring the original selection afterwards.
func moveGroupToFreeSpace(m *mesh.Mesh, p Params, faces []*mesh.Face) error {
	prev := make(map[*mesh.Face]bool, len(m.Faces))
	for _, f := range m.Faces {
		prev[f] = f.Selected
		f.Selected = false
	}
	for _, f := range faces {
		f.Selected = true
	}
	err := IslandToFreeSpace(m, p, DefaultFreeSpaceOptions(), nil)
	for _, f := range m.Faces {
		f.Selected = prev[f]
	}
	return err
}

// UnwrapBasic runs the host unwrap and rescales the result to the target
// texel density, rounding the island to a whole number of pixels with its
// corners on texel corners, then moves it to free space and pins it.
func UnwrapBasic(m *mesh.Mesh, p Params, unwrap UnwrapFunc) error {
	selected := m.SelectedFaces()
	Pin(selected, false)
	unwrap(selected)

	ScaleTexelDensity(selected, p.TextureSize, p.TexelDensity)

	isl := island.New(selected)
	size := isl.Max.Sub(isl.Min)
	ts := float64(p.TextureSize)
	roundedSize := geom.V(math.Round(size.X*ts)/ts, math.Round(size.Y*ts)/ts)
	if size.X > 0 && size.Y > 0 {
		ScaleXY(selected, geom.V(roundedSize.X/size.X, roundedSize.Y/size.Y))
	}

	center := isl.Max.Add(isl.Min).Scale(0.5)
	Translate(selected, roundedSize.Scale(0.5).Sub(center))

	if err := moveGroupToFreeSpace(m, p, selected); err != nil {
		return err
	}
	Pin(selected, true)
	return nil
}

// UnwrapExtend runs the host unwrap, preserving pinned UVs, and snaps the
// fresh ones to texel corners.
func UnwrapExtend(m *mesh.Mesh, p Params, unwrap UnwrapFunc) {
	selected := m.SelectedFaces()
	unwrap(selected)
	SnapToTexelCorner(selected, p.TextureSize, true)
	Pin(selected, true)
}

// UnwrapSinglePixel maps every selected face onto a small circle inside
// one texel, so painting there gives all those faces one flat color.
func UnwrapSinglePixel(m *mesh.Mesh, p Params, unwrap UnwrapFunc) error {
	selected := m.SelectedFaces()
	Pin(selected, false)
	unwrap(selected)

	texelSize := 1.0 / float64(p.TextureSize)
	for _, f := range selected {
		n := len(f.Loops)
		for i, l := range f.Loops {
			a := 2 * math.Pi * float64(i) / float64(n)
			l.UV = geom.V(0.45*math.Cos(a)+0.5, 0.45*math.Sin(a)+0.5).Scale(texelSize)
		}
	}
	Pin(selected, true)

	return moveGroupToFreeSpace(m, p, selected)
}

// FoldGrid folds each contiguous group of selected quads onto itself in
// the given number of sections.
func FoldGrid(m *mesh.Mesh, p Params, xSections, ySections int, alternate bool) error {
	selected := m.SelectedFaces()
	quadGroups, _ := FindQuadGroups(selected)

	for _, quadGroup := range quadGroups {
		g, err := grid.Build(m, quadGroup)
		if err != nil {
			return err
		}
		g.RealignToUVMap()
		g.Fold(xSections, ySections, alternate)
	}
	return nil
}

// ResizeTexture builds a buffer of the new size with the old content
// copied to the bottom-left (cropped there when shrinking) and rescales
// the UVs of every mesh sharing the texture so they keep covering the
// same pixels. The texture's dirty flag is the host's; shrinking a dirty
// texture is refused since the crop cannot be undone. Returns the new
// buffer and texture size.
func ResizeTexture(meshes []*mesh.Mesh, tex *texture.PixelArray, p Params, scale float64, dirty bool, name string) (*texture.PixelArray, int, error) {
	newSize := int(math.Round(float64(p.TextureSize) * scale))
	if scale < 1 && dirty {
		return nil, 0, &DirtyTextureError{Name: name}
	}
	if newSize < 2 || newSize > maxTextureSize {
		return nil, 0, &TextureSizeError{Size: newSize}
	}

	dst := texture.NewChecker(newSize)
	copySize := geom.Vi(mini(tex.Width, newSize), mini(tex.Height, newSize))
	dst.CopyRegion(tex, geom.Vi(0, 0), copySize, geom.Vi(0, 0), false)

	uvScale := float64(p.TextureSize) / float64(newSize)
	for _, m := range meshes {
		TranslateRotateScale(m.Faces, geom.Vec2{}, 0, uvScale)
	}

	return dst, newSize, nil
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}
