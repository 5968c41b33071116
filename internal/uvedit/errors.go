package uvedit

import "fmt"

// MultipleMaterialsError means the selection spans more than one material,
// so there is no single texture to operate on.
type MultipleMaterialsError struct {
	Materials []int
}

func (e *MultipleMaterialsError) Error() string {
	return fmt.Sprintf("selection uses %d materials, expected one", len(e.Materials))
}

// OutOfSpaceError means the computed layout needs more pixels than the
// texture has while texture modification was requested; proceeding would
// lose painted data. Raised before any UV or pixel mutation.
type OutOfSpaceError struct {
	NeededSize  int
	TextureSize int
}

func (e *OutOfSpaceError) Error() string {
	return fmt.Sprintf("islands need a %d px texture but only %d px is available; resize the texture first",
		e.NeededSize, e.TextureSize)
}

// DirtyTextureError means the texture has unsaved changes and the pending
// operation is pixel-destructive. Pure precondition check; nothing is
// saved automatically.
type DirtyTextureError struct {
	Name string
}

func (e *DirtyTextureError) Error() string {
	return fmt.Sprintf("texture %q has unsaved changes; save it first because this cannot be undone", e.Name)
}

// TextureSizeError rejects a resize target outside the supported range.
type TextureSizeError struct {
	Size int
}

func (e *TextureSizeError) Error() string {
	if e.Size < 2 {
		return fmt.Sprintf("new texture size %d is too small", e.Size)
	}
	return fmt.Sprintf("new texture size %d is too big", e.Size)
}
