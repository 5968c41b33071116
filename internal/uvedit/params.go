// Package uvedit implements the user-facing UV operators: grid unwrap,
// density scaling, folding, island placement and full repacks, plus the
// texture mirroring that keeps painted pixels in place when UVs move.
package uvedit

import "github.com/texelforge/texeluv/internal/mesh"

// Params carries the two tunables every operator needs. They are plain
// values supplied per call; nothing in this package keeps ambient state.
type Params struct {
	// TextureSize is the texture's width and height in pixels. Textures
	// are always square.
	TextureSize int

	// TexelDensity is the target number of texels per mesh unit.
	TexelDensity float64
}

// DefaultParams mirrors the values a fresh scene starts with.
func DefaultParams() Params {
	return Params{TextureSize: 64, TexelDensity: 16}
}

// UnwrapFunc is the host's angle-based unwrapper, injected so operators
// can interleave it with their own layout phases. It rewrites the UVs of
// the given faces in place, respecting pinned loops.
type UnwrapFunc func(faces []*mesh.Face)
