// Package ui provides the TexelUV application UI components.
//
// This file defines a compact Fyne theme tuned for the atlas editor: small
// text and tight padding keep the operator panel narrow so the texture
// preview gets the space.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// TexelUVTheme wraps the default Fyne theme with compact sizing overrides.
// It either tracks the OS light/dark setting or pins a stored variant,
// depending on the persisted preference.
type TexelUVTheme struct {
	base         fyne.Theme
	variant      fyne.ThemeVariant
	followSystem bool
}

// NewTexelUVTheme creates the theme following the system light/dark setting.
func NewTexelUVTheme() *TexelUVTheme {
	return &TexelUVTheme{base: theme.DefaultTheme(), followSystem: true}
}

// NewTexelUVThemeFromName creates the theme for a persisted preference
// name ("light", "dark" or "system").
func NewTexelUVThemeFromName(name string) *TexelUVTheme {
	t := NewTexelUVTheme()
	t.SetVariantName(name)
	return t
}

// SetVariant pins the theme to a specific light/dark variant.
func (t *TexelUVTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
	t.followSystem = false
}

// SetVariantName applies a persisted preference name. Unknown names fall
// back to following the system setting.
func (t *TexelUVTheme) SetVariantName(name string) {
	switch name {
	case "light":
		t.SetVariant(theme.VariantLight)
	case "dark":
		t.SetVariant(theme.VariantDark)
	default:
		t.followSystem = true
	}
}

// Color delegates to the base theme, with the pinned variant when one is set.
func (t *TexelUVTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.followSystem {
		return t.base.Color(name, variant)
	}
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *TexelUVTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *TexelUVTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for the editor layout.
func (t *TexelUVTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameInnerPadding:
		return 5
	case theme.SizeNameInlineIcon:
		return 14
	case theme.SizeNameScrollBar:
		return 10
	default:
		return t.base.Size(name)
	}
}
