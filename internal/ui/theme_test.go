package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestThemePinsPersistedVariant(t *testing.T) {
	test.NewApp()
	base := theme.DefaultTheme()

	dark := NewTexelUVThemeFromName("dark")
	got := dark.Color(theme.ColorNameBackground, theme.VariantLight)
	assert.Equal(t, base.Color(theme.ColorNameBackground, theme.VariantDark), got,
		"pinned dark wins over the caller's variant")

	system := NewTexelUVThemeFromName("system")
	got = system.Color(theme.ColorNameBackground, theme.VariantLight)
	assert.Equal(t, base.Color(theme.ColorNameBackground, theme.VariantLight), got,
		"system follows the caller's variant")
}

func TestThemeUnknownNameFollowsSystem(t *testing.T) {
	test.NewApp()
	th := NewTexelUVThemeFromName("dark")
	th.SetVariantName("sepia")

	base := theme.DefaultTheme()
	got := th.Color(theme.ColorNameBackground, theme.VariantLight)
	assert.Equal(t, base.Color(theme.ColorNameBackground, theme.VariantLight), got)
}
