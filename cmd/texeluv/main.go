// TexelUV — Pixel-Art UV Toolkit
//
// A cross-platform desktop application for texel-aligned UV unwrapping,
// island packing and low-resolution texture editing.
//
// Build:
//   go build -o texeluv ./cmd/texeluv
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o texeluv.exe ./cmd/texeluv
//   GOOS=darwin  GOARCH=amd64 go build -o texeluv-darwin ./cmd/texeluv
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/texelforge/texeluv/internal/ui"
)

func main() {
	application := app.NewWithID("com.texelforge.texeluv")

	window := application.NewWindow("TexelUV — Pixel-Art UV Toolkit")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1100, 700))
	window.CenterOnScreen()
	window.Show()

	application.Run()
}
