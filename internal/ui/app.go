package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/texelforge/texeluv/internal/config"
	"github.com/texelforge/texeluv/internal/geom"
	"github.com/texelforge/texeluv/internal/island"
	"github.com/texelforge/texeluv/internal/mesh"
	"github.com/texelforge/texeluv/internal/texture"
	"github.com/texelforge/texeluv/internal/ui/widgets"
	"github.com/texelforge/texeluv/internal/uvedit"
)

// App holds all application state and UI references.
type App struct {
	app      fyne.App
	window   fyne.Window
	cfg      config.AppConfig
	appTheme *TexelUVTheme
	tabs     *container.AppTabs

	mesh   *mesh.Mesh
	tex    *texture.PixelArray
	unwrap uvedit.UnwrapFunc

	// UI references for dynamic updates
	atlasContainer *fyne.Container
	statusLabel    *widget.Label
}

func NewApp(application fyne.App, window fyne.Window) *App {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		cfg = config.DefaultAppConfig()
	}
	a := &App{
		app:      application,
		window:   window,
		cfg:      cfg,
		appTheme: NewTexelUVThemeFromName(cfg.Theme),
		unwrap:   projectionUnwrap,
	}
	application.Settings().SetTheme(a.appTheme)
	a.newScene(4, 4)
	return a
}

// setThemeName applies and persists a theme preference.
func (a *App) setThemeName(name string) {
	a.cfg.Theme = name
	a.appTheme.SetVariantName(name)
	a.app.Settings().SetTheme(a.appTheme)
	a.saveConfig()
}

func (a *App) params() uvedit.Params {
	return uvedit.Params{TextureSize: a.cfg.TextureSize, TexelDensity: a.cfg.TexelDensity}
}

// newScene replaces the working mesh with a fresh quad plane and a new
// default texture.
func (a *App) newScene(cols, rows int) {
	a.mesh = mesh.Plane(cols, rows)
	a.mesh.SelectAll(true)
	a.unwrap(a.mesh.Faces)
	a.tex = uvedit.NewTextureBuffer(a.params())
}

// projectionUnwrap stands in for a host unwrapper: it projects mesh X/Y
// positions into UV space, scaled down to the unit square.
func projectionUnwrap(faces []*mesh.Face) {
	max := 1.0
	for _, f := range faces {
		for _, l := range f.Loops {
			if l.Vert.Pos.X > max {
				max = l.Vert.Pos.X
			}
			if l.Vert.Pos.Y > max {
				max = l.Vert.Pos.Y
			}
		}
	}
	for _, f := range faces {
		for _, l := range f.Loops {
			if l.Pinned {
				continue
			}
			l.UV = geom.V(l.Vert.Pos.X/max, l.Vert.Pos.Y/max)
		}
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Scene", func() {
			a.newScene(4, 4)
			a.refreshAtlas()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.saveConfig()
			a.window.Close()
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Light Theme", func() { a.setThemeName("light") }),
		fyne.NewMenuItem("Dark Theme", func() { a.setThemeName("dark") }),
		fyne.NewMenuItem("System Theme", func() { a.setThemeName("system") }),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Unwrap Grid", func() {
			a.runOperator(func() error {
				return uvedit.UnwrapGrid(a.mesh, a.params(), a.unwrap)
			})
		}),
		fyne.NewMenuItem("Repack Islands", func() {
			a.runRepack()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, toolsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About TexelUV",
		"TexelUV — Pixel-Art UV Toolkit\n\n"+
			"Grid unwrapping, island packing and texel-aligned\n"+
			"UV editing for low-resolution texturing.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.statusLabel = widget.NewLabel("")

	operatorsTab := container.NewTabItem("Operators", a.buildOperatorsPanel())
	textureTab := container.NewTabItem("Texture", a.buildTexturePanel())
	atlasTab := container.NewTabItem("Atlas", a.buildAtlasPanel())

	a.tabs = container.NewAppTabs(operatorsTab, textureTab, atlasTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return container.NewBorder(nil, a.statusLabel, nil, nil, a.tabs)
}

// ─── Operators Panel ───────────────────────────────────────

func (a *App) buildOperatorsPanel() fyne.CanvasObject {
	densityEntry := widget.NewEntry()
	densityEntry.SetText(strconv.FormatFloat(a.cfg.TexelDensity, 'f', -1, 64))
	densityEntry.OnChanged = func(s string) {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			a.cfg.TexelDensity = v
		}
	}

	modifyCheck := widget.NewCheck("Modify texture", func(v bool) {
		a.cfg.ModifyTexture = v
	})
	modifyCheck.SetChecked(a.cfg.ModifyTexture)

	xSections := widget.NewEntry()
	xSections.SetText("2")
	ySections := widget.NewEntry()
	ySections.SetText("1")
	alternate := widget.NewCheck("Alternate fold", nil)
	alternate.SetChecked(true)

	unwrapButtons := container.NewVBox(
		newButtonWithTooltip("Unwrap Grid", "Lay out quad grids with every face on whole texels", func() {
			a.runOperator(func() error {
				return uvedit.UnwrapGrid(a.mesh, a.params(), a.unwrap)
			})
		}),
		newButtonWithTooltip("Unwrap Basic", "Unwrap at target density, rounded to whole pixels", func() {
			a.runOperator(func() error {
				return uvedit.UnwrapBasic(a.mesh, a.params(), a.unwrap)
			})
		}),
		newButtonWithTooltip("Unwrap Extend", "Unwrap around pinned UVs, snapping the fresh ones", func() {
			a.runOperator(func() error {
				uvedit.UnwrapExtend(a.mesh, a.params(), a.unwrap)
				return nil
			})
		}),
		newButtonWithTooltip("Unwrap to Single Pixel", "Map the selection into one texel for flat coloring", func() {
			a.runOperator(func() error {
				return uvedit.UnwrapSinglePixel(a.mesh, a.params(), a.unwrap)
			})
		}),
		newButtonWithTooltip("Set Texel Density", "Rescale the selection to the target texels per unit", func() {
			a.runOperator(func() error {
				uvedit.SetTexelDensity(a.mesh, a.params())
				return nil
			})
		}),
	)

	foldButton := widget.NewButton("Fold Grid", func() {
		xs, errX := strconv.Atoi(xSections.Text)
		ys, errY := strconv.Atoi(ySections.Text)
		if errX != nil || errY != nil || xs < 1 || ys < 1 {
			dialog.ShowError(fmt.Errorf("fold sections must be positive integers"), a.window)
			return
		}
		a.runOperator(func() error {
			return uvedit.FoldGrid(a.mesh, a.params(), xs, ys, alternate.Checked)
		})
	})

	placeButtons := container.NewHBox(
		newIconButtonWithTooltip(theme.ContentRedoIcon(), "Move selection to free UV space", func() {
			a.runOperator(func() error {
				opts := uvedit.DefaultFreeSpaceOptions()
				opts.ModifyTexture = a.cfg.ModifyTexture
				return uvedit.IslandToFreeSpace(a.mesh, a.params(), opts, a.tex)
			})
		}),
		newIconButtonWithTooltip(theme.ViewRestoreIcon(), "Repack all islands", func() {
			a.runRepack()
		}),
	)

	return container.NewVBox(
		widget.NewLabelWithStyle("Unwrapping", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2, widget.NewLabel("Texels per unit"), densityEntry),
		unwrapButtons,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Folding", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(4,
			widget.NewLabel("X sections"), xSections,
			widget.NewLabel("Y sections"), ySections,
		),
		alternate,
		foldButton,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Placement", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		modifyCheck,
		placeButtons,
	)
}

// ─── Texture Panel ─────────────────────────────────────────

func (a *App) buildTexturePanel() fyne.CanvasObject {
	sizeLabel := widget.NewLabel(fmt.Sprintf("Texture size: %d px", a.cfg.TextureSize))

	resize := func(scale float64) {
		dst, newSize, err := uvedit.ResizeTexture([]*mesh.Mesh{a.mesh}, a.tex, a.params(), scale, false, "atlas")
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.tex = dst
		a.cfg.TextureSize = newSize
		sizeLabel.SetText(fmt.Sprintf("Texture size: %d px", newSize))
		a.refreshAtlas()
	}

	return container.NewVBox(
		sizeLabel,
		widget.NewButton("New Default Texture", func() {
			a.tex = uvedit.NewTextureBuffer(a.params())
			a.refreshAtlas()
		}),
		container.NewHBox(
			widget.NewButton("Double Size", func() { resize(2) }),
			widget.NewButton("Halve Size", func() { resize(0.5) }),
		),
	)
}

// ─── Atlas Panel ───────────────────────────────────────────

func (a *App) buildAtlasPanel() fyne.CanvasObject {
	a.atlasContainer = container.NewStack()
	a.refreshAtlas()
	return a.atlasContainer
}

func (a *App) refreshAtlas() {
	if a.atlasContainer == nil {
		return
	}
	islands := island.Detect(a.mesh.Faces)
	for _, isl := range islands {
		isl.CalcPixelBounds(a.cfg.TextureSize, 0)
	}
	a.atlasContainer.Objects = []fyne.CanvasObject{
		widgets.RenderAtlasSummary(a.tex, islands, a.cfg.TextureSize),
	}
	a.atlasContainer.Refresh()
}

// ─── Shared plumbing ───────────────────────────────────────

func (a *App) runOperator(op func() error) {
	if err := op(); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.statusLabel.SetText("Done")
	a.refreshAtlas()
}

func (a *App) runRepack() {
	dst, err := uvedit.RepackUVs(a.mesh, a.params(), a.cfg.ModifyTexture, a.tex)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.tex = dst
	a.statusLabel.SetText("Repacked")
	a.refreshAtlas()
}

func (a *App) saveConfig() {
	if err := config.Save(config.DefaultConfigPath(), a.cfg); err != nil {
		fyne.LogError("saving config", err)
	}
}
