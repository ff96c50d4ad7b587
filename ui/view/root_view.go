package view

import (
	"image"
	"log/slog"
	"strconv"

	"github.com/soocke/sprite-slicer-go/config"
	"github.com/soocke/sprite-slicer-go/domain/geometry"
	"github.com/soocke/sprite-slicer-go/domain/sprite"
	"github.com/soocke/sprite-slicer-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

var (
	modeNames   = []string{"Custom boxes", "Grid"}
	zoomPresets = []int{25, 50, 100, 200, 400, 800}
)

// Handlers are invoked on user actions. Nil entries leave the control inert.
type Handlers struct {
	Open          func()
	GrabScreen    func()
	AutoDetect    func()
	FitGrid       func()
	ClearAll      func()
	Export        func()
	Exit          func()
	ModeChanged   func(m sprite.Mode)
	ZoomChanged   func(percent int)
	ApplySettings func(cfg config.Config)
	Input         CanvasInput
}

// RootView composes the top-level application layout and wires UI callbacks.
// It implements every presenter view contract.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Canvas   CanvasView
	Settings SettingsPanel
	Status   StatusBar

	// Widgets
	ModeSelect *TComboboxWidget
	ZoomSelect *TComboboxWidget
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

func call(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}

// Build constructs the layout: toolbar on row 0, canvas and preview on row
// 1, settings beside the canvas on row 2 and the status bar last.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	bar := Frame()
	Grid(bar, Row(0), Column(0), Columnspan(5), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	buttons := []struct {
		label string
		fn    func()
		style string
	}{
		{"Open Image", h.Open, theme.StylePrimaryButton},
		{"Grab Screen", h.GrabScreen, ""},
		{"Auto-detect", h.AutoDetect, ""},
		{"Fit Grid", h.FitGrid, ""},
		{"Clear All", h.ClearAll, theme.StyleDangerButton},
		{"Export ZIP", h.Export, theme.StylePrimaryButton},
	}
	col := 0
	for _, b := range buttons {
		opts := []Opt{Txt(b.label), Command(call(b.fn))}
		if b.style != "" {
			opts = append(opts, Style(b.style))
		}
		Grid(TButton(opts...), In(bar), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		col++
	}

	rv.ModeSelect = TCombobox(Values(modeNames), Width(14), State("readonly"))
	Grid(rv.ModeSelect, In(bar), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	col++
	rv.ModeSelect.Current(0)
	Bind(rv.ModeSelect, "<<ComboboxSelected>>", Command(func() {
		idx, err := strconv.Atoi(rv.ModeSelect.Current(nil))
		if err != nil || idx < 0 || idx >= len(modeNames) {
			if rv.logger != nil {
				rv.logger.Error("mode selection parse error", "error", err)
			}
			return
		}
		if h.ModeChanged != nil {
			h.ModeChanged(sprite.Mode(idx))
		}
	}))

	zoomLabels := make([]string, len(zoomPresets))
	for i, z := range zoomPresets {
		zoomLabels[i] = strconv.Itoa(z) + "%"
	}
	rv.ZoomSelect = TCombobox(Values(zoomLabels), Width(6), State("readonly"))
	Grid(rv.ZoomSelect, In(bar), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	col++
	rv.SetZoom(rv.zoom())
	Bind(rv.ZoomSelect, "<<ComboboxSelected>>", Command(func() {
		idx, err := strconv.Atoi(rv.ZoomSelect.Current(nil))
		if err != nil || idx < 0 || idx >= len(zoomPresets) {
			return
		}
		if h.ZoomChanged != nil {
			h.ZoomChanged(zoomPresets[idx])
		}
	}))
	Grid(TButton(Txt("Exit"), Command(call(h.Exit))), In(bar), Row(0), Column(col), Sticky("e"), Padx("0.2m"), Pady("0.2m"))

	rv.Canvas = NewCanvasView(1)
	bindCanvas(rv.Canvas.Surface(), h.Input)

	rv.Settings = NewSettingsPanel(rv.cfg, h.ApplySettings)
	next := rv.Settings.Build(2, 4)

	rv.Status = NewStatusBar(next)
}

func (rv *RootView) zoom() int {
	if rv.cfg == nil {
		return 100
	}
	return rv.cfg.Zoom
}

// SetZoom selects the closest zoom preset.
func (rv *RootView) SetZoom(percent int) {
	if rv == nil || rv.ZoomSelect == nil {
		return
	}
	best := 0
	for i, z := range zoomPresets {
		if abs(z-percent) < abs(zoomPresets[best]-percent) {
			best = i
		}
	}
	rv.ZoomSelect.Current(best)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SetMode reflects m in the mode selector and status bar.
func (rv *RootView) SetMode(m sprite.Mode) {
	if rv == nil {
		return
	}
	if rv.ModeSelect != nil {
		rv.ModeSelect.Current(int(m))
	}
	if rv.Status != nil {
		rv.Status.SetMode(m.String())
	}
}

// SetStatus updates the status bar text.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatus(text)
	}
}

// ShowCanvas proxies to the canvas view.
func (rv *RootView) ShowCanvas(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.ShowCanvas(img)
	}
}

// ShowPreview proxies to the canvas view.
func (rv *RootView) ShowPreview(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.ShowPreview(img)
	}
}

// SetCursor proxies to the canvas view.
func (rv *RootView) SetCursor(c geometry.Cursor) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.SetCursor(c)
	}
}

// ApplyTheme switches light/dark styles.
func (rv *RootView) ApplyTheme(dark bool) { theme.SetDark(dark) }

// RefreshSettings shows the active configuration after an apply, so that
// clamped values are visible.
func (rv *RootView) RefreshSettings() {
	if rv == nil {
		return
	}
	if rv.Settings != nil {
		rv.Settings.Refresh(rv.cfg)
	}
	rv.SetZoom(rv.zoom())
}
