package presenter

import (
	"fmt"
	"log/slog"

	"github.com/soocke/sprite-slicer-go/config"
	"github.com/soocke/sprite-slicer-go/domain/geometry"
	"github.com/soocke/sprite-slicer-go/domain/sprite"
)

// SliceView is what the slicing commands need from the UI.
type SliceView interface {
	Confirm(title, message string) bool
	ShowError(title string, err error)
	SetStatus(text string)
	SetMode(m sprite.Mode)
}

// SlicePresenter owns the toolbar commands: mode switching, grid setup,
// auto-detection and clearing.
type SlicePresenter struct {
	doc    *sprite.Document
	cfg    *config.Config
	view   SliceView
	logger *slog.Logger
}

func NewSlicePresenter(doc *sprite.Document, cfg *config.Config, view SliceView, logger *slog.Logger) *SlicePresenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &SlicePresenter{doc: doc, cfg: cfg, view: view, logger: logger}
}

func (p *SlicePresenter) ready() bool {
	return p != nil && p.doc != nil && p.view != nil
}

// SwitchMode changes the slicing mode. Switching away from a non-empty
// document asks first; declining keeps the document and reverts the view.
// It reports whether the document is now in mode m.
func (p *SlicePresenter) SwitchMode(m sprite.Mode) bool {
	if !p.ready() {
		return false
	}
	if m == p.doc.Mode() {
		return true
	}
	if !p.doc.Empty() && !p.view.Confirm("Switch mode", "Switching modes discards the current selections. Continue?") {
		p.view.SetMode(p.doc.Mode())
		return false
	}
	p.doc.SetMode(m)
	if m == sprite.ModeGrid {
		if err := p.doc.SetGrid(p.cfg.GridRows, p.cfg.GridCols); err != nil && p.logger != nil {
			p.logger.Warn("configured grid rejected", "rows", p.cfg.GridRows, "cols", p.cfg.GridCols, "error", err)
		}
	}
	p.view.SetMode(m)
	p.view.SetStatus(m.String() + " mode")
	return true
}

// SetGrid changes the grid rows and columns. Values above
// config.MaxGridSize are capped.
func (p *SlicePresenter) SetGrid(rows, cols int) {
	if !p.ready() {
		return
	}
	rows, cols = min(rows, config.MaxGridSize), min(cols, config.MaxGridSize)
	if err := p.doc.SetGrid(rows, cols); err != nil {
		p.view.ShowError("Invalid grid", err)
		return
	}
	p.cfg.GridRows, p.cfg.GridCols = rows, cols
}

// FitGrid makes the grid area cover the whole image, switching to grid
// mode if needed.
func (p *SlicePresenter) FitGrid() {
	if !p.ready() {
		return
	}
	if !p.doc.HasSource() {
		p.view.ShowError("Fit grid", sprite.ErrNoSource)
		return
	}
	if !p.SwitchMode(sprite.ModeGrid) {
		return
	}
	p.doc.FitGridToImage()
}

// AutoDetect replaces the custom boxes with one box per opaque region.
func (p *SlicePresenter) AutoDetect() {
	if !p.ready() {
		return
	}
	if !p.doc.HasSource() {
		p.view.ShowError("Auto-detect", sprite.ErrNoSource)
		return
	}
	if !p.SwitchMode(sprite.ModeCustom) {
		return
	}
	if p.cfg.AutoDetectMode == config.DetectFixedSize {
		p.doc.SetDetectMode(sprite.DetectFixedSize)
		if p.cfg.FixedWidth > 0 && p.cfg.FixedHeight > 0 {
			p.doc.SetFixedSize(&geometry.Size{W: float64(p.cfg.FixedWidth), H: float64(p.cfg.FixedHeight)})
		}
	} else {
		p.doc.SetDetectMode(sprite.DetectPadding)
	}
	boxes := p.doc.AutoDetect(p.cfg.AutoDetectPadding)
	if fs := p.doc.FixedSize(); fs != nil {
		p.cfg.FixedWidth, p.cfg.FixedHeight = int(fs.W), int(fs.H)
	}
	p.view.SetStatus(fmt.Sprintf("detected %d sprites", len(boxes)))
}

// ClearAll removes every selection. Custom mode asks first.
func (p *SlicePresenter) ClearAll() {
	if !p.ready() {
		return
	}
	switch p.doc.Mode() {
	case sprite.ModeGrid:
		p.doc.ClearGrid()
	default:
		n := len(p.doc.Boxes())
		if n == 0 {
			return
		}
		if !p.view.Confirm("Clear all", fmt.Sprintf("Remove all %d selections?", n)) {
			return
		}
		p.doc.ClearBoxes()
	}
	p.view.SetStatus("cleared")
}
