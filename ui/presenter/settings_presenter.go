package presenter

import (
	"log/slog"

	"github.com/soocke/sprite-slicer-go/config"
	"github.com/soocke/sprite-slicer-go/domain/sprite"
)

// SettingsView is what applying settings needs from the UI.
type SettingsView interface {
	ApplyTheme(dark bool)
	ShowError(title string, err error)
	SetStatus(text string)
}

// Saver persists the configuration.
type Saver func(cfg *config.Config) error

// SettingsPresenter pushes edited settings into the live document and
// persists them.
type SettingsPresenter struct {
	doc    *sprite.Document
	cfg    *config.Config
	editor *EditorPresenter
	view   SettingsView
	save   Saver
	logger *slog.Logger
}

func NewSettingsPresenter(doc *sprite.Document, cfg *config.Config, editor *EditorPresenter, view SettingsView, save Saver, logger *slog.Logger) *SettingsPresenter {
	return &SettingsPresenter{doc: doc, cfg: cfg, editor: editor, view: view, save: save, logger: logger}
}

// Apply validates next, makes it the active configuration and saves it.
func (p *SettingsPresenter) Apply(next config.Config) {
	if p == nil || p.cfg == nil || p.doc == nil || p.view == nil {
		return
	}
	next.Validate()
	prev := *p.cfg
	*p.cfg = next

	p.doc.SetPadding(next.CanvasPadding)
	if next.GridRows != prev.GridRows || next.GridCols != prev.GridCols {
		if err := p.doc.SetGrid(next.GridRows, next.GridCols); err != nil {
			p.view.ShowError("Invalid grid", err)
		}
	}
	if next.Zoom != prev.Zoom {
		p.editor.SetZoom(next.Zoom)
	}
	if next.Dark != prev.Dark {
		p.view.ApplyTheme(next.Dark)
	}
	if p.save != nil {
		if err := p.save(p.cfg); err != nil {
			if p.logger != nil {
				p.logger.Error("config save failed", "error", err)
			}
			p.view.ShowError("Could not save settings", err)
			return
		}
	}
	if p.logger != nil {
		p.logger.Info("settings applied", "padding", next.CanvasPadding, "zoom", next.Zoom, "prefix", next.Prefix)
	}
	p.view.SetStatus("settings saved")
}
