package app

import (
	"image"
	"log/slog"

	"github.com/soocke/sprite-slicer-go/capture"
	"github.com/soocke/sprite-slicer-go/config"
	"github.com/soocke/sprite-slicer-go/domain/interaction"
	"github.com/soocke/sprite-slicer-go/domain/sprite"
	"github.com/soocke/sprite-slicer-go/ui/images"
	"github.com/soocke/sprite-slicer-go/ui/model"
	"github.com/soocke/sprite-slicer-go/ui/presenter"
	"github.com/soocke/sprite-slicer-go/ui/view"
)

// AppContainer assembles models, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Document *sprite.Document
	Machine  *interaction.Machine
	Zoom     *model.ZoomModel
	Frames   *images.FrameCache
	LoadGate *model.Gate
	SaveGate *model.Gate
	History  *model.ExportHistory
	RootView *view.RootView

	// Presenters
	Editor   *presenter.EditorPresenter
	Loader   *presenter.LoadPresenter
	Exporter *presenter.ExportPresenter
	Slicer   *presenter.SlicePresenter
	Settings *presenter.SettingsPresenter
	Loop     *presenter.Loop
}

// BuildContainer constructs all components. No widgets are created; the
// root view is built by the app once Tk is running.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}
	c.Document = sprite.NewDocument(logger, cfg.CanvasPadding)
	if err := c.Document.SetGrid(cfg.GridRows, cfg.GridCols); err != nil && logger != nil {
		logger.Warn("configured grid rejected", "error", err)
	}
	c.Machine = interaction.NewMachine(logger, c.Document)
	c.Zoom = model.NewZoomModel(cfg.Zoom)
	c.Frames, _ = images.NewFrameCache(images.DefaultFrameCacheSize, logger)
	c.LoadGate = &model.Gate{}
	c.SaveGate = &model.Gate{}
	c.History = model.NewExportHistory()
	c.RootView = view.NewRootView(cfg, logger)

	c.Editor = presenter.NewEditorPresenter(c.Document, c.Machine, c.Zoom, c.Frames, c.RootView, logger)
	c.Loop = presenter.NewLoop(c.Editor, nil)
	c.Loader = presenter.NewLoadPresenter(c.Document, c.LoadGate, c.RootView, c.Loop.Post, grabScreen, logger)
	c.Exporter = presenter.NewExportPresenter(c.Document, cfg, c.SaveGate, c.History, c.RootView, c.Loop.Post, logger)
	c.Slicer = presenter.NewSlicePresenter(c.Document, cfg, c.RootView, logger)
	c.Settings = presenter.NewSettingsPresenter(c.Document, cfg, c.Editor, c.RootView, c.saveConfig, logger)
	return c
}

func grabScreen() (image.Image, error) {
	img, err := capture.Grab()
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (c *AppContainer) saveConfig(cfg *config.Config) error {
	if c.ConfigPath == "" {
		return nil
	}
	return cfg.Save(c.ConfigPath)
}

// Handlers binds the root view's controls to the presenters.
func (c *AppContainer) Handlers(exit func()) view.Handlers {
	return view.Handlers{
		Open:       c.Loader.Open,
		GrabScreen: c.Loader.GrabScreen,
		AutoDetect: c.Slicer.AutoDetect,
		FitGrid:    c.Slicer.FitGrid,
		ClearAll:   c.Slicer.ClearAll,
		Export:     c.Exporter.Export,
		Exit:       exit,
		ModeChanged: func(m sprite.Mode) {
			c.Slicer.SwitchMode(m)
		},
		ZoomChanged: func(percent int) {
			c.Config.Zoom = percent
			c.Editor.SetZoom(percent)
		},
		ApplySettings: func(next config.Config) {
			c.Settings.Apply(next)
			c.RootView.RefreshSettings()
		},
		Input: c.Editor,
	}
}
