package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/soocke/sprite-slicer-go/domain/sprite"
	"github.com/soocke/sprite-slicer-go/ui/model"
)

// LoadView is what the load presenter needs from the UI.
type LoadView interface {
	ChooseImageFile() string
	Confirm(title, message string) bool
	ShowError(title string, err error)
	SetStatus(text string)
}

// LoadPresenter replaces the source bitmap from a file or a screen grab.
// Decoding runs off the UI thread; at most one load runs at a time and the
// document is only touched once the result is posted back.
type LoadPresenter struct {
	doc    *sprite.Document
	gate   *model.Gate
	view   LoadView
	logger *slog.Logger

	// Post runs fn on the UI thread.
	Post func(fn func())
	// Go starts background work.
	Go func(fn func())
	// ReadFile and Grab are the two image sources.
	ReadFile func(path string) ([]byte, error)
	Grab     func() (image.Image, error)
}

func NewLoadPresenter(doc *sprite.Document, gate *model.Gate, view LoadView, post func(func()), grab func() (image.Image, error), logger *slog.Logger) *LoadPresenter {
	return &LoadPresenter{
		doc:      doc,
		gate:     gate,
		view:     view,
		logger:   logger,
		Post:     post,
		Go:       func(fn func()) { go fn() },
		ReadFile: os.ReadFile,
		Grab:     grab,
	}
}

func (p *LoadPresenter) ready() bool {
	return p != nil && p.doc != nil && p.gate != nil && p.view != nil && p.Post != nil && p.Go != nil
}

// Open asks for a file and loads it.
func (p *LoadPresenter) Open() {
	if !p.ready() {
		return
	}
	if p.gate.Busy() {
		p.view.SetStatus("an image is still loading")
		return
	}
	path := p.view.ChooseImageFile()
	if path == "" {
		return
	}
	p.LoadFile(path)
}

// LoadFile decodes the file at path and makes it the source.
func (p *LoadPresenter) LoadFile(path string) {
	if !p.ready() || p.ReadFile == nil {
		return
	}
	name := filepath.Base(path)
	p.start(name, func() (*sprite.Bitmap, int64, error) {
		data, err := p.ReadFile(path)
		if err != nil {
			return nil, 0, err
		}
		bmp, err := sprite.DecodeBitmap(data)
		return bmp, int64(len(data)), err
	})
}

// GrabScreen captures the screen and makes it the source.
func (p *LoadPresenter) GrabScreen() {
	if !p.ready() || p.Grab == nil {
		return
	}
	p.start("screen", func() (*sprite.Bitmap, int64, error) {
		img, err := p.Grab()
		if err != nil {
			return nil, 0, err
		}
		return sprite.NewBitmap(img), 0, nil
	})
}

func (p *LoadPresenter) start(name string, work func() (*sprite.Bitmap, int64, error)) {
	if p.doc.HasSource() && !p.view.Confirm("Replace image", "Loading a new image discards the current image and all selections. Continue?") {
		return
	}
	if !p.gate.TryAcquire() {
		p.view.SetStatus("an image is still loading")
		return
	}
	p.view.SetStatus("loading " + name + "…")
	p.Go(func() {
		bmp, size, err := work()
		p.Post(func() { p.finish(name, bmp, size, err) })
	})
}

func (p *LoadPresenter) finish(name string, bmp *sprite.Bitmap, size int64, err error) {
	defer p.gate.Release()
	if err != nil {
		if p.logger != nil {
			p.logger.Error("image load failed", "source", name, "error", err)
		}
		p.view.SetStatus("load failed")
		p.view.ShowError("Could not load image", err)
		return
	}
	p.doc.SetBitmap(bmp)
	if p.doc.Mode() == sprite.ModeGrid {
		p.doc.FitGridToImage()
	}
	if p.logger != nil {
		p.logger.Info("image loaded", "source", name, "width", bmp.Width(), "height", bmp.Height(), "bytes", size)
	}
	status := fmt.Sprintf("%s: %d×%d", name, bmp.Width(), bmp.Height())
	if size > 0 {
		status += ", " + humanize.Bytes(uint64(size))
	}
	p.view.SetStatus(status)
}
