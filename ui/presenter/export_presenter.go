package presenter

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/soocke/sprite-slicer-go/config"
	"github.com/soocke/sprite-slicer-go/domain/sprite"
	"github.com/soocke/sprite-slicer-go/ui/model"
)

// ExportView is what the export presenter needs from the UI.
type ExportView interface {
	ChooseDirectory(initial string) string
	ShowError(title string, err error)
	SetStatus(text string)
}

// ExportPresenter writes the current slices to a zip archive. The document
// is snapshotted when the export starts; later edits do not leak into a
// running export.
type ExportPresenter struct {
	doc     *sprite.Document
	cfg     *config.Config
	gate    *model.Gate
	history *model.ExportHistory
	view    ExportView
	logger  *slog.Logger

	Post func(fn func())
	Go   func(fn func())
	Now  func() time.Time
}

func NewExportPresenter(doc *sprite.Document, cfg *config.Config, gate *model.Gate, history *model.ExportHistory, view ExportView, post func(func()), logger *slog.Logger) *ExportPresenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &ExportPresenter{
		doc:     doc,
		cfg:     cfg,
		gate:    gate,
		history: history,
		view:    view,
		logger:  logger,
		Post:    post,
		Go:      func(fn func()) { go fn() },
		Now:     time.Now,
	}
}

func (p *ExportPresenter) ready() bool {
	return p != nil && p.doc != nil && p.gate != nil && p.view != nil && p.Post != nil && p.Go != nil
}

// Export validates the document, asks for a directory and writes the
// archive in the background.
func (p *ExportPresenter) Export() {
	if !p.ready() {
		return
	}
	if !p.gate.TryAcquire() {
		p.view.ShowError("Export", sprite.ErrExportBusy)
		return
	}
	snap := p.doc.Snapshot()
	if _, err := sprite.ExportRects(snap); err != nil {
		p.gate.Release()
		p.view.ShowError("Nothing to export", err)
		return
	}
	dir := p.view.ChooseDirectory(p.cfg.OutputDir)
	if dir == "" {
		p.gate.Release()
		return
	}
	opts := sprite.ExportOptions{Prefix: p.cfg.Prefix, Connector: p.cfg.Connector}
	p.history.Begin(p.Now())
	p.view.SetStatus("exporting…")
	p.Go(func() {
		path, res, err := writeArchive(context.Background(), p.logger, dir, snap, opts)
		p.Post(func() { p.finish(dir, path, res, err) })
	})
}

func (p *ExportPresenter) finish(dir, path string, res sprite.ExportResult, err error) {
	defer p.gate.Release()
	if err != nil {
		if p.logger != nil {
			p.logger.Error("export failed", "dir", dir, "error", err)
		}
		p.view.SetStatus("export failed")
		p.view.ShowError("Export failed", err)
		return
	}
	p.cfg.OutputDir = dir
	p.history.Record(path, len(res.Files), res.Bytes, p.Now())
	totals := p.history.Values()
	p.view.SetStatus(fmt.Sprintf("exported %d files to %s (%s), %d this session",
		len(res.Files), filepath.Base(path), humanize.Bytes(uint64(res.Bytes)), totals.Exports))
}

// writeArchive exports snap into dir. The archive is written under a
// temporary name and renamed into place, so a failed export leaves no
// partial file behind.
func writeArchive(ctx context.Context, logger *slog.Logger, dir string, snap sprite.Snapshot, opts sprite.ExportOptions) (string, sprite.ExportResult, error) {
	job := uuid.New()
	final := filepath.Join(dir, sprite.ArchiveName(opts.Prefix))
	tmp := filepath.Join(dir, "."+job.String()+".zip.part")
	start := time.Now()

	f, err := os.Create(tmp)
	if err != nil {
		return "", sprite.ExportResult{}, errors.Wrap(err, "create archive")
	}
	w := bufio.NewWriter(f)
	res, err := sprite.Export(ctx, snap, opts, w)
	if err == nil {
		err = errors.Wrap(w.Flush(), "flush archive")
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "close archive")
	}
	if err == nil {
		err = errors.Wrap(os.Rename(tmp, final), "move archive into place")
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", sprite.ExportResult{}, err
	}
	if logger != nil {
		logger.Info("export finished",
			"job", job.String(),
			"path", final,
			"files", len(res.Files),
			"size", humanize.Bytes(uint64(res.Bytes)),
			"took", time.Since(start),
		)
	}
	return final, res, nil
}
