package sprite

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"runtime"

	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
)

// ExportOptions names the archive entries.
type ExportOptions struct {
	Prefix    string
	Connector string
	// Workers bounds concurrent rasterization; <= 0 uses GOMAXPROCS.
	Workers int
}

// ExportResult describes a written archive.
type ExportResult struct {
	Files []string
	Bytes int64
}

// FileName returns the n-th (1-based) entry name.
func FileName(prefix, connector string, n int) string {
	return fmt.Sprintf("%s%s%d.png", prefix, connector, n)
}

// ArchiveName returns the archive file name for prefix.
func ArchiveName(prefix string) string { return prefix + ".zip" }

// ExportRects derives the rectangles to export from a snapshot: the boxes in
// list order for custom mode, the grid cells in row-major order for grid mode.
func ExportRects(s Snapshot) ([]geometry.Rect, error) {
	if s.Bitmap == nil {
		return nil, ErrNoSource
	}
	var rects []geometry.Rect
	switch s.Mode {
	case ModeCustom:
		if len(s.Boxes) == 0 {
			return nil, ErrNoSelection
		}
		for _, b := range s.Boxes {
			rects = append(rects, geometry.Normalize(b.Rect))
		}
	case ModeGrid:
		if s.Grid.Area == nil {
			return nil, ErrNoGrid
		}
		rects = s.Grid.Cells()
	}
	if len(rects) == 0 {
		return nil, ErrEmptyExport
	}
	return rects, nil
}

// Export rasterizes every exported rectangle to PNG and writes them as one zip
// archive to w. Rasterization runs concurrently; the first failure cancels
// the remaining work and nothing is written.
func Export(ctx context.Context, s Snapshot, opts ExportOptions, w io.Writer) (ExportResult, error) {
	rects, err := ExportRects(s)
	if err != nil {
		return ExportResult{}, err
	}
	encoded, err := encodeAll(ctx, s, rects, opts.Workers)
	if err != nil {
		return ExportResult{}, err
	}

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	res := ExportResult{Files: make([]string, 0, len(encoded))}
	for i, data := range encoded {
		name := FileName(opts.Prefix, opts.Connector, i+1)
		fw, err := zw.Create(name)
		if err != nil {
			return ExportResult{}, errors.Wrapf(err, "create archive entry %s", name)
		}
		if _, err := fw.Write(data); err != nil {
			return ExportResult{}, errors.Wrapf(err, "write archive entry %s", name)
		}
		res.Files = append(res.Files, name)
	}
	if err := zw.Close(); err != nil {
		return ExportResult{}, errors.Wrap(err, "finalize archive")
	}
	res.Bytes = cw.n
	return res, nil
}

func encodeAll(ctx context.Context, s Snapshot, rects []geometry.Rect, workers int) ([][]byte, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([][]byte, len(rects))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, r := range rects {
		i, r := i, r
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := png.Encode(&buf, Crop(s.Bitmap, r, s.Padding)); err != nil {
				return errors.Wrapf(err, "encode rectangle %d", i+1)
			}
			out[i] = buf.Bytes()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
