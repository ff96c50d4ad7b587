package sprite

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/klauspost/compress/zip"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
)

func readArchive(t *testing.T, data []byte) map[string]image.Image {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	out := make(map[string]image.Image)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		raw, _ := io.ReadAll(rc)
		rc.Close()
		img, err := png.Decode(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("decode %s: %v", f.Name, err)
		}
		out[f.Name] = img
	}
	return out
}

func TestExport_CustomFileNames(t *testing.T) {
	d := newLoadedDoc(t, 30, 30, 0)
	d.AddBox(geometry.Rect{X: 0, Y: 0, W: 10, H: 10})
	d.AddBox(geometry.Rect{X: 10, Y: 0, W: 10, H: 10})
	d.AddBox(geometry.Rect{X: 20, Y: 0, W: 10, H: 10})
	var buf bytes.Buffer
	res, err := Export(context.Background(), d.Snapshot(), ExportOptions{Prefix: "sprite", Connector: "_"}, &buf)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := []string{"sprite_1.png", "sprite_2.png", "sprite_3.png"}
	if len(res.Files) != len(want) {
		t.Fatalf("files %v want %v", res.Files, want)
	}
	for i := range want {
		if res.Files[i] != want[i] {
			t.Fatalf("files %v want %v", res.Files, want)
		}
	}
	if res.Bytes != int64(buf.Len()) {
		t.Fatalf("reported %d bytes, wrote %d", res.Bytes, buf.Len())
	}
	files := readArchive(t, buf.Bytes())
	if len(files) != 3 {
		t.Fatalf("archive holds %d files", len(files))
	}
	for _, name := range want {
		img, ok := files[name]
		if !ok {
			t.Fatalf("missing %s", name)
		}
		if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 10 {
			t.Fatalf("%s has size %v", name, img.Bounds())
		}
	}
}

func TestExport_Preconditions(t *testing.T) {
	ctx := context.Background()
	if _, err := Export(ctx, NewDocument(nil, 0).Snapshot(), ExportOptions{}, io.Discard); !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
	d := newLoadedDoc(t, 10, 10, 0)
	if _, err := Export(ctx, d.Snapshot(), ExportOptions{}, io.Discard); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	d.SetMode(ModeGrid)
	if _, err := Export(ctx, d.Snapshot(), ExportOptions{}, io.Discard); !errors.Is(err, ErrNoGrid) {
		t.Fatalf("expected ErrNoGrid, got %v", err)
	}
}

func TestExportRects_GridRowMajor(t *testing.T) {
	d := newLoadedDoc(t, 200, 200, 0)
	d.SetMode(ModeGrid)
	d.SetGridArea(geometry.Rect{X: 10, Y: 10, W: 100, H: 100})
	rects, err := ExportRects(d.Snapshot())
	if err != nil {
		t.Fatalf("rects: %v", err)
	}
	want := []geometry.Rect{
		{X: 10, Y: 10, W: 50, H: 50},
		{X: 60, Y: 10, W: 50, H: 50},
		{X: 10, Y: 60, W: 50, H: 50},
		{X: 60, Y: 60, W: 50, H: 50},
	}
	if len(rects) != len(want) {
		t.Fatalf("got %d cells", len(rects))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("cell %d = %+v want %+v", i, rects[i], want[i])
		}
	}
}

func TestExportRects_OddGridTilesImage(t *testing.T) {
	d := newLoadedDoc(t, 101, 101, 3)
	d.SetMode(ModeGrid)
	d.FitGridToImage()
	snap := d.Snapshot()
	rects, err := ExportRects(snap)
	if err != nil {
		t.Fatalf("rects: %v", err)
	}
	covered := make([]int, 101*101)
	for i, r := range rects {
		px := r.Pixels()
		img := Crop(snap.Bitmap, r, snap.Padding)
		if img.Bounds().Dx() != px.Dx() || img.Bounds().Dy() != px.Dy() {
			t.Fatalf("cell %d cropped to %v, want %v", i, img.Bounds(), px)
		}
		for y := px.Min.Y; y < px.Max.Y; y++ {
			for x := px.Min.X; x < px.Max.X; x++ {
				covered[(y-3)*101+(x-3)]++
			}
		}
	}
	for i, n := range covered {
		if n != 1 {
			t.Fatalf("pixel (%d,%d) exported %d times", i%101, i/101, n)
		}
	}
}

func TestCrop_FullyOutsideIsTransparent(t *testing.T) {
	bmp := NewBitmap(solid(10, 10, color.NRGBA{G: 255, A: 255}))
	img := Crop(bmp, geometry.Rect{X: 100, Y: 100, W: 12, H: 7}, 5)
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 7 {
		t.Fatalf("unexpected size %v", img.Bounds())
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatalf("pixel %d not transparent", i/4)
		}
	}
}

func TestCrop_PartialOverlapClipped(t *testing.T) {
	bmp := NewBitmap(solid(10, 10, color.NRGBA{B: 255, A: 255}))
	// padding 5: bitmap occupies canvas [5,15); box covers [0,10)
	img := Crop(bmp, geometry.Rect{X: 0, Y: 0, W: 10, H: 10}, 5)
	if a := img.NRGBAAt(4, 4).A; a != 0 {
		t.Fatalf("padding area should be transparent, alpha=%d", a)
	}
	if c := img.NRGBAAt(5, 5); c.A != 255 || c.B != 255 {
		t.Fatalf("overlap not copied: %+v", c)
	}
	if c := img.NRGBAAt(9, 9); c.A != 255 {
		t.Fatalf("overlap not copied at far corner: %+v", c)
	}
}

func TestExport_OutsideBoxIsNotAnError(t *testing.T) {
	d := newLoadedDoc(t, 10, 10, 0)
	d.AddBox(geometry.Rect{X: 500, Y: 500, W: 20, H: 20})
	var buf bytes.Buffer
	if _, err := Export(context.Background(), d.Snapshot(), ExportOptions{Prefix: "p", Connector: "-"}, &buf); err != nil {
		t.Fatalf("export of outside box failed: %v", err)
	}
	files := readArchive(t, buf.Bytes())
	img := files["p-1.png"]
	if img == nil || img.Bounds().Dx() != 20 {
		t.Fatalf("missing or wrong-sized p-1.png")
	}
	if _, _, _, a := img.At(10, 10).RGBA(); a != 0 {
		t.Fatalf("outside box should be transparent")
	}
}

func TestExport_CancelledContextAborts(t *testing.T) {
	d := newLoadedDoc(t, 10, 10, 0)
	d.AddBox(geometry.Rect{W: 5, H: 5})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if _, err := Export(ctx, d.Snapshot(), ExportOptions{Prefix: "x"}, &buf); err == nil {
		t.Fatalf("expected error from cancelled export")
	}
	if buf.Len() != 0 {
		t.Fatalf("aborted export wrote %d bytes", buf.Len())
	}
}

func TestExport_DegenerateRectAbortsWholeArchive(t *testing.T) {
	d := newLoadedDoc(t, 10, 10, 0)
	d.AddBox(geometry.Rect{W: 5, H: 5})
	d.AddBox(geometry.Rect{W: 0.5, H: 5}) // rasterizes to zero width
	var buf bytes.Buffer
	if _, err := Export(context.Background(), d.Snapshot(), ExportOptions{Prefix: "x"}, &buf); err == nil {
		t.Fatalf("expected failure for zero-width raster")
	}
	if buf.Len() != 0 {
		t.Fatalf("partial archive written")
	}
}

func TestFileNames(t *testing.T) {
	if FileName("sprite", "_", 3) != "sprite_3.png" {
		t.Fatalf("bad file name %q", FileName("sprite", "_", 3))
	}
	if ArchiveName("sprite") != "sprite.zip" {
		t.Fatalf("bad archive name")
	}
}
