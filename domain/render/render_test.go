package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
	"github.com/soocke/sprite-slicer-go/domain/sprite"
)

func solidBitmap(w, h int, c color.NRGBA) *sprite.Bitmap {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return sprite.NewBitmap(img)
}

func count[T Command](cmds []Command) int {
	n := 0
	for _, c := range cmds {
		if _, ok := c.(T); ok {
			n++
		}
	}
	return n
}

func TestScene_CustomHighlightsSelection(t *testing.T) {
	s := sprite.Snapshot{
		Bitmap:  solidBitmap(10, 10, color.NRGBA{A: 255}),
		Padding: 5,
		Mode:    sprite.ModeCustom,
		Boxes: []geometry.Box{
			{ID: 1, Rect: geometry.Rect{X: 0, Y: 0, W: 5, H: 5}},
			{ID: 2, Rect: geometry.Rect{X: 20, Y: 20, W: -10, H: -10}},
			{ID: 3, Rect: geometry.Rect{X: 1, Y: 1, W: 6, H: 6}},
		},
		Selected: 2,
	}
	cmds := Scene(s)
	bm, ok := cmds[0].(DrawBitmap)
	if !ok || bm.At != (geometry.Point{X: 5, Y: 5}) {
		t.Fatalf("first command should draw the bitmap at the padding offset, got %#v", cmds[0])
	}
	if n := count[StrokeRect](cmds); n != 3 {
		t.Fatalf("expected 3 outlines, got %d", n)
	}
	if n := count[Anchor](cmds); n != 8 {
		t.Fatalf("expected 8 anchors, got %d", n)
	}
	var accent []StrokeRect
	for _, c := range cmds {
		if sr, ok := c.(StrokeRect); ok && sr.Color == Accent {
			accent = append(accent, sr)
		}
	}
	if len(accent) != 1 || accent[0].Rect != (geometry.Rect{X: 10, Y: 10, W: 10, H: 10}) {
		t.Fatalf("selected outline wrong: %+v", accent)
	}
}

func TestScene_GridLinesAndAnchors(t *testing.T) {
	area := geometry.Box{ID: 1, Rect: geometry.Rect{X: 0, Y: 0, W: 90, H: 60}}
	s := sprite.Snapshot{
		Bitmap: solidBitmap(90, 60, color.NRGBA{A: 255}),
		Mode:   sprite.ModeGrid,
		Grid:   sprite.Grid{Area: &area, Rows: 2, Cols: 3},
		Boxes:  []geometry.Box{{ID: 9, Rect: geometry.Rect{W: 5, H: 5}}},
	}
	cmds := Scene(s)
	if n := count[DashedLine](cmds); n != 3 {
		t.Fatalf("expected 2 vertical + 1 horizontal lines, got %d", n)
	}
	if n := count[StrokeRect](cmds); n != 1 {
		t.Fatalf("grid mode should only outline the area, got %d", n)
	}
	if n := count[Anchor](cmds); n != 8 {
		t.Fatalf("expected anchors on area, got %d", n)
	}
	first := cmds[2].(DashedLine)
	if first.From.X != 30 || first.To.Y != 60 {
		t.Fatalf("unexpected first cell line %+v", first)
	}
}

func TestScene_NoBitmap(t *testing.T) {
	if cmds := Scene(sprite.Snapshot{}); len(cmds) != 0 {
		t.Fatalf("expected no commands, got %d", len(cmds))
	}
}

func TestRasterize_DrawsBitmapAndOutline(t *testing.T) {
	bmp := solidBitmap(4, 4, color.NRGBA{G: 255, A: 255})
	cmds := []Command{
		DrawBitmap{At: geometry.Point{X: 2, Y: 2}},
		StrokeRect{Rect: geometry.Rect{X: 10, Y: 10, W: 6, H: 6}, Color: Plain, Width: 2},
	}
	img := Rasterize(cmds, 20, 20, bmp)
	if c := img.RGBAAt(3, 3); c.G != 255 || c.A != 255 {
		t.Fatalf("bitmap not blitted: %+v", c)
	}
	if c := img.RGBAAt(1, 1); c.A != 0 {
		t.Fatalf("padding should stay transparent: %+v", c)
	}
	if c := img.RGBAAt(12, 10); c != Plain {
		t.Fatalf("outline missing: %+v", c)
	}
	if c := img.RGBAAt(13, 13); c.A != 0 {
		t.Fatalf("outline interior painted: %+v", c)
	}
}

func TestRasterize_DashedLineHasGaps(t *testing.T) {
	cmds := []Command{DashedLine{From: geometry.Point{X: 0, Y: 5}, To: geometry.Point{X: 16, Y: 5}, Color: Plain, Width: 1}}
	img := Rasterize(cmds, 20, 10, nil)
	if img.RGBAAt(1, 5).A == 0 {
		t.Fatalf("dash missing at x=1")
	}
	if img.RGBAAt(5, 5).A != 0 {
		t.Fatalf("gap missing at x=5")
	}
}

func TestPreview_LetterboxesSelection(t *testing.T) {
	bmp := solidBitmap(20, 10, color.NRGBA{R: 255, A: 255})
	s := sprite.Snapshot{
		Bitmap:   bmp,
		Mode:     sprite.ModeCustom,
		Boxes:    []geometry.Box{{ID: 1, Rect: geometry.Rect{X: 0, Y: 0, W: 20, H: 10}}},
		Selected: 1,
	}
	img := Preview(s, 100, 100)
	if c := img.RGBAAt(50, 50); c.R != 255 || c.A != 255 {
		t.Fatalf("centre should show content: %+v", c)
	}
	if c := img.RGBAAt(50, 10); c.A != 0 {
		t.Fatalf("letterbox band should be transparent: %+v", c)
	}
}

func TestPreview_BlankWithoutSelectionOrInGrid(t *testing.T) {
	bmp := solidBitmap(10, 10, color.NRGBA{R: 255, A: 255})
	area := geometry.Box{ID: 1, Rect: geometry.Rect{W: 10, H: 10}}
	cases := []sprite.Snapshot{
		{Bitmap: bmp, Mode: sprite.ModeCustom, Boxes: []geometry.Box{{ID: 1, Rect: geometry.Rect{W: 10, H: 10}}}},
		{Bitmap: bmp, Mode: sprite.ModeGrid, Grid: sprite.Grid{Area: &area, Rows: 1, Cols: 1}, Selected: 1},
	}
	for i, s := range cases {
		img := Preview(s, 16, 16)
		for j := 3; j < len(img.Pix); j += 4 {
			if img.Pix[j] != 0 {
				t.Fatalf("case %d: preview not blank", i)
			}
		}
	}
}

func TestLetterbox(t *testing.T) {
	if r := Letterbox(20, 10, 100, 100); r != image.Rect(0, 25, 100, 75) {
		t.Fatalf("wide source: %v", r)
	}
	if r := Letterbox(10, 40, 100, 100); r != image.Rect(37, 0, 62, 100) {
		t.Fatalf("tall source: %v", r)
	}
	if r := Letterbox(0, 10, 100, 100); !r.Empty() {
		t.Fatalf("empty source should give empty rect: %v", r)
	}
}

func TestPaint_ScalesGeometryNotStrokes(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	Paint(dst, []Command{StrokeRect{Rect: geometry.Rect{X: 5, Y: 5, W: 10, H: 10}, Color: Plain, Width: 2}}, 2, nil)
	if c := dst.RGBAAt(20, 10); c != Plain {
		t.Fatalf("scaled top edge missing at y=10: %+v", c)
	}
	if c := dst.RGBAAt(20, 12); c.A != 0 {
		t.Fatalf("stroke width should not scale: %+v", c)
	}
}

func TestOverlayDropsBitmap(t *testing.T) {
	cmds := []Command{DrawBitmap{}, StrokeRect{}, Anchor{}}
	if got := Overlay(cmds); len(got) != 2 {
		t.Fatalf("expected 2 overlay commands, got %d", len(got))
	}
}
