package detect

import (
	"image"
	"image/color"
	"reflect"
	"testing"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
)

// bitmap builds a w x h image with the listed pixels opaque.
func bitmap(w, h int, opaque ...image.Point) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for _, p := range opaque {
		img.SetNRGBA(p.X, p.Y, color.NRGBA{R: 255, A: 255})
	}
	return img
}

func TestComponents_DiagonalNotMerged(t *testing.T) {
	img := bitmap(3, 3, image.Pt(0, 0), image.Pt(1, 1), image.Pt(2, 2))
	got := Components(img, Options{})
	want := []geometry.Rect{
		{X: 0, Y: 0, W: 1, H: 1},
		{X: 1, Y: 1, W: 1, H: 1},
		{X: 2, Y: 2, W: 1, H: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("diagonal pixels merged or misplaced: %+v", got)
	}
}

func TestComponents_FourConnectedMerged(t *testing.T) {
	// an L shape plus a separate blob
	img := bitmap(6, 4,
		image.Pt(0, 0), image.Pt(0, 1), image.Pt(0, 2), image.Pt(1, 2),
		image.Pt(4, 1), image.Pt(5, 1), image.Pt(4, 2),
	)
	comps := Scan(img)
	if len(comps) != 2 {
		t.Fatalf("expected 2 components, got %d", len(comps))
	}
	if comps[0].Bounds != image.Rect(0, 0, 2, 3) || comps[0].Pixels != 4 {
		t.Fatalf("unexpected first component %+v", comps[0])
	}
	if comps[1].Bounds != image.Rect(4, 1, 6, 3) || comps[1].Pixels != 3 {
		t.Fatalf("unexpected second component %+v", comps[1])
	}
}

func TestComponents_PaddingAndCanvasOffset(t *testing.T) {
	img := bitmap(10, 10, image.Pt(4, 4), image.Pt(5, 4))
	got := Components(img, Options{Padding: 2, CanvasPadding: 20})
	want := geometry.Rect{X: 22, Y: 22, W: 6, H: 5}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestComponents_FixedSizeOverridesExtent(t *testing.T) {
	img := bitmap(10, 10, image.Pt(1, 1), image.Pt(7, 7))
	fixed := &geometry.Size{W: 16, H: 12}
	got := Components(img, Options{CanvasPadding: 5, FixedSize: fixed})
	if len(got) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(got))
	}
	for _, r := range got {
		if r.W != 16 || r.H != 12 {
			t.Fatalf("fixed size not applied: %+v", r)
		}
	}
	if got[1].X != 12 || got[1].Y != 12 {
		t.Fatalf("fixed size should keep origin, got %+v", got[1])
	}
}

func TestComponents_Deterministic(t *testing.T) {
	img := bitmap(8, 8, image.Pt(7, 0), image.Pt(0, 1), image.Pt(3, 3), image.Pt(3, 4), image.Pt(6, 6))
	a := Components(img, Options{Padding: 1})
	b := Components(img, Options{Padding: 1})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("detector output differs between runs:\n%+v\n%+v", a, b)
	}
	// row-major: the pixel at (7,0) is scanned before (0,1)
	if a[0].X != 6 || a[1].X != -1 {
		t.Fatalf("unexpected scan order %+v", a)
	}
}

func TestComponents_EmptyAndTransparent(t *testing.T) {
	if got := Components(bitmap(4, 4), Options{}); len(got) != 0 {
		t.Fatalf("transparent image produced boxes: %+v", got)
	}
	if got := Components(nil, Options{}); len(got) != 0 {
		t.Fatalf("nil image produced boxes: %+v", got)
	}
}

func TestScan_LargeSolidImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 512, 512))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 1
	}
	comps := Scan(img)
	if len(comps) != 1 || comps[0].Pixels != 512*512 {
		t.Fatalf("expected one full component, got %+v", comps)
	}
}
