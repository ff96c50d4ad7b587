package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
	"github.com/soocke/sprite-slicer-go/domain/sprite"
)

// Preview renders the selected box's content into a transparent w×h image,
// scaled to fit with its aspect ratio kept and centred. The result is blank
// in grid mode or when nothing is selected.
func Preview(s sprite.Snapshot, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if s.Bitmap == nil || w <= 0 || h <= 0 {
		return dst
	}
	b, ok := s.SelectedBox()
	if !ok {
		return dst
	}
	crop := sprite.Crop(s.Bitmap, geometry.Normalize(b.Rect), s.Padding)
	cw, ch := crop.Bounds().Dx(), crop.Bounds().Dy()
	if cw == 0 || ch == 0 {
		return dst
	}
	xdraw.NearestNeighbor.Scale(dst, Letterbox(cw, ch, w, h), crop, crop.Bounds(), xdraw.Over, nil)
	return dst
}

// Letterbox returns the largest rectangle with the aspect ratio of sw×sh
// that fits in dw×dh, centred.
func Letterbox(sw, sh, dw, dh int) image.Rectangle {
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return image.Rectangle{}
	}
	w, h := dw, sh*dw/sw
	if h > dh {
		w, h = sw*dh/sh, dh
	}
	w, h = max(w, 1), max(h, 1)
	x := (dw - w) / 2
	y := (dh - h) / 2
	return image.Rect(x, y, x+w, y+h)
}
