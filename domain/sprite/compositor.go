package sprite

import (
	"image"
	"image/draw"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
)

// Crop rasterizes the canvas-space rectangle r into a new image of r's size.
// Only the part of r overlapping the bitmap footprint (the bitmap placed at
// padding,padding) is copied; everything else stays fully transparent, so a
// rectangle entirely outside the image yields a blank image.
func Crop(b *Bitmap, r geometry.Rect, padding int) *image.NRGBA {
	px := r.Pixels()
	dst := image.NewNRGBA(image.Rect(0, 0, px.Dx(), px.Dy()))
	if b == nil || px.Empty() {
		return dst
	}
	footprint := b.Image().Bounds().Add(image.Pt(padding, padding))
	overlap := px.Intersect(footprint)
	if overlap.Empty() {
		return dst
	}
	dstRect := overlap.Sub(px.Min)
	srcPt := overlap.Min.Sub(image.Pt(padding, padding))
	draw.Draw(dst, dstRect, b.Image(), srcPt, draw.Src)
	return dst
}
