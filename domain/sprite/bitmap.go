package sprite

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Bitmap is an immutable decoded source image. Pixels are always stored as
// non-premultiplied RGBA with the origin at (0,0).
type Bitmap struct {
	img *image.NRGBA
}

// NewBitmap copies src into a fresh NRGBA buffer.
func NewBitmap(src image.Image) *Bitmap {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		cp := *n
		cp.Pix = append([]uint8(nil), n.Pix...)
		return &Bitmap{img: &cp}
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Bitmap{img: dst}
}

// DecodeBitmap decodes any registered image format. JPEG orientation tags are
// honoured. Failures wrap ErrDecode.
func DecodeBitmap(data []byte) (*Bitmap, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(ErrDecode, "empty input")
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%v", err)
	}
	return NewBitmap(img), nil
}

// Image exposes the pixel buffer. Callers must not modify it.
func (b *Bitmap) Image() *image.NRGBA {
	if b == nil {
		return nil
	}
	return b.img
}

// Width returns the intrinsic pixel width.
func (b *Bitmap) Width() int {
	if b == nil {
		return 0
	}
	return b.img.Rect.Dx()
}

// Height returns the intrinsic pixel height.
func (b *Bitmap) Height() int {
	if b == nil {
		return 0
	}
	return b.img.Rect.Dy()
}
