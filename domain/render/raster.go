package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/soocke/sprite-slicer-go/domain/sprite"
)

// Rasterize paints cmds onto a transparent w×h canvas. The bitmap is only
// read by DrawBitmap commands and may be nil.
func Rasterize(cmds []Command, w, h int, bmp *sprite.Bitmap) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	Paint(dst, cmds, 1, bmp)
	return dst
}

// Paint draws cmds onto dst with canvas coordinates multiplied by scale.
// Stroke widths and anchor sizes are not scaled so overlays stay crisp at
// any zoom.
func Paint(dst *image.RGBA, cmds []Command, scale float64, bmp *sprite.Bitmap) {
	if scale <= 0 {
		scale = 1
	}
	for _, c := range cmds {
		switch c := c.(type) {
		case DrawBitmap:
			if bmp == nil || bmp.Image() == nil {
				continue
			}
			src := bmp.Image()
			at := image.Pt(int(math.Round(c.At.X*scale)), int(math.Round(c.At.Y*scale)))
			if scale == 1 {
				xdraw.Draw(dst, src.Bounds().Add(at), src, src.Bounds().Min, xdraw.Over)
				continue
			}
			w := int(math.Round(float64(src.Bounds().Dx()) * scale))
			h := int(math.Round(float64(src.Bounds().Dy()) * scale))
			xdraw.NearestNeighbor.Scale(dst, image.Rect(at.X, at.Y, at.X+w, at.Y+h), src, src.Bounds(), xdraw.Over, nil)
		case StrokeRect:
			r := c.Rect
			strokeRect(dst, r.X*scale, r.Y*scale, r.Right()*scale, r.Bottom()*scale, c.Width, c.Color)
		case DashedLine:
			c.From.X, c.From.Y = c.From.X*scale, c.From.Y*scale
			c.To.X, c.To.Y = c.To.X*scale, c.To.Y*scale
			dashedLine(dst, c)
		case Anchor:
			half := c.Size / 2
			x0, y0 := c.At.X*scale-half, c.At.Y*scale-half
			fillRect(dst, x0, y0, x0+c.Size, y0+c.Size, c.Fill)
			strokeRect(dst, x0, y0, x0+c.Size, y0+c.Size, 1, c.Stroke)
		}
	}
}

// Overlay drops DrawBitmap commands, leaving what is painted over a cached
// base frame.
func Overlay(cmds []Command) []Command {
	out := make([]Command, 0, len(cmds))
	for _, c := range cmds {
		if _, ok := c.(DrawBitmap); ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

// fillRect fills the pixel span covering [x0,x1)×[y0,y1), clipped to dst.
func fillRect(dst *image.RGBA, x0, y0, x1, y1 float64, c color.RGBA) {
	r := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, xdraw.Over)
}

// strokeRect draws the outline centred on the rectangle edges.
func strokeRect(dst *image.RGBA, x0, y0, x1, y1, width float64, c color.RGBA) {
	h := width / 2
	fillRect(dst, x0-h, y0-h, x1+h, y0+h, c) // top
	fillRect(dst, x0-h, y1-h, x1+h, y1+h, c) // bottom
	fillRect(dst, x0-h, y0+h, x0+h, y1-h, c) // left
	fillRect(dst, x1-h, y0+h, x1+h, y1-h, c) // right
}

func dashedLine(dst *image.RGBA, l DashedLine) {
	dx, dy := l.To.X-l.From.X, l.To.Y-l.From.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	h := l.Width / 2
	period := DashOn + DashOff
	for t := 0.0; t < length; t += 1 {
		if math.Mod(t, period) >= DashOn {
			continue
		}
		x, y := l.From.X+ux*t, l.From.Y+uy*t
		fillRect(dst, x-h, y-h, x+h, y+h, l.Color)
	}
}
