// Package detect finds connected opaque regions in a bitmap.
package detect

import (
	"image"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
)

// Options controls how component bounds are reported.
type Options struct {
	// Padding expands every component's bounding box on all sides.
	Padding int
	// CanvasPadding is the offset of the bitmap inside canvas space.
	CanvasPadding int
	// FixedSize, when non-nil, replaces the width/height of every result.
	FixedSize *geometry.Size
}

// Component is one 4-connected opaque region in bitmap-local pixels.
type Component struct {
	Bounds image.Rectangle
	Pixels int
}

// Components scans img row-major and returns one canvas-space rectangle per
// 4-connected region of pixels with non-zero alpha. Diagonal neighbours are
// not merged. The output order follows the scan order of each region's first
// pixel, so identical input yields identical output.
func Components(img *image.NRGBA, opts Options) []geometry.Rect {
	comps := Scan(img)
	out := make([]geometry.Rect, 0, len(comps))
	pad := float64(opts.Padding)
	off := float64(opts.CanvasPadding)
	for _, c := range comps {
		r := geometry.Rect{
			X: float64(c.Bounds.Min.X) - pad + off,
			Y: float64(c.Bounds.Min.Y) - pad + off,
			W: float64(c.Bounds.Dx()) + 2*pad,
			H: float64(c.Bounds.Dy()) + 2*pad,
		}
		if opts.FixedSize != nil {
			r.W, r.H = opts.FixedSize.W, opts.FixedSize.H
		}
		out = append(out, r)
	}
	return out
}

// Scan returns the raw components of img with bounds relative to the image
// origin (Min is normalised to 0,0).
func Scan(img *image.NRGBA) []Component {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	opaque := func(i int) bool {
		x, y := i%w, i/w
		return img.Pix[y*img.Stride+x*4+3] > 0
	}
	visited := make([]bool, w*h)
	var q queue
	var comps []Component
	for start := 0; start < w*h; start++ {
		if visited[start] || !opaque(start) {
			continue
		}
		visited[start] = true
		q.reset()
		q.push(int32(start))
		minX, minY := start%w, start/w
		maxX, maxY := minX, minY
		n := 0
		for !q.empty() {
			i := int(q.pop())
			n++
			x, y := i%w, i/w
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
			// up, down, left, right
			if y > 0 {
				q.visit(i-w, visited, opaque)
			}
			if y < h-1 {
				q.visit(i+w, visited, opaque)
			}
			if x > 0 {
				q.visit(i-1, visited, opaque)
			}
			if x < w-1 {
				q.visit(i+1, visited, opaque)
			}
		}
		comps = append(comps, Component{
			Bounds: image.Rect(minX, minY, maxX+1, maxY+1),
			Pixels: n,
		})
	}
	return comps
}
