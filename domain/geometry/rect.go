package geometry

import (
	"image"
	"math"
)

// MinSize is the smallest width/height a settled box may have. Anything
// smaller after a draw or resize gesture is treated as a misclick.
const MinSize = 5.0

// Point is a position in canvas coordinates.
type Point struct{ X, Y float64 }

// Size is a width/height pair.
type Size struct{ W, H float64 }

// Rect is an axis-aligned rectangle. W and H may be negative while a box is
// being drawn; Normalize restores the settled form.
type Rect struct {
	X, Y float64
	W, H float64
}

// Box is a rectangle with a stable identity.
type Box struct {
	ID int
	Rect
}

// Right returns the x coordinate of the far edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the far edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Settled reports whether the rectangle satisfies the minimum size.
func (r Rect) Settled() bool { return r.W >= MinSize && r.H >= MinSize }

// Normalize flips negative extents so that W and H are non-negative while
// covering the same area. Normalizing an already normalized rect is a no-op.
func Normalize(r Rect) Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Contains reports whether p lies inside r (edges inclusive). Degenerate
// rectangles contain nothing.
func Contains(r Rect, p Point) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersect returns the overlap of two normalized rectangles. ok is false
// when the overlap has no area.
func Intersect(a, b Rect) (Rect, bool) {
	x0 := math.Max(a.X, b.X)
	y0 := math.Max(a.Y, b.Y)
	x1 := math.Min(a.Right(), b.Right())
	y1 := math.Min(a.Bottom(), b.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// ClampMove keeps the whole rectangle inside bounds by adjusting only its
// origin. A rect larger than bounds is pinned to the bounds origin.
func ClampMove(r, bounds Rect) Rect {
	r.X = math.Max(bounds.X, math.Min(r.X, bounds.Right()-r.W))
	r.Y = math.Max(bounds.Y, math.Min(r.Y, bounds.Bottom()-r.H))
	return r
}

// ClampResize trims the rectangle so it never extends before the bounds
// origin or past the far bounds. Trimming the near side keeps the far edge in
// place; trimming the far side keeps the origin in place.
func ClampResize(r, bounds Rect) Rect {
	if r.X < bounds.X {
		r.W += r.X - bounds.X
		r.X = bounds.X
	}
	if r.Y < bounds.Y {
		r.H += r.Y - bounds.Y
		r.Y = bounds.Y
	}
	if r.Right() > bounds.Right() {
		r.W = bounds.Right() - r.X
	}
	if r.Bottom() > bounds.Bottom() {
		r.H = bounds.Bottom() - r.Y
	}
	return r
}

// Pixels converts the rect into an integer pixel rectangle. Both edges are
// rounded to the nearest pixel, so rects sharing a fractional edge (grid
// cells) share the pixel boundary and tile without gaps or overlap.
func (r Rect) Pixels() image.Rectangle {
	n := Normalize(r)
	return image.Rect(
		int(math.Round(n.X)), int(math.Round(n.Y)),
		int(math.Round(n.Right())), int(math.Round(n.Bottom())),
	)
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
