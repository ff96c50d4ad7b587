package interaction

import (
	"math"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
)

// Resize computes the rectangle produced by dragging anchor a of the
// gesture-start rectangle o to p. The edges opposite the anchor stay fixed.
// With lock set the result keeps the given aspect ratio (w/h); edge anchors
// derive the other dimension symmetrically around the original centre.
// The result may have negative extents when p crosses the fixed edge.
func Resize(o geometry.Rect, a geometry.Anchor, p geometry.Point, lock bool, aspect float64) geometry.Rect {
	lock = lock && aspect > 0 && !math.IsInf(aspect, 0) && !math.IsNaN(aspect)
	right, bottom := o.Right(), o.Bottom()
	r := o
	switch a {
	case geometry.TopLeft:
		w, h := right-p.X, bottom-p.Y
		if lock {
			w, h = lockAspect(w, h, aspect)
		}
		r = geometry.Rect{X: right - w, Y: bottom - h, W: w, H: h}
	case geometry.TopRight:
		w, h := p.X-o.X, bottom-p.Y
		if lock {
			w, h = lockAspect(w, h, aspect)
		}
		r = geometry.Rect{X: o.X, Y: bottom - h, W: w, H: h}
	case geometry.BottomLeft:
		w, h := right-p.X, p.Y-o.Y
		if lock {
			w, h = lockAspect(w, h, aspect)
		}
		r = geometry.Rect{X: right - w, Y: o.Y, W: w, H: h}
	case geometry.BottomRight:
		w, h := p.X-o.X, p.Y-o.Y
		if lock {
			w, h = lockAspect(w, h, aspect)
		}
		r = geometry.Rect{X: o.X, Y: o.Y, W: w, H: h}
	case geometry.TopMiddle:
		r.H = bottom - p.Y
		r.Y = bottom - r.H
		if lock {
			r.W = r.H * aspect
			r.X = o.X + (o.W-r.W)/2
		}
	case geometry.BottomMiddle:
		r.H = p.Y - o.Y
		if lock {
			r.W = r.H * aspect
			r.X = o.X + (o.W-r.W)/2
		}
	case geometry.MiddleLeft:
		r.W = right - p.X
		r.X = right - r.W
		if lock {
			r.H = r.W / aspect
			r.Y = o.Y + (o.H-r.H)/2
		}
	case geometry.MiddleRight:
		r.W = p.X - o.X
		if lock {
			r.H = r.W / aspect
			r.Y = o.Y + (o.H-r.H)/2
		}
	}
	return r
}

// lockAspect snaps w,h onto the aspect ratio by correcting whichever
// dimension needs the smaller change.
func lockAspect(w, h, aspect float64) (float64, float64) {
	if math.Abs(w/aspect-h) <= math.Abs(h*aspect-w) {
		return w, w / aspect
	}
	return h * aspect, h
}

// FixedPoint is the point of o that stays put while anchor a is dragged
// with the aspect locked: the opposite corner for corner anchors, the
// midpoint of the opposite edge for edge anchors.
func FixedPoint(o geometry.Rect, a geometry.Anchor) geometry.Point {
	o = geometry.Normalize(o)
	cx, cy := o.X+o.W/2, o.Y+o.H/2
	switch a {
	case geometry.TopLeft:
		return geometry.Point{X: o.Right(), Y: o.Bottom()}
	case geometry.TopRight:
		return geometry.Point{X: o.X, Y: o.Bottom()}
	case geometry.BottomLeft:
		return geometry.Point{X: o.Right(), Y: o.Y}
	case geometry.BottomRight:
		return geometry.Point{X: o.X, Y: o.Y}
	case geometry.TopMiddle:
		return geometry.Point{X: cx, Y: o.Bottom()}
	case geometry.BottomMiddle:
		return geometry.Point{X: cx, Y: o.Y}
	case geometry.MiddleLeft:
		return geometry.Point{X: o.Right(), Y: cy}
	case geometry.MiddleRight:
		return geometry.Point{X: o.X, Y: cy}
	}
	return geometry.Point{X: cx, Y: cy}
}

// FitLocked shrinks the normalized rect r uniformly towards f until it lies
// inside bounds. Both dimensions scale by the same factor, so w/h is kept.
func FitLocked(r geometry.Rect, f geometry.Point, bounds geometry.Rect) geometry.Rect {
	s := 1.0
	limit := func(extent, room float64) {
		if extent > room && extent > 0 {
			s = math.Min(s, math.Max(room, 0)/extent)
		}
	}
	limit(f.X-r.X, f.X-bounds.X)
	limit(r.Right()-f.X, bounds.Right()-f.X)
	limit(f.Y-r.Y, f.Y-bounds.Y)
	limit(r.Bottom()-f.Y, bounds.Bottom()-f.Y)
	if s >= 1 {
		return r
	}
	return geometry.Rect{
		X: f.X - (f.X-r.X)*s,
		Y: f.Y - (f.Y-r.Y)*s,
		W: r.W * s,
		H: r.H * s,
	}
}
