package geometry

// AnchorSize is the edge length of the square hit area around each anchor.
const AnchorSize = 8.0

// Anchor identifies one of the eight resize handles of a box.
type Anchor int

const (
	AnchorNone Anchor = iota
	TopLeft
	TopMiddle
	TopRight
	MiddleLeft
	MiddleRight
	BottomLeft
	BottomMiddle
	BottomRight
)

func (a Anchor) String() string {
	switch a {
	case TopLeft:
		return "top-left"
	case TopMiddle:
		return "top-middle"
	case TopRight:
		return "top-right"
	case MiddleLeft:
		return "middle-left"
	case MiddleRight:
		return "middle-right"
	case BottomLeft:
		return "bottom-left"
	case BottomMiddle:
		return "bottom-middle"
	case BottomRight:
		return "bottom-right"
	default:
		return "none"
	}
}

// Corner reports whether the anchor moves two edges at once.
func (a Anchor) Corner() bool {
	return a == TopLeft || a == TopRight || a == BottomLeft || a == BottomRight
}

// Cursor is a pointer-style hint published to the view.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResizeNWSE
	CursorResizeNESW
	CursorResizeEW
	CursorResizeNS
)

func (c Cursor) String() string {
	switch c {
	case CursorMove:
		return "move"
	case CursorResizeNWSE:
		return "nwse-resize"
	case CursorResizeNESW:
		return "nesw-resize"
	case CursorResizeEW:
		return "ew-resize"
	case CursorResizeNS:
		return "ns-resize"
	default:
		return "default"
	}
}

// Cursor returns the resize hint for the handle.
func (a Anchor) Cursor() Cursor {
	switch a {
	case TopLeft, BottomRight:
		return CursorResizeNWSE
	case TopRight, BottomLeft:
		return CursorResizeNESW
	case MiddleLeft, MiddleRight:
		return CursorResizeEW
	case TopMiddle, BottomMiddle:
		return CursorResizeNS
	default:
		return CursorDefault
	}
}

// AnchorPoint pairs a handle with its position.
type AnchorPoint struct {
	Anchor Anchor
	Point
}

// Anchors returns the eight handle positions of r, corners and edge midpoints,
// in a fixed order that also defines hit-test priority.
func Anchors(r Rect) [8]AnchorPoint {
	midX := r.X + r.W/2
	midY := r.Y + r.H/2
	return [8]AnchorPoint{
		{TopLeft, Point{r.X, r.Y}},
		{TopMiddle, Point{midX, r.Y}},
		{TopRight, Point{r.Right(), r.Y}},
		{MiddleLeft, Point{r.X, midY}},
		{MiddleRight, Point{r.Right(), midY}},
		{BottomLeft, Point{r.X, r.Bottom()}},
		{BottomMiddle, Point{midX, r.Bottom()}},
		{BottomRight, Point{r.Right(), r.Bottom()}},
	}
}

// HitAnchor returns the first anchor whose square handle of the given size
// contains p.
func HitAnchor(r Rect, p Point, size float64) (Anchor, bool) {
	half := size / 2
	for _, a := range Anchors(r) {
		if p.X >= a.X-half && p.X <= a.X+half && p.Y >= a.Y-half && p.Y <= a.Y+half {
			return a.Anchor, true
		}
	}
	return AnchorNone, false
}
