package sprite

import "github.com/soocke/sprite-slicer-go/domain/geometry"

// Mode selects how the source is sliced.
type Mode int

const (
	ModeCustom Mode = iota
	ModeGrid
)

func (m Mode) String() string {
	switch m {
	case ModeCustom:
		return "custom"
	case ModeGrid:
		return "grid"
	default:
		return "unknown"
	}
}

// DefaultGridSize is the rows/cols value of a fresh document.
const DefaultGridSize = 2

// Grid is a uniform partition of one area. Cells are derived, never stored.
type Grid struct {
	Area *geometry.Box
	Rows int
	Cols int
}

// Cells returns the rows x cols cell rectangles in row-major order. A grid
// without an area has no cells.
func (g Grid) Cells() []geometry.Rect {
	if g.Area == nil || g.Rows < 1 || g.Cols < 1 {
		return nil
	}
	a := geometry.Normalize(g.Area.Rect)
	cw := a.W / float64(g.Cols)
	ch := a.H / float64(g.Rows)
	cells := make([]geometry.Rect, 0, g.Rows*g.Cols)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cells = append(cells, geometry.Rect{
				X: a.X + float64(col)*cw,
				Y: a.Y + float64(row)*ch,
				W: cw,
				H: ch,
			})
		}
	}
	return cells
}

// clone deep-copies the area pointer.
func (g Grid) clone() Grid {
	if g.Area != nil {
		a := *g.Area
		g.Area = &a
	}
	return g
}
