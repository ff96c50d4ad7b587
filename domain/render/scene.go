package render

import (
	"github.com/soocke/sprite-slicer-go/domain/geometry"
	"github.com/soocke/sprite-slicer-go/domain/sprite"
)

// Scene returns the draw commands for s, back to front. A snapshot without
// a bitmap yields no commands.
func Scene(s sprite.Snapshot) []Command {
	if s.Bitmap == nil {
		return nil
	}
	p := float64(s.Padding)
	cmds := []Command{DrawBitmap{At: geometry.Point{X: p, Y: p}}}

	switch s.Mode {
	case sprite.ModeCustom:
		var selected *geometry.Box
		for i := range s.Boxes {
			b := s.Boxes[i]
			if b.ID == s.Selected {
				selected = &s.Boxes[i]
				continue
			}
			cmds = append(cmds, StrokeRect{Rect: geometry.Normalize(b.Rect), Color: Plain, Width: OutlineWidth})
		}
		// selected box last, on top
		if selected != nil {
			r := geometry.Normalize(selected.Rect)
			cmds = append(cmds, StrokeRect{Rect: r, Color: Accent, Width: OutlineWidth})
			cmds = appendAnchors(cmds, r)
		}
	case sprite.ModeGrid:
		if s.Grid.Area == nil {
			break
		}
		r := geometry.Normalize(s.Grid.Area.Rect)
		cmds = append(cmds, StrokeRect{Rect: r, Color: Plain, Width: OutlineWidth})
		cmds = append(cmds, gridLines(r, s.Grid.Rows, s.Grid.Cols)...)
		cmds = appendAnchors(cmds, r)
	}
	return cmds
}

func gridLines(r geometry.Rect, rows, cols int) []Command {
	var out []Command
	if cols > 1 {
		cw := r.W / float64(cols)
		for c := 1; c < cols; c++ {
			x := r.X + float64(c)*cw
			out = append(out, DashedLine{From: geometry.Point{X: x, Y: r.Y}, To: geometry.Point{X: x, Y: r.Bottom()}, Color: Plain, Width: DashWidth})
		}
	}
	if rows > 1 {
		rh := r.H / float64(rows)
		for i := 1; i < rows; i++ {
			y := r.Y + float64(i)*rh
			out = append(out, DashedLine{From: geometry.Point{X: r.X, Y: y}, To: geometry.Point{X: r.Right(), Y: y}, Color: Plain, Width: DashWidth})
		}
	}
	return out
}

func appendAnchors(cmds []Command, r geometry.Rect) []Command {
	for _, a := range geometry.Anchors(r) {
		cmds = append(cmds, Anchor{At: a.Point, Size: geometry.AnchorSize, Fill: AnchorFill, Stroke: Accent})
	}
	return cmds
}
