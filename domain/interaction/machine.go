// Package interaction turns pointer and keyboard events into edits of a
// sprite.Document.
package interaction

import (
	"log/slog"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
	"github.com/soocke/sprite-slicer-go/domain/sprite"
)

// Machine is the pointer/keyboard state machine. Every method runs to
// completion on the UI thread; there is no internal concurrency.
type Machine struct {
	logger *slog.Logger
	doc    *sprite.Document

	state    State
	anchor   geometry.Anchor
	start    geometry.Point // pointer position when drawing began
	grab     geometry.Point // pointer offset from the box origin when moving
	origin   geometry.Rect  // target rectangle when resizing began
	aspect   float64        // origin w/h
	targetID int            // custom box under gesture; 0 for the grid area
	cursor   geometry.Cursor

	listeners []StateListener
}

// NewMachine binds a machine to doc.
func NewMachine(logger *slog.Logger, doc *sprite.Document) *Machine {
	return &Machine{logger: logger, doc: doc}
}

// AddListener registers l for state transitions.
func (m *Machine) AddListener(l StateListener) {
	if l != nil {
		m.listeners = append(m.listeners, l)
	}
}

// State returns the current gesture state.
func (m *Machine) State() State { return m.state }

// Cursor returns the last published cursor hint.
func (m *Machine) Cursor() geometry.Cursor { return m.cursor }

func (m *Machine) transition(next State) {
	prev := m.state
	if prev == next {
		return
	}
	m.state = next
	if m.logger != nil {
		m.logger.Debug("interaction state transition", "from", prev.String(), "to", next.String(), "anchor", m.anchor.String())
	}
	for _, l := range m.listeners {
		l(prev, next)
	}
}

// target returns the box that owns the anchors: the selected box in custom
// mode, the grid area in grid mode.
func (m *Machine) target() (geometry.Box, bool) {
	switch m.doc.Mode() {
	case sprite.ModeCustom:
		if id, ok := m.doc.Selected(); ok {
			return m.doc.Box(id)
		}
	case sprite.ModeGrid:
		if a := m.doc.Grid().Area; a != nil {
			return *a, true
		}
	}
	return geometry.Box{}, false
}

func (m *Machine) apply(r geometry.Rect) {
	if m.doc.Mode() == sprite.ModeGrid {
		m.doc.UpdateGridArea(r)
		return
	}
	m.doc.UpdateBox(m.targetID, r)
}

// BoxAt returns the topmost custom box containing p.
func (m *Machine) BoxAt(p geometry.Point) (geometry.Box, bool) {
	boxes := m.doc.Boxes()
	for i := len(boxes) - 1; i >= 0; i-- {
		if geometry.Contains(boxes[i].Rect, p) {
			return boxes[i], true
		}
	}
	return geometry.Box{}, false
}

// PointerDown starts a resize, move or draw gesture.
func (m *Machine) PointerDown(p geometry.Point, _ Modifiers) {
	if !m.doc.HasSource() {
		return
	}
	if t, ok := m.target(); ok {
		if a, hit := geometry.HitAnchor(t.Rect, p, geometry.AnchorSize); hit {
			m.anchor = a
			m.origin = t.Rect
			m.aspect = 1
			if t.H != 0 {
				m.aspect = t.W / t.H
			}
			m.targetID = t.ID
			m.transition(StateResizing)
			return
		}
	}

	switch m.doc.Mode() {
	case sprite.ModeCustom:
		if b, ok := m.BoxAt(p); ok {
			m.doc.Select(b.ID)
			m.targetID = b.ID
			m.grab = geometry.Point{X: p.X - b.X, Y: p.Y - b.Y}
			m.transition(StateMoving)
			return
		}
		m.doc.ClearSelection()
		b := m.doc.AddBox(geometry.Rect{X: p.X, Y: p.Y})
		m.doc.Select(b.ID)
		m.targetID = b.ID
	case sprite.ModeGrid:
		if a := m.doc.Grid().Area; a != nil && geometry.Contains(a.Rect, p) {
			m.targetID = 0
			m.grab = geometry.Point{X: p.X - a.X, Y: p.Y - a.Y}
			m.transition(StateMoving)
			return
		}
		m.doc.SetGridArea(geometry.Rect{X: p.X, Y: p.Y})
		m.targetID = 0
	}
	m.start = p
	m.transition(StateDrawing)
}

// PointerMove updates the active gesture and returns the cursor hint for
// the hovered target.
func (m *Machine) PointerMove(p geometry.Point, mods Modifiers) geometry.Cursor {
	if !m.doc.HasSource() {
		m.cursor = geometry.CursorDefault
		return m.cursor
	}
	m.cursor = m.hover(p)

	bounds := m.doc.CanvasBounds()
	switch m.state {
	case StateResizing:
		q := geometry.Point{X: clamp(p.X, bounds.X, bounds.Right()), Y: clamp(p.Y, bounds.Y, bounds.Bottom())}
		r := geometry.Normalize(Resize(m.origin, m.anchor, q, mods.Shift, m.aspect))
		if mods.Shift {
			r = FitLocked(r, FixedPoint(m.origin, m.anchor), bounds)
		}
		m.apply(geometry.ClampResize(r, bounds))
	case StateMoving:
		if t, ok := m.target(); ok {
			r := t.Rect
			r.X, r.Y = p.X-m.grab.X, p.Y-m.grab.Y
			m.apply(geometry.ClampMove(r, bounds))
		}
	case StateDrawing:
		m.apply(geometry.Rect{X: m.start.X, Y: m.start.Y, W: p.X - m.start.X, H: p.Y - m.start.Y})
	}
	return m.cursor
}

func (m *Machine) hover(p geometry.Point) geometry.Cursor {
	if t, ok := m.target(); ok {
		if a, hit := geometry.HitAnchor(t.Rect, p, geometry.AnchorSize); hit {
			return a.Cursor()
		}
	}
	switch m.doc.Mode() {
	case sprite.ModeCustom:
		if _, ok := m.BoxAt(p); ok {
			return geometry.CursorMove
		}
	case sprite.ModeGrid:
		if a := m.doc.Grid().Area; a != nil && geometry.Contains(a.Rect, p) {
			return geometry.CursorMove
		}
	}
	return geometry.CursorDefault
}

// PointerUp settles the active gesture. Drawn or resized boxes are
// normalized and clipped to the canvas; anything under the minimum size is
// discarded.
func (m *Machine) PointerUp() {
	if m.state == StateDrawing || m.state == StateResizing {
		m.settle()
	}
	m.anchor = geometry.AnchorNone
	m.transition(StateIdle)
}

func (m *Machine) settle() {
	var r geometry.Rect
	if m.doc.Mode() == sprite.ModeGrid {
		a := m.doc.Grid().Area
		if a == nil {
			return
		}
		r = geometry.ClampResize(geometry.Normalize(a.Rect), m.doc.CanvasBounds())
		if !r.Settled() {
			m.doc.ClearGrid()
			return
		}
		m.doc.UpdateGridArea(r)
		return
	}
	b, ok := m.doc.Box(m.targetID)
	if !ok {
		return
	}
	r = geometry.ClampResize(geometry.Normalize(b.Rect), m.doc.CanvasBounds())
	if !r.Settled() {
		m.doc.DeleteBox(b.ID)
		m.doc.ClearSelection()
		if m.logger != nil {
			m.logger.Debug("discarded undersized box", "id", b.ID, "w", r.W, "h", r.H)
		}
		return
	}
	m.doc.UpdateBox(b.ID, r)
}

// PointerLeave commits an active gesture as if the pointer were released.
func (m *Machine) PointerLeave() {
	if m.state != StateIdle {
		m.PointerUp()
	}
}

// KeyDown handles delete and nudge keys. It reports whether the key was
// consumed.
func (m *Machine) KeyDown(k Key, mods Modifiers) bool {
	if !m.doc.HasSource() {
		return false
	}
	switch k {
	case KeyDelete, KeyBackspace:
		return m.deleteTarget()
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		t, ok := m.target()
		if !ok {
			return false
		}
		step := NudgeStep
		if mods.Shift {
			step = NudgeShiftStep
		}
		r := t.Rect
		switch k {
		case KeyUp:
			r.Y -= step
		case KeyDown:
			r.Y += step
		case KeyLeft:
			r.X -= step
		case KeyRight:
			r.X += step
		}
		m.targetID = t.ID
		m.apply(geometry.ClampMove(r, m.doc.CanvasBounds()))
		return true
	}
	return false
}

func (m *Machine) deleteTarget() bool {
	switch m.doc.Mode() {
	case sprite.ModeGrid:
		if m.doc.Grid().Area == nil {
			return false
		}
		m.doc.ClearGrid()
		return true
	default:
		id, ok := m.doc.Selected()
		if !ok {
			return false
		}
		m.doc.DeleteBox(id)
		m.doc.ClearSelection()
		return true
	}
}

// DeleteAt removes the topmost custom box under p. Grid mode ignores it.
func (m *Machine) DeleteAt(p geometry.Point) bool {
	if !m.doc.HasSource() || m.doc.Mode() != sprite.ModeCustom {
		return false
	}
	b, ok := m.BoxAt(p)
	if !ok {
		return false
	}
	m.doc.DeleteBox(b.ID)
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
