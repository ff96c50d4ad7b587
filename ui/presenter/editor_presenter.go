package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
	"github.com/soocke/sprite-slicer-go/domain/interaction"
	"github.com/soocke/sprite-slicer-go/domain/render"
	"github.com/soocke/sprite-slicer-go/domain/sprite"
	"github.com/soocke/sprite-slicer-go/ui/images"
	"github.com/soocke/sprite-slicer-go/ui/model"
)

// Preview surface size in pixels.
const (
	PreviewW = 200
	PreviewH = 200
)

// Placeholder canvas size shown before an image is loaded.
const (
	placeholderW = 480
	placeholderH = 320
)

// EditorView is the canvas surface updated by the presenter.
type EditorView interface {
	ShowCanvas(img image.Image)
	ShowPreview(img image.Image)
	SetCursor(c geometry.Cursor)
}

// EditorPresenter routes canvas input to the interaction machine and
// redraws the canvas and preview whenever the document changes.
type EditorPresenter struct {
	doc     *sprite.Document
	machine *interaction.Machine
	zoom    *model.ZoomModel
	frames  *images.FrameCache
	view    EditorView
	logger  *slog.Logger

	dirty  bool
	cursor geometry.Cursor
}

// NewEditorPresenter wires the presenter as a document listener.
func NewEditorPresenter(doc *sprite.Document, machine *interaction.Machine, zoom *model.ZoomModel, frames *images.FrameCache, view EditorView, logger *slog.Logger) *EditorPresenter {
	p := &EditorPresenter{doc: doc, machine: machine, zoom: zoom, frames: frames, view: view, logger: logger, dirty: true}
	if doc != nil {
		doc.AddListener(p.Invalidate)
	}
	return p
}

func (p *EditorPresenter) ready() bool {
	return p != nil && p.doc != nil && p.machine != nil && p.view != nil
}

// Invalidate marks the canvas for redraw on the next Flush.
func (p *EditorPresenter) Invalidate() {
	if p != nil {
		p.dirty = true
	}
}

func mods(shift bool) interaction.Modifiers { return interaction.Modifiers{Shift: shift} }

// PointerDown handles a primary button press at widget pixel (x, y).
func (p *EditorPresenter) PointerDown(x, y int, shift bool) {
	if !p.ready() {
		return
	}
	p.machine.PointerDown(p.zoom.ToCanvas(x, y), mods(shift))
	p.Flush()
}

// PointerMove handles motion with or without a button held.
func (p *EditorPresenter) PointerMove(x, y int, shift bool) {
	if !p.ready() {
		return
	}
	c := p.machine.PointerMove(p.zoom.ToCanvas(x, y), mods(shift))
	if c != p.cursor {
		p.cursor = c
		p.view.SetCursor(c)
	}
	p.Flush()
}

// PointerUp handles a primary button release.
func (p *EditorPresenter) PointerUp() {
	if !p.ready() {
		return
	}
	p.machine.PointerUp()
	p.Flush()
}

// PointerLeave handles the pointer leaving the canvas.
func (p *EditorPresenter) PointerLeave() {
	if !p.ready() {
		return
	}
	p.machine.PointerLeave()
	if p.cursor != geometry.CursorDefault {
		p.cursor = geometry.CursorDefault
		p.view.SetCursor(p.cursor)
	}
	p.Flush()
}

// ContextClick deletes the box under (x, y).
func (p *EditorPresenter) ContextClick(x, y int) {
	if !p.ready() {
		return
	}
	p.machine.DeleteAt(p.zoom.ToCanvas(x, y))
	p.Flush()
}

// Key forwards an editor key and reports whether it was consumed.
func (p *EditorPresenter) Key(k interaction.Key, shift bool) bool {
	if !p.ready() {
		return false
	}
	ok := p.machine.KeyDown(k, mods(shift))
	p.Flush()
	return ok
}

// SetZoom changes the display zoom and redraws.
func (p *EditorPresenter) SetZoom(percent int) {
	if !p.ready() {
		return
	}
	p.zoom.Set(percent)
	p.Invalidate()
	p.Flush()
}

// Flush redraws if anything changed since the last draw.
func (p *EditorPresenter) Flush() {
	if !p.ready() || !p.dirty {
		return
	}
	p.dirty = false
	p.redraw()
}

func (p *EditorPresenter) redraw() {
	s := p.doc.Snapshot()
	if s.Bitmap == nil {
		p.view.ShowCanvas(image.NewRGBA(image.Rect(0, 0, placeholderW, placeholderH)))
		p.view.ShowPreview(image.NewRGBA(image.Rect(0, 0, PreviewW, PreviewH)))
		return
	}
	cmds := render.Scene(s)
	p.view.ShowCanvas(p.compose(s, cmds))
	p.view.ShowPreview(render.Preview(s, PreviewW, PreviewH))
}

// compose paints the overlay over a cached zoomed base frame holding the
// bitmap on its padded canvas.
func (p *EditorPresenter) compose(s sprite.Snapshot, cmds []render.Command) *image.RGBA {
	zoom := p.zoom.Percent()
	key := images.FrameKey{Source: s.Bitmap, Padding: s.Padding, Zoom: zoom}
	base := p.frames.Get(key, func() *image.RGBA {
		w, h := s.CanvasSize()
		var bitmapCmds []render.Command
		for _, c := range cmds {
			if _, ok := c.(render.DrawBitmap); ok {
				bitmapCmds = append(bitmapCmds, c)
			}
		}
		return images.ToRGBA(images.Zoom(render.Rasterize(bitmapCmds, w, h, s.Bitmap), zoom))
	})
	frame := images.Clone(base)
	render.Paint(frame, render.Overlay(cmds), p.zoom.Factor(), nil)
	return frame
}
