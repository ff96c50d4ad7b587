package view

import (
	"image"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
	"github.com/soocke/sprite-slicer-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CanvasView abstracts the editing surface and the selection preview.
// It owns two LabelWidgets and replaces their photos on every update.
type CanvasView interface {
	ShowCanvas(img image.Image)
	ShowPreview(img image.Image)
	SetCursor(c geometry.Cursor)
	Surface() *LabelWidget
}

type canvasView struct {
	canvasLabel  *LabelWidget
	previewLabel *LabelWidget
	canvasPhoto  *Img
	previewPhoto *Img
}

// NewCanvasView creates the canvas and preview labels and grids them.
// Layout: canvas spans columns 0-3 of row; preview sits at column 4.
func NewCanvasView(row int) CanvasView {
	placeholder := images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 480, 320)))
	canvasPhoto := NewPhoto(Data(placeholder))
	previewPhoto := NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 200, 200)))))
	canvas := Label(Image(canvasPhoto), Borderwidth(1), Relief("sunken"), Anchor("nw"))
	preview := Label(Image(previewPhoto), Borderwidth(1), Relief("groove"))
	Grid(canvas, Row(row), Column(0), Columnspan(4), Rowspan(2), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	Grid(preview, Row(row), Column(4), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	return &canvasView{canvasLabel: canvas, previewLabel: preview, canvasPhoto: canvasPhoto, previewPhoto: previewPhoto}
}

func (v *canvasView) Surface() *LabelWidget { return v.canvasLabel }

func (v *canvasView) ShowCanvas(img image.Image) {
	if v.canvasLabel == nil || img == nil {
		return
	}
	if v.canvasPhoto != nil {
		v.canvasPhoto.Delete() // old photo would otherwise stay in the Tk image table
	}
	v.canvasPhoto = NewPhoto(Data(images.EncodePNG(img)))
	v.canvasLabel.Configure(Image(v.canvasPhoto))
}

func (v *canvasView) ShowPreview(img image.Image) {
	if v.previewLabel == nil || img == nil {
		return
	}
	if v.previewPhoto != nil {
		v.previewPhoto.Delete()
	}
	v.previewPhoto = NewPhoto(Data(images.EncodePNG(img)))
	v.previewLabel.Configure(Image(v.previewPhoto))
}

// Tk cursor names per hint.
var cursorNames = map[geometry.Cursor]string{
	geometry.CursorDefault:    "arrow",
	geometry.CursorMove:       "fleur",
	geometry.CursorResizeNWSE: "size_nw_se",
	geometry.CursorResizeNESW: "size_ne_sw",
	geometry.CursorResizeEW:   "sb_h_double_arrow",
	geometry.CursorResizeNS:   "sb_v_double_arrow",
}

func (v *canvasView) SetCursor(c geometry.Cursor) {
	if v.canvasLabel == nil {
		return
	}
	name, ok := cursorNames[c]
	if !ok {
		name = "arrow"
	}
	v.canvasLabel.Configure(Cursor(name))
}
