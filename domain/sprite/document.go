package sprite

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/soocke/sprite-slicer-go/domain/detect"
	"github.com/soocke/sprite-slicer-go/domain/geometry"
)

// DetectMode selects how auto-detection sizes its boxes.
type DetectMode int

const (
	// DetectPadding sizes each box to its component plus a padding margin.
	DetectPadding DetectMode = iota
	// DetectFixedSize gives every box the same size.
	DetectFixedSize
)

func (m DetectMode) String() string {
	if m == DetectFixedSize {
		return "fixed"
	}
	return "padding"
}

// Document is the selection state store: the source bitmap, the box list,
// the grid and the active mode. It is owned by the UI thread and is not safe
// for concurrent use; background work operates on a Snapshot.
//
// Box coordinates live in canvas space, where the bitmap's top-left corner
// sits at (Padding, Padding). Changing the padding never rewrites boxes.
type Document struct {
	logger *slog.Logger

	bitmap   *Bitmap
	boxes    []geometry.Box
	grid     Grid
	mode     Mode
	selected int
	nextID   int
	padding  int

	detectMode DetectMode
	fixedSize  *geometry.Size
	lastFixed  *geometry.Size

	listeners []func()
}

// NewDocument returns an empty custom-mode document.
func NewDocument(logger *slog.Logger, padding int) *Document {
	if padding < 0 {
		padding = 0
	}
	return &Document{
		logger:  logger,
		padding: padding,
		grid:    Grid{Rows: DefaultGridSize, Cols: DefaultGridSize},
	}
}

// AddListener registers fn to run after every mutation.
func (d *Document) AddListener(fn func()) {
	if fn != nil {
		d.listeners = append(d.listeners, fn)
	}
}

func (d *Document) changed() {
	for _, l := range d.listeners {
		l()
	}
}

// LoadImage decodes data and replaces the source bitmap. On decode failure
// the document is left untouched.
func (d *Document) LoadImage(data []byte) (*Bitmap, error) {
	bmp, err := DecodeBitmap(data)
	if err != nil {
		return nil, errors.Wrap(err, "load image")
	}
	d.SetBitmap(bmp)
	return bmp, nil
}

// SetBitmap replaces the source and clears boxes, grid area and selection.
func (d *Document) SetBitmap(b *Bitmap) {
	d.bitmap = b
	d.boxes = nil
	d.grid.Area = nil
	d.selected = 0
	if d.logger != nil {
		d.logger.Info("source replaced", "width", b.Width(), "height", b.Height())
	}
	d.changed()
}

// Bitmap returns the current source, or nil.
func (d *Document) Bitmap() *Bitmap { return d.bitmap }

// HasSource reports whether a bitmap is loaded.
func (d *Document) HasSource() bool { return d.bitmap != nil }

func (d *Document) newID() int {
	d.nextID++
	return d.nextID
}

// AddBox appends a box with a fresh id and returns it.
func (d *Document) AddBox(r geometry.Rect) geometry.Box {
	b := geometry.Box{ID: d.newID(), Rect: r}
	d.boxes = append(d.boxes, b)
	d.changed()
	return b
}

// Box looks up a box by id.
func (d *Document) Box(id int) (geometry.Box, bool) {
	if i := d.indexOf(id); i >= 0 {
		return d.boxes[i], true
	}
	return geometry.Box{}, false
}

// Boxes returns a copy of the box list in z-order (last is topmost).
func (d *Document) Boxes() []geometry.Box {
	return append([]geometry.Box(nil), d.boxes...)
}

// UpdateBox replaces the rectangle of an existing box.
func (d *Document) UpdateBox(id int, r geometry.Rect) bool {
	i := d.indexOf(id)
	if i < 0 {
		return false
	}
	d.boxes[i].Rect = r
	d.changed()
	return true
}

// DeleteBox removes the box if present. Removing the selected box clears the
// selection. Unknown ids are ignored.
func (d *Document) DeleteBox(id int) {
	i := d.indexOf(id)
	if i < 0 {
		return
	}
	d.boxes = append(d.boxes[:i], d.boxes[i+1:]...)
	if d.selected == id {
		d.selected = 0
	}
	d.changed()
}

// ClearBoxes empties the box list.
func (d *Document) ClearBoxes() {
	d.boxes = nil
	d.selected = 0
	d.changed()
}

// ReplaceBoxes swaps the whole list for rects, assigning ids in order.
func (d *Document) ReplaceBoxes(rects []geometry.Rect) []geometry.Box {
	boxes := make([]geometry.Box, 0, len(rects))
	for _, r := range rects {
		boxes = append(boxes, geometry.Box{ID: d.newID(), Rect: r})
	}
	d.boxes = boxes
	d.selected = 0
	d.changed()
	return d.Boxes()
}

func (d *Document) indexOf(id int) int {
	for i, b := range d.boxes {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Grid returns a copy of the grid descriptor.
func (d *Document) Grid() Grid { return d.grid.clone() }

// SetGrid changes the partition. Both values must be at least 1.
func (d *Document) SetGrid(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return errors.Wrapf(ErrInvalidGrid, "rows=%d cols=%d", rows, cols)
	}
	d.grid.Rows, d.grid.Cols = rows, cols
	d.changed()
	return nil
}

// SetGridArea replaces the grid area with a fresh box.
func (d *Document) SetGridArea(r geometry.Rect) geometry.Box {
	b := geometry.Box{ID: d.newID(), Rect: r}
	d.grid.Area = &b
	d.changed()
	return b
}

// UpdateGridArea changes the rectangle of the existing grid area.
func (d *Document) UpdateGridArea(r geometry.Rect) bool {
	if d.grid.Area == nil {
		return false
	}
	d.grid.Area.Rect = r
	d.changed()
	return true
}

// ClearGrid removes the grid area; rows and cols are kept.
func (d *Document) ClearGrid() {
	d.grid.Area = nil
	d.changed()
}

// FitGridToImage makes the grid area cover exactly the bitmap.
func (d *Document) FitGridToImage() {
	if d.bitmap == nil {
		return
	}
	d.SetGridArea(d.ImageRect())
}

// Mode returns the active slicing mode.
func (d *Document) Mode() Mode { return d.mode }

// SetMode switches the slicing mode. Boxes, grid area and selection are
// cleared; the two representations are never merged.
func (d *Document) SetMode(m Mode) {
	if m == d.mode {
		return
	}
	d.mode = m
	d.boxes = nil
	d.grid.Area = nil
	d.selected = 0
	if d.logger != nil {
		d.logger.Debug("slicing mode changed", "mode", m.String())
	}
	d.changed()
}

// Empty reports whether there is nothing to lose on a mode switch.
func (d *Document) Empty() bool { return len(d.boxes) == 0 && d.grid.Area == nil }

// Selected returns the selected box id.
func (d *Document) Selected() (int, bool) { return d.selected, d.selected != 0 }

// Select marks a box as selected. Unknown ids clear the selection.
func (d *Document) Select(id int) {
	if d.indexOf(id) < 0 {
		id = 0
	}
	if d.selected == id {
		return
	}
	d.selected = id
	d.changed()
}

// ClearSelection deselects any box.
func (d *Document) ClearSelection() { d.Select(0) }

// Padding returns the canvas padding in pixels.
func (d *Document) Padding() int { return d.padding }

// SetPadding changes the canvas padding. Stored boxes are not moved.
func (d *Document) SetPadding(p int) {
	if p < 0 {
		p = 0
	}
	if p == d.padding {
		return
	}
	d.padding = p
	d.changed()
}

// ImageRect is the bitmap footprint in canvas space.
func (d *Document) ImageRect() geometry.Rect {
	p := float64(d.padding)
	return geometry.Rect{X: p, Y: p, W: float64(d.bitmap.Width()), H: float64(d.bitmap.Height())}
}

// CanvasBounds is the drawable surface: the bitmap plus padding on all sides.
func (d *Document) CanvasBounds() geometry.Rect {
	p := float64(2 * d.padding)
	return geometry.Rect{W: float64(d.bitmap.Width()) + p, H: float64(d.bitmap.Height()) + p}
}

// FixedSize returns the fixed selection size, or nil in free-size mode.
func (d *Document) FixedSize() *geometry.Size {
	if d.fixedSize == nil {
		return nil
	}
	s := *d.fixedSize
	return &s
}

// SetFixedSize sets or (with nil) clears the fixed selection size.
func (d *Document) SetFixedSize(s *geometry.Size) {
	if s != nil && (s.W <= 0 || s.H <= 0) {
		s = nil
	}
	if s != nil {
		cp := *s
		s = &cp
	}
	d.fixedSize = s
	d.changed()
}

// DetectMode returns the auto-detection sizing mode.
func (d *Document) DetectMode() DetectMode { return d.detectMode }

// SetDetectMode switches auto-detection sizing. Leaving fixed-size mode
// remembers the size so that returning restores it.
func (d *Document) SetDetectMode(m DetectMode) {
	if m == d.detectMode {
		return
	}
	switch m {
	case DetectPadding:
		d.lastFixed = d.fixedSize
		d.fixedSize = nil
	case DetectFixedSize:
		d.fixedSize = d.lastFixed
	}
	d.detectMode = m
	d.changed()
}

// AutoDetect replaces the box list with one box per connected opaque region.
// In fixed-size mode padding is ignored and, if no size is set yet, the first
// region's size becomes the fixed size.
func (d *Document) AutoDetect(padding int) []geometry.Box {
	if d.bitmap == nil {
		return nil
	}
	opts := detect.Options{Padding: padding, CanvasPadding: d.padding}
	if d.detectMode == DetectFixedSize {
		opts.Padding = 0
		if d.fixedSize == nil {
			if comps := detect.Scan(d.bitmap.Image()); len(comps) > 0 {
				b := comps[0].Bounds
				d.fixedSize = &geometry.Size{W: float64(b.Dx()), H: float64(b.Dy())}
			}
		}
		opts.FixedSize = d.FixedSize()
	}
	rects := detect.Components(d.bitmap.Image(), opts)
	if d.logger != nil {
		d.logger.Info("auto-detect finished", "boxes", len(rects), "mode", d.detectMode.String())
	}
	return d.ReplaceBoxes(rects)
}

// Snapshot captures the state needed by rendering and export. The bitmap is
// shared (it is immutable); boxes and grid are copied.
func (d *Document) Snapshot() Snapshot {
	return Snapshot{
		Bitmap:   d.bitmap,
		Boxes:    d.Boxes(),
		Grid:     d.grid.clone(),
		Mode:     d.mode,
		Selected: d.selected,
		Padding:  d.padding,
	}
}

// Snapshot is a read-only copy of a Document.
type Snapshot struct {
	Bitmap   *Bitmap
	Boxes    []geometry.Box
	Grid     Grid
	Mode     Mode
	Selected int
	Padding  int
}

// SelectedBox returns the selected box in custom mode.
func (s Snapshot) SelectedBox() (geometry.Box, bool) {
	if s.Mode != ModeCustom || s.Selected == 0 {
		return geometry.Box{}, false
	}
	for _, b := range s.Boxes {
		if b.ID == s.Selected {
			return b, true
		}
	}
	return geometry.Box{}, false
}

// ImageRect is the bitmap footprint in canvas space.
func (s Snapshot) ImageRect() geometry.Rect {
	p := float64(s.Padding)
	return geometry.Rect{X: p, Y: p, W: float64(s.Bitmap.Width()), H: float64(s.Bitmap.Height())}
}

// CanvasSize is the pixel size of the drawable surface.
func (s Snapshot) CanvasSize() (int, int) {
	return s.Bitmap.Width() + 2*s.Padding, s.Bitmap.Height() + 2*s.Padding
}
