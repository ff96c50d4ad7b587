// Package render turns a document snapshot into draw commands and rasterizes
// them. Scene building is pure; rasterization is a plain software renderer
// whose output the view shows as an image.
package render

import (
	"image/color"

	"github.com/soocke/sprite-slicer-go/domain/geometry"
)

// Stroke widths and dash pattern in canvas pixels.
const (
	OutlineWidth = 2.0
	DashWidth    = 1.0
	DashOn       = 4.0
	DashOff      = 4.0
)

var (
	// Accent marks the selected box and all anchors.
	Accent = color.RGBA{R: 0x00, G: 0x7b, B: 0xff, A: 0xff}
	// Plain outlines unselected boxes and the grid.
	Plain = color.RGBA{R: 0xff, A: 0xff}
	// AnchorFill is the handle interior.
	AnchorFill = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Command is one draw operation. The set is closed.
type Command interface {
	command()
}

// DrawBitmap blits the source bitmap with its top-left corner at At.
type DrawBitmap struct {
	At geometry.Point
}

// StrokeRect outlines Rect.
type StrokeRect struct {
	Rect  geometry.Rect
	Color color.RGBA
	Width float64
}

// DashedLine draws an axis-aligned or diagonal dashed segment.
type DashedLine struct {
	From, To geometry.Point
	Color    color.RGBA
	Width    float64
}

// Anchor draws a square resize handle centred on At.
type Anchor struct {
	At     geometry.Point
	Size   float64
	Fill   color.RGBA
	Stroke color.RGBA
}

func (DrawBitmap) command() {}
func (StrokeRect) command() {}
func (DashedLine) command() {}
func (Anchor) command()     {}
