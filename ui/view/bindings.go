package view

import (
	"github.com/soocke/sprite-slicer-go/domain/interaction"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CanvasInput receives pointer and key events from the canvas surface.
// Coordinates are label pixels; scaling to canvas space is up to the
// receiver.
type CanvasInput interface {
	PointerDown(x, y int, shift bool)
	PointerMove(x, y int, shift bool)
	PointerUp()
	PointerLeave()
	ContextClick(x, y int)
	Key(k interaction.Key, shift bool) bool
}

var keysyms = map[string]interaction.Key{
	"Delete":    interaction.KeyDelete,
	"BackSpace": interaction.KeyBackspace,
	"Up":        interaction.KeyUp,
	"Down":      interaction.KeyDown,
	"Left":      interaction.KeyLeft,
	"Right":     interaction.KeyRight,
}

// bindCanvas routes Tk events on surface to in. Keys are bound on the
// surface itself so typing into the settings form never edits boxes; a
// click gives the surface keyboard focus.
func bindCanvas(surface *LabelWidget, in CanvasInput) {
	if surface == nil || in == nil {
		return
	}
	var shift bool
	for _, sym := range []string{"Shift_L", "Shift_R"} {
		Bind(surface, "<KeyPress-"+sym+">", Command(func() { shift = true }))
		Bind(surface, "<KeyRelease-"+sym+">", Command(func() { shift = false }))
	}
	Bind(surface, "<ButtonPress-1>", Command(func(e *Event) {
		Focus(surface)
		in.PointerDown(e.X, e.Y, shift)
	}))
	Bind(surface, "<Motion>", Command(func(e *Event) { in.PointerMove(e.X, e.Y, shift) }))
	Bind(surface, "<B1-Motion>", Command(func(e *Event) { in.PointerMove(e.X, e.Y, shift) }))
	Bind(surface, "<ButtonRelease-1>", Command(func() { in.PointerUp() }))
	Bind(surface, "<Leave>", Command(func() { in.PointerLeave() }))
	Bind(surface, "<ButtonPress-3>", Command(func(e *Event) { in.ContextClick(e.X, e.Y) }))
	Bind(surface, "<KeyPress>", Command(func(e *Event) {
		if k, ok := keysyms[e.Keysym]; ok {
			in.Key(k, shift)
		}
	}))
}
