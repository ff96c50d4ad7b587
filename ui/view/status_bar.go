package view

import (
	"github.com/soocke/sprite-slicer-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the last status message and the current mode.
type StatusBar interface {
	SetStatus(text string)
	SetMode(text string)
}

type statusBar struct {
	statusLbl *TLabelWidget
	modeLbl   *TLabelWidget
}

// NewStatusBar creates the status and mode labels on row, spanning the
// window width.
func NewStatusBar(row int) StatusBar {
	s := &statusBar{
		statusLbl: TLabel(Style(theme.StyleStatusLabel), Anchor("w")),
		modeLbl:   TLabel(Style(theme.StyleModeLabel), Width(14), Anchor("e")),
	}
	Grid(s.statusLbl, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	Grid(s.modeLbl, Row(row), Column(4), Sticky("e"), Padx("0.4m"), Pady("0.2m"))
	s.statusLbl.Configure(Txt("Open an image to start slicing"))
	s.modeLbl.Configure(Txt("Mode: custom"))
	return s
}

func (s *statusBar) SetStatus(text string) {
	if s == nil || s.statusLbl == nil {
		return
	}
	s.statusLbl.Configure(Txt(text))
}

func (s *statusBar) SetMode(text string) {
	if s == nil || s.modeLbl == nil {
		return
	}
	s.modeLbl.Configure(Txt("Mode: " + text))
}
