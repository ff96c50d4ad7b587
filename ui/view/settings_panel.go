package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soocke/sprite-slicer-go/config"
	"github.com/soocke/sprite-slicer-go/domain/sprite"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel encapsulates the settings form widgets. It never writes the
// config itself; edits are parsed into a copy and handed to onApply.
type SettingsPanel interface {
	Build(startRow, column int) (endRow int) // constructs widgets starting at startRow, returns next free row
	Refresh(cfg *config.Config)
	Parse() config.Config
}

type settingsPanel struct {
	cfg      *config.Config
	onApply  func(config.Config)
	applyBtn *ButtonWidget
	namePrev *LabelWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewSettingsPanel creates the view bound to cfg.
func NewSettingsPanel(cfg *config.Config, onApply func(config.Config)) SettingsPanel {
	return &settingsPanel{cfg: cfg, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) Build(startRow, column int) (row int) {
	row = startRow
	frame := Frame(Borderwidth(1), Relief("groove"))
	Grid(frame, Row(row), Column(column), Sticky("nwe"), Padx("0.4m"), Pady("0.4m"))
	r := 0
	makeRow := func(id, label string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(frame), Row(r), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(12))
		Grid(w, In(frame), Row(r), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		v.widgets[id] = w
		r++
	}
	makeRow("prefix", "File prefix")
	makeRow("connector", "Connector")
	makeRow("canvasPadding", "Canvas padding")
	makeRow("zoom", fmt.Sprintf("Zoom %% (%d-%d)", config.MinZoom, config.MaxZoom))
	makeRow("gridRows", fmt.Sprintf("Grid rows (1-%d)", config.MaxGridSize))
	makeRow("gridCols", fmt.Sprintf("Grid columns (1-%d)", config.MaxGridSize))
	makeRow("detectPadding", "Detect padding")
	makeRow("detectMode", "Detect mode (padding/fixed)")
	makeRow("fixedWidth", "Fixed width")
	makeRow("fixedHeight", "Fixed height")
	makeRow("dark", "Dark theme (true/false)")

	v.namePrev = Label(Anchor("w"))
	Grid(v.namePrev, In(frame), Row(r), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	r++
	for _, id := range []string{"prefix", "connector"} {
		Bind(v.widgets[id], "<KeyRelease>", Command(func() { v.updateNamePreview() }))
	}

	v.applyBtn = Button(Txt("Apply Settings"), Command(func() {
		if v.onApply != nil {
			v.onApply(v.Parse())
		}
	}))
	Grid(v.applyBtn, In(frame), Row(r), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	v.Refresh(v.cfg)
	row++
	return row
}

// Refresh writes cfg back into the form.
func (v *settingsPanel) Refresh(cfg *config.Config) {
	if cfg == nil {
		return
	}
	v.cfg = cfg
	set := func(id, value string) {
		if w := v.widgets[id]; w != nil {
			w.Delete("1.0", END)
			w.Insert("1.0", value)
		}
	}
	set("prefix", cfg.Prefix)
	set("connector", cfg.Connector)
	set("canvasPadding", strconv.Itoa(cfg.CanvasPadding))
	set("zoom", strconv.Itoa(cfg.Zoom))
	set("gridRows", strconv.Itoa(cfg.GridRows))
	set("gridCols", strconv.Itoa(cfg.GridCols))
	set("detectPadding", strconv.Itoa(cfg.AutoDetectPadding))
	set("detectMode", cfg.AutoDetectMode)
	set("fixedWidth", strconv.Itoa(cfg.FixedWidth))
	set("fixedHeight", strconv.Itoa(cfg.FixedHeight))
	set("dark", strconv.FormatBool(cfg.Dark))
	v.updateNamePreview()
}

func (v *settingsPanel) text(id string) string {
	w := v.widgets[id]
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}

func (v *settingsPanel) updateNamePreview() {
	if v.namePrev == nil {
		return
	}
	prefix := v.text("prefix")
	if prefix == "" {
		prefix = config.DefaultConfig().Prefix
	}
	v.namePrev.Configure(Txt("Files: " + sprite.FileName(prefix, v.rawText("connector"), 1)))
}

// rawText keeps surrounding spaces; a connector may legitimately be " ".
func (v *settingsPanel) rawText(id string) string {
	w := v.widgets[id]
	if w == nil {
		return ""
	}
	return strings.TrimRight(strings.Join(w.Get("1.0", END), ""), "\n")
}

// Parse reads the form into a copy of the bound config. Unparseable fields
// keep their current value.
func (v *settingsPanel) Parse() config.Config {
	var cfg config.Config
	if v.cfg != nil {
		cfg = *v.cfg
	} else {
		cfg = *config.DefaultConfig()
	}
	assignInt := func(id string, dst *int) {
		if i, ok := parseIntField(v.text(id)); ok {
			*dst = i
		}
	}
	assignBool := func(id string, dst *bool) {
		if b, ok := parseBoolLoose(v.text(id)); ok {
			*dst = b
		}
	}
	if s := v.text("prefix"); s != "" {
		cfg.Prefix = s
	}
	cfg.Connector = v.rawText("connector")
	assignInt("canvasPadding", &cfg.CanvasPadding)
	assignInt("zoom", &cfg.Zoom)
	assignInt("gridRows", &cfg.GridRows)
	assignInt("gridCols", &cfg.GridCols)
	assignInt("detectPadding", &cfg.AutoDetectPadding)
	assignInt("fixedWidth", &cfg.FixedWidth)
	assignInt("fixedHeight", &cfg.FixedHeight)
	assignBool("dark", &cfg.Dark)
	if m := strings.ToLower(v.text("detectMode")); m != "" {
		cfg.AutoDetectMode = m
	}
	return cfg
}

// parsing helpers (unexported)
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
