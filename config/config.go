package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
)

// Auto-detect mode names as stored on disk.
const (
	DetectPadding   = "padding"
	DetectFixedSize = "fixed"
)

// Zoom limits in percent.
const (
	MinZoom = 25
	MaxZoom = 800
)

// MaxGridSize bounds grid rows and columns.
const MaxGridSize = 256

// Config holds user preferences for the slicer.
// Fields are loaded from a JSON file and edited from the settings panel.
type Config struct {
	Debug bool `json:"debug"`

	// Canvas
	CanvasPadding int  `json:"canvas_padding"`
	Zoom          int  `json:"zoom"`
	Dark          bool `json:"dark"`

	// Auto-detect
	AutoDetectPadding int    `json:"auto_detect_padding"`
	AutoDetectMode    string `json:"auto_detect_mode"`
	FixedWidth        int    `json:"fixed_width"`
	FixedHeight       int    `json:"fixed_height"`

	// Grid
	GridRows int `json:"grid_rows"`
	GridCols int `json:"grid_cols"`

	// Export
	Prefix    string `json:"prefix"`
	Connector string `json:"connector"`
	OutputDir string `json:"output_dir"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		CanvasPadding:     20,
		Zoom:              100,
		Dark:              false,
		AutoDetectPadding: 0,
		AutoDetectMode:    DetectPadding,
		FixedWidth:        0,
		FixedHeight:       0,
		GridRows:          2,
		GridCols:          2,
		Prefix:            "sprite",
		Connector:         "_",
		OutputDir:         "",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() {
	if c.CanvasPadding < 0 {
		c.CanvasPadding = 0
	}
	if c.Zoom <= 0 {
		c.Zoom = 100
	}
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
	if c.AutoDetectPadding < 0 {
		c.AutoDetectPadding = 0
	}
	if c.AutoDetectMode != DetectPadding && c.AutoDetectMode != DetectFixedSize {
		c.AutoDetectMode = DetectPadding
	}
	if c.FixedWidth < 0 {
		c.FixedWidth = 0
	}
	if c.FixedHeight < 0 {
		c.FixedHeight = 0
	}
	if c.GridRows < 1 {
		c.GridRows = 2
	}
	if c.GridCols < 1 {
		c.GridCols = 2
	}
	c.GridRows = min(c.GridRows, MaxGridSize)
	c.GridCols = min(c.GridCols, MaxGridSize)
	c.Prefix = strings.TrimSpace(c.Prefix)
	if c.Prefix == "" {
		c.Prefix = "sprite"
	}
	// names end up inside a zip archive; keep them flat
	c.Prefix = strings.NewReplacer("/", "_", "\\", "_").Replace(c.Prefix)
	c.Connector = strings.NewReplacer("/", "_", "\\", "_").Replace(c.Connector)
}

// DefaultPath returns the per-user config file location, creating its
// directory if needed.
func DefaultPath() (string, error) {
	p, err := xdg.ConfigFile(filepath.Join("sprite-slicer", "config.json"))
	if err != nil {
		return "", errors.Wrap(err, "resolve config path")
	}
	return p, nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "decode %s", path)
	}
	cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
