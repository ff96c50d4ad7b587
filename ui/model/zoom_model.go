package model

import (
	"github.com/soocke/sprite-slicer-go/config"
	"github.com/soocke/sprite-slicer-go/domain/geometry"
)

// ZoomModel holds the display zoom in percent. The zero value means 100%.
// No synchronization needed: it is only touched on the UI thread.
type ZoomModel struct {
	percent int
}

func NewZoomModel(percent int) *ZoomModel {
	m := &ZoomModel{}
	m.Set(percent)
	return m
}

// Set stores the zoom, clamped to the supported range.
func (m *ZoomModel) Set(percent int) {
	if m == nil {
		return
	}
	if percent < config.MinZoom {
		percent = config.MinZoom
	}
	if percent > config.MaxZoom {
		percent = config.MaxZoom
	}
	m.percent = percent
}

// Percent returns the zoom in percent.
func (m *ZoomModel) Percent() int {
	if m == nil || m.percent == 0 {
		return 100
	}
	return m.percent
}

// Factor returns the zoom as a scale factor.
func (m *ZoomModel) Factor() float64 { return float64(m.Percent()) / 100 }

// ToCanvas maps a widget pixel position to canvas coordinates.
func (m *ZoomModel) ToCanvas(x, y int) geometry.Point {
	f := m.Factor()
	return geometry.Point{X: float64(x) / f, Y: float64(y) / f}
}

// Scaled returns a canvas length in widget pixels.
func (m *ZoomModel) Scaled(n int) int {
	return int(float64(n)*m.Factor() + 0.5)
}
