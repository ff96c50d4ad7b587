package model

import (
	"time"
)

// ExportHistory tracks the exports finished in this session.
// Presenters record results and read Values() to update the status line.
// The zero value is ready to use.
type ExportHistory struct {
	count     int
	files     int
	bytes     int64
	last      time.Duration
	lastPath  string
	lastStart time.Time
}

// NewExportHistory returns a pointer to a ready-to-use ExportHistory.
func NewExportHistory() *ExportHistory { return &ExportHistory{} }

// Begin marks the start of an export.
func (m *ExportHistory) Begin(now time.Time) {
	if m == nil {
		return
	}
	m.lastStart = now
}

// Record adds a finished export.
func (m *ExportHistory) Record(path string, files int, bytes int64, now time.Time) {
	if m == nil {
		return
	}
	m.count++
	m.files += files
	m.bytes += bytes
	m.lastPath = path
	if !m.lastStart.IsZero() {
		m.last = now.Sub(m.lastStart)
		m.lastStart = time.Time{}
	}
}

// ExportTotals summarises the session.
type ExportTotals struct {
	Exports  int
	Files    int
	Bytes    int64
	Last     time.Duration
	LastPath string
}

// Values returns the session totals.
func (m *ExportHistory) Values() ExportTotals {
	if m == nil {
		return ExportTotals{}
	}
	return ExportTotals{Exports: m.count, Files: m.files, Bytes: m.bytes, Last: m.last, LastPath: m.lastPath}
}
