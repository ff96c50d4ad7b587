package sprite

import "github.com/pkg/errors"

// Error taxonomy. Callers match with errors.Is; context is attached with
// errors.Wrap at the failure site.
var (
	ErrDecode      = errors.New("image could not be decoded")
	ErrNoSource    = errors.New("no source image loaded")
	ErrNoSelection = errors.New("no selection boxes to export")
	ErrNoGrid      = errors.New("no grid area defined")
	ErrEmptyExport = errors.New("nothing to export")
	ErrInvalidGrid = errors.New("grid rows and columns must be at least 1")
	ErrExportBusy  = errors.New("an export is already running")
)
