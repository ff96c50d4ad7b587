// Package capture grabs the screen as a source image for slicing.
package capture

import (
	"image"

	"github.com/pkg/errors"
	"github.com/vova616/screenshot"
)

// Grab returns a screen capture of the primary monitor.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, errors.Wrap(err, "capture screen")
	}
	return img, nil
}
