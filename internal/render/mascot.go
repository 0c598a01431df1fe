// mascot.go loads, resizes, and composites the mascot bitmap.

package render

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/mykebates/horsestrap/internal/layout"
)

// OpenMascot decodes the mascot image from disk.
func OpenMascot(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mascot: %w", err)
	}
	return img, nil
}

// drawMascot resizes the mascot to its configured square with Lanczos
// resampling and composites it at the configured offset. A mascot that
// carries transparency is blended through its own alpha channel; an opaque
// one is pasted directly.
func drawMascot(canvas *image.NRGBA, mascot image.Image, m layout.MascotConfig) *image.NRGBA {
	resized := imaging.Resize(mascot, m.Size, m.Size, imaging.Lanczos)
	at := image.Pt(m.X, m.Y)
	if hasTransparency(mascot) {
		return imaging.Overlay(canvas, resized, at, 1.0)
	}
	return imaging.Paste(canvas, resized, at)
}

// hasTransparency reports whether the decoded source contains any
// non-opaque pixel. Opaque images paste identically either way; the check
// just avoids a needless per-pixel blend.
func hasTransparency(img image.Image) bool {
	type opaquer interface{ Opaque() bool }
	if o, ok := img.(opaquer); ok {
		return !o.Opaque()
	}
	return true
}
