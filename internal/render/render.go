// Package render turns a [layout.Layout] into the final OG image: gradient
// background, optional mascot bitmap, and the text entries, encoded as PNG.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/mykebates/horsestrap/internal/fonts"
	"github.com/mykebates/horsestrap/internal/layout"
)

// Compose renders the full image described by l. mascot may be nil, in which
// case the mascot step is skipped and the background and text still render
// at full canvas size.
func Compose(l *layout.Layout, mascot image.Image, faces *fonts.FaceSet) (*image.NRGBA, error) {
	base, err := layout.ParseHexColor(l.Canvas.Background)
	if err != nil {
		return nil, fmt.Errorf("canvas background: %w", err)
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, l.Canvas.Width, l.Canvas.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(base), image.Point{}, draw.Src)

	fillGradient(canvas, l.Gradient)

	if mascot != nil {
		canvas = drawMascot(canvas, mascot, l.Mascot)
	}

	for i, entry := range l.Text {
		if err := drawText(canvas, entry, faces.FaceFor(entry.Role)); err != nil {
			return nil, fmt.Errorf("text[%d] %q: %w", i, entry.Text, err)
		}
	}

	return canvas, nil
}

// EncodePNG encodes the canvas as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
