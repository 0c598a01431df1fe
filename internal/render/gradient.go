// gradient.go paints the vertical background gradient, one uniform
// full-width scanline at a time.

package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/mykebates/horsestrap/internal/layout"
)

// fillGradient paints every scanline of dst with its interpolated color.
func fillGradient(dst *image.NRGBA, g layout.GradientConfig) {
	bounds := dst.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	for y := 0; y < height; y++ {
		c := scanlineColor(g, y, height)
		row := image.Rect(0, y, width, y+1)
		draw.Draw(dst, row, image.NewUniform(c), image.Point{}, draw.Src)
	}
}

// scanlineColor interpolates the red channel from g.Top to g.Bottom across
// the canvas height and derives green and blue by fixed offsets. The offset
// arithmetic can leave the representable range for extreme parameter values,
// so every channel is clamped rather than allowed to wrap.
func scanlineColor(g layout.GradientConfig, y, height int) color.NRGBA {
	t := float64(y) / float64(height)
	v := int(float64(g.Top) + float64(g.Bottom-g.Top)*t)
	return color.NRGBA{
		R: clamp8(v),
		G: clamp8(v + g.GreenOffset),
		B: clamp8(v + g.BlueOffset),
		A: 255,
	}
}

// clamp8 clamps v to the 0-255 channel range.
func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
