// text.go draws layout text entries with x/image font.Drawer.

package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/mykebates/horsestrap/internal/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// drawText renders one entry onto dst with the face resolved for its role.
func drawText(dst draw.Image, e layout.TextEntry, face font.Face) error {
	c, err := layout.ParseHexColor(e.Color)
	if err != nil {
		return err
	}
	if face == nil {
		return fmt.Errorf("no face for role %q", e.Role)
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	d.Dot = textDot(d, e)
	d.DrawString(e.Text)
	return nil
}

// textDot computes the baseline origin for an entry. Entry Y is the top edge
// of the ascender, so the baseline sits one ascent below it. For right
// alignment the string is measured and the origin shifted so the advance
// ends exactly at the anchor X.
func textDot(d *font.Drawer, e layout.TextEntry) fixed.Point26_6 {
	x := fixed.I(e.X)
	if e.Align == layout.AlignRight {
		x -= d.MeasureString(e.Text)
	}
	y := fixed.I(e.Y) + d.Face.Metrics().Ascent
	return fixed.Point26_6{X: x, Y: y}
}
