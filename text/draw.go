package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders a string to a destination image. Position (x, y) is the
// baseline-left origin.
func Draw(dst draw.Image, s string, f *Face, x, y float64, col color.Color) {
	if s == "" || f == nil {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

// Measure returns the dimensions of a string: the horizontal advance as
// produced by the active shaper, and the face's line height.
func Measure(s string, f *Face) (width, height float64) {
	if s == "" || f == nil {
		return 0, 0
	}
	for _, g := range getShaper().Shape(s, f) {
		width += g.XAdvance
	}
	return width, f.Metrics().LineHeight
}
