package soft

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// Pixmap is a rectangular RGBA pixel buffer.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Image returns the underlying image. The pixmap keeps ownership;
// drawing on the pixmap mutates the returned image.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.Color) {
	draw.Draw(p.img, p.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// At returns the color of a single pixel.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Snapshot returns a copy of the current pixel contents.
func (p *Pixmap) Snapshot() *image.RGBA {
	out := image.NewRGBA(p.img.Rect)
	copy(out.Pix, p.img.Pix)
	return out
}

// EncodePNG writes the pixmap as PNG to the given writer.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, p.img); err != nil {
		return err
	}
	return f.Close()
}
