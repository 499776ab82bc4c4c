package soft

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/drawview"
	"github.com/gogpu/drawview/text"
)

// Renderer is a drawview.Renderer drawing into an in-memory pixmap.
// It is not safe for concurrent use.
type Renderer struct {
	pixmap *Pixmap
	raster *vector.Rasterizer
	source *text.FontSource
}

// compile-time check
var _ drawview.Renderer = (*Renderer)(nil)

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithFontSource sets the font used for text drawing and measuring.
// The default is the embedded Go Regular font.
func WithFontSource(s *text.FontSource) Option {
	return func(r *Renderer) {
		r.source = s
	}
}

// New creates a software renderer with the given pixel dimensions.
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("soft: invalid dimensions %dx%d (both must be > 0)", width, height)
	}
	r := &Renderer{
		pixmap: NewPixmap(width, height),
		raster: vector.NewRasterizer(width, height),
		source: text.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Pixmap returns the render target.
func (r *Renderer) Pixmap() *Pixmap {
	return r.pixmap
}

// Image returns the underlying image, for inspection or encoding.
func (r *Renderer) Image() *image.RGBA {
	return r.pixmap.Image()
}

// SavePNG writes the current contents to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.pixmap.SavePNG(path)
}

// Resize reallocates the pixmap for new dimensions. Contents are
// discarded; the host is expected to trigger a repaint afterwards.
// Non-positive dimensions are ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == r.pixmap.Width() && height == r.pixmap.Height() {
		return
	}
	r.pixmap = NewPixmap(width, height)
	r.raster = vector.NewRasterizer(width, height)
}

// Size implements drawview.Renderer.
func (r *Renderer) Size() (int, int) {
	return r.pixmap.Width(), r.pixmap.Height()
}

// Clear implements drawview.Renderer.
func (r *Renderer) Clear(bg drawview.RGBA) {
	r.pixmap.Clear(bg.Color())
}

// Flush implements drawview.Renderer. Drawing is immediate, so this is
// a no-op.
func (r *Renderer) Flush() error {
	return nil
}

// Line implements drawview.Renderer.
func (r *Renderer) Line(p1, p2 drawview.Point, s drawview.StrokeStyle) {
	r.strokeSegment(p1, p2, s)
}

// Polygon implements drawview.Renderer.
func (r *Renderer) Polygon(pts []drawview.Point, fill *drawview.FillStyle, stroke *drawview.StrokeStyle) {
	if len(pts) < 2 {
		return
	}
	if fill != nil {
		r.fillPath(pts, fill.Color)
	}
	if stroke != nil {
		for i := range pts {
			r.strokeSegment(pts[i], pts[(i+1)%len(pts)], *stroke)
		}
	}
}

// Ellipse implements drawview.Renderer.
func (r *Renderer) Ellipse(center drawview.Point, rx, ry float64, fill *drawview.FillStyle, stroke *drawview.StrokeStyle) {
	if fill != nil {
		r.raster.Reset(r.pixmap.Width(), r.pixmap.Height())
		ellipsePath(r.raster, center, rx, ry)
		r.paint(fill.Color)
	}
	if stroke != nil {
		pts := flattenEllipse(center, rx, ry)
		for i := range pts {
			r.strokeSegment(pts[i], pts[(i+1)%len(pts)], *stroke)
		}
	}
}

// Text implements drawview.Renderer.
func (r *Renderer) Text(p drawview.Point, s string, size float64, col drawview.RGBA) {
	face, err := r.source.Face(size)
	if err != nil {
		drawview.Logger().Warn("soft: face creation failed", "size", size, "err", err)
		return
	}
	text.Draw(r.pixmap.Image(), s, face, p.X, p.Y, col.Color())
}

// MeasureText implements drawview.Renderer.
func (r *Renderer) MeasureText(s string, size float64) (float64, float64) {
	face, err := r.source.Face(size)
	if err != nil {
		return 0, 0
	}
	return text.Measure(s, face)
}

// fillPath fills a closed polygon with a solid color.
func (r *Renderer) fillPath(pts []drawview.Point, col drawview.RGBA) {
	r.raster.Reset(r.pixmap.Width(), r.pixmap.Height())
	r.raster.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.raster.LineTo(float32(p.X), float32(p.Y))
	}
	r.raster.ClosePath()
	r.paint(col)
}

// strokeSegment fills the rectangle swept by a pen of the stroke width
// moving from p1 to p2 (butt caps).
func (r *Renderer) strokeSegment(p1, p2 drawview.Point, s drawview.StrokeStyle) {
	w := s.Width
	if w <= 0 {
		w = 1
	}

	d := p2.Sub(p1)
	length := d.Length()
	if length == 0 {
		// Degenerate segment: a dot the size of the pen.
		half := w / 2
		r.fillPath([]drawview.Point{
			{X: p1.X - half, Y: p1.Y - half},
			{X: p1.X + half, Y: p1.Y - half},
			{X: p1.X + half, Y: p1.Y + half},
			{X: p1.X - half, Y: p1.Y + half},
		}, s.Color)
		return
	}

	n := d.Mul(1 / length).Perp().Mul(w / 2)
	r.fillPath([]drawview.Point{
		p1.Add(n), p2.Add(n), p2.Sub(n), p1.Sub(n),
	}, s.Color)
}

// paint composites the accumulated coverage onto the pixmap.
func (r *Renderer) paint(col drawview.RGBA) {
	dst := r.pixmap.Image()
	r.raster.Draw(dst, dst.Rect, image.NewUniform(col.Color()), image.Point{})
}

// circleKappa is the cubic Bezier approximation constant for a quarter
// circle.
const circleKappa = 0.5522847498307936

// ellipsePath appends an axis-aligned ellipse as four cubic segments.
func ellipsePath(z *vector.Rasterizer, c drawview.Point, rx, ry float64) {
	ox := float32(rx * circleKappa)
	oy := float32(ry * circleKappa)
	x := float32(c.X)
	y := float32(c.Y)
	fx := float32(rx)
	fy := float32(ry)

	z.MoveTo(x+fx, y)
	z.CubeTo(x+fx, y+oy, x+ox, y+fy, x, y+fy)
	z.CubeTo(x-ox, y+fy, x-fx, y+oy, x-fx, y)
	z.CubeTo(x-fx, y-oy, x-ox, y-fy, x, y-fy)
	z.CubeTo(x+ox, y-fy, x+fx, y-oy, x+fx, y)
	z.ClosePath()
}

// flattenEllipse approximates the ellipse outline with line segments for
// stroking. The segment count grows with the radius so large circles stay
// smooth.
func flattenEllipse(c drawview.Point, rx, ry float64) []drawview.Point {
	n := int(math.Max(16, math.Ceil(math.Max(rx, ry))))
	if n > 256 {
		n = 256
	}
	pts := make([]drawview.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = drawview.Pt(c.X+rx*math.Cos(a), c.Y+ry*math.Sin(a))
	}
	return pts
}
