package devdraw

import (
	"log/slog"
	"math"

	"9fans.net/go/draw"

	"github.com/gogpu/drawview"
)

// Renderer implements drawview.Renderer on a devdraw window image.
//
// Drawing happens in the window's screen coordinates; the renderer
// translates the view's (0,0)-based device coordinates by the window
// origin. Colors are 1x1 replicated images allocated lazily and cached
// for the lifetime of the display connection.
type Renderer struct {
	display *draw.Display
	colors  map[drawview.RGBA]*draw.Image
	logger  *slog.Logger
}

var _ drawview.Renderer = (*Renderer)(nil)

func newRenderer(d *draw.Display) *Renderer {
	return &Renderer{
		display: d,
		colors:  make(map[drawview.RGBA]*draw.Image),
		logger:  drawview.Logger(),
	}
}

// SetLogger lets the view propagate its package logger.
func (r *Renderer) SetLogger(l *slog.Logger) {
	if l != nil {
		r.logger = l
	}
}

// screen returns the current window image. It changes identity after a
// resize re-attach, so it is never cached.
func (r *Renderer) screen() *draw.Image {
	return r.display.Image
}

// pt converts a device coordinate to a window screen point.
func (r *Renderer) pt(p drawview.Point) draw.Point {
	min := r.screen().R.Min
	return draw.Pt(min.X+int(math.Round(p.X)), min.Y+int(math.Round(p.Y)))
}

// thickness converts a stroke width to devdraw's line thickness, which
// produces lines of width 1+2*thick pixels.
func (r *Renderer) thickness(width float64) int {
	t := int(math.Round((width - 1) / 2))
	if t < 0 {
		t = 0
	}
	return t
}

// colorImage returns a 1x1 replicated solid-color source image.
func (r *Renderer) colorImage(c drawview.RGBA) *draw.Image {
	if img, ok := r.colors[c]; ok {
		return img
	}
	val := draw.Color(uint32(clamp255(c.R*255))<<24 |
		uint32(clamp255(c.G*255))<<16 |
		uint32(clamp255(c.B*255))<<8 |
		uint32(clamp255(c.A*255)))
	img, err := r.display.AllocImage(draw.Rect(0, 0, 1, 1), draw.RGBA32, true, val)
	if err != nil {
		r.logger.Warn("devdraw: AllocImage failed", "err", err)
		return r.display.Black
	}
	r.colors[c] = img
	return img
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Size implements drawview.Renderer.
func (r *Renderer) Size() (int, int) {
	rect := r.screen().R
	return rect.Dx(), rect.Dy()
}

// Clear implements drawview.Renderer.
func (r *Renderer) Clear(bg drawview.RGBA) {
	s := r.screen()
	s.Draw(s.R, r.colorImage(bg), nil, draw.ZP)
}

// Line implements drawview.Renderer.
func (r *Renderer) Line(p1, p2 drawview.Point, s drawview.StrokeStyle) {
	r.screen().Line(r.pt(p1), r.pt(p2), draw.EndSquare, draw.EndSquare,
		r.thickness(s.Width), r.colorImage(s.Color), draw.ZP)
}

// Polygon implements drawview.Renderer.
func (r *Renderer) Polygon(pts []drawview.Point, fill *drawview.FillStyle, stroke *drawview.StrokeStyle) {
	if len(pts) < 2 {
		return
	}
	dp := make([]draw.Point, 0, len(pts)+1)
	for _, p := range pts {
		dp = append(dp, r.pt(p))
	}
	if fill != nil {
		r.screen().FillPoly(dp, ^0, r.colorImage(fill.Color), draw.ZP)
	}
	if stroke != nil {
		closed := append(dp, dp[0])
		r.screen().Poly(closed, draw.EndSquare, draw.EndSquare,
			r.thickness(stroke.Width), r.colorImage(stroke.Color), draw.ZP)
	}
}

// Ellipse implements drawview.Renderer.
func (r *Renderer) Ellipse(center drawview.Point, rx, ry float64, fill *drawview.FillStyle, stroke *drawview.StrokeStyle) {
	c := r.pt(center)
	a := int(math.Round(rx))
	b := int(math.Round(ry))
	if fill != nil {
		r.screen().FillEllipse(c, a, b, r.colorImage(fill.Color), draw.ZP)
	}
	if stroke != nil {
		r.screen().Ellipse(c, a, b, r.thickness(stroke.Width), r.colorImage(stroke.Color), draw.ZP)
	}
}

// Text implements drawview.Renderer. The size parameter is ignored:
// devdraw fonts are fixed-size bitmap fonts, so the display's default
// font is used as-is. String positions are baseline-left; devdraw
// expects the glyph top, so the ascent is subtracted.
func (r *Renderer) Text(p drawview.Point, s string, size float64, col drawview.RGBA) {
	f := r.display.Font
	top := drawview.Pt(p.X, p.Y-float64(f.Ascent))
	r.screen().String(r.pt(top), r.colorImage(col), draw.ZP, f, s)
}

// MeasureText implements drawview.Renderer, measuring with the display's
// default font regardless of the requested size.
func (r *Renderer) MeasureText(s string, size float64) (float64, float64) {
	f := r.display.Font
	return float64(f.StringWidth(s)), float64(f.Height)
}

// Flush implements drawview.Renderer.
func (r *Renderer) Flush() error {
	return r.display.Flush()
}
