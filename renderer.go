package drawview

// Renderer is the backend interface the View draws through. All coordinates
// are already device-mapped; the styles are resolved from the View's current
// Style for each call. A nil fill or stroke means the operation is
// suppressed for that primitive.
//
// Implementations live in backend/soft (in-memory pixmap) and
// backend/devdraw (window); tests use an in-package recorder.
type Renderer interface {
	// Size returns the current viewport size in device pixels.
	// Either dimension may be zero while the surface is being set up.
	Size() (w, h int)

	// Clear fills the whole surface with the background color.
	Clear(bg RGBA)

	// Line draws a straight segment between two device points.
	Line(p1, p2 Point, s StrokeStyle)

	// Polygon draws a closed polygon. Fill is applied before stroke;
	// either may be nil.
	Polygon(pts []Point, fill *FillStyle, stroke *StrokeStyle)

	// Ellipse draws an axis-aligned ellipse around a center point.
	Ellipse(center Point, rx, ry float64, fill *FillStyle, stroke *StrokeStyle)

	// Text draws a string with its baseline-left anchor at p, using the
	// given font size in device pixels.
	Text(p Point, s string, size float64, col RGBA)

	// MeasureText returns the rendered width and line height of a string
	// at the given font size in device pixels.
	MeasureText(s string, size float64) (w, h float64)

	// Flush makes all issued drawing visible. For in-memory backends this
	// is a no-op.
	Flush() error
}
