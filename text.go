package drawview

import "math"

// HAlign selects how text is placed horizontally relative to its anchor.
type HAlign int

const (
	// AlignLeft anchors the left edge of the text (the backend default).
	AlignLeft HAlign = iota
	// AlignCenter centers the text on the anchor.
	AlignCenter
	// AlignRight anchors the right edge of the text.
	AlignRight
)

// VAlign selects how text is placed vertically relative to its anchor.
type VAlign int

const (
	// AlignBottom anchors the bottom of the text (the backend default:
	// text is drawn up from a baseline-left origin).
	AlignBottom VAlign = iota
	// AlignMiddle centers the text vertically on the anchor.
	AlignMiddle
	// AlignTop anchors the top of the text.
	AlignTop
)

// Text draws a string anchored at a world-space position. pixelSize is the
// font size in device pixels before scaling; the active size is
// pixelSize*|scale| so labels stay proportional to the diagram at any
// viewport size. The string is measured with the backend's font and the
// anchor shifted according to the requested alignment; the backend then
// draws from a baseline-left origin. Text uses the current text color and
// is unaffected by the stroke and fill state.
func (v *View) Text(x, y float64, s string, pixelSize float64, hAlign HAlign, vAlign VAlign) {
	size := pixelSize * math.Abs(v.tf.Scale())
	w, h := v.renderer.MeasureText(s, size)

	p := v.mapPt(x, y)
	switch hAlign {
	case AlignRight:
		p.X -= w
	case AlignCenter:
		p.X -= w / 2
	}
	switch vAlign {
	case AlignTop:
		p.Y += h
	case AlignMiddle:
		p.Y += h / 2
	}

	v.renderer.Text(p, s, size, v.style.Text)
}
