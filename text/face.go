package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// font, stored as a positive value.
	Descent float64

	// LineHeight is the recommended vertical distance between baselines
	// of consecutive lines.
	LineHeight float64
}

// Face is a font at a specific pixel size. Create faces through
// FontSource.Face. A Face is not safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	face   font.Face
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the face size in device pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
	}
}

// Advance returns the horizontal advance of the text in pixels, including
// kerning between adjacent glyphs.
func (f *Face) Advance(s string) float64 {
	var total fixed.Int26_6
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			total += f.face.Kern(prev, r)
		}
		adv, ok := f.face.GlyphAdvance(r)
		if !ok {
			// Unknown rune: fall back to the replacement character
			// so measurement stays monotonic.
			adv, _ = f.face.GlyphAdvance('�')
		}
		total += adv
		prev = r
	}
	return fixedToFloat(total)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
