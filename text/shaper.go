package text

import "sync/atomic"

// Glyph is one positioned glyph produced by shaping.
type Glyph struct {
	// GID is the glyph index in the font.
	GID uint16

	// Cluster is the rune index in the source text this glyph maps to.
	Cluster int

	// X is the horizontal position relative to the text origin.
	X float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// Shaper converts a string into positioned glyphs for a face.
type Shaper interface {
	Shape(s string, f *Face) []Glyph
}

// builtinShaper positions glyphs by summing per-glyph advances with
// pairwise kerning. It handles neither ligatures nor complex scripts;
// use GoTextShaper for those.
type builtinShaper struct{}

func (builtinShaper) Shape(s string, f *Face) []Glyph {
	if s == "" || f == nil {
		return nil
	}
	var glyphs []Glyph
	x := 0.0
	prev := rune(-1)
	cluster := 0
	for _, r := range s {
		if prev >= 0 {
			x += fixedToFloat(f.face.Kern(prev, r))
		}
		adv, ok := f.face.GlyphAdvance(r)
		if !ok {
			adv, _ = f.face.GlyphAdvance('�')
		}
		w := fixedToFloat(adv)
		glyphs = append(glyphs, Glyph{Cluster: cluster, X: x, XAdvance: w})
		x += w
		prev = r
		cluster++
	}
	return glyphs
}

// activeShaper holds the shaper used by Measure. Stored atomically so
// SetShaper can be called while other goroutines measure.
var activeShaper atomic.Value

func init() {
	var s Shaper = builtinShaper{}
	activeShaper.Store(&s)
}

// SetShaper replaces the shaper used for measuring text. Pass nil to
// restore the builtin advance-summing shaper.
//
//	text.SetShaper(text.NewGoTextShaper())
func SetShaper(s Shaper) {
	if s == nil {
		s = builtinShaper{}
	}
	activeShaper.Store(&s)
}

// getShaper returns the active shaper.
func getShaper() Shaper {
	return *activeShaper.Load().(*Shaper)
}
