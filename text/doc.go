// Package text provides font loading, measuring and drawing for drawview
// backends.
//
// A FontSource is a parsed TTF/OTF font; it is heavyweight and meant to be
// shared. Faces are created from a source at a specific pixel size and used
// to measure and draw strings. Measuring goes through a Shaper: the builtin
// shaper sums per-glyph advances, while GoTextShaper runs full HarfBuzz
// shaping (kerning, ligatures, bidi runs) via go-text/typesetting.
//
// Default() returns a source for the embedded Go Regular font, so backends
// work without any font files on disk.
package text
