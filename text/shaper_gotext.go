package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper shapes text with go-text/typesetting's HarfBuzz
// implementation. Compared with the builtin shaper it applies kerning
// pairs, ligature substitution and correct right-to-left ordering, with
// the string first split into directional runs by the Unicode
// bidirectional algorithm.
//
// GoTextShaper is safe for concurrent use. Parsed font.Font objects are
// cached per FontSource (font.Font is read-only and thread-safe); a
// lightweight font.Face is created per Shape call, and HarfbuzzShaper
// instances are pooled since they carry mutable buffers.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a HarfBuzz-backed shaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(text string, f *Face) []Glyph {
	if text == "" || f == nil {
		return nil
	}

	goFont, err := s.getOrCreateFont(f.Source())
	if err != nil {
		return nil
	}
	goFace := font.NewFace(goFont)

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer s.shaperPool.Put(hb)

	var glyphs []Glyph
	pen := 0.0
	cluster := 0

	for _, run := range splitRuns(text) {
		runes := []rune(run.Text)
		dir := di.DirectionLTR
		if run.RTL {
			dir = di.DirectionRTL
		}

		input := shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: dir,
			Face:      goFace,
			Size:      floatToFixed(f.Size()),
			Script:    detectScript(runes),
			Language:  language.NewLanguage("en"),
		}
		output := hb.Shape(input)

		for _, g := range output.Glyphs {
			adv := fixedToFloat(g.Advance)
			glyphs = append(glyphs, Glyph{
				GID:      uint16(g.GlyphID),
				Cluster:  cluster + g.TextIndex(),
				X:        pen + fixedToFloat(g.XOffset),
				XAdvance: adv,
			})
			pen += adv
		}
		cluster += len(runes)
	}
	return glyphs
}

// getOrCreateFont returns a cached go-text font.Font for the source,
// parsing and caching it on first use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	goFace, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = goFace.Font
	return goFace.Font, nil
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// detectScript returns the script of the first non-space rune, defaulting
// to Latin. Mixed-script runs within one direction are shaped with the
// leading script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
