package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
type FontSource struct {
	data   []byte
	parsed *opentype.Font
	name   string

	mu    sync.Mutex
	faces map[float64]*Face
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		faces:  make(map[float64]*Face),
	}
	if name, err := parsed.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" if the font does not carry one.
func (s *FontSource) Name() string {
	return s.name
}

// Data returns the raw font bytes. Shapers use this to parse the font with
// their own backends; callers must not modify the slice.
func (s *FontSource) Data() []byte {
	return s.data
}

// Face returns a Face at the given size in device pixels. Faces are cached
// per size and shared; a Face is not safe for concurrent use.
func (s *FontSource) Face(size float64) (*Face, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.faces[size]; ok {
		return f, nil
	}

	// DPI 72 makes point size equal pixel size.
	otFace, err := opentype.NewFace(s.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	f := &Face{source: s, size: size, face: otFace}
	s.faces[size] = f
	return f, nil
}

var (
	defaultOnce   sync.Once
	defaultSource *FontSource
)

// Default returns a shared FontSource for the embedded Go Regular font.
// It never fails: the font data ships with the package.
func Default() *FontSource {
	defaultOnce.Do(func() {
		s, err := NewFontSource(goregular.TTF)
		if err != nil {
			// The embedded font is known-good; a parse failure here
			// means the toolchain is broken.
			panic(fmt.Sprintf("text: parsing embedded font: %v", err))
		}
		defaultSource = s
	})
	return defaultSource
}
