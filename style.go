package drawview

// Style holds the current drawing attributes consulted by the primitives.
// It is a plain value type; the style stack stores copies, so pushing and
// then popping restores every field exactly.
type Style struct {
	Stroke        RGBA
	Fill          RGBA
	Text          RGBA
	StrokeWidth   float64
	StrokeEnabled bool
	FillEnabled   bool
}

// DefaultStyle returns the style a fresh View starts with: black strokes of
// width 1, white fill, black text, stroking and filling enabled.
func DefaultStyle() Style {
	return Style{
		Stroke:        Black,
		Fill:          White,
		Text:          Black,
		StrokeWidth:   1,
		StrokeEnabled: true,
		FillEnabled:   true,
	}
}

// StrokeStyle is the resolved stroke state handed to a backend for one
// draw call.
type StrokeStyle struct {
	Color RGBA
	Width float64
}

// FillStyle is the resolved fill state handed to a backend for one
// draw call.
type FillStyle struct {
	Color RGBA
}

// strokeStyle resolves the effective stroke for the next draw call.
// Returns nil when stroking is disabled.
func (s Style) strokeStyle() *StrokeStyle {
	if !s.StrokeEnabled {
		return nil
	}
	return &StrokeStyle{Color: s.Stroke, Width: s.StrokeWidth}
}

// fillStyle resolves the effective fill for the next draw call.
// Returns nil when filling is disabled.
func (s Style) fillStyle() *FillStyle {
	if !s.FillEnabled {
		return nil
	}
	return &FillStyle{Color: s.Fill}
}
