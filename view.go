package drawview

import "log/slog"

// Drawable is the content callback a View invokes once per repaint, after
// the surface has been cleared and before it is flushed. The callback may
// issue any sequence of drawing calls on the View.
type Drawable interface {
	Draw(v *View)
}

// DrawFunc adapts a plain function to the Drawable interface.
type DrawFunc func(v *View)

// Draw implements Drawable.
func (f DrawFunc) Draw(v *View) { f(v) }

// View is the drawing surface abstraction. It owns the world-to-device
// transform, the current style and its save/restore stack, and the
// primitive drawing operations. Content is supplied via a Drawable;
// pointer events are delivered via the On* hooks in world coordinates.
//
// A View is driven synchronously by its host's event dispatch and is not
// safe for concurrent use.
type View struct {
	renderer Renderer
	world    Rect
	tf       Transform

	style      Style
	styleStack []Style

	background RGBA
	drawable   Drawable

	// Pointer hooks, invoked with world coordinates. Nil hooks are
	// skipped. Hosts feed device positions into PointerMove,
	// PointerPress and PointerRelease.
	OnMove    func(x, y float64)
	OnPress   func(x, y float64)
	OnRelease func(x, y float64)

	pointer Point
}

// New creates a View drawing through the given backend. The transform is
// computed immediately from the backend's current size; a zero-sized
// backend leaves the identity mapping in place until the first Resize.
func New(r Renderer, opts ...Option) *View {
	options := defaultViewOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if ls, ok := r.(loggerSetter); ok {
		ls.SetLogger(Logger())
	}

	v := &View{
		renderer:   r,
		world:      options.world,
		tf:         NewTransform(),
		style:      options.style,
		styleStack: make([]Style, 0, 8),
		background: options.background,
		drawable:   options.drawable,
	}
	w, h := r.Size()
	v.tf.Recompute(v.world, w, h)
	return v
}

// Renderer returns the backend the view draws through.
func (v *View) Renderer() Renderer {
	return v.renderer
}

// SetDrawable registers the content callback invoked on every repaint.
func (v *View) SetDrawable(d Drawable) {
	v.drawable = d
}

// SetBackground sets the repaint background color.
func (v *View) SetBackground(bg RGBA) {
	v.background = bg
}

// WorldBounds returns the currently visible world-space window.
func (v *View) WorldBounds() Rect {
	return v.world
}

// SetWorldBounds changes the visible region of world space and repaints.
// Non-positive width or height is a caller contract violation: the
// resulting mapping is undefined.
func (v *View) SetWorldBounds(xmin, ymin, w, h float64) error {
	v.world = R(xmin, ymin, w, h)
	vw, vh := v.renderer.Size()
	v.tf.Recompute(v.world, vw, vh)
	return v.Redraw()
}

// Resize tells the view its surface changed size. The transform is
// recomputed (degenerate sizes keep the previous mapping) and the content
// repainted. The ordering guarantee for hosts: a Resize completes before
// the repaint it triggers, so drawing never observes a stale transform.
func (v *View) Resize(w, h int) error {
	v.tf.Recompute(v.world, w, h)
	Logger().Debug("drawview: resize", slog.Int("width", w), slog.Int("height", h))
	return v.Redraw()
}

// Redraw clears the surface to the background color, invokes the Drawable
// and flushes the backend.
func (v *View) Redraw() error {
	v.renderer.Clear(v.background)
	if v.drawable != nil {
		v.drawable.Draw(v)
	}
	return v.renderer.Flush()
}

// Scale returns the current uniform world-to-device scale factor.
func (v *View) Scale() float64 {
	return v.tf.Scale()
}

// ToDevice maps a world-space point to device coordinates.
func (v *View) ToDevice(x, y float64) (float64, float64) {
	return v.tf.ToDevice(x, y)
}

// ToWorld maps a device-space point to world coordinates.
func (v *View) ToWorld(x, y float64) (float64, float64) {
	return v.tf.ToWorld(x, y)
}

// Style returns a copy of the current drawing style.
func (v *View) Style() Style {
	return v.style
}

// SetStrokeColor sets the stroke color for subsequent draw calls.
func (v *View) SetStrokeColor(c RGBA) { v.style.Stroke = c }

// SetFillColor sets the fill color for subsequent draw calls.
func (v *View) SetFillColor(c RGBA) { v.style.Fill = c }

// SetTextColor sets the text color for subsequent draw calls.
func (v *View) SetTextColor(c RGBA) { v.style.Text = c }

// SetStrokeWidth sets the stroke width in device pixels.
func (v *View) SetStrokeWidth(w float64) { v.style.StrokeWidth = w }

// SetStroke enables or disables stroking. While disabled, primitives draw
// no outlines regardless of the stroke color.
func (v *View) SetStroke(enabled bool) { v.style.StrokeEnabled = enabled }

// SetFill enables or disables filling. While disabled, primitives draw no
// interiors regardless of the fill color.
func (v *View) SetFill(enabled bool) { v.style.FillEnabled = enabled }

// PushStyle saves a copy of the current style on the style stack.
func (v *View) PushStyle() {
	v.styleStack = append(v.styleStack, v.style)
}

// PopStyle restores the most recently pushed style. Popping with no
// matching PushStyle leaves the current style unchanged; the mismatch is
// reported through the package logger since it usually indicates an
// unbalanced save/restore pair.
func (v *View) PopStyle() {
	if len(v.styleStack) == 0 {
		Logger().Warn("drawview: PopStyle with empty style stack")
		return
	}
	v.style = v.styleStack[len(v.styleStack)-1]
	v.styleStack = v.styleStack[:len(v.styleStack)-1]
}

// PointerPos returns the last pointer position in world coordinates.
func (v *View) PointerPos() Point {
	return v.pointer
}

// PointerMove delivers a pointer motion event at a device position.
func (v *View) PointerMove(x, y float64) {
	wx, wy := v.tf.ToWorld(x, y)
	v.pointer = Pt(wx, wy)
	if v.OnMove != nil {
		v.OnMove(wx, wy)
	}
}

// PointerPress delivers a pointer press event at a device position.
func (v *View) PointerPress(x, y float64) {
	wx, wy := v.tf.ToWorld(x, y)
	v.pointer = Pt(wx, wy)
	if v.OnPress != nil {
		v.OnPress(wx, wy)
	}
}

// PointerRelease delivers a pointer release event at a device position.
func (v *View) PointerRelease(x, y float64) {
	wx, wy := v.tf.ToWorld(x, y)
	v.pointer = Pt(wx, wy)
	if v.OnRelease != nil {
		v.OnRelease(wx, wy)
	}
}
