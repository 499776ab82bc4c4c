package drawview

// Option configures a View during creation.
//
// Example:
//
//	v := drawview.New(r,
//	    drawview.WithWorldBounds(0, 0, 20, 10),
//	    drawview.WithBackground(drawview.White),
//	)
type Option func(*viewOptions)

// viewOptions holds optional configuration for View creation.
type viewOptions struct {
	world      Rect
	background RGBA
	style      Style
	drawable   Drawable
}

// defaultViewOptions returns the default view options.
func defaultViewOptions() viewOptions {
	return viewOptions{
		world:      R(-10, -10, 20, 20),
		background: White,
		style:      DefaultStyle(),
	}
}

// WithWorldBounds sets the initial visible world-space window.
// Width and height must be positive.
func WithWorldBounds(xmin, ymin, w, h float64) Option {
	return func(o *viewOptions) {
		o.world = R(xmin, ymin, w, h)
	}
}

// WithBackground sets the color the surface is cleared to on every repaint.
func WithBackground(bg RGBA) Option {
	return func(o *viewOptions) {
		o.background = bg
	}
}

// WithStyle sets the initial drawing style.
func WithStyle(s Style) Option {
	return func(o *viewOptions) {
		o.style = s
	}
}

// WithDrawable registers the content callback invoked on every repaint.
// Equivalent to calling SetDrawable after New.
func WithDrawable(d Drawable) Option {
	return func(o *viewOptions) {
		o.drawable = d
	}
}
