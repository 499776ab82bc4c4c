package drawview

// Rect is an axis-aligned rectangle in world coordinates, given by its
// lower-left corner and its extent. Both W and H must be positive for the
// rectangle to define a usable world window; this is a caller contract and
// is not validated here.
type Rect struct {
	X, Y, W, H float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Transform maps world coordinates onto device pixels with an
// aspect-preserving scale-to-fit: the largest uniform scale such that the
// whole world rectangle fits inside the viewport, with the world center at
// the viewport center and the vertical axis flipped from the mathematical
// convention (Y up) to the device convention (Y down).
//
// Transform is a derived object: call Recompute whenever the world bounds
// or the viewport size change. The zero value maps world coordinates 1:1
// (identity, scale 1).
type Transform struct {
	forward Matrix
	inverse Matrix
	scale   float64
	valid   bool
}

// NewTransform returns an identity transform with scale 1.
func NewTransform() Transform {
	return Transform{
		forward: Identity(),
		inverse: Identity(),
		scale:   1,
		valid:   true,
	}
}

// Recompute rebuilds the mapping for the given world bounds and viewport
// size in device pixels. If either viewport dimension is not positive
// (a transient state while a surface is being created or torn down), the
// previous mapping is left untouched.
func (t *Transform) Recompute(world Rect, vw, vh int) {
	if vw <= 0 || vh <= 0 {
		return
	}
	if !t.valid {
		*t = NewTransform()
	}

	sx := float64(vw) / world.W
	sy := float64(vh) / world.H
	t.scale = min(sx, sy)

	c := world.Center()
	t.forward = Translate(float64(vw)/2, float64(vh)/2).
		Multiply(Scale(t.scale, -t.scale)).
		Multiply(Translate(-c.X, -c.Y))
	t.inverse = t.forward.Invert()
}

// Scale returns the current uniform world-to-device scale factor.
func (t *Transform) Scale() float64 {
	if !t.valid {
		return 1
	}
	return t.scale
}

// ToDevice maps a world-space point to device coordinates.
func (t *Transform) ToDevice(x, y float64) (float64, float64) {
	if !t.valid {
		return x, y
	}
	p := t.forward.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// ToWorld maps a device-space point back to world coordinates. It is the
// exact inverse of ToDevice: ToWorld(ToDevice(p)) == p up to floating-point
// rounding.
func (t *Transform) ToWorld(x, y float64) (float64, float64) {
	if !t.valid {
		return x, y
	}
	p := t.inverse.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// Matrix returns a copy of the forward transformation matrix.
func (t *Transform) Matrix() Matrix {
	if !t.valid {
		return Identity()
	}
	return t.forward
}
