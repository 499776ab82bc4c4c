package drawview

import "math"

// mapPt maps a world-space coordinate pair through the current transform.
func (v *View) mapPt(x, y float64) Point {
	dx, dy := v.tf.ToDevice(x, y)
	return Pt(dx, dy)
}

// Line draws a straight segment between two world-space points with the
// current stroke style. Fill state is ignored.
func (v *View) Line(x1, y1, x2, y2 float64) {
	stroke := v.style.strokeStyle()
	if stroke == nil {
		return
	}
	v.renderer.Line(v.mapPt(x1, y1), v.mapPt(x2, y2), *stroke)
}

// Rect draws a rectangle given by its corner (x, y) and extent (w, h),
// applying the current fill and stroke.
func (v *View) Rect(x, y, w, h float64) {
	p1 := v.mapPt(x, y)
	p2 := v.mapPt(x+w, y+h)
	pts := []Point{p1, Pt(p2.X, p1.Y), p2, Pt(p1.X, p2.Y)}
	v.renderer.Polygon(pts, v.style.fillStyle(), v.style.strokeStyle())
}

// Circle draws a circle with a world-space center and radius. The device
// radius scales with the transform's scale magnitude, so circles stay
// round regardless of the Y flip.
func (v *View) Circle(x, y, r float64) {
	center := v.mapPt(x, y)
	dr := r * math.Abs(v.tf.Scale())
	v.renderer.Ellipse(center, dr, dr, v.style.fillStyle(), v.style.strokeStyle())
}

// Triangle draws an isoceles triangle with its base centered at (x, y),
// base width w and apex at (x, y-h), filled and stroked as a polygon.
func (v *View) Triangle(x, y, w, h float64) {
	v.Polygon([]Point{
		Pt(x-w/2, y),
		Pt(x+w/2, y),
		Pt(x, y-h),
	})
}

// Polygon draws a closed polygon through the given world-space vertices.
// At least three vertices are assumed; no validation is performed.
func (v *View) Polygon(pts []Point) {
	mapped := make([]Point, len(pts))
	for i, p := range pts {
		mapped[i] = v.mapPt(p.X, p.Y)
	}
	v.renderer.Polygon(mapped, v.style.fillStyle(), v.style.strokeStyle())
}

// Arrow draws a line segment with optional arrowheads at either end.
// headSize is given in world units; the heads themselves are constructed
// in device space so they stay symmetric under the Y flip. A zero-length
// segment draws no heads.
func (v *View) Arrow(x1, y1, x2, y2, headSize float64, startHead, endHead bool) {
	stroke := v.style.strokeStyle()
	if stroke == nil {
		return
	}

	p1 := v.mapPt(x1, y1)
	p2 := v.mapPt(x2, y2)
	v.renderer.Line(p1, p2, *stroke)

	d := p2.Sub(p1)
	length := d.Length()
	if length == 0 {
		return
	}
	d = d.Mul(1 / length)
	s := headSize * math.Abs(v.tf.Scale())

	// Each head is two strokes forming a "V": offset s back along the
	// segment and s/2 to either side.
	if endHead {
		back := p2.Sub(d.Mul(s))
		side := d.Perp().Mul(s / 2)
		v.renderer.Line(p2, back.Add(side), *stroke)
		v.renderer.Line(p2, back.Sub(side), *stroke)
	}
	if startHead {
		back := p1.Add(d.Mul(s))
		side := d.Perp().Mul(s / 2)
		v.renderer.Line(p1, back.Add(side), *stroke)
		v.renderer.Line(p1, back.Sub(side), *stroke)
	}
}
