package beam

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/drawview"
)

// Diagram colors, after the usual structural-analysis conventions:
// red for moments, green for shear, blue for displacement.
var (
	beamColor      = drawview.Hex("#1a1a1a")
	supportColor   = drawview.Hex("#4d4d4d")
	loadColor      = drawview.Hex("#b05a00")
	momentColor    = drawview.Hex("#c03030")
	shearColor     = drawview.Hex("#2a8a2a")
	displColor     = drawview.Hex("#2a55c0")
	dimColor       = drawview.Hex("#707070")
	selectionColor = drawview.Hex("#f0a500")
)

// Diagram renders a beam model and its result curves, and implements
// drawview.Drawable. The Show* flags toggle individual overlays;
// Selected marks one segment for highlighting (-1 for none).
//
// All glyph sizes are derived from the beam's total length so the
// drawing keeps its proportions when segments are added or removed.
type Diagram struct {
	Model   *Model
	Results *Results

	ShowMoment       bool
	ShowShear        bool
	ShowDisplacement bool
	ShowDimensions   bool

	Selected int

	// OnSegmentSelected is invoked after a pointer press changed the
	// selected segment. The index is -1 when the press cleared the
	// selection.
	OnSegmentSelected func(segment int)
}

// NewDiagram returns a diagram for the given model with every overlay
// enabled and no segment selected.
func NewDiagram(m *Model) *Diagram {
	return &Diagram{
		Model:            m,
		ShowMoment:       true,
		ShowShear:        true,
		ShowDisplacement: true,
		ShowDimensions:   true,
		Selected:         -1,
	}
}

// Bind installs the diagram as the view's drawable and wires pointer
// presses to segment selection.
func (d *Diagram) Bind(v *drawview.View) {
	v.SetDrawable(d)
	v.OnPress = func(x, y float64) {
		d.press(v, x, y)
	}
}

// FitView sets the view's world bounds so the whole diagram is visible
// with a margin, keeping the beam axis in the upper half where the
// result curves below it have room.
func (d *Diagram) FitView(v *drawview.View) error {
	l := d.Model.TotalLength()
	if l <= 0 {
		l = 1
	}
	return v.SetWorldBounds(-0.15*l, -0.85*l, 1.3*l, 1.25*l)
}

// press hit-tests a pointer press against the beam band and updates
// the selection. Presses outside the band clear it.
func (d *Diagram) press(v *drawview.View, x, y float64) {
	l := d.Model.TotalLength()
	seg := -1
	if math.Abs(y) <= 0.12*l {
		seg = d.Model.SegmentAt(x)
	}
	if seg == d.Selected {
		return
	}
	d.Selected = seg
	drawview.Logger().Debug("beam: segment selected", slog.Int("segment", seg))
	if d.OnSegmentSelected != nil {
		d.OnSegmentSelected(seg)
	}
	if err := v.Redraw(); err != nil {
		drawview.Logger().Warn("beam: redraw after selection", slog.Any("error", err))
	}
}

// Draw implements drawview.Drawable.
func (d *Diagram) Draw(v *drawview.View) {
	if d.Model == nil || d.Model.NumSegments() == 0 {
		return
	}
	l := d.Model.TotalLength()

	if d.Results != nil && !d.Results.Empty() {
		if d.ShowDisplacement {
			d.drawCurve(v, d.Results.X, d.Results.Displacement, d.Results.MaxDisplacement(), 0.10*l, displColor, false)
		}
		if d.ShowShear {
			d.drawCurve(v, d.Results.X, d.Results.Shear, d.Results.MaxShear(), 0.14*l, shearColor, true)
		}
		if d.ShowMoment {
			// Moment is plotted on the tension side, below the axis.
			d.drawCurve(v, d.Results.X, d.Results.Moment, d.Results.MaxMoment(), -0.18*l, momentColor, true)
		}
	}

	d.drawLoads(v, l)
	d.drawSelection(v)
	d.drawAxis(v, l)
	d.drawSupports(v, l)
	if d.ShowDimensions {
		d.drawDimensions(v, l)
	}
}

func (d *Diagram) drawAxis(v *drawview.View, l float64) {
	v.PushStyle()
	v.SetStrokeColor(beamColor)
	v.SetStrokeWidth(3)
	v.Line(0, 0, l, 0)
	v.PopStyle()
}

func (d *Diagram) drawSelection(v *drawview.View) {
	if d.Selected < 0 || d.Selected >= d.Model.NumSegments() {
		return
	}
	x0 := d.Model.NodeX(d.Selected)
	x1 := x0 + d.Model.Lengths[d.Selected]
	v.PushStyle()
	v.SetStrokeColor(selectionColor)
	v.SetStrokeWidth(7)
	v.Line(x0, 0, x1, 0)
	v.PopStyle()
}

func (d *Diagram) drawSupports(v *drawview.View, l float64) {
	s := 0.06 * l

	v.PushStyle()
	v.SetStrokeColor(supportColor)
	v.SetFillColor(drawview.White)
	v.SetStrokeWidth(1.5)

	for i, kind := range d.Model.Supports {
		x := d.Model.NodeX(i)
		switch kind {
		case PinXY:
			d.supportTriangle(v, x, s)
			d.groundHatch(v, x, -s, s)
		case RollerY:
			d.supportTriangle(v, x, s)
			r := s / 6
			v.Circle(x-s/4, -s-r, r)
			v.Circle(x+s/4, -s-r, r)
			d.groundHatch(v, x, -s-2*r, s)
		case FixedXYR:
			v.Line(x, -s, x, s)
			side := 1.0
			if x > l/2 {
				side = -1
			}
			for j := 0; j <= 4; j++ {
				y := -s + float64(j)*s/2
				v.Line(x, y, x-side*s/3, y-s/3)
			}
		}
	}
	v.PopStyle()
}

// supportTriangle draws the standard support glyph, apex touching the
// beam axis and base resting on the ground line below.
func (d *Diagram) supportTriangle(v *drawview.View, x, s float64) {
	v.Triangle(x, -s, s, -s)
}

// groundHatch draws a ground line with short diagonal strokes under a
// support at x, top edge at y.
func (d *Diagram) groundHatch(v *drawview.View, x, y, s float64) {
	v.Line(x-s/2, y, x+s/2, y)
	for j := 0; j < 4; j++ {
		hx := x - s/2 + float64(j)*s/3
		v.Line(hx+s/6, y, hx, y-s/4)
	}
}

func (d *Diagram) drawLoads(v *drawview.View, l float64) {
	maxLoad := maxAbsSlice(d.Model.Loads)
	if maxLoad == 0 {
		return
	}
	top := 0.22 * l
	head := 0.018 * l

	v.PushStyle()
	v.SetStrokeColor(loadColor)
	v.SetTextColor(loadColor)
	v.SetStrokeWidth(1.5)

	for i, q := range d.Model.Loads {
		if q == 0 {
			continue
		}
		h := top * math.Abs(q) / maxLoad
		x0 := d.Model.NodeX(i)
		x1 := x0 + d.Model.Lengths[i]

		// q < 0 acts downward: arrows point at the beam from above.
		y0, y1 := h, 0.0
		if q > 0 {
			y0, y1 = -h, 0
		}
		v.Line(x0, y0, x1, y0)
		n := int(d.Model.Lengths[i]/(0.12*l)) + 2
		for j := 0; j <= n; j++ {
			x := x0 + float64(j)*(x1-x0)/float64(n)
			v.Arrow(x, y0, x, y1, head, false, true)
		}
		v.Text((x0+x1)/2, y0+0.015*l, fmt.Sprintf("%.1f kN/m", math.Abs(q)), 0.045*l, drawview.AlignCenter, drawview.AlignBottom)
	}
	v.PopStyle()
}

// drawCurve plots one result curve at the given amplitude in world
// units. A positive amplitude plots positive values upward; negative
// flips the curve below the axis. Filled curves are closed back along
// the beam axis per segment.
func (d *Diagram) drawCurve(v *drawview.View, xs, values [][]float64, max, amplitude float64, col drawview.RGBA, filled bool) {
	if max == 0 {
		return
	}

	v.PushStyle()
	v.SetStrokeColor(col)
	v.SetStrokeWidth(1.5)
	fill := col
	fill.A = 0.25
	v.SetFillColor(fill)

	for seg := range values {
		if seg >= len(xs) {
			continue
		}
		// A curve needs at least two stations with both x and value
		// present; partially filled segments are skipped.
		n := len(values[seg])
		if n > len(xs[seg]) {
			n = len(xs[seg])
		}
		if n < 2 {
			continue
		}

		if filled {
			pts := make([]drawview.Point, 0, n+2)
			pts = append(pts, drawview.Pt(xs[seg][0], 0))
			for k := 0; k < n; k++ {
				pts = append(pts, drawview.Pt(xs[seg][k], values[seg][k]/max*amplitude))
			}
			pts = append(pts, drawview.Pt(xs[seg][n-1], 0))
			v.Polygon(pts)
		} else {
			for k := 1; k < n; k++ {
				v.Line(
					xs[seg][k-1], values[seg][k-1]/max*amplitude,
					xs[seg][k], values[seg][k]/max*amplitude,
				)
			}
		}
	}
	v.PopStyle()
}

func (d *Diagram) drawDimensions(v *drawview.View, l float64) {
	y := -0.32 * l
	head := 0.018 * l
	tick := 0.02 * l

	v.PushStyle()
	v.SetStrokeColor(dimColor)
	v.SetTextColor(dimColor)
	v.SetStrokeWidth(1)

	for i, length := range d.Model.Lengths {
		x0 := d.Model.NodeX(i)
		x1 := x0 + length
		v.Arrow(x0, y, x1, y, head, true, true)
		v.Line(x0, y-tick, x0, y+tick)
		v.Line(x1, y-tick, x1, y+tick)
		v.Text((x0+x1)/2, y+0.01*l, fmt.Sprintf("%.2f m", length), 0.04*l, drawview.AlignCenter, drawview.AlignBottom)
	}
	v.PopStyle()
}

func maxAbsSlice(vals []float64) float64 {
	var max float64
	for _, v := range vals {
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return max
}
