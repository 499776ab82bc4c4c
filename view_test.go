package drawview

import (
	"math"
	"testing"
)

// fakeRenderer records every backend call so tests can assert on the
// device-space geometry the view produces.
type fakeRenderer struct {
	w, h int

	ops      []string
	cleared  []RGBA
	lines    [][2]Point
	strokes  []StrokeStyle
	polygons [][]Point
	polyFill []*FillStyle
	ellipses []struct {
		center Point
		rx, ry float64
	}
	texts []struct {
		p    Point
		s    string
		size float64
	}

	measureW, measureH float64
	flushed            int
}

func newFakeRenderer(w, h int) *fakeRenderer {
	return &fakeRenderer{w: w, h: h, measureW: 40, measureH: 12}
}

func (f *fakeRenderer) Size() (int, int) { return f.w, f.h }

func (f *fakeRenderer) Clear(bg RGBA) {
	f.ops = append(f.ops, "clear")
	f.cleared = append(f.cleared, bg)
}

func (f *fakeRenderer) Line(p1, p2 Point, s StrokeStyle) {
	f.ops = append(f.ops, "line")
	f.lines = append(f.lines, [2]Point{p1, p2})
	f.strokes = append(f.strokes, s)
}

func (f *fakeRenderer) Polygon(pts []Point, fill *FillStyle, stroke *StrokeStyle) {
	f.ops = append(f.ops, "polygon")
	f.polygons = append(f.polygons, pts)
	f.polyFill = append(f.polyFill, fill)
}

func (f *fakeRenderer) Ellipse(center Point, rx, ry float64, fill *FillStyle, stroke *StrokeStyle) {
	f.ops = append(f.ops, "ellipse")
	f.ellipses = append(f.ellipses, struct {
		center Point
		rx, ry float64
	}{center, rx, ry})
}

func (f *fakeRenderer) Text(p Point, s string, size float64, col RGBA) {
	f.ops = append(f.ops, "text")
	f.texts = append(f.texts, struct {
		p    Point
		s    string
		size float64
	}{p, s, size})
}

func (f *fakeRenderer) MeasureText(s string, size float64) (float64, float64) {
	return f.measureW, f.measureH
}

func (f *fakeRenderer) Flush() error {
	f.ops = append(f.ops, "flush")
	f.flushed++
	return nil
}

// newTestView returns a view over a 400x400 fake backend with the
// default world window (-10,-10)..(10,10), giving scale 20 and world
// origin at device (200, 200).
func newTestView(t *testing.T) (*View, *fakeRenderer) {
	t.Helper()
	f := newFakeRenderer(400, 400)
	v := New(f)
	if got := v.Scale(); math.Abs(got-20) > matrixEpsilon {
		t.Fatalf("Scale() = %v, want 20", got)
	}
	return v, f
}

func TestViewLineMapsEndpoints(t *testing.T) {
	v, f := newTestView(t)
	v.Line(-10, -10, 10, 10)

	if len(f.lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(f.lines))
	}
	got := f.lines[0]
	// World (-10,-10) is the bottom-left corner: device (0, 400).
	if !pointsEqual(got[0], Pt(0, 400), matrixEpsilon) || !pointsEqual(got[1], Pt(400, 0), matrixEpsilon) {
		t.Errorf("line endpoints = %v, %v, want (0,400), (400,0)", got[0], got[1])
	}
	if f.strokes[0].Width != 1 {
		t.Errorf("stroke width = %v, want 1", f.strokes[0].Width)
	}
}

func TestViewStrokeDisabledSuppressesLine(t *testing.T) {
	v, f := newTestView(t)
	v.SetStroke(false)
	v.Line(0, 0, 1, 1)
	v.Arrow(0, 0, 1, 1, 0.5, true, true)

	if len(f.lines) != 0 {
		t.Errorf("got %d lines with stroking disabled, want 0", len(f.lines))
	}
}

func TestViewRect(t *testing.T) {
	v, f := newTestView(t)
	v.Rect(-1, -1, 2, 2)

	if len(f.polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(f.polygons))
	}
	pts := f.polygons[0]
	if len(pts) != 4 {
		t.Fatalf("got %d vertices, want 4", len(pts))
	}
	// Corners (-1,-1) and (1,1) map to (180, 220) and (220, 180).
	if !pointsEqual(pts[0], Pt(180, 220), matrixEpsilon) || !pointsEqual(pts[2], Pt(220, 180), matrixEpsilon) {
		t.Errorf("rect corners = %v, %v, want (180,220), (220,180)", pts[0], pts[2])
	}
	if f.polyFill[0] == nil {
		t.Error("rect fill = nil, want default white fill")
	}
}

func TestViewFillDisabled(t *testing.T) {
	v, f := newTestView(t)
	v.SetFill(false)
	v.Rect(0, 0, 1, 1)

	if f.polyFill[0] != nil {
		t.Errorf("fill = %+v with filling disabled, want nil", f.polyFill[0])
	}
}

func TestViewCircleDeviceRadius(t *testing.T) {
	v, f := newTestView(t)
	v.Circle(2, 3, 1)

	if len(f.ellipses) != 1 {
		t.Fatalf("got %d ellipses, want 1", len(f.ellipses))
	}
	e := f.ellipses[0]
	if !pointsEqual(e.center, Pt(240, 140), matrixEpsilon) {
		t.Errorf("center = %v, want (240, 140)", e.center)
	}
	// World radius 1 at scale 20 is 20 device pixels, on both axes.
	if math.Abs(e.rx-20) > matrixEpsilon || math.Abs(e.ry-20) > matrixEpsilon {
		t.Errorf("radii = (%v, %v), want (20, 20)", e.rx, e.ry)
	}
}

func TestViewTriangle(t *testing.T) {
	v, f := newTestView(t)
	v.Triangle(0, 0, 2, 1)

	pts := f.polygons[0]
	if len(pts) != 3 {
		t.Fatalf("got %d vertices, want 3", len(pts))
	}
	// Base (-1,0)..(1,0), apex (0,-1); the flip puts the apex below the
	// base in device space.
	if !pointsEqual(pts[0], Pt(180, 200), matrixEpsilon) ||
		!pointsEqual(pts[1], Pt(220, 200), matrixEpsilon) ||
		!pointsEqual(pts[2], Pt(200, 220), matrixEpsilon) {
		t.Errorf("triangle vertices = %v", pts)
	}
}

func TestViewArrowHeads(t *testing.T) {
	v, f := newTestView(t)
	v.Arrow(0, 0, 5, 0, 0.5, false, true)

	// One shaft plus two head strokes.
	if len(f.lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(f.lines))
	}
	tip := f.lines[1][0]
	if !pointsEqual(tip, Pt(300, 200), matrixEpsilon) {
		t.Errorf("head stroke starts at %v, want the tip (300, 200)", tip)
	}
	// Head size 0.5 world units is 10 device pixels back along the shaft.
	back := f.lines[1][1]
	if math.Abs(back.X-290) > matrixEpsilon {
		t.Errorf("head stroke ends at x = %v, want 290", back.X)
	}
}

func TestViewArrowZeroLength(t *testing.T) {
	v, f := newTestView(t)
	v.Arrow(3, 3, 3, 3, 0.5, true, true)

	// Degenerate arrows draw the (empty) shaft but no heads.
	if len(f.lines) != 1 {
		t.Errorf("got %d lines for zero-length arrow, want 1", len(f.lines))
	}
}

func TestViewTextAlignment(t *testing.T) {
	tests := []struct {
		name   string
		h      HAlign
		v      VAlign
		want   Point
		anchor Point
	}{
		{"left bottom", AlignLeft, AlignBottom, Pt(200, 200), Pt(0, 0)},
		{"center middle", AlignCenter, AlignMiddle, Pt(180, 206), Pt(0, 0)},
		{"right top", AlignRight, AlignTop, Pt(160, 212), Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, f := newTestView(t)
			v.Text(tt.anchor.X, tt.anchor.Y, "hi", 1, tt.h, tt.v)

			if len(f.texts) != 1 {
				t.Fatalf("got %d texts, want 1", len(f.texts))
			}
			got := f.texts[0]
			if !pointsEqual(got.p, tt.want, matrixEpsilon) {
				t.Errorf("text origin = %v, want %v", got.p, tt.want)
			}
			// pixelSize 1 at scale 20.
			if math.Abs(got.size-20) > matrixEpsilon {
				t.Errorf("text size = %v, want 20", got.size)
			}
		})
	}
}

func TestViewStyleStack(t *testing.T) {
	v, _ := newTestView(t)

	v.SetStrokeColor(Red)
	v.SetStrokeWidth(3)
	v.PushStyle()
	v.SetStrokeColor(Blue)
	v.SetStrokeWidth(7)
	v.SetFill(false)
	v.PopStyle()

	s := v.Style()
	if s.Stroke != Red || s.StrokeWidth != 3 || !s.FillEnabled {
		t.Errorf("style after pop = %+v, want red stroke width 3 with fill enabled", s)
	}
}

func TestViewPopStyleEmptyStack(t *testing.T) {
	v, _ := newTestView(t)
	v.SetStrokeColor(Green)
	v.PopStyle()

	if got := v.Style().Stroke; got != Green {
		t.Errorf("stroke after unbalanced pop = %+v, want unchanged green", got)
	}
}

func TestViewRedrawSequence(t *testing.T) {
	f := newFakeRenderer(400, 400)
	drawn := 0
	v := New(f, WithDrawable(DrawFunc(func(v *View) {
		drawn++
		v.Line(0, 0, 1, 1)
	})))

	if err := v.Redraw(); err != nil {
		t.Fatalf("Redraw() error: %v", err)
	}
	if drawn != 1 {
		t.Fatalf("drawable invoked %d times, want 1", drawn)
	}
	want := []string{"clear", "line", "flush"}
	if len(f.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", f.ops, want)
	}
	for i := range want {
		if f.ops[i] != want[i] {
			t.Fatalf("ops = %v, want %v", f.ops, want)
		}
	}
}

func TestViewResizeRecomputesScale(t *testing.T) {
	v, f := newTestView(t)
	f.w, f.h = 800, 400
	if err := v.Resize(800, 400); err != nil {
		t.Fatalf("Resize() error: %v", err)
	}
	// Width would allow scale 40 but height only 20; the fit keeps the
	// smaller of the two.
	if got := v.Scale(); math.Abs(got-20) > matrixEpsilon {
		t.Errorf("Scale() after resize = %v, want 20", got)
	}
	// Center moves with the viewport.
	x, y := v.ToDevice(0, 0)
	if math.Abs(x-400) > matrixEpsilon || math.Abs(y-200) > matrixEpsilon {
		t.Errorf("center at (%v, %v) after resize, want (400, 200)", x, y)
	}
}

func TestViewSetWorldBounds(t *testing.T) {
	v, _ := newTestView(t)
	if err := v.SetWorldBounds(0, 0, 4, 4); err != nil {
		t.Fatalf("SetWorldBounds() error: %v", err)
	}
	if got := v.Scale(); math.Abs(got-100) > matrixEpsilon {
		t.Errorf("Scale() = %v, want 100", got)
	}
	x, y := v.ToDevice(2, 2)
	if math.Abs(x-200) > matrixEpsilon || math.Abs(y-200) > matrixEpsilon {
		t.Errorf("new world center at (%v, %v), want (200, 200)", x, y)
	}
}

func TestViewPointerEvents(t *testing.T) {
	v, _ := newTestView(t)

	var pressed, released, moved []Point
	v.OnPress = func(x, y float64) { pressed = append(pressed, Pt(x, y)) }
	v.OnRelease = func(x, y float64) { released = append(released, Pt(x, y)) }
	v.OnMove = func(x, y float64) { moved = append(moved, Pt(x, y)) }

	v.PointerPress(300, 100)
	v.PointerMove(200, 200)
	v.PointerRelease(0, 400)

	if len(pressed) != 1 || !pointsEqual(pressed[0], Pt(5, 5), matrixEpsilon) {
		t.Errorf("press = %v, want [(5, 5)]", pressed)
	}
	if len(moved) != 1 || !pointsEqual(moved[0], Pt(0, 0), matrixEpsilon) {
		t.Errorf("move = %v, want [(0, 0)]", moved)
	}
	if len(released) != 1 || !pointsEqual(released[0], Pt(-10, -10), matrixEpsilon) {
		t.Errorf("release = %v, want [(-10, -10)]", released)
	}
	if got := v.PointerPos(); !pointsEqual(got, Pt(-10, -10), matrixEpsilon) {
		t.Errorf("PointerPos() = %v, want (-10, -10)", got)
	}
}

func TestViewPointerNilHooks(t *testing.T) {
	v, _ := newTestView(t)
	// Must not panic with no hooks installed.
	v.PointerPress(10, 10)
	v.PointerMove(20, 20)
	v.PointerRelease(30, 30)
}
