package drawview

import (
	"math"
	"testing"
)

const matrixEpsilon = 1e-9

func matricesEqual(a, b Matrix, eps float64) bool {
	return math.Abs(a.A-b.A) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.C-b.C) < eps &&
		math.Abs(a.D-b.D) < eps &&
		math.Abs(a.E-b.E) < eps &&
		math.Abs(a.F-b.F) < eps
}

func pointsEqual(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 2), Pt(11, -3)},
		{"scale", Scale(2, 3), Pt(4, 5), Pt(8, 15)},
		{"flip y", Scale(1, -1), Pt(2, 7), Pt(2, -7)},
		{"scale then translate", Translate(100, 100).Multiply(Scale(2, 2)), Pt(3, 4), Pt(106, 108)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(100, 100)), Pt(3, 4), Pt(206, 208)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !pointsEqual(got, tt.want, matrixEpsilon) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrixTransformVector(t *testing.T) {
	// Vectors ignore the translation part.
	m := Translate(100, 200).Multiply(Scale(3, -3))
	got := m.TransformVector(Pt(1, 2))
	if want := Pt(3, -6); !pointsEqual(got, want, matrixEpsilon) {
		t.Errorf("TransformVector(1,2) = %v, want %v", got, want)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(7, -3)},
		{"scale", Scale(2.5, 0.5)},
		{"flip", Scale(4, -4)},
		{"composite", Translate(200, 150).Multiply(Scale(20, -20)).Multiply(Translate(-5, -5))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round := tt.m.Multiply(tt.m.Invert())
			if !matricesEqual(round, Identity(), 1e-6) {
				t.Errorf("m.Multiply(m.Invert()) = %+v, want identity", round)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	inv := Scale(0, 0).Invert()
	if !matricesEqual(inv, Identity(), matrixEpsilon) {
		t.Errorf("Invert of singular matrix = %+v, want identity fallback", inv)
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale 1,1", Scale(1, 1), true},
		{"translate", Translate(1, 0), false},
		{"scale", Scale(2, 2), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.want)
			}
		})
	}
}
