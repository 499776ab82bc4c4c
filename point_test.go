package drawview

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); !pointsEqual(got, Pt(4, 2), matrixEpsilon) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := p.Sub(q); !pointsEqual(got, Pt(2, 6), matrixEpsilon) {
		t.Errorf("Sub = %v, want (2, 6)", got)
	}
	if got := p.Mul(2); !pointsEqual(got, Pt(6, 8), matrixEpsilon) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := p.Length(); math.Abs(got-5) > matrixEpsilon {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.Distance(Pt(0, 0)); math.Abs(got-5) > matrixEpsilon {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointNormalize(t *testing.T) {
	got := Pt(3, 4).Normalize()
	if !pointsEqual(got, Pt(0.6, 0.8), matrixEpsilon) {
		t.Errorf("Normalize = %v, want (0.6, 0.8)", got)
	}
	if got := Pt(0, 0).Normalize(); !pointsEqual(got, Pt(0, 0), matrixEpsilon) {
		t.Errorf("Normalize of zero vector = %v, want (0, 0)", got)
	}
}

func TestPointPerp(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{"unit x", Pt(1, 0), Pt(0, -1)},
		{"unit y", Pt(0, 1), Pt(1, 0)},
		{"diagonal", Pt(2, 3), Pt(3, -2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Perp()
			if !pointsEqual(got, tt.want, matrixEpsilon) {
				t.Errorf("Perp(%v) = %v, want %v", tt.p, got, tt.want)
			}
			if dot := tt.p.Dot(got); math.Abs(dot) > matrixEpsilon {
				t.Errorf("Perp not orthogonal: dot = %v", dot)
			}
		})
	}
}

func TestPointLerp(t *testing.T) {
	a, b := Pt(0, 10), Pt(10, 0)
	if got := a.Lerp(b, 0); !pointsEqual(got, a, matrixEpsilon) {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !pointsEqual(got, b, matrixEpsilon) {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); !pointsEqual(got, Pt(5, 5), matrixEpsilon) {
		t.Errorf("Lerp(0.5) = %v, want (5, 5)", got)
	}
}
