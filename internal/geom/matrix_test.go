package geom

import (
	"math"
	"testing"
)

func pointNear(p, q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(2, -1), Pt(3, 4), Pt(5, 3)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate 90", Rotate(90), Pt(1, 0), Pt(0, 1)},
		{"rotate about", RotateAbout(180, 1, 1), Pt(2, 1), Pt(0, 1)},
		{"skew x 45", SkewX(45), Pt(0, 1), Pt(1, 1)},
		{"skew y 45", SkewY(45), Pt(1, 0), Pt(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Apply(tt.in)
			if !pointNear(got, tt.want, 1e-9) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixMulOrder(t *testing.T) {
	// Mul applies the right-hand operand first, matching SVG
	// transform lists where the rightmost entry reaches the shape
	// first.
	m := Translate(10, 0).Mul(Scale(2, 2))
	got := m.Apply(Pt(1, 1))
	if !pointNear(got, Pt(12, 2), 1e-9) {
		t.Errorf("translate*scale applied = %v, want (12,2)", got)
	}

	m = Scale(2, 2).Mul(Translate(10, 0))
	got = m.Apply(Pt(1, 1))
	if !pointNear(got, Pt(22, 2), 1e-9) {
		t.Errorf("scale*translate applied = %v, want (22,2)", got)
	}
}

func TestDataFormatting(t *testing.T) {
	p := NewPath()
	defer p.Release()
	p.MoveTo(0.50004, 1)
	p.LineTo(-0.00001, 2.25)
	p.Close()

	if got, want := p.Data(), "M0.5 1L0 2.25Z"; got != want {
		t.Errorf("Data() = %q, want %q", got, want)
	}
}

func TestParseDataRoundTrip(t *testing.T) {
	p, err := ParseData("M0 0L4 0 4 4H0Z")
	if err != nil {
		t.Fatalf("ParseData: %v", err)
	}
	defer p.Release()

	if p.ContourCount() != 1 {
		t.Fatalf("ContourCount = %d, want 1", p.ContourCount())
	}
	b := p.Bounds()
	if b.Min != Pt(0, 0) || b.Max != Pt(4, 4) {
		t.Errorf("bounds = %+v, want unit square x4", b)
	}
}

func TestParseDataCompound(t *testing.T) {
	p, err := ParseData("M0 0H8V8H0Z M2 2H6V6H2Z")
	if err != nil {
		t.Fatalf("ParseData: %v", err)
	}
	defer p.Release()
	if !p.IsCompound() {
		t.Error("two-contour data not reported as compound")
	}
}

func TestParseDataInvalid(t *testing.T) {
	if _, err := ParseData("M banana"); err == nil {
		t.Error("invalid path data did not error")
	}
}
