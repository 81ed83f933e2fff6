package geom

import "math"

// Matrix represents a 2D affine transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// which transforms a point as:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// In SVG transform-attribute terms, matrix(a b c d e f) maps to
// A=a, B=c, C=e, D=b, E=d, F=f.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix. The angle is in degrees, matching
// the SVG rotate() transform function.
func Rotate(deg float64) Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// RotateAbout creates a rotation around the point (x, y).
func RotateAbout(deg, x, y float64) Matrix {
	return Translate(x, y).Mul(Rotate(deg)).Mul(Translate(-x, -y))
}

// SkewX creates a skew along the x axis. The angle is in degrees.
func SkewX(deg float64) Matrix {
	return Matrix{A: 1, B: math.Tan(deg * math.Pi / 180), E: 1}
}

// SkewY creates a skew along the y axis. The angle is in degrees.
func SkewY(deg float64) Matrix {
	return Matrix{A: 1, D: math.Tan(deg * math.Pi / 180), E: 1}
}

// Mul composes two transformations. The result applies other first and
// m second, so chaining parent.Mul(child) yields document-order
// composition where the rightmost (innermost) operation reaches the
// shape's local coordinates first.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity returns true for the identity transformation.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Invert returns the inverse transformation. ok is false for a
// singular matrix, which collapses geometry onto a line or point and
// cannot be mapped back.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if det == 0 {
		return Matrix{}, false
	}
	inv := Matrix{
		A: m.E / det,
		B: -m.B / det,
		D: -m.D / det,
		E: m.A / det,
	}
	inv.C = -(inv.A*m.C + inv.B*m.F)
	inv.F = -(inv.D*m.C + inv.E*m.F)
	return inv, true
}
