package geom

import "math"

// Magic constant for circle approximation with cubic Beziers,
// 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// Circle returns a closed path approximating a circle with cubic
// Bezier curves.
func Circle(cx, cy, r float64) *Path {
	return EllipsePath(cx, cy, r, r)
}

// EllipsePath returns a closed path approximating an ellipse.
func EllipsePath(cx, cy, rx, ry float64) *Path {
	ox := rx * kappa
	oy := ry * kappa

	p := NewPath()
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
	return p
}

// Rectangle returns a closed rectangular path.
func Rectangle(x, y, w, h float64) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// RoundedRectangle returns a closed rectangle with corner radii rx, ry.
// Radii are clamped to half the respective dimension; zero radii
// produce a plain rectangle.
func RoundedRectangle(x, y, w, h, rx, ry float64) *Path {
	rx = math.Min(math.Max(rx, 0), w/2)
	ry = math.Min(math.Max(ry, 0), h/2)
	if rx == 0 && ry == 0 {
		return Rectangle(x, y, w, h)
	}
	if rx == 0 {
		rx = ry
	}
	if ry == 0 {
		ry = rx
	}
	ox := rx * kappa
	oy := ry * kappa

	p := NewPath()
	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.CubicTo(x+w-rx+ox, y, x+w, y+ry-oy, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.CubicTo(x+w, y+h-ry+oy, x+w-rx+ox, y+h, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.CubicTo(x+rx-ox, y+h, x, y+h-ry+oy, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.CubicTo(x, y+ry-oy, x+rx-ox, y, x+rx, y)
	p.Close()
	return p
}

// Polygon returns a path through the given points, closed when close
// is true. Fewer than two points yield an empty path.
func Polygon(pts []Point, close bool) *Path {
	p := NewPath()
	if len(pts) < 2 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	if close {
		p.Close()
	}
	return p
}

// Line returns an open two-point path.
func Line(x1, y1, x2, y2 float64) *Path {
	p := NewPath()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}
