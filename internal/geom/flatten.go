package geom

// Flatten converts the path to polylines, one per contour, with curves
// subdivided until they deviate from the polyline by at most tolerance.
// Closed contours repeat their first point at the end.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	var out [][]Point
	for _, c := range p.split() {
		line := flattenContour(c, tolerance)
		if len(line) > 1 {
			out = append(out, line)
		}
	}
	return out
}

func flattenContour(c contour, tolerance float64) []Point {
	var line []Point
	var cur Point
	pi := 0
	for _, v := range c.verbs {
		n := v.pointCount()
		switch v {
		case VerbMove:
			cur = c.pts[pi]
			line = append(line, cur)
		case VerbLine:
			cur = c.pts[pi]
			line = append(line, cur)
		case VerbQuad:
			line = flattenQuad(line, cur, c.pts[pi], c.pts[pi+1], tolerance*tolerance)
			cur = c.pts[pi+1]
		case VerbCubic:
			line = flattenCubic(line, cur, c.pts[pi], c.pts[pi+1], c.pts[pi+2], tolerance*tolerance)
			cur = c.pts[pi+2]
		}
		pi += n
	}
	if c.closed && len(line) > 1 && line[len(line)-1] != line[0] {
		line = append(line, line[0])
	}
	return line
}

// flattenQuad subdivides a quadratic Bezier until the control point is
// within tolerance of the chord midpoint.
func flattenQuad(line []Point, p0, ctrl, p1 Point, tolSq float64) []Point {
	mid := p0.Lerp(p1, 0.5)
	if ctrl.Sub(mid).LengthSquared() <= tolSq {
		return append(line, p1)
	}
	c0 := p0.Lerp(ctrl, 0.5)
	c1 := ctrl.Lerp(p1, 0.5)
	m := c0.Lerp(c1, 0.5)
	line = flattenQuad(line, p0, c0, m, tolSq)
	return flattenQuad(line, m, c1, p1, tolSq)
}

// flattenCubic subdivides a cubic Bezier using the max distance of the
// control points to the chord as the flatness metric.
func flattenCubic(line []Point, p0, c1, c2, p1 Point, tolSq float64) []Point {
	d1 := c1.Sub(p0.Lerp(p1, 1.0/3.0)).LengthSquared()
	d2 := c2.Sub(p0.Lerp(p1, 2.0/3.0)).LengthSquared()
	if d1 <= tolSq && d2 <= tolSq {
		return append(line, p1)
	}
	ab := p0.Lerp(c1, 0.5)
	bc := c1.Lerp(c2, 0.5)
	cd := c2.Lerp(p1, 0.5)
	abc := ab.Lerp(bc, 0.5)
	bcd := bc.Lerp(cd, 0.5)
	m := abc.Lerp(bcd, 0.5)
	line = flattenCubic(line, p0, ab, abc, m, tolSq)
	return flattenCubic(line, m, bcd, cd, p1, tolSq)
}
