package geom

import (
	"math"
	"sync"
)

// Verb is a single path command.
type Verb uint8

const (
	// VerbMove starts a new contour at a point.
	VerbMove Verb = iota

	// VerbLine draws a line to a point.
	VerbLine

	// VerbQuad draws a quadratic Bezier curve (control, end).
	VerbQuad

	// VerbCubic draws a cubic Bezier curve (control1, control2, end).
	VerbCubic

	// VerbClose closes the current contour.
	VerbClose
)

// pointCount returns the number of points each verb consumes.
func (v Verb) pointCount() int {
	switch v {
	case VerbQuad:
		return 2
	case VerbCubic:
		return 3
	case VerbClose:
		return 0
	default:
		return 1
	}
}

// Path is a mutable sequence of contours. A path with more than one
// VerbMove is compound; winding of the individual contours then decides
// filled versus hollow regions under the active fill rule.
type Path struct {
	verbs []Verb
	pts   []Point

	start   Point
	current Point
}

var pathPool = sync.Pool{
	New: func() any {
		return &Path{
			verbs: make([]Verb, 0, 16),
			pts:   make([]Point, 0, 32),
		}
	},
}

// NewPath returns an empty path from the pool.
func NewPath() *Path {
	return pathPool.Get().(*Path)
}

// Release resets the path and returns it to the pool. The caller must
// not use the path afterwards. Intermediate results of boolean and
// offset operations are released as soon as a later operation has
// consumed them; only the final kept path of a batch survives.
func (p *Path) Release() {
	if p == nil {
		return
	}
	p.verbs = p.verbs[:0]
	p.pts = p.pts[:0]
	p.start = Point{}
	p.current = Point{}
	pathPool.Put(p)
}

// Empty returns true if the path has no drawing commands.
func (p *Path) Empty() bool {
	if p == nil {
		return true
	}
	for _, v := range p.verbs {
		if v != VerbMove && v != VerbClose {
			return false
		}
	}
	return true
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.verbs = append(p.verbs, VerbMove)
	p.pts = append(p.pts, pt)
	p.start = pt
	p.current = pt
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.verbs = append(p.verbs, VerbLine)
	p.pts = append(p.pts, pt)
	p.current = pt
}

// QuadTo draws a quadratic Bezier curve to (x, y) with control (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.verbs = append(p.verbs, VerbQuad)
	p.pts = append(p.pts, Pt(cx, cy), Pt(x, y))
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve to (x, y) with controls
// (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verbs = append(p.verbs, VerbCubic)
	p.pts = append(p.pts, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
	p.current = Pt(x, y)
}

// Close closes the current contour.
func (p *Path) Close() {
	p.verbs = append(p.verbs, VerbClose)
	p.current = p.start
}

// Copy returns an independent copy of the path.
func (p *Path) Copy() *Path {
	q := NewPath()
	q.verbs = append(q.verbs, p.verbs...)
	q.pts = append(q.pts, p.pts...)
	q.start = p.start
	q.current = p.current
	return q
}

// Append adds all contours of q to p. The result is compound if both
// paths contribute contours. q is not modified.
func (p *Path) Append(q *Path) {
	if q == nil {
		return
	}
	p.verbs = append(p.verbs, q.verbs...)
	p.pts = append(p.pts, q.pts...)
	p.start = q.start
	p.current = q.current
}

// ContourCount returns the number of contours (VerbMove commands).
func (p *Path) ContourCount() int {
	n := 0
	for _, v := range p.verbs {
		if v == VerbMove {
			n++
		}
	}
	return n
}

// IsCompound returns true if the path has more than one contour.
func (p *Path) IsCompound() bool {
	return p.ContourCount() > 1
}

// HasOpenContour returns true if any contour is not explicitly closed.
func (p *Path) HasOpenContour() bool {
	open := false
	seen := false
	for _, v := range p.verbs {
		switch v {
		case VerbMove:
			if seen && open {
				return true
			}
			seen = true
			open = true
		case VerbClose:
			open = false
		}
	}
	return seen && open
}

// Transform returns a new path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	q := NewPath()
	q.verbs = append(q.verbs, p.verbs...)
	if cap(q.pts) < len(p.pts) {
		q.pts = make([]Point, len(p.pts))
	} else {
		q.pts = q.pts[:len(p.pts)]
	}
	for i, pt := range p.pts {
		q.pts[i] = m.Apply(pt)
	}
	q.start = m.Apply(p.start)
	q.current = m.Apply(p.current)
	return q
}

// Reverse returns a new path with every contour reversed. Reversal
// flips the winding direction, which is how analytic rings punch their
// inner hole without boolean subtraction.
func (p *Path) Reverse() *Path {
	out := NewPath()
	for _, c := range p.split() {
		c.appendReversed(out)
	}
	return out
}

// Bounds returns the control-polygon bounding box of the path. Control
// points of curves lie outside the curve, so the box is conservative;
// the compositor only uses it for intersection pretests.
func (p *Path) Bounds() Rect {
	if p == nil || len(p.pts) == 0 {
		return Rect{}
	}
	bbox := Rect{
		Min: Pt(math.MaxFloat64, math.MaxFloat64),
		Max: Pt(-math.MaxFloat64, -math.MaxFloat64),
	}
	for _, pt := range p.pts {
		bbox = bbox.include(pt)
	}
	return bbox
}

// contour is one contour of a path, used during reversal and flattening.
type contour struct {
	verbs  []Verb
	pts    []Point
	closed bool
}

// split copies the path into its individual contours.
func (p *Path) split() []contour {
	var out []contour
	var cur contour
	flush := func() {
		if len(cur.verbs) > 0 {
			out = append(out, cur)
		}
		cur = contour{}
	}
	pi := 0
	for _, v := range p.verbs {
		n := v.pointCount()
		switch v {
		case VerbMove:
			flush()
			cur.verbs = append(cur.verbs, v)
			cur.pts = append(cur.pts, p.pts[pi])
		case VerbClose:
			cur.closed = true
			flush()
		default:
			cur.verbs = append(cur.verbs, v)
			cur.pts = append(cur.pts, p.pts[pi:pi+n]...)
		}
		pi += n
	}
	flush()
	return out
}

// appendReversed writes the contour in reverse direction onto dst.
func (c contour) appendReversed(dst *Path) {
	if len(c.verbs) == 0 {
		return
	}
	// Walk forward once to record the start point of every verb.
	starts := make([]Point, len(c.verbs))
	var cur Point
	pi := 0
	for i, v := range c.verbs {
		starts[i] = cur
		n := v.pointCount()
		if n > 0 {
			cur = c.pts[pi+n-1]
		}
		pi += n
	}
	dst.MoveTo(cur.X, cur.Y)
	pi = len(c.pts)
	for i := len(c.verbs) - 1; i >= 0; i-- {
		v := c.verbs[i]
		n := v.pointCount()
		pi -= n
		switch v {
		case VerbLine:
			dst.LineTo(starts[i].X, starts[i].Y)
		case VerbQuad:
			ctrl := c.pts[pi]
			dst.QuadTo(ctrl.X, ctrl.Y, starts[i].X, starts[i].Y)
		case VerbCubic:
			c1, c2 := c.pts[pi], c.pts[pi+1]
			dst.CubicTo(c2.X, c2.Y, c1.X, c1.Y, starts[i].X, starts[i].Y)
		}
	}
	if c.closed {
		dst.Close()
	}
}
