// Package geom holds the neutral 2D geometry types shared by the badge
// compositing pipeline: points, affine matrices, rectangles, and a
// mutable multi-contour path with SVG path-data emission.
//
// Paths produced by boolean and offset operations are short-lived. To
// keep the working set bounded across the hundreds of intermediate
// results a single compositing run can produce, paths are allocated
// from a pool and must be returned with Release once consumed. The
// Arena type batches that discipline per operation batch.
package geom

// LineCap is the shape of stroke endpoints.
type LineCap uint8

const (
	// CapButt ends the stroke exactly at the endpoint.
	CapButt LineCap = iota

	// CapRound ends the stroke with a semicircle.
	CapRound

	// CapSquare extends the stroke half a width beyond the endpoint.
	CapSquare
)

// String returns the SVG name of the cap style.
func (c LineCap) String() string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin is the shape of stroke corners.
type LineJoin uint8

const (
	// JoinMiter produces sharp corners, limited by the miter limit.
	JoinMiter LineJoin = iota

	// JoinRound produces circular arcs at corners.
	JoinRound

	// JoinBevel cuts corners with a straight line.
	JoinBevel
)

// String returns the SVG name of the join style.
func (j LineJoin) String() string {
	switch j {
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// FillRule selects how self-intersecting outlines are filled.
type FillRule uint8

const (
	// NonZero fills points with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills points crossed by an odd number of contours.
	EvenOdd
)

// String returns the SVG name of the fill rule.
func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// ParseFillRule maps an SVG fill-rule attribute value to a FillRule.
// Unknown values map to NonZero, the SVG default.
func ParseFillRule(s string) FillRule {
	if s == "evenodd" {
		return EvenOdd
	}
	return NonZero
}
