package badge

import (
	"errors"

	"github.com/iconforge/badge/internal/geom"
	"github.com/iconforge/badge/internal/shape"
)

// strokeRing returns the filled region painted by a primitive's
// stroke, in local coordinates. Circles and sharp-cornered rects get
// exact analytic rings (two concentric contours with opposite winding,
// no boolean work at all); everything else goes through the engine's
// stroke offset, or its circle-buffer approximation when the engine
// withholds that capability. The caller owns the result.
func strokeRing(g Geometry, p *shape.Primitive) (*geom.Path, error) {
	half := p.Style.StrokeWidth / 2
	if half <= 0 {
		return geom.NewPath(), nil
	}
	switch {
	case p.Kind == shape.KindCircle:
		return circleRing(p.CX, p.CY, p.R, half), nil
	case p.Kind == shape.KindRect && p.RX == 0 && p.Style.Join == geom.JoinMiter:
		return rectRing(p.X, p.Y, p.W, p.H, half), nil
	}
	ring, err := g.OffsetStroke(p.Local, half, p.Style.Join, p.Style.Cap)
	if errors.Is(err, ErrOffsetUnsupported) {
		return approxStrokeRing(g, p.Local, half)
	}
	return ring, err
}

// circleRing is the annulus between radii r-half and r+half. The inner
// contour is reversed so a nonzero fill leaves the hole open. A stroke
// wider than the diameter covers the whole disc.
func circleRing(cx, cy, r, half float64) *geom.Path {
	outer := geom.Circle(cx, cy, r+half)
	if r-half <= 0 {
		return outer
	}
	inner := geom.Circle(cx, cy, r-half)
	rev := inner.Reverse()
	inner.Release()
	outer.Append(rev)
	rev.Release()
	return outer
}

// rectRing is the frame between the rect grown and shrunk by half.
// Valid for miter joins only, where the stroked corner stays square.
func rectRing(x, y, w, h, half float64) *geom.Path {
	outer := geom.Rectangle(x-half, y-half, w+2*half, h+2*half)
	iw, ih := w-2*half, h-2*half
	if iw <= 0 || ih <= 0 {
		return outer
	}
	inner := geom.Rectangle(x+half, y+half, iw, ih)
	rev := inner.Reverse()
	inner.Release()
	outer.Append(rev)
	rev.Release()
	return outer
}

// footprint returns the primitive's opaque footprint in canvas
// coordinates: the filled interior united with the stroke ring, as the
// silhouette builder needs it. Closed stroked shapes take the cheaper
// equivalent route of one outward offset by half the stroke width. The
// caller owns the result; a nil result with nil error means the
// primitive paints nothing.
func footprint(g Geometry, p *shape.Primitive, offset offsetFunc) (*geom.Path, error) {
	var local *geom.Path
	switch {
	case p.Closed && p.Style.HasStroke():
		grown, err := offset(g, p.Local, p.Style.StrokeWidth/2, p.Style.Join)
		if err != nil {
			return nil, err
		}
		local = grown
	case p.Style.HasFill() && p.Closed:
		local = p.Local.Copy()
	case p.Style.HasStroke():
		ring, err := strokeRing(g, p)
		if err != nil {
			return nil, err
		}
		if ring.Empty() {
			ring.Release()
			return nil, nil
		}
		local = ring
	default:
		return nil, nil
	}
	out := local.Transform(p.Transform)
	local.Release()
	return out, nil
}

// offsetFunc abstracts over the engine's native outward offset and the
// circle-buffer approximation used when that capability is withheld.
type offsetFunc func(g Geometry, p *geom.Path, distance float64, join geom.LineJoin) (*geom.Path, error)

func nativeOffset(g Geometry, p *geom.Path, distance float64, join geom.LineJoin) (*geom.Path, error) {
	return g.Offset(p, distance, join)
}

func bufferOffset(g Geometry, p *geom.Path, distance float64, _ geom.LineJoin) (*geom.Path, error) {
	return approxOffset(g, p, distance)
}
