package badge

import (
	"github.com/iconforge/badge/internal/geom"
)

// approxTolerance controls how finely contours are flattened before
// buffering. Coarser than the boolean tolerance: the buffer discs
// dominate the error anyway.
const approxTolerance = 0.05

// approxOffset grows a closed path outward by distance using boolean
// unions only: the path is flattened, and a disc is planted at every
// vertex with a quad spanning each edge, all united with the original.
// This is the gap-expansion route for engines whose offset capability
// is withheld.
//
// Only outward offsets are supported; distance <= 0 returns a plain
// copy. The caller owns the result.
func approxOffset(g Geometry, p *geom.Path, distance float64) (*geom.Path, error) {
	if distance <= 0 {
		return p.Copy(), nil
	}
	buffers := stampBuffers(p, distance)
	buffers = append(buffers, p.Copy())
	return treeUnite(g, buffers)
}

// approxStrokeRing approximates the region painted by a stroke of
// width 2*halfWidth as the union of the vertex discs and edge quads
// alone. Caps and joins come out round regardless of the style, which
// is the accepted error of this mode.
func approxStrokeRing(g Geometry, p *geom.Path, halfWidth float64) (*geom.Path, error) {
	if halfWidth <= 0 {
		return geom.NewPath(), nil
	}
	buffers := stampBuffers(p, halfWidth)
	if len(buffers) == 0 {
		return geom.NewPath(), nil
	}
	return treeUnite(g, buffers)
}

// stampBuffers flattens p and returns a disc per vertex plus a quad
// per edge, each of radius d.
func stampBuffers(p *geom.Path, d float64) []*geom.Path {
	var buffers []*geom.Path
	for _, pts := range p.Flatten(approxTolerance) {
		for i, pt := range pts {
			// Closed contours repeat the first point; skip its
			// duplicate disc.
			if i == len(pts)-1 && pt == pts[0] && len(pts) > 1 {
				continue
			}
			buffers = append(buffers, geom.Circle(pt.X, pt.Y, d))
		}
		for i := 0; i+1 < len(pts); i++ {
			if q := edgeQuad(pts[i], pts[i+1], d); q != nil {
				buffers = append(buffers, q)
			}
		}
	}
	return buffers
}

// edgeQuad returns the rectangle of half-width d centered on the edge
// a..b, or nil for a degenerate edge.
func edgeQuad(a, b geom.Point, d float64) *geom.Path {
	dir := b.Sub(a)
	if dir.LengthSquared() == 0 {
		return nil
	}
	n := dir.Normalize().Perp().Mul(d)
	return geom.Polygon([]geom.Point{
		a.Add(n), b.Add(n), b.Sub(n), a.Sub(n),
	}, true)
}
