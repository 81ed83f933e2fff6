package badge

import (
	"github.com/iconforge/badge/internal/geom"
	"github.com/iconforge/badge/internal/shape"
	"github.com/iconforge/badge/internal/svgdom"
)

// silhouette computes the badge's notch shape in canvas coordinates:
// the union of every visible primitive's footprint, mapped through the
// placement transform, then grown by the gap so the badge floats in
// clear space.
//
// A nil result with nil error means the badge paints no geometry the
// silhouette can be built from; the caller then places the badge
// without cutting.
func silhouette(g Geometry, offset offsetFunc, badgeRoot *svgdom.Element, pl Placement, gap float64) (*geom.Path, error) {
	var (
		parts   []*geom.Path
		walkErr error
	)
	shape.Walk(badgeRoot, func(p *shape.Primitive) bool {
		defer p.Release()
		fp, err := footprint(g, p, offset)
		if err != nil {
			walkErr = err
			return false
		}
		if fp != nil && !fp.Empty() {
			parts = append(parts, fp)
		} else if fp != nil {
			fp.Release()
		}
		return true
	})
	if walkErr != nil {
		for _, p := range parts {
			p.Release()
		}
		return nil, walkErr
	}
	if len(parts) == 0 {
		return nil, nil
	}
	union, err := treeUnite(g, parts)
	if err != nil {
		return nil, err
	}
	placed := union.Transform(pl.Matrix())
	union.Release()
	if gap <= 0 {
		return placed, nil
	}
	grown, err := offset(g, placed, gap, geom.JoinRound)
	placed.Release()
	if err != nil {
		return nil, err
	}
	return grown, nil
}
