package badge

import (
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"

	"github.com/iconforge/badge/internal/geom"
	"github.com/iconforge/badge/internal/svgdom"
)

// Placement is the resolved position of one badge on the canvas: a
// uniform scale plus a translation, and the frame the scaled badge
// occupies in canvas coordinates.
type Placement struct {
	Scale  float64
	Tx, Ty float64
	Frame  geom.Rect
}

// Matrix returns the badge-to-canvas transform.
func (p Placement) Matrix() geom.Matrix {
	return geom.Translate(p.Tx, p.Ty).Mul(geom.Scale(p.Scale, p.Scale))
}

// computePlacement fits the badge viewport into the canvas viewport:
// the badge is scaled so its longer side covers the target fraction of
// the canvas side, multiplied by the descriptor's scale, then anchored
// and shifted by the descriptor's offsets.
func computePlacement(canvasVP, badgeVP geom.Rect, d Descriptor, fraction float64) (Placement, bool) {
	ax, ay, ok := d.Anchor.fractions()
	if !ok {
		return Placement{}, false
	}
	bw, bh := badgeVP.W(), badgeVP.H()
	if bw <= 0 || bh <= 0 {
		return Placement{}, false
	}
	side := canvasVP.W()
	if h := canvasVP.H(); h < side {
		side = h
	}
	target := fraction * side
	scale := target / bw
	if s := target / bh; s < scale {
		scale = s
	}
	scale *= d.scale()

	sw, sh := bw*scale, bh*scale
	tx := canvasVP.Min.X + ax*(canvasVP.W()-sw) - badgeVP.Min.X*scale + d.OffsetX
	ty := canvasVP.Min.Y + ay*(canvasVP.H()-sh) - badgeVP.Min.Y*scale + d.OffsetY
	return Placement{
		Scale: scale,
		Tx:    tx,
		Ty:    ty,
		Frame: geom.RectXYWH(tx+badgeVP.Min.X*scale, ty+badgeVP.Min.Y*scale, sw, sh),
	}, true
}

// viewportOf resolves the viewport of an svg element: its viewBox if
// present and well formed, otherwise its width and height attributes,
// otherwise a 16x16 default.
func viewportOf(el *svgdom.Element) geom.Rect {
	if vb, ok := parseViewBox(el.Attr("viewBox")); ok {
		return vb
	}
	w := lengthAttr(el, "width")
	h := lengthAttr(el, "height")
	if w > 0 && h > 0 {
		return geom.RectXYWH(0, 0, w, h)
	}
	return geom.RectXYWH(0, 0, 16, 16)
}

// parseViewBox parses an SVG viewBox value. Zero or negative extents
// make the viewBox unusable.
func parseViewBox(s string) (geom.Rect, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return geom.Rect{}, false
	}
	var vals [4]float64
	for i, f := range fields {
		v, n := pstrconv.ParseFloat([]byte(f))
		if n != len(f) {
			return geom.Rect{}, false
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return geom.Rect{}, false
	}
	return geom.RectXYWH(vals[0], vals[1], vals[2], vals[3]), true
}

// lengthAttr reads a numeric attribute, tolerating a px suffix.
// Percentages and other units resolve to zero.
func lengthAttr(el *svgdom.Element, key string) float64 {
	return parseLength(el.Attr(key))
}

func parseLength(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return 0
	}
	v, n := pstrconv.ParseFloat([]byte(s))
	if n != len(s) {
		return 0
	}
	return v
}
