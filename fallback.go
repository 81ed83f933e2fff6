package badge

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iconforge/badge/internal/geom"
)

// The string fallback never parses the document tree: with no boolean
// geometry available there is nothing to cut with, so the run operates
// on the raw markup with tag-level matching only. Each badge punches a
// rectangular keep-region clip through everything already rendered and
// appends itself on top. Coarser than a silhouette notch, but valid
// markup on any engine.

var (
	svgOpenRe  = regexp.MustCompile(`(?is)<svg\b[^>]*>`)
	svgCloseRe = regexp.MustCompile(`(?is)</svg\s*>`)
	viewBoxRe  = regexp.MustCompile(`(?is)\bviewBox\s*=\s*["']([^"']*)["']`)
	widthRe    = regexp.MustCompile(`(?is)\bwidth\s*=\s*["']([^"']*)["']`)
	heightRe   = regexp.MustCompile(`(?is)\bheight\s*=\s*["']([^"']*)["']`)
)

// composeFallback is the rectangular-clip composition path.
func composeFallback(icon string, badges []Descriptor, o options) (string, error) {
	open := svgOpenRe.FindStringIndex(icon)
	if open == nil {
		return "", fmt.Errorf("badge: icon markup has no svg element")
	}
	closes := svgCloseRe.FindAllStringIndex(icon, -1)
	if len(closes) == 0 {
		return "", fmt.Errorf("badge: icon markup has no closing svg tag")
	}
	last := closes[len(closes)-1]

	openTag := icon[open[0]:open[1]]
	canvasVP := viewportFromTag(openTag)
	prefix := icon[:open[1]]
	body := icon[open[1]:last[0]]
	suffix := icon[last[0]:]

	for i, d := range badges {
		layer, ok := fallbackBadge(canvasVP, i, d, o)
		if !ok {
			continue
		}
		body = layer.clipOpen + body + layer.clipClose + layer.defs + layer.group
	}
	return prefix + body + suffix, nil
}

type fallbackLayer struct {
	defs      string
	clipOpen  string
	clipClose string
	group     string
}

// fallbackBadge renders one badge into markup fragments: a keep-region
// clip def, a clip group wrapping the existing content, and the badge
// group itself.
func fallbackBadge(canvasVP geom.Rect, index int, d Descriptor, o options) (fallbackLayer, bool) {
	log := Logger().With("badge", index)
	inner, badgeVP, ok := fallbackContent(d.Markup)
	if !ok {
		log.Warn("skipping badge with no content")
		return fallbackLayer{}, false
	}
	pl, ok := computePlacement(canvasVP, badgeVP, d, o.targetFraction)
	if !ok {
		log.Warn("skipping badge", "anchor", string(d.Anchor))
		return fallbackLayer{}, false
	}

	hole := pl.Frame.Expand(d.gap())
	keep := geom.Rectangle(canvasVP.Min.X, canvasVP.Min.Y, canvasVP.W(), canvasVP.H())
	holeRect := geom.Rectangle(hole.Min.X, hole.Min.Y, hole.W(), hole.H())
	keep.Append(holeRect)
	holeRect.Release()
	id := fmt.Sprintf("badge-keep-%d", index)
	defs := `<defs><clipPath id="` + id + `"><path d="` + keep.Data() +
		`" clip-rule="evenodd"/></clipPath></defs>`
	keep.Release()

	return fallbackLayer{
		defs:      defs,
		clipOpen:  `<g clip-path="url(#` + id + `)">`,
		clipClose: `</g>`,
		group: `<g ` + attrBadgeIndex + `="` + fmt.Sprint(index) +
			`" transform="` + placementTransform(pl) + `">` + inner + `</g>`,
	}, true
}

// fallbackContent extracts a badge's renderable markup and viewport
// from its raw string. Markup without an svg wrapper is used as is.
func fallbackContent(markup string) (inner string, vp geom.Rect, ok bool) {
	vp = geom.RectXYWH(0, 0, 16, 16)
	open := svgOpenRe.FindStringIndex(markup)
	if open == nil {
		inner = strings.TrimSpace(markup)
		return inner, vp, inner != ""
	}
	closes := svgCloseRe.FindAllStringIndex(markup, -1)
	if len(closes) == 0 {
		return "", vp, false
	}
	last := closes[len(closes)-1]
	vp = viewportFromTag(markup[open[0]:open[1]])
	inner = strings.TrimSpace(markup[open[1]:last[0]])
	return inner, vp, inner != ""
}

// viewportFromTag resolves a viewport from the attributes of a raw svg
// open tag, with the same precedence the tree path uses.
func viewportFromTag(tag string) geom.Rect {
	if m := viewBoxRe.FindStringSubmatch(tag); m != nil {
		if vb, ok := parseViewBox(m[1]); ok {
			return vb
		}
	}
	w, h := 0.0, 0.0
	if m := widthRe.FindStringSubmatch(tag); m != nil {
		w = parseLength(m[1])
	}
	if m := heightRe.FindStringSubmatch(tag); m != nil {
		h = parseLength(m[1])
	}
	if w > 0 && h > 0 {
		return geom.RectXYWH(0, 0, w, h)
	}
	return geom.RectXYWH(0, 0, 16, 16)
}
