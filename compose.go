package badge

import (
	"fmt"
	"strconv"

	"github.com/iconforge/badge/internal/geom"
	"github.com/iconforge/badge/internal/svgdom"
)

// Compose renders the badges onto the icon markup and returns the
// composed markup. Badges are processed in order: each one cuts a
// silhouette-shaped notch through the base shapes and through
// everything earlier badges drew, then paints itself inside the freed
// region.
//
// Compose degrades instead of failing: a badge whose markup cannot be
// parsed is skipped, a primitive whose subtraction fails keeps its
// original geometry behind a keep-region clip, and a run without any
// boolean-geometry capability falls back to rectangular clip cutouts.
// The only error Compose returns is unparseable icon markup.
//
// With no badges the icon is returned unchanged.
func Compose(icon string, badges []Descriptor, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(badges) == 0 {
		if o.minify {
			return Minify(icon)
		}
		return icon, nil
	}
	if o.noGeometry {
		Logger().Warn("no geometry capability, using rectangular clip fallback")
		out, err := composeFallback(icon, badges, o)
		if err != nil {
			return "", err
		}
		if o.minify {
			return Minify(out)
		}
		return out, nil
	}

	engine := o.geometry
	if engine == nil {
		engine = NewGeometry()
	}
	if o.withholdOffset {
		engine = withoutOffset{engine}
	}
	offset := nativeOffset
	if !offsetCapable(engine) {
		Logger().Warn("offset capability unavailable, using circle-buffer approximation")
		offset = bufferOffset
	}

	root, err := svgdom.Parse(icon)
	if err != nil {
		return "", fmt.Errorf("badge: parse icon: %w", err)
	}
	canvasVP := viewportOf(root)

	var layers []*svgdom.Element
	for i, d := range badges {
		layers = composeOne(root, canvasVP, i, d, layers, engine, offset, o)
	}

	out := root.String()
	if o.minify {
		return Minify(out)
	}
	return out, nil
}

// composeOne runs the full pipeline for one badge and returns the
// updated layer stack. A badge that cannot contribute anything leaves
// the document and the stack untouched.
func composeOne(root *svgdom.Element, canvasVP geom.Rect, index int, d Descriptor,
	layers []*svgdom.Element, engine Geometry, offset offsetFunc, o options) []*svgdom.Element {

	log := Logger().With("badge", index)

	badgeRoot, err := svgdom.Parse(d.Markup)
	if err != nil {
		log.Warn("skipping badge with unparseable markup", "err", err)
		return layers
	}
	content := badgeContent(badgeRoot)
	if len(content) == 0 {
		log.Warn("skipping badge with no content")
		return layers
	}

	pl, ok := computePlacement(canvasVP, viewportOf(badgeRoot), d, o.targetFraction)
	if !ok {
		log.Warn("skipping badge", "anchor", string(d.Anchor))
		return layers
	}
	log.Debug("placed badge", "scale", pl.Scale, "tx", pl.Tx, "ty", pl.Ty)

	notch, err := silhouette(engine, offset, badgeRoot, pl, d.gap())
	if err != nil {
		// The notch shape is lost but its footprint is not: cut a
		// rectangle around the badge frame instead.
		log.Warn("silhouette failed, cutting rectangular notch", "err", err)
		f := pl.Frame.Expand(d.gap())
		notch = geom.Rectangle(f.Min.X, f.Min.Y, f.W(), f.H())
	}

	if notch != nil {
		clips := &clipRegistry{index: index, canvasVP: canvasVP, notch: notch}
		comp := &compositor{g: engine, clips: clips, notch: notch}
		comp.cut(root)
		log.Debug("cut base shapes", "changed", comp.changed, "clipped", comp.skipped)

		// Earlier badge layers are clipped through, not re-subtracted,
		// so their already-computed geometry survives verbatim.
		if len(layers) > 0 {
			ref := "url(#" + clips.ensureShared() + ")"
			for j, layer := range layers {
				wrapper := &svgdom.Element{Name: "g"}
				wrapper.SetAttr("clip-path", ref)
				root.WrapChild(layer, wrapper)
				layers[j] = wrapper
			}
		}
		for _, def := range clips.defs {
			defsOf(root).AppendChild(def)
		}
		notch.Release()
	}

	group := badgeGroup(badgeRoot, content, index, pl)
	root.AppendChild(group)
	return append(layers, group)
}

// badgeContent returns the nodes a badge renders: the children of its
// svg element, or the parsed element itself when the markup is a bare
// shape fragment.
func badgeContent(badgeRoot *svgdom.Element) []svgdom.Node {
	if badgeRoot.Name != "svg" {
		return []svgdom.Node{badgeRoot}
	}
	var content []svgdom.Node
	for _, n := range badgeRoot.Children {
		switch n.(type) {
		case *svgdom.Element, *svgdom.Text:
			content = append(content, n)
		}
	}
	return content
}

// viewportAttrs never transfer from a badge's svg element onto its
// placement group; everything else (paint, class, aria) carries over.
var viewportAttrs = map[string]bool{
	"xmlns": true, "xmlns:xlink": true, "version": true,
	"viewBox": true, "width": true, "height": true,
	"x": true, "y": true, "preserveAspectRatio": true,
	"id": true,
}

// badgeGroup wraps the badge content in a positioned group tagged with
// the badge index.
func badgeGroup(badgeRoot *svgdom.Element, content []svgdom.Node, index int, pl Placement) *svgdom.Element {
	g := &svgdom.Element{Name: "g", Children: content}
	if badgeRoot.Name == "svg" {
		for _, a := range badgeRoot.Attrs {
			if !viewportAttrs[a.Key] {
				g.SetAttr(a.Key, a.Value)
			}
		}
	}
	g.SetAttr(attrBadgeIndex, strconv.Itoa(index))
	g.SetAttr("transform", placementTransform(pl))
	return g
}

func placementTransform(pl Placement) string {
	t := "translate(" + geom.FormatCoord(pl.Tx) + " " + geom.FormatCoord(pl.Ty) + ")"
	if pl.Scale != 1 {
		t += " scale(" + geom.FormatCoord(pl.Scale) + ")"
	}
	return t
}

// defsOf returns the document's defs element, creating one as the
// first child if missing.
func defsOf(root *svgdom.Element) *svgdom.Element {
	for _, el := range root.Elements() {
		if el.Name == "defs" {
			return el
		}
	}
	defs := &svgdom.Element{Name: "defs"}
	root.PrependChild(defs)
	return defs
}
