package badge

import (
	"fmt"

	"github.com/iconforge/badge/internal/geom"
	"github.com/iconforge/badge/internal/shape"
	"github.com/iconforge/badge/internal/svgdom"
)

// geometryAttrs are the shape-defining attributes stripped when an
// element is replaced by a computed path. Presentation attributes are
// carried over so inherited paint keeps resolving the same way.
var geometryAttrs = map[string]bool{
	"cx": true, "cy": true, "r": true,
	"rx": true, "ry": true,
	"x": true, "y": true, "width": true, "height": true,
	"x1": true, "y1": true, "x2": true, "y2": true,
	"points": true, "d": true,
	"fill-rule": true, "clip-rule": true,
	"pathLength": true,
}

// attrBadgeIndex marks the group an earlier badge was rendered into,
// so later cutting passes skip it: badge layers are clipped through,
// never re-subtracted.
const attrBadgeIndex = "data-badge-index"

// clipRegistry hands out clip-path references against the keep region
// of one badge: the canvas with the notch as an even-odd hole. The
// shared clip lives in root coordinates; primitives under a transform
// get a dedicated clip mapped into their local space.
type clipRegistry struct {
	index    int
	canvasVP geom.Rect
	notch    *geom.Path

	defs      []*svgdom.Element
	hasShared bool
	seq       int
}

func (r *clipRegistry) sharedID() string {
	return fmt.Sprintf("badge-keep-%d", r.index)
}

// ensureShared emits the root-coordinate keep-region clip once and
// returns its id.
func (r *clipRegistry) ensureShared() string {
	if !r.hasShared {
		r.hasShared = true
		r.defs = append(r.defs, r.clipPath(r.sharedID(), geom.Identity()))
	}
	return r.sharedID()
}

// local emits a keep-region clip mapped by inv into a primitive's
// local space and returns its id.
func (r *clipRegistry) local(inv geom.Matrix) string {
	if inv.IsIdentity() {
		return r.ensureShared()
	}
	r.seq++
	id := fmt.Sprintf("%s-%d", r.sharedID(), r.seq)
	r.defs = append(r.defs, r.clipPath(id, inv))
	return id
}

func (r *clipRegistry) clipPath(id string, m geom.Matrix) *svgdom.Element {
	keep := geom.Rectangle(r.canvasVP.Min.X, r.canvasVP.Min.Y, r.canvasVP.W(), r.canvasVP.H())
	keep.Append(r.notch)
	var region *geom.Path
	if m.IsIdentity() {
		region = keep
	} else {
		region = keep.Transform(m)
		keep.Release()
	}
	p := &svgdom.Element{Name: "path"}
	p.SetAttr("d", region.Data())
	p.SetAttr("clip-rule", "evenodd")
	region.Release()
	cp := &svgdom.Element{Name: "clipPath", Children: []svgdom.Node{p}}
	cp.SetAttr("id", id)
	return cp
}

// compositor cuts one badge's notch out of the base document.
type compositor struct {
	g     Geometry
	clips *clipRegistry

	notch       *geom.Path
	notchBounds geom.Rect
	changed     int
	skipped     int
}

// cut subtracts the notch from every renderable primitive under root,
// replacing affected elements in place. Non-intersecting elements are
// left byte-identical. Elements whose subtraction fails keep their
// original geometry behind a keep-region clip.
func (c *compositor) cut(root *svgdom.Element) {
	c.notchBounds = c.notch.Bounds()
	c.walk(root, geom.Identity(), shape.DefaultStyle().Override(root))
}

func (c *compositor) walk(el *svgdom.Element, tf geom.Matrix, st shape.Style) {
	// Children are snapshotted because cutting replaces them in place.
	children := append([]svgdom.Node(nil), el.Children...)
	for _, n := range children {
		child, ok := n.(*svgdom.Element)
		if !ok {
			continue
		}
		if child.HasAttr(attrBadgeIndex) {
			continue
		}
		switch shape.KindOf(child.Name) {
		case shape.KindGroup:
			ctf, err := shape.ParseTransform(child.Attr("transform"))
			if err != nil {
				continue
			}
			c.walk(child, tf.Mul(ctf), st.Override(child))
		default:
			if p := shape.Import(child, tf, st); p != nil {
				c.cutPrimitive(el, p, tf)
				p.Release()
			}
		}
	}
}

// cutPrimitive rewrites one primitive with the notch removed. tf is
// the transform inherited from ancestors, excluding the primitive's
// own transform attribute.
func (c *compositor) cutPrimitive(parent *svgdom.Element, p *shape.Primitive, tf geom.Matrix) {
	if !p.Visible() {
		return
	}
	if !c.mayIntersect(p) {
		return
	}

	inv, ok := p.Transform.Invert()
	if !ok {
		Logger().Warn("skipping primitive with singular transform", "element", p.El.Name)
		return
	}
	// Two fill cases the boolean engine cannot reproduce keep the
	// original paint behind a clip instead: open contours auto-close
	// when painted, and even-odd compounds settle to a different shape
	// under the engine's nonzero winding interpretation.
	if p.Style.HasFill() &&
		(!p.Closed || (p.Style.FillRule == geom.EvenOdd && p.Local.IsCompound())) {
		c.clip(parent, p, inv, tf)
		return
	}

	var arena geom.Arena
	defer arena.Release()
	localNotch := arena.Track(c.notch.Transform(inv))

	var fillPart, ringPart *geom.Path
	if p.Style.HasFill() && p.Closed {
		res, err := c.g.Subtract(p.Local, localNotch)
		if err != nil {
			Logger().Warn("fill subtraction failed, clipping instead",
				"element", p.El.Name, "err", err)
			c.clip(parent, p, inv, tf)
			return
		}
		fillPart = arena.Track(res)
	}
	if p.Style.HasStroke() {
		ring, err := strokeRing(c.g, p)
		if err == nil {
			arena.Track(ring)
			ringPart, err = c.g.Subtract(ring, localNotch)
			arena.Track(ringPart)
		}
		if err != nil {
			Logger().Warn("stroke subtraction failed, clipping instead",
				"element", p.El.Name, "err", err)
			c.clip(parent, p, inv, tf)
			return
		}
	}

	c.replace(parent, p, fillPart, ringPart)
}

// mayIntersect is a cheap bounding-box pretest in canvas coordinates.
// Primitives that cannot touch the notch stay byte-identical.
func (c *compositor) mayIntersect(p *shape.Primitive) bool {
	b := p.Local.Bounds()
	if p.Style.HasStroke() {
		b = b.Expand(p.Style.StrokeWidth / 2)
	}
	corners := [4]geom.Point{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Min.X, Y: b.Max.Y},
		{X: b.Max.X, Y: b.Max.Y},
	}
	box := geom.Rect{Min: p.Transform.Apply(corners[0]), Max: p.Transform.Apply(corners[0])}
	for _, pt := range corners[1:] {
		q := p.Transform.Apply(pt)
		if q.X < box.Min.X {
			box.Min.X = q.X
		}
		if q.X > box.Max.X {
			box.Max.X = q.X
		}
		if q.Y < box.Min.Y {
			box.Min.Y = q.Y
		}
		if q.Y > box.Max.Y {
			box.Max.Y = q.Y
		}
	}
	return box.Intersects(c.notchBounds)
}

// replace swaps the original element for up to two path elements: the
// cut fill first, the cut stroke ring second, preserving paint order.
// Both parts empty removes the element entirely.
func (c *compositor) replace(parent *svgdom.Element, p *shape.Primitive, fillPart, ringPart *geom.Path) {
	var repl []*svgdom.Element
	if fillPart != nil && !fillPart.Empty() {
		repl = append(repl, c.pathElement(p, fillPart, false))
	}
	if ringPart != nil && !ringPart.Empty() {
		repl = append(repl, c.pathElement(p, ringPart, true))
	}
	c.changed++
	if len(repl) == 0 {
		parent.RemoveChild(p.El)
		return
	}
	// The id may only appear once.
	nodes := make([]svgdom.Node, len(repl))
	for i, el := range repl {
		if i > 0 {
			el.DelAttr("id")
		}
		nodes[i] = el
	}
	// A translucent element must blend once: two sibling parts would
	// double-blend where the ring overlaps the fill, so the opacity
	// moves onto a shared group.
	if op := p.El.Attr("opacity"); op != "" && len(repl) > 1 {
		for _, el := range repl {
			el.DelAttr("opacity")
		}
		g := &svgdom.Element{Name: "g", Children: nodes}
		g.SetAttr("opacity", op)
		parent.ReplaceChild(p.El, g)
		return
	}
	parent.ReplaceChild(p.El, nodes...)
}

// pathElement builds the replacement path, carrying the original
// element's non-stroke, non-geometric attributes. Ring elements turn
// the stroke paint into fill paint; fill elements suppress any stroke
// (it re-appears as its own ring element, when it survives the cut).
func (c *compositor) pathElement(p *shape.Primitive, res *geom.Path, ring bool) *svgdom.Element {
	out := &svgdom.Element{Name: "path"}
	for _, a := range p.El.Attrs {
		if geometryAttrs[a.Key] || paintAttr(a.Key) {
			continue
		}
		out.SetAttr(a.Key, a.Value)
	}
	if ring {
		out.SetAttr("fill", p.Style.Stroke)
		if op := p.El.Attr("stroke-opacity"); op != "" {
			out.SetAttr("fill-opacity", op)
		}
		out.SetAttr("stroke", "none")
	} else {
		if f := p.El.Attr("fill"); f != "" {
			out.SetAttr("fill", f)
		}
		if op := p.El.Attr("fill-opacity"); op != "" {
			out.SetAttr("fill-opacity", op)
		}
		if p.Style.HasStroke() {
			// Suppress inherited stroke too, not just the attribute.
			out.SetAttr("stroke", "none")
		}
	}
	out.SetAttr("d", res.Data())
	if res.IsCompound() {
		out.SetAttr("fill-rule", "evenodd")
	}
	return out
}

// paintAttr lists the paint attributes handled explicitly when
// building a replacement element.
func paintAttr(key string) bool {
	switch key {
	case "fill", "fill-opacity", "stroke", "stroke-opacity",
		"stroke-width", "stroke-linejoin", "stroke-linecap",
		"stroke-dasharray", "stroke-dashoffset", "stroke-miterlimit":
		return true
	}
	return false
}

// clip keeps the original element and restricts it to the keep region.
// The clip reference goes on the element itself when free, mapped into
// its local space; an element that already carries a clip-path gets a
// wrapper group instead, whose space excludes the element's own
// transform.
func (c *compositor) clip(parent *svgdom.Element, p *shape.Primitive, inv geom.Matrix, tf geom.Matrix) {
	c.skipped++
	if !p.El.HasAttr("clip-path") {
		p.El.SetAttr("clip-path", "url(#"+c.clips.local(inv)+")")
		return
	}
	ancInv, ok := tf.Invert()
	if !ok {
		return
	}
	wrapper := &svgdom.Element{Name: "g"}
	wrapper.SetAttr("clip-path", "url(#"+c.clips.local(ancInv)+")")
	parent.WrapChild(p.El, wrapper)
}
