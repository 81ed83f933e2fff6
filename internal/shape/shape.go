// Package shape imports SVG shape elements into the neutral path
// representation. Each supported tag has exactly one conversion
// function; unsupported tags are skipped by the walker rather than
// treated as fatal.
package shape

import (
	"strings"

	"github.com/iconforge/badge/internal/geom"
	"github.com/iconforge/badge/internal/svgdom"
)

// Kind identifies a supported shape element.
type Kind uint8

const (
	// KindUnknown marks tags the importer does not understand.
	KindUnknown Kind = iota

	// KindGroup is a container; it contributes transform and style
	// but no geometry of its own.
	KindGroup

	// KindCircle is the circle element.
	KindCircle

	// KindRect is the rect element, with optional corner radii.
	KindRect

	// KindEllipse is the ellipse element.
	KindEllipse

	// KindPolygon is a closed point list.
	KindPolygon

	// KindPolyline is an open point list.
	KindPolyline

	// KindLine is a two-point segment.
	KindLine

	// KindPath is path data; more than one contour imports as a
	// compound path so boolean operations respect per-contour winding.
	KindPath
)

// KindOf maps a tag name to its Kind.
func KindOf(name string) Kind {
	switch name {
	case "g", "svg":
		return KindGroup
	case "circle":
		return KindCircle
	case "rect":
		return KindRect
	case "ellipse":
		return KindEllipse
	case "polygon":
		return KindPolygon
	case "polyline":
		return KindPolyline
	case "line":
		return KindLine
	case "path":
		return KindPath
	default:
		return KindUnknown
	}
}

// Style is the resolved paint state of a primitive after attribute
// inheritance. Colors stay opaque strings; the engine never interprets
// them beyond the "none" marker.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Join        geom.LineJoin
	Cap         geom.LineCap
	FillRule    geom.FillRule
}

// DefaultStyle returns the SVG initial paint state.
func DefaultStyle() Style {
	return Style{
		Fill:        "black",
		Stroke:      "none",
		StrokeWidth: 1,
	}
}

// Override applies the element's own paint on top of the inherited
// style: presentation attributes first, then declarations from the
// style attribute, which win per the CSS cascade.
func (s Style) Override(el *svgdom.Element) Style {
	decls := styleDecls(el.Attr("style"))
	get := func(key string) string {
		if v, ok := decls[key]; ok {
			return v
		}
		return el.Attr(key)
	}
	if v := get("fill"); v != "" {
		s.Fill = v
	}
	if v := get("stroke"); v != "" {
		s.Stroke = v
	}
	if v := get("stroke-width"); v != "" {
		s.StrokeWidth = valueFloat(v, s.StrokeWidth)
	}
	switch get("stroke-linejoin") {
	case "round":
		s.Join = geom.JoinRound
	case "bevel":
		s.Join = geom.JoinBevel
	case "miter":
		s.Join = geom.JoinMiter
	}
	switch get("stroke-linecap") {
	case "round":
		s.Cap = geom.CapRound
	case "square":
		s.Cap = geom.CapSquare
	case "butt":
		s.Cap = geom.CapButt
	}
	if v := get("fill-rule"); v != "" {
		s.FillRule = geom.ParseFillRule(v)
	}
	return s
}

// styleDecls splits a style attribute into property declarations.
// Later duplicates win. Returns nil when the attribute is absent.
func styleDecls(style string) map[string]string {
	if style == "" {
		return nil
	}
	decls := make(map[string]string)
	for _, d := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(d, ":")
		if !ok {
			continue
		}
		decls[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return decls
}

// HasFill returns true if the fill paints anything.
func (s Style) HasFill() bool { return s.Fill != "none" }

// HasStroke returns true if the stroke paints anything.
func (s Style) HasStroke() bool { return s.Stroke != "none" && s.StrokeWidth > 0 }

// Primitive is one imported shape: local geometry plus its fully
// resolved transform and paint state. The local path is untransformed;
// strokes are decomposed in local coordinates and transformed
// afterwards, matching how SVG paints strokes.
type Primitive struct {
	Kind      Kind
	El        *svgdom.Element
	Local     *geom.Path
	Transform geom.Matrix
	Style     Style

	// Closed is false for line, polyline and paths with an open
	// contour; open geometry never produces a fill interior.
	Closed bool

	// Analytic parameters, valid per Kind. The stroke decomposer uses
	// them for exact circle and rect rings.
	CX, CY, R          float64 // KindCircle
	X, Y, W, H, RX, RY float64 // KindRect
}

// Visible returns true if the primitive paints any geometry.
func (p *Primitive) Visible() bool {
	return p.Style.HasFill() || p.Style.HasStroke()
}

// Release frees the primitive's local path.
func (p *Primitive) Release() {
	if p.Local != nil {
		p.Local.Release()
		p.Local = nil
	}
}

// Import converts a single element into a Primitive using the
// inherited transform and style. It returns nil for container tags,
// unrecognized tags, and malformed geometry.
func Import(el *svgdom.Element, inherited geom.Matrix, parentStyle Style) *Primitive {
	kind := KindOf(el.Name)
	if kind == KindUnknown || kind == KindGroup {
		return nil
	}

	tf, err := ParseTransform(el.Attr("transform"))
	if err != nil {
		return nil
	}
	p := &Primitive{
		Kind:      kind,
		El:        el,
		Transform: inherited.Mul(tf),
		Style:     parentStyle.Override(el),
		Closed:    true,
	}

	switch kind {
	case KindCircle:
		p.CX = attrFloat(el, "cx", 0)
		p.CY = attrFloat(el, "cy", 0)
		p.R = attrFloat(el, "r", 0)
		if p.R <= 0 {
			return nil
		}
		p.Local = geom.Circle(p.CX, p.CY, p.R)

	case KindEllipse:
		cx := attrFloat(el, "cx", 0)
		cy := attrFloat(el, "cy", 0)
		rx := attrFloat(el, "rx", 0)
		ry := attrFloat(el, "ry", 0)
		if rx <= 0 || ry <= 0 {
			return nil
		}
		p.Local = geom.EllipsePath(cx, cy, rx, ry)

	case KindRect:
		p.X = attrFloat(el, "x", 0)
		p.Y = attrFloat(el, "y", 0)
		p.W = attrFloat(el, "width", 0)
		p.H = attrFloat(el, "height", 0)
		p.RX = attrFloat(el, "rx", 0)
		p.RY = attrFloat(el, "ry", 0)
		if p.RX == 0 && p.RY > 0 {
			p.RX = p.RY
		}
		if p.RY == 0 && p.RX > 0 {
			p.RY = p.RX
		}
		if p.W <= 0 || p.H <= 0 {
			return nil
		}
		p.Local = geom.RoundedRectangle(p.X, p.Y, p.W, p.H, p.RX, p.RY)

	case KindPolygon, KindPolyline:
		pts, err := ParsePoints(el.Attr("points"))
		if err != nil || len(pts) < 2 {
			return nil
		}
		closed := kind == KindPolygon
		p.Local = geom.Polygon(pts, closed)
		p.Closed = closed

	case KindLine:
		p.Local = geom.Line(
			attrFloat(el, "x1", 0), attrFloat(el, "y1", 0),
			attrFloat(el, "x2", 0), attrFloat(el, "y2", 0),
		)
		p.Closed = false

	case KindPath:
		local, err := geom.ParseData(el.Attr("d"))
		if err != nil || local.Empty() {
			if local != nil {
				local.Release()
			}
			return nil
		}
		p.Local = local
		p.Closed = !local.HasOpenContour()
	}

	return p
}

// nonRenderedContainers are subtrees the walker never descends into.
var nonRenderedContainers = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"symbol":   true,
	"marker":   true,
	"metadata": true,
	"title":    true,
	"desc":     true,
	"style":    true,
}

// Walk visits every renderable primitive under root in document order,
// accumulating transforms and styles through group elements. The root
// element itself contributes style but no transform (an svg viewport
// is not a transformable group). Walk stops early if visit returns
// false.
func Walk(root *svgdom.Element, visit func(*Primitive) bool) {
	walk(root, geom.Identity(), DefaultStyle().Override(root), visit)
}

func walk(el *svgdom.Element, tf geom.Matrix, st Style, visit func(*Primitive) bool) bool {
	for _, child := range el.Elements() {
		if nonRenderedContainers[child.Name] {
			continue
		}
		if KindOf(child.Name) == KindGroup {
			ctf, err := ParseTransform(child.Attr("transform"))
			if err != nil {
				continue
			}
			if !walk(child, tf.Mul(ctf), st.Override(child), visit) {
				return false
			}
			continue
		}
		if p := Import(child, tf, st); p != nil {
			if !visit(p) {
				return false
			}
		}
	}
	return true
}
