package shape

import (
	"errors"
	"fmt"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"

	"github.com/iconforge/badge/internal/geom"
	"github.com/iconforge/badge/internal/svgdom"
)

// ErrBadTransform is returned for malformed transform attributes.
var ErrBadTransform = errors.New("shape: malformed transform")

// ParseTransform parses an SVG transform list into a single matrix.
// Operations compose in document order, so the rightmost operation in
// the attribute string applies first to the shape's local coordinates.
// An empty string parses to the identity.
func ParseTransform(s string) (geom.Matrix, error) {
	m := geom.Identity()
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		clos := strings.IndexByte(rest, ')')
		if open < 0 || clos < open {
			return geom.Identity(), fmt.Errorf("%w: %q", ErrBadTransform, s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseNumberList(rest[open+1 : clos])
		if err != nil {
			return geom.Identity(), fmt.Errorf("%w: %q", ErrBadTransform, s)
		}
		op, err := transformOp(name, args)
		if err != nil {
			return geom.Identity(), err
		}
		m = m.Mul(op)
		rest = strings.TrimLeft(strings.TrimSpace(rest[clos+1:]), ",")
		rest = strings.TrimSpace(rest)
	}
	return m, nil
}

func transformOp(name string, args []float64) (geom.Matrix, error) {
	switch name {
	case "translate":
		switch len(args) {
		case 1:
			return geom.Translate(args[0], 0), nil
		case 2:
			return geom.Translate(args[0], args[1]), nil
		}
	case "scale":
		switch len(args) {
		case 1:
			return geom.Scale(args[0], args[0]), nil
		case 2:
			return geom.Scale(args[0], args[1]), nil
		}
	case "rotate":
		switch len(args) {
		case 1:
			return geom.Rotate(args[0]), nil
		case 3:
			return geom.RotateAbout(args[0], args[1], args[2]), nil
		}
	case "skewX":
		if len(args) == 1 {
			return geom.SkewX(args[0]), nil
		}
	case "skewY":
		if len(args) == 1 {
			return geom.SkewY(args[0]), nil
		}
	case "matrix":
		if len(args) == 6 {
			return geom.Matrix{
				A: args[0], B: args[2], C: args[4],
				D: args[1], E: args[3], F: args[5],
			}, nil
		}
	}
	return geom.Identity(), fmt.Errorf("%w: %s with %d args", ErrBadTransform, name, len(args))
}

// ParsePoints parses a polygon/polyline points attribute. Per the SVG
// error-handling rules, a trailing odd coordinate is dropped.
func ParsePoints(s string) ([]geom.Point, error) {
	nums, err := parseNumberList(s)
	if err != nil {
		return nil, err
	}
	pts := make([]geom.Point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		pts = append(pts, geom.Pt(nums[i], nums[i+1]))
	}
	return pts, nil
}

// parseNumberList scans comma/whitespace separated floats.
func parseNumberList(s string) ([]float64, error) {
	b := []byte(s)
	var out []float64
	i := 0
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\n', '\r', ',':
			i++
			continue
		}
		f, n := pstrconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("shape: invalid number at %q", s[i:])
		}
		out = append(out, f)
		i += n
	}
	return out, nil
}

// attrFloat reads a numeric attribute, accepting a px suffix and
// falling back to def when absent or malformed.
func attrFloat(el *svgdom.Element, key string, def float64) float64 {
	return valueFloat(el.Attr(key), def)
}

// valueFloat parses a numeric attribute or style declaration value.
func valueFloat(v string, def float64) float64 {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	if v == "" {
		return def
	}
	f, n := pstrconv.ParseFloat([]byte(v))
	if n != len(v) {
		return def
	}
	return f
}
