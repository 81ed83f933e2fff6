package text

import (
	"fmt"
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/iconforge/badge/internal/geom"
)

// LabelOptions style a label badge. Zero values take defaults.
type LabelOptions struct {
	// Size is the type size in badge units. Zero means 12.
	Size float64

	// Padding is the plate margin around the text. Zero means Size/4.
	Padding float64

	// CornerRadius rounds the plate. Zero means a third of the plate's
	// shorter side; negative means square corners.
	CornerRadius float64

	// Ink is the text paint. Empty means white.
	Ink string

	// Plate is the backing paint. Empty means #d93025.
	Plate string
}

func (o LabelOptions) size() float64 {
	if o.Size <= 0 {
		return 12
	}
	return o.Size
}

func (o LabelOptions) padding() float64 {
	if o.Padding <= 0 {
		return o.size() / 4
	}
	return o.Padding
}

func (o LabelOptions) ink() string {
	if o.Ink == "" {
		return "#ffffff"
	}
	return o.Ink
}

func (o LabelOptions) plate() string {
	if o.Plate == "" {
		return "#d93025"
	}
	return o.Plate
}

// Label renders a short text label onto a rounded plate and returns
// the badge markup. The markup carries its own viewBox, so it can go
// straight into a badge descriptor.
func Label(f *Font, label string, o LabelOptions) (string, error) {
	if f == nil {
		return "", fmt.Errorf("text: nil font")
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return "", fmt.Errorf("text: empty label")
	}

	size := o.size()
	glyphs := NewShaper().Shape(label, f, size)
	if len(glyphs) == 0 {
		return "", fmt.Errorf("text: label %q shaped to no glyphs", label)
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)
	metrics, err := f.outline.Metrics(&buf, ppem, xfont.HintingNone)
	if err != nil {
		return "", fmt.Errorf("text: font metrics: %w", err)
	}
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)

	var width float64
	for _, g := range glyphs {
		width = g.X + g.Advance
	}

	pad := o.padding()
	w := width + 2*pad
	h := ascent + descent + 2*pad
	baseline := pad + ascent

	ink := geom.NewPath()
	defer ink.Release()
	for _, g := range glyphs {
		if err := appendGlyph(ink, f, &buf, g, ppem, pad, baseline); err != nil {
			return "", err
		}
	}

	radius := o.CornerRadius
	if radius == 0 {
		s := w
		if h < s {
			s = h
		}
		radius = s / 3
	}
	if radius < 0 {
		radius = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`,
		geom.FormatCoord(w), geom.FormatCoord(h))
	fmt.Fprintf(&b, `<rect width="%s" height="%s" rx="%s" fill="%s"/>`,
		geom.FormatCoord(w), geom.FormatCoord(h), geom.FormatCoord(radius), o.plate())
	if !ink.Empty() {
		fmt.Fprintf(&b, `<path fill="%s" d="%s"/>`, o.ink(), ink.Data())
	}
	b.WriteString(`</svg>`)
	return b.String(), nil
}

// appendGlyph loads one glyph outline and appends it at its pen
// position. sfnt outlines are already y-down, matching SVG.
func appendGlyph(dst *geom.Path, f *Font, buf *sfnt.Buffer, g Glyph, ppem fixed.Int26_6, x0, baseline float64) error {
	segs, err := f.outline.LoadGlyph(buf, sfnt.GlyphIndex(g.GID), ppem, nil)
	if err != nil {
		return fmt.Errorf("text: load glyph %d: %w", g.GID, err)
	}
	dx := x0 + g.X
	dy := baseline + g.Y
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				dst.Close()
			}
			dst.MoveTo(fx(s.Args[0].X)+dx, fx(s.Args[0].Y)+dy)
			open = true
		case sfnt.SegmentOpLineTo:
			dst.LineTo(fx(s.Args[0].X)+dx, fx(s.Args[0].Y)+dy)
		case sfnt.SegmentOpQuadTo:
			dst.QuadTo(fx(s.Args[0].X)+dx, fx(s.Args[0].Y)+dy,
				fx(s.Args[1].X)+dx, fx(s.Args[1].Y)+dy)
		case sfnt.SegmentOpCubeTo:
			dst.CubicTo(fx(s.Args[0].X)+dx, fx(s.Args[0].Y)+dy,
				fx(s.Args[1].X)+dx, fx(s.Args[1].Y)+dy,
				fx(s.Args[2].X)+dx, fx(s.Args[2].Y)+dy)
		}
	}
	if open {
		dst.Close()
	}
	return nil
}

func fx(v fixed.Int26_6) float64 { return float64(v) / 64 }
