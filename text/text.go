// Package text renders short labels as badge markup: a character or
// two shaped into glyph outlines and wrapped in a backing plate, ready
// to hand to the compositor as a badge descriptor.
//
// Shaping runs through go-text/typesetting's HarfBuzz implementation,
// so kerning and ligatures apply even to two-letter labels. Outlines
// come from the sfnt tables via golang.org/x/image, already in the
// y-down orientation SVG uses.
package text

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// Font is one parsed font, usable concurrently. The same font data is
// parsed twice on purpose: go-text's tables drive shaping while the
// sfnt tables drive outline extraction, and the two libraries do not
// share a representation.
type Font struct {
	shaping *font.Font
	outline *sfnt.Font

	upem float64
}

// Parse parses TTF or OTF font data.
func Parse(data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font tables: %w", err)
	}
	return &Font{
		shaping: face.Font,
		outline: sf,
		upem:    float64(face.Upem()),
	}, nil
}

// UnitsPerEm returns the font's design grid resolution.
func (f *Font) UnitsPerEm() float64 { return f.upem }
