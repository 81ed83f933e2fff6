package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Glyph is one shaped glyph: its id and pen position in user units at
// the requested size.
type Glyph struct {
	GID     uint16
	X, Y    float64
	Advance float64
}

// Shaper converts label strings into positioned glyphs. It is safe for
// concurrent use: HarfbuzzShaper instances carry mutable buffers and
// are pooled per call.
type Shaper struct {
	pool sync.Pool
}

// NewShaper returns a ready Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
}

// Shape lays out the label left to right at the given size and
// returns the glyphs with their pen positions.
func (s *Shaper) Shape(label string, f *Font, size float64) []Glyph {
	if label == "" || f == nil || size <= 0 {
		return nil
	}
	runes := []rune(label)
	// font.Face is not safe for concurrent use; one per call is cheap,
	// it only wraps the shared read-only Font.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.shaping),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	glyphs := make([]Glyph, 0, len(out.Glyphs))
	var x float64
	for _, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs = append(glyphs, Glyph{
			GID:     uint16(g.GlyphID),
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		})
		x += adv
	}
	return glyphs
}

// detectScript picks the script of the first non-space rune. Labels
// are a handful of characters, so one script per label is enough.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
