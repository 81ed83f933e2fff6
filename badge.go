package badge

// Anchor names one of nine fractional positions on the square canvas
// used to align a badge: corners, edge midpoints, and the center.
type Anchor string

// The nine supported anchors. The empty Anchor defaults to bottom-right.
const (
	AnchorTopLeft     Anchor = "tl"
	AnchorTop         Anchor = "t"
	AnchorTopRight    Anchor = "tr"
	AnchorLeft        Anchor = "l"
	AnchorCenter      Anchor = "c"
	AnchorRight       Anchor = "r"
	AnchorBottomLeft  Anchor = "bl"
	AnchorBottom      Anchor = "b"
	AnchorBottomRight Anchor = "br"
)

// fractions returns the anchor's fractional canvas position.
// ok is false for unknown anchor names.
func (a Anchor) fractions() (ax, ay float64, ok bool) {
	switch a {
	case AnchorTopLeft:
		return 0, 0, true
	case AnchorTop:
		return 0.5, 0, true
	case AnchorTopRight:
		return 1, 0, true
	case AnchorLeft:
		return 0, 0.5, true
	case AnchorCenter:
		return 0.5, 0.5, true
	case AnchorRight:
		return 1, 0.5, true
	case AnchorBottomLeft:
		return 0, 1, true
	case AnchorBottom:
		return 0.5, 1, true
	case AnchorBottomRight, "":
		return 1, 1, true
	}
	return 0, 0, false
}

// DefaultGap is the distance, in canvas units, by which a badge's
// silhouette is expanded to clear space around the badge artwork.
const DefaultGap = 1.0

// DefaultTargetFraction is the fraction of the canvas side a badge is
// scaled to occupy before the user scale factor applies.
const DefaultTargetFraction = 0.375

// Descriptor describes one badge to composite. Descriptors are
// processed in slice order; that order is both paint order and clip
// order (a later badge clips through earlier badge layers).
type Descriptor struct {
	// Markup is the badge's own SVG fragment. Its viewBox (or, failing
	// that, width/height attributes) declares the badge's native
	// dimensions; without either the badge is assumed to be 16x16.
	Markup string

	// OffsetX and OffsetY shift the badge from its anchored position,
	// in canvas units.
	OffsetX, OffsetY float64

	// Scale multiplies the computed fit scale. Zero means 1.
	Scale float64

	// Gap is the silhouette expansion distance in canvas units.
	// Zero means DefaultGap; negative disables expansion.
	Gap float64

	// Anchor aligns the badge on the canvas. Empty means bottom-right.
	Anchor Anchor
}

// scale returns the user scale with the zero-value default applied.
func (d Descriptor) scale() float64 {
	if d.Scale == 0 {
		return 1
	}
	return d.Scale
}

// gap returns the gap with the zero-value default applied.
func (d Descriptor) gap() float64 {
	switch {
	case d.Gap == 0:
		return DefaultGap
	case d.Gap < 0:
		return 0
	default:
		return d.Gap
	}
}
