package badge

// Option configures a Compose run.
//
// Example:
//
//	// Default run with the canvas-backed geometry engine:
//	out, err := badge.Compose(icon, badges)
//
//	// Degraded run without any boolean-geometry capability:
//	out, err := badge.Compose(icon, badges, badge.WithoutGeometry())
type Option func(*options)

// options holds the resolved configuration of one run.
type options struct {
	geometry       Geometry
	noGeometry     bool
	withholdOffset bool
	minify         bool
	targetFraction float64
}

// defaultOptions returns the default run configuration.
func defaultOptions() options {
	return options{
		targetFraction: DefaultTargetFraction,
	}
}

// WithGeometry injects a custom boolean-geometry engine. Passing nil
// keeps the default engine.
func WithGeometry(g Geometry) Option {
	return func(o *options) {
		if g != nil {
			o.geometry = g
		}
	}
}

// WithoutGeometry withholds the boolean-geometry capability for the
// whole run. Compose then uses the rectangular-clip fallback: one
// rectangular cutout per badge instead of silhouette-shaped notches.
// The degraded output is documented behavior, not an error.
func WithoutGeometry() Option {
	return func(o *options) {
		o.noGeometry = true
	}
}

// WithoutOffsetCapability withholds only the offset capability of the
// engine. Gap expansion and generic stroke rings then use the
// approximate circle-buffer offset built from boolean unions.
func WithoutOffsetCapability() Option {
	return func(o *options) {
		o.withholdOffset = true
	}
}

// WithMinify runs the composed markup through an SVG minifier as the
// final pass. Minification is idempotent.
func WithMinify() Option {
	return func(o *options) {
		o.minify = true
	}
}

// WithTargetFraction overrides the fraction of the canvas side a badge
// is fitted to before the descriptor's scale applies. Values outside
// (0, 1] are ignored.
func WithTargetFraction(f float64) Option {
	return func(o *options) {
		if 0 < f && f <= 1 {
			o.targetFraction = f
		}
	}
}
