package badge

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("image/svg+xml", svg.Minify)
	return m
}

// Minify compacts SVG markup: whitespace, comments and numeric noise
// go away while rendering stays identical. Compose applies it as the
// final pass when WithMinify is set; it is exported so callers can
// minify icons they are not compositing.
func Minify(markup string) (string, error) {
	return minifier.String("image/svg+xml", markup)
}
