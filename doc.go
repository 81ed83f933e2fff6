// Package badge composites badge marks onto square vector icons.
//
// Given a base icon (an SVG fragment built from shape primitives) and
// an ordered list of badge descriptors, Compose cuts a silhouette-shaped
// notch out of every shape of the base icon and renders each badge
// inside the freed region. Later badges clip through everything drawn
// by earlier ones, so a stack of badges always reads front to back.
//
// The geometric work runs on a pluggable boolean-geometry capability
// (unite, subtract, offset, offset-stroke over an opaque path type).
// The default engine is backed by the tdewolff/canvas path library.
// When the offset capability is withheld, gap expansion degrades to an
// approximate circle-buffer offset built from boolean unions alone;
// when no capability is available at all, the engine switches to a
// whole-run fallback that approximates each notch with a rectangular
// clip region. Both degraded modes produce valid markup.
//
// Rasterization, anti-aliasing and font internals are out of scope:
// the package consumes and produces markup only.
package badge
