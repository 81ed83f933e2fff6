package badge

import (
	"errors"
	"fmt"

	"github.com/tdewolff/canvas"

	"github.com/iconforge/badge/internal/geom"
)

// Geometry is the boolean-geometry capability the compositing engine
// runs on: set operations and offsetting over an opaque path type.
//
// Implementations return a freshly allocated path for every call; the
// caller owns the result and must Release it once consumed. Inputs are
// never modified or released by the implementation.
//
// Failures are ordinary errors, not panics: the compositor treats a
// failed subtraction as a signal to fall back to a clip region for the
// affected primitive, and a failed offset as a signal to approximate.
type Geometry interface {
	// Unite returns the union of a and b.
	Unite(a, b *geom.Path) (*geom.Path, error)

	// Subtract returns a minus b.
	Subtract(a, b *geom.Path) (*geom.Path, error)

	// Offset grows (distance > 0) or shrinks (distance < 0) a closed
	// path by the given distance.
	Offset(p *geom.Path, distance float64, join geom.LineJoin) (*geom.Path, error)

	// OffsetStroke converts a stroked path into the filled ring
	// painted by a stroke of width 2*halfWidth centered on the path.
	OffsetStroke(p *geom.Path, halfWidth float64, join geom.LineJoin, cap geom.LineCap) (*geom.Path, error)
}

// GeometryError wraps a failed geometry operation.
type GeometryError struct {
	Op  string
	Err error
}

func (e *GeometryError) Error() string {
	return "badge: geometry " + e.Op + ": " + e.Err.Error()
}

func (e *GeometryError) Unwrap() error { return e.Err }

// ErrOffsetUnsupported is reported by engines whose offset capability
// is withheld. The silhouette builder detects it once at the start of
// a run and switches to the circle-buffer approximation.
var ErrOffsetUnsupported = errors.New("badge: offset capability unsupported")

// boolTolerance is the flattening tolerance handed to the path
// library, in canvas units. Icons live on a 16..64 unit grid, so this
// is far below visual resolution.
const boolTolerance = 0.01

// NewGeometry returns the default boolean-geometry engine, backed by
// the tdewolff/canvas path library.
func NewGeometry() Geometry {
	return canvasGeometry{}
}

// canvasGeometry implements Geometry on tdewolff/canvas paths. The
// library reports degenerate input by panicking deep in the
// intersection code; run converts those panics into GeometryErrors so
// failure stays an explicit result the compositor can match on.
type canvasGeometry struct{}

func (canvasGeometry) run(op string, f func() *canvas.Path) (result *geom.Path, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &GeometryError{Op: op, Err: fmt.Errorf("%v", r)}
		}
	}()
	return geom.FromCanvas(f()), nil
}

func (g canvasGeometry) Unite(a, b *geom.Path) (*geom.Path, error) {
	return g.run("unite", func() *canvas.Path {
		return a.ToCanvas().Or(b.ToCanvas())
	})
}

func (g canvasGeometry) Subtract(a, b *geom.Path) (*geom.Path, error) {
	return g.run("subtract", func() *canvas.Path {
		return a.ToCanvas().Not(b.ToCanvas())
	})
}

func (g canvasGeometry) Offset(p *geom.Path, distance float64, join geom.LineJoin) (*geom.Path, error) {
	if distance == 0 {
		return p.Copy(), nil
	}
	// An offset by d is the union (outward) or difference (inward) of
	// the path with the ring painted by a stroke of width 2|d|; this
	// stays within the library's well-tested stroke and boolean code.
	return g.run("offset", func() *canvas.Path {
		cp := p.ToCanvas()
		w := distance
		if w < 0 {
			w = -w
		}
		ring := cp.Stroke(2*w, canvas.RoundCap, joiner(join), boolTolerance)
		if distance > 0 {
			return cp.Or(ring)
		}
		return cp.Not(ring)
	})
}

func (g canvasGeometry) OffsetStroke(p *geom.Path, halfWidth float64, join geom.LineJoin, cap geom.LineCap) (*geom.Path, error) {
	if halfWidth <= 0 {
		return geom.NewPath(), nil
	}
	return g.run("offsetStroke", func() *canvas.Path {
		return p.ToCanvas().Stroke(2*halfWidth, capper(cap), joiner(join), boolTolerance)
	})
}

func joiner(j geom.LineJoin) canvas.Joiner {
	switch j {
	case geom.JoinRound:
		return canvas.RoundJoin
	case geom.JoinBevel:
		return canvas.BevelJoin
	default:
		return canvas.MiterJoin
	}
}

func capper(c geom.LineCap) canvas.Capper {
	switch c {
	case geom.CapRound:
		return canvas.RoundCap
	case geom.CapSquare:
		return canvas.SquareCap
	default:
		return canvas.ButtCap
	}
}

// withoutOffset wraps an engine and withholds its offset capability.
type withoutOffset struct {
	Geometry
}

func (withoutOffset) Offset(*geom.Path, float64, geom.LineJoin) (*geom.Path, error) {
	return nil, ErrOffsetUnsupported
}

func (withoutOffset) OffsetStroke(*geom.Path, float64, geom.LineJoin, geom.LineCap) (*geom.Path, error) {
	return nil, ErrOffsetUnsupported
}

// offsetCapable probes the engine once at startup. The probe uses a
// tiny square so a genuine engine does trivial work.
func offsetCapable(g Geometry) bool {
	probe := geom.Rectangle(0, 0, 1, 1)
	defer probe.Release()
	out, err := g.Offset(probe, 0.1, geom.JoinRound)
	if out != nil {
		out.Release()
	}
	return !errors.Is(err, ErrOffsetUnsupported)
}

// treeUnite reduces the paths to a single union using pairwise tree
// reduction, keeping the boolean-operation count at O(n log n) instead
// of a linear fold's deeper intermediate results.
//
// treeUnite consumes its inputs: every element of paths is released,
// whether the reduction succeeds or not. The caller owns the result.
func treeUnite(g Geometry, paths []*geom.Path) (*geom.Path, error) {
	if len(paths) == 0 {
		return geom.NewPath(), nil
	}
	for len(paths) > 1 {
		next := paths[:0:len(paths)/2+1]
		var failed error
		for i := 0; i < len(paths); i += 2 {
			if failed != nil {
				paths[i].Release()
				if i+1 < len(paths) {
					paths[i+1].Release()
				}
				continue
			}
			if i+1 == len(paths) {
				next = append(next, paths[i])
				break
			}
			u, err := g.Unite(paths[i], paths[i+1])
			paths[i].Release()
			paths[i+1].Release()
			if err != nil {
				failed = err
				continue
			}
			next = append(next, u)
		}
		if failed != nil {
			for _, p := range next {
				p.Release()
			}
			return nil, failed
		}
		paths = next
	}
	return paths[0], nil
}
