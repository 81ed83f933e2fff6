package badge

import (
	"testing"

	"github.com/iconforge/badge/internal/geom"
	"github.com/iconforge/badge/internal/shape"
	"github.com/iconforge/badge/internal/svgdom"
)

func importPrimitive(t *testing.T, markup string) *shape.Primitive {
	t.Helper()
	el, err := svgdom.Parse(markup)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := shape.Import(el, geom.Identity(), shape.DefaultStyle())
	if p == nil {
		t.Fatalf("Import rejected %q", markup)
	}
	return p
}

func TestCircleRing(t *testing.T) {
	ring := circleRing(8, 8, 6, 1)
	defer ring.Release()
	if !ring.IsCompound() {
		t.Error("annulus should have two contours")
	}
	want := geom.RectXYWH(1, 1, 14, 14)
	if got := ring.Bounds(); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestCircleRingWideStroke(t *testing.T) {
	// Stroke wider than the diameter fills the whole disc.
	ring := circleRing(8, 8, 2, 3)
	defer ring.Release()
	if ring.IsCompound() {
		t.Error("over-wide stroke should produce a single disc")
	}
	want := geom.RectXYWH(3, 3, 10, 10)
	if got := ring.Bounds(); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestRectRing(t *testing.T) {
	ring := rectRing(2, 2, 8, 4, 1)
	defer ring.Release()
	if !ring.IsCompound() {
		t.Error("frame should have two contours")
	}
	want := geom.RectXYWH(1, 1, 10, 6)
	if got := ring.Bounds(); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestRectRingDegenerateInterior(t *testing.T) {
	ring := rectRing(0, 0, 4, 2, 1)
	defer ring.Release()
	if ring.IsCompound() {
		t.Error("stroke swallowing the interior should produce one contour")
	}
}

func TestStrokeRingAnalyticCircle(t *testing.T) {
	p := importPrimitive(t, `<circle cx="8" cy="8" r="6" stroke="#000" stroke-width="2"/>`)
	defer p.Release()
	ring, err := strokeRing(NewGeometry(), p)
	if err != nil {
		t.Fatalf("strokeRing: %v", err)
	}
	defer ring.Release()
	want := geom.RectXYWH(1, 1, 14, 14)
	if got := ring.Bounds(); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestStrokeRingGenericPolyline(t *testing.T) {
	p := importPrimitive(t, `<polyline points="0,0 10,0" stroke="#000" stroke-width="2"/>`)
	defer p.Release()
	ring, err := strokeRing(NewGeometry(), p)
	if err != nil {
		t.Fatalf("strokeRing: %v", err)
	}
	defer ring.Release()
	if ring.Empty() {
		t.Fatal("stroked polyline produced no region")
	}
}

func TestStrokeRingApproximated(t *testing.T) {
	p := importPrimitive(t, `<polyline points="0,0 10,0" stroke="#000" stroke-width="2"/>`)
	defer p.Release()
	// No native stroke offset: the ring comes from vertex discs and
	// edge quads united by booleans alone.
	ring, err := strokeRing(withoutOffset{NewGeometry()}, p)
	if err != nil {
		t.Fatalf("strokeRing: %v", err)
	}
	defer ring.Release()
	b := ring.Bounds()
	if b.Min.Y > -0.99 || b.Max.Y < 0.99 || b.Max.X < 10 {
		t.Errorf("bounds = %+v, want to cover the stroked band", b)
	}
}

func TestStrokeRingZeroWidth(t *testing.T) {
	p := importPrimitive(t, `<circle cx="8" cy="8" r="6" stroke="#000"/>`)
	p.Style.StrokeWidth = 0
	defer p.Release()
	ring, err := strokeRing(NewGeometry(), p)
	if err != nil {
		t.Fatalf("strokeRing: %v", err)
	}
	defer ring.Release()
	if !ring.Empty() {
		t.Error("zero-width stroke painted a region")
	}
}

func TestFootprintFilled(t *testing.T) {
	p := importPrimitive(t, `<rect x="0" y="0" width="4" height="4" fill="#000"/>`)
	defer p.Release()
	fp, err := footprint(NewGeometry(), p, nativeOffset)
	if err != nil {
		t.Fatalf("footprint: %v", err)
	}
	defer fp.Release()
	if got, want := fp.Bounds(), geom.RectXYWH(0, 0, 4, 4); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestFootprintStrokedGrows(t *testing.T) {
	p := importPrimitive(t, `<rect x="2" y="2" width="4" height="4" fill="#000" stroke="#000" stroke-width="2"/>`)
	defer p.Release()
	fp, err := footprint(NewGeometry(), p, nativeOffset)
	if err != nil {
		t.Fatalf("footprint: %v", err)
	}
	defer fp.Release()
	b := fp.Bounds()
	if b.Min.X > 1.01 || b.Max.X < 6.99 {
		t.Errorf("bounds = %+v, want roughly (1,1)-(7,7)", b)
	}
}

func TestFootprintTransformed(t *testing.T) {
	p := importPrimitive(t, `<rect x="0" y="0" width="4" height="4" fill="#000" transform="translate(10 0)"/>`)
	defer p.Release()
	fp, err := footprint(NewGeometry(), p, nativeOffset)
	if err != nil {
		t.Fatalf("footprint: %v", err)
	}
	defer fp.Release()
	if got, want := fp.Bounds(), geom.RectXYWH(10, 0, 4, 4); got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestFootprintInvisible(t *testing.T) {
	p := importPrimitive(t, `<rect x="0" y="0" width="4" height="4" fill="none"/>`)
	defer p.Release()
	fp, err := footprint(NewGeometry(), p, nativeOffset)
	if err != nil {
		t.Fatalf("footprint: %v", err)
	}
	if fp != nil {
		fp.Release()
		t.Error("paintless primitive produced a footprint")
	}
}

func TestApproxOffsetGrowsBounds(t *testing.T) {
	g := NewGeometry()
	p := geom.Rectangle(0, 0, 4, 4)
	defer p.Release()
	out, err := approxOffset(g, p, 1)
	if err != nil {
		t.Fatalf("approxOffset: %v", err)
	}
	defer out.Release()
	b := out.Bounds()
	if b.Min.X > -0.99 || b.Max.X < 4.99 || b.Min.Y > -0.99 || b.Max.Y < 4.99 {
		t.Errorf("bounds = %+v, want roughly (-1,-1)-(5,5)", b)
	}
}

func TestApproxOffsetNonPositive(t *testing.T) {
	p := geom.Rectangle(0, 0, 4, 4)
	defer p.Release()
	out, err := approxOffset(NewGeometry(), p, 0)
	if err != nil {
		t.Fatalf("approxOffset: %v", err)
	}
	defer out.Release()
	if got, want := out.Data(), p.Data(); got != want {
		t.Errorf("zero offset changed the path: %q != %q", got, want)
	}
}
