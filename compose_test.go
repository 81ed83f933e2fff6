package badge

import (
	"errors"
	"strings"
	"testing"

	"github.com/iconforge/badge/internal/geom"
)

const (
	testIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16"><circle cx="8" cy="8" r="6" fill="#212121"/></svg>`

	testBadge = `<svg viewBox="0 0 8 8"><circle cx="4" cy="4" r="4" fill="#f00"/></svg>`
)

func TestComposeNoBadges(t *testing.T) {
	out, err := Compose(testIcon, nil)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if out != testIcon {
		t.Errorf("icon changed without badges:\n%s", out)
	}
}

func TestComposeBadIcon(t *testing.T) {
	if _, err := Compose("<svg><circle", []Descriptor{{Markup: testBadge}}); err == nil {
		t.Error("unparseable icon accepted")
	}
}

func TestComposeBottomRight(t *testing.T) {
	out, err := Compose(testIcon, []Descriptor{{Markup: testBadge, Gap: 1}})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// 8x8 badge on a 16x16 canvas: fitted to 6x6 and anchored bottom-right.
	if !strings.Contains(out, `transform="translate(10 10) scale(0.75)"`) {
		t.Errorf("missing placement transform:\n%s", out)
	}
	if !strings.Contains(out, `data-badge-index="0"`) {
		t.Errorf("missing badge group:\n%s", out)
	}
	// The base circle intersects the notch and is rewritten as path data.
	if strings.Contains(out, "<circle cx=\"8\"") {
		t.Errorf("base circle left uncut:\n%s", out)
	}
	if !strings.Contains(out, `<path fill="#212121" d="`) && !strings.Contains(out, `fill="#212121"`) {
		t.Errorf("cut fill lost its paint:\n%s", out)
	}
	// The badge's own circle renders inside the group untouched.
	if !strings.Contains(out, `<circle cx="4" cy="4" r="4" fill="#f00"/>`) {
		t.Errorf("badge content altered:\n%s", out)
	}
}

func TestComposeLeavesDistantShapes(t *testing.T) {
	icon := `<svg viewBox="0 0 16 16"><rect x="0" y="0" width="3" height="3" fill="#000"/><circle cx="12" cy="12" r="4" fill="#000"/></svg>`
	out, err := Compose(icon, []Descriptor{{Markup: testBadge, Anchor: AnchorBottomRight}})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// The top-left rect never touches a bottom-right notch.
	if !strings.Contains(out, `<rect x="0" y="0" width="3" height="3" fill="#000"/>`) {
		t.Errorf("distant shape was rewritten:\n%s", out)
	}
}

func TestComposeStrokeOnlyShape(t *testing.T) {
	icon := `<svg viewBox="0 0 16 16"><rect x="2" y="2" width="12" height="12" fill="none" stroke="#f00" stroke-width="2"/></svg>`
	out, err := Compose(icon, []Descriptor{{Markup: testBadge}})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// The stroke ring comes back as a filled path in the stroke paint.
	if !strings.Contains(out, `fill="#f00"`) {
		t.Errorf("ring did not take the stroke paint:\n%s", out)
	}
	if !strings.Contains(out, `stroke="none"`) {
		t.Errorf("ring still carries stroke paint:\n%s", out)
	}
	if strings.Contains(out, "<rect x=\"2\"") {
		t.Errorf("stroked rect left uncut:\n%s", out)
	}
}

func TestComposeLayering(t *testing.T) {
	out, err := Compose(testIcon, []Descriptor{
		{Markup: testBadge, Anchor: AnchorBottomRight},
		{Markup: testBadge, Anchor: AnchorBottomLeft},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// Badge 1 clips badge 0's layer through a keep-region clip group.
	if !strings.Contains(out, `clip-path="url(#badge-keep-1)"`) {
		t.Errorf("badge 0 layer not clipped by badge 1:\n%s", out)
	}
	if !strings.Contains(out, `<clipPath id="badge-keep-1">`) {
		t.Errorf("missing keep-region clip def:\n%s", out)
	}
	i0 := strings.Index(out, `data-badge-index="0"`)
	i1 := strings.Index(out, `data-badge-index="1"`)
	if i0 < 0 || i1 < 0 || i0 > i1 {
		t.Errorf("badge groups missing or out of order:\n%s", out)
	}
	// The clip wrapper opens before badge 0's group.
	iw := strings.Index(out, `clip-path="url(#badge-keep-1)"`)
	if iw < 0 || iw > i0 {
		t.Errorf("clip wrapper does not precede badge 0:\n%s", out)
	}
}

// subtractFailGeometry fails boolean subtraction while keeping the
// rest of the capability intact, driving the per-primitive clip path.
type subtractFailGeometry struct {
	Geometry
}

func (subtractFailGeometry) Subtract(a, b *geom.Path) (*geom.Path, error) {
	return nil, &GeometryError{Op: "subtract", Err: errors.New("induced failure")}
}

func TestComposeSubtractFailureClips(t *testing.T) {
	icon := `<svg viewBox="0 0 16 16"><circle cx="8" cy="8" r="6" fill="#212121" stroke="#000" stroke-width="1"/></svg>`
	out, err := Compose(icon, []Descriptor{{Markup: testBadge}},
		WithGeometry(subtractFailGeometry{NewGeometry()}))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// Original geometry survives with all attributes, behind a clip.
	if !strings.Contains(out, `<circle cx="8" cy="8" r="6" fill="#212121" stroke="#000" stroke-width="1" clip-path="url(#badge-keep-0)"/>`) {
		t.Errorf("failed primitive not preserved behind clip:\n%s", out)
	}
	if !strings.Contains(out, `<clipPath id="badge-keep-0">`) {
		t.Errorf("missing keep-region def:\n%s", out)
	}
	if !strings.Contains(out, `clip-rule="evenodd"`) {
		t.Errorf("keep region is not an even-odd hole:\n%s", out)
	}
}

func TestComposeSkipsBadBadge(t *testing.T) {
	out, err := Compose(testIcon, []Descriptor{
		{Markup: "<svg><circle"},
		{Markup: testBadge},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if strings.Contains(out, `data-badge-index="0"`) {
		t.Errorf("broken badge rendered:\n%s", out)
	}
	if !strings.Contains(out, `data-badge-index="1"`) {
		t.Errorf("good badge lost:\n%s", out)
	}
}

func TestComposeEmptyBadgeSkipped(t *testing.T) {
	out, err := Compose(testIcon, []Descriptor{{Markup: `<svg viewBox="0 0 8 8"></svg>`}})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if strings.Contains(out, attrBadgeIndex) {
		t.Errorf("empty badge rendered:\n%s", out)
	}
	if !strings.Contains(out, `<circle cx="8" cy="8" r="6" fill="#212121"/>`) {
		t.Errorf("icon altered by empty badge:\n%s", out)
	}
}

func TestComposeFragmentBadge(t *testing.T) {
	out, err := Compose(testIcon, []Descriptor{{Markup: `<circle cx="8" cy="8" r="8" fill="#0f0"/>`}})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.Contains(out, `fill="#0f0"`) {
		t.Errorf("fragment badge lost:\n%s", out)
	}
	if !strings.Contains(out, `data-badge-index="0"`) {
		t.Errorf("fragment badge not grouped:\n%s", out)
	}
}

func TestComposeWithoutOffsetCapability(t *testing.T) {
	out, err := Compose(testIcon, []Descriptor{{Markup: testBadge, Gap: 1}},
		WithoutOffsetCapability())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.Contains(out, `data-badge-index="0"`) {
		t.Errorf("badge missing in buffered-offset mode:\n%s", out)
	}
	if strings.Contains(out, "<circle cx=\"8\"") {
		t.Errorf("base circle left uncut in buffered-offset mode:\n%s", out)
	}
}

func TestComposeWithoutGeometry(t *testing.T) {
	out, err := Compose(testIcon, []Descriptor{{Markup: testBadge, Gap: 1}},
		WithoutGeometry())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// The original shape markup survives verbatim inside a clip group.
	if !strings.Contains(out, `<circle cx="8" cy="8" r="6" fill="#212121"/>`) {
		t.Errorf("fallback rewrote the base shapes:\n%s", out)
	}
	if !strings.Contains(out, `<g clip-path="url(#badge-keep-0)">`) {
		t.Errorf("fallback missing clip group:\n%s", out)
	}
	if !strings.Contains(out, `clip-rule="evenodd"`) {
		t.Errorf("fallback keep region is not even-odd:\n%s", out)
	}
	if !strings.Contains(out, `data-badge-index="0"`) {
		t.Errorf("fallback lost the badge group:\n%s", out)
	}
	if !strings.Contains(out, `transform="translate(10 10) scale(0.75)"`) {
		t.Errorf("fallback placement off:\n%s", out)
	}
}

func TestComposeMinify(t *testing.T) {
	out, err := Compose(testIcon, []Descriptor{{Markup: testBadge}}, WithMinify())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if strings.Contains(out, "\n") {
		t.Errorf("minified output keeps newlines:\n%s", out)
	}
	if !strings.Contains(out, "<svg") {
		t.Errorf("minified output lost the document:\n%s", out)
	}
}

func TestComposeOffsets(t *testing.T) {
	// Negative offsets pull the badge inward from its anchor.
	out, err := Compose(testIcon, []Descriptor{{Markup: testBadge, OffsetX: -1, OffsetY: -1}})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.Contains(out, `transform="translate(9 9) scale(0.75)"`) {
		t.Errorf("offset placement off:\n%s", out)
	}
}
