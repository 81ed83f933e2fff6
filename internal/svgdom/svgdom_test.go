package svgdom

import (
	"strings"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // "" means identical to in
	}{
		{
			name: "simple icon",
			in:   `<svg viewBox="0 0 16 16"><circle cx="8" cy="8" r="6" fill="#389FD6"/></svg>`,
		},
		{
			name: "nested groups and text",
			in:   `<svg width="16" height="16"><g transform="translate(1 1)"><rect x="0" y="0" width="4" height="4"/></g></svg>`,
		},
		{
			name: "comment preserved",
			in:   `<svg><!-- noun project --><path d="M0 0H4V4Z"/></svg>`,
		},
		{
			name: "xml declaration dropped",
			in:   `<?xml version="1.0"?><svg/>`,
			want: `<svg/>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			want := tt.want
			if want == "" {
				want = tt.in
			}
			if got := root.String(); got != want {
				t.Errorf("round trip = %q, want %q", got, want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(""); err != ErrNoRootElement {
		t.Errorf("empty input: err = %v, want ErrNoRootElement", err)
	}
	if _, err := Parse("<svg><g></svg>"); err == nil {
		t.Error("mismatched tags did not error")
	}
}

func TestAttrAccessors(t *testing.T) {
	root, err := Parse(`<rect x="1" y="2" fill="none"/>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := root.Attr("x"); got != "1" {
		t.Errorf("Attr(x) = %q, want 1", got)
	}
	if root.Attr("missing") != "" || root.HasAttr("missing") {
		t.Error("missing attribute misreported")
	}

	root.SetAttr("x", "9")
	root.SetAttr("rx", "2")
	root.DelAttr("y")
	if got := root.String(); got != `<rect x="9" fill="none" rx="2"/>` {
		t.Errorf("after mutation = %q", got)
	}
}

func TestInnerXML(t *testing.T) {
	root, err := Parse(`<svg viewBox="0 0 8 8"><g fill="#Fff"><path d="M0 0"/></g><rect/></svg>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := `<g fill="#Fff"><path d="M0 0"/></g><rect/>`
	if got := root.InnerXML(); got != want {
		t.Errorf("InnerXML = %q, want %q", got, want)
	}
}

func TestReplaceChild(t *testing.T) {
	root, err := Parse(`<svg><circle r="1"/><rect/></svg>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	circle := root.Elements()[0]

	a := &Element{Name: "path", Attrs: []Attr{{Key: "d", Value: "M0 0Z"}}}
	b := &Element{Name: "path", Attrs: []Attr{{Key: "d", Value: "M1 1Z"}}}
	if !root.ReplaceChild(circle, a, b) {
		t.Fatal("ReplaceChild did not find the element")
	}
	want := `<svg><path d="M0 0Z"/><path d="M1 1Z"/><rect/></svg>`
	if got := root.String(); got != want {
		t.Errorf("after replace = %q, want %q", got, want)
	}

	if root.ReplaceChild(circle, a) {
		t.Error("ReplaceChild found an element that was already removed")
	}
}

func TestWrapChild(t *testing.T) {
	root, err := Parse(`<svg><g id="layer"><path/></g></svg>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	layer := root.Elements()[0]
	wrapper := &Element{Name: "g", Attrs: []Attr{{Key: "clip-path", Value: "url(#keep)"}}}
	if !root.WrapChild(layer, wrapper) {
		t.Fatal("WrapChild did not find the element")
	}
	want := `<svg><g clip-path="url(#keep)"><g id="layer"><path/></g></g></svg>`
	if got := root.String(); got != want {
		t.Errorf("after wrap = %q, want %q", got, want)
	}
}

func TestEscaping(t *testing.T) {
	e := &Element{Name: "text", Attrs: []Attr{{Key: "data-label", Value: `a<b&"c"`}}}
	e.AppendChild(Text{Data: "1 < 2 & 3"})
	got := e.String()
	if !strings.Contains(got, `data-label="a&lt;b&amp;&quot;c&quot;"`) {
		t.Errorf("attribute not escaped: %q", got)
	}
	if !strings.Contains(got, "1 &lt; 2 &amp; 3") {
		t.Errorf("text not escaped: %q", got)
	}
}

func TestXlinkPrefixPreserved(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#a"/></svg>`
	root, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	use := root.Elements()[0]
	if got := use.Attr("xlink:href"); got != "#a" {
		t.Errorf("xlink:href = %q, want #a", got)
	}
}
