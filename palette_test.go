package badge

import (
	"strings"
	"testing"
)

func TestRecolor(t *testing.T) {
	p := Palette{"#212121": "#e8eaed", "#ff0000": "#00ff00"}
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"fill",
			`<svg><rect fill="#212121"/></svg>`,
			`fill="#e8eaed"`,
		},
		{
			"caseInsensitive",
			`<svg><rect fill="#212121"/><circle stroke="#FF0000"/></svg>`,
			`stroke="#00ff00"`,
		},
		{
			"shortHex",
			`<svg><rect fill="#f00"/></svg>`,
			`fill="#00ff00"`,
		},
		{
			"styleAttr",
			`<svg><rect style="fill:#212121;opacity:0.5"/></svg>`,
			`style="fill:#e8eaed;opacity:0.5"`,
		},
		{
			"nested",
			`<svg><g><rect fill="#212121"/></g></svg>`,
			`fill="#e8eaed"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Recolor(tt.in, p)
			if err != nil {
				t.Fatalf("Recolor: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q does not contain %q", out, tt.want)
			}
		})
	}
}

func TestRecolorLeavesUnmapped(t *testing.T) {
	in := `<svg><rect fill="url(#grad)"/><circle fill="#abcdef"/></svg>`
	out, err := Recolor(in, DarkPalette)
	if err != nil {
		t.Fatalf("Recolor: %v", err)
	}
	if out != in {
		t.Errorf("unmapped paints changed:\n%s", out)
	}
}

func TestRecolorBadMarkup(t *testing.T) {
	if _, err := Recolor("<svg><rect", DarkPalette); err == nil {
		t.Error("unparseable markup accepted")
	}
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct{ in, want string }{
		{"#F00", "#ff0000"},
		{" Black ", "black"},
		{"#AbCdEf", "#abcdef"},
		{"none", "none"},
	}
	for _, tt := range tests {
		if got := normalizeColor(tt.in); got != tt.want {
			t.Errorf("normalizeColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
