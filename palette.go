package badge

import (
	"strings"

	"github.com/iconforge/badge/internal/svgdom"
)

// Palette maps paint values to replacements. Keys and values are
// normalized hex colors or keywords; lookups expand 3-digit hex and
// ignore case.
type Palette map[string]string

// DarkPalette remaps the default icon grays onto a dark background.
var DarkPalette = Palette{
	"#000000": "#ffffff",
	"#212121": "#e8eaed",
	"#424242": "#bdc1c6",
	"#616161": "#9aa0a6",
	"black":   "#ffffff",
}

// paintAttrs are the attributes Recolor rewrites.
var paintAttrs = []string{"fill", "stroke", "stop-color", "flood-color"}

// Recolor rewrites every mapped paint in the markup and returns the
// result. Unmapped paints, gradients and url() references pass through
// untouched.
func Recolor(markup string, p Palette) (string, error) {
	root, err := svgdom.Parse(markup)
	if err != nil {
		return "", err
	}
	recolor(root, p)
	return root.String(), nil
}

func recolor(el *svgdom.Element, p Palette) {
	for _, key := range paintAttrs {
		if !el.HasAttr(key) {
			continue
		}
		if repl, ok := p[normalizeColor(el.Attr(key))]; ok {
			el.SetAttr(key, repl)
		}
	}
	// style attributes carry paint too; rewrite declaration-wise.
	if style := el.Attr("style"); style != "" {
		el.SetAttr("style", recolorStyle(style, p))
	}
	for _, child := range el.Elements() {
		recolor(child, p)
	}
}

func recolorStyle(style string, p Palette) string {
	decls := strings.Split(style, ";")
	for i, d := range decls {
		name, value, ok := strings.Cut(d, ":")
		if !ok {
			continue
		}
		for _, key := range paintAttrs {
			if strings.TrimSpace(name) != key {
				continue
			}
			if repl, found := p[normalizeColor(value)]; found {
				decls[i] = name + ":" + repl
			}
			break
		}
	}
	return strings.Join(decls, ";")
}

// normalizeColor lowercases a paint value and expands 3-digit hex so
// palette keys match regardless of the author's spelling.
func normalizeColor(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 4 && s[0] == '#' {
		return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	return s
}
