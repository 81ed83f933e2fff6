// Command badgecut composites a badge onto an SVG icon.
//
// The icon comes from -icon (or stdin), the badge from -badge or, for
// quick text badges, -label with an optional -font. The composed
// markup goes to -out (or stdout).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/iconforge/badge"
	"github.com/iconforge/badge/text"
)

func main() {
	var (
		iconPath  = flag.String("icon", "", "icon SVG file (default stdin)")
		badgePath = flag.String("badge", "", "badge SVG file")
		label     = flag.String("label", "", "render a text label badge instead of -badge")
		fontPath  = flag.String("font", "", "TTF/OTF font for -label (default Go Regular)")
		outPath   = flag.String("out", "", "output file (default stdout)")
		anchor    = flag.String("anchor", "br", "anchor: tl t tr l c r bl b br")
		scale     = flag.Float64("scale", 1, "badge scale factor")
		gap       = flag.Float64("gap", badge.DefaultGap, "notch gap in canvas units")
		dx        = flag.Float64("dx", 0, "x offset in canvas units")
		dy        = flag.Float64("dy", 0, "y offset in canvas units")
		dark      = flag.Bool("dark", false, "recolor the result for dark backgrounds")
		minify    = flag.Bool("minify", false, "minify the output")
		verbose   = flag.Bool("v", false, "log pipeline progress to stderr")
	)
	flag.Parse()

	if *verbose {
		badge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	icon, err := readInput(*iconPath)
	if err != nil {
		log.Fatalf("read icon: %v", err)
	}

	markup, err := badgeMarkup(*badgePath, *label, *fontPath)
	if err != nil {
		log.Fatal(err)
	}

	desc := badge.Descriptor{
		Markup:  markup,
		Anchor:  badge.Anchor(*anchor),
		Scale:   *scale,
		Gap:     *gap,
		OffsetX: *dx,
		OffsetY: *dy,
	}
	var opts []badge.Option
	if *minify {
		opts = append(opts, badge.WithMinify())
	}
	out, err := badge.Compose(icon, []badge.Descriptor{desc}, opts...)
	if err != nil {
		log.Fatalf("compose: %v", err)
	}

	if *dark {
		out, err = badge.Recolor(out, badge.DarkPalette)
		if err != nil {
			log.Fatalf("recolor: %v", err)
		}
	}

	if err := writeOutput(*outPath, out); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

func badgeMarkup(badgePath, label, fontPath string) (string, error) {
	switch {
	case badgePath != "" && label != "":
		return "", fmt.Errorf("-badge and -label are mutually exclusive")
	case badgePath != "":
		data, err := os.ReadFile(badgePath)
		if err != nil {
			return "", fmt.Errorf("read badge: %w", err)
		}
		return string(data), nil
	case label != "":
		fontData := goregular.TTF
		if fontPath != "" {
			data, err := os.ReadFile(fontPath)
			if err != nil {
				return "", fmt.Errorf("read font: %w", err)
			}
			fontData = data
		}
		f, err := text.Parse(fontData)
		if err != nil {
			return "", err
		}
		return text.Label(f, label, text.LabelOptions{})
	}
	return "", fmt.Errorf("one of -badge or -label is required")
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func writeOutput(path, out string) error {
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if path == "" {
		_, err := os.Stdout.WriteString(out)
		return err
	}
	return os.WriteFile(path, []byte(out), 0o644)
}
