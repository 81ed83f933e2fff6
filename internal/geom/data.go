package geom

import (
	"strconv"
	"strings"
)

// dataPrecision bounds coordinate output so boolean-operation noise
// well below visual resolution does not bloat the markup.
const dataPrecision = 4

// Data serializes the path as SVG path data using absolute commands.
func (p *Path) Data() string {
	if p == nil || len(p.verbs) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(p.pts) * 12)
	pi := 0
	for _, v := range p.verbs {
		n := v.pointCount()
		switch v {
		case VerbMove:
			b.WriteByte('M')
			writeCoords(&b, p.pts[pi:pi+1])
		case VerbLine:
			b.WriteByte('L')
			writeCoords(&b, p.pts[pi:pi+1])
		case VerbQuad:
			b.WriteByte('Q')
			writeCoords(&b, p.pts[pi:pi+2])
		case VerbCubic:
			b.WriteByte('C')
			writeCoords(&b, p.pts[pi:pi+3])
		case VerbClose:
			b.WriteByte('Z')
		}
		pi += n
	}
	return b.String()
}

func writeCoords(b *strings.Builder, pts []Point) {
	for i, pt := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatCoord(pt.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(pt.Y))
	}
}

// FormatCoord formats a coordinate the way path data does: fixed
// precision with trailing zeros removed. Callers emitting transform
// attributes use it so all numeric output looks the same.
func FormatCoord(f float64) string {
	return formatCoord(f)
}

// formatCoord formats a coordinate with trailing zeros removed.
func formatCoord(f float64) string {
	s := strconv.FormatFloat(f, 'f', dataPrecision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
