package geom

import (
	"github.com/tdewolff/canvas"
)

// Conversions between the neutral Path and the canvas path engine.
// Arcs only exist on the canvas side; they are rewritten to cubic
// Beziers before conversion so the neutral representation stays closed
// under four curve verbs.

// ToCanvas converts the path to a canvas path.
func (p *Path) ToCanvas() *canvas.Path {
	cp := &canvas.Path{}
	pi := 0
	for _, v := range p.verbs {
		n := v.pointCount()
		switch v {
		case VerbMove:
			cp.MoveTo(p.pts[pi].X, p.pts[pi].Y)
		case VerbLine:
			cp.LineTo(p.pts[pi].X, p.pts[pi].Y)
		case VerbQuad:
			cp.QuadTo(p.pts[pi].X, p.pts[pi].Y, p.pts[pi+1].X, p.pts[pi+1].Y)
		case VerbCubic:
			cp.CubeTo(p.pts[pi].X, p.pts[pi].Y, p.pts[pi+1].X, p.pts[pi+1].Y, p.pts[pi+2].X, p.pts[pi+2].Y)
		case VerbClose:
			cp.Close()
		}
		pi += n
	}
	return cp
}

// FromCanvas converts a canvas path to a pooled neutral path.
func FromCanvas(cp *canvas.Path) *Path {
	p := NewPath()
	if cp == nil {
		return p
	}
	for _, seg := range cp.ReplaceArcs().Segments() {
		switch seg.Cmd {
		case canvas.MoveToCmd:
			p.MoveTo(seg.End.X, seg.End.Y)
		case canvas.LineToCmd:
			p.LineTo(seg.End.X, seg.End.Y)
		case canvas.QuadToCmd:
			cp1 := seg.CP1()
			p.QuadTo(cp1.X, cp1.Y, seg.End.X, seg.End.Y)
		case canvas.CubeToCmd:
			cp1, cp2 := seg.CP1(), seg.CP2()
			p.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, seg.End.X, seg.End.Y)
		case canvas.CloseCmd:
			p.Close()
		}
	}
	return p
}

// ParseData parses SVG path data ("d" attribute syntax) into a pooled
// path. Relative commands, shorthand commands and elliptical arcs are
// handled by the canvas parser; arcs come back as cubic Beziers.
func ParseData(d string) (*Path, error) {
	cp, err := canvas.ParseSVGPath(d)
	if err != nil {
		return nil, err
	}
	return FromCanvas(cp), nil
}
