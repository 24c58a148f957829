// Package charts renders the comparison chart battery of a trial folder.
package charts

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Markers is the ordered marker cycle: circle, square, triangle up, diamond,
// triangle down, star and pentagon. Series i uses Markers[i%len(Markers)].
var Markers = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.BoxGlyph{},
	regularPolygon(3, 90),
	regularPolygon(4, 90),
	regularPolygon(3, -90),
	starGlyph(),
	regularPolygon(5, 90),
}

// MarkerFor returns the marker of the i-th group.
func MarkerFor(i int) draw.GlyphDrawer {
	return Markers[i%len(Markers)]
}

// PolygonGlyph draws a filled polygon whose vertices are given on the unit
// circle scale and multiplied by the glyph radius.
type PolygonGlyph struct {
	Vertices []vg.Point
}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (g PolygonGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	if len(g.Vertices) < 3 {
		return
	}
	c.SetColor(sty.Color)
	var p vg.Path
	for i, v := range g.Vertices {
		at := vg.Point{X: pt.X + v.X*sty.Radius, Y: pt.Y + v.Y*sty.Radius}
		if i == 0 {
			p.Move(at)
		} else {
			p.Line(at)
		}
	}
	p.Close()
	c.Fill(p)
}

// regularPolygon returns an n-sided polygon with its first vertex at the
// given angle in degrees.
func regularPolygon(n int, startDeg float64) PolygonGlyph {
	verts := make([]vg.Point, n)
	for i := range verts {
		a := (startDeg + 360*float64(i)/float64(n)) * math.Pi / 180
		verts[i] = vg.Point{X: vg.Length(math.Cos(a)), Y: vg.Length(math.Sin(a))}
	}
	return PolygonGlyph{Vertices: verts}
}

// starGlyph returns a five-pointed star.
func starGlyph() PolygonGlyph {
	const inner = 0.4
	verts := make([]vg.Point, 10)
	for i := range verts {
		r := 1.0
		if i%2 == 1 {
			r = inner
		}
		a := (90 + 36*float64(i)) * math.Pi / 180
		verts[i] = vg.Point{X: vg.Length(r * math.Cos(a)), Y: vg.Length(r * math.Sin(a))}
	}
	return PolygonGlyph{Vertices: verts}
}
