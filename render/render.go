// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package render implements primitive renderers
// (lines, areas, circles, error bars, and histogram bars)
// drawn on a raster surface.
//
// A renderer never reads the domain of a plot,
// it only uses the coordinate mapping functions
// of a Painter,
// so the same renderer can draw
// on plots with different scales.
package render

import (
	"math"

	"github.com/js-arias/ensplot/style"
	"gonum.org/v1/plot/vg"
)

// Radius is the radius of circles,
// in pixels.
const Radius = 2.5

// BarMargin is the gap
// between a histogram bar and its neighbors,
// in pixels.
const BarMargin = 1

// Kind is the kind of a primitive.
type Kind int

// Valid primitive kinds.
const (
	LineOp Kind = iota
	AreaOp
	CircleOp
	ErrorBarOp
	BarOp
)

var kindNames = map[Kind]string{
	LineOp:     "line",
	AreaOp:     "area",
	CircleOp:   "circle",
	ErrorBarOp: "error-bar",
	BarOp:      "bar",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// An Op is a primitive drawn on a surface.
type Op struct {
	Kind  Kind
	Class string
}

func (o Op) String() string {
	return o.Kind.String() + " " + o.Class
}

// A Transform maps a data value
// into a pixel position.
type Transform func(float64) float64

// A Painter is the configuration of a renderer:
// a style and the coordinate mappings.
type Painter struct {
	Style style.Style
	X, Y  Transform
}

func (p Painter) point(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(p.X(x)), Y: vg.Length(p.Y(y))}
}

// Line draws a polyline
// through the given samples.
// If the style has a dash pattern,
// the line is dashed.
func (p Painter) Line(s *Surface, xs, ys []float64) {
	n := min(len(xs), len(ys))
	if n == 0 {
		return
	}
	pts := make([]vg.Point, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, p.point(xs[i], ys[i]))
	}

	c := s.Canvas()
	c.Push()
	c.SetLineStyle(p.Style.LineStyle())
	if p.Style.Dashed() {
		var path vg.Path
		for _, seg := range dashSegments(pts, p.Style.Dashes) {
			path.Move(seg[0])
			path.Line(seg[1])
		}
		c.Stroke(path)
	} else {
		var path vg.Path
		path.Move(pts[0])
		for _, pt := range pts[1:] {
			path.Line(pt)
		}
		c.Stroke(path)
	}
	c.Pop()
	s.trace(LineOp, p.Style.Name)
}

// dashSegments returns the drawn segments
// of a dashed polyline.
// The dash pattern continues across the vertices
// of the polyline.
func dashSegments(pts []vg.Point, dashes []float64) [][2]vg.Point {
	var sum float64
	for _, d := range dashes {
		sum += math.Max(d, 0)
	}
	if sum <= 0 {
		segs := make([][2]vg.Point, 0, len(pts))
		for i := 1; i < len(pts); i++ {
			segs = append(segs, [2]vg.Point{pts[i-1], pts[i]})
		}
		return segs
	}
	if len(dashes)%2 != 0 {
		// odd patterns are repeated
		// as in SVG dash arrays
		dashes = append(dashes[:len(dashes):len(dashes)], dashes...)
	}

	var segs [][2]vg.Point
	di := 0
	rem := math.Max(dashes[0], 0)
	for i := 1; i < len(pts); i++ {
		from, to := pts[i-1], pts[i]
		dx := float64(to.X - from.X)
		dy := float64(to.Y - from.Y)
		length := math.Hypot(dx, dy)
		angle := math.Atan2(dy, dx)
		cos, sin := math.Cos(angle), math.Sin(angle)

		pos := 0.0
		for pos < length {
			for rem <= 0 {
				di = (di + 1) % len(dashes)
				rem = math.Max(dashes[di], 0)
			}
			step := math.Min(rem, length-pos)
			if di%2 == 0 {
				a := vg.Point{X: from.X + vg.Length(pos*cos), Y: from.Y + vg.Length(pos*sin)}
				b := vg.Point{X: from.X + vg.Length((pos+step)*cos), Y: from.Y + vg.Length((pos+step)*sin)}
				segs = append(segs, [2]vg.Point{a, b})
			}
			pos += step
			rem -= step
		}
	}
	return segs
}

// Area draws a closed filled polygon.
// The caller is responsible for the order of the samples,
// for example forward along the top of a band
// and backward along the bottom.
func (p Painter) Area(s *Surface, xs, ys []float64) {
	n := min(len(xs), len(ys))
	if n < 2 {
		return
	}

	var path vg.Path
	path.Move(p.point(xs[0], ys[0]))
	for i := 1; i < n; i++ {
		path.Line(p.point(xs[i], ys[i]))
	}
	path.Close()

	c := s.Canvas()
	c.Push()
	c.SetColor(p.Style.Fill)
	c.Fill(path)
	if p.Style.Width > 0 && p.Style.Stroke.A > 0 {
		c.SetLineStyle(p.Style.LineStyle())
		c.Stroke(path)
	}
	c.Pop()
	s.trace(AreaOp, p.Style.Name)
}

func circlePath(center vg.Point, r vg.Length) vg.Path {
	var path vg.Path
	path.Move(vg.Point{X: center.X + r, Y: center.Y})
	path.Arc(center, r, 0, 2*math.Pi)
	path.Close()
	return path
}

// Circle draws a disc of fixed radius
// at the given position.
func (p Painter) Circle(s *Surface, x, y float64) {
	c := s.Canvas()
	c.Push()
	p.circle(s, p.point(x, y))
	c.Pop()
	s.trace(CircleOp, p.Style.Name)
}

func (p Painter) circle(s *Surface, pt vg.Point) {
	c := s.Canvas()
	path := circlePath(pt, Radius)
	if p.Style.Fill.A > 0 {
		c.SetColor(p.Style.Fill)
		c.Fill(path)
	}
	c.SetLineStyle(p.Style.LineStyle())
	c.Stroke(path)
}

// ErrorBar draws a circle at a given position
// and a vertical whisker from y-err to y+err,
// with end caps.
func (p Painter) ErrorBar(s *Surface, x, y, err float64) {
	pt := p.point(x, y)
	top := vg.Length(p.Y(y + err))
	bottom := vg.Length(p.Y(y - err))
	cw := vg.Length(Radius)

	c := s.Canvas()
	c.Push()
	p.circle(s, pt)

	var path vg.Path
	path.Move(vg.Point{X: pt.X, Y: bottom})
	path.Line(vg.Point{X: pt.X, Y: top})
	path.Move(vg.Point{X: pt.X - cw, Y: top})
	path.Line(vg.Point{X: pt.X + cw, Y: top})
	path.Move(vg.Point{X: pt.X - cw, Y: bottom})
	path.Line(vg.Point{X: pt.X + cw, Y: bottom})
	c.SetLineStyle(p.Style.LineStyle())
	c.Stroke(path)
	c.Pop()
	s.trace(ErrorBarOp, p.Style.Name)
}

// Bar draws a histogram bar
// between the data coordinates (x0, y0) and (x1, y1).
// The bar is inset by BarMargin
// from its horizontal neighbors.
func (p Painter) Bar(s *Surface, x0, y0, x1, y1 float64) {
	l := p.X(x0) + BarMargin
	r := p.X(x1) - BarMargin
	if r < l {
		r = l
	}
	b := p.Y(y0)
	t := p.Y(y1)

	var path vg.Path
	path.Move(vg.Point{X: vg.Length(l), Y: vg.Length(b)})
	path.Line(vg.Point{X: vg.Length(r), Y: vg.Length(b)})
	path.Line(vg.Point{X: vg.Length(r), Y: vg.Length(t)})
	path.Line(vg.Point{X: vg.Length(l), Y: vg.Length(t)})
	path.Close()

	c := s.Canvas()
	c.Push()
	c.SetColor(p.Style.Fill)
	c.Fill(path)
	if p.Style.Width > 0 {
		c.SetLineStyle(p.Style.LineStyle())
		c.Stroke(path)
	}
	c.Pop()
	s.trace(BarOp, p.Style.Name)
}
