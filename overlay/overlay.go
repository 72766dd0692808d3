// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package overlay implements the mount point of a plot:
// the container that receives the title,
// the legend,
// the axes,
// and the raster layers of a plot,
// and composes them into a vector document.
package overlay

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/js-arias/ensplot/legend"
	"github.com/js-arias/ensplot/render"
	"github.com/js-arias/ensplot/style"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Margin is the space around the drawing area,
// in pixels.
type Margin struct {
	Left, Right int
	Top, Bottom int
}

// An Axis is the description of a plot axis.
type Axis struct {
	Min, Max float64

	// Ticks with an empty label
	// are minor ticks.
	Ticks []plot.Tick
}

// pos returns the relative position of a value
// in the axis.
func (a Axis) pos(v float64) float64 {
	if a.Max == a.Min {
		return 0
	}
	return (v - a.Min) / (a.Max - a.Min)
}

// A Mount is the container of a plot.
type Mount interface {
	SetTitle(title string)
	SetLegend(entries []legend.Entry)
	SetAxes(x, y Axis)

	// SetLayers sets the raster layers of the plot,
	// from bottom to top.
	SetLayers(layers ...image.Image)
}

// Sizes of the frame decorations,
// in pixels.
const (
	titleHeight  = 24
	legendHeight = 24
	legendWidth  = 160
)

// A Frame is a mount point
// that keeps the last published elements of a plot.
type Frame struct {
	Margin Margin

	Title  string
	Legend []legend.Entry
	X, Y   Axis
	Layers []image.Image

	// Updates is the number of times
	// the legend was published.
	Updates int
}

// NewFrame returns a new empty frame.
func NewFrame(m Margin) *Frame {
	return &Frame{Margin: m}
}

// SetTitle sets the title of the frame.
func (f *Frame) SetTitle(title string) {
	f.Title = title
}

// SetLegend sets the legend entries of the frame.
func (f *Frame) SetLegend(entries []legend.Entry) {
	f.Legend = entries
	f.Updates++
}

// SetAxes sets the axes of the frame.
func (f *Frame) SetAxes(x, y Axis) {
	f.X = x
	f.Y = y
}

// SetLayers sets the raster layers of the frame.
func (f *Frame) SetLayers(layers ...image.Image) {
	f.Layers = layers
}

// area returns the size of the drawing area.
func (f *Frame) area() (w, h int) {
	for _, l := range f.Layers {
		if l == nil {
			continue
		}
		b := l.Bounds()
		w = max(w, b.Dx())
		h = max(h, b.Dy())
	}
	return w, h
}

// Size returns the size of the frame,
// in pixels.
func (f *Frame) Size() (w, h int) {
	w, h = f.area()
	w += f.Margin.Left + f.Margin.Right
	h += f.Margin.Top + f.Margin.Bottom + titleHeight + legendHeight
	return w, h
}

// WriteSVG writes the frame as an SVG document,
// the raster layers are embedded as PNG images.
func (f *Frame) WriteSVG(w io.Writer) error {
	aw, ah := f.area()
	if aw == 0 || ah == 0 {
		return render.ErrNoSurface
	}
	fw, fh := f.Size()

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(fw, fh)
	canvas.Title(f.Title)
	canvas.Rect(0, 0, fw, fh, "fill:white")
	canvas.Text(fw/2, titleHeight-6, f.Title, "font-family:sans-serif;font-size:14px;text-anchor:middle")

	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", f.Margin.Left, f.Margin.Top+titleHeight))

	// y axis with grid lines
	for _, t := range f.Y.Ticks {
		p := f.Y.pos(t.Value)
		if p < 0 || p > 1 {
			continue
		}
		y := ah - int(math.Round(p*float64(ah)))
		if t.IsMinor() {
			canvas.Line(-3, y, 0, y, "stroke:black")
			continue
		}
		canvas.Line(0, y, aw, y, "stroke:#dddddd")
		canvas.Line(-6, y, 0, y, "stroke:black")
		canvas.Text(-10, y+4, t.Label, "font-family:sans-serif;font-size:10px;text-anchor:end")
	}
	canvas.Line(0, 0, 0, ah, "stroke:black")

	for _, l := range f.Layers {
		if l == nil {
			continue
		}
		uri, err := dataURI(l)
		if err != nil {
			return err
		}
		b := l.Bounds()
		canvas.Image(0, 0, b.Dx(), b.Dy(), uri)
	}

	// x axis
	canvas.Line(0, ah, aw, ah, "stroke:black")
	for _, t := range f.X.Ticks {
		p := f.X.pos(t.Value)
		if p < 0 || p > 1 {
			continue
		}
		x := int(math.Round(p * float64(aw)))
		if t.IsMinor() {
			canvas.Line(x, ah, x, ah+3, "stroke:black")
			continue
		}
		canvas.Line(x, ah, x, ah+6, "stroke:black")
		canvas.Text(x, ah+18, t.Label, "font-family:sans-serif;font-size:10px;text-anchor:middle")
	}
	canvas.Gend()

	// legend
	ly := fh - legendHeight + (legendHeight-legend.Size)/2
	for i, e := range f.Legend {
		x := f.Margin.Left + i*legendWidth
		swatchSVG(canvas, e, x, ly)
		canvas.Text(x+legend.Size+6, ly+legend.Size-2, e.Label, "font-family:sans-serif;font-size:11px")
	}
	canvas.End()

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("while writing SVG: %v", err)
	}
	return nil
}

func dataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("while encoding layer: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func swatchSVG(canvas *svg.SVG, e legend.Entry, x, y int) {
	st := e.Style
	srgb, sa := style.RGB(st.Stroke)
	frgb, fa := style.RGB(st.Fill)
	stroke := fmt.Sprintf("stroke:%s;stroke-opacity:%.3f;stroke-width:%g", srgb, sa, st.Width)
	if st.Cap != "" {
		stroke += ";stroke-linecap:" + st.Cap
	}
	fill := fmt.Sprintf("fill:%s;fill-opacity:%.3f", frgb, fa)

	mid := y + legend.Size/2
	r := int(math.Round(render.Radius))
	switch e.Swatch {
	case legend.SimpleLine:
		canvas.Line(x, mid, x+legend.Size, mid, stroke)
	case legend.CircledLine:
		canvas.Line(x, mid, x+legend.Size, mid, stroke)
		canvas.Circle(x+legend.Size/2, mid, r, stroke+";"+fill)
	case legend.FilledCircle:
		canvas.Circle(x+legend.Size/2, mid, legend.Size/2-1, stroke+";"+fill)
	case legend.ErrorBar:
		cx := x + legend.Size/2
		canvas.Line(cx, y+1, cx, y+legend.Size-1, stroke)
		canvas.Line(cx-r, y+1, cx+r, y+1, stroke)
		canvas.Line(cx-r, y+legend.Size-1, cx+r, y+legend.Size-1, stroke)
		canvas.Circle(cx, mid, r, stroke+";"+fill)
	case legend.FilledRect:
		canvas.Rect(x+1, y+1, legend.Size-2, legend.Size-2, stroke+";"+fill)
	}
}

// WritePNG writes the raster content of the frame
// (the layers and the legend swatches)
// as a PNG image
// with a white background.
func (f *Frame) WritePNG(w io.Writer) error {
	aw, ah := f.area()
	if aw == 0 || ah == 0 {
		return render.ErrNoSurface
	}
	fw, fh := f.Size()

	s, err := render.NewSurface(fw, fh)
	if err != nil {
		return err
	}
	c := s.Canvas()
	c.SetColor(color.White)
	c.Fill(c.Rectangle.Path())

	// vg coordinates grow upwards
	top := fh - f.Margin.Top - titleHeight
	for _, l := range f.Layers {
		if l == nil {
			continue
		}
		b := l.Bounds()
		rect := vg.Rectangle{
			Min: vg.Point{X: vg.Length(f.Margin.Left), Y: vg.Length(top - b.Dy())},
			Max: vg.Point{X: vg.Length(f.Margin.Left + b.Dx()), Y: vg.Length(top)},
		}
		c.DrawImage(rect, l)
	}

	ly := (legendHeight - legend.Size) / 2
	for i, e := range f.Legend {
		x := f.Margin.Left + i*legendWidth
		e.Swatch.Draw(s, e.Style, float64(x), float64(ly))
	}

	return s.WritePNG(w)
}
