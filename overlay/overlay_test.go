// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package overlay_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/js-arias/ensplot/legend"
	"github.com/js-arias/ensplot/overlay"
	"github.com/js-arias/ensplot/render"
	"github.com/js-arias/ensplot/style"
	"gonum.org/v1/plot"
)

func newFrame(t testing.TB) *overlay.Frame {
	t.Helper()

	s, err := render.NewSurface(200, 100)
	if err != nil {
		t.Fatalf("unable to create surface: %v", err)
	}
	id := func(v float64) float64 { return v }
	p := render.Painter{Style: style.Default().Style(style.Observation), X: id, Y: id}
	p.Circle(s, 50, 50)

	f := overlay.NewFrame(overlay.Margin{Left: 90, Right: 20, Top: 20, Bottom: 30})
	f.SetTitle("FOPR")
	f.SetAxes(
		overlay.Axis{Min: 0, Max: 100, Ticks: []plot.Tick{{Value: 0, Label: "0"}, {Value: 50, Label: "50"}, {Value: 75}}},
		overlay.Axis{Min: 0, Max: 10, Ticks: []plot.Tick{{Value: 5, Label: "5"}}},
	)
	f.SetLegend([]legend.Entry{
		{Style: style.Default().Style(style.Refcase), Label: "Refcase", Swatch: legend.SimpleLine},
		{Style: style.Default().Ensemble(0), Label: "default", Swatch: legend.FilledRect},
	})
	f.SetLayers(s.Image(), nil)
	return f
}

func TestFrameSize(t *testing.T) {
	f := newFrame(t)
	w, h := f.Size()
	if w != 200+90+20 {
		t.Errorf("width: got %d, want %d", w, 200+90+20)
	}
	if h <= 100+20+30 {
		t.Errorf("height: got %d, want more than %d", h, 100+20+30)
	}
}

func TestWriteSVG(t *testing.T) {
	f := newFrame(t)

	var buf bytes.Buffer
	if err := f.WriteSVG(&buf); err != nil {
		t.Fatalf("unable to write SVG: %v", err)
	}
	doc := buf.String()
	for _, want := range []string{"<svg", "FOPR", "data:image/png;base64,", ">50<", ">Refcase<", ">default<", "</svg>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("SVG: expecting %q", want)
		}
	}

	empty := overlay.NewFrame(overlay.Margin{})
	if err := empty.WriteSVG(&buf); !errors.Is(err, render.ErrNoSurface) {
		t.Errorf("empty frame: got error %v, want %v", err, render.ErrNoSurface)
	}
}

func TestSwatchCap(t *testing.T) {
	f := newFrame(t)
	round := style.Default().Style(style.Refcase)
	round.Cap = "round"
	f.SetLegend([]legend.Entry{
		{Style: round, Label: "Refcase", Swatch: legend.SimpleLine},
	})

	var buf bytes.Buffer
	if err := f.WriteSVG(&buf); err != nil {
		t.Fatalf("unable to write SVG: %v", err)
	}
	if want := "stroke-linecap:round"; !strings.Contains(buf.String(), want) {
		t.Errorf("swatch: expecting %q", want)
	}
}

func TestWritePNG(t *testing.T) {
	f := newFrame(t)

	var buf bytes.Buffer
	if err := f.WritePNG(&buf); err != nil {
		t.Fatalf("unable to write PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("unable to decode PNG: %v", err)
	}
	w, h := f.Size()
	if got := img.Bounds(); got != image.Rect(0, 0, w, h) {
		t.Errorf("bounds: got %v, want %v", got, image.Rect(0, 0, w, h))
	}

	// background is opaque
	if _, _, _, a := img.At(1, 1).RGBA(); a != 0xffff {
		t.Errorf("background: got alpha %d, want %d", a, 0xffff)
	}
}
