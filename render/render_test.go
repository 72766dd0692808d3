// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render_test

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/ensplot/render"
	"github.com/js-arias/ensplot/style"
)

func identity(v float64) float64 { return v }

func newSurface(t testing.TB, w, h int) (*render.Surface, *[]render.Op) {
	t.Helper()
	s, err := render.NewSurface(w, h)
	if err != nil {
		t.Fatalf("unable to create surface: %v", err)
	}
	var ops []render.Op
	s.Trace = func(o render.Op) { ops = append(ops, o) }
	return s, &ops
}

// pixel returns the alpha of a pixel
// using plot coordinates
// (y grows upwards).
func pixel(img image.Image, x, y int) uint32 {
	h := img.Bounds().Dy()
	_, _, _, a := img.At(x, h-1-y).RGBA()
	return a
}

func TestNewSurface(t *testing.T) {
	if _, err := render.NewSurface(0, 10); !errors.Is(err, render.ErrNoSurface) {
		t.Errorf("empty surface: got error %v, want %v", err, render.ErrNoSurface)
	}

	s, _ := newSurface(t, 40, 20)
	if w, h := s.Size(); w != 40 || h != 20 {
		t.Errorf("size: got %dx%d, want %dx%d", w, h, 40, 20)
	}
	b := s.Image().Bounds()
	if b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("image size: got %dx%d, want %dx%d", b.Dx(), b.Dy(), 40, 20)
	}
	if a := pixel(s.Image(), 10, 10); a != 0 {
		t.Errorf("empty surface: got alpha %d, want %d", a, 0)
	}
}

func TestPrimitives(t *testing.T) {
	s, ops := newSurface(t, 100, 100)
	reg := style.Default()

	obs := render.Painter{Style: reg.Style(style.Observation), X: identity, Y: identity}
	obs.Line(s, []float64{10, 90}, []float64{50, 50})
	if a := pixel(s.Image(), 50, 50); a == 0 {
		t.Errorf("line: pixel not drawn")
	}

	area := render.Painter{Style: reg.Style(style.ObsArea), X: identity, Y: identity}
	area.Area(s, []float64{10, 30, 30, 10}, []float64{70, 70, 90, 90})
	if a := pixel(s.Image(), 20, 80); a == 0 {
		t.Errorf("area: pixel not drawn")
	}

	obs.Circle(s, 80, 80)
	if a := pixel(s.Image(), 80, 80); a == 0 {
		t.Errorf("circle: pixel not drawn")
	}

	eb := render.Painter{Style: reg.Style(style.ErrorBar), X: identity, Y: identity}
	eb.ErrorBar(s, 50, 20, 10)
	if a := pixel(s.Image(), 50, 28); a == 0 {
		t.Errorf("error bar: whisker not drawn")
	}

	bar := render.Painter{Style: reg.Ensemble(0), X: identity, Y: identity}
	bar.Bar(s, 60, 0, 70, 10)
	if a := pixel(s.Image(), 65, 5); a == 0 {
		t.Errorf("bar: pixel not drawn")
	}
	if a := pixel(s.Image(), 58, 5); a != 0 {
		t.Errorf("bar: margin pixel drawn")
	}

	want := []render.Op{
		{Kind: render.LineOp, Class: style.Observation},
		{Kind: render.AreaOp, Class: style.ObsArea},
		{Kind: render.CircleOp, Class: style.Observation},
		{Kind: render.ErrorBarOp, Class: style.ErrorBar},
		{Kind: render.BarOp, Class: style.EnsembleName(0)},
	}
	if diff := cmp.Diff(want, *ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}

	s.Clear()
	if a := pixel(s.Image(), 50, 50); a != 0 {
		t.Errorf("clear: got alpha %d, want %d", a, 0)
	}
}

func TestDashedLine(t *testing.T) {
	s, _ := newSurface(t, 100, 20)
	st := style.Default().Style(style.Refcase).WithDashes(10, 10)
	st.Width = 2
	p := render.Painter{Style: st, X: identity, Y: identity}
	p.Line(s, []float64{0, 100}, []float64{10, 10})

	if a := pixel(s.Image(), 5, 10); a == 0 {
		t.Errorf("dash: pixel not drawn")
	}
	if a := pixel(s.Image(), 15, 10); a != 0 {
		t.Errorf("gap: pixel drawn")
	}
	if a := pixel(s.Image(), 25, 10); a == 0 {
		t.Errorf("second dash: pixel not drawn")
	}
}

func TestKindString(t *testing.T) {
	op := render.Op{Kind: render.ErrorBarOp, Class: "observation_error_bar"}
	if got, want := op.String(), "error-bar observation_error_bar"; got != want {
		t.Errorf("op: got %q, want %q", got, want)
	}
}
