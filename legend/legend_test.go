// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package legend_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/ensplot/legend"
	"github.com/js-arias/ensplot/render"
	"github.com/js-arias/ensplot/style"
)

type entry struct {
	Class  string
	Label  string
	Swatch legend.Swatch
}

func entries(b *legend.Builder) []entry {
	var es []entry
	for _, e := range b.Entries() {
		es = append(es, entry{Class: e.Style.Name, Label: e.Label, Swatch: e.Swatch})
	}
	return es
}

func TestBuilder(t *testing.T) {
	reg := style.Default()

	var b legend.Builder
	b.Add(reg.Style(style.Observation), "Observation", legend.CircledLine)
	b.Add(reg.Style(style.ObsArea), "Observation", legend.FilledCircle)
	for i := 0; i < 5; i++ {
		b.Add(reg.Style(style.ErrorBar), "Observation error bar", legend.ErrorBar)
	}
	b.Add(reg.Ensemble(0), "default", legend.SimpleLine)

	want := []entry{
		{Class: style.Observation, Label: "Observation", Swatch: legend.CircledLine},
		{Class: style.ObsArea, Label: "Observation", Swatch: legend.FilledCircle},
		{Class: style.ErrorBar, Label: "Observation error bar", Swatch: legend.ErrorBar},
		{Class: style.EnsembleName(0), Label: "default", Swatch: legend.SimpleLine},
	}
	if diff := cmp.Diff(want, entries(&b)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("reset: got %d entries, want %d", b.Len(), 0)
	}
	b.Add(reg.Style(style.Refcase), "Refcase", legend.SimpleLine)
	want = []entry{{Class: style.Refcase, Label: "Refcase", Swatch: legend.SimpleLine}}
	if diff := cmp.Diff(want, entries(&b)); diff != "" {
		t.Errorf("entries after reset mismatch (-want +got):\n%s", diff)
	}
}

func TestSwatchDraw(t *testing.T) {
	s, err := render.NewSurface(legend.Size, legend.Size)
	if err != nil {
		t.Fatalf("unable to create surface: %v", err)
	}
	var ops []render.Op
	s.Trace = func(o render.Op) { ops = append(ops, o) }

	reg := style.Default()
	legend.CircledLine.Draw(s, reg.Style(style.Observation), 0, 0)
	legend.FilledRect.Draw(s, reg.Ensemble(1), 0, 0)

	want := []render.Op{
		{Kind: render.LineOp, Class: style.Observation},
		{Kind: render.CircleOp, Class: style.Observation},
		{Kind: render.AreaOp, Class: style.EnsembleName(1)},
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("ops mismatch (-want +got):\n%s", diff)
	}
}
