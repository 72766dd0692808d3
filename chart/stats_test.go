// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart_test

import (
	"reflect"
	"testing"

	"github.com/js-arias/ensplot/chart"
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/legend"
	"github.com/js-arias/ensplot/overlay"
	"github.com/js-arias/ensplot/render"
	"github.com/js-arias/ensplot/style"
)

// tenCase returns a case with 10 realizations,
// realization i has the value i+1 at x=0
// and 10*(i+1) at x=1.
func tenCase() *dataset.Case {
	c := &dataset.Case{Name: "ten"}
	for i := 1; i <= 10; i++ {
		c.Realizations = append(c.Realizations, dataset.Realization{
			Samples: dataset.Series{{X: 0, Y: float64(i)}, {X: 1, Y: float64(10 * i)}},
		})
	}
	return c
}

func TestCaseStats(t *testing.T) {
	s := chart.CaseStats(tenCase())

	want := chart.Stats{
		X:   []float64{0, 1},
		Min: []float64{1, 10},
		Max: []float64{10, 100},
		P10: []float64{1, 10},
		P50: []float64{5, 50},
		P90: []float64{9, 90},
	}
	if !reflect.DeepEqual(s, want) {
		t.Errorf("stats: got %v, want %v", s, want)
	}

	if s := chart.CaseStats(&dataset.Case{Name: "empty"}); s.Len() != 0 {
		t.Errorf("empty case: got %d steps, want %d", s.Len(), 0)
	}
}

func TestCache(t *testing.T) {
	c, err := chart.NewCache(2)
	if err != nil {
		t.Fatalf("unable to create cache: %v", err)
	}
	a, b, d := tenCase(), tenCase(), tenCase()

	c.Stats(a)
	c.Stats(a)
	if c.Len() != 1 {
		t.Errorf("cache: got %d cases, want %d", c.Len(), 1)
	}
	c.Stats(b)
	c.Stats(d)
	if c.Len() != 2 {
		t.Errorf("cache: got %d cases, want %d", c.Len(), 2)
	}

	if _, err := chart.NewCache(0); err == nil {
		t.Errorf("empty cache: expecting error")
	}
}

func TestStatistics(t *testing.T) {
	rec := &recorder{}
	frame := overlay.NewFrame(chart.DefaultMargin)
	s, err := chart.NewStatistics(chart.Options{Mount: frame, Trace: rec.trace})
	if err != nil {
		t.Fatalf("unable to create plot: %v", err)
	}

	second := tenCase()
	second.Name = "second"
	d := &dataset.Dataset{
		Name:        "statistics",
		Observation: &dataset.Observation{Samples: dataset.Series{{X: 0, Y: 1, Std: 1}}},
		Refcase:     &dataset.Refcase{Samples: dataset.Series{{X: 0, Y: 1}}},
		Ensembles:   []*dataset.Case{tenCase(), second},
	}
	if err := s.SetData(d); err != nil {
		t.Fatalf("set data: %v", err)
	}

	// observations and refcase are not drawn
	if len(rec.ops) != 10 {
		t.Errorf("ops: got %d, want %d", len(rec.ops), 10)
	}
	for i, o := range rec.ops {
		if o.Kind != render.LineOp {
			t.Errorf("op %d: got %v, want %v", i, o.Kind, render.LineOp)
		}
		if want := style.EnsembleName(i / 5); o.Class != want {
			t.Errorf("op %d: got class %q, want %q", i, o.Class, want)
		}
	}
	want := []entry{
		{Class: style.EnsembleName(0), Label: "ten", Swatch: legend.FilledCircle},
		{Class: style.EnsembleName(1), Label: "second", Swatch: legend.FilledCircle},
	}
	if got := legendOf(frame); !reflect.DeepEqual(got, want) {
		t.Errorf("legend: got %v, want %v", got, want)
	}

	h := s.Domain()
	if err := s.SetHorizontal(false); err != nil {
		t.Fatalf("vertical: %v", err)
	}
	v := s.Domain()
	if v.XMin != h.YMin || v.XMax != h.YMax {
		t.Errorf("vertical x domain: got [%g, %g], want [%g, %g]", v.XMin, v.XMax, h.YMin, h.YMax)
	}
	if len(rec.ops) != 20 {
		t.Errorf("ops after vertical: got %d, want %d", len(rec.ops), 20)
	}
}

func TestOverview(t *testing.T) {
	rec := &recorder{}
	frame := overlay.NewFrame(chart.DefaultMargin)
	o, err := chart.NewOverview(chart.Options{Mount: frame, Trace: rec.trace})
	if err != nil {
		t.Fatalf("unable to create plot: %v", err)
	}

	d := &dataset.Dataset{
		Name:      "overview",
		Refcase:   &dataset.Refcase{Samples: dataset.Series{{X: 0, Y: 1}, {X: 1, Y: 50}}},
		Ensembles: []*dataset.Case{tenCase()},
	}
	if err := o.SetData(d); err != nil {
		t.Fatalf("set data: %v", err)
	}

	want := []render.Op{
		{Kind: render.LineOp, Class: style.Refcase},
		{Kind: render.AreaOp, Class: style.EnsembleName(0)},
		{Kind: render.AreaOp, Class: style.EnsembleName(0)},
		{Kind: render.LineOp, Class: style.EnsembleName(0)},
	}
	if !reflect.DeepEqual(rec.ops, want) {
		t.Errorf("ops: got %v, want %v", rec.ops, want)
	}
	wantLegend := []entry{
		{Class: style.Refcase, Label: chart.RefcaseLabel, Swatch: legend.SimpleLine},
		{Class: style.EnsembleName(0), Label: "ten", Swatch: legend.FilledRect},
	}
	if got := legendOf(frame); !reflect.DeepEqual(got, wantLegend) {
		t.Errorf("legend: got %v, want %v", got, wantLegend)
	}
}
