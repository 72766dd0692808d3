// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package batch_test

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/js-arias/ensplot/chart"
	"github.com/js-arias/ensplot/cmd/ensplot/batch"
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/scale"
)

func testData(name string, realizations int) *dataset.Dataset {
	c := &dataset.Case{Name: "default"}
	for i := 0; i < realizations; i++ {
		c.Realizations = append(c.Realizations, dataset.Realization{
			Samples: dataset.Series{{X: 0, Y: float64(i)}, {X: 10, Y: float64(2 * i)}},
		})
	}
	return &dataset.Dataset{
		Name:      name,
		Ensembles: []*dataset.Case{c},
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	ds := []*dataset.Dataset{
		testData("small", 3),
		testData("large", 200),
	}
	cfg := batch.Config{
		Prefix: filepath.Join(dir, "test"),
		Kind:   "draw",
		Jobs:   2,
		Pins:   scale.Pins{YMax: scale.Value(500)},
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err := batch.Render(ctx, ds, cfg, func(d *dataset.Dataset, opts chart.Options) (chart.Controller, error) {
		return chart.NewEnsemble(opts)
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, name := range []string{"test-small-draw.svg", "test-large-draw.svg"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("output %q: %v", name, err)
			continue
		}
		if !strings.Contains(string(b), "<svg") {
			t.Errorf("output %q: not an SVG file", name)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	dir := t.TempDir()
	cfg := batch.Config{
		Prefix: filepath.Join(dir, "test"),
		PNG:    true,
		Width:  400,
		Height: 300,
	}

	err := batch.Render(context.Background(), []*dataset.Dataset{testData("png", 5)}, cfg, func(d *dataset.Dataset, opts chart.Options) (chart.Controller, error) {
		return chart.NewOverview(opts)
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "test-png.png"))
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if !strings.HasPrefix(string(b), "\x89PNG") {
		t.Errorf("output: not a PNG file")
	}
}

func TestRenderDefaultSize(t *testing.T) {
	dir := t.TempDir()
	cfg := batch.Config{
		Prefix: filepath.Join(dir, "test"),
		Kind:   "hist",
		PNG:    true,
		Height: 300,
	}

	err := batch.Render(context.Background(), []*dataset.Dataset{testData("size", 5)}, cfg, func(d *dataset.Dataset, opts chart.Options) (chart.Controller, error) {
		return chart.NewHistogram(opts)
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "test-size-hist.png"))
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	defer f.Close()
	img, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if img.Width != chart.HistogramWidth {
		t.Errorf("width: got %d, want %d", img.Width, chart.HistogramWidth)
	}
}

func TestOutputName(t *testing.T) {
	tests := map[string]struct {
		name string
		cfg  batch.Config
		want string
	}{
		"plain":   {name: "fopr", want: "fopr"},
		"file":    {name: "data/fopr.json", want: "fopr"},
		"spaces":  {name: "field oil rate", want: "field_oil_rate"},
		"kind":    {name: "fopr", cfg: batch.Config{Kind: "hist"}, want: "fopr-hist"},
		"prefix":  {name: "fopr", cfg: batch.Config{Prefix: "out", Kind: "stats"}, want: "out-fopr-stats"},
		"no name": {name: "", want: "dataset-1"},
	}

	for name, test := range tests {
		got := batch.OutputName(&dataset.Dataset{Name: test.name}, 0, test.cfg)
		if got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	v, err := batch.ParseValue("12.5", false)
	if err != nil {
		t.Fatalf("number: %v", err)
	}
	if v != 12.5 {
		t.Errorf("number: got %g, want %g", v, 12.5)
	}

	v, err = batch.ParseValue("2020-01-01", true)
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	if want := float64(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()); v != want {
		t.Errorf("date: got %g, want %g", v, want)
	}

	if _, err := batch.ParseValue("2020-01-01", false); err == nil {
		t.Errorf("date as value: expecting error")
	}
}

func TestPins(t *testing.T) {
	f := batch.Flags{XMin: "2020-01-01", YMax: "100"}
	p, err := f.Pins()
	if err != nil {
		t.Fatalf("pins: %v", err)
	}
	if p.XMin == nil || p.YMax == nil || p.XMax != nil || p.YMin != nil {
		t.Fatalf("pins: got %v", p)
	}
	if *p.YMax != 100 {
		t.Errorf("y max: got %g, want %g", *p.YMax, 100.0)
	}

	f = batch.Flags{YMin: "low"}
	if _, err := f.Pins(); err == nil {
		t.Errorf("invalid pin: expecting error")
	}
}
