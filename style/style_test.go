// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package style_test

import (
	"bytes"
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/ensplot/style"
)

func TestBlendWithWhite(t *testing.T) {
	c := style.BlendWithWhite(color.NRGBA{56, 108, 176, 128}, style.FillAlpha)
	want := color.NRGBA{155, 181, 215, 179}
	if c != want {
		t.Errorf("blend: got %v, want %v", c, want)
	}

	c = style.BlendWithWhite(color.NRGBA{10, 20, 30, 255}, 1)
	if want := (color.NRGBA{10, 20, 30, 255}); c != want {
		t.Errorf("opaque blend: got %v, want %v", c, want)
	}
}

func TestParseColor(t *testing.T) {
	tests := map[string]struct {
		in   string
		want color.NRGBA
		err  bool
	}{
		"rgba":       {in: "rgba(56, 108, 176, 0.8)", want: color.NRGBA{56, 108, 176, 204}},
		"rgb":        {in: "rgb(1,2,3)", want: color.NRGBA{1, 2, 3, 255}},
		"hex":        {in: "#ff8000", want: color.NRGBA{255, 128, 0, 255}},
		"short hex":  {in: "#f80", want: color.NRGBA{255, 136, 0, 255}},
		"bad alpha":  {in: "rgba(1,2,3,4)", err: true},
		"bad range":  {in: "rgb(1,2,300)", err: true},
		"not color":  {in: "blue", err: true},
		"bad fields": {in: "rgba(1,2,3)", err: true},
	}

	for name, test := range tests {
		c, err := style.ParseColor(test.in)
		if test.err {
			if err == nil {
				t.Errorf("%s: expecting error, got %v", name, c)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if c != test.want {
			t.Errorf("%s: got %v, want %v", name, c, test.want)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := style.Default()

	if r.Cases() != 5 {
		t.Errorf("cases: got %d, want %d", r.Cases(), 5)
	}

	e := r.Ensemble(0)
	if e.Name != "ensemble_1" {
		t.Errorf("ensemble name: got %q, want %q", e.Name, "ensemble_1")
	}
	if want := (color.NRGBA{155, 181, 215, 179}); e.Fill != want {
		t.Errorf("ensemble fill: got %v, want %v", e.Fill, want)
	}
	if s := r.Style("ensemble_1"); !reflect.DeepEqual(s, e) {
		t.Errorf("style by name: got %v, want %v", s, e)
	}

	// the registry is not modified by lookups
	e.Fill = color.NRGBA{}
	if r.Ensemble(0).Fill == e.Fill {
		t.Errorf("registry modified by a returned style")
	}

	// extended ensembles are derived from the palette
	e7 := r.Ensemble(6)
	if e7.Name != "ensemble_7" {
		t.Errorf("extended name: got %q, want %q", e7.Name, "ensemble_7")
	}
	if e7.Stroke.A != 204 {
		t.Errorf("extended stroke alpha: got %d, want %d", e7.Stroke.A, 204)
	}
	if !reflect.DeepEqual(e7, r.Ensemble(6)) {
		t.Errorf("extended style is not deterministic")
	}
	if e7.Stroke == r.Ensemble(7).Stroke {
		t.Errorf("extended styles 7 and 8 have the same color")
	}

	u := r.Style("unknown")
	if u.Name != "unknown" || u.Stroke != r.Style(style.DefaultClass).Stroke {
		t.Errorf("unknown class: got %v", u)
	}
}

func TestStyleTSV(t *testing.T) {
	r := style.Default()

	var buf bytes.Buffer
	if err := r.WriteTSV(&buf); err != nil {
		t.Fatalf("unable to write data: %v", err)
	}

	nr, err := style.ReadTSV(&buf, nil)
	if err != nil {
		t.Logf("input data:\n%s\n", buf.String())
		t.Fatalf("unable to read data: %v", err)
	}

	if !reflect.DeepEqual(nr.Classes(), r.Classes()) {
		t.Errorf("classes: got %v, want %v", nr.Classes(), r.Classes())
	}
	for _, c := range r.Classes() {
		got := nr.Style(c)
		want := r.Style(c)
		if got.Stroke != want.Stroke || got.Fill != want.Fill || got.Width != want.Width {
			t.Errorf("class %s: got %v, want %v", c, got, want)
		}
	}
}

func TestReadTSVDashes(t *testing.T) {
	in := "class\tstroke\tfill\twidth\tdashes\n" +
		"refcase\trgba(0,0,0,0.7)\trgba(0,0,0,0)\t2\t6,4\n"

	r, err := style.ReadTSV(bytes.NewBufferString(in), style.GrayScale{})
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}
	s := r.Style(style.Refcase)
	if !reflect.DeepEqual(s.Dashes, []float64{6, 4}) {
		t.Errorf("dashes: got %v, want %v", s.Dashes, []float64{6, 4})
	}
	if !s.Dashed() {
		t.Errorf("dashed: got false, want true")
	}
	if s.Cap != "butt" {
		t.Errorf("cap: got %q, want %q", s.Cap, "butt")
	}
}

func TestReadTSVMalformed(t *testing.T) {
	in := "class\tstroke\tfill\twidth\n" +
		"refcase\trgba(0,0,0,0.7)\"\trgba(0,0,0,0)\t2\n"

	_, err := style.ReadTSV(strings.NewReader(in), style.GrayScale{})
	if err == nil {
		t.Fatalf("bare quote: expecting error")
	}
	if want := "on row 2:"; !strings.Contains(err.Error(), want) {
		t.Errorf("bare quote: got error %q, want %q", err, want)
	}

	in = "class\tstroke\tfill\twidth\n\"refcase\n"
	if _, err := style.ReadTSV(strings.NewReader(in), style.GrayScale{}); err == nil {
		t.Errorf("unclosed quote: expecting error")
	}

	in = "class\tstroke\tfill\twidth\tcap\n" +
		"refcase\trgba(0,0,0,0.7)\trgba(0,0,0,0)\t2\tpointy\n"
	if _, err := style.ReadTSV(strings.NewReader(in), style.GrayScale{}); err == nil {
		t.Errorf("unknown cap: expecting error")
	}
}
