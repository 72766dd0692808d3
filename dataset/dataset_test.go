// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package dataset_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/ensplot/dataset"
)

const blob = `{
	"name": "FOPR",
	"observation": {
		"continuous": true,
		"samples": [{"x": 10, "y": 2, "std": 1}, {"x": 50, "y": 4, "std": 0.5}]
	},
	"refcase": {"samples": [{"x": 0, "y": 1}, {"x": 100, "y": 9}]},
	"ensembles": [
		{
			"caseName": "default",
			"realizations": [
				{"samples": [{"x": 0, "y": 1}, {"x": 50, "y": 3}, {"x": 100, "y": 8}]},
				{"samples": [{"x": 0, "y": 2}, {"x": 50, "y": 5}, {"x": 100, "y": 12}]}
			]
		}
	]
}`

func TestRead(t *testing.T) {
	d, err := dataset.Read(strings.NewReader(blob))
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}
	testDataset(t, "read", d)

	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		t.Fatalf("unable to write data: %v", err)
	}
	nd, err := dataset.Read(&buf)
	if err != nil {
		t.Logf("input data:\n%s\n", buf.String())
		t.Fatalf("unable to read data: %v", err)
	}
	if !reflect.DeepEqual(nd, d) {
		t.Errorf("write: got %v, want %v", nd, d)
	}
}

func testDataset(t testing.TB, name string, d *dataset.Dataset) {
	t.Helper()

	if d.Name != "FOPR" {
		t.Errorf("%s: name: got %q, want %q", name, d.Name, "FOPR")
	}
	if d.Observation == nil || !d.Observation.Continuous || len(d.Observation.Samples) != 2 {
		t.Errorf("%s: observation: got %v", name, d.Observation)
	}
	if d.Refcase == nil || len(d.Refcase.Samples) != 2 {
		t.Errorf("%s: refcase: got %v", name, d.Refcase)
	}
	if len(d.Ensembles) != 1 {
		t.Fatalf("%s: ensembles: got %d, want %d", name, len(d.Ensembles), 1)
	}
	c := d.Ensembles[0]
	if c.Name != "default" || len(c.Realizations) != 2 {
		t.Errorf("%s: case: got %q with %d realizations, want %q with %d", name, c.Name, len(c.Realizations), "default", 2)
	}
}

func TestDataBounds(t *testing.T) {
	d, err := dataset.Read(strings.NewReader(blob))
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}

	b, ok := d.DataBounds()
	if !ok {
		t.Fatalf("bounds: not found")
	}
	want := dataset.Bounds{MinX: 0, MaxX: 100, MinY: 1, MaxY: 12}
	if b != want {
		t.Errorf("derived bounds: got %v, want %v", b, want)
	}

	d.Bounds = &dataset.Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
	if b, _ := d.DataBounds(); b != *d.Bounds {
		t.Errorf("explicit bounds: got %v, want %v", b, *d.Bounds)
	}

	if _, ok := (&dataset.Dataset{}).DataBounds(); ok {
		t.Errorf("empty dataset: got bounds")
	}
}

func TestSamplesAt(t *testing.T) {
	d, err := dataset.Read(strings.NewReader(blob))
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}
	c := d.Ensembles[0]

	tests := map[string]struct {
		x    float64
		want []float64
	}{
		"exact":  {x: 50, want: []float64{3, 5}},
		"near":   {x: 80, want: []float64{8, 12}},
		"before": {x: -10, want: []float64{1, 2}},
	}
	for name, test := range tests {
		got := c.SamplesAt(test.x)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}

	if got, want := d.ReportSteps(), []int64{0, 50, 100}; !reflect.DeepEqual(got, want) {
		t.Errorf("report steps: got %v, want %v", got, want)
	}
}
