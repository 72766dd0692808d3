// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dataset implements the input data
// of ensemble plots:
// an optional observation,
// an optional reference case,
// and a set of ensemble cases,
// each one with one or more realizations.
//
// Datasets are prepared by an external collaborator
// and read from JSON files,
// for example:
//
//	{
//		"name": "FOPR",
//		"time": true,
//		"bounds": {"minX": 0, "maxX": 100, "minY": 0, "maxY": 10},
//		"observation": {
//			"continuous": false,
//			"samples": [{"x": 10, "y": 2, "std": 0.5}]
//		},
//		"refcase": {"samples": [{"x": 0, "y": 1}, {"x": 100, "y": 9}]},
//		"ensembles": [{
//			"caseName": "default",
//			"realizations": [{"samples": [{"x": 0, "y": 1}, {"x": 100, "y": 8}]}]
//		}]
//	}
//
// Once a dataset is handed to a plot
// it must be treated as immutable.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"golang.org/x/exp/slices"
)

// A Sample is a single value of a series.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Std is the standard deviation of the value,
	// only used by observations.
	Std float64 `json:"std,omitempty"`
}

// A Series is an ordered set of samples.
type Series []Sample

// XY returns the coordinates of the series.
func (s Series) XY() (xs, ys []float64) {
	xs = make([]float64, len(s))
	ys = make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return xs, ys
}

// At returns the sample closest to x.
// It returns false if the series is empty.
func (s Series) At(x float64) (Sample, bool) {
	if len(s) == 0 {
		return Sample{}, false
	}
	i := sort.Search(len(s), func(i int) bool { return s[i].X >= x })
	if i == len(s) {
		return s[len(s)-1], true
	}
	if i == 0 {
		return s[0], true
	}
	if s[i].X-x < x-s[i-1].X {
		return s[i], true
	}
	return s[i-1], true
}

// Bounds is the bounding box of a dataset.
type Bounds struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// Observation is a measured series.
type Observation struct {
	// If true,
	// the observation is drawn as a line
	// with an error area,
	// otherwise each sample is an error bar.
	Continuous bool   `json:"continuous"`
	Samples    Series `json:"samples"`
}

// Refcase is a reference case series.
type Refcase struct {
	Samples Series `json:"samples"`
}

// A Realization is a single simulated series.
type Realization struct {
	Samples Series `json:"samples"`
}

// A Case is a named ensemble of realizations.
type Case struct {
	Name         string        `json:"caseName"`
	Realizations []Realization `json:"realizations"`
}

// SamplesAt returns the value
// of each realization
// at the sample closest to x.
// Realizations without samples are ignored.
func (c *Case) SamplesAt(x float64) []float64 {
	v := make([]float64, 0, len(c.Realizations))
	for _, r := range c.Realizations {
		s, ok := r.Samples.At(x)
		if !ok {
			continue
		}
		v = append(v, s.Y)
	}
	return v
}

// A Dataset is the data of a plot.
type Dataset struct {
	Name string `json:"name"`

	// If true,
	// x values are seconds since the Unix epoch.
	Time bool `json:"time,omitempty"`

	Bounds      *Bounds      `json:"bounds,omitempty"`
	Observation *Observation `json:"observation,omitempty"`
	Refcase     *Refcase     `json:"refcase,omitempty"`
	Ensembles   []*Case      `json:"ensembles,omitempty"`
}

// Read reads a dataset from a JSON stream.
func Read(r io.Reader) (*Dataset, error) {
	d := &Dataset{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("while decoding dataset: %v", err)
	}
	return d, nil
}

// ReadFile reads a dataset from a JSON file.
func ReadFile(name string) (*Dataset, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	if d.Name == "" {
		d.Name = name
	}
	return d, nil
}

// Write writes a dataset as JSON.
func (d *Dataset) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("while encoding dataset: %v", err)
	}
	return nil
}

// DataBounds returns the bounds of the dataset.
// If the dataset has explicit bounds,
// they are returned,
// otherwise the bounds are derived
// from all of its series
// (observation values include the standard deviation).
// It returns false if the dataset is empty.
func (d *Dataset) DataBounds() (Bounds, bool) {
	if d.Bounds != nil {
		return *d.Bounds, true
	}

	b := Bounds{
		MinX: math.Inf(1),
		MaxX: math.Inf(-1),
		MinY: math.Inf(1),
		MaxY: math.Inf(-1),
	}
	add := func(x, y float64) {
		b.MinX = math.Min(b.MinX, x)
		b.MaxX = math.Max(b.MaxX, x)
		b.MinY = math.Min(b.MinY, y)
		b.MaxY = math.Max(b.MaxY, y)
	}

	if d.Observation != nil {
		for _, s := range d.Observation.Samples {
			add(s.X, s.Y-s.Std)
			add(s.X, s.Y+s.Std)
		}
	}
	if d.Refcase != nil {
		for _, s := range d.Refcase.Samples {
			add(s.X, s.Y)
		}
	}
	for _, c := range d.Ensembles {
		for _, r := range c.Realizations {
			for _, s := range r.Samples {
				add(s.X, s.Y)
			}
		}
	}

	if math.IsInf(b.MinX, 1) {
		return Bounds{}, false
	}
	return b, true
}

// ReportSteps returns the x values
// of the realizations
// as report steps.
func (d *Dataset) ReportSteps() []int64 {
	seen := make(map[int64]bool)
	var st []int64
	for _, c := range d.Ensembles {
		for _, r := range c.Realizations {
			for _, s := range r.Samples {
				v := int64(math.Round(s.X))
				if seen[v] {
					continue
				}
				seen[v] = true
				st = append(st, v)
			}
		}
	}
	slices.Sort(st)
	return st
}
