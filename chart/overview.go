// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"github.com/js-arias/ensplot/legend"
	"github.com/js-arias/ensplot/render"
)

// Overview is a fan chart of an ensemble:
// for each case,
// a band between the minimum and maximum values,
// a band between the 10th and 90th percentiles,
// and a line with the median.
type Overview struct {
	*base
	cache *Cache
}

// NewOverview returns a new overview plot
// with the default size.
func NewOverview(opts Options) (*Overview, error) {
	b, err := newBase(opts, DefaultWidth, DefaultHeight)
	if err != nil {
		return nil, err
	}
	c, err := opts.cache()
	if err != nil {
		return nil, err
	}
	o := &Overview{
		base:  b,
		cache: c,
	}
	b.render = o.Render
	return o, nil
}

// Render draws the plot.
func (o *Overview) Render() error {
	o.clear()
	m := o.scale.Snapshot()
	d := o.data
	if d == nil {
		o.finish()
		return nil
	}

	o.drawObservation(m, d)
	o.drawRefcase(m, d)

	for i, c := range d.Ensembles {
		s := o.cache.Stats(c)
		if s.Len() == 0 {
			continue
		}
		p := painter(o.styles.Ensemble(i), m)
		fan(p, o.main, s.X, s.Min, s.Max)
		fan(p, o.main, s.X, s.P10, s.P90)
		p.Line(o.main, s.X, s.P50)
		o.legend.Add(p.Style, c.Name, legend.FilledRect)
	}
	o.finish()
	return nil
}

// fan draws a band between two series.
func fan(p render.Painter, s *render.Surface, xs, low, high []float64) {
	px := make([]float64, 0, 2*len(xs))
	py := make([]float64, 0, 2*len(xs))
	for i, x := range xs {
		px = append(px, x)
		py = append(py, high[i])
	}
	for i := len(xs) - 1; i >= 0; i-- {
		px = append(px, xs[i])
		py = append(py, low[i])
	}
	p.Area(s, px, py)
}
