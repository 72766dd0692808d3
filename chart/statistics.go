// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/legend"
	"github.com/js-arias/ensplot/scale"
)

// MedianDashes is the dash pattern of the median line
// of a statistics plot.
var MedianDashes = []float64{10, 5}

// Statistics is a percentile plot:
// for each case,
// lines with the maximum,
// the minimum,
// the median (dashed),
// and the 10th and 90th percentiles.
//
// Observations and the reference case are not drawn.
type Statistics struct {
	*base
	cache      *Cache
	horizontal bool
}

// NewStatistics returns a new statistics plot
// with the default size,
// drawn in the horizontal direction.
func NewStatistics(opts Options) (*Statistics, error) {
	b, err := newBase(opts, DefaultWidth, DefaultHeight)
	if err != nil {
		return nil, err
	}
	c, err := opts.cache()
	if err != nil {
		return nil, err
	}
	s := &Statistics{
		base:       b,
		cache:      c,
		horizontal: true,
	}
	b.render = s.Render
	b.domain = s.statsDomain
	return s, nil
}

// SetHorizontal sets the draw direction.
// In the vertical direction
// the report steps are in the Y axis,
// and the values in the X axis.
func (s *Statistics) SetHorizontal(h bool) error {
	if s.horizontal == h {
		return nil
	}
	s.horizontal = h
	return s.SetData(s.data)
}

// Horizontal returns true if the plot is drawn
// in the horizontal direction.
func (s *Statistics) Horizontal() bool {
	return s.horizontal
}

func (s *Statistics) statsDomain(d *dataset.Dataset) {
	if s.horizontal {
		s.dataDomain(d)
		return
	}

	s.scale.SetXKind(scale.Linear)
	b, ok := d.DataBounds()
	if !ok {
		s.scale.SetDomain(scale.Domain{XMin: 0, XMax: 1, YMin: 0, YMax: 1})
		return
	}
	s.scale.SetDomain(scale.Domain{
		XMin: b.MinY,
		XMax: b.MaxY,
		YMin: b.MinX,
		YMax: b.MaxX,
	})
}

// Render draws the plot.
func (s *Statistics) Render() error {
	s.clear()
	m := s.scale.Snapshot()
	d := s.data
	if d == nil {
		s.finish()
		return nil
	}

	for i, c := range d.Ensembles {
		st := s.cache.Stats(c)
		if st.Len() == 0 {
			continue
		}
		p := painter(s.styles.Ensemble(i), m)
		median := p
		median.Style = p.Style.WithDashes(MedianDashes...)

		line := func(values []float64) {
			if s.horizontal {
				p.Line(s.main, st.X, values)
				return
			}
			p.Line(s.main, values, st.X)
		}
		line(st.Max)
		line(st.Min)
		if s.horizontal {
			median.Line(s.main, st.X, st.P50)
		} else {
			median.Line(s.main, st.P50, st.X)
		}
		line(st.P10)
		line(st.P90)
		s.legend.Add(p.Style, c.Name, legend.FilledCircle)
	}
	s.finish()
	return nil
}
