// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"math"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/legend"
	"github.com/js-arias/ensplot/overlay"
	"github.com/js-arias/ensplot/reportstep"
	"github.com/js-arias/ensplot/scale"
	"github.com/js-arias/ensplot/style"
)

// DefaultBins is the default number of bins
// of a histogram.
const DefaultBins = 30

// MarkerDots is the number of dots
// of the observation marker of a histogram.
const MarkerDots = 5

// LinearBins returns the bin edges
// of a linear histogram
// with approximately n bins,
// placed at the nice ticks of the domain.
func LinearBins(min, max float64, n int) []float64 {
	if min > max {
		min, max = max, min
	}
	edges := scale.Ticks(min, max, n)
	if len(edges) < 2 {
		return []float64{min, max}
	}
	return edges
}

// LogBins returns the bin edges
// of a logarithmic histogram
// with n bins,
// in which each bin is wider than the previous one
// by a constant power of ten factor.
// It returns nil if the bounds are not positive.
func LogBins(min, max float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	if min <= 0 || max <= min {
		return nil
	}
	factor := math.Pow(10, (math.Log10(max)-math.Log10(min))/float64(n))

	edges := make([]float64, n+1)
	edges[0] = min
	for i := 1; i < n; i++ {
		edges[i] = edges[i-1] * factor
	}
	edges[n] = max
	return edges
}

// Count returns the number of values in each bin.
// Values outside the bins
// are counted in the first or last bin.
// The last bin includes its upper edge.
func Count(values, edges []float64) []int {
	if len(edges) < 2 {
		return nil
	}
	n := len(edges) - 1
	counts := make([]int, n)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		i := sort.Search(len(edges), func(i int) bool { return edges[i] > v }) - 1
		i = max(0, min(i, n-1))
		counts[i]++
	}
	return counts
}

// Histogram is a histogram of the values
// of the realizations of each case
// at a report step.
// The observation
// and the reference case
// at the same report step
// are drawn as vertical markers.
type Histogram struct {
	*base

	bins  int
	log   bool
	at    float64
	hasAt bool

	// value extent of the data
	vMin, vMax float64

	edges  []float64
	counts [][]int
}

// NewHistogram returns a new histogram
// with the default size.
func NewHistogram(opts Options) (*Histogram, error) {
	b, err := newBase(opts, HistogramWidth, HistogramHeight)
	if err != nil {
		return nil, err
	}
	h := &Histogram{
		base: b,
		bins: DefaultBins,
		vMin: 0,
		vMax: 1,
	}
	b.render = h.Render
	b.domain = h.valueDomain
	b.labels = histogramLabels
	return h, nil
}

// SetBins sets the number of bins.
func (h *Histogram) SetBins(n int) error {
	if n < 1 {
		n = 1
	}
	if n == h.bins {
		return nil
	}
	h.bins = n
	return h.Render()
}

// SetLog sets the use of logarithmic bins.
func (h *Histogram) SetLog(log bool) error {
	if log == h.log {
		return nil
	}
	h.log = log
	return h.Render()
}

// SetReportStep sets the report step
// of the histogram.
// By default,
// the last report step of the data is used.
func (h *Histogram) SetReportStep(x float64) error {
	if h.hasAt && h.at == x {
		return nil
	}
	h.at = x
	h.hasAt = true
	return h.Render()
}

// ReportStep returns the report step
// used in the last render pass.
func (h *Histogram) ReportStep() float64 {
	return h.at
}

// Edges returns the bin edges
// of the last render pass.
func (h *Histogram) Edges() []float64 {
	return h.edges
}

// Counts returns the bin counts of each case
// in the last render pass.
func (h *Histogram) Counts() [][]int {
	return h.counts
}

// valueDomain uses the value extent of the data
// as the X axis.
func (h *Histogram) valueDomain(d *dataset.Dataset) {
	h.scale.SetXKind(scale.Linear)
	h.vMin, h.vMax = 0, 1
	if b, ok := d.DataBounds(); ok {
		h.vMin, h.vMax = b.MinY, b.MaxY
	}
	h.scale.SetDomain(scale.Domain{XMin: h.vMin, XMax: h.vMax, YMin: 0, YMax: 1})
}

// reportStep returns the report step
// to be drawn.
func (h *Histogram) reportStep(d *dataset.Dataset) float64 {
	if h.hasAt {
		return h.at
	}
	st := reportstep.New()
	st.Add(d)
	if last, ok := st.Last(); ok {
		return float64(last)
	}
	return 0
}

func (h *Histogram) binEdges() []float64 {
	dom := h.scale.Domain()
	if h.log {
		lo := dom.XMin
		if lo <= 0 {
			lo = h.minPositive()
		}
		if edges := LogBins(lo, dom.XMax, h.bins); edges != nil {
			return edges
		}
	}
	return LinearBins(dom.XMin, dom.XMax, h.bins)
}

// minPositive returns the smallest positive sample
// at the report step.
func (h *Histogram) minPositive() float64 {
	min := math.Inf(1)
	for _, c := range h.data.Ensembles {
		for _, v := range c.SamplesAt(h.at) {
			if v > 0 && v < min {
				min = v
			}
		}
	}
	if math.IsInf(min, 1) {
		return 0
	}
	return min
}

// Render draws the plot.
func (h *Histogram) Render() error {
	h.clear()
	h.edges = nil
	h.counts = nil
	d := h.data
	if d == nil {
		h.finish()
		return nil
	}
	h.at = h.reportStep(d)

	h.edges = h.binEdges()
	maxCount := 0
	for _, c := range d.Ensembles {
		counts := Count(c.SamplesAt(h.at), h.edges)
		for _, n := range counts {
			maxCount = max(maxCount, n)
		}
		h.counts = append(h.counts, counts)
	}

	top := float64(max(maxCount, 1))
	dom := h.scale.SetDomain(scale.Domain{XMin: h.vMin, XMax: h.vMax, YMin: 0, YMax: top})
	if dom.YMax == top && h.scale.Pins().YMax == nil {
		h.scale.SetDomain(scale.Domain{XMin: h.vMin, XMax: h.vMax, YMin: 0, YMax: top + 1})
	}
	m := h.scale.Snapshot()

	for i, c := range d.Ensembles {
		p := painter(h.styles.Ensemble(i), m)
		for j, n := range h.counts[i] {
			if n == 0 {
				continue
			}
			p.Bar(h.main, h.edges[j], 0, h.edges[j+1], float64(n))
		}
		h.legend.Add(p.Style, c.Name, legend.FilledRect)
	}

	h.drawMarkers(m, d)
	h.finish()
	return nil
}

// drawMarkers draws the observation
// and the reference case
// at the report step
// on the overlay layer.
func (h *Histogram) drawMarkers(m scale.Mapping, d *dataset.Dataset) {
	dom := h.scale.Domain()

	if d.Observation != nil {
		if s, ok := d.Observation.Samples.At(h.at); ok {
			if s.Std > 0 {
				area := painter(h.styles.Style(style.ObsArea), m)
				lo, hi := s.Y-s.Std, s.Y+s.Std
				area.Area(h.over, []float64{lo, hi, hi, lo}, []float64{dom.YMin, dom.YMin, dom.YMax, dom.YMax})
				h.legend.Add(area.Style, ObservationLabel, legend.FilledCircle)
			}

			line := painter(h.styles.Style(style.Observation), m)
			line.Line(h.over, []float64{s.Y, s.Y}, []float64{dom.YMin, dom.YMax})
			step := (dom.YMax - dom.YMin) / (MarkerDots + 1)
			for i := 1; i <= MarkerDots; i++ {
				line.Circle(h.over, s.Y, dom.YMin+float64(i)*step)
			}
			h.legend.Add(line.Style, ObservationLabel, legend.CircledLine)
		}
	}

	if d.Refcase != nil {
		if s, ok := d.Refcase.Samples.At(h.at); ok {
			p := painter(h.styles.Style(style.Refcase), m)
			p.Line(h.over, []float64{s.Y, s.Y}, []float64{dom.YMin, dom.YMax})
			h.legend.Add(p.Style, RefcaseLabel, legend.SimpleLine)
		}
	}
}

// histogramLabels uses SI labels for values
// and integer labels for counts.
func histogramLabels(x, y *overlay.Axis) {
	for i, t := range x.Ticks {
		if t.IsMinor() {
			continue
		}
		x.Ticks[i].Label = strings.TrimSpace(humanize.SIWithDigits(t.Value, 2, ""))
	}
	ticks := y.Ticks[:0]
	for _, t := range y.Ticks {
		if t.Value != math.Trunc(t.Value) {
			// counts are integers
			continue
		}
		if !t.IsMinor() {
			t.Label = humanize.Comma(int64(t.Value))
		}
		ticks = append(ticks, t)
	}
	y.Ticks = ticks
}
