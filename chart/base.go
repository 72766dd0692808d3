// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image"
	"math"

	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/legend"
	"github.com/js-arias/ensplot/overlay"
	"github.com/js-arias/ensplot/render"
	"github.com/js-arias/ensplot/scale"
	"github.com/js-arias/ensplot/style"
)

// Legend labels.
const (
	ObservationLabel = "Observation"
	ErrorBarLabel    = "Observation error bar"
	RefcaseLabel     = "Refcase"
)

// CircleSpacing is the approximate distance,
// in pixels,
// between the circles of a continuous observation.
const CircleSpacing = 20

// base is the shared state of the plot controllers.
type base struct {
	opts   Options
	styles *style.Registry
	mount  overlay.Mount
	margin overlay.Margin

	// size of the drawing area
	width, height int

	// size of the plot at creation
	defWidth, defHeight int
	scale         *scale.Manager

	main, over *render.Surface
	legend     legend.Builder

	data     *dataset.Dataset
	complete []func()

	// hooks of the concrete controller
	render func() error
	stop   func()
	domain func(d *dataset.Dataset)
	labels func(x, y *overlay.Axis)
}

func newBase(opts Options, w, h int) (*base, error) {
	b := &base{
		opts:   opts,
		styles: opts.styles(),
		mount:  opts.Mount,
		margin: DefaultMargin,
		scale:  scale.NewManager(scale.Linear),
		stop:   func() {},

		defWidth:  w,
		defHeight: h,
	}
	b.domain = b.dataDomain
	if b.mount == nil {
		b.mount = overlay.NewFrame(b.margin)
	}
	if err := b.setArea(w-b.margin.Left-b.margin.Right, h-b.margin.Top-b.margin.Bottom); err != nil {
		return nil, err
	}
	b.mount.SetTitle(NoData)
	return b, nil
}

func (b *base) setArea(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: drawing area %dx%d", render.ErrNoSurface, w, h)
	}

	if b.main == nil {
		main, err := render.NewSurface(w, h)
		if err != nil {
			return err
		}
		over, err := render.NewSurface(w, h)
		if err != nil {
			return err
		}
		main.Trace = b.opts.Trace
		over.Trace = b.opts.Trace
		b.main, b.over = main, over
	} else {
		if err := b.main.Resize(w, h); err != nil {
			return err
		}
		if err := b.over.Resize(w, h); err != nil {
			return err
		}
	}

	b.width, b.height = w, h
	b.scale.SetExtent(float64(w), float64(h))
	return nil
}

// Mount returns the container of the plot.
func (b *base) Mount() overlay.Mount {
	return b.mount
}

// Size returns the size of the drawing area.
func (b *base) Size() (w, h int) {
	return b.width, b.height
}

// DefaultSize returns the size of the plot
// when it was created,
// without the host chrome.
func (b *base) DefaultSize() (w, h int) {
	return b.defWidth, b.defHeight
}

// Domain returns the effective domain of the plot.
func (b *base) Domain() scale.Domain {
	return b.scale.Domain()
}

// Layers returns the raster layers of the plot
// (the main layer and the overlay layer).
func (b *base) Layers() []image.Image {
	return []image.Image{b.main.Image(), b.over.Image()}
}

// SetData replaces the dataset of the plot,
// recomputes the domain,
// and renders the plot.
func (b *base) SetData(d *dataset.Dataset) error {
	b.stop()
	b.data = d
	if d != nil {
		b.domain(d)
	}
	return b.render()
}

// Resize sets the size of the plot,
// including the host chrome,
// and renders the plot again.
func (b *base) Resize(w, h int) error {
	b.stop()
	w -= ChromeWidth
	h -= ChromeHeight
	if err := b.setArea(w-b.margin.Left-b.margin.Right, h-b.margin.Top-b.margin.Bottom); err != nil {
		return err
	}
	return b.SetData(b.data)
}

// SetDomainOverride sets the pinned bounds of the domain.
func (b *base) SetDomainOverride(p scale.Pins) error {
	if !b.scale.Pin(p) {
		return nil
	}
	return b.render()
}

// OnRenderComplete adds a function
// called each time a render pass is completed.
func (b *base) OnRenderComplete(f func()) {
	b.complete = append(b.complete, f)
}

// dataDomain sets the domain
// from the bounds of the dataset.
func (b *base) dataDomain(d *dataset.Dataset) {
	if d.Time {
		b.scale.SetXKind(scale.Time)
	} else {
		b.scale.SetXKind(scale.Linear)
	}
	bounds, ok := d.DataBounds()
	if !ok {
		b.scale.SetDomain(scale.Domain{XMin: 0, XMax: 1, YMin: 0, YMax: 1})
		return
	}
	b.scale.SetDomain(scale.Domain{
		XMin: bounds.MinX,
		XMax: bounds.MaxX,
		YMin: bounds.MinY,
		YMax: bounds.MaxY,
	})
}

// clear starts a new pass.
func (b *base) clear() {
	b.main.Clear()
	b.over.Clear()
	b.legend.Reset()
}

func (b *base) title() string {
	if b.data == nil || b.data.Name == "" {
		return NoData
	}
	return b.data.Name
}

func (b *base) axes() (x, y overlay.Axis) {
	d := b.scale.Domain()
	x = overlay.Axis{Min: d.XMin, Max: d.XMax, Ticks: b.scale.XTicks()}
	y = overlay.Axis{Min: d.YMin, Max: d.YMax, Ticks: b.scale.YTicks()}
	if b.labels != nil {
		b.labels(&x, &y)
	}
	return x, y
}

// publish sends the elements of the plot
// to the mount point.
func (b *base) publish() {
	b.mount.SetTitle(b.title())
	b.mount.SetAxes(b.axes())
	b.mount.SetLegend(b.legend.Entries())
	b.mount.SetLayers(b.Layers()...)
}

// finish completes a render pass.
func (b *base) finish() {
	b.publish()
	for _, f := range b.complete {
		f()
	}
}

func painter(st style.Style, m scale.Mapping) render.Painter {
	return render.Painter{Style: st, X: m.MapX, Y: m.MapY}
}

// drawObservation draws the observation
// on the overlay layer.
func (b *base) drawObservation(m scale.Mapping, d *dataset.Dataset) {
	if d.Observation == nil || len(d.Observation.Samples) == 0 {
		return
	}
	obs := d.Observation.Samples

	if !d.Observation.Continuous {
		p := painter(b.styles.Style(style.ErrorBar), m)
		for _, s := range obs {
			p.ErrorBar(b.over, s.X, s.Y, s.Std)
		}
		b.legend.Add(p.Style, ErrorBarLabel, legend.ErrorBar)
		return
	}

	// error area,
	// forward along the top
	// and backward along the bottom
	xs := make([]float64, 0, 2*len(obs))
	ys := make([]float64, 0, 2*len(obs))
	for _, s := range obs {
		xs = append(xs, s.X)
		ys = append(ys, s.Y+s.Std)
	}
	for i := len(obs) - 1; i >= 0; i-- {
		xs = append(xs, obs[i].X)
		ys = append(ys, obs[i].Y-obs[i].Std)
	}
	area := painter(b.styles.Style(style.ObsArea), m)
	area.Area(b.over, xs, ys)

	line := painter(b.styles.Style(style.Observation), m)
	xs, ys = obs.XY()
	line.Line(b.over, xs, ys)

	count := float64(b.width) / CircleSpacing
	step := math.Max(float64(len(obs))/count, 1)
	for i := 0.0; i < float64(len(obs))-1; i += step {
		idx := min(len(obs)-1, int(math.Round(i)))
		line.Circle(b.over, obs[idx].X, obs[idx].Y)
	}
	last := obs[len(obs)-1]
	line.Circle(b.over, last.X, last.Y)

	b.legend.Add(line.Style, ObservationLabel, legend.CircledLine)
	b.legend.Add(area.Style, ObservationLabel, legend.FilledCircle)
}

// drawRefcase draws the reference case
// on the overlay layer.
func (b *base) drawRefcase(m scale.Mapping, d *dataset.Dataset) {
	if d.Refcase == nil || len(d.Refcase.Samples) == 0 {
		return
	}
	p := painter(b.styles.Style(style.Refcase), m)
	xs, ys := d.Refcase.Samples.XY()
	p.Line(b.over, xs, ys)
	b.legend.Add(p.Style, RefcaseLabel, legend.SimpleLine)
}
