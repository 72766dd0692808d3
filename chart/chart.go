// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package chart implements the plot controllers
// of ensemble datasets:
// the main ensemble plot,
// the overview (fan) plot,
// the percentile statistics plot,
// and the histogram.
//
// A controller owns two raster layers:
// the main layer,
// with the ensemble content,
// and the overlay layer,
// with the observations and the reference case.
// Both layers are cleared and redrawn on each render pass.
//
// All the methods of a controller must be called
// from the goroutine of the host event loop
// used by its scheduler.
package chart

import (
	"time"

	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/overlay"
	"github.com/js-arias/ensplot/progressive"
	"github.com/js-arias/ensplot/render"
	"github.com/js-arias/ensplot/scale"
	"github.com/js-arias/ensplot/style"
)

// Default sizes of the plots,
// in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 512

	HistogramWidth  = 384
	HistogramHeight = 256
)

// Size of the host chrome
// subtracted from the size requested on resize.
const (
	ChromeWidth  = 80
	ChromeHeight = 70
)

// DefaultMargin is the margin around the drawing area.
var DefaultMargin = overlay.Margin{Left: 90, Right: 20, Top: 20, Bottom: 30}

// NoData is the title of a plot without data.
const NoData = "No data"

// A Controller is a plot controller.
type Controller interface {
	// SetData replaces the dataset of the plot,
	// recomputes the domain
	// and renders the plot.
	SetData(d *dataset.Dataset) error

	// Resize sets the size of the plot,
	// including the host chrome,
	// and renders the plot again
	// with the stored dataset.
	Resize(w, h int) error

	// SetDomainOverride sets the user pinned bounds
	// of the domain.
	// The plot is rendered again
	// only if a bound was changed.
	SetDomainOverride(p scale.Pins) error

	// Render draws the plot.
	Render() error

	// OnRenderComplete adds a function
	// to be called each time a render pass is completed.
	OnRenderComplete(f func())

	// DefaultSize returns the size of the plot
	// used when no size is given,
	// without the host chrome.
	DefaultSize() (w, h int)
}

// Options are the optional collaborators
// of a plot controller.
type Options struct {
	// Styles is the style registry.
	// If nil,
	// the default styles are used.
	Styles *style.Registry

	// Mount is the container of the plot.
	// If nil,
	// an overlay.Frame is used.
	Mount overlay.Mount

	// Host is the event loop of the progressive renders.
	// If nil,
	// a virtual clock is used,
	// so a render pass is always completed
	// in a single tick.
	Host progressive.Host

	// Cache is the cache of the ensemble statistics.
	// If nil,
	// each controller uses its own cache.
	Cache *Cache

	// If defined,
	// Trace is called with each primitive drawn.
	Trace func(render.Op)

	// If defined,
	// Tick is called at the end of each tick
	// of a progressive render.
	Tick func(j *progressive.Job, drawn int, elapsed time.Duration)
}

func (o Options) styles() *style.Registry {
	if o.Styles == nil {
		return style.Default()
	}
	return o.Styles
}

func (o Options) host() progressive.Host {
	if o.Host == nil {
		return progressive.NewStepper(time.Now())
	}
	return o.Host
}

func (o Options) cache() (*Cache, error) {
	if o.Cache == nil {
		return NewCache(DefaultCacheSize)
	}
	return o.Cache, nil
}
