// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/legend"
	"github.com/js-arias/ensplot/progressive"
	"github.com/js-arias/ensplot/render"
	"github.com/js-arias/ensplot/scale"
	"github.com/js-arias/ensplot/style"
)

// DefaultDirectLimit is the default maximum number of realizations
// of an ensemble plot
// drawn without the progressive scheduler.
const DefaultDirectLimit = 20

// Ensemble is the main ensemble plot:
// a line for each realization of each case,
// with the observation and the reference case
// on the overlay layer.
type Ensemble struct {
	*base
	sched *progressive.Scheduler

	// DirectLimit is the maximum number of realizations
	// drawn in a single call,
	// bigger ensembles are drawn progressively.
	DirectLimit int
}

// NewEnsemble returns a new ensemble plot
// with the default size.
func NewEnsemble(opts Options) (*Ensemble, error) {
	b, err := newBase(opts, DefaultWidth, DefaultHeight)
	if err != nil {
		return nil, err
	}
	s := progressive.NewScheduler(opts.host())
	s.Tick = opts.Tick

	e := &Ensemble{
		base:        b,
		sched:       s,
		DirectLimit: DefaultDirectLimit,
	}
	b.render = e.Render
	b.stop = s.Stop
	return e, nil
}

// Render draws the plot.
// Any render in progress is stopped
// before the layers are cleared.
func (e *Ensemble) Render() error {
	e.sched.Stop()
	e.clear()

	m := e.scale.Snapshot()
	d := e.data
	if d != nil {
		e.drawObservation(m, d)
		e.drawRefcase(m, d)
	}
	e.publish()

	w := &lines{
		surface: e.main,
		styles:  e.styles,
		legend:  &e.legend,
		m:       m,
	}
	if d != nil {
		w.cases = d.Ensembles
	}

	if w.total() <= e.DirectLimit {
		for c := 0; c < w.Cases(); c++ {
			for r := 0; r < w.Realizations(c); r++ {
				w.Draw(c, r)
			}
		}
		e.finish()
		return nil
	}
	e.sched.Start(w, e.finish)
	return nil
}

// Job returns the last progressive render job,
// or nil if there is no job in progress.
func (e *Ensemble) Job() *progressive.Job {
	return e.sched.Current()
}

// lines is the progressive workload
// of an ensemble plot.
type lines struct {
	surface *render.Surface
	styles  *style.Registry
	legend  *legend.Builder
	m       scale.Mapping
	cases   []*dataset.Case
}

func (w *lines) total() int {
	n := 0
	for _, c := range w.cases {
		n += len(c.Realizations)
	}
	return n
}

func (w *lines) Cases() int {
	return len(w.cases)
}

func (w *lines) Realizations(c int) int {
	return len(w.cases[c].Realizations)
}

// Draw draws a realization.
// When the last realization of a case is drawn
// the case is added to the legend.
func (w *lines) Draw(c, r int) {
	cs := w.cases[c]
	p := painter(w.styles.Ensemble(c), w.m)
	xs, ys := cs.Realizations[r].Samples.XY()
	p.Line(w.surface, xs, ys)

	if r == len(cs.Realizations)-1 {
		w.legend.Add(p.Style, cs.Name, legend.SimpleLine)
	}
}
