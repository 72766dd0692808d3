// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package batch implements the rendering
// of the datasets of a project
// into image files,
// as used by the plot commands.
//
// Each dataset is rendered with its own plot controller
// and its own event loop,
// so several datasets can be rendered in parallel.
package batch

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/js-arias/command"
	"github.com/js-arias/ensplot/chart"
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/overlay"
	"github.com/js-arias/ensplot/progressive"
	"github.com/js-arias/ensplot/project"
	"github.com/js-arias/ensplot/render"
	"github.com/js-arias/ensplot/reportstep"
	"github.com/js-arias/ensplot/scale"
	"github.com/js-arias/ensplot/style"
	"golang.org/x/sync/errgroup"
)

// A Builder creates the plot controller
// for a dataset.
// It is called inside the event loop of the dataset.
type Builder func(d *dataset.Dataset, opts chart.Options) (chart.Controller, error)

// Flags are the flags shared by the plot commands.
type Flags struct {
	Output  string
	PNG     bool
	Trace   bool
	Verbose bool
	Jobs    int
	Width   int
	Height  int
	Palette string

	XMin, XMax string
	YMin, YMax string
}

// Set sets the flags in a flag set.
func (f *Flags) Set(fs *flag.FlagSet) {
	fs.StringVar(&f.Output, "output", "", "")
	fs.StringVar(&f.Output, "o", "", "")
	fs.BoolVar(&f.PNG, "png", false, "")
	fs.BoolVar(&f.Trace, "trace", false, "")
	fs.BoolVar(&f.Verbose, "verbose", false, "")
	fs.IntVar(&f.Jobs, "cpu", 0, "")
	fs.IntVar(&f.Width, "width", 0, "")
	fs.IntVar(&f.Height, "height", 0, "")
	fs.StringVar(&f.Palette, "palette", "", "")
	fs.StringVar(&f.XMin, "xmin", "", "")
	fs.StringVar(&f.XMax, "xmax", "", "")
	fs.StringVar(&f.YMin, "ymin", "", "")
	fs.StringVar(&f.YMax, "ymax", "", "")
}

// FlagsHelp is the description of the shared flags
// used in the long help of the plot commands.
const FlagsHelp = `
By default, the plots will be written as SVG files using the name of the
dataset. Use the flag --png to write PNG images instead. Use the flag -o, or
--output, to define a prefix for the resulting files.

By default, plots are drawn using the default size of the plot. Use the flags
--width and --height to define a different size in pixels.

By default, the domain of the plot is derived from the data. Use the flags
--xmin, --xmax, --ymin, and --ymax to pin one or more bounds of the domain.
Pinned bounds are used as given. For time datasets, the X bounds can be given
as dates (e.g., "2020-01-01").

By default, ensemble cases without an explicit style in the project style
table take their colors from the "iridescent" palette. Use the flag --palette
to define a different palette. Valid palettes are "iridescent",
"incandescent", "rainbow", and "gray".

By default, all the CPUs will be used to render the datasets. Use the flag
--cpu to define the number of datasets rendered in parallel.

If the flag --trace is defined, each drawn primitive will be printed into the
standard error. If the flag --verbose is defined, the progress of the renders
will be printed into the standard error.
`

// Pins returns the pinned bounds
// defined by the flags.
func (f *Flags) Pins() (scale.Pins, error) {
	var p scale.Pins
	var err error
	if p.XMin, err = parsePin(f.XMin, true); err != nil {
		return p, fmt.Errorf("flag --xmin: %v", err)
	}
	if p.XMax, err = parsePin(f.XMax, true); err != nil {
		return p, fmt.Errorf("flag --xmax: %v", err)
	}
	if p.YMin, err = parsePin(f.YMin, false); err != nil {
		return p, fmt.Errorf("flag --ymin: %v", err)
	}
	if p.YMax, err = parsePin(f.YMax, false); err != nil {
		return p, fmt.Errorf("flag --ymax: %v", err)
	}
	return p, nil
}

func parsePin(v string, date bool) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	x, err := ParseValue(v, date)
	if err != nil {
		return nil, err
	}
	return scale.Value(x), nil
}

// ParseValue parses a value given in the command line.
// If date is true,
// the value can be a date.
func ParseValue(v string, date bool) (float64, error) {
	if x, err := strconv.ParseFloat(v, 64); err == nil {
		return x, nil
	}
	if !date {
		return 0, fmt.Errorf("invalid value %q", v)
	}
	t, err := reportstep.Parse(v)
	if err != nil {
		return 0, err
	}
	return float64(t), nil
}

// Run renders the datasets of a project
// using a plot controller.
// Kind is the kind of plot,
// used as a suffix of the output files.
func (f *Flags) Run(c *command.Command, p *project.Project, kind string, build Builder) error {
	pal, ok := style.Palette(f.Palette)
	if !ok {
		return fmt.Errorf("unknown palette %q", f.Palette)
	}
	reg, err := p.Styles(pal)
	if err != nil {
		return err
	}
	pins, err := f.Pins()
	if err != nil {
		return err
	}

	ds, err := p.Datasets()
	if err != nil {
		return err
	}
	if len(ds) == 0 {
		return nil
	}

	cfg := Config{
		Styles: reg,
		Pins:   pins,
		Width:  f.Width,
		Height: f.Height,
		Prefix: f.Output,
		Kind:   kind,
		PNG:    f.PNG,
		Jobs:   f.Jobs,
	}
	if f.Trace || f.Verbose {
		lw := &lockedWriter{w: c.Stderr()}
		if f.Trace {
			cfg.Trace = lw
		}
		if f.Verbose {
			cfg.Verbose = lw
		}
	}
	return Render(context.Background(), ds, cfg, build)
}

// Config is the configuration
// of a batch render.
type Config struct {
	Styles *style.Registry
	Pins   scale.Pins

	// Size of the plot,
	// if 0,
	// the default size of the plot is used.
	Width, Height int

	// Output file names
	// are <prefix>-<dataset>-<kind>.<ext>
	Prefix string
	Kind   string
	PNG    bool

	// Jobs is the maximum number of datasets
	// rendered in parallel.
	// If 0,
	// the number of CPUs is used.
	Jobs int

	Trace   io.Writer
	Verbose io.Writer
}

// ErrIncomplete is returned if a render pass
// is not completed.
var ErrIncomplete = errors.New("render pass not completed")

// Render renders a set of datasets
// and writes the resulting images.
func Render(ctx context.Context, ds []*dataset.Dataset, cfg Config, build Builder) error {
	g, ctx := errgroup.WithContext(ctx)
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	g.SetLimit(jobs)
	names := make(map[string]int, len(ds))
	for i, d := range ds {
		d := d
		name := OutputName(d, i, cfg)
		if n := names[name]; n > 0 {
			name = fmt.Sprintf("%s-%d", name, n)
		}
		names[name]++
		g.Go(func() error {
			frame, err := renderDataset(ctx, d, cfg, build)
			if err != nil {
				return fmt.Errorf("dataset %q: %v", d.Name, err)
			}
			return writeFrame(name, frame, cfg.PNG)
		})
	}
	return g.Wait()
}

func renderDataset(ctx context.Context, d *dataset.Dataset, cfg Config, build Builder) (*overlay.Frame, error) {
	loop := progressive.NewLoop()
	frame := overlay.NewFrame(chart.DefaultMargin)
	opts := chart.Options{
		Styles: cfg.Styles,
		Mount:  frame,
		Host:   loop,
	}
	if cfg.Trace != nil {
		opts.Trace = func(o render.Op) {
			fmt.Fprintf(cfg.Trace, "%s\t%s\t%s\n", d.Name, o.Kind, o.Class)
		}
	}
	if cfg.Verbose != nil {
		opts.Tick = func(j *progressive.Job, drawn int, elapsed time.Duration) {
			fmt.Fprintf(cfg.Verbose, "%s: tick %s: %s realizations in %v\n", d.Name, humanize.Comma(int64(j.Ticks())), humanize.Comma(int64(drawn)), elapsed)
		}
	}

	var err error
	var done bool
	start := time.Now()
	loop.Post(func() {
		var ctl chart.Controller
		ctl, err = build(d, opts)
		if err != nil {
			loop.Quit()
			return
		}
		if err = setup(ctl, cfg); err != nil {
			loop.Quit()
			return
		}
		ctl.OnRenderComplete(func() {
			done = true
			loop.Quit()
		})
		if err = ctl.SetData(d); err != nil {
			loop.Quit()
		}
	})
	if e := loop.Run(ctx); e != nil {
		return nil, e
	}
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, ErrIncomplete
	}

	if cfg.Verbose != nil {
		fmt.Fprintf(cfg.Verbose, "%s: rendered in %v\n", d.Name, time.Since(start))
	}
	return frame, nil
}

// setup sets the size and the domain pins of a plot
// before any data is added.
func setup(ctl chart.Controller, cfg Config) error {
	if cfg.Width > 0 || cfg.Height > 0 {
		w, h := cfg.Width, cfg.Height
		dw, dh := ctl.DefaultSize()
		if w <= 0 {
			w = dw
		}
		if h <= 0 {
			h = dh
		}
		if err := ctl.Resize(w+chart.ChromeWidth, h+chart.ChromeHeight); err != nil {
			return err
		}
	}
	return ctl.SetDomainOverride(cfg.Pins)
}

// OutputName returns the name of the output file
// of a dataset.
func OutputName(d *dataset.Dataset, i int, cfg Config) string {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = fmt.Sprintf("dataset-%d", i+1)
	}
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	name = strings.ReplaceAll(name, " ", "_")
	if cfg.Kind != "" {
		name += "-" + cfg.Kind
	}
	if cfg.Prefix != "" {
		name = cfg.Prefix + "-" + name
	}
	return name
}

func writeFrame(name string, frame *overlay.Frame, png bool) (err error) {
	if png {
		name += ".png"
	} else {
		name += ".svg"
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if png {
		err = frame.WritePNG(bw)
	} else {
		err = frame.WriteSVG(bw)
	}
	if err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}

// lockedWriter is a writer
// shared by the rendering goroutines.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}
