// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hist implements a command to draw
// histograms of the ensembles in a project
// at a report step.
package hist

import (
	"fmt"
	"io"
	"sync"

	"github.com/js-arias/command"
	"github.com/js-arias/ensplot/chart"
	"github.com/js-arias/ensplot/cmd/ensplot/batch"
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/project"
	"github.com/js-arias/ensplot/reportstep"
)

var Command = &command.Command{
	Usage: `hist [--bins <number>] [--log] [--at <value>] [--counts]
	[--png] [-o|--output <out-prefix>]
	[--width <number>] [--height <number>]
	[--xmin <value>] [--xmax <value>] [--ymin <value>] [--ymax <value>]
	[--palette <name>] [--cpu <number>] [--trace] [--verbose]
	<project-file>`,
	Short: "draw histograms of the ensembles",
	Long: `
Command hist reads an ensplot project and draws a histogram of the values of
the realizations of each ensemble case of the project datasets at a report
step. The observation at the report step is drawn as a vertical line with its
error band, and the reference case as a vertical line.

The argument of the command is the name of the project file.

By default, the last report step of each dataset is used. If the project
defines a report steps file, the last step of that file is used. Use the flag
--at to define a report step; it can be a number, or a date. If the project
defines a report steps file, the closest defined step is used.

By default, 30 bins are used. Use the flag --bins to set a different number of
bins. By default, bins are linear, based on the ticks of the values. If the
flag --log is defined, bins with a logarithmic growth will be used.

If the flag --counts is defined, the counts of each bin will be printed in the
standard output.

In histograms, the X axis is the value axis, so --xmin and --xmax pin the
values, and --ymin and --ymax pin the counts.
` + batch.FlagsHelp,
	SetFlags: setFlags,
	Run:      run,
}

var flags batch.Flags
var bins int
var logBins bool
var atFlag string
var printCounts bool

func setFlags(c *command.Command) {
	flags.Set(c.Flags())
	c.Flags().IntVar(&bins, "bins", chart.DefaultBins, "")
	c.Flags().BoolVar(&logBins, "log", false, "")
	c.Flags().StringVar(&atFlag, "at", "", "")
	c.Flags().BoolVar(&printCounts, "counts", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	steps, err := p.ReportSteps()
	if err != nil {
		return err
	}
	at, hasAt, err := reportStep(steps)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	return flags.Run(c, p, "hist", func(d *dataset.Dataset, opts chart.Options) (chart.Controller, error) {
		h, err := chart.NewHistogram(opts)
		if err != nil {
			return nil, err
		}
		if err := h.SetBins(bins); err != nil {
			return nil, err
		}
		if err := h.SetLog(logBins); err != nil {
			return nil, err
		}
		if hasAt {
			if err := h.SetReportStep(at); err != nil {
				return nil, err
			}
		}
		if printCounts {
			h.OnRenderComplete(func() {
				if len(h.Counts()) == 0 {
					return
				}
				mu.Lock()
				defer mu.Unlock()
				writeCounts(c.Stdout(), d, h)
			})
		}
		return h, nil
	})
}

// reportStep returns the report step
// defined by the --at flag
// and the project report steps.
func reportStep(steps reportstep.Steps) (float64, bool, error) {
	if atFlag == "" {
		if last, ok := steps.Last(); ok {
			return float64(last), true, nil
		}
		return 0, false, nil
	}

	v, err := batch.ParseValue(atFlag, true)
	if err != nil {
		return 0, false, fmt.Errorf("flag --at: %v", err)
	}
	if st, ok := steps.Closest(int64(v)); ok {
		return float64(st), true, nil
	}
	return v, true, nil
}

func writeCounts(w io.Writer, d *dataset.Dataset, h *chart.Histogram) {
	edges := h.Edges()
	for i, counts := range h.Counts() {
		name := d.Ensembles[i].Name
		for j, n := range counts {
			fmt.Fprintf(w, "%s\t%s\t%.6f\t%.6f\t%d\n", d.Name, name, edges[j], edges[j+1], n)
		}
	}
}
