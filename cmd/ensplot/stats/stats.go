// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to draw
// the percentiles of the ensembles in a project.
package stats

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ensplot/chart"
	"github.com/js-arias/ensplot/cmd/ensplot/batch"
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/project"
)

var Command = &command.Command{
	Usage: `stats [--vertical]
	[--png] [-o|--output <out-prefix>]
	[--width <number>] [--height <number>]
	[--xmin <value>] [--xmax <value>] [--ymin <value>] [--ymax <value>]
	[--palette <name>] [--cpu <number>] [--trace] [--verbose]
	<project-file>`,
	Short: "draw percentile lines of the ensembles",
	Long: `
Command stats reads an ensplot project and draws, for each ensemble case of
the project datasets, lines with the minimum and maximum values of the
realizations, the 10th and 90th percentiles, and a dashed line with the
median.

The argument of the command is the name of the project file.

By default, the report steps are drawn in the X axis. If the flag --vertical is
defined, the report steps are drawn in the Y axis, and the values in the X
axis. In that case, the flags --xmin and --xmax refer to the values.
` + batch.FlagsHelp,
	SetFlags: setFlags,
	Run:      run,
}

var flags batch.Flags
var vertical bool

func setFlags(c *command.Command) {
	flags.Set(c.Flags())
	c.Flags().BoolVar(&vertical, "vertical", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	return flags.Run(c, p, "stats", func(d *dataset.Dataset, opts chart.Options) (chart.Controller, error) {
		s, err := chart.NewStatistics(opts)
		if err != nil {
			return nil, err
		}
		if err := s.SetHorizontal(!vertical); err != nil {
			return nil, err
		}
		return s, nil
	})
}
