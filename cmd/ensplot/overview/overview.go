// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package overview implements a command to draw
// fan charts of the ensembles in a project.
package overview

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ensplot/chart"
	"github.com/js-arias/ensplot/cmd/ensplot/batch"
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/project"
)

var Command = &command.Command{
	Usage: `overview [--png] [-o|--output <out-prefix>]
	[--width <number>] [--height <number>]
	[--xmin <value>] [--xmax <value>] [--ymin <value>] [--ymax <value>]
	[--palette <name>] [--cpu <number>] [--trace] [--verbose]
	<project-file>`,
	Short: "draw fan charts of the ensembles",
	Long: `
Command overview reads an ensplot project and draws, for each ensemble case of
the project datasets, a band between the minimum and maximum values of the
realizations, a band between the 10th and 90th percentiles, and a line with
the median. Observations and the reference case are also drawn.

The argument of the command is the name of the project file.
` + batch.FlagsHelp,
	SetFlags: setFlags,
	Run:      run,
}

var flags batch.Flags

func setFlags(c *command.Command) {
	flags.Set(c.Flags())
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	return flags.Run(c, p, "overview", func(d *dataset.Dataset, opts chart.Options) (chart.Controller, error) {
		return chart.NewOverview(opts)
	})
}
