// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// the realizations of the ensembles in a project.
package draw

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ensplot/chart"
	"github.com/js-arias/ensplot/cmd/ensplot/batch"
	"github.com/js-arias/ensplot/dataset"
	"github.com/js-arias/ensplot/project"
)

var Command = &command.Command{
	Usage: `draw [--direct <number>]
	[--png] [-o|--output <out-prefix>]
	[--width <number>] [--height <number>]
	[--xmin <value>] [--xmax <value>] [--ymin <value>] [--ymax <value>]
	[--palette <name>] [--cpu <number>] [--trace] [--verbose]
	<project-file>`,
	Short: "draw ensemble realizations",
	Long: `
Command draw reads an ensplot project and draws every realization of each
ensemble case of the project datasets as a line, together with the
observations and the reference case.

The argument of the command is the name of the project file.

Realizations are drawn in the order of the dataset file. Large ensembles are
drawn progressively, in small time slices. By default, ensembles with up to 20
realizations are drawn in a single pass. Use the flag --direct to set a
different limit.
` + batch.FlagsHelp,
	SetFlags: setFlags,
	Run:      run,
}

var flags batch.Flags
var direct int

func setFlags(c *command.Command) {
	flags.Set(c.Flags())
	c.Flags().IntVar(&direct, "direct", chart.DefaultDirectLimit, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	return flags.Run(c, p, "draw", func(d *dataset.Dataset, opts chart.Options) (chart.Controller, error) {
		e, err := chart.NewEnsemble(opts)
		if err != nil {
			return nil, err
		}
		e.DirectLimit = direct
		return e, nil
	})
}
