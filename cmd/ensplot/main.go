// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Ensplot is a tool to draw plots of ensembles
// of simulated time series.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/ensplot/cmd/ensplot/add"
	"github.com/js-arias/ensplot/cmd/ensplot/draw"
	"github.com/js-arias/ensplot/cmd/ensplot/hist"
	"github.com/js-arias/ensplot/cmd/ensplot/overview"
	"github.com/js-arias/ensplot/cmd/ensplot/prj"
	"github.com/js-arias/ensplot/cmd/ensplot/stats"
	"github.com/js-arias/ensplot/cmd/ensplot/steps"
	"github.com/js-arias/ensplot/cmd/ensplot/stylecmd"
)

var app = &command.Command{
	Usage: "ensplot <command> [<argument>...]",
	Short: "a tool to draw ensemble plots",
}

func init() {
	app.Add(add.Command)
	app.Add(draw.Command)
	app.Add(hist.Command)
	app.Add(overview.Command)
	app.Add(prj.Command)
	app.Add(stats.Command)
	app.Add(steps.Command)
	app.Add(stylecmd.Command)
}

func main() {
	app.Main()
}
